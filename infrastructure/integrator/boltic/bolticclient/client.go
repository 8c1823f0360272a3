package bolticclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	bolticdomain "github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic/domain"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	ListRecords(ctx context.Context, table string) ([]bolticdomain.Row, error)
	UpsertRows(ctx context.Context, table string, rows any) (*bolticdomain.UpsertResponse, error)
	InsertRows(ctx context.Context, table string, rows any) error
	TriggerWorkflow(ctx context.Context, workflow string, payload any) error
	ListWorkflowRuns(ctx context.Context, workflow string, limit int) ([]bolticdomain.Row, error)
	PostSalesEntries(ctx context.Context, request bolticdomain.SalesEntryRequest) error
}

type BolticClient struct {
	httpClient *http.Client
	config     config.Boltic
}

// NewClient builds a client; a zero Boltic.Timeout leaves the http.Client default.
func NewClient(cfg *config.Config) Client {
	return &BolticClient{
		httpClient: &http.Client{
			Timeout: cfg.Boltic.Timeout,
		},
		config: cfg.Boltic,
	}
}

// do sends body as JSON and decodes a 2xx response into out when out is not nil.
// Transport failures and non-2xx statuses come back as *domain.NetworkError.
func (c *BolticClient) do(ctx context.Context, op, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp bolticdomain.ErrorResponse
		message := strings.TrimSpace(string(respBody))
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Text() != "" {
			message = errResp.Text()
		}
		if message == "" {
			message = resp.Status
		}
		return &domain.NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", message)}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	return nil
}

func joinURL(base string, parts ...string) string {
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
