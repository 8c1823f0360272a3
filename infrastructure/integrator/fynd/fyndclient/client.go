package fyndclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	fynddomain "github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd/domain"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	CreateProduct(ctx context.Context, product fynddomain.ProductRequest) (*fynddomain.ProductResponse, error)
	ListProducts(ctx context.Context, pageNo, pageSize int) (*fynddomain.ProductListResponse, error)
}

type FyndClient struct {
	httpClient *http.Client
	config     config.Fynd
}

// NewClient builds a client; a zero Fynd.Timeout leaves the http.Client default.
func NewClient(cfg *config.Config) Client {
	return &FyndClient{
		httpClient: &http.Client{
			Timeout: cfg.Fynd.Timeout,
		},
		config: cfg.Fynd,
	}
}

func (c *FyndClient) CreateProduct(ctx context.Context, product fynddomain.ProductRequest) (*fynddomain.ProductResponse, error) {
	var response fynddomain.ProductResponse
	if err := c.do(ctx, "create product", http.MethodPost, c.productsURL(), product, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *FyndClient) ListProducts(ctx context.Context, pageNo, pageSize int) (*fynddomain.ProductListResponse, error) {
	params := url.Values{}
	params.Add("page_no", strconv.Itoa(pageNo))
	params.Add("page_size", strconv.Itoa(pageSize))

	var response fynddomain.ProductListResponse
	if err := c.do(ctx, "list products", http.MethodGet, c.productsURL()+"?"+params.Encode(), nil, &response); err != nil {
		return nil, err
	}
	if response.Items == nil {
		response.Items = []fynddomain.Product{}
	}
	return &response, nil
}

func (c *FyndClient) productsURL() string {
	return fmt.Sprintf("%s/service/platform/catalog/v1.0/company/%s/products",
		strings.TrimRight(c.config.APIBase, "/"), c.config.CompanyID)
}

func (c *FyndClient) do(ctx context.Context, op, method, endpoint string, body, out any) error {
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

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.AuthToken)
	req.Header.Set("x-fp-cli", c.config.CLIVersion)

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
		var errResp fynddomain.ErrorResponse
		message := resp.Status
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			message = errResp.Message
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
