package bolticclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	bolticdomain "github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic/domain"
)

func (c *BolticClient) TriggerWorkflow(ctx context.Context, workflow string, payload any) error {
	endpoint := joinURL(c.config.WorkflowsURL, url.PathEscape(workflow), "trigger")
	return c.do(ctx, "trigger "+workflow, http.MethodPost, endpoint, payload, nil)
}

func (c *BolticClient) ListWorkflowRuns(ctx context.Context, workflow string, limit int) ([]bolticdomain.Row, error) {
	var response bolticdomain.ListResponse

	endpoint, err := url.Parse(joinURL(c.config.WorkflowsURL, url.PathEscape(workflow), "runs"))
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		query := endpoint.Query()
		query.Set("limit", strconv.Itoa(limit))
		endpoint.RawQuery = query.Encode()
	}

	if err := c.do(ctx, "list runs "+workflow, http.MethodGet, endpoint.String(), nil, &response); err != nil {
		return nil, err
	}

	if response.Result.Data == nil {
		return []bolticdomain.Row{}, nil
	}

	return response.Result.Data, nil
}

// PostSalesEntries sends manual entries to the sales loop workflow in a single call.
func (c *BolticClient) PostSalesEntries(ctx context.Context, request bolticdomain.SalesEntryRequest) error {
	return c.do(ctx, "post sales entries", http.MethodPost, c.config.SalesEntryURL, request, nil)
}
