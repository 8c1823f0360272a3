package bolticclient

import (
	"context"
	"net/http"
	"net/url"

	bolticdomain "github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic/domain"
)

func (c *BolticClient) ListRecords(ctx context.Context, table string) ([]bolticdomain.Row, error) {
	var response bolticdomain.ListResponse

	endpoint := joinURL(c.config.TablesURL, url.PathEscape(table), "records")
	if err := c.do(ctx, "list "+table, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	if response.Result.Data == nil {
		return []bolticdomain.Row{}, nil
	}

	return response.Result.Data, nil
}

func (c *BolticClient) UpsertRows(ctx context.Context, table string, rows any) (*bolticdomain.UpsertResponse, error) {
	var response bolticdomain.UpsertResponse

	endpoint := joinURL(c.config.TablesURL, url.PathEscape(table), "upsert")
	err := c.do(ctx, "upsert "+table, http.MethodPost, endpoint, bolticdomain.RecordsRequest{Records: rows}, &response)
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *BolticClient) InsertRows(ctx context.Context, table string, rows any) error {
	endpoint := joinURL(c.config.TablesURL, url.PathEscape(table), "records")
	return c.do(ctx, "insert "+table, http.MethodPost, endpoint, bolticdomain.RecordsRequest{Records: rows}, nil)
}
