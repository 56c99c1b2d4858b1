package api

import (
	"context"
	"encoding/json"
	"net/url"
)

// Graficos fetches the filtered report dataset (GET /api/graficos). The
// rows carry dynamic columns, so the raw JSON is returned for the report
// package to parse with column order intact.
func (c *Client) Graficos(ctx context.Context, query url.Values) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/graficos", query, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
