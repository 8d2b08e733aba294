package manage

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// UsageOptions filters usage queries by time range and feature flags.
type UsageOptions struct {
	Start string
	End   string
	Limit int
	// Status filters requests by outcome: "succeeded" or "failed".
	Status string
}

func (o *UsageOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Start != "" {
		q.Set("start", o.Start)
	}
	if o.End != "" {
		q.Set("end", o.End)
	}
	if o.Limit != 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	return q
}

// UsageRequest is one recorded API request.
type UsageRequest struct {
	RequestID string  `json:"request_id"`
	Created   string  `json:"created"`
	Path      string  `json:"path"`
	Accessor  string  `json:"accessor"`
	APIKeyID  string  `json:"api_key_id"`
	Duration  float64 `json:"duration,omitempty"`
	Code      int     `json:"code"`
}

// UsageRequestsPage is one page of recorded requests.
type UsageRequestsPage struct {
	Page     int            `json:"page"`
	Limit    int            `json:"limit"`
	Requests []UsageRequest `json:"requests"`
}

// UsageSummary aggregates usage over a time range.
type UsageSummary struct {
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Resolution map[string]any  `json:"resolution"`
	Results    []UsageInterval `json:"results"`
}

// UsageInterval is usage within one resolution bucket.
type UsageInterval struct {
	Start         string  `json:"start"`
	End           string  `json:"end"`
	Hours         float64 `json:"hours"`
	TotalHours    float64 `json:"total_hours"`
	Requests      int     `json:"requests"`
	TokensIn      int     `json:"tokens_in,omitempty"`
	TokensOut     int     `json:"tokens_out,omitempty"`
	TTSCharacters int     `json:"tts_characters,omitempty"`
}

// UsageFields lists the models and features seen in a time range.
type UsageFields struct {
	Models            []string `json:"models"`
	ProcessingMethods []string `json:"processing_methods"`
	Languages         []string `json:"languages"`
	Features          []string `json:"features"`
	Tags              []string `json:"tags"`
}

// ListRequests returns the project's recorded API requests.
func (c *Client) ListRequests(
	ctx context.Context,
	projectID string,
	opts *UsageOptions,
) (*UsageRequestsPage, error) {
	var page UsageRequestsPage
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/requests",
		opts.query(), nil, &page,
	)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetRequest returns one recorded request by id.
func (c *Client) GetRequest(
	ctx context.Context,
	projectID, requestID string,
) (*UsageRequest, error) {
	var req UsageRequest
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/requests/"+requestID,
		nil, nil, &req,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetUsageSummary aggregates the project's usage.
func (c *Client) GetUsageSummary(
	ctx context.Context,
	projectID string,
	opts *UsageOptions,
) (*UsageSummary, error) {
	var summary UsageSummary
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/usage",
		opts.query(), nil, &summary,
	)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetUsageFields lists the features in use over a time range.
func (c *Client) GetUsageFields(
	ctx context.Context,
	projectID string,
	opts *UsageOptions,
) (*UsageFields, error) {
	var fields UsageFields
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/usage/fields",
		opts.query(), nil, &fields,
	)
	if err != nil {
		return nil, err
	}
	return &fields, nil
}
