package manage

import (
	"context"
	"net/http"
)

// APIKey is one credential in a project.
type APIKey struct {
	APIKeyID       string   `json:"api_key_id"`
	Comment        string   `json:"comment"`
	Scopes         []string `json:"scopes"`
	Tags           []string `json:"tags,omitempty"`
	Created        string   `json:"created"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
}

// MemberAndAPIKey pairs a key with the member who owns it.
type MemberAndAPIKey struct {
	Member Member `json:"member"`
	APIKey APIKey `json:"api_key"`
}

// NewAPIKey is returned by CreateKey. Key holds the secret and is only
// ever shown once.
type NewAPIKey struct {
	APIKeyID       string   `json:"api_key_id"`
	Key            string   `json:"key"`
	Comment        string   `json:"comment"`
	Scopes         []string `json:"scopes"`
	Tags           []string `json:"tags,omitempty"`
	Created        string   `json:"created"`
	ExpirationDate string   `json:"expiration_date,omitempty"`
}

// CreateKeyOptions configures a new API key. Either ExpirationDate or
// TimeToLiveInSeconds may be set, not both.
type CreateKeyOptions struct {
	Comment             string   `json:"comment"`
	Scopes              []string `json:"scopes"`
	Tags                []string `json:"tags,omitempty"`
	ExpirationDate      string   `json:"expiration_date,omitempty"`
	TimeToLiveInSeconds int      `json:"time_to_live_in_seconds,omitempty"`
}

type keysPage struct {
	APIKeys []MemberAndAPIKey `json:"api_keys"`
}

// ListKeys returns the project's API keys with their owning members.
func (c *Client) ListKeys(ctx context.Context, projectID string) ([]MemberAndAPIKey, error) {
	var page keysPage
	err := c.dg.DoJSON(ctx, http.MethodGet, "/v1/projects/"+projectID+"/keys", nil, nil, &page)
	if err != nil {
		return nil, err
	}
	return page.APIKeys, nil
}

// GetKey returns one API key by id.
func (c *Client) GetKey(
	ctx context.Context,
	projectID, keyID string,
) (*MemberAndAPIKey, error) {
	var key MemberAndAPIKey
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/keys/"+keyID,
		nil, nil, &key,
	)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// CreateKey mints a new API key in the project.
func (c *Client) CreateKey(
	ctx context.Context,
	projectID string,
	opts CreateKeyOptions,
) (*NewAPIKey, error) {
	var key NewAPIKey
	err := c.dg.DoJSON(
		ctx, http.MethodPost,
		"/v1/projects/"+projectID+"/keys",
		nil, opts, &key,
	)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// DeleteKey revokes an API key.
func (c *Client) DeleteKey(ctx context.Context, projectID, keyID string) error {
	return c.dg.DoJSON(
		ctx, http.MethodDelete,
		"/v1/projects/"+projectID+"/keys/"+keyID,
		nil, nil, nil,
	)
}
