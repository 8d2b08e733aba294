package manage

import (
	"context"
	"net/http"
)

// Scopes lists a member's scopes within a project.
type Scopes struct {
	Scopes []string `json:"scopes"`
}

// GetMemberScopes returns a member's scopes.
func (c *Client) GetMemberScopes(
	ctx context.Context,
	projectID, memberID string,
) (*Scopes, error) {
	var scopes Scopes
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/members/"+memberID+"/scopes",
		nil, nil, &scopes,
	)
	if err != nil {
		return nil, err
	}
	return &scopes, nil
}

// UpdateMemberScope replaces a member's scope.
func (c *Client) UpdateMemberScope(
	ctx context.Context,
	projectID, memberID, scope string,
) (*Message, error) {
	body := struct {
		Scope string `json:"scope"`
	}{Scope: scope}

	var msg Message
	err := c.dg.DoJSON(
		ctx, http.MethodPut,
		"/v1/projects/"+projectID+"/members/"+memberID+"/scopes",
		nil, body, &msg,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
