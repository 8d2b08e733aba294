package manage

import (
	"context"
	"net/http"
)

// Member is one person in a project.
type Member struct {
	MemberID  string   `json:"member_id"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Email     string   `json:"email"`
	Scopes    []string `json:"scopes,omitempty"`
}

type membersPage struct {
	Members []Member `json:"members"`
}

// ListMembers returns the project's members.
func (c *Client) ListMembers(ctx context.Context, projectID string) ([]Member, error) {
	var page membersPage
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/members",
		nil, nil, &page,
	)
	if err != nil {
		return nil, err
	}
	return page.Members, nil
}

// RemoveMember removes a member from the project.
func (c *Client) RemoveMember(ctx context.Context, projectID, memberID string) error {
	return c.dg.DoJSON(
		ctx, http.MethodDelete,
		"/v1/projects/"+projectID+"/members/"+memberID,
		nil, nil, nil,
	)
}
