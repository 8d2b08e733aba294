package manage

import (
	"context"
	"net/http"
)

// Invitation is a pending invite to join a project.
type Invitation struct {
	Email string `json:"email"`
	Scope string `json:"scope"`
}

type invitationsPage struct {
	Invites []Invitation `json:"invites"`
}

// ListInvitations returns the project's pending invitations.
func (c *Client) ListInvitations(ctx context.Context, projectID string) ([]Invitation, error) {
	var page invitationsPage
	err := c.dg.DoJSON(
		ctx, http.MethodGet,
		"/v1/projects/"+projectID+"/invites",
		nil, nil, &page,
	)
	if err != nil {
		return nil, err
	}
	return page.Invites, nil
}

// SendInvitation invites an email address into the project with the
// given scope.
func (c *Client) SendInvitation(
	ctx context.Context,
	projectID string,
	invite Invitation,
) (*Message, error) {
	var msg Message
	err := c.dg.DoJSON(
		ctx, http.MethodPost,
		"/v1/projects/"+projectID+"/invites",
		nil, invite, &msg,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteInvitation withdraws a pending invitation.
func (c *Client) DeleteInvitation(ctx context.Context, projectID, email string) error {
	return c.dg.DoJSON(
		ctx, http.MethodDelete,
		"/v1/projects/"+projectID+"/invites/"+email,
		nil, nil, nil,
	)
}

// LeaveProject removes the caller from the project.
func (c *Client) LeaveProject(ctx context.Context, projectID string) (*Message, error) {
	var msg Message
	err := c.dg.DoJSON(
		ctx, http.MethodDelete,
		"/v1/projects/"+projectID+"/leave",
		nil, nil, &msg,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
