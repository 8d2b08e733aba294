package manage

import (
	"context"
	"net/http"
)

// Project is one project the credential can see.
type Project struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Company   string `json:"company,omitempty"`
}

// ProjectUpdate carries the fields Projects.Update may change. Nil
// fields are left untouched.
type ProjectUpdate struct {
	Name    *string `json:"name,omitempty"`
	Company *string `json:"company,omitempty"`
}

type projectsPage struct {
	Projects []Project `json:"projects"`
}

// ListProjects returns all projects the API key has access to.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var page projectsPage
	err := c.dg.DoJSON(ctx, http.MethodGet, "/v1/projects", nil, nil, &page)
	if err != nil {
		return nil, err
	}
	return page.Projects, nil
}

// GetProject returns one project by id.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	var project Project
	err := c.dg.DoJSON(ctx, http.MethodGet, "/v1/projects/"+projectID, nil, nil, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject changes a project's name or company.
func (c *Client) UpdateProject(
	ctx context.Context,
	projectID string,
	update ProjectUpdate,
) (*Message, error) {
	var msg Message
	err := c.dg.DoJSON(ctx, http.MethodPatch, "/v1/projects/"+projectID, nil, update, &msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.dg.DoJSON(ctx, http.MethodDelete, "/v1/projects/"+projectID, nil, nil, nil)
}
