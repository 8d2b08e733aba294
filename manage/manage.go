// Package manage wraps the project management API: projects, API keys,
// members and their scopes, invitations, usage, and balances.
package manage

import (
	deepgram "github.com/mbrock/deepgram-go"
)

// Client makes management API requests.
type Client struct {
	dg *deepgram.Client
}

func NewClient(dg *deepgram.Client) *Client {
	return &Client{dg: dg}
}

// Message is the generic success acknowledgment several endpoints
// return.
type Message struct {
	Message string `json:"message"`
}
