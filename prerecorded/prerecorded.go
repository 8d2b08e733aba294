// Package prerecorded transcribes already-recorded audio, submitted as
// a hosted URL or a raw byte stream, in a single request/response.
package prerecorded

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	deepgram "github.com/mbrock/deepgram-go"
)

const listenPath = "/v1/listen"

// Client makes prerecorded transcription requests.
type Client struct {
	dg *deepgram.Client
}

func NewClient(dg *deepgram.Client) *Client {
	return &Client{dg: dg}
}

// Transcribe submits the audio source and blocks until the transcript
// is ready.
func (c *Client) Transcribe(
	ctx context.Context,
	source Source,
	opts *Options,
) (*Response, error) {
	var resp Response
	if err := c.request(ctx, source, opts, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TranscribeCallback submits the audio source and returns immediately;
// the service delivers the finished transcript to callbackURL.
func (c *Client) TranscribeCallback(
	ctx context.Context,
	source Source,
	opts *Options,
	callbackURL string,
) (*CallbackResponse, error) {
	extra := url.Values{}
	extra.Set("callback", callbackURL)

	var resp CallbackResponse
	if err := c.request(ctx, source, opts, extra, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) request(
	ctx context.Context,
	source Source,
	opts *Options,
	extra url.Values,
	v any,
) error {
	if source == nil {
		return fmt.Errorf("prerecorded: no audio source provided")
	}
	if opts == nil {
		opts = &Options{}
	}

	query := opts.Query()
	for key, vals := range extra {
		for _, val := range vals {
			query.Add(key, val)
		}
	}

	body, contentType, err := source.body()
	if err != nil {
		return fmt.Errorf("prerecorded: prepare audio source: %w", err)
	}

	req, err := c.dg.NewRequest(ctx, http.MethodPost, listenPath, query, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.dg.Do(req, v)
}
