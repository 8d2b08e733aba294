// Package speak generates speech from text.
package speak

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	deepgram "github.com/mbrock/deepgram-go"
)

const speakPath = "/v1/speak"

// Client makes text-to-speech requests.
type Client struct {
	dg *deepgram.Client
}

func NewClient(dg *deepgram.Client) *Client {
	return &Client{dg: dg}
}

// Options configures synthesis. Zero-valued fields are omitted,
// leaving the server defaults in effect.
type Options struct {
	Model      string
	Encoding   string
	SampleRate int
	Container  string
	BitRate    int
}

func (o *Options) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Model != "" {
		q.Set("model", o.Model)
	}
	if o.Encoding != "" {
		q.Set("encoding", o.Encoding)
	}
	if o.SampleRate != 0 {
		q.Set("sample_rate", strconv.Itoa(o.SampleRate))
	}
	if o.Container != "" {
		q.Set("container", o.Container)
	}
	if o.BitRate != 0 {
		q.Set("bit_rate", strconv.Itoa(o.BitRate))
	}
	return q
}

// Audio is synthesized speech. The caller owns Reader and must close
// it; ContentType names the negotiated audio format.
type Audio struct {
	Reader      io.ReadCloser
	ContentType string
}

// Synthesize turns text into speech, streaming the audio back.
func (c *Client) Synthesize(
	ctx context.Context,
	text string,
	opts *Options,
) (*Audio, error) {
	if text == "" {
		return nil, fmt.Errorf("speak: no text provided")
	}

	raw, err := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: text})
	if err != nil {
		return nil, fmt.Errorf("speak: encode request: %w", err)
	}

	body := bytes.NewReader(raw)
	req, err := c.dg.NewRequest(ctx, http.MethodPost, speakPath, opts.query(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.dg.HTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("speak: request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, fmt.Errorf(
			"speak: unexpected status %d", resp.StatusCode,
		)
	}

	return &Audio{
		Reader:      resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
