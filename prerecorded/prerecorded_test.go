package prerecorded

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deepgram "github.com/mbrock/deepgram-go"
)

const responseJSON = `{
	"metadata": {"request_id": "req-42", "duration": 17.5, "channels": 1},
	"results": {
		"channels": [{
			"alternatives": [{
				"transcript": "life moves pretty fast",
				"confidence": 0.99,
				"words": []
			}]
		}]
	}
}`

func TestTranscribeFromURL(t *testing.T) {
	var gotReq *http.Request
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(responseJSON))
	}))
	defer srv.Close()

	dg := deepgram.New("testkey", deepgram.WithBaseURL(srv.URL))
	c := NewClient(dg)

	resp, err := c.Transcribe(
		context.Background(),
		UrlSource{URL: "https://example.com/audio.wav"},
		&Options{Model: "nova-2", Punctuate: true},
	)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}

	if gotReq.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", gotReq.Method)
	}
	if gotReq.URL.Path != "/v1/listen" {
		t.Errorf("path = %s, want /v1/listen", gotReq.URL.Path)
	}
	if got := gotReq.Header.Get("Authorization"); got != "Token testkey" {
		t.Errorf("auth header = %q", got)
	}
	if got := gotReq.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q", got)
	}
	q := gotReq.URL.Query()
	if q.Get("model") != "nova-2" || q.Get("punctuate") != "true" {
		t.Errorf("query = %v", q)
	}
	if gotBody != `{"url":"https://example.com/audio.wav"}` {
		t.Errorf("body = %s", gotBody)
	}
	if resp.Transcript() != "life moves pretty fast" {
		t.Errorf("Transcript() = %q", resp.Transcript())
	}
	if resp.Metadata.RequestID != "req-42" {
		t.Errorf("RequestID = %q", resp.Metadata.RequestID)
	}
}

func TestTranscribeFromReader(t *testing.T) {
	var gotBody string
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(responseJSON))
	}))
	defer srv.Close()

	dg := deepgram.New("testkey", deepgram.WithBaseURL(srv.URL))
	c := NewClient(dg)

	_, err := c.Transcribe(
		context.Background(),
		ReaderSource{Reader: strings.NewReader("RIFFfakewav"), MimeType: "audio/wav"},
		nil,
	)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if gotBody != "RIFFfakewav" {
		t.Errorf("body = %q", gotBody)
	}
	if gotContentType != "audio/wav" {
		t.Errorf("content type = %q", gotContentType)
	}
}

func TestTranscribeCallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("callback"); got != "https://example.com/hook" {
			t.Errorf("callback = %q", got)
		}
		w.Write([]byte(`{"request_id": "req-cb"}`))
	}))
	defer srv.Close()

	dg := deepgram.New("testkey", deepgram.WithBaseURL(srv.URL))
	c := NewClient(dg)

	resp, err := c.TranscribeCallback(
		context.Background(),
		UrlSource{URL: "https://example.com/audio.wav"},
		nil,
		"https://example.com/hook",
	)
	if err != nil {
		t.Fatalf("TranscribeCallback failed: %v", err)
	}
	if resp.RequestID != "req-cb" {
		t.Errorf("RequestID = %q", resp.RequestID)
	}
}

func TestTranscribeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"err_code":"Bad Request","err_msg":"unsupported encoding","request_id":"req-err"}`))
	}))
	defer srv.Close()

	dg := deepgram.New("testkey", deepgram.WithBaseURL(srv.URL))
	c := NewClient(dg)

	_, err := c.Transcribe(context.Background(), UrlSource{URL: "https://example.com/a.wav"}, nil)
	if err == nil {
		t.Fatal("Transcribe succeeded, want API error")
	}
	apiErr, ok := err.(*deepgram.APIError)
	if !ok {
		t.Fatalf("error = %T, want *deepgram.APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.ErrMsg != "unsupported encoding" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestTranscribeNoSource(t *testing.T) {
	dg := deepgram.New("testkey")
	c := NewClient(dg)
	if _, err := c.Transcribe(context.Background(), nil, nil); err == nil {
		t.Fatal("Transcribe without a source succeeded")
	}
}
