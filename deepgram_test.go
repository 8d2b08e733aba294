package deepgram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestStreamURL(t *testing.T) {
	dg := New("token")
	got := dg.StreamURL("/v1/listen", nil).String()
	if got != "wss://api.deepgram.com/v1/listen" {
		t.Errorf("StreamURL = %q", got)
	}
}

func TestStreamURLCustomHost(t *testing.T) {
	dg := New("token", WithBaseURL("http://localhost:8080"))
	got := dg.StreamURL("/v1/listen", nil).String()
	if got != "ws://localhost:8080/v1/listen" {
		t.Errorf("StreamURL = %q", got)
	}
}

func TestRestURLFromWsBase(t *testing.T) {
	dg := New("token", WithBaseURL("wss://dg.internal"))
	got := dg.RestURL("/v1/projects", nil).String()
	if got != "https://dg.internal/v1/projects" {
		t.Errorf("RestURL = %q", got)
	}
}

func TestStreamURLQuery(t *testing.T) {
	dg := New("token")
	q := url.Values{}
	q.Set("encoding", "linear16")
	q.Set("sample_rate", "16000")
	u := dg.StreamURL("/v1/listen", q)
	if u.Query().Get("encoding") != "linear16" || u.Query().Get("sample_rate") != "16000" {
		t.Errorf("query = %q", u.RawQuery)
	}
}

func TestRequestAuth(t *testing.T) {
	dg := New("sekrit")
	req, err := dg.NewRequest(context.Background(), http.MethodGet, "/v1/projects", nil, nil)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	if got := req.Header.Get("Authorization"); got != "Token sekrit" {
		t.Errorf("auth header = %q", got)
	}
}

func TestDoTranslatesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"err_code":"INSUFFICIENT_PERMISSIONS","err_msg":"nope","request_id":"rid"}`))
	}))
	defer srv.Close()

	dg := New("token", WithBaseURL(srv.URL))
	req, err := dg.NewRequest(context.Background(), http.MethodGet, "/v1/projects", nil, nil)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	err = dg.Do(req, nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Errorf("Status = %d", apiErr.Status)
	}
	if apiErr.ErrCode != "INSUFFICIENT_PERMISSIONS" || apiErr.ErrMsg != "nope" || apiErr.RequestID != "rid" {
		t.Errorf("APIError = %+v", apiErr)
	}
	if !strings.Contains(apiErr.Error(), "nope") {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestDoTranslatesOpaqueError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	dg := New("token", WithBaseURL(srv.URL))
	req, _ := dg.NewRequest(context.Background(), http.MethodGet, "/v1/projects", nil, nil)

	err := dg.Do(req, nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Body != "upstream exploded" {
		t.Errorf("Body = %q", apiErr.Body)
	}
}

func TestStringRedactsKey(t *testing.T) {
	dg := New("super-secret-key")
	if strings.Contains(dg.String(), "super-secret-key") {
		t.Errorf("String() leaks the API key: %q", dg.String())
	}
}
