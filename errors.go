package deepgram

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx response from the API, with the error body the
// service returned where it was parseable.
type APIError struct {
	Status    int
	ErrCode   string
	ErrMsg    string
	RequestID string
	Body      string
}

func (e *APIError) Error() string {
	if e.ErrMsg != "" {
		return fmt.Sprintf(
			"deepgram: %s (%s, status %d, request %s)",
			e.ErrMsg, e.ErrCode, e.Status, e.RequestID,
		)
	}
	return fmt.Sprintf("deepgram: unexpected status %d", e.Status)
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	apiErr.Body = string(body)

	var parsed struct {
		ErrCode   string `json:"err_code"`
		ErrMsg    string `json:"err_msg"`
		RequestID string `json:"request_id"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		apiErr.ErrCode = parsed.ErrCode
		apiErr.ErrMsg = parsed.ErrMsg
		apiErr.RequestID = parsed.RequestID
	}

	return apiErr
}
