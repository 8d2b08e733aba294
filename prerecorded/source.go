package prerecorded

import (
	"bytes"
	"encoding/json"
	"io"
)

// Source is the audio to transcribe, either hosted (UrlSource) or
// supplied inline (ReaderSource).
type Source interface {
	body() (io.Reader, string, error)
}

// UrlSource points the service at audio it can fetch itself.
type UrlSource struct {
	URL string `json:"url"`
}

func (s UrlSource) body() (io.Reader, string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(raw), "application/json", nil
}

// ReaderSource streams raw audio bytes in the request body. MimeType
// tells the service what it is getting, e.g. "audio/wav".
type ReaderSource struct {
	Reader   io.Reader
	MimeType string
}

func (s ReaderSource) body() (io.Reader, string, error) {
	mime := s.MimeType
	if mime == "" {
		mime = "application/octet-stream"
	}
	return s.Reader, mime, nil
}
