package live

import (
	"encoding/json"
	"fmt"
)

// Event is one decoded message from the transcription stream. The
// concrete types are ResultsEvent, MetadataEvent, UtteranceEndEvent,
// SpeechStartedEvent, and ErrorEvent. Events arrive on
// Session.Events in the order the server sent them.
type Event interface {
	eventType() string
}

// Word is one recognized word with timing and confidence.
type Word struct {
	Word           string  `json:"word"`
	Start          float64 `json:"start"`
	End            float64 `json:"end"`
	Confidence     float64 `json:"confidence"`
	Speaker        *int    `json:"speaker,omitempty"`
	PunctuatedWord string  `json:"punctuated_word,omitempty"`
}

// Alternative is one transcription hypothesis for a stretch of audio.
type Alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Words      []Word  `json:"words"`
}

// ResultsEvent carries interim or final transcript results.
type ResultsEvent struct {
	ChannelIndex []int   `json:"channel_index"`
	Duration     float64 `json:"duration"`
	Start        float64 `json:"start"`
	IsFinal      bool    `json:"is_final"`
	SpeechFinal  bool    `json:"speech_final"`
	Channel      struct {
		Alternatives []Alternative `json:"alternatives"`
	} `json:"channel"`
}

// Transcript returns the top alternative's transcript, or "".
func (e *ResultsEvent) Transcript() string {
	if len(e.Channel.Alternatives) == 0 {
		return ""
	}
	return e.Channel.Alternatives[0].Transcript
}

// MetadataEvent describes the stream, typically sent once the server
// has finished processing all audio.
type MetadataEvent struct {
	RequestID string  `json:"request_id"`
	Created   string  `json:"created"`
	Duration  float64 `json:"duration"`
	Channels  int     `json:"channels"`
}

// UtteranceEndEvent marks the end of a spoken utterance.
type UtteranceEndEvent struct {
	Channel     []int   `json:"channel"`
	LastWordEnd float64 `json:"last_word_end"`
}

// SpeechStartedEvent marks the onset of speech when vad_events is set.
type SpeechStartedEvent struct {
	Channel   []int   `json:"channel"`
	Timestamp float64 `json:"timestamp"`
}

// ErrorEvent is either an error payload sent by the server, a frame
// that could not be decoded, or, when Fatal is set, the terminal error
// that ended the session.
type ErrorEvent struct {
	Description string `json:"description"`
	Message     string `json:"message"`
	Variant     string `json:"variant"`

	// Err is the local error for undecodable frames and terminal
	// failures. Nil for server-sent error payloads.
	Err error `json:"-"`

	// Fatal is set on the last event of a failed session.
	Fatal bool `json:"-"`
}

func (e *ErrorEvent) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Description
}

func (*ResultsEvent) eventType() string       { return "Results" }
func (*MetadataEvent) eventType() string      { return "Metadata" }
func (*UtteranceEndEvent) eventType() string  { return "UtteranceEnd" }
func (*SpeechStartedEvent) eventType() string { return "SpeechStarted" }
func (*ErrorEvent) eventType() string         { return "Error" }

// decodeEvent parses one text frame into its event type, selected by
// the payload's "type" field.
func decodeEvent(data []byte) (Event, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("malformed event payload: %w", err)
	}

	var ev Event
	switch probe.Type {
	case "Results":
		ev = &ResultsEvent{}
	case "Metadata":
		ev = &MetadataEvent{}
	case "UtteranceEnd":
		ev = &UtteranceEndEvent{}
	case "SpeechStarted":
		ev = &SpeechStartedEvent{}
	case "Error":
		ev = &ErrorEvent{}
	default:
		return nil, fmt.Errorf("unrecognized event type %q", probe.Type)
	}

	if err := json.Unmarshal(data, ev); err != nil {
		return nil, fmt.Errorf("malformed %s payload: %w", probe.Type, err)
	}

	return ev, nil
}
