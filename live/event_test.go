package live

import (
	"testing"
)

func TestDecodeEventVariants(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			"results",
			`{"type":"Results","is_final":true,"channel":{"alternatives":[{"transcript":"hello","confidence":0.9}]}}`,
			"Results",
		},
		{
			"metadata",
			`{"type":"Metadata","request_id":"abc","duration":1.5,"channels":2}`,
			"Metadata",
		},
		{
			"utterance end",
			`{"type":"UtteranceEnd","channel":[0],"last_word_end":3.1}`,
			"UtteranceEnd",
		},
		{
			"speech started",
			`{"type":"SpeechStarted","channel":[0],"timestamp":0.5}`,
			"SpeechStarted",
		},
		{
			"server error",
			`{"type":"Error","description":"bad audio","message":"DATA_ERROR"}`,
			"Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := decodeEvent([]byte(tt.payload))
			if err != nil {
				t.Fatalf("decodeEvent failed: %v", err)
			}
			if got := ev.eventType(); got != tt.want {
				t.Errorf("eventType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeEventResults(t *testing.T) {
	payload := `{
		"type": "Results",
		"channel_index": [0, 1],
		"duration": 1.98,
		"start": 0.0,
		"is_final": true,
		"speech_final": true,
		"channel": {
			"alternatives": [{
				"transcript": "life moves pretty fast",
				"confidence": 0.995,
				"words": [
					{"word": "life", "start": 0.1, "end": 0.4, "confidence": 0.99, "speaker": 0},
					{"word": "moves", "start": 0.4, "end": 0.7, "confidence": 0.98}
				]
			}]
		}
	}`

	ev, err := decodeEvent([]byte(payload))
	if err != nil {
		t.Fatalf("decodeEvent failed: %v", err)
	}
	res, ok := ev.(*ResultsEvent)
	if !ok {
		t.Fatalf("event = %T, want *ResultsEvent", ev)
	}
	if res.Transcript() != "life moves pretty fast" {
		t.Errorf("Transcript() = %q", res.Transcript())
	}
	if !res.IsFinal || !res.SpeechFinal {
		t.Error("finality flags not decoded")
	}
	words := res.Channel.Alternatives[0].Words
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}
	if words[0].Speaker == nil || *words[0].Speaker != 0 {
		t.Error("speaker not decoded for first word")
	}
	if words[1].Speaker != nil {
		t.Error("speaker invented for second word")
	}
}

func TestDecodeEventRejects(t *testing.T) {
	for _, payload := range []string{
		"{not json",
		`{"type":"Bogus"}`,
		`{"no_type_field":true}`,
	} {
		if _, err := decodeEvent([]byte(payload)); err == nil {
			t.Errorf("decodeEvent(%q) succeeded, want error", payload)
		}
	}
}
