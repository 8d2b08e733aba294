package live

import (
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultKeepAliveInterval is how long the pump lets the connection
	// sit idle before it writes a KeepAlive control frame.
	DefaultKeepAliveInterval = 10 * time.Second

	// DefaultCloseTimeout bounds how long a graceful close waits for the
	// server to acknowledge before the connection is torn down.
	DefaultCloseTimeout = 5 * time.Second
)

// Options configures a live transcription session. Zero-valued fields
// are omitted from the handshake query string, leaving the server
// defaults in effect.
type Options struct {
	Model    string
	Version  string
	Language string
	Tier     string

	// Audio format of the binary frames the session will carry.
	Encoding   string
	SampleRate int
	Channels   int

	Punctuate       bool
	ProfanityFilter bool
	Diarize         bool
	SmartFormat     bool
	Numerals        bool
	InterimResults  bool
	DetectLanguage  bool
	VadEvents       bool
	NoDelay         bool

	// Endpointing takes "false" or a silence threshold in milliseconds.
	Endpointing    string
	UtteranceEndMs int

	Keywords []string
	Tags     []string
	Callback string

	// KeepAlive makes the pump emit KeepAlive frames while the producer
	// is idle, so the server does not time the session out.
	KeepAlive         bool
	KeepAliveInterval time.Duration

	// CloseTimeout bounds the graceful shutdown handshake.
	CloseTimeout time.Duration

	// Params carries any query parameters not covered above, verbatim.
	Params url.Values
}

// Query encodes the options as handshake query parameters.
func (o *Options) Query() url.Values {
	q := url.Values{}

	setStr := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	setBool := func(key string, val bool) {
		if val {
			q.Set(key, "true")
		}
	}

	setStr("model", o.Model)
	setStr("version", o.Version)
	setStr("language", o.Language)
	setStr("tier", o.Tier)
	setStr("encoding", o.Encoding)
	if o.SampleRate != 0 {
		q.Set("sample_rate", strconv.Itoa(o.SampleRate))
	}
	if o.Channels != 0 {
		q.Set("channels", strconv.Itoa(o.Channels))
	}
	setBool("punctuate", o.Punctuate)
	setBool("profanity_filter", o.ProfanityFilter)
	setBool("diarize", o.Diarize)
	setBool("smart_format", o.SmartFormat)
	setBool("numerals", o.Numerals)
	setBool("interim_results", o.InterimResults)
	setBool("detect_language", o.DetectLanguage)
	setBool("vad_events", o.VadEvents)
	setBool("no_delay", o.NoDelay)
	setStr("endpointing", o.Endpointing)
	if o.UtteranceEndMs != 0 {
		q.Set("utterance_end_ms", strconv.Itoa(o.UtteranceEndMs))
	}
	for _, kw := range o.Keywords {
		q.Add("keywords", kw)
	}
	for _, tag := range o.Tags {
		q.Add("tag", tag)
	}
	setStr("callback", o.Callback)

	for key, vals := range o.Params {
		for _, val := range vals {
			q.Add(key, val)
		}
	}

	return q
}

func (o *Options) keepAliveInterval() time.Duration {
	if o.KeepAliveInterval > 0 {
		return o.KeepAliveInterval
	}
	return DefaultKeepAliveInterval
}

func (o *Options) closeTimeout() time.Duration {
	if o.CloseTimeout > 0 {
		return o.CloseTimeout
	}
	return DefaultCloseTimeout
}
