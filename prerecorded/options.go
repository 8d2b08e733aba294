package prerecorded

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Replace swaps find for its replacement in the transcript. An empty
// Replacement removes the term.
type Replace struct {
	Find        string
	Replacement string
}

// Keyword boosts recognition of a term. A zero Intensifier sends the
// keyword without one.
type Keyword struct {
	Keyword     string
	Intensifier float64
}

// Options configures a prerecorded transcription request. Zero-valued
// fields are omitted, leaving the server defaults in effect. The
// feature fields pass through to the service verbatim.
type Options struct {
	Model    string
	Version  string
	Language string
	Tier     string

	Punctuate       bool
	ProfanityFilter bool
	Redact          []string
	Diarize         bool
	NER             bool
	Numerals        bool
	SmartFormat     bool
	DetectLanguage  bool

	// Multichannel transcribes each audio channel independently.
	// MultichannelModels optionally assigns one model per channel.
	Multichannel       bool
	MultichannelModels []string

	Alternatives int

	Search   []string
	Replace  []Replace
	Keywords []Keyword

	// KeywordBoostLegacy selects the legacy keyword boosting behavior.
	KeywordBoostLegacy bool

	// Utterances segments the transcript by pauses; UttSplit tunes the
	// pause length in seconds.
	Utterances bool
	UttSplit   float64

	Tags []string

	// Params carries any query parameters not covered above, verbatim.
	Params url.Values
}

// Query encodes the options as request query parameters.
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

	if len(o.MultichannelModels) > 0 {
		q.Set("model", strings.Join(o.MultichannelModels, ":"))
		q.Set("multichannel", "true")
	} else {
		setStr("model", o.Model)
		setBool("multichannel", o.Multichannel)
	}
	setStr("version", o.Version)
	setStr("language", o.Language)
	setStr("tier", o.Tier)
	setBool("punctuate", o.Punctuate)
	setBool("profanity_filter", o.ProfanityFilter)
	for _, redact := range o.Redact {
		q.Add("redact", redact)
	}
	setBool("diarize", o.Diarize)
	setBool("ner", o.NER)
	setBool("numerals", o.Numerals)
	setBool("smart_format", o.SmartFormat)
	setBool("detect_language", o.DetectLanguage)
	if o.Alternatives != 0 {
		q.Set("alternatives", strconv.Itoa(o.Alternatives))
	}
	for _, search := range o.Search {
		q.Add("search", search)
	}
	for _, r := range o.Replace {
		if r.Replacement != "" {
			q.Add("replace", r.Find+":"+r.Replacement)
		} else {
			q.Add("replace", r.Find)
		}
	}
	for _, kw := range o.Keywords {
		if kw.Intensifier != 0 {
			q.Add("keywords", fmt.Sprintf("%s:%v", kw.Keyword, kw.Intensifier))
		} else {
			q.Add("keywords", kw.Keyword)
		}
	}
	if o.KeywordBoostLegacy {
		q.Set("keyword_boost", "legacy")
	}
	if o.Utterances {
		q.Set("utterances", "true")
		if o.UttSplit != 0 {
			q.Set("utt_split", strconv.FormatFloat(o.UttSplit, 'f', -1, 64))
		}
	}
	for _, tag := range o.Tags {
		q.Add("tag", tag)
	}

	for key, vals := range o.Params {
		for _, val := range vals {
			q.Add(key, val)
		}
	}

	return q
}
