package prerecorded

// Response is a finished transcription.
type Response struct {
	Metadata ListenMetadata `json:"metadata"`
	Results  ListenResults  `json:"results"`
}

// CallbackResponse acknowledges a callback request; the transcript
// follows asynchronously.
type CallbackResponse struct {
	RequestID string `json:"request_id"`
}

// ListenMetadata describes the processed audio.
type ListenMetadata struct {
	RequestID      string  `json:"request_id"`
	TransactionKey string  `json:"transaction_key"`
	Sha256         string  `json:"sha256"`
	Created        string  `json:"created"`
	Duration       float64 `json:"duration"`
	Channels       int     `json:"channels"`
}

// ListenResults holds per-channel transcripts and, when requested,
// utterance segments.
type ListenResults struct {
	Channels   []ChannelResult `json:"channels"`
	Utterances []Utterance     `json:"utterances,omitempty"`
}

// ChannelResult is the transcript of one audio channel.
type ChannelResult struct {
	Search           []SearchResults     `json:"search,omitempty"`
	Alternatives     []ResultAlternative `json:"alternatives"`
	DetectedLanguage string              `json:"detected_language,omitempty"`
}

// ResultAlternative is one transcription hypothesis.
type ResultAlternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Words      []Word  `json:"words"`
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

// SearchResults are the matches for one search query.
type SearchResults struct {
	Query string `json:"query"`
	Hits  []Hit  `json:"hits"`
}

// Hit is one place a search query matched the audio.
type Hit struct {
	Confidence float64 `json:"confidence"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Snippet    string  `json:"snippet"`
}

// Utterance is one pause-delimited segment of the transcript.
type Utterance struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
	Channel    int     `json:"channel"`
	Transcript string  `json:"transcript"`
	Words      []Word  `json:"words"`
	Speaker    *int    `json:"speaker,omitempty"`
	ID         string  `json:"id"`
}

// Transcript returns the top alternative of the first channel, or "".
func (r *Response) Transcript() string {
	if len(r.Results.Channels) == 0 ||
		len(r.Results.Channels[0].Alternatives) == 0 {
		return ""
	}
	return r.Results.Channels[0].Alternatives[0].Transcript
}
