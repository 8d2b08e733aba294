package prerecorded

import "testing"

func TestOptionsQueryEmpty(t *testing.T) {
	q := (&Options{}).Query()
	if len(q) != 0 {
		t.Errorf("empty options produced query %v", q)
	}
}

func TestOptionsQueryFormats(t *testing.T) {
	opts := &Options{
		Model:    "nova-2",
		Redact:   []string{"pci", "ssn"},
		Search:   []string{"hello", "world"},
		Replace:  []Replace{{Find: "dg", Replacement: "deepgram"}, {Find: "um"}},
		Keywords: []Keyword{{Keyword: "cart"}, {Keyword: "horse", Intensifier: 1.5}},
	}
	q := opts.Query()

	if got := q["redact"]; len(got) != 2 || got[0] != "pci" || got[1] != "ssn" {
		t.Errorf("redact = %v", got)
	}
	if got := q["search"]; len(got) != 2 {
		t.Errorf("search = %v", got)
	}
	if got := q["replace"]; len(got) != 2 || got[0] != "dg:deepgram" || got[1] != "um" {
		t.Errorf("replace = %v", got)
	}
	if got := q["keywords"]; len(got) != 2 || got[0] != "cart" || got[1] != "horse:1.5" {
		t.Errorf("keywords = %v", got)
	}
}

func TestOptionsQueryMultichannel(t *testing.T) {
	q := (&Options{Multichannel: true}).Query()
	if q.Get("multichannel") != "true" {
		t.Errorf("multichannel = %q", q.Get("multichannel"))
	}
	if q.Get("model") != "" {
		t.Errorf("model = %q, want empty", q.Get("model"))
	}

	q = (&Options{
		Model:              "ignored",
		MultichannelModels: []string{"nova-2", "base"},
	}).Query()
	if q.Get("model") != "nova-2:base" {
		t.Errorf("model = %q, want nova-2:base", q.Get("model"))
	}
	if q.Get("multichannel") != "true" {
		t.Error("multichannel not implied by per-channel models")
	}
}

func TestOptionsQueryUtterances(t *testing.T) {
	q := (&Options{Utterances: true, UttSplit: 1.2}).Query()
	if q.Get("utterances") != "true" || q.Get("utt_split") != "1.2" {
		t.Errorf("query = %v", q)
	}

	q = (&Options{UttSplit: 1.2}).Query()
	if q.Get("utt_split") != "" {
		t.Error("utt_split leaked without utterances")
	}
}

func TestOptionsQueryKeywordBoostLegacy(t *testing.T) {
	q := (&Options{KeywordBoostLegacy: true}).Query()
	if q.Get("keyword_boost") != "legacy" {
		t.Errorf("keyword_boost = %q", q.Get("keyword_boost"))
	}
}
