package format_test

import (
	"strings"
	"testing"

	"github.com/ahrav/go-formatcontract/internal/format"
)

// FuzzExtractCandidates checks extractor invariants across arbitrary
// responses: no panics, no empty or untrimmed candidates, no duplicate
// texts, and the raw candidate first whenever input is non-empty.
func FuzzExtractCandidates(f *testing.F) {
	f.Add("§1§ One\n§2§ Two")
	f.Add("```\n§1§ One\n§2§ Two\n```")
	f.Add(`{"final_text": "§1§ One\n§2§ Two"}`)
	f.Add(`prose {"text": "payload"} trailing`)
	f.Add(`{"choices": [{"message": {"content": "hi"}}]}`)
	f.Add("```json\n{\"translated_text\": \"x\"}\n```")
	f.Add("")
	f.Add("{broken json")
	f.Add(`[1, 2, 3]`)

	f.Fuzz(func(t *testing.T, raw string) {
		candidates := format.ExtractCandidates(raw)

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			if len(candidates) != 0 {
				t.Fatalf("empty input produced %d candidates", len(candidates))
			}
			return
		}

		if len(candidates) == 0 {
			t.Fatal("non-empty input produced no candidates")
		}
		if candidates[0].Source != "raw" || candidates[0].Text != trimmed {
			t.Errorf("first candidate must be the trimmed raw text, got %+v", candidates[0])
		}

		seen := make(map[string]bool, len(candidates))
		for _, c := range candidates {
			if c.Text == "" || c.Text != strings.TrimSpace(c.Text) {
				t.Errorf("candidate %q from %s is empty or untrimmed", c.Text, c.Source)
			}
			if seen[c.Text] {
				t.Errorf("duplicate candidate text %q", c.Text)
			}
			seen[c.Text] = true
		}
	})
}
