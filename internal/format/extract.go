package format

import (
	"encoding/json"
	"strings"

	"github.com/ahrav/go-formatcontract/internal/domain"
)

// extractionRule is one declarative JSON extraction step: a field path for
// the candidate's source tag and a lookup over the parsed object. Rules run
// in declaration order; order is the extraction priority.
type extractionRule struct {
	path   string
	lookup func(obj map[string]any) any
}

// extractionRules lists the JSON field paths probed for payload text, in
// priority order.
var extractionRules = []extractionRule{
	{path: "final_text", lookup: topLevelField("final_text")},
	{path: "final_reflow_text", lookup: topLevelField("final_reflow_text")},
	{path: "text", lookup: topLevelField("text")},
	{path: "translated_text", lookup: topLevelField("translated_text")},
	{path: "choices[0].message.content", lookup: chatCompletionContent},
}

func topLevelField(name string) func(obj map[string]any) any {
	return func(obj map[string]any) any {
		return obj[name]
	}
}

// chatCompletionContent probes the OpenAI chat-completion response shape:
// choices must be a non-empty list whose first element holds a message object.
func chatCompletionContent(obj map[string]any) any {
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return nil
	}
	first, ok := choices[0].(map[string]any)
	if !ok {
		return nil
	}
	msg, ok := first["message"].(map[string]any)
	if !ok {
		return nil
	}
	return msg["content"]
}

// ExtractCandidates produces the ordered, deduplicated candidate list for a
// raw model response: the trimmed text itself, its unfenced form when the
// response is wrapped in a triple-backtick fence, and payload strings pulled
// from any JSON value either variant parses to. Candidates are deduplicated
// by exact text; the first-seen source tag wins.
func ExtractCandidates(rawText string) []domain.Candidate {
	raw := strings.TrimSpace(rawText)

	var candidates []domain.Candidate
	var variants []string
	if raw != "" {
		candidates = append(candidates, domain.Candidate{Source: domain.SourceRaw, Text: raw})
		variants = append(variants, raw)
	}

	if unfenced := stripOuterFence(raw); unfenced != "" && unfenced != raw {
		candidates = append(candidates, domain.Candidate{Source: domain.SourceRawUnfenced, Text: unfenced})
		variants = append(variants, unfenced)
	}

	for _, variant := range variants {
		value, ok := parseJSONValue(variant)
		if !ok {
			continue
		}
		obj, ok := value.(map[string]any)
		if !ok {
			continue
		}
		for _, rule := range extractionRules {
			field, ok := rule.lookup(obj).(string)
			if !ok {
				continue
			}
			text := strings.TrimSpace(field)
			if text == "" {
				continue
			}
			candidates = append(candidates, domain.Candidate{
				Source: domain.JSONFieldSource(rule.path),
				Text:   text,
			})
		}
	}

	return dedupeCandidates(candidates)
}

// stripOuterFence removes an outer triple-backtick fence: the trimmed text
// must start with ``` and its last line must be exactly a closing ```.
// Anything else is returned unchanged (trimmed).
func stripOuterFence(text string) string {
	raw := strings.TrimSpace(text)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	lines := strings.Split(raw, "\n")
	if len(lines) >= 2 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
	}
	return raw
}

// parseJSONValue parses s as a JSON value. When the full text does not
// parse, it scans left to right for the first '{' or '[' from which a JSON
// value can be decoded, ignoring trailing bytes. Parse failure is absence,
// never an error; a candidate that does not parse is simply skipped.
func parseJSONValue(s string) (any, bool) {
	var value any
	if err := json.Unmarshal([]byte(s), &value); err == nil {
		return value, true
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '{' && s[i] != '[' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(s[i:]))
		var embedded any
		if err := dec.Decode(&embedded); err == nil {
			return embedded, true
		}
	}
	return nil, false
}

// dedupeCandidates drops later candidates whose text exactly matches an
// earlier one, preserving order and the first occurrence's source tag.
func dedupeCandidates(candidates []domain.Candidate) []domain.Candidate {
	if len(candidates) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(candidates))
	out := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.Text]; dup {
			continue
		}
		seen[c.Text] = struct{}{}
		out = append(out, c)
	}
	return out
}
