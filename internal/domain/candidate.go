package domain

// CandidateSource names the provenance of a candidate payload extracted
// from a raw model response.
type CandidateSource string

const (
	// SourceRaw is the trimmed response text taken verbatim.
	SourceRaw CandidateSource = "raw"

	// SourceRawUnfenced is the response text with an outer triple-backtick
	// fence removed.
	SourceRawUnfenced CandidateSource = "raw.unfenced"
)

// JSONFieldSource tags a candidate extracted from a JSON field path inside
// the response, e.g. JSONFieldSource("final_text") == "json.final_text".
func JSONFieldSource(path string) CandidateSource {
	return CandidateSource("json." + path)
}

// Candidate is one possible interpretation of a raw model response as the
// intended payload text. Text is always trimmed and non-empty.
type Candidate struct {
	Source CandidateSource
	Text   string
}
