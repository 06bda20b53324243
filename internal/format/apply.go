package format

import (
	"errors"
	"strings"

	"github.com/ahrav/go-formatcontract/internal/domain"
)

// Result is the outcome of a successful contract application.
type Result struct {
	// Text is the accepted payload, trimmed.
	Text string `json:"text"`

	// Source tags which candidate satisfied the contract.
	Source domain.CandidateSource `json:"source"`

	// ContractApplied is false only in pass-through mode, when no
	// contract was supplied.
	ContractApplied bool `json:"contract_applied"`
}

// Apply validates raw model text against a contract and returns the first
// candidate that satisfies it.
//
// A nil contract is pass-through: the trimmed text is returned unvalidated
// with ContractApplied false. An unsupported contract mode fails immediately
// without any candidate search. Otherwise candidates are extracted and
// validated in order; when all fail, the returned *domain.ContractError
// carries the last attempted candidate's error code and the full list of
// attempted sources.
func Apply(rawText string, contract *domain.Contract) (*Result, error) {
	text := strings.TrimSpace(rawText)
	if contract == nil {
		return &Result{Text: text, Source: domain.SourceRaw, ContractApplied: false}, nil
	}

	if contract.Mode != domain.ModeSectionedTextArEnV1 {
		return nil, &domain.ContractError{Detail: domain.UnsupportedModeCode(contract.Mode)}
	}

	candidates := ExtractCandidates(text)
	attempted := make([]domain.CandidateSource, 0, len(candidates))
	detail := domain.CodeNoValidCandidate
	for _, cand := range candidates {
		attempted = append(attempted, cand.Source)
		err := ValidateSectionedText(cand.Text, *contract)
		if err == nil {
			return &Result{Text: cand.Text, Source: cand.Source, ContractApplied: true}, nil
		}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			detail = ve.Code
		}
	}

	return nil, &domain.ContractError{Detail: detail, AttemptedSources: attempted}
}
