// Package formatcontract is the public surface of the format contract
// engine: infer a structural output contract from a generation prompt,
// validate raw model output against it, and build a corrective prompt when
// validation fails.
//
// All operations are pure and stateless; nothing here performs I/O, retries
// generation calls, or persists state between calls. The gateway owns
// transport and the retry loop.
package formatcontract

import (
	"github.com/ahrav/go-formatcontract/internal/domain"
	"github.com/ahrav/go-formatcontract/internal/format"
)

// Core value types, re-exported for gateway use.
type (
	Contract        = domain.Contract
	ContractMode    = domain.ContractMode
	Candidate       = domain.Candidate
	CandidateSource = domain.CandidateSource
	ErrorCode       = domain.ErrorCode
	ContractError   = domain.ContractError
	Result          = format.Result
)

// ModeSectionedTextArEnV1 is the only supported contract mode.
const ModeSectionedTextArEnV1 = domain.ModeSectionedTextArEnV1

// DefaultSectionPrefix is the marker delimiter used when none is supplied.
const DefaultSectionPrefix = domain.DefaultSectionPrefix

// ErrFormatContract is the sentinel for contract application failure;
// test with errors.Is.
var ErrFormatContract = domain.ErrFormatContract

// BuildContract infers a sectioned-text contract from prompt text.
// Returns nil when no contract applies; the caller then skips validation.
func BuildContract(promptText, sectionPrefix string) *Contract {
	return format.BuildContract(promptText, sectionPrefix)
}

// Apply validates raw model text against a contract, returning the first
// candidate interpretation that satisfies it. A nil contract passes the
// trimmed text through unvalidated.
func Apply(rawText string, contract *Contract) (*Result, error) {
	return format.Apply(rawText, contract)
}

// BuildRepairPrompt builds the corrective instruction for a retry call
// after Apply failed.
func BuildRepairPrompt(rawText string, contract Contract, reason string) string {
	return format.BuildRepairPrompt(rawText, contract, reason)
}
