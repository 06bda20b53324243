package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidContract indicates that contract construction violated a
// structural constraint.
var ErrInvalidContract = errors.New("invalid format contract")

// ErrFormatContract is the sentinel for orchestration failure: every
// candidate extracted from a response failed validation, or the contract
// mode is unsupported. Callers test with errors.Is.
var ErrFormatContract = errors.New("format_contract_failed")

// ErrorCode is the machine-readable verdict for a single failed check.
// Codes are stable strings the gateway forwards into repair prompts and
// diagnostics.
type ErrorCode string

const (
	// CodeEmptyText indicates the candidate is empty after trimming.
	CodeEmptyText ErrorCode = "empty_text"

	// CodeMarkdownFence indicates a forbidden triple-backtick fence.
	CodeMarkdownFence ErrorCode = "markdown_fence_detected"

	// CodeMarkerMissing indicates no section marker was found at all.
	CodeMarkerMissing ErrorCode = "section_marker_missing"

	// CodeExtraPrefixText indicates non-whitespace content before the
	// first section marker.
	CodeExtraPrefixText ErrorCode = "extra_prefix_text"

	// CodeNoValidCandidate indicates the response produced no candidate
	// to attempt at all (e.g. empty input).
	CodeNoValidCandidate ErrorCode = "no_valid_candidate"
)

// SectionEmptyCode reports a section whose trimmed content is empty.
func SectionEmptyCode(section int) ErrorCode {
	return ErrorCode(fmt.Sprintf("section_empty:%d", section))
}

// NumberingInvalidCode reports an observed section-number sequence that is
// not the strict ascending run 1..n.
func NumberingInvalidCode(numbers []int) ErrorCode {
	return ErrorCode(fmt.Sprintf("section_numbering_invalid:%v", numbers))
}

// ExpectedSectionsCode reports a section-count mismatch.
func ExpectedSectionsCode(expected, got int) ErrorCode {
	return ErrorCode(fmt.Sprintf("expected_sections:%d,got:%d", expected, got))
}

// UnsupportedModeCode reports a contract whose mode this engine does not
// implement. An empty mode renders as "empty".
func UnsupportedModeCode(mode ContractMode) ErrorCode {
	if mode == "" {
		mode = "empty"
	}
	return ErrorCode(fmt.Sprintf("unsupported_contract_mode:%s", mode))
}

// ValidationError is the verdict for one candidate failing one check.
type ValidationError struct {
	Code ErrorCode
}

// Error returns the error code string.
func (e *ValidationError) Error() string { return string(e.Code) }

// ContractError reports orchestration failure after exhausting every
// candidate. Detail carries the error code of the last attempted candidate;
// AttemptedSources lists every candidate tried, in order, for diagnosis.
type ContractError struct {
	Detail           ErrorCode
	AttemptedSources []CandidateSource
}

// Error returns the sentinel name with the failing detail.
func (e *ContractError) Error() string {
	return fmt.Sprintf("format_contract_failed: %s", e.Detail)
}

// Unwrap returns ErrFormatContract for errors.Is compatibility.
func (e *ContractError) Unwrap() error { return ErrFormatContract }
