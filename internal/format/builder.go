// Package format implements the format contract engine: contract inference
// from prompts, candidate extraction from raw model responses, sectioned-text
// validation, orchestration, and repair-prompt construction.
//
// Every function in this package is pure and synchronous. There is no shared
// state, no I/O, and no locking; all operations are safe to call concurrently
// from independent request-handling goroutines.
package format

import (
	"strings"

	"github.com/ahrav/go-formatcontract/internal/domain"
)

// BuildContract infers a sectioned-text contract from prompt text.
// Returns nil when no stable section sequence can be inferred; nil is
// absence, not an error, and the caller proceeds without validation.
//
// The contract length is the most recently started contiguous ascending run
// of marker numbers beginning at 1 — not the longest run anywhere. Prompts
// often carry instructional examples ("e.g. §1§ ... §2§ ...") ahead of the
// authoritative numbered template, and the last-starting run skips past them.
func BuildContract(promptText, sectionPrefix string) *domain.Contract {
	if sectionPrefix == "" {
		sectionPrefix = domain.DefaultSectionPrefix
	}
	if strings.TrimSpace(promptText) == "" {
		return nil
	}

	markers := scanMarkers(promptText, sectionPrefix)
	if len(markers) == 0 {
		return nil
	}

	// latestRun survives a broken run; a fresh run restarting at 1
	// overwrites it even when the earlier run was longer.
	latestRun := 0
	run := 0
	expected := 1
	for _, m := range markers {
		switch {
		case m.number == 1:
			run = 1
			expected = 2
			latestRun = 1
		case run > 0 && m.number == expected:
			run++
			expected++
			latestRun = run
		default:
			run = 0
			expected = 1
		}
	}

	if latestRun < 2 {
		return nil
	}

	contract, err := domain.NewContract(latestRun, sectionPrefix)
	if err != nil {
		return nil
	}
	return &contract
}
