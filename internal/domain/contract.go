// Package domain contains the core value types of the format contract engine.
// All types are immutable after construction and safe for concurrent use.
package domain

import (
	"fmt"
)

// ContractMode identifies the validation discipline a contract enforces.
// Unknown modes are rejected by the orchestrator rather than ignored.
type ContractMode string

// ModeSectionedTextArEnV1 is the only supported contract mode: numbered
// sections delimited by prefix+digits+prefix markers (e.g. §1§).
const ModeSectionedTextArEnV1 ContractMode = "sectioned_text_ar_en_v1"

// DefaultSectionPrefix is the marker delimiter used when the caller does
// not supply one.
const DefaultSectionPrefix = "§"

// Contract is a structural output requirement derived from a prompt and
// enforced on model responses. The JSON shape is the wire form the gateway
// passes between its stages.
type Contract struct {
	// Mode selects the validation discipline. Only
	// ModeSectionedTextArEnV1 is accepted.
	Mode ContractMode `json:"mode" validate:"required,oneof=sectioned_text_ar_en_v1"`

	// ExpectedSections is the exact number of sections the output must
	// contain. A contract never exists with fewer than two.
	ExpectedSections int `json:"expected_sections" validate:"gte=2"`

	// SectionPrefix delimits section markers on both sides of the number.
	SectionPrefix string `json:"section_prefix" validate:"required"`

	// ForbidExtraText rejects non-whitespace content before the first
	// section marker.
	ForbidExtraText bool `json:"forbid_extra_text"`

	// ForbidMarkdownFence rejects candidates containing a triple-backtick
	// fence anywhere.
	ForbidMarkdownFence bool `json:"forbid_markdown_fence"`
}

// NewContract constructs a validated sectioned-text contract. An empty
// prefix falls back to DefaultSectionPrefix; both forbid flags default to
// true, matching what the builder infers from prompts.
func NewContract(expectedSections int, sectionPrefix string) (Contract, error) {
	if sectionPrefix == "" {
		sectionPrefix = DefaultSectionPrefix
	}

	c := Contract{
		Mode:                ModeSectionedTextArEnV1,
		ExpectedSections:    expectedSections,
		SectionPrefix:       sectionPrefix,
		ForbidExtraText:     true,
		ForbidMarkdownFence: true,
	}

	if err := c.Validate(); err != nil {
		return Contract{}, fmt.Errorf("%w: %v", ErrInvalidContract, err)
	}
	return c, nil
}

// Validate checks the contract against its structural constraints.
// Returns nil if valid, or a validation error describing the first
// constraint violation.
func (c *Contract) Validate() error { return validate.Struct(c) }
