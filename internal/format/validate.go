package format

import (
	"strings"

	"github.com/ahrav/go-formatcontract/internal/domain"
)

// ValidateSectionedText checks one candidate text against a sectioned-text
// contract. Checks run in a fixed order and short-circuit at the first
// failure; each failure carries a distinct error code via
// *domain.ValidationError. Returns nil when the candidate satisfies the
// contract.
func ValidateSectionedText(text string, contract domain.Contract) error {
	t := strings.TrimSpace(text)
	if t == "" {
		return &domain.ValidationError{Code: domain.CodeEmptyText}
	}

	prefix := contract.SectionPrefix
	if prefix == "" {
		prefix = domain.DefaultSectionPrefix
	}

	if contract.ForbidMarkdownFence && strings.Contains(t, "```") {
		return &domain.ValidationError{Code: domain.CodeMarkdownFence}
	}

	markers := scanMarkers(t, prefix)
	if len(markers) == 0 {
		return &domain.ValidationError{Code: domain.CodeMarkerMissing}
	}

	if contract.ForbidExtraText && strings.TrimSpace(t[:markers[0].start]) != "" {
		return &domain.ValidationError{Code: domain.CodeExtraPrefixText}
	}

	// A section's content runs from the end of its marker to the start of
	// the next marker, or to the end of the text for the last one.
	numbers := make([]int, 0, len(markers))
	for i, m := range markers {
		end := len(t)
		if i+1 < len(markers) {
			end = markers[i+1].start
		}
		numbers = append(numbers, m.number)
		if strings.TrimSpace(t[m.end:end]) == "" {
			return &domain.ValidationError{Code: domain.SectionEmptyCode(m.number)}
		}
	}

	for i, n := range numbers {
		if n != i+1 {
			return &domain.ValidationError{Code: domain.NumberingInvalidCode(numbers)}
		}
	}

	if contract.ExpectedSections > 0 && len(numbers) != contract.ExpectedSections {
		return &domain.ValidationError{
			Code: domain.ExpectedSectionsCode(contract.ExpectedSections, len(numbers)),
		}
	}

	return nil
}
