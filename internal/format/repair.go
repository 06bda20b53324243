package format

import (
	"fmt"
	"strings"

	"github.com/ahrav/go-formatcontract/internal/domain"
)

// BuildRepairPrompt produces the corrective instruction for a retry call
// after contract validation failed. The instruction requests a format-only
// rewrite, restates the required section count and marker syntax, includes
// the optional reason verbatim, and embeds the failing text for the model
// to reformat. This function performs no validation; retry count and
// backoff belong to the caller.
func BuildRepairPrompt(rawText string, contract domain.Contract, reason string) string {
	prefix := contract.SectionPrefix
	if prefix == "" {
		prefix = domain.DefaultSectionPrefix
	}

	var b strings.Builder
	b.WriteString("Reformat the following content only.\n")
	b.WriteString("Do not add explanations, do not translate again, and do not change meaning.\n")
	fmt.Fprintf(&b, "Output must be exactly %d sections in order using %sn%s markers.\n",
		contract.ExpectedSections, prefix, prefix)
	if reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n", reason)
	}
	b.WriteString("Output only the final formatted content.\n\n")
	b.WriteString("Content to reformat:\n")
	b.WriteString(rawText)
	return b.String()
}
