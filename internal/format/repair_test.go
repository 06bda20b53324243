package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahrav/go-formatcontract/internal/format"
)

func TestBuildRepairPrompt_Basics(t *testing.T) {
	contract := mustContract(t, 3, "§")
	raw := "One\nTwo\nThree"

	prompt := format.BuildRepairPrompt(raw, contract, "")

	assert.True(t, strings.HasPrefix(prompt, "Reformat the following content only.\n"))
	assert.Contains(t, prompt, "do not translate again")
	assert.Contains(t, prompt, "Output must be exactly 3 sections in order using §n§ markers.")
	assert.Contains(t, prompt, "Output only the final formatted content.")
	assert.True(t, strings.HasSuffix(prompt, "Content to reformat:\n"+raw))
	assert.NotContains(t, prompt, "Reason:")
}

func TestBuildRepairPrompt_WithReason(t *testing.T) {
	contract := mustContract(t, 2, "§")

	prompt := format.BuildRepairPrompt("text", contract, "expected_sections:2,got:3")

	assert.Contains(t, prompt, "Reason: expected_sections:2,got:3\n")
}

func TestBuildRepairPrompt_CustomPrefix(t *testing.T) {
	contract := mustContract(t, 2, "##")

	prompt := format.BuildRepairPrompt("text", contract, "")

	assert.Contains(t, prompt, "using ##n## markers")
}

func TestBuildRepairPrompt_EmptyPrefixFallsBack(t *testing.T) {
	contract := mustContract(t, 2, "§")
	contract.SectionPrefix = ""

	prompt := format.BuildRepairPrompt("text", contract, "")

	assert.Contains(t, prompt, "using §n§ markers")
}
