package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContract_Valid(t *testing.T) {
	c, err := NewContract(3, "§")
	require.NoError(t, err)

	assert.Equal(t, ModeSectionedTextArEnV1, c.Mode)
	assert.Equal(t, 3, c.ExpectedSections)
	assert.Equal(t, "§", c.SectionPrefix)
	assert.True(t, c.ForbidExtraText)
	assert.True(t, c.ForbidMarkdownFence)
}

func TestNewContract_DefaultPrefix(t *testing.T) {
	c, err := NewContract(2, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultSectionPrefix, c.SectionPrefix)
}

func TestNewContract_CustomPrefix(t *testing.T) {
	c, err := NewContract(2, "##")
	require.NoError(t, err)
	assert.Equal(t, "##", c.SectionPrefix)
}

func TestNewContract_RejectsTooFewSections(t *testing.T) {
	tests := []struct {
		name     string
		sections int
	}{
		{"zero sections", 0},
		{"one section", 1},
		{"negative sections", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewContract(tt.sections, "§")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidContract)
		})
	}
}

func TestContract_Validate_RejectsUnknownMode(t *testing.T) {
	c := Contract{
		Mode:             ContractMode("sectioned_text_v2"),
		ExpectedSections: 2,
		SectionPrefix:    "§",
	}
	assert.Error(t, c.Validate())
}

func TestContract_JSONShape(t *testing.T) {
	c, err := NewContract(2, "§")
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))

	assert.Equal(t, "sectioned_text_ar_en_v1", wire["mode"])
	assert.Equal(t, float64(2), wire["expected_sections"])
	assert.Equal(t, "§", wire["section_prefix"])
	assert.Equal(t, true, wire["forbid_extra_text"])
	assert.Equal(t, true, wire["forbid_markdown_fence"])
}

func TestContract_JSONRoundTrip(t *testing.T) {
	c, err := NewContract(5, "##")
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded Contract
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c, decoded)
	require.NoError(t, decoded.Validate())
}
