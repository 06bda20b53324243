package formatcontract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-formatcontract/pkg/formatcontract"
)

// End-to-end flow the gateway runs: infer a contract from the prompt,
// apply it to the model response, and build a repair prompt on failure.
func TestGatewayFlow(t *testing.T) {
	contract := formatcontract.BuildContract("§1§ translate this\n§2§ and this", "")
	require.NotNil(t, contract)
	assert.Equal(t, 2, contract.ExpectedSections)

	res, err := formatcontract.Apply("§1§ Alpha\n§2§ Beta", contract)
	require.NoError(t, err)
	assert.Equal(t, "§1§ Alpha\n§2§ Beta", res.Text)
	assert.True(t, res.ContractApplied)

	_, err = formatcontract.Apply("§1§ Alpha only", contract)
	require.Error(t, err)
	assert.ErrorIs(t, err, formatcontract.ErrFormatContract)

	var ce *formatcontract.ContractError
	require.ErrorAs(t, err, &ce)

	repair := formatcontract.BuildRepairPrompt("§1§ Alpha only", *contract, string(ce.Detail))
	assert.Contains(t, repair, "Output must be exactly 2 sections in order using §n§ markers.")
	assert.Contains(t, repair, "Reason: "+string(ce.Detail))
	assert.Contains(t, repair, "§1§ Alpha only")
}

func TestNoContractPassThrough(t *testing.T) {
	assert.Nil(t, formatcontract.BuildContract("no markers in this prompt", ""))

	res, err := formatcontract.Apply("  arbitrary model text  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "arbitrary model text", res.Text)
	assert.False(t, res.ContractApplied)
}
