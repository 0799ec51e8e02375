package networkconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestChainSetting_MarshalJSON(t *testing.T) {
	t.Parallel()

	jsonBytes, err := json.Marshal(Mainnet)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"NetworkName": "mainnet",
		"GenesisForkVersion": "0x00000000",
		"GenesisValidatorsRoot": "0x4b363db94e286120d76eb905340fdd4e54bfe9f06bf33ff6cf5ad27f511bfe95",
		"MinDepositAmount": 1000000000,
		"MaxDepositAmount": 32000000000
	}`, string(jsonBytes))
}

func TestChainSetting_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var setting ChainSetting
	err := json.Unmarshal([]byte(`{
		"NetworkName": "pulsechain",
		"GenesisForkVersion": "00000369",
		"GenesisValidatorsRoot": "0x3357ba0018a2582aeabe4ae847aa17d50a3a99aaeb66293c01f80a83aecd0c90",
		"MaxDepositAmount": 1
	}`), &setting)
	require.NoError(t, err)
	require.True(t, PulseChain.Equal(setting))
	require.Equal(t, PulseChainMaxDepositAmount, setting.MaxDepositAmount(), "amounts are derived, not read")

	err = json.Unmarshal([]byte(`{"NetworkName":"x","GenesisForkVersion":"0x123"}`), &setting)
	require.ErrorIs(t, err, ErrMalformedHex)
}

func TestChainSetting_MarshalUnmarshalYAML(t *testing.T) {
	t.Parallel()

	yamlBytes, err := yaml.Marshal(Sepolia)
	require.NoError(t, err)
	require.Contains(t, string(yamlBytes), "0x90000069")

	var unmarshaled ChainSetting
	require.NoError(t, yaml.Unmarshal(yamlBytes, &unmarshaled))
	require.True(t, Sepolia.Equal(unmarshaled))

	remarshaledBytes, err := yaml.Marshal(unmarshaled)
	require.NoError(t, err)
	assert.Equal(t, string(yamlBytes), string(remarshaledBytes))
}

// TestExistingChainSettings validates that every registered setting survives
// a JSON and a YAML round trip.
func TestExistingChainSettings(t *testing.T) {
	for name, setting := range SupportedChains() {
		t.Run(name, func(t *testing.T) {
			jsonBytes, err := json.Marshal(setting)
			require.NoError(t, err)

			var jsonUnmarshaled ChainSetting
			require.NoError(t, json.Unmarshal(jsonBytes, &jsonUnmarshaled))
			assert.True(t, setting.Equal(jsonUnmarshaled))

			yamlBytes, err := yaml.Marshal(setting)
			require.NoError(t, err)

			var yamlUnmarshaled ChainSetting
			require.NoError(t, yaml.Unmarshal(yamlBytes, &yamlUnmarshaled))
			assert.True(t, setting.Equal(yamlUnmarshaled))
		})
	}
}
