package networkconfig

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"gopkg.in/yaml.v3"
)

// marshaledChainSetting is the wire form of ChainSetting. Deposit amounts are
// derived from the name and only ever written.
type marshaledChainSetting struct {
	NetworkName           string `json:"NetworkName" yaml:"NetworkName"`
	GenesisForkVersion    string `json:"GenesisForkVersion" yaml:"GenesisForkVersion"`
	GenesisValidatorsRoot string `json:"GenesisValidatorsRoot" yaml:"GenesisValidatorsRoot"`
	MinDepositAmount      uint64 `json:"MinDepositAmount,omitempty" yaml:"MinDepositAmount,omitempty"`
	MaxDepositAmount      uint64 `json:"MaxDepositAmount,omitempty" yaml:"MaxDepositAmount,omitempty"`
}

func (c ChainSetting) marshal() marshaledChainSetting {
	return marshaledChainSetting{
		NetworkName:           c.networkName,
		GenesisForkVersion:    hexutil.Encode(c.genesisForkVersion),
		GenesisValidatorsRoot: hexutil.Encode(c.genesisValidatorsRoot),
		MinDepositAmount:      c.MinDepositAmount(),
		MaxDepositAmount:      c.MaxDepositAmount(),
	}
}

func (c *ChainSetting) unmarshal(aux marshaledChainSetting) error {
	setting, err := GetDevnetChainSetting(aux.NetworkName, aux.GenesisForkVersion, aux.GenesisValidatorsRoot)
	if err != nil {
		return err
	}

	*c = setting
	return nil
}

func (c ChainSetting) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.marshal())
}

func (c *ChainSetting) UnmarshalJSON(data []byte) error {
	var aux marshaledChainSetting
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	return c.unmarshal(aux)
}

func (c ChainSetting) MarshalYAML() (interface{}, error) {
	return c.marshal(), nil
}

func (c *ChainSetting) UnmarshalYAML(value *yaml.Node) error {
	var aux marshaledChainSetting
	if err := value.Decode(&aux); err != nil {
		return fmt.Errorf("decode chain setting: %w", err)
	}

	return c.unmarshal(aux)
}
