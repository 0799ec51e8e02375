package networkconfig

import (
	"encoding/json"
	"fmt"
)

// ChainOptions selects the chain setting a command operates on.
type ChainOptions struct {
	Network string        `yaml:"Network" env:"NETWORK" env-default:"mainnet" env-description:"Name of a registered network"`
	Devnet  DevnetOptions `yaml:"Devnet"`
}

// DevnetOptions describes a network that is not in the registry. The JSON
// form matches the devnet chain setting accepted by the deposit tooling.
type DevnetOptions struct {
	NetworkName           string `yaml:"NetworkName" json:"network_name" env:"DEVNET_NETWORK_NAME" env-description:"Devnet network name, enables the devnet setting"`
	GenesisForkVersion    string `yaml:"GenesisForkVersion" json:"genesis_fork_version" env:"DEVNET_GENESIS_FORK_VERSION" env-description:"Devnet genesis fork version (hex)"`
	GenesisValidatorsRoot string `yaml:"GenesisValidatorsRoot" json:"genesis_validator_root" env:"DEVNET_GENESIS_VALIDATORS_ROOT" env-description:"Devnet genesis validators root (hex)"`
}

// Enabled reports whether a devnet setting was configured.
func (d DevnetOptions) Enabled() bool {
	return d.NetworkName != ""
}

// ParseDevnetOptions parses a JSON devnet chain setting such as
// {"network_name":"custom","genesis_fork_version":"00000369","genesis_validator_root":"..."}.
func ParseDevnetOptions(data string) (DevnetOptions, error) {
	var opts DevnetOptions
	if err := json.Unmarshal([]byte(data), &opts); err != nil {
		return DevnetOptions{}, fmt.Errorf("parse devnet chain setting: %w", err)
	}
	if !opts.Enabled() {
		return DevnetOptions{}, fmt.Errorf("parse devnet chain setting: missing network_name")
	}
	return opts, nil
}

// ResolveChainSetting returns the configured devnet setting if any, otherwise
// the registry entry named by opts.Network.
func ResolveChainSetting(opts ChainOptions) (ChainSetting, error) {
	if opts.Devnet.Enabled() {
		return GetDevnetChainSetting(opts.Devnet.NetworkName, opts.Devnet.GenesisForkVersion, opts.Devnet.GenesisValidatorsRoot)
	}

	return GetChainSetting(opts.Network)
}
