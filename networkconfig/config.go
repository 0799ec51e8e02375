package networkconfig

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// RegistryVersion identifies the snapshot of the chain table below.
// Decommissioned testnets (goerli, prater, zhejiang) are not part of it.
const RegistryVersion = "2.8.0"

var (
	ErrUnknownNetwork          = errors.New("network not supported")
	ErrMalformedHex            = errors.New("malformed hex")
	ErrInvalidLength           = errors.New("invalid length")
	ErrDepositAmountOutOfRange = errors.New("deposit amount out of range")
	ErrEmptyNetworkName        = errors.New("empty network name")
)

var supportedChains = map[string]ChainSetting{
	Mainnet.NetworkName():             Mainnet,
	Sepolia.NetworkName():             Sepolia,
	Holesky.NetworkName():             Holesky,
	Mekong.NetworkName():              Mekong,
	PulseChain.NetworkName():          PulseChain,
	PulseChainDevnet.NetworkName():    PulseChainDevnet,
	PulseChainTestnetV4.NetworkName(): PulseChainTestnetV4,
}

// GetChainSetting looks name up in the registry. The lookup is exact, without
// any case folding. Use DefaultChainSetting when no name is given.
func GetChainSetting(name string) (ChainSetting, error) {
	if setting, ok := supportedChains[name]; ok {
		return setting, nil
	}

	return ChainSetting{}, fmt.Errorf("%w: %v", ErrUnknownNetwork, name)
}

// DefaultChainSetting returns the mainnet entry.
func DefaultChainSetting() ChainSetting {
	return Mainnet
}

// SupportedChains returns a copy of the registry keyed by network name.
func SupportedChains() map[string]ChainSetting {
	return maps.Clone(supportedChains)
}

// ChainNames returns the sorted names of all registered networks.
func ChainNames() []string {
	return slices.Sorted(maps.Keys(supportedChains))
}
