package networkconfig

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// GetDevnetChainSetting builds a ChainSetting for a network that is not in the
// registry. Both hex strings may carry a 0x prefix. Byte lengths are not
// checked: callers are expected to pass a 4 byte fork version and a 32 byte
// validators root. The result is not registered.
func GetDevnetChainSetting(networkName, genesisForkVersion, genesisValidatorsRoot string) (ChainSetting, error) {
	forkVersion, err := decodeHex(genesisForkVersion)
	if err != nil {
		return ChainSetting{}, fmt.Errorf("decode genesis fork version: %w", err)
	}

	validatorsRoot, err := decodeHex(genesisValidatorsRoot)
	if err != nil {
		return ChainSetting{}, fmt.Errorf("decode genesis validators root: %w", err)
	}

	return ChainSetting{
		networkName:           networkName,
		genesisForkVersion:    forkVersion,
		genesisValidatorsRoot: validatorsRoot,
	}, nil
}

// decodeHex decodes s with or without a 0x prefix.
func decodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedHex, err)
	}
	return b, nil
}
