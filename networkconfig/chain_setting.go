package networkconfig

import (
	"bytes"
	"fmt"

	"github.com/attestantio/go-eth2-client/spec/phase0"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sanity-io/litter"
	"go.uber.org/multierr"
)

const (
	forkVersionLength    = len(phase0.Version{})
	validatorsRootLength = len(phase0.Root{})
)

// ChainSetting holds the genesis parameters of a single network.
//
// A ChainSetting is immutable: fields are unexported and every accessor
// returns a copy, so values taken from the registry can be shared freely.
type ChainSetting struct {
	networkName           string
	genesisForkVersion    []byte
	genesisValidatorsRoot []byte
}

// NewChainSetting returns a ChainSetting holding copies of the given byte strings.
// The lengths are not checked, see Validate.
func NewChainSetting(networkName string, genesisForkVersion, genesisValidatorsRoot []byte) ChainSetting {
	return ChainSetting{
		networkName:           networkName,
		genesisForkVersion:    bytes.Clone(genesisForkVersion),
		genesisValidatorsRoot: bytes.Clone(genesisValidatorsRoot),
	}
}

// mustChainSetting builds a registry entry from compiled-in hex literals.
func mustChainSetting(networkName, genesisForkVersion, genesisValidatorsRoot string) ChainSetting {
	return ChainSetting{
		networkName:           networkName,
		genesisForkVersion:    hexutil.MustDecode(genesisForkVersion),
		genesisValidatorsRoot: hexutil.MustDecode(genesisValidatorsRoot),
	}
}

func (c ChainSetting) NetworkName() string {
	return c.networkName
}

func (c ChainSetting) GenesisForkVersion() []byte {
	return bytes.Clone(c.genesisForkVersion)
}

func (c ChainSetting) GenesisValidatorsRoot() []byte {
	return bytes.Clone(c.genesisValidatorsRoot)
}

// ForkVersion returns the genesis fork version as a fixed-size beacon type.
func (c ChainSetting) ForkVersion() (phase0.Version, error) {
	if len(c.genesisForkVersion) != forkVersionLength {
		return phase0.Version{}, fmt.Errorf("%w: genesis fork version has %d bytes, expected %d",
			ErrInvalidLength, len(c.genesisForkVersion), forkVersionLength)
	}
	return phase0.Version(c.genesisForkVersion), nil
}

// ValidatorsRoot returns the genesis validators root as a fixed-size beacon type.
func (c ChainSetting) ValidatorsRoot() (phase0.Root, error) {
	if len(c.genesisValidatorsRoot) != validatorsRootLength {
		return phase0.Root{}, fmt.Errorf("%w: genesis validators root has %d bytes, expected %d",
			ErrInvalidLength, len(c.genesisValidatorsRoot), validatorsRootLength)
	}
	return phase0.Root(c.genesisValidatorsRoot), nil
}

// Validate reports every deviation from the registry conventions:
// a non-empty name, a 4 byte fork version and a 32 byte validators root.
func (c ChainSetting) Validate() error {
	var err error
	if c.networkName == "" {
		err = multierr.Append(err, ErrEmptyNetworkName)
	}
	if _, forkErr := c.ForkVersion(); forkErr != nil {
		err = multierr.Append(err, forkErr)
	}
	if _, rootErr := c.ValidatorsRoot(); rootErr != nil {
		err = multierr.Append(err, rootErr)
	}
	return err
}

// Equal reports whether both settings carry the same name and byte strings.
func (c ChainSetting) Equal(other ChainSetting) bool {
	return c.networkName == other.networkName &&
		bytes.Equal(c.genesisForkVersion, other.genesisForkVersion) &&
		bytes.Equal(c.genesisValidatorsRoot, other.genesisValidatorsRoot)
}

// String implements fmt.Stringer.
func (c ChainSetting) String() string {
	marshaled, err := c.MarshalJSON()
	if err != nil {
		panic(err)
	}

	return string(marshaled)
}

// GoString implements fmt.GoStringer.
func (c ChainSetting) GoString() string {
	return litter.Options{HidePrivateFields: false}.Sdump(c)
}
