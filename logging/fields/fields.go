package fields

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FieldAmount                = "amount"
	FieldChainSetting          = "chain_setting"
	FieldConfig                = "config"
	FieldCount                 = "count"
	FieldGenesisForkVersion    = "genesis_fork_version"
	FieldGenesisValidatorsRoot = "genesis_validators_root"
	FieldMaxDepositAmount      = "max_deposit_amount"
	FieldMinDepositAmount      = "min_deposit_amount"
	FieldNetwork               = "network"
	FieldRegistryVersion       = "registry_version"
)

type hexStringer struct {
	val []byte
}

func (h hexStringer) String() string {
	return hexutil.Encode(h.val)
}

func Amount(val uint64) zapcore.Field {
	return zap.Uint64(FieldAmount, val)
}

func Config(val fmt.Stringer) zapcore.Field {
	return zap.Stringer(FieldConfig, val)
}

func Count(val int) zapcore.Field {
	return zap.Int(FieldCount, val)
}

func ChainSetting(val fmt.Stringer) zapcore.Field {
	return zap.Stringer(FieldChainSetting, val)
}

func GenesisForkVersion(val []byte) zapcore.Field {
	return zap.Stringer(FieldGenesisForkVersion, hexStringer{val: val})
}

func GenesisValidatorsRoot(val []byte) zapcore.Field {
	return zap.Stringer(FieldGenesisValidatorsRoot, hexStringer{val: val})
}

func MinDepositAmount(val uint64) zapcore.Field {
	return zap.Uint64(FieldMinDepositAmount, val)
}

func MaxDepositAmount(val uint64) zapcore.Field {
	return zap.Uint64(FieldMaxDepositAmount, val)
}

func Network(val string) zapcore.Field {
	return zap.String(FieldNetwork, val)
}

func RegistryVersion(val string) zapcore.Field {
	return zap.String(FieldRegistryVersion, val)
}
