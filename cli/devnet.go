package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ssvlabs/deposit-settings/cli/flags"
	"github.com/ssvlabs/deposit-settings/logging"
	"github.com/ssvlabs/deposit-settings/logging/fields"
	"github.com/ssvlabs/deposit-settings/networkconfig"
)

var devnetCmd = &cobra.Command{
	Use:   "devnet",
	Short: "Builds a chain setting for a network that is not registered",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := commandLogger(cmd).Named(logging.NameDevnet)
		defer logging.CapturePanic(logger)

		opts, err := devnetOptions(cmd)
		if err != nil {
			return err
		}

		setting, err := networkconfig.GetDevnetChainSetting(opts.NetworkName, opts.GenesisForkVersion, opts.GenesisValidatorsRoot)
		if err != nil {
			return errors.Wrap(err, "could not build devnet chain setting")
		}

		logger.Debug("built devnet chain setting",
			fields.ChainSetting(setting),
			fields.GenesisForkVersion(setting.GenesisForkVersion()),
			fields.GenesisValidatorsRoot(setting.GenesisValidatorsRoot()),
		)

		if err := setting.Validate(); err != nil {
			logger.Warn("devnet chain setting does not follow registry conventions",
				fields.Network(setting.NetworkName()),
				zap.Error(err),
			)
		}

		format, err := flags.GetOutputFlagValue(cmd)
		if err != nil {
			return err
		}
		return renderChainSetting(cmd.OutOrStdout(), setting, format)
	},
}

// devnetOptions reads the devnet definition from the JSON flag, the individual
// flags, or the config, in that order.
func devnetOptions(cmd *cobra.Command) (networkconfig.DevnetOptions, error) {
	rawJSON, err := flags.GetDevnetChainSettingFlagValue(cmd)
	if err != nil {
		return networkconfig.DevnetOptions{}, err
	}
	if rawJSON != "" {
		return networkconfig.ParseDevnetOptions(rawJSON)
	}

	name, err := flags.GetNetworkNameFlagValue(cmd)
	if err != nil {
		return networkconfig.DevnetOptions{}, err
	}
	if name == "" {
		if cfg.Chain.Devnet.Enabled() {
			return cfg.Chain.Devnet, nil
		}
		return networkconfig.DevnetOptions{}, fmt.Errorf("a devnet network name is required")
	}

	forkVersion, err := flags.GetGenesisForkVersionFlagValue(cmd)
	if err != nil {
		return networkconfig.DevnetOptions{}, err
	}

	validatorsRoot, err := flags.GetGenesisValidatorsRootFlagValue(cmd)
	if err != nil {
		return networkconfig.DevnetOptions{}, err
	}

	return networkconfig.DevnetOptions{
		NetworkName:           name,
		GenesisForkVersion:    forkVersion,
		GenesisValidatorsRoot: validatorsRoot,
	}, nil
}

func init() {
	flags.AddNetworkNameFlag(devnetCmd)
	flags.AddGenesisForkVersionFlag(devnetCmd)
	flags.AddGenesisValidatorsRootFlag(devnetCmd)
	flags.AddDevnetChainSettingFlag(devnetCmd)
	flags.AddOutputFlag(devnetCmd)
}
