package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ssvlabs/deposit-settings/cli/flags"
	"github.com/ssvlabs/deposit-settings/logging"
	"github.com/ssvlabs/deposit-settings/logging/fields"
	"github.com/ssvlabs/deposit-settings/networkconfig"
)

var showCmd = &cobra.Command{
	Use:   "show [network]",
	Short: "Shows the chain setting of a registered network, or of the configured network",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := commandLogger(cmd)
		defer logging.CapturePanic(logger)

		format, err := flags.GetOutputFlagValue(cmd)
		if err != nil {
			return err
		}

		var setting networkconfig.ChainSetting
		if len(args) == 1 {
			setting, err = networkconfig.GetChainSetting(args[0])
		} else {
			setting, err = networkconfig.ResolveChainSetting(cfg.Chain)
		}
		if err != nil {
			return errors.Wrap(err, "could not resolve chain setting")
		}

		logger.Debug("resolved chain setting",
			fields.Network(setting.NetworkName()),
			fields.ChainSetting(setting),
		)

		return renderChainSetting(cmd.OutOrStdout(), setting, format)
	},
}

func init() {
	flags.AddOutputFlag(showCmd)
}
