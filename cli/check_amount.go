package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ssvlabs/deposit-settings/cli/flags"
	"github.com/ssvlabs/deposit-settings/logging"
	"github.com/ssvlabs/deposit-settings/logging/fields"
	"github.com/ssvlabs/deposit-settings/networkconfig"
)

var checkAmountCmd = &cobra.Command{
	Use:   "check-amount",
	Short: "Checks a deposit amount against the bounds of a chain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := commandLogger(cmd)
		defer logging.CapturePanic(logger)

		amount, err := flags.GetAmountFlagValue(cmd)
		if err != nil {
			return err
		}

		opts, err := chainOptions(cmd)
		if err != nil {
			return err
		}

		setting, err := networkconfig.ResolveChainSetting(opts)
		if err != nil {
			return errors.Wrap(err, "could not resolve chain setting")
		}

		logger = logger.With(
			fields.Network(setting.NetworkName()),
			fields.Amount(amount),
			fields.MinDepositAmount(setting.MinDepositAmount()),
			fields.MaxDepositAmount(setting.MaxDepositAmount()),
		)

		if err := setting.CheckDepositAmount(amount); err != nil {
			logger.Debug("deposit amount rejected")
			return err
		}

		logger.Debug("deposit amount accepted")
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d gwei is a valid deposit amount for %s\n", amount, setting.NetworkName())
		return err
	},
}

func init() {
	flags.AddChainFlag(checkAmountCmd)
	flags.AddAmountFlag(checkAmountCmd)
}
