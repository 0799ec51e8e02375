package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ssvlabs/deposit-settings/cli/flags"
	"github.com/ssvlabs/deposit-settings/logging"
	"github.com/ssvlabs/deposit-settings/logging/fields"
	"github.com/ssvlabs/deposit-settings/networkconfig"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all registered chain settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := commandLogger(cmd)
		defer logging.CapturePanic(logger)

		names := networkconfig.ChainNames()
		chains := networkconfig.SupportedChains()
		logger.Debug("listing chain settings",
			fields.Count(len(names)),
			fields.RegistryVersion(networkconfig.RegistryVersion),
		)

		format, err := flags.GetListOutputFlagValue(cmd)
		if err != nil {
			return err
		}

		if format == flags.OutputJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(chains)
		}

		renderChainTable(cmd.OutOrStdout(), names, chains)
		return nil
	},
}

func init() {
	flags.AddListOutputFlag(listCmd)
}
