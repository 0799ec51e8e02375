package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	global_config "github.com/ssvlabs/deposit-settings/cli/config"
	"github.com/ssvlabs/deposit-settings/logging"
)

var cfg config

var globalArgs global_config.Args

// RootCmd represents the root command of the deposit settings CLI
var RootCmd = &cobra.Command{
	Use:           "deposit-settings",
	Short:         "deposit-settings",
	Long:          `deposit-settings lists and resolves the genesis chain settings used to build validator deposits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := setupGlobal(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(withLogger(cmd, logger))
		return nil
	},
}

// Execute executes the root command
func Execute(appName, version string) {
	RootCmd.Short = appName
	RootCmd.Version = version

	// Replaced by the configured logger once the command's pre-run succeeds.
	if err := logging.SetGlobalLogger("info", "capitalColor", "console", nil); err != nil {
		panic(err)
	}

	if err := RootCmd.Execute(); err != nil {
		fatalCommandError(zap.L(), err)
	}
}

// fatalCommandError logs a failed command and exits with status 1.
func fatalCommandError(logger *zap.Logger, err error) {
	logger.Fatal("failed to execute root command", zap.Error(err))
}

func init() {
	global_config.ProcessArgs(&cfg, &globalArgs, RootCmd)

	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(devnetCmd)
	RootCmd.AddCommand(checkAmountCmd)
	RootCmd.AddCommand(validateCmd)
}
