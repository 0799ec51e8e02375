package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ssvlabs/deposit-settings/logging"
	"github.com/ssvlabs/deposit-settings/logging/fields"
	"github.com/ssvlabs/deposit-settings/networkconfig"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates every registered chain setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := commandLogger(cmd).Named(logging.NameRegistry)
		defer logging.CapturePanic(logger)

		return validateChains(logger, networkconfig.ChainNames(), networkconfig.SupportedChains())
	},
}

func validateChains(logger *zap.Logger, names []string, chains map[string]networkconfig.ChainSetting) error {
	var errs error
	for _, name := range names {
		setting := chains[name]
		err := setting.Validate()
		if err == nil && setting.NetworkName() != name {
			err = fmt.Errorf("registered as %q but named %q", name, setting.NetworkName())
		}
		if err != nil {
			logger.Error("invalid chain setting", fields.Network(name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		logger.Debug("chain setting is valid", fields.Network(name))
	}

	if errs != nil {
		return errs
	}

	logger.Info("all chain settings are valid",
		fields.Count(len(names)),
		fields.RegistryVersion(networkconfig.RegistryVersion),
	)
	return nil
}
