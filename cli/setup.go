package cli

import (
	"context"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	global_config "github.com/ssvlabs/deposit-settings/cli/config"
	"github.com/ssvlabs/deposit-settings/cli/flags"
	"github.com/ssvlabs/deposit-settings/logging"
	"github.com/ssvlabs/deposit-settings/logging/fields"
	"github.com/ssvlabs/deposit-settings/networkconfig"
	"github.com/ssvlabs/deposit-settings/utils/commons"
)

type config struct {
	global_config.GlobalConfig `yaml:"global"`
	Chain                      networkconfig.ChainOptions `yaml:"chain"`
}

func (c config) String() string {
	marshaled, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("<unprintable config: %v>", err)
	}
	return string(marshaled)
}

// loadConfig reads the config file at path, if any, and the environment.
func loadConfig(path string) (config, error) {
	var loaded config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &loaded); err != nil {
			return config{}, fmt.Errorf("could not read config: %w", err)
		}
		return loaded, nil
	}

	if err := cleanenv.ReadEnv(&loaded); err != nil {
		return config{}, fmt.Errorf("could not read env: %w", err)
	}
	return loaded, nil
}

func setupGlobal(cmd *cobra.Command) (*zap.Logger, error) {
	commons.SetBuildData(cmd.Root().Short, cmd.Root().Version)

	loaded, err := loadConfig(globalArgs.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg = loaded

	var fileOpts *logging.LogFileOptions
	if cfg.LogFilePath != "" {
		fileOpts = &logging.LogFileOptions{
			FilePath:   cfg.LogFilePath,
			MaxSize:    cfg.LogFileSize,
			MaxBackups: cfg.LogFileBackups,
		}
	}

	if err := logging.SetGlobalLogger(cfg.LogLevel, cfg.LogLevelFormat, cfg.LogFormat, fileOpts); err != nil {
		return nil, fmt.Errorf("logging.SetGlobalLogger: %w", err)
	}

	logger := zap.L().Named(logging.NameCLI)
	logger.Debug("loaded config",
		zap.String("build", commons.GetBuildData()),
		fields.RegistryVersion(networkconfig.RegistryVersion),
		fields.Config(cfg),
	)

	return logger, nil
}

func withLogger(cmd *cobra.Command, logger *zap.Logger) context.Context {
	return logging.WithContext(cmd.Context(), logger)
}

// commandLogger returns the logger installed by the root command.
func commandLogger(cmd *cobra.Command) *zap.Logger {
	return logging.FromContext(cmd.Context())
}

// chainOptions returns the configured chain options, with the chain flag
// taking precedence over the config file and environment.
func chainOptions(cmd *cobra.Command) (networkconfig.ChainOptions, error) {
	opts := cfg.Chain
	if flags.ChainFlagChanged(cmd) {
		name, err := flags.GetChainFlagValue(cmd)
		if err != nil {
			return networkconfig.ChainOptions{}, err
		}
		opts.Network = name
		opts.Devnet = networkconfig.DevnetOptions{}
	}
	return opts, nil
}
