package flags

import (
	"github.com/spf13/cobra"

	"github.com/ssvlabs/deposit-settings/utils/cliflag"
)

// AddNetworkNameFlag adds the devnet network name flag to the command
func AddNetworkNameFlag(c *cobra.Command) {
	cliflag.AddStringFlag(c, networkNameFlag, "", "Devnet network name", false)
}

// GetNetworkNameFlagValue gets the devnet network name flag from the command
func GetNetworkNameFlagValue(c *cobra.Command) (string, error) {
	return c.Flags().GetString(networkNameFlag)
}

// AddGenesisForkVersionFlag adds the genesis fork version flag to the command
func AddGenesisForkVersionFlag(c *cobra.Command) {
	cliflag.AddStringFlag(c, genesisForkVersionFlag, "", "Genesis fork version (hex, 4 bytes)", false)
}

// GetGenesisForkVersionFlagValue gets the genesis fork version flag from the command
func GetGenesisForkVersionFlagValue(c *cobra.Command) (string, error) {
	return c.Flags().GetString(genesisForkVersionFlag)
}

// AddGenesisValidatorsRootFlag adds the genesis validators root flag to the command
func AddGenesisValidatorsRootFlag(c *cobra.Command) {
	cliflag.AddStringFlag(c, genesisValidatorsRootFlag, "", "Genesis validators root (hex, 32 bytes)", false)
}

// GetGenesisValidatorsRootFlagValue gets the genesis validators root flag from the command
func GetGenesisValidatorsRootFlagValue(c *cobra.Command) (string, error) {
	return c.Flags().GetString(genesisValidatorsRootFlag)
}

// AddDevnetChainSettingFlag adds the JSON devnet chain setting flag to the command
func AddDevnetChainSettingFlag(c *cobra.Command) {
	cliflag.AddStringFlag(c, devnetChainSettingFlag, "", `Devnet chain setting as JSON: {"network_name":..,"genesis_fork_version":..,"genesis_validator_root":..}`, false)
}

// GetDevnetChainSettingFlagValue gets the JSON devnet chain setting flag from the command
func GetDevnetChainSettingFlagValue(c *cobra.Command) (string, error) {
	return c.Flags().GetString(devnetChainSettingFlag)
}
