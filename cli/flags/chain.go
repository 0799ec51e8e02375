package flags

import (
	"github.com/spf13/cobra"

	"github.com/ssvlabs/deposit-settings/utils/cliflag"
)

// Flag names.
const (
	chainFlag                 = "chain"
	amountFlag                = "amount"
	outputFlag                = "output"
	networkNameFlag           = "network-name"
	genesisForkVersionFlag    = "genesis-fork-version"
	genesisValidatorsRootFlag = "genesis-validators-root"
	devnetChainSettingFlag    = "devnet-chain-setting"
)

// Output formats.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// AddChainFlag adds the chain name flag to the command
func AddChainFlag(c *cobra.Command) {
	cliflag.AddStringFlag(c, chainFlag, "", "Registered network name, defaults to the configured network", false)
}

// GetChainFlagValue gets the chain name flag from the command
func GetChainFlagValue(c *cobra.Command) (string, error) {
	return c.Flags().GetString(chainFlag)
}

// ChainFlagChanged reports whether the chain flag was set explicitly
func ChainFlagChanged(c *cobra.Command) bool {
	return c.Flags().Changed(chainFlag)
}

// AddAmountFlag adds the deposit amount flag to the command
func AddAmountFlag(c *cobra.Command) {
	cliflag.AddUint64Flag(c, amountFlag, 0, "Deposit amount in Gwei", true)
}

// GetAmountFlagValue gets the deposit amount flag from the command
func GetAmountFlagValue(c *cobra.Command) (uint64, error) {
	return c.Flags().GetUint64(amountFlag)
}

// AddOutputFlag adds the output format flag to the command
func AddOutputFlag(c *cobra.Command) {
	cliflag.AddStringFlag(c, outputFlag, OutputYAML, "Output format, 'yaml' or 'json'", false)
}

// GetOutputFlagValue gets the output format flag from the command
func GetOutputFlagValue(c *cobra.Command) (string, error) {
	return c.Flags().GetString(outputFlag)
}

// OutputTable renders a human readable table.
const OutputTable = "table"

// AddListOutputFlag adds the output format flag of the list command
func AddListOutputFlag(c *cobra.Command) {
	cliflag.AddStringFlag(c, outputFlag, OutputTable, "Output format, 'table' or 'json'", false)
}

// GetListOutputFlagValue gets the output format flag of the list command
func GetListOutputFlagValue(c *cobra.Command) (string, error) {
	return c.Flags().GetString(outputFlag)
}
