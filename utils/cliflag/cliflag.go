package cliflag

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddPersistentStringVarPFlag adds a string flag with a shorthand, inherited by
// sub-commands and bound to p
func AddPersistentStringVarPFlag(c *cobra.Command, p *string, flag, shorthand, value, description string, isRequired bool) {
	c.PersistentFlags().StringVarP(p, flag, shorthand, value, formatDescription(description, isRequired))
	markPersistentRequired(c, flag, isRequired)
}

// AddStringFlag adds a local string flag to the command
func AddStringFlag(c *cobra.Command, flag string, value string, description string, isRequired bool) {
	c.Flags().String(flag, value, formatDescription(description, isRequired))
	markRequired(c, flag, isRequired)
}

// AddUint64Flag adds a local uint64 flag to the command
func AddUint64Flag(c *cobra.Command, flag string, value uint64, description string, isRequired bool) {
	c.Flags().Uint64(flag, value, formatDescription(description, isRequired))
	markRequired(c, flag, isRequired)
}

// formatDescription adds required suffix to description if needed
func formatDescription(description string, isRequired bool) string {
	const requiredSuffix = " (required)"
	if isRequired {
		return fmt.Sprintf("%s%s", description, requiredSuffix)
	}
	return description
}

// markPersistentRequired marks a persistent flag as required if needed, ignoring errors
func markPersistentRequired(c *cobra.Command, flag string, isRequired bool) {
	if isRequired {
		_ = c.MarkPersistentFlagRequired(flag)
	}
}

// markRequired marks a local flag as required if needed, ignoring errors
func markRequired(c *cobra.Command, flag string, isRequired bool) {
	if isRequired {
		_ = c.MarkFlagRequired(flag)
	}
}
