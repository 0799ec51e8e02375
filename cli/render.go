package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/aquasecurity/table"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"gopkg.in/yaml.v3"

	"github.com/ssvlabs/deposit-settings/cli/flags"
	"github.com/ssvlabs/deposit-settings/networkconfig"
)

// renderChainTable writes one row per chain, in the order of names.
func renderChainTable(w io.Writer, names []string, chains map[string]networkconfig.ChainSetting) {
	tbl := table.New(w)
	tbl.SetHeaders("Name", "Genesis Fork Version", "Genesis Validators Root", "Min Deposit (Gwei)", "Max Deposit (Gwei)")
	for _, name := range names {
		setting := chains[name]
		tbl.AddRow(
			name,
			hexutil.Encode(setting.GenesisForkVersion()),
			hexutil.Encode(setting.GenesisValidatorsRoot()),
			strconv.FormatUint(setting.MinDepositAmount(), 10),
			strconv.FormatUint(setting.MaxDepositAmount(), 10),
		)
	}
	tbl.Render()
}

// renderChainSetting writes setting in the requested output format.
func renderChainSetting(w io.Writer, setting networkconfig.ChainSetting, format string) error {
	switch format {
	case flags.OutputYAML, "":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(setting); err != nil {
			return err
		}
		return encoder.Close()
	case flags.OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(setting)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
