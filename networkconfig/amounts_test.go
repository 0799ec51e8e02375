package networkconfig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDepositAmounts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		network   string
		pulse     bool
		minAmount uint64
		maxAmount uint64
	}{
		{"mainnet", MainnetName, false, MinDepositAmount, MaxDepositAmount},
		{"sepolia", SepoliaName, false, MinDepositAmount, MaxDepositAmount},
		{"pulsechain", PulseChainName, true, PulseChainMinDepositAmount, PulseChainMaxDepositAmount},
		{"pulsechain devnet", PulseChainDevnetName, true, PulseChainMinDepositAmount, PulseChainMaxDepositAmount},
		{"upper case", "PulseChain-Local", true, PulseChainMinDepositAmount, PulseChainMaxDepositAmount},
		{"prefix only", "pulsechainfoo", true, PulseChainMinDepositAmount, PulseChainMaxDepositAmount},
		{"infix", "my-pulsechain", false, MinDepositAmount, MaxDepositAmount},
		{"short", "pulse", false, MinDepositAmount, MaxDepositAmount},
		{"empty", "", false, MinDepositAmount, MaxDepositAmount},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			setting := NewChainSetting(tt.network, nil, nil)
			require.Equal(t, tt.pulse, setting.IsPulseChain())
			require.Equal(t, tt.minAmount, setting.MinDepositAmount())
			require.Equal(t, tt.maxAmount, setting.MaxDepositAmount())
		})
	}
}

func TestDepositAmounts_Registry(t *testing.T) {
	t.Parallel()

	pulse, err := GetChainSetting(PulseChainName)
	require.NoError(t, err)
	require.Equal(t, PulseChainMaxDepositAmount, pulse.MaxDepositAmount())
	require.Equal(t, PulseChainMinDepositAmount, pulse.MinDepositAmount())

	mainnet, err := GetChainSetting(MainnetName)
	require.NoError(t, err)
	require.Equal(t, MaxDepositAmount, mainnet.MaxDepositAmount())
	require.Equal(t, MinDepositAmount, mainnet.MinDepositAmount())

	require.Equal(t, uint64(32_000_000_000), MaxDepositAmount)
	require.Equal(t, uint64(1_000_000_000), MinDepositAmount)
}

func TestCheckDepositAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		setting ChainSetting
		amount  uint64
		wantErr bool
	}{
		{"mainnet max", Mainnet, MaxDepositAmount, false},
		{"mainnet min", Mainnet, MinDepositAmount, false},
		{"mainnet below min", Mainnet, MinDepositAmount - 1, true},
		{"mainnet above max", Mainnet, MaxDepositAmount + 1, true},
		{"mainnet zero", Mainnet, 0, true},
		{"pulsechain max", PulseChain, PulseChainMaxDepositAmount, false},
		{"pulsechain min", PulseChain, PulseChainMinDepositAmount, false},
		{"pulsechain ethereum max", PulseChain, MaxDepositAmount, true},
		{"mainnet pulsechain max", Mainnet, PulseChainMaxDepositAmount, true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.setting.CheckDepositAmount(tt.amount)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrDepositAmountOutOfRange)
				return
			}
			require.NoError(t, err)
		})
	}
}
