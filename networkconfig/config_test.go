package networkconfig

import (
	"testing"

	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChainSetting(t *testing.T) {
	t.Parallel()

	for name := range supportedChains {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			setting, err := GetChainSetting(name)
			require.NoError(t, err)
			require.NotEmpty(t, setting.NetworkName())
			require.Equal(t, name, setting.NetworkName())

			again, err := GetChainSetting(name)
			require.NoError(t, err)
			require.True(t, setting.Equal(again))
		})
	}
}

func TestGetChainSetting_Default(t *testing.T) {
	t.Parallel()

	mainnet, err := GetChainSetting(MainnetName)
	require.NoError(t, err)
	require.True(t, DefaultChainSetting().Equal(mainnet))

	_, err = GetChainSetting("")
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestGetChainSetting_Unknown(t *testing.T) {
	t.Parallel()

	testCases := []string{
		"not-a-real-chain",
		"Mainnet",
		"PULSECHAIN",
		" mainnet",
		"goerli",
		"prater",
		"zhejiang",
	}

	for _, name := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := GetChainSetting(name)
			require.ErrorIs(t, err, ErrUnknownNetwork)
			require.ErrorContains(t, err, name)
		})
	}
}

func TestSupportedChains(t *testing.T) {
	t.Parallel()

	chains := SupportedChains()
	require.Len(t, chains, 7)

	delete(chains, MainnetName)
	_, err := GetChainSetting(MainnetName)
	require.NoError(t, err, "mutating the returned map must not affect the registry")

	for name, setting := range SupportedChains() {
		assert.Equal(t, name, setting.NetworkName())
		assert.NoError(t, setting.Validate())
	}
}

func TestChainNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{
		HoleskyName,
		MainnetName,
		MekongName,
		PulseChainName,
		PulseChainDevnetName,
		PulseChainTestnetV4Name,
		SepoliaName,
	}, ChainNames())
}

func TestRegistryValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		forkVersion    []byte
		validatorsRoot string
	}{
		{MainnetName, []byte{0x00, 0x00, 0x00, 0x00}, "0x4b363db94e286120d76eb905340fdd4e54bfe9f06bf33ff6cf5ad27f511bfe95"},
		{SepoliaName, []byte{0x90, 0x00, 0x00, 0x69}, "0xd8ea171f3c94aea21ebc42a1ed61052acf3f9209c00e4efbaaddac09ed9b8078"},
		{HoleskyName, []byte{0x01, 0x01, 0x70, 0x00}, "0x9143aa7c615a7f7115e2b6aac319c03529df8242ae705fba9df39b79c59fa8b1"},
		{MekongName, []byte{0x10, 0x63, 0x76, 0x24}, "0x9838240bca889c52818d7502179b393a828f61f15119d9027827c36caeb67db7"},
		{PulseChainName, []byte{0x00, 0x00, 0x03, 0x69}, "0x3357ba0018a2582aeabe4ae847aa17d50a3a99aaeb66293c01f80a83aecd0c90"},
		{PulseChainDevnetName, []byte{0x20, 0x00, 0x00, 0x89}, "0x4aedc10744730347aa6c22010bd781a4f32e8369e06c788da4bfdadd11c816fe"},
		{PulseChainTestnetV4Name, []byte{0x00, 0x00, 0x09, 0x43}, "0xd81664ba97279a6fa0832041b4aee6009172b4750a99467ff670a9faf3a34e64"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			setting, err := GetChainSetting(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.forkVersion, setting.GenesisForkVersion())

			root, err := setting.ValidatorsRoot()
			require.NoError(t, err)
			require.Equal(t, tt.validatorsRoot, root.String())
		})
	}
}

func TestGetChainSetting_Concurrent(t *testing.T) {
	t.Parallel()

	names := ChainNames()
	p := pool.New().WithMaxGoroutines(16)
	for i := 0; i < 1000; i++ {
		name := names[i%len(names)]
		p.Go(func() {
			setting, err := GetChainSetting(name)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, name, setting.NetworkName())

			// Mutating a returned copy must not leak into the registry.
			forkVersion := setting.GenesisForkVersion()
			forkVersion[0] ^= 0xff
			assert.NotEqual(t, forkVersion, setting.GenesisForkVersion())

			_ = setting.IsPulseChain()
			_ = setting.MaxDepositAmount()
		})
	}
	p.Wait()
}
