package networkconfig

const PulseChainTestnetV4Name = "pulsechain-testnet-v4"

// PulseChain testnet v4 (chain ID 943).
var PulseChainTestnetV4 = mustChainSetting(
	PulseChainTestnetV4Name,
	"0x00000943",
	"0xd81664ba97279a6fa0832041b4aee6009172b4750a99467ff670a9faf3a34e64",
)
