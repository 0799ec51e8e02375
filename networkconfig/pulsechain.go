package networkconfig

const PulseChainName = "pulsechain"

// PulseChain mainnet. Fork version 0x00000369 encodes chain ID 369.
var PulseChain = mustChainSetting(
	PulseChainName,
	"0x00000369",
	"0x3357ba0018a2582aeabe4ae847aa17d50a3a99aaeb66293c01f80a83aecd0c90",
)
