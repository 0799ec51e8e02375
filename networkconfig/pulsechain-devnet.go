package networkconfig

const PulseChainDevnetName = "pulsechain-devnet"

var PulseChainDevnet = mustChainSetting(
	PulseChainDevnetName,
	"0x20000089",
	"0x4aedc10744730347aa6c22010bd781a4f32e8369e06c788da4bfdadd11c816fe",
)
