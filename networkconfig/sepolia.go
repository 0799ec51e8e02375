package networkconfig

const SepoliaName = "sepolia"

var Sepolia = mustChainSetting(
	SepoliaName,
	"0x90000069",
	"0xd8ea171f3c94aea21ebc42a1ed61052acf3f9209c00e4efbaaddac09ed9b8078",
)
