package networkconfig

const MainnetName = "mainnet"

var Mainnet = mustChainSetting(
	MainnetName,
	"0x00000000",
	"0x4b363db94e286120d76eb905340fdd4e54bfe9f06bf33ff6cf5ad27f511bfe95",
)
