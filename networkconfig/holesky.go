package networkconfig

const HoleskyName = "holesky"

var Holesky = mustChainSetting(
	HoleskyName,
	"0x01017000",
	"0x9143aa7c615a7f7115e2b6aac319c03529df8242ae705fba9df39b79c59fa8b1",
)
