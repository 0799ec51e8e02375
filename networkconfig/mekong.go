package networkconfig

const MekongName = "mekong"

var Mekong = mustChainSetting(
	MekongName,
	"0x10637624",
	"0x9838240bca889c52818d7502179b393a828f61f15119d9027827c36caeb67db7",
)
