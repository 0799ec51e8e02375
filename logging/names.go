package logging

const (
	NameCLI      = "CLI"
	NameRegistry = "Registry"
	NameDevnet   = "Devnet"
)
