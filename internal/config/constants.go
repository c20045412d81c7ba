package config

// TempMarker starts every compiler-internal temporary name. Such names
// are never mangled.
const TempMarker = "~"

// Runtime helpers every unit may reference without importing them.
const (
	RuntimeModuleName = "phs"
	ThrowHelperName   = "ex"
)

// Mangling markers
const (
	ManglePrefix    = "_"
	MangleSeparator = "N"
	MangleTerminal  = "Z"
	MangleEscape    = "_"

	ModuleFlag  = "M"
	LocalFlag   = "L"
	PrivateFlag = "U"
)

// OptionsFileNames are looked up, in order, by FindOptions.
var OptionsFileNames = []string{"phsc.yaml", "phsc.yml", "phsc.toml"}
