package common

// Application name constants
const (
	// AppName is the main application name
	AppName = "oab-utils"

	// EnvPrefix is prepended to every environment variable the tool reads
	EnvPrefix = "OAB_UTILS_"
)
