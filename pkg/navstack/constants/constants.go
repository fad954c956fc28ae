// Package constants defines shared constants and configuration values
// used throughout navstack.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by navstack.Init.
const (
	LogLevelEnvVar       = "NAVSTACK_LOG_LEVEL"       // debug, info, warn, error
	LocaleEnvVar         = "NAVSTACK_LOCALE"          // BCP 47 tag used for listener messages
	DefaultOptionsEnvVar = "NAVSTACK_DEFAULT_OPTIONS" // path to a TOML, YAML or JSON defaults file
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// HardwareBackButtonID is the button id forwarded to a screen when the hardware
// back action is not allowed to pop the stack.
const HardwareBackButtonID = "navstack.hardwareBackButton"

// BackButtonID is the id of the top bar back button.
const BackButtonID = "navstack.backButton"

// TopBarSuffix is appended to a stack id to form the id of its top bar overlay surface.
const TopBarSuffix = "/topBar"

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"
