package config

import (
	"strings"

	"calc/internal/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. CALC_VERBOSE.
const EnvPrefix = "CALC"

// Configuration keys.
const (
	KeyVerbose     = "verbose"
	KeyLogFile     = "log_file"
	KeyMetricsFile = "metrics_file"
	KeyColor       = "color"
)

// Load wires viper to the environment and sets defaults. A .env file in the
// working directory is honoured if present. No configuration file is read.
func Load() {
	// a missing .env is fine
	_ = godotenv.Load()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsFile, "")
	viper.SetDefault(KeyColor, ui.ColorAuto)
}

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Verbose     bool
	LogFile     string
	MetricsFile string
	Color       string
}

// Current reads the configuration viper holds right now.
func Current() Settings {
	return Settings{
		Verbose:     viper.GetBool(KeyVerbose),
		LogFile:     viper.GetString(KeyLogFile),
		MetricsFile: viper.GetString(KeyMetricsFile),
		Color:       strings.ToLower(viper.GetString(KeyColor)),
	}
}
