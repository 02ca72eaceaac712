package config

import (
	"fmt"
	"os"
	"strings"

	"calc/internal/ui"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error listing
// every invalid one. It should be called after Load.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet(KeyColor) {
		switch mode := strings.ToLower(viper.GetString(KeyColor)); mode {
		case ui.ColorAuto, ui.ColorAlways, ui.ColorNever:
		default:
			errors = append(errors, fmt.Sprintf("color must be one of auto, always, never, got: %q", mode))
		}
	}

	for _, key := range []string{KeyLogFile, KeyMetricsFile} {
		path := viper.GetString(key)
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			errors = append(errors, fmt.Sprintf("%s must be a file path, got directory: %s", key, path))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errors, "\n  "))
	}

	return nil
}
