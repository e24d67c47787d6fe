package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Output formats understood by the CLI
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Global configuration variables
var (
	// OutputFormat selects how classification results are printed
	OutputFormat = FormatText
	// ColorOutput controls whether text output is colored
	ColorOutput = true
	// LogLevel is the minimum level written by the logger
	LogLevel = slog.LevelInfo
)

// SetDefaults registers the default values for every configuration key
func SetDefaults() {
	viper.SetDefault("output.format", FormatText)
	viper.SetDefault("output.color", true)
	viper.SetDefault("log.level", "info")
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	OutputFormat = strings.ToLower(viper.GetString("output.format"))
	ColorOutput = viper.GetBool("output.color")
	LogLevel = ParseLevel(viper.GetString("log.level"))
}

// SetOutputFormat sets the OutputFormat value
func SetOutputFormat(format string) {
	OutputFormat = strings.ToLower(format)
}

// SetColorOutput sets the ColorOutput flag
func SetColorOutput(color bool) {
	ColorOutput = color
}

// SetLogLevel sets the LogLevel value
func SetLogLevel(level slog.Level) {
	LogLevel = level
}

// ParseLevel maps a level name to a slog.Level, falling back to info
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo
	}
	return level
}
