package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/isbncheck/cmd/check"
	"github.com/lepinkainen/isbncheck/internal/config"
)

const envPrefix = "ISBNCHECK"

// CLI represents the complete command structure for the isbncheck application
type CLI struct {
	// Global flags
	Format  string `short:"F" help:"Output format: text, json or yaml (defaults to output.format in config)"`
	NoColor bool   `help:"Disable colored text output"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Detect      check.DetectCmd      `cmd:"" default:"withargs" help:"Classify identifiers as ISBN-10, ISBN-13 or INVALID"`
	Normalize   check.NormalizeCmd   `cmd:"" help:"Print identifiers with spaces and hyphens removed"`
	Convert     check.ConvertCmd     `cmd:"" help:"Convert identifiers between ISBN-10 and ISBN-13"`
	Interactive check.InteractiveCmd `cmd:"" help:"Classify identifiers interactively as you type"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)
	initConfig()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("isbncheck"),
		kong.Description("Validate and classify ISBN-10 and ISBN-13 identifiers."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)
	initLogging(config.LogLevel)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	if err := loadConfig(); err != nil {
		slog.Error("Fatal error config file", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and environment into the global config.
func loadConfig() error {
	config.SetDefaults()

	// ISBNCHECK_OUTPUT_FORMAT -> output.format
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("isbncheck")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "isbncheck"))
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("Config file not found, using defaults")
	}

	config.InitConfig()
	return nil
}

func updateGlobalConfig(cli *CLI) {
	if cli.Format != "" {
		config.SetOutputFormat(cli.Format)
	}
	if cli.NoColor {
		config.SetColorOutput(false)
	}
	if cli.Verbose {
		config.SetLogLevel(slog.LevelDebug)
	}
}

func initLogging(level slog.Level) {
	// stdout carries results, logs go to stderr
	handler := humanlog.NewHandler(os.Stderr, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
