package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/isbncheck/cmd/check"
	"github.com/lepinkainen/isbncheck/internal/config"
)

func resetCmdState(t *testing.T) {
	origFormat := config.OutputFormat
	origColor := config.ColorOutput
	origLevel := config.LogLevel

	t.Cleanup(func() {
		config.OutputFormat = origFormat
		config.ColorOutput = origColor
		config.LogLevel = origLevel
		viper.Reset()
	})

	viper.Reset()
	t.Setenv("ISBNCHECK_OUTPUT_FORMAT", "")
	t.Setenv("ISBNCHECK_OUTPUT_COLOR", "")
	t.Setenv("ISBNCHECK_LOG_LEVEL", "")
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"isbncheck"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("isbncheck"),
		kong.Description("Validate and classify ISBN-10 and ISBN-13 identifiers."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)

	return cli, ctx
}

func stubCheckFuncs(t *testing.T) *[]check.Options {
	t.Helper()

	origDetect := check.DetectFunc
	origNormalize := check.NormalizeFunc
	origConvert := check.ConvertFunc
	origInteractive := check.InteractiveFunc
	t.Cleanup(func() {
		check.DetectFunc = origDetect
		check.NormalizeFunc = origNormalize
		check.ConvertFunc = origConvert
		check.InteractiveFunc = origInteractive
	})

	var calls []check.Options
	record := func(opts check.Options) error {
		calls = append(calls, opts)
		return nil
	}
	check.DetectFunc = record
	check.NormalizeFunc = record
	check.InteractiveFunc = record
	check.ConvertFunc = func(opts check.Options, target string) error {
		opts.Inputs = append(opts.Inputs, "to:"+target)
		calls = append(calls, opts)
		return nil
	}

	return &calls
}

func TestUpdateGlobalConfig(t *testing.T) {
	resetCmdState(t)
	config.InitConfig()

	updateGlobalConfig(&CLI{Format: "JSON", NoColor: true, Verbose: true})

	assert.Equal(t, config.FormatJSON, config.OutputFormat)
	assert.False(t, config.ColorOutput)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
}

func TestUpdateGlobalConfigKeepsConfiguredValues(t *testing.T) {
	resetCmdState(t)
	viper.Set("output.format", "yaml")
	viper.Set("log.level", "warn")
	config.InitConfig()

	updateGlobalConfig(&CLI{})

	assert.Equal(t, config.FormatYAML, config.OutputFormat)
	assert.True(t, config.ColorOutput)
	assert.Equal(t, slog.LevelWarn, config.LogLevel)
}

func TestDefaultCommandIsDetect(t *testing.T) {
	resetCmdState(t)
	calls := stubCheckFuncs(t)

	_, ctx := parseCLI(t, "0-306-40615-2", "978-3-16-148410-0")

	require.NoError(t, ctx.Run())
	require.Len(t, *calls, 1)
	assert.Equal(t, []string{"0-306-40615-2", "978-3-16-148410-0"}, (*calls)[0].Inputs)
}

func TestCommandsRouteToCheckFuncs(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantInputs []string
		wantFormat string
	}{
		{
			name:       "detect with global format",
			args:       []string{"--format", "json", "detect", "123456789X"},
			wantInputs: []string{"123456789X"},
			wantFormat: config.FormatJSON,
		},
		{
			name:       "normalize",
			args:       []string{"normalize", "123456789x"},
			wantInputs: []string{"123456789x"},
			wantFormat: config.FormatText,
		},
		{
			name:       "convert to isbn10",
			args:       []string{"convert", "--to", "10", "9780306406157"},
			wantInputs: []string{"9780306406157", "to:10"},
			wantFormat: config.FormatText,
		},
		{
			name:       "convert defaults to isbn13",
			args:       []string{"-F", "yaml", "convert", "0306406152"},
			wantInputs: []string{"0306406152", "to:13"},
			wantFormat: config.FormatYAML,
		},
		{
			name:       "interactive",
			args:       []string{"interactive"},
			wantFormat: config.FormatText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCmdState(t)
			config.InitConfig()
			calls := stubCheckFuncs(t)

			cli, ctx := parseCLI(t, tt.args...)
			updateGlobalConfig(cli)
			require.NoError(t, ctx.Run())

			require.Len(t, *calls, 1)
			assert.Equal(t, tt.wantInputs, (*calls)[0].Inputs)
			assert.Equal(t, tt.wantFormat, (*calls)[0].Format)
		})
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	resetCmdState(t)
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	require.NoError(t, loadConfig())

	assert.Equal(t, config.FormatText, config.OutputFormat)
	assert.True(t, config.ColorOutput)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
}

func TestLoadConfigFromFile(t *testing.T) {
	resetCmdState(t)
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	content := "output:\n  format: yaml\n  color: false\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "isbncheck.yaml"), []byte(content), 0o644))

	require.NoError(t, loadConfig())

	assert.Equal(t, config.FormatYAML, config.OutputFormat)
	assert.False(t, config.ColorOutput)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	resetCmdState(t)
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	t.Setenv("ISBNCHECK_OUTPUT_FORMAT", "json")

	require.NoError(t, loadConfig())

	assert.Equal(t, config.FormatJSON, config.OutputFormat)
}

func TestLoadConfigRejectsBrokenFile(t *testing.T) {
	resetCmdState(t)
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "isbncheck.yaml"), []byte("output: [unclosed\n"), 0o644))

	assert.Error(t, loadConfig())
}
