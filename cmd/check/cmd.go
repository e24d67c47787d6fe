// Package check provides the commands that classify, normalize and convert ISBNs.
package check

import (
	"io"
	"log/slog"
	"os"

	"github.com/lepinkainen/isbncheck/internal/config"
	"github.com/lepinkainen/isbncheck/internal/isbn"
	"github.com/lepinkainen/isbncheck/internal/tui"
)

// DetectCmd represents the detect command
type DetectCmd struct {
	ISBNs []string `arg:"" optional:"" name:"isbn" help:"Identifiers to classify (read from stdin, one per line, when omitted)"`
}

func (d *DetectCmd) Run() error {
	return DetectFunc(newOptions(d.ISBNs))
}

// NormalizeCmd represents the normalize command
type NormalizeCmd struct {
	ISBNs []string `arg:"" optional:"" name:"isbn" help:"Identifiers to normalize (read from stdin, one per line, when omitted)"`
}

func (n *NormalizeCmd) Run() error {
	return NormalizeFunc(newOptions(n.ISBNs))
}

// ConvertCmd represents the convert command
type ConvertCmd struct {
	To    string   `short:"t" help:"Target ISBN length (10 or 13)" enum:"10,13" default:"13"`
	ISBNs []string `arg:"" optional:"" name:"isbn" help:"Identifiers to convert (read from stdin, one per line, when omitted)"`
}

func (c *ConvertCmd) Run() error {
	return ConvertFunc(newOptions(c.ISBNs), c.To)
}

// InteractiveCmd represents the interactive command
type InteractiveCmd struct{}

func (i *InteractiveCmd) Run() error {
	return InteractiveFunc(newOptions(nil))
}

var runSession = tui.Run

var (
	DetectFunc      = Detect
	NormalizeFunc   = Normalize
	ConvertFunc     = Convert
	InteractiveFunc = Interactive
)

// Options holds configuration shared by the check commands.
type Options struct {
	// Inputs are the identifiers given on the command line
	Inputs []string
	// Stdin is read line by line when Inputs is empty
	Stdin io.Reader
	// Stdout receives the rendered results
	Stdout io.Writer
	// Format is one of config.FormatText, config.FormatJSON or config.FormatYAML
	Format string
	// Color enables colored text output
	Color bool
}

func newOptions(inputs []string) Options {
	return Options{
		Inputs: inputs,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Format: config.OutputFormat,
		Color:  config.ColorOutput,
	}
}

// Detect classifies every input as ISBN-10, ISBN-13 or INVALID.
// INVALID identifiers are a normal outcome and do not produce an error.
func Detect(opts Options) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	inputs, err := collectInputs(opts)
	if err != nil {
		return err
	}

	results := make([]isbn.Result, 0, len(inputs))
	for _, input := range inputs {
		result := isbn.Analyze(input)
		slog.Debug("Classified identifier", "input", input, "kind", result.Kind)
		results = append(results, result)
	}

	return writeResults(opts, results)
}

// NormalizedRecord is the output record of the normalize command.
type NormalizedRecord struct {
	Input      string `json:"input" yaml:"input"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

// Normalize prints the normalized candidate for every input.
func Normalize(opts Options) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	inputs, err := collectInputs(opts)
	if err != nil {
		return err
	}

	records := make([]NormalizedRecord, 0, len(inputs))
	rows := make([]row, 0, len(inputs))
	for _, input := range inputs {
		normalized := isbn.Normalize(input)
		records = append(records, NormalizedRecord{Input: input, Normalized: normalized})

		value := normalized
		if value == "" {
			value = emptyMarker
		}
		rows = append(rows, row{input: input, value: value, ok: normalized != ""})
	}

	return render(opts, records, rows)
}

// ConversionRecord is the output record of the convert command.
type ConversionRecord struct {
	Input  string    `json:"input" yaml:"input"`
	Target isbn.Kind `json:"target" yaml:"target"`
	Output string    `json:"output" yaml:"output"`
	Error  string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Convert rewrites every input as an ISBN-10 or ISBN-13 depending on target.
// Inputs that cannot be converted are reported as INVALID.
func Convert(opts Options, target string) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	convert, kind := isbn.ToISBN13, isbn.KindISBN13
	if target == "10" {
		convert, kind = isbn.ToISBN10, isbn.KindISBN10
	}

	inputs, err := collectInputs(opts)
	if err != nil {
		return err
	}

	records := make([]ConversionRecord, 0, len(inputs))
	rows := make([]row, 0, len(inputs))
	for _, input := range inputs {
		record := ConversionRecord{Input: input, Target: kind}
		converted, err := convert(input)
		if err != nil {
			slog.Warn("Conversion failed", "input", input, "target", kind, "error", err)
			record.Error = err.Error()
			rows = append(rows, row{input: input, value: isbn.KindInvalid.String()})
		} else {
			record.Output = converted
			rows = append(rows, row{input: input, value: converted, ok: true})
		}
		records = append(records, record)
	}

	return render(opts, records, rows)
}

// Interactive runs the interactive classification session and prints the
// identifiers entered during it once the session ends.
func Interactive(opts Options) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	history, err := runSession()
	if err != nil {
		return err
	}

	slog.Debug("Interactive session ended", "entries", len(history))
	if len(history) == 0 {
		return nil
	}

	return writeResults(opts, history)
}
