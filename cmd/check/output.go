package check

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/isbncheck/internal/config"
	"github.com/lepinkainen/isbncheck/internal/errors"
	"github.com/lepinkainen/isbncheck/internal/isbn"
)

const (
	columnGap   = "  "
	emptyMarker = "-"
)

var supportedFormats = []string{config.FormatText, config.FormatJSON, config.FormatYAML}

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("161"))
)

// row is one line of text output
type row struct {
	input string
	value string
	ok    bool
}

func validateFormat(format string) error {
	for _, supported := range supportedFormats {
		if format == supported {
			return nil
		}
	}
	return errors.NewUnsupportedFormatError(format, supportedFormats...)
}

func writeResults(opts Options, results []isbn.Result) error {
	rows := make([]row, len(results))
	for i, result := range results {
		rows[i] = row{input: result.Input, value: result.Kind.String(), ok: result.Valid()}
	}
	return render(opts, results, rows)
}

// render writes records as JSON or YAML, or rows as aligned text.
func render(opts Options, records any, rows []row) error {
	switch opts.Format {
	case config.FormatText:
		return writeText(opts.Stdout, rows, opts.Color)
	case config.FormatJSON:
		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case config.FormatYAML:
		enc := yaml.NewEncoder(opts.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.NewUnsupportedFormatError(opts.Format, supportedFormats...)
	}
}

func writeText(w io.Writer, rows []row, color bool) error {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.input))
	}

	var sb strings.Builder
	for _, r := range rows {
		value := r.value
		if color {
			value = styleFor(r.ok).Render(value)
		}
		sb.WriteString(runewidth.FillRight(r.input, width))
		sb.WriteString(columnGap)
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	_, err := fmt.Fprint(w, sb.String())
	return err
}

func styleFor(ok bool) lipgloss.Style {
	if ok {
		return validStyle
	}
	return invalidStyle
}
