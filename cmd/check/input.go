package check

import (
	"bufio"
	"io"
	"strings"

	"github.com/lepinkainen/isbncheck/internal/errors"
)

// collectInputs returns the command line identifiers, or one identifier per
// stdin line when none were given. Lines have no length limit; blank lines
// are kept and classify as INVALID.
func collectInputs(opts Options) ([]string, error) {
	if len(opts.Inputs) > 0 {
		return opts.Inputs, nil
	}
	if opts.Stdin == nil {
		return nil, nil
	}

	var inputs []string
	reader := bufio.NewReader(opts.Stdin)
	line := 0
	for {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.NewInputReadError(line, err)
		}

		// no trailing newline means the final line, or nothing at all
		if text != "" {
			line++
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			inputs = append(inputs, text)
		}

		if err == io.EOF {
			break
		}
	}

	return inputs, nil
}
