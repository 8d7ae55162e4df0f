package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/identity"
	"golang.org/x/term"
)

// NewPrompter returns the right identifier prompter for the given input.
// A terminal gets the huh form; piped input gets the plain line prompter
// so answers can be scripted.
func NewPrompter(in *os.File, out io.Writer) identity.Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &FormPrompter{}
	}
	return NewLinePrompter(in, out)
}

// FormPrompter asks for identifier values with a huh input form.
type FormPrompter struct{}

var _ identity.Prompter = (*FormPrompter)(nil)

// Prompt shows the question with the default as placeholder text and returns
// the entered line. An empty submission returns the empty string; the
// resolver substitutes the default.
func (p *FormPrompter) Prompt(question, defaultValue string) (string, error) {
	var answer string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(question).
				Description("Default: " + defaultValue).
				Placeholder(defaultValue).
				Value(&answer),
		),
	)

	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrEnvironment,
			"Failed to read identifier input",
			"Pass identifiers as arguments, or use --batch to accept the defaults")
	}

	return answer, nil
}

// LinePrompter asks for identifier values with a plain two-line prompt and a
// buffered line read. One reader is shared across prompts so consecutive
// answers on piped input aren't lost between calls.
type LinePrompter struct {
	out    io.Writer
	reader *bufio.Reader
}

var _ identity.Prompter = (*LinePrompter)(nil)

// NewLinePrompter returns a LinePrompter reading from in and writing to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Prompt prints the question and its default, then reads one line. Only the
// line terminator is stripped; the answer is otherwise untouched. EOF counts
// as an empty answer so exhausted piped input falls through to defaults.
func (p *LinePrompter) Prompt(question, defaultValue string) (string, error) {
	fmt.Fprintf(p.out, "%s\nDefault: %s\n", question, defaultValue)

	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.WrapWithCode(err, errors.ErrEnvironment,
			"Failed to read identifier input",
			"Pass identifiers as arguments, or use --batch to accept the defaults")
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
