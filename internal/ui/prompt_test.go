package ui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter_PromptFormat(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("answer\n"), &out)

	answer, err := p.Prompt(identity.UserQuestion, "example@example.com")
	require.NoError(t, err)

	assert.Equal(t, "answer", answer)
	assert.Equal(t,
		"User identifier, such as an email addresss?\nDefault: example@example.com\n",
		out.String())
}

func TestLinePrompter_EmptyLine(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("\n"), &out)

	answer, err := p.Prompt("Question?", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "", answer)
}

func TestLinePrompter_EOF(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader(""), &out)

	answer, err := p.Prompt("Question?", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "", answer)
}

func TestLinePrompter_PartialLineBeforeEOF(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("partial"), &out)

	answer, err := p.Prompt("Question?", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "partial", answer)
}

func TestLinePrompter_StripsCRLF(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("windows\r\n"), &out)

	answer, err := p.Prompt("Question?", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "windows", answer)
}

func TestLinePrompter_PreservesWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("  spaced out  \n"), &out)

	answer, err := p.Prompt("Question?", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "  spaced out  ", answer)
}

func TestLinePrompter_SequentialReads(t *testing.T) {
	// One buffered reader must survive across prompts, otherwise answers
	// queued on piped input are lost between calls.
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("first\nsecond\nthird\n"), &out)

	for _, want := range []string{"first", "second", "third"} {
		answer, err := p.Prompt("Question?", "fallback")
		require.NoError(t, err)
		assert.Equal(t, want, answer)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestLinePrompter_ReadFailure(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(failingReader{}, &out)

	_, err := p.Prompt("Question?", "fallback")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrEnvironment))
}

func TestNewPrompter_PipedInput(t *testing.T) {
	// A pipe is not a terminal, so the plain prompter is selected.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	p := NewPrompter(r, io.Discard)
	_, ok := p.(*LinePrompter)
	assert.True(t, ok, "piped input should get the LinePrompter")
}
