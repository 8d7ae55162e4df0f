package testing

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakePrompter_ReplaysAnswers(t *testing.T) {
	p := NewFakePrompter("first", "second")

	a, err := p.Prompt("question one?", "default-1")
	require.NoError(t, err)
	assert.Equal(t, "first", a)

	b, err := p.Prompt("question two?", "default-2")
	require.NoError(t, err)
	assert.Equal(t, "second", b)

	assert.True(t, p.AssertPromptCount(2))
	assert.Equal(t, []string{"question one?", "question two?"}, p.Questions())
	assert.Equal(t, "default-1", p.Calls[0].DefaultValue)
}

func TestFakePrompter_ExhaustedScriptAnswersEmpty(t *testing.T) {
	p := NewFakePrompter("only")

	_, err := p.Prompt("q1?", "d1")
	require.NoError(t, err)

	a, err := p.Prompt("q2?", "d2")
	require.NoError(t, err)
	assert.Empty(t, a, "exhausted script should answer with the empty string")
}

func TestFakePrompter_Failure(t *testing.T) {
	promptErr := stderrors.New("boom")
	p := NewFakePrompter().SetFail(promptErr)

	_, err := p.Prompt("q?", "d")

	assert.ErrorIs(t, err, promptErr)
	assert.Empty(t, p.Calls, "failed calls are not recorded")
}

func TestFakePrompter_Reset(t *testing.T) {
	p := NewFakePrompter("a")

	_, err := p.Prompt("q?", "d")
	require.NoError(t, err)
	require.Len(t, p.Calls, 1)

	p.Reset()

	assert.Empty(t, p.Calls)

	// Script replays from the beginning after reset
	a, err := p.Prompt("q?", "d")
	require.NoError(t, err)
	assert.Equal(t, "a", a)
}
