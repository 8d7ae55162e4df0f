// Package testing provides test doubles for the identity package.
package testing

import (
	"github.com/keymint/keymint/internal/identity"
)

// PromptCall records a call to Prompt.
type PromptCall struct {
	Question     string
	DefaultValue string
	Answer       string
}

// FakePrompter replays scripted answers for testing.
// An exhausted script answers with the empty string, which callers treat
// as accepting the default.
type FakePrompter struct {
	// Configuration
	Answers   []string
	FailError error // returned by every Prompt call when set

	// Call tracking
	Calls []PromptCall

	next int
}

var _ identity.Prompter = (*FakePrompter)(nil)

// NewFakePrompter creates a prompter that replays the given answers in order.
func NewFakePrompter(answers ...string) *FakePrompter {
	return &FakePrompter{Answers: answers}
}

// Prompt returns the next scripted answer.
func (p *FakePrompter) Prompt(question, defaultValue string) (string, error) {
	if p.FailError != nil {
		return "", p.FailError
	}

	answer := ""
	if p.next < len(p.Answers) {
		answer = p.Answers[p.next]
		p.next++
	}

	p.Calls = append(p.Calls, PromptCall{
		Question:     question,
		DefaultValue: defaultValue,
		Answer:       answer,
	})

	return answer, nil
}

// SetFail configures the prompter to fail every call.
func (p *FakePrompter) SetFail(err error) *FakePrompter {
	p.FailError = err
	return p
}

// AssertPromptCount returns true if Prompt was called exactly n times.
func (p *FakePrompter) AssertPromptCount(n int) bool {
	return len(p.Calls) == n
}

// Questions returns the questions asked, in order.
func (p *FakePrompter) Questions() []string {
	qs := make([]string, len(p.Calls))
	for i, c := range p.Calls {
		qs[i] = c.Question
	}
	return qs
}

// Reset clears all state.
func (p *FakePrompter) Reset() {
	p.Calls = nil
	p.FailError = nil
	p.next = 0
}
