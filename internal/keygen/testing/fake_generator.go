// Package testing provides test doubles for the keygen package.
package testing

import (
	"os"

	"github.com/keymint/keymint/internal/errors"
	"github.com/keymint/keymint/internal/keygen"
)

// GenerateCall records a call to Generate.
type GenerateCall struct {
	Request keygen.Request
	Success bool
}

// FakeGenerator simulates the external key-generation tool for testing.
type FakeGenerator struct {
	// Configuration
	FailOnCall int   // 1-based call number that fails; 0 never fails
	FailError  error // error returned on the failing call when set
	TouchFiles bool  // create empty pair files on disk for successful calls

	// Call tracking
	Calls []GenerateCall
}

var _ keygen.Generator = (*FakeGenerator)(nil)

// NewFakeGenerator creates a fake generator that succeeds on every call.
func NewFakeGenerator() *FakeGenerator {
	return &FakeGenerator{}
}

// Generate simulates one tool invocation.
func (g *FakeGenerator) Generate(req keygen.Request) (keygen.Pair, error) {
	call := GenerateCall{Request: req}

	if g.FailOnCall > 0 && len(g.Calls)+1 == g.FailOnCall {
		call.Success = false
		g.Calls = append(g.Calls, call)
		if g.FailError != nil {
			return keygen.Pair{}, g.FailError
		}
		return keygen.Pair{}, errors.WrapWithCode(errors.NewExitError(1), errors.ErrKeyGen,
			"ssh-keygen failed for '"+req.OutputPath+"'",
			"Configured to fail in test")
	}

	call.Success = true
	g.Calls = append(g.Calls, call)

	pair := keygen.Pair{
		PrivatePath: req.OutputPath,
		PublicPath:  req.OutputPath + ".pub",
	}

	if g.TouchFiles {
		if err := os.WriteFile(pair.PrivatePath, nil, 0600); err != nil {
			return keygen.Pair{}, err
		}
		if err := os.WriteFile(pair.PublicPath, nil, 0644); err != nil {
			return keygen.Pair{}, err
		}
	}

	return pair, nil
}

// SetFailOn configures the 1-based call number that fails and the error it
// returns. A nil err uses a canned KEYGEN failure.
func (g *FakeGenerator) SetFailOn(n int, err error) *FakeGenerator {
	g.FailOnCall = n
	g.FailError = err
	return g
}

// SetTouchFiles configures the fake to create the pair files on disk.
func (g *FakeGenerator) SetTouchFiles() *FakeGenerator {
	g.TouchFiles = true
	return g
}

// AssertGenerateCount returns true if Generate was called exactly n times.
func (g *FakeGenerator) AssertGenerateCount(n int) bool {
	return len(g.Calls) == n
}

// Requests returns the recorded requests, in call order.
func (g *FakeGenerator) Requests() []keygen.Request {
	reqs := make([]keygen.Request, len(g.Calls))
	for i, c := range g.Calls {
		reqs[i] = c.Request
	}
	return reqs
}

// Reset clears all state.
func (g *FakeGenerator) Reset() {
	g.Calls = nil
	g.FailOnCall = 0
	g.FailError = nil
	g.TouchFiles = false
}
