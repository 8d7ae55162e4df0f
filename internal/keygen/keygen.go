// Package keygen is the boundary to the external key-generation tool.
// The core never produces key material itself; it builds an invocation and
// delegates to ssh-keygen, surfacing the tool's own diagnostics on failure.
package keygen

import (
	"github.com/keymint/keymint/internal/errors"
)

// Request describes a single key pair to generate.
type Request struct {
	// Algorithm is the key type passed to -t. Empty means rsa.
	Algorithm string

	// Bits is the key size passed to -b. Zero omits the flag.
	Bits int

	// Comment is passed to -C, conventionally the naming stem.
	Comment string

	// OutputPath is the private key path passed to -f. The tool writes the
	// public half next to it with a .pub suffix.
	OutputPath string

	// Passphrase controls the -N flag. nil omits the flag entirely so the
	// tool prompts the operator itself; a non-nil value is passed verbatim,
	// including the empty string.
	Passphrase *string

	// ExtraArgs are appended to the invocation verbatim.
	ExtraArgs []string
}

// Pair is the pair of files produced by one generation call.
type Pair struct {
	PrivatePath string
	PublicPath  string
}

// Generator produces one key pair per call.
type Generator interface {
	Generate(req Request) (Pair, error)
}

// ExitCode returns the exit status the external tool terminated with, or -1
// when err does not carry one.
func ExitCode(err error) int {
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}
	return -1
}

// EmptyPassphrase returns a Passphrase value that skips the tool's
// interactive prompt by passing an explicit empty passphrase.
func EmptyPassphrase() *string {
	s := ""
	return &s
}
