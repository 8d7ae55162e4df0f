package identity

import (
	"io"
	"os"

	"github.com/keymint/keymint/internal/errors"
)

// Resolver fills the three identifier slots from positional arguments,
// prompts, and computed defaults. Arguments are consumed left to right in
// user, system, unique order; a supplied argument is taken verbatim even
// when empty.
type Resolver struct {
	// Args holds up to three positional arguments.
	Args []string

	// Prompter asks for missing identifiers. nil means batch mode: missing
	// slots take their defaults without interaction.
	Prompter Prompter

	// Hostname provides the system default. nil uses os.Hostname.
	Hostname func() (string, error)

	// Rand provides entropy for the unique default. nil uses crypto/rand.
	Rand io.Reader

	// DefaultUser and DefaultSystem override the built-in defaults when
	// non-empty, typically from configuration.
	DefaultUser   string
	DefaultSystem string
}

// Resolve produces the identity, consuming arguments and prompting in
// user, system, unique order.
func (r *Resolver) Resolve() (Identity, error) {
	user, err := r.slot(0, UserQuestion, r.userDefault)
	if err != nil {
		return Identity{}, err
	}

	system, err := r.slot(1, SystemQuestion, r.systemDefault)
	if err != nil {
		return Identity{}, err
	}

	unique, err := r.slot(2, UniqueQuestion, r.uniqueDefault)
	if err != nil {
		return Identity{}, err
	}

	return Identity{User: user, System: system, Unique: unique}, nil
}

// slot resolves a single identifier. The default is computed only when the
// argument is absent, so hostname lookups and entropy reads happen only for
// slots that actually need them.
func (r *Resolver) slot(i int, question string, def func() (string, error)) (string, error) {
	if i < len(r.Args) {
		return r.Args[i], nil
	}

	d, err := def()
	if err != nil {
		return "", err
	}

	if r.Prompter == nil {
		return d, nil
	}

	answer, err := r.Prompter.Prompt(question, d)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return d, nil
	}
	return answer, nil
}

func (r *Resolver) userDefault() (string, error) {
	if r.DefaultUser != "" {
		return r.DefaultUser, nil
	}
	return DefaultUserIdentifier, nil
}

func (r *Resolver) systemDefault() (string, error) {
	if r.DefaultSystem != "" {
		return r.DefaultSystem, nil
	}

	hostname := r.Hostname
	if hostname == nil {
		hostname = os.Hostname
	}

	name, err := hostname()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrEnvironment,
			"Failed to determine the local host name",
			"Pass the system identifier explicitly: keymint <user> <system>")
	}
	return name, nil
}

func (r *Resolver) uniqueDefault() (string, error) {
	return NewZID(r.Rand)
}
