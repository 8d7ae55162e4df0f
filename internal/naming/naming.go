// Package naming builds and parses the minted key file names. A name is
// five fields joined by "=": user, system, unique, key class, and a base
// component derived from the key algorithm.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/keymint/keymint/internal/errors"
)

// KeyClass distinguishes the two minted key pairs.
type KeyClass string

const (
	// ClassPassphrase marks the interactively passphrase-protected pair.
	ClassPassphrase KeyClass = "passphrase"
	// ClassAutomation marks the passphrase-less pair for unattended use.
	ClassAutomation KeyClass = "automation"
)

// Separator joins the fields of a minted file name.
const Separator = "="

// DefaultBase is the trailing component for RSA keys, the default algorithm.
const DefaultBase = "id_rsa"

// Classes returns both key classes in generation order.
func Classes() []KeyClass {
	return []KeyClass{ClassPassphrase, ClassAutomation}
}

// Valid reports whether c is a known key class.
func (c KeyClass) Valid() bool {
	return c == ClassPassphrase || c == ClassAutomation
}

// Name is a minted key file name broken into its fields.
type Name struct {
	User   string
	System string
	Unique string
	Class  KeyClass
	Base   string
}

// New builds a Name with the default base component.
func New(user, system, unique string, class KeyClass) Name {
	return Name{
		User:   user,
		System: system,
		Unique: unique,
		Class:  class,
		Base:   DefaultBase,
	}
}

// String renders the name as "{user}={system}={unique}={class}={base}".
func (n Name) String() string {
	return strings.Join([]string{n.User, n.System, n.Unique, string(n.Class), n.Base}, Separator)
}

// Stem returns the file-name stem for the given identifiers and class,
// using the default base component.
func Stem(user, system, unique string, class KeyClass) string {
	return New(user, system, unique, class).String()
}

// BaseForAlgorithm returns the trailing file-name component for a key
// algorithm, following the OpenSSH convention (id_rsa, id_ed25519, ...).
func BaseForAlgorithm(algorithm string) string {
	if algorithm == "" {
		return DefaultBase
	}
	return "id_" + strings.ToLower(algorithm)
}

// ContainsSeparator reports whether an identifier contains the field
// separator. Such identifiers are accepted but produce names that cannot
// be parsed back.
func ContainsSeparator(s string) bool {
	return strings.Contains(s, Separator)
}

// Parse parses a minted key file path back into its fields. The directory
// prefix and a trailing ".pub" are ignored, so both halves of a pair parse
// to the same Name.
func Parse(path string) (Name, error) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".pub")

	fields := strings.Split(base, Separator)
	if len(fields) != 5 {
		return Name{}, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' doesn't look like a minted key file name", filepath.Base(path)),
			fmt.Sprintf("Expected 5 '%s'-separated fields (user, system, unique, class, base), got %d", Separator, len(fields)))
	}

	class := KeyClass(fields[3])
	if !class.Valid() {
		return Name{}, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' has unknown key class '%s'", filepath.Base(path), fields[3]),
			fmt.Sprintf("Expected '%s' or '%s'", ClassPassphrase, ClassAutomation))
	}

	return Name{
		User:   fields[0],
		System: fields[1],
		Unique: fields[2],
		Class:  class,
		Base:   fields[4],
	}, nil
}
