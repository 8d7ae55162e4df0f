// Package identity resolves the three identifiers that name a minted key
// pair: who the key is for (user), where it is used (system), and a unique
// identifier distinguishing this pair from every other one (a ZID).
//
// Each identifier comes from a positional argument when supplied, otherwise
// from a prompt pre-filled with a computed default.
package identity

// Identity holds the three resolved identifiers.
type Identity struct {
	User   string
	System string
	Unique string
}

// Prompter asks a single question and reads one line of input.
// An empty answer means the caller should use the offered default.
type Prompter interface {
	Prompt(question, defaultValue string) (string, error)
}

// DefaultUserIdentifier is offered when no user argument or configured
// default is available.
const DefaultUserIdentifier = "example@example.com"

// Prompt wording for each identifier slot. The wording is frozen because
// wrapper scripts match on it, including the "addresss" spelling.
const (
	UserQuestion   = "User identifier, such as an email addresss?"
	SystemQuestion = "System identifier, such as a host name?"
	UniqueQuestion = "Unique identifier, such as a ZID?"
)
