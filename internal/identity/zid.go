package identity

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/keymint/keymint/internal/errors"
)

// ZIDLength is the length of a rendered ZID in hex characters.
const ZIDLength = 32

// NewZID mints a fresh unique identifier: 16 random bytes rendered as 32
// lowercase hex characters. A nil reader uses crypto/rand.
func NewZID(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}

	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrEnvironment,
			"Failed to read random bytes for the unique identifier",
			"Check that the system entropy source is readable")
	}

	return hex.EncodeToString(b[:]), nil
}

// IsZID reports whether s has the shape of a minted ZID: exactly 32
// characters over [0-9a-f].
func IsZID(s string) bool {
	if len(s) != ZIDLength {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
