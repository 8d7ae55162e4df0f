package sshscan

import (
	"os"

	"github.com/keymint/keymint/internal/errors"
	"golang.org/x/crypto/ssh"
)

// PublicKeyInfo describes an OpenSSH public key file.
type PublicKeyInfo struct {
	Type        string // Key algorithm, e.g. "ssh-rsa" or "ssh-ed25519"
	Fingerprint string // SHA256 fingerprint in OpenSSH notation
	Comment     string // Trailing comment, usually the minted stem
}

// ReadPublicKeyFile reads and parses an OpenSSH public key file.
func ReadPublicKeyFile(path string) (PublicKeyInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PublicKeyInfo{}, errors.WrapWithCode(err, errors.ErrInput,
			"Couldn't read '"+path+"'",
			"Check the path and file permissions")
	}

	return ParsePublicKey(path, data)
}

// ParsePublicKey parses authorized-keys formatted data. The path is only
// used in error messages.
func ParsePublicKey(path string, data []byte) (PublicKeyInfo, error) {
	key, comment, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return PublicKeyInfo{}, errors.WrapWithCode(err, errors.ErrInput,
			"'"+path+"' is not an OpenSSH public key",
			"Private keys can't be inspected; point at the .pub file")
	}

	return PublicKeyInfo{
		Type:        key.Type(),
		Fingerprint: ssh.FingerprintSHA256(key),
		Comment:     comment,
	}, nil
}
