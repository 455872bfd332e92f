// Package auth gates admin functionality behind a single stored
// credential pair.
//
// The credentials blob holds one line, "username,secret". The secret
// is normally a salted Argon2id envelope (argon2$<salt>$<hash>,
// base64); the legacy plaintext form from old data files is still
// accepted on read and replaced the next time the password is set.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/blob"
)

// DefaultBlobName is the conventional credentials blob.
const DefaultBlobName = "admin.txt"

const envelopePrefix = "argon2$"

// Argon2id parameters.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// Authenticator validates admin credentials against a blob.
type Authenticator struct {
	blobs blob.Store
	name  string
}

// New creates an Authenticator over the named credentials blob.
func New(blobs blob.Store, name string) *Authenticator {
	return &Authenticator{blobs: blobs, name: name}
}

// Configured reports whether a credential pair has been stored.
func (a *Authenticator) Configured() bool {
	user, _, ok := a.load()
	return ok && user != ""
}

// Validate checks a credential pair against the stored one. Any
// read failure or malformed blob just fails validation.
func (a *Authenticator) Validate(username, password string) bool {
	user, secret, ok := a.load()
	if !ok {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(user), []byte(username)) != 1 {
		return false
	}
	if strings.HasPrefix(secret, envelopePrefix) {
		return verifySecret(password, secret)
	}
	// Legacy plaintext credential files.
	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}

// SetCredentials stores a new credential pair, hashing the password.
func (a *Authenticator) SetCredentials(username, password string) error {
	if username == "" || strings.Contains(username, ",") {
		return fmt.Errorf("invalid username %q", username)
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	secret, err := HashSecret(password)
	if err != nil {
		return err
	}
	if err := a.blobs.Write(a.name, []string{username + "," + secret}); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	return nil
}

func (a *Authenticator) load() (username, secret string, ok bool) {
	lines, err := a.blobs.Read(a.name)
	if err != nil || len(lines) == 0 {
		return "", "", false
	}
	parts := strings.SplitN(lines[0], ",", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// HashSecret generates a salted Argon2id envelope for a password.
func HashSecret(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return envelopePrefix +
		base64.StdEncoding.EncodeToString(salt) + "$" +
		base64.StdEncoding.EncodeToString(hash), nil
}

// verifySecret compares a password with an Argon2id envelope.
func verifySecret(password, envelope string) bool {
	parts := strings.Split(strings.TrimPrefix(envelope, envelopePrefix), "$")
	if len(parts) != 2 {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	comparison := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return subtle.ConstantTimeCompare(hash, comparison) == 1
}
