package crypto

import (
	"crypto/sha256"
	"fmt"

	"sharedcrypto/pkg/constants"
	"sharedcrypto/pkg/crypto/types"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveCredentials expands a password and salt into an AES-256 key and
// a CBC IV using PBKDF2-HMAC-SHA256. Derivation is deterministic: the
// same password and salt yield bit-identical credentials on every run
// and platform, which is what lets one instance decrypt data another
// instance encrypted with the same configuration.
//
// Both inputs are validated against the length bounds before any
// derivation work happens.
func DeriveCredentials(password, salt string) (types.Credentials, error) {
	if err := validateSecret("password", password); err != nil {
		return types.Credentials{}, err
	}
	if err := validateSecret("salt", salt); err != nil {
		return types.Credentials{}, err
	}

	derived := pbkdf2.Key([]byte(password), []byte(salt), constants.PBKDF2Iterations, constants.DerivedLength, sha256.New)
	return types.Credentials{
		Key: derived[:constants.KeySize],
		IV:  derived[constants.KeySize:],
	}, nil
}

func validateSecret(field, value string) error {
	switch {
	case value == "":
		return types.ConfigError{Field: field, Message: "is required"}
	case len(value) < constants.MinSecretLength:
		return types.ConfigError{Field: field, Message: fmt.Sprintf("must be at least %d characters long", constants.MinSecretLength)}
	case len(value) > constants.MaxSecretLength:
		return types.ConfigError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", constants.MaxSecretLength)}
	}
	return nil
}
