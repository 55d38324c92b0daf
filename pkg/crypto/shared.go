package crypto

import (
	"context"
	"encoding/base64"
	"fmt"

	"sharedcrypto/pkg/crypto/types"
)

// Encrypt encrypts plaintext with the shared credentials held by c.
// Empty input is returned as-is without any credential lookup or cipher
// call. A cipher without shared credentials fails with
// types.UnsupportedOperationError before the primitive is touched;
// errors from the primitive itself are returned unchanged.
func Encrypt(ctx context.Context, c types.Cipher, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return plaintext, nil
	}

	creds, err := sharedCredentials(c, "encrypt")
	if err != nil {
		return nil, err
	}
	return c.Encrypt(ctx, creds.Key, creds.IV, plaintext)
}

// Decrypt decrypts ciphertext with the shared credentials held by c.
// The same shortcut and capability rules as Encrypt apply.
func Decrypt(ctx context.Context, c types.Cipher, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return ciphertext, nil
	}

	creds, err := sharedCredentials(c, "decrypt")
	if err != nil {
		return nil, err
	}
	return c.Decrypt(ctx, creds.Key, creds.IV, ciphertext)
}

// EncryptString encrypts plaintext and returns the ciphertext encoded
// as standard base64 so it can travel in text fields.
func EncryptString(ctx context.Context, c types.Cipher, plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	out, err := Encrypt(ctx, c, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptString decrypts a base64-encoded ciphertext produced by
// EncryptString.
func DecryptString(ctx context.Context, c types.Cipher, ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	out, err := Decrypt(ctx, c, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// sharedCredentials resolves the shared credentials behind c. The check
// is a capability assertion, not a concrete-type check, so any
// implementation exposing CredentialSource participates.
func sharedCredentials(c types.Cipher, operation string) (types.Credentials, error) {
	src, ok := c.(types.CredentialSource)
	if !ok {
		return types.Credentials{}, types.UnsupportedOperationError{Operation: operation}
	}

	creds, ok := src.TryCredentials()
	if !ok || creds.Empty() {
		return types.Credentials{}, types.UnsupportedOperationError{Operation: operation}
	}
	return creds, nil
}
