package types

import (
	"context"
)

// Cipher is the raw symmetric encryption capability this library
// dispatches over. Implementations receive explicit key material on
// every call and hold no credential state of their own.
type Cipher interface {
	Encrypt(ctx context.Context, key, iv, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, key, iv, ciphertext []byte) ([]byte, error)
}

// CredentialSource is implemented by Cipher variants that carry shared
// credentials derived from configuration. The dispatch helpers detect
// the capability with a type assertion; a Cipher that does not
// implement it is a legitimate credential-less variant and is rejected
// per call, not at construction.
type CredentialSource interface {
	// TryCredentials reports the shared credentials held by this
	// instance. The second return is false when no usable credentials
	// are available.
	TryCredentials() (Credentials, bool)
}
