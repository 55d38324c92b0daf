package crypto

import (
	"context"

	"sharedcrypto/pkg/crypto/types"

	"github.com/stretchr/testify/mock"
)

// mockCipher implements types.Cipher only. It represents the
// credential-less provider variant the dispatcher must reject.
type mockCipher struct {
	mock.Mock
}

func (m *mockCipher) Encrypt(ctx context.Context, key, iv, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, key, iv, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockCipher) Decrypt(ctx context.Context, key, iv, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, key, iv, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// mockCredentialCipher additionally implements types.CredentialSource
// with whatever credentials the test hands it.
type mockCredentialCipher struct {
	mockCipher
	creds types.Credentials
	ok    bool
}

func (m *mockCredentialCipher) TryCredentials() (types.Credentials, bool) {
	return m.creds, m.ok
}
