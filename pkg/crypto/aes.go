package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"sharedcrypto/pkg/crypto/types"
)

var (
	ErrInvalidIVSize        = errors.New("iv must match the AES block size")
	ErrCiphertextNotAligned = errors.New("ciphertext length is not a multiple of the AES block size")
	ErrInvalidPadding       = errors.New("invalid padding in decrypted data")
)

// AESCipher is the default cryptography capability: AES in CBC mode
// with PKCS#7 padding over an explicit key and IV. It holds no
// credential state, so it deliberately does not implement
// types.CredentialSource.
type AESCipher struct{}

func NewAESCipher() *AESCipher {
	return &AESCipher{}
}

var _ types.Cipher = (*AESCipher)(nil)

func (c *AESCipher) Encrypt(ctx context.Context, key, iv, plaintext []byte) ([]byte, error) {
	block, err := newBlock(ctx, key, iv)
	if err != nil {
		return nil, err
	}

	padded := pad(plaintext, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

func (c *AESCipher) Decrypt(ctx context.Context, key, iv, ciphertext []byte) ([]byte, error) {
	block, err := newBlock(ctx, key, iv)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrCiphertextNotAligned
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return unpad(out, aes.BlockSize)
}

// newBlock checks cancellation before any cipher work so an aborted
// call never produces partial output.
func newBlock(ctx context.Context, key, iv []byte) (cipher.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, ErrInvalidIVSize
	}
	return block, nil
}

func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, 0, len(data)+n)
	padded = append(padded, data...)
	for i := 0; i < n; i++ {
		padded = append(padded, byte(n))
	}
	return padded
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
