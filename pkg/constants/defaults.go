package constants

// Derived credential sizes for AES-256 in CBC mode
const (
	KeySize       = 32 // AES-256 key
	IVSize        = 16 // AES block size, reused as the CBC IV
	DerivedLength = KeySize + IVSize
)

// PBKDF2 parameters used by the credential deriver. These are fixed:
// changing them breaks decryption of data produced by instances running
// the old parameters.
const (
	PBKDF2Iterations = 100000
)

// Length bounds enforced on password and salt before derivation
const (
	MinSecretLength = 12
	MaxSecretLength = 60
)
