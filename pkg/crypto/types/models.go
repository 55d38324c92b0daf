package types

// Credentials is a key/IV pair derived from a shared password and salt.
// Instances are immutable after derivation and safe to share across
// goroutines without locking.
type Credentials struct {
	Key []byte
	IV  []byte
}

// Empty reports whether either component is missing. Empty credentials
// must never reach a cipher call.
func (c Credentials) Empty() bool {
	return len(c.Key) == 0 || len(c.IV) == 0
}

// SharedCredentialConfig is the named configuration section supplying
// the shared password and salt. Both fields are validated against the
// length bounds at load time, before any derivation is attempted.
type SharedCredentialConfig struct {
	Password string `json:"password" yaml:"password" validate:"required,min=12,max=60"`
	Salt     string `json:"salt" yaml:"salt" validate:"required,min=12,max=60"`
}

// Config is the root configuration document consumed by config.Load.
type Config struct {
	SharedCredentials SharedCredentialConfig `json:"sharedCredentials" yaml:"sharedCredentials"`
}
