package types

import "fmt"

// ConfigError reports a missing or out-of-bounds shared-credential
// setting. It is raised at load or construction time, never during an
// encrypt or decrypt call.
type ConfigError struct {
	Field   string
	Message string
}

func (e ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid shared credential configuration: %s %s", e.Field, e.Message)
	}
	return "invalid shared credential configuration: " + e.Message
}

// UnsupportedOperationError reports an encrypt or decrypt call against
// a cipher that does not hold shared credentials. It is raised before
// the underlying cipher is invoked.
type UnsupportedOperationError struct {
	Operation string
}

func (e UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s requires shared credentials, but the configured cipher does not provide them", e.Operation)
}
