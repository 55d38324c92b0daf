package crypto

import (
	"context"

	"sharedcrypto/pkg/crypto/types"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "sharedcrypto"

// SharedCredentialCipher wraps a raw Cipher with credentials derived
// once at construction from a shared password and salt. It satisfies
// both types.Cipher and types.CredentialSource, which is what the
// package-level dispatch helpers look for.
//
// The derived credentials are immutable and held by value; concurrent
// callers share them read-only without locking.
type SharedCredentialCipher struct {
	cipher types.Cipher
	creds  types.Credentials
	tracer trace.Tracer
}

var (
	_ types.Cipher           = (*SharedCredentialCipher)(nil)
	_ types.CredentialSource = (*SharedCredentialCipher)(nil)
)

type settings struct {
	cipher types.Cipher
	logger *logrus.Logger
	tracer trace.Tracer
}

type Option func(*settings)

// WithCipher replaces the default AES-CBC primitive.
func WithCipher(c types.Cipher) Option {
	return func(s *settings) {
		s.cipher = c
	}
}

// WithLogger enables a single structured diagnostic log line when
// credentials are derived. Encrypt and decrypt calls never log.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithTracer records a span per encrypt/decrypt call. Without it the
// global (by default noop) tracer provider is used, so the core stays
// free of any exporter wiring.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *settings) {
		s.tracer = tracer
	}
}

// Setup validates cfg, derives shared credentials, and returns a cipher
// ready to hand to a composition root. Derivation runs exactly once
// here; it is CPU-bound, so callers on latency-sensitive paths should
// run Setup ahead of time.
func Setup(cfg types.SharedCredentialConfig, opts ...Option) (*SharedCredentialCipher, error) {
	s := settings{
		cipher: NewAESCipher(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&s)
	}

	creds, err := DeriveCredentials(cfg.Password, cfg.Salt)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"keyBytes": len(creds.Key),
			"ivBytes":  len(creds.IV),
		}).Info("Derived shared encryption credentials")
	}

	return &SharedCredentialCipher{
		cipher: s.cipher,
		creds:  creds,
		tracer: s.tracer,
	}, nil
}

// TryCredentials implements types.CredentialSource.
func (p *SharedCredentialCipher) TryCredentials() (types.Credentials, bool) {
	if p.creds.Empty() {
		return types.Credentials{}, false
	}
	return p.creds, true
}

func (p *SharedCredentialCipher) Encrypt(ctx context.Context, key, iv, plaintext []byte) ([]byte, error) {
	ctx, span := p.tracer.Start(ctx, "crypto.encrypt")
	defer span.End()

	out, err := p.cipher.Encrypt(ctx, key, iv, plaintext)
	if err != nil {
		span.RecordError(err)
	}
	return out, err
}

func (p *SharedCredentialCipher) Decrypt(ctx context.Context, key, iv, ciphertext []byte) ([]byte, error) {
	ctx, span := p.tracer.Start(ctx, "crypto.decrypt")
	defer span.End()

	out, err := p.cipher.Decrypt(ctx, key, iv, ciphertext)
	if err != nil {
		span.RecordError(err)
	}
	return out, err
}
