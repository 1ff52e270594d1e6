package domain

import (
	"github.com/allisson/securenotes/internal/errors"
)

// Configuration errors are raised once at startup while building the engine.
// The process must not start when any of them occurs.
var (
	// ErrEncryptionSecretNotSet indicates ENCRYPTION_SECRET is empty.
	ErrEncryptionSecretNotSet = errors.Wrap(errors.ErrConfiguration, "encryption secret not set")

	// ErrInvalidEncryptionSecret indicates the secret is not a valid even-length hex string.
	ErrInvalidEncryptionSecret = errors.Wrap(errors.ErrConfiguration, "encryption secret is not valid hex")

	// ErrInvalidKeySize indicates the decoded key is not 16 or 32 bytes, or does not fit the algorithm.
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "invalid key size")

	// ErrUnsupportedAlgorithm indicates an unknown encryption algorithm was configured.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrConfiguration, "unsupported algorithm")
)

// Integrity errors are raised while opening stored envelopes. Their messages never
// include the envelope or any recovered bytes.
var (
	// ErrMalformedEnvelope indicates the stored value is not base64 or is shorter than a nonce.
	ErrMalformedEnvelope = errors.Wrap(errors.ErrIntegrity, "malformed envelope")

	// ErrDecryptionFailed indicates tag verification failed: tampered, truncated or wrong-key data.
	ErrDecryptionFailed = errors.Wrap(errors.ErrIntegrity, "decryption failed")
)
