package domain

// Algorithm represents the AEAD cipher used to seal note content.
//
// Both supported algorithms use a 12-byte nonce and a 16-byte authentication tag,
// so envelopes produced by either share the same layout.
type Algorithm string

const (
	// AESGCM represents AES-GCM. The key size selects AES-128 (16 bytes) or AES-256 (32 bytes).
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305. It only accepts 32-byte keys.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// NonceSize is the per-message nonce length in bytes.
	NonceSize = 12
	// TagSize is the authentication tag length in bytes.
	TagSize = 16

	// KeySize128 and KeySize256 are the accepted key lengths in bytes.
	KeySize128 = 16
	KeySize256 = 32
)

// ParseAlgorithm converts a configuration value into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM, ChaCha20:
		return Algorithm(s), nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
