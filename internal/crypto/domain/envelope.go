package domain

import (
	"encoding/base64"
)

// Envelope is the stored form of encrypted content: base64(nonce || ciphertext || tag).
type Envelope string

// NewEnvelope encodes a nonce and sealed ciphertext into an Envelope.
func NewEnvelope(nonce, ciphertext []byte) Envelope {
	buf := make([]byte, 0, len(nonce)+len(ciphertext))
	buf = append(buf, nonce...)
	buf = append(buf, ciphertext...)
	return Envelope(base64.StdEncoding.EncodeToString(buf))
}

// Open decodes the Envelope and splits it into nonce and sealed ciphertext.
//
// It returns ErrMalformedEnvelope when the value is not strict base64 or is shorter
// than a nonce. The error never contains the envelope itself.
func (e Envelope) Open() (nonce, ciphertext []byte, err error) {
	raw, err := base64.StdEncoding.Strict().DecodeString(string(e))
	if err != nil {
		return nil, nil, ErrMalformedEnvelope
	}
	if len(raw) < NonceSize {
		return nil, nil, ErrMalformedEnvelope
	}
	return raw[:NonceSize], raw[NonceSize:], nil
}

