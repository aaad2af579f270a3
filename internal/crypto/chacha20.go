package crypto

import (
	"crypto/cipher"

	"github.com/MKhiriev/go-password-vault/models"
	"golang.org/x/crypto/chacha20poly1305"
)

// NewChaCha20Poly1305Strategy returns the IETF ChaCha20-Poly1305
// [CipherStrategy] (96-bit nonce, 128-bit tag).
func NewChaCha20Poly1305Strategy(kdf KeyDeriver) CipherStrategy {
	return &aeadStrategy{
		kdf:       kdf,
		algorithm: models.ChaCha20Poly1305,
		nonceLen:  chacha20poly1305.NonceSize,
		tagLen:    chacha20poly1305.Overhead,
		newAEAD: func(key []byte) (cipher.AEAD, error) {
			return chacha20poly1305.New(key)
		},
	}
}
