package crypto

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/MKhiriev/go-password-vault/models"
)

const (
	gcmNonceLen = 12
	gcmTagLen   = 16
)

// NewAESGCMStrategy returns the AES-256-GCM [CipherStrategy].
// The derived key length must be 32 for AES-256.
func NewAESGCMStrategy(kdf KeyDeriver) CipherStrategy {
	return &aeadStrategy{
		kdf:       kdf,
		algorithm: models.AES256GCM,
		nonceLen:  gcmNonceLen,
		tagLen:    gcmTagLen,
		newAEAD: func(key []byte) (cipher.AEAD, error) {
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return cipher.NewGCM(block)
		},
	}
}
