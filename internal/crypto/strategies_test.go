// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/cipher"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/MKhiriev/go-password-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/twofish"
)

// fastKDF keeps the blob layout of DefaultKeyDeriver with a lower scrypt cost
// so that byte-by-byte tamper tests stay fast.
var fastKDF = KeyDeriver{N: 1024, R: 8, P: 1, KeyLen: 32, SaltLen: 16}

// headerLen is salt + nonce/iv + tag/hmac for each algorithm.
var headerLen = map[models.AlgorithmType]int{
	models.AES256GCM:        16 + 12 + 16,
	models.BlowfishCBC:      16 + 8 + 32,
	models.ChaCha20Poly1305: 16 + 12 + 16,
	models.TwofishCTR:       16 + 16 + 32,
}

func decodeBlob(t *testing.T, blob models.SecuredBlob) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(string(blob))
	require.NoError(t, err)
	return data
}

func TestDefaultStrategies_CoverEveryAlgorithm(t *testing.T) {
	strategies := DefaultStrategies()
	require.Len(t, strategies, len(models.AllAlgorithms()))

	for i, alg := range models.AllAlgorithms() {
		assert.Equal(t, alg, strategies[i].Algorithm())
	}
}

func TestStrategies_RoundTrip(t *testing.T) {
	plaintexts := map[string][]byte{
		"empty":       {},
		"one byte":    []byte("x"),
		"block sized": []byte("0123456789abcdef"),
		"multi block": []byte(strings.Repeat("vault-content-", 37)),
		"utf8":        []byte(`{"login":"пользователь","password":"пароль🔑"}`),
		"binary":      {0x00, 0xff, 0x10, 0x80, 0x00},
	}

	for _, s := range NewStrategies(fastKDF) {
		for name, plain := range plaintexts {
			t.Run(string(s.Algorithm())+"/"+name, func(t *testing.T) {
				blob, err := s.Encrypt(plain, "correct horse battery staple")
				require.NoError(t, err)

				got, err := s.Decrypt(blob, "correct horse battery staple")
				require.NoError(t, err)
				assert.True(t, bytes.Equal(plain, got), "round trip mismatch: want %q, got %q", plain, got)
			})
		}
	}
}

func TestStrategies_RoundTripDefaultCost(t *testing.T) {
	plain := []byte(`{"login":"a@x.com","password":"p1"}`)

	for _, s := range DefaultStrategies() {
		t.Run(string(s.Algorithm()), func(t *testing.T) {
			blob, err := s.Encrypt(plain, "masterpw")
			require.NoError(t, err)

			got, err := s.Decrypt(blob, "masterpw")
			require.NoError(t, err)
			assert.Equal(t, plain, got)
		})
	}
}

func TestStrategies_BlobLayout(t *testing.T) {
	plain := []byte("exactly 21 bytes long")

	for _, s := range NewStrategies(fastKDF) {
		t.Run(string(s.Algorithm()), func(t *testing.T) {
			blob, err := s.Encrypt(plain, "pw")
			require.NoError(t, err)

			data := decodeBlob(t, blob)

			ctLen := len(plain)
			if s.Algorithm() == models.BlowfishCBC {
				ctLen = (len(plain)/8 + 1) * 8
			}
			assert.Equal(t, headerLen[s.Algorithm()]+ctLen, len(data))
		})
	}
}

func TestStrategies_FreshSaltAndNonce(t *testing.T) {
	plain := []byte("same plaintext")

	for _, s := range NewStrategies(fastKDF) {
		t.Run(string(s.Algorithm()), func(t *testing.T) {
			b1, err := s.Encrypt(plain, "pw")
			require.NoError(t, err)
			b2, err := s.Encrypt(plain, "pw")
			require.NoError(t, err)

			d1, d2 := decodeBlob(t, b1), decodeBlob(t, b2)
			assert.NotEqual(t, d1[:16], d2[:16], "salt must be random per encryption")
			assert.NotEqual(t, b1, b2)
		})
	}
}

func TestStrategies_TamperDetection(t *testing.T) {
	plain := []byte(`{"login":"a@x.com","password":"p1"}`)

	for _, s := range NewStrategies(fastKDF) {
		t.Run(string(s.Algorithm()), func(t *testing.T) {
			blob, err := s.Encrypt(plain, "pw")
			require.NoError(t, err)
			data := decodeBlob(t, blob)

			for i := range data {
				tampered := append([]byte(nil), data...)
				tampered[i] ^= 0x01

				_, err := s.Decrypt(models.SecuredBlob(base64.StdEncoding.EncodeToString(tampered)), "pw")
				require.ErrorIs(t, err, ErrIntegrity, "flipping byte %d must be detected", i)
			}
		})
	}
}

func TestStrategies_WrongPassword(t *testing.T) {
	for _, s := range NewStrategies(fastKDF) {
		t.Run(string(s.Algorithm()), func(t *testing.T) {
			blob, err := s.Encrypt([]byte("secret"), "right")
			require.NoError(t, err)

			got, err := s.Decrypt(blob, "wrong")
			require.ErrorIs(t, err, ErrIntegrity)
			assert.Nil(t, got)
		})
	}
}

func TestStrategies_MalformedBlob(t *testing.T) {
	tests := []struct {
		name string
		blob models.SecuredBlob
	}{
		{name: "not base64", blob: "%%%not-base64%%%"},
		{name: "empty", blob: ""},
		{name: "shorter than header", blob: models.SecuredBlob(base64.StdEncoding.EncodeToString(make([]byte, 20)))},
	}

	for _, s := range NewStrategies(fastKDF) {
		for _, tt := range tests {
			t.Run(string(s.Algorithm())+"/"+tt.name, func(t *testing.T) {
				_, err := s.Decrypt(tt.blob, "pw")
				require.ErrorIs(t, err, ErrIntegrity)
			})
		}
	}
}

func TestStrategies_InvalidKDFParameters(t *testing.T) {
	// scrypt requires N to be a power of two greater than one.
	broken := KeyDeriver{N: 1000, R: 8, P: 1, KeyLen: 32, SaltLen: 16}

	for _, s := range NewStrategies(broken) {
		t.Run(string(s.Algorithm()), func(t *testing.T) {
			_, err := s.Encrypt([]byte("x"), "pw")
			require.ErrorIs(t, err, ErrKeyDerivation)
		})
	}
}

func TestKeyDeriver_Deterministic(t *testing.T) {
	kdf := DefaultKeyDeriver()
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1, err := kdf.DeriveKey("password", salt)
	require.NoError(t, err)
	k2, err := kdf.DeriveKey("password", salt)
	require.NoError(t, err)
	k3, err := kdf.DeriveKey("password", bytes.Repeat([]byte{0xCD}, 16))
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestKeyDeriver_NewSalt(t *testing.T) {
	kdf := DefaultKeyDeriver()

	s1, err := kdf.NewSalt()
	require.NoError(t, err)
	s2, err := kdf.NewSalt()
	require.NoError(t, err)

	assert.Len(t, s1, 16)
	assert.NotEqual(t, s1, s2)
}

func TestTwofishCTR_MatchesStandardCounterMode(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	nonce := []byte("0123456789abcdefXXXX")[:twofishNonceLen]

	block, err := twofish.NewCipher(key)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 15, 16, 17, 100} {
		input := bytes.Repeat([]byte{0x5a}, n)

		// For fewer than 2^32 blocks the 4-byte counter never carries into
		// the nonce prefix, so the standard CTR stream is identical.
		iv := make([]byte, twofish.BlockSize)
		copy(iv, nonce[:ctrPrefixLen])
		want := make([]byte, n)
		cipher.NewCTR(block, iv).XORKeyStream(want, input)

		assert.Equal(t, want, twofishCTR(block, nonce, input), "length %d", n)
	}
}

func TestTwofishCTR_IgnoresNonceTail(t *testing.T) {
	block, err := twofish.NewCipher(bytes.Repeat([]byte{0x01}, 32))
	require.NoError(t, err)

	input := []byte("counter block uses only the first twelve nonce bytes")
	n1 := bytes.Repeat([]byte{0x07}, 16)
	n2 := append(bytes.Repeat([]byte{0x07}, 12), 0xde, 0xad, 0xbe, 0xef)

	assert.Equal(t, twofishCTR(block, n1, input), twofishCTR(block, n2, input))
}

func TestPKCS7(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{name: "empty", in: []byte{}, want: bytes.Repeat([]byte{8}, 8)},
		{name: "one short", in: []byte("1234567"), want: append([]byte("1234567"), 1)},
		{name: "aligned", in: []byte("12345678"), want: append([]byte("12345678"), bytes.Repeat([]byte{8}, 8)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			padded := pkcs7Pad(tt.in, 8)
			assert.Equal(t, tt.want, padded)

			unpadded, err := pkcs7Unpad(padded, 8)
			require.NoError(t, err)
			assert.Equal(t, tt.in, unpadded)
		})
	}

	bad := [][]byte{
		{},
		[]byte("1234567"),
		append([]byte("1234567"), 0),
		append([]byte("1234567"), 9),
		append([]byte("123456"), 3, 2),
	}
	for _, b := range bad {
		_, err := pkcs7Unpad(b, 8)
		assert.ErrorIs(t, err, errBadPadding, "input %v", b)
	}
}
