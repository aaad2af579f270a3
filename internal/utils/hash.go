package utils

import (
	"crypto/hmac"
	"crypto/sha256"
)

// HMACSHA256 computes an HMAC-SHA256 digest over the concatenation of parts
// using key. Parts are written in order, so HMACSHA256(k, a, b) equals
// HMACSHA256(k, append(a, b...)).
//
// Example usage:
//
//	mac := utils.HMACSHA256(key, iv, ciphertext)
func HMACSHA256(key []byte, parts ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

// EqualMAC compares two MACs in constant time. Inputs of different length
// are never equal.
func EqualMAC(a, b []byte) bool {
	return hmac.Equal(a, b)
}
