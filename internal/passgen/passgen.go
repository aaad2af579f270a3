// Package passgen generates random passwords from selectable character sets.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	MinLength     = 3
	DefaultLength = 20
)

var (
	ErrTooShort  = errors.New("password length must be at least 3 characters")
	ErrNoCharset = errors.New("at least one character set must be enabled")
)

// Options selects the password length and the character sets to draw from.
type Options struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Special bool
}

// DefaultOptions enables every character set with [DefaultLength].
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Upper: true, Lower: true, Digits: true, Special: true}
}

// Generate returns a password of opts.Length characters containing at least
// one character of every enabled set, drawn from crypto/rand.
func Generate(opts Options) (string, error) {
	if opts.Length < MinLength {
		return "", ErrTooShort
	}

	var sets []string
	for _, s := range []struct {
		on    bool
		chars string
	}{
		{opts.Upper, upperChars},
		{opts.Lower, lowerChars},
		{opts.Digits, digitChars},
		{opts.Special, specialChars},
	} {
		if s.on {
			sets = append(sets, s.chars)
		}
	}
	if len(sets) == 0 {
		return "", ErrNoCharset
	}

	var available string
	password := make([]byte, 0, max(opts.Length, len(sets)))
	for _, set := range sets {
		c, err := pick(set)
		if err != nil {
			return "", err
		}
		password = append(password, c)
		available += set
	}

	for len(password) < opts.Length {
		c, err := pick(available)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates, so the guaranteed characters are not always in front.
	for i := len(password) - 1; i > 0; i-- {
		j, err := randIntn(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func pick(chars string) (byte, error) {
	i, err := randIntn(len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

func randIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random number: %w", err)
	}
	return int(v.Int64()), nil
}
