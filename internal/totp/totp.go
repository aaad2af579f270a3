// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package totp generates RFC 6238 time-based one-time codes (HMAC-SHA1)
// from base32 secrets.
package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base32"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	DefaultPeriod = 30
	DefaultDigits = 6

	// maxDigits keeps 10^digits inside the 31-bit truncated value range.
	maxDigits = 9
)

// ErrInvalidSecret is returned for secrets containing characters outside
// the RFC 4648 base32 alphabet.
var ErrInvalidSecret = errors.New("invalid TOTP secret")

var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generator produces codes with a fixed period and digit count.
// The zero value is not usable; use NewGenerator.
type Generator struct {
	period int
	digits int
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithPeriod sets the code lifetime in seconds. Non-positive values are
// ignored.
func WithPeriod(seconds int) Option {
	return func(g *Generator) {
		if seconds > 0 {
			g.period = seconds
		}
	}
}

// WithDigits sets the code length. Values outside 1..9 are ignored.
func WithDigits(digits int) Option {
	return func(g *Generator) {
		if digits > 0 && digits <= maxDigits {
			g.digits = digits
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator returns a Generator with a 30 second period and 6 digits
// unless overridden by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{period: DefaultPeriod, digits: DefaultDigits, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Period returns the code lifetime in seconds.
func (g *Generator) Period() int { return g.period }

// Digits returns the code length.
func (g *Generator) Digits() int { return g.digits }

// Now returns the generator's current time. Callers that need a code and
// its countdown for the same instant pass it to GenerateAt and RemainingAt.
func (g *Generator) Now() time.Time { return g.now() }

// Generate returns the code for secret at the generator's current time.
func (g *Generator) Generate(secret string) (string, error) {
	return g.GenerateAt(secret, g.now())
}

// GenerateAt returns the code for secret at t.
func (g *Generator) GenerateAt(secret string, t time.Time) (string, error) {
	key, err := DecodeSecret(secret)
	if err != nil {
		return "", err
	}
	return HOTP(key, uint64(g.counterAt(t)), g.digits), nil
}

// counterAt is floor(unix(t) / period), also for instants before 1970.
func (g *Generator) counterAt(t time.Time) int64 {
	unix, period := t.Unix(), int64(g.period)
	counter := unix / period
	if unix%period < 0 {
		counter--
	}
	return counter
}

// Remaining returns the seconds left before the current code rolls over.
func (g *Generator) Remaining() int {
	return g.RemainingAt(g.now())
}

// RemainingAt returns period - (unix(t) mod period), always in 1..period.
func (g *Generator) RemainingAt(t time.Time) int {
	period := int64(g.period)
	return g.period - int((t.Unix()%period+period)%period)
}

// HOTP computes the RFC 4226 code for key and counter. Codes longer than
// maxDigits are the full truncated value, zero-padded to digits.
func HOTP(key []byte, counter uint64, digits int) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	value := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	mod := uint64(1)
	for range min(digits, maxDigits+1) {
		mod *= 10
	}
	return fmt.Sprintf("%0*d", digits, uint64(value)%mod)
}

// DecodeSecret normalizes and decodes a base32 secret: letters are
// upper-cased, padding and whitespace are removed, and trailing bits that do
// not fill a whole byte are dropped.
func DecodeSecret(secret string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '=' || unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, secret)

	for i, r := range cleaned {
		if !strings.ContainsRune(base32Alphabet, r) {
			return nil, fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidSecret, r, i)
		}
	}

	// A group of 1, 3 or 6 trailing characters carries no complete byte in
	// its last character, which the strict decoder rejects.
	switch len(cleaned) % 8 {
	case 1, 3, 6:
		cleaned = cleaned[:len(cleaned)-1]
	}

	key, err := secretEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}
	return key, nil
}

const base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
