package totp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rfcSecret is base32("12345678901234567890"), the key of the RFC 4226 and
// RFC 6238 SHA-1 test vectors.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestHOTP_RFC4226Vectors(t *testing.T) {
	key := []byte("12345678901234567890")
	want := []string{
		"755224", "287082", "359152", "969429", "338314",
		"254676", "287922", "162583", "399871", "520489",
	}

	for counter, code := range want {
		assert.Equal(t, code, HOTP(key, uint64(counter), 6), "counter %d", counter)
	}
}

func TestGenerateAt_RFC6238Vectors(t *testing.T) {
	tests := []struct {
		unix int64
		want string
	}{
		{unix: 59, want: "94287082"},
		{unix: 1111111109, want: "07081804"},
		{unix: 1111111111, want: "14050471"},
		{unix: 1234567890, want: "89005924"},
		{unix: 2000000000, want: "69279037"},
		{unix: 20000000000, want: "65353130"},
	}

	g8 := NewGenerator(WithDigits(8))
	g6 := NewGenerator()

	for _, tt := range tests {
		at := time.Unix(tt.unix, 0)

		code, err := g8.GenerateAt(rfcSecret, at)
		require.NoError(t, err)
		assert.Equal(t, tt.want, code, "T=%d", tt.unix)

		code, err = g6.GenerateAt(rfcSecret, at)
		require.NoError(t, err)
		assert.Equal(t, tt.want[2:], code, "T=%d, 6 digits", tt.unix)
	}
}

func TestGenerate_UsesClock(t *testing.T) {
	fixed := time.Unix(59, 0)
	g := NewGenerator(WithDigits(8), WithClock(func() time.Time { return fixed }))

	code, err := g.Generate(rfcSecret)
	require.NoError(t, err)
	assert.Equal(t, "94287082", code)
	assert.Equal(t, 1, g.Remaining())
	assert.Equal(t, fixed, g.Now())
}

func TestGenerate_SecretNormalization(t *testing.T) {
	at := time.Unix(59, 0)
	g := NewGenerator(WithDigits(8))

	for _, secret := range []string{
		"gezdgnbvgy3tqojqgezdgnbvgy3tqojq",
		"GEZD GNBV GY3T QOJQ GEZD GNBV GY3T QOJQ",
		"GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ====",
		"\tgezdgnbvgy3tqojq\ngezdgnbvgy3tqojq ",
	} {
		code, err := g.GenerateAt(secret, at)
		require.NoError(t, err, secret)
		assert.Equal(t, "94287082", code, secret)
	}
}

func TestGenerate_InvalidSecret(t *testing.T) {
	g := NewGenerator()

	for _, secret := range []string{"ABC1", "JBSW!Y3DP", "ÄBCD", "MZXW0"} {
		_, err := g.Generate(secret)
		assert.ErrorIs(t, err, ErrInvalidSecret, secret)
	}
}

func TestDecodeSecret(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "MZXW6===", want: "foo"},
		{in: "mzxw6ytboi", want: "foobar"},
		{in: "MZXW6YQ", want: "foob"},
		// trailing partial bits are dropped
		{in: "MZXW6YTBO", want: "fooba"},
		{in: "MZXW6YTBOIA", want: "foobar"},
		{in: "M", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := DecodeSecret(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRemainingAt(t *testing.T) {
	g := NewGenerator()

	assert.Equal(t, 30, g.RemainingAt(time.Unix(0, 0)))
	assert.Equal(t, 1, g.RemainingAt(time.Unix(59, 0)))
	assert.Equal(t, 30, g.RemainingAt(time.Unix(60, 0)))
	assert.Equal(t, 20, g.RemainingAt(time.Unix(70, 999)))

	g60 := NewGenerator(WithPeriod(60))
	assert.Equal(t, 50, g60.RemainingAt(time.Unix(70, 0)))
}

func TestOptions_IgnoreInvalidValues(t *testing.T) {
	g := NewGenerator(WithPeriod(0), WithDigits(0), WithDigits(12), WithClock(nil))

	assert.Equal(t, DefaultPeriod, g.Period())
	assert.Equal(t, DefaultDigits, g.Digits())
	assert.NotPanics(t, func() { g.Remaining() })
}

func TestHOTP_ZeroPadding(t *testing.T) {
	// counter 1 of the RFC key yields 287082 at 6 digits, so 2 digits is "82"
	assert.Equal(t, "82", HOTP([]byte("12345678901234567890"), 1, 2))
	// T=1111111109 produces a leading zero at 8 digits
	assert.Equal(t, "07081804", HOTP([]byte("12345678901234567890"), 1111111109/30, 8))
}

func TestRemainingAt_BeforeEpoch(t *testing.T) {
	g := NewGenerator()

	for _, unix := range []int64{-1, -29, -30, -31, -59, -60, -61, -1000} {
		remaining := g.RemainingAt(time.Unix(unix, 0))
		assert.GreaterOrEqual(t, remaining, 1, "unix %d", unix)
		assert.LessOrEqual(t, remaining, g.Period(), "unix %d", unix)
	}

	assert.Equal(t, 1, g.RemainingAt(time.Unix(-31, 0)))
	assert.Equal(t, 30, g.RemainingAt(time.Unix(-30, 0)))
	assert.Equal(t, 1, g.RemainingAt(time.Unix(-1, 0)))
}

func TestGenerateAt_BeforeEpochUsesFloorCounter(t *testing.T) {
	g := NewGenerator()
	key := []byte("12345678901234567890")

	early, err := g.GenerateAt(rfcSecret, time.Unix(-30, 0))
	require.NoError(t, err)
	late, err := g.GenerateAt(rfcSecret, time.Unix(-1, 0))
	require.NoError(t, err)

	// -30..-1 is the window with counter -1
	minusOne := int64(-1)
	assert.Equal(t, HOTP(key, uint64(minusOne), 6), early)
	assert.Equal(t, early, late)

	prev, err := g.GenerateAt(rfcSecret, time.Unix(-31, 0))
	require.NoError(t, err)
	minusTwo := int64(-2)
	assert.Equal(t, HOTP(key, uint64(minusTwo), 6), prev)
}

func TestHOTP_MoreThanNineDigits(t *testing.T) {
	key := []byte("12345678901234567890")

	// RFC 4226 appendix D truncated values for counters 0 and 1
	assert.Equal(t, "1284755224", HOTP(key, 0, 10))
	assert.Equal(t, "1094287082", HOTP(key, 1, 10))
	assert.Equal(t, "001284755224", HOTP(key, 0, 12))
	assert.Equal(t, "755224", HOTP(key, 0, 6))
}
