package rjson

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseNumberFromString(t *testing.T, s string) Number {
	t.Helper()
	n, err := parseNumber(NewStrRead(s))
	require.NoError(t, err)
	return n
}

func TestParseNumberIntegers(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected uint64
	}{
		{"0", 0},
		{"1", 1},
		{"42", 42},
		{"18446744073709551615", math.MaxUint64},
	} {
		t.Run(test.input, func(t *testing.T) {
			n := parseNumberFromString(t, test.input)
			assert.True(t, n.IsU64())
			assert.Equal(t, test.expected, n.AsU64())
		})
	}
}

func TestParseNumberNegativeIntegers(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected int64
	}{
		{"-1", -1},
		{"-42", -42},
		{"-9223372036854775808", math.MinInt64},
	} {
		t.Run(test.input, func(t *testing.T) {
			n := parseNumberFromString(t, test.input)
			assert.True(t, n.IsI64())
			assert.Equal(t, test.expected, n.AsI64())
		})
	}
}

func TestParseNumberNegativeOverflowEscalatesToFloat(t *testing.T) {
	n := parseNumberFromString(t, "-18446744073709551615")
	assert.True(t, n.IsF64())
	assert.Equal(t, -18446744073709551615.0, n.AsF64())
}

func TestParseNumberFloats(t *testing.T) {
	for _, test := range []struct {
		input    string
		expected float64
	}{
		{"5.0", 5.0},
		{"-5.1", -5.1},
		{"1e3", 1000.0},
		{"1.5e2", 150.0},
		{"1E-2", 0.01},
	} {
		t.Run(test.input, func(t *testing.T) {
			n := parseNumberFromString(t, test.input)
			assert.True(t, n.IsF64())
			assert.Equal(t, test.expected, n.AsF64())
		})
	}
}

func TestParseNumberLeadingZeroIsInvalid(t *testing.T) {
	_, err := parseNumber(NewStrRead("00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParseNumberTrailingEIsInvalid(t *testing.T) {
	_, err := parseNumber(NewStrRead("1e"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParseNumberHugeExponentOutOfRange(t *testing.T) {
	_, err := parseNumber(NewStrRead("1e1000000000000"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNumberOutOfRange)
}

func TestParseNumberHugeExponentZeroSignificandUnderflowsToSignedZero(t *testing.T) {
	n := parseNumberFromString(t, "0e1000000000000")
	assert.True(t, n.IsF64())
	assert.Equal(t, 0.0, n.AsF64())

	n = parseNumberFromString(t, "-0e1000000000000")
	assert.True(t, n.IsF64())
	assert.True(t, math.Signbit(n.AsF64()))
}

func TestParseNumberRoundTripsShortestFloatFormat(t *testing.T) {
	for _, f := range []float64{0.1, 3.14159, 123456.789, 1e100, 1e-100, 2.5} {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		n := parseNumberFromString(t, s)
		assert.True(t, n.IsF64())
		assert.Equal(t, f, n.AsF64())
	}
}
