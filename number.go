package rjson

import "math"

// numKind discriminates the three shapes a parsed Number can take.
type numKind int

const (
	numU64 numKind = iota
	numI64
	numF64
)

// Number is a parsed numeric token: the narrowest of unsigned integer,
// negative signed integer, or floating point that preserves the input
// value. Only one accessor is meaningful, selected by IsU64/IsI64/IsF64.
type Number struct {
	kind numKind
	u64  uint64
	i64  int64
	f64  float64
}

func (n Number) IsU64() bool { return n.kind == numU64 }
func (n Number) IsI64() bool { return n.kind == numI64 }
func (n Number) IsF64() bool { return n.kind == numF64 }

func (n Number) AsU64() uint64 { return n.u64 }
func (n Number) AsI64() int64  { return n.i64 }

// AsF64 widens any of the three shapes to float64.
func (n Number) AsF64() float64 {
	switch n.kind {
	case numU64:
		return float64(n.u64)
	case numI64:
		return float64(n.i64)
	default:
		return n.f64
	}
}

// pow10 is a precomputed table of 1e0..1e308. Combining a significand with
// a decimal exponent via one multiply/divide against this table is both
// faster and more accurate than repeated multiplication by 10, which
// accumulates rounding error one digit at a time.
var pow10 = [309]float64{
	1e0,
	1e1,
	1e2,
	1e3,
	1e4,
	1e5,
	1e6,
	1e7,
	1e8,
	1e9,
	1e10,
	1e11,
	1e12,
	1e13,
	1e14,
	1e15,
	1e16,
	1e17,
	1e18,
	1e19,
	1e20,
	1e21,
	1e22,
	1e23,
	1e24,
	1e25,
	1e26,
	1e27,
	1e28,
	1e29,
	1e30,
	1e31,
	1e32,
	1e33,
	1e34,
	1e35,
	1e36,
	1e37,
	1e38,
	1e39,
	1e40,
	1e41,
	1e42,
	1e43,
	1e44,
	1e45,
	1e46,
	1e47,
	1e48,
	1e49,
	1e50,
	1e51,
	1e52,
	1e53,
	1e54,
	1e55,
	1e56,
	1e57,
	1e58,
	1e59,
	1e60,
	1e61,
	1e62,
	1e63,
	1e64,
	1e65,
	1e66,
	1e67,
	1e68,
	1e69,
	1e70,
	1e71,
	1e72,
	1e73,
	1e74,
	1e75,
	1e76,
	1e77,
	1e78,
	1e79,
	1e80,
	1e81,
	1e82,
	1e83,
	1e84,
	1e85,
	1e86,
	1e87,
	1e88,
	1e89,
	1e90,
	1e91,
	1e92,
	1e93,
	1e94,
	1e95,
	1e96,
	1e97,
	1e98,
	1e99,
	1e100,
	1e101,
	1e102,
	1e103,
	1e104,
	1e105,
	1e106,
	1e107,
	1e108,
	1e109,
	1e110,
	1e111,
	1e112,
	1e113,
	1e114,
	1e115,
	1e116,
	1e117,
	1e118,
	1e119,
	1e120,
	1e121,
	1e122,
	1e123,
	1e124,
	1e125,
	1e126,
	1e127,
	1e128,
	1e129,
	1e130,
	1e131,
	1e132,
	1e133,
	1e134,
	1e135,
	1e136,
	1e137,
	1e138,
	1e139,
	1e140,
	1e141,
	1e142,
	1e143,
	1e144,
	1e145,
	1e146,
	1e147,
	1e148,
	1e149,
	1e150,
	1e151,
	1e152,
	1e153,
	1e154,
	1e155,
	1e156,
	1e157,
	1e158,
	1e159,
	1e160,
	1e161,
	1e162,
	1e163,
	1e164,
	1e165,
	1e166,
	1e167,
	1e168,
	1e169,
	1e170,
	1e171,
	1e172,
	1e173,
	1e174,
	1e175,
	1e176,
	1e177,
	1e178,
	1e179,
	1e180,
	1e181,
	1e182,
	1e183,
	1e184,
	1e185,
	1e186,
	1e187,
	1e188,
	1e189,
	1e190,
	1e191,
	1e192,
	1e193,
	1e194,
	1e195,
	1e196,
	1e197,
	1e198,
	1e199,
	1e200,
	1e201,
	1e202,
	1e203,
	1e204,
	1e205,
	1e206,
	1e207,
	1e208,
	1e209,
	1e210,
	1e211,
	1e212,
	1e213,
	1e214,
	1e215,
	1e216,
	1e217,
	1e218,
	1e219,
	1e220,
	1e221,
	1e222,
	1e223,
	1e224,
	1e225,
	1e226,
	1e227,
	1e228,
	1e229,
	1e230,
	1e231,
	1e232,
	1e233,
	1e234,
	1e235,
	1e236,
	1e237,
	1e238,
	1e239,
	1e240,
	1e241,
	1e242,
	1e243,
	1e244,
	1e245,
	1e246,
	1e247,
	1e248,
	1e249,
	1e250,
	1e251,
	1e252,
	1e253,
	1e254,
	1e255,
	1e256,
	1e257,
	1e258,
	1e259,
	1e260,
	1e261,
	1e262,
	1e263,
	1e264,
	1e265,
	1e266,
	1e267,
	1e268,
	1e269,
	1e270,
	1e271,
	1e272,
	1e273,
	1e274,
	1e275,
	1e276,
	1e277,
	1e278,
	1e279,
	1e280,
	1e281,
	1e282,
	1e283,
	1e284,
	1e285,
	1e286,
	1e287,
	1e288,
	1e289,
	1e290,
	1e291,
	1e292,
	1e293,
	1e294,
	1e295,
	1e296,
	1e297,
	1e298,
	1e299,
	1e300,
	1e301,
	1e302,
	1e303,
	1e304,
	1e305,
	1e306,
	1e307,
	1e308,
}

// exponentOverflow signals that the exponent digits accumulated past
// int32 range. Per the grammar, the rest of the exponent's digits must
// still be consumed; the caller decides between NumberOutOfRange and a
// signed-zero result based on the significand and the exponent's sign.
type exponentOverflow struct{ positive bool }

func (e *exponentOverflow) Error() string { return "exponent overflow" }

// parseNumber consumes a number token: the dispatcher has not consumed
// anything yet when this is called, including the leading '-' or digit.
func parseNumber(r Read) (Number, error) {
	startPos := r.PeekPosition()

	b, ok, err := nextByte(r)
	if err != nil {
		return Number{}, err
	}
	if !ok {
		return Number{}, syntaxErr(codeInvalidNumber, startPos.Line, startPos.Column)
	}

	neg := false
	if b == '-' {
		neg = true
		b, ok, err = nextByte(r)
		if err != nil {
			return Number{}, err
		}
		if !ok {
			return Number{}, syntaxErr(codeInvalidNumber, startPos.Line, startPos.Column)
		}
	}
	if b < '0' || b > '9' {
		return Number{}, syntaxErr(codeInvalidNumber, startPos.Line, startPos.Column)
	}

	sig := uint64(b - '0')
	overflowed := false
	exp := 0

	if b == '0' {
		nb, ok, err := peekByte(r)
		if err != nil {
			return Number{}, err
		}
		if ok && nb >= '0' && nb <= '9' {
			return Number{}, syntaxErr(codeInvalidNumber, startPos.Line, startPos.Column)
		}
	} else {
		for {
			nb, ok, err := peekByte(r)
			if err != nil {
				return Number{}, err
			}
			if !ok || nb < '0' || nb > '9' {
				break
			}
			d := uint64(nb - '0')
			if !overflowed {
				if sig > (math.MaxUint64-d)/10 {
					overflowed = true
					exp++
				} else {
					sig = sig*10 + d
				}
			} else {
				exp++
			}
			if _, _, err := nextByte(r); err != nil {
				return Number{}, err
			}
		}
	}

	isFloat := false

	nb, ok, err := peekByte(r)
	if err != nil {
		return Number{}, err
	}
	if ok && nb == '.' {
		isFloat = true
		if _, _, err := nextByte(r); err != nil {
			return Number{}, err
		}
		digits := 0
		for {
			nb, ok, err := peekByte(r)
			if err != nil {
				return Number{}, err
			}
			if !ok || nb < '0' || nb > '9' {
				break
			}
			d := uint64(nb - '0')
			digits++
			if !overflowed {
				if sig > (math.MaxUint64-d)/10 {
					overflowed = true
				} else {
					sig = sig*10 + d
					exp--
				}
			}
			if _, _, err := nextByte(r); err != nil {
				return Number{}, err
			}
		}
		if digits == 0 {
			return Number{}, syntaxErr(codeInvalidNumber, startPos.Line, startPos.Column)
		}
	}

	nb, ok, err = peekByte(r)
	if err != nil {
		return Number{}, err
	}
	if ok && (nb == 'e' || nb == 'E') {
		isFloat = true
		if _, _, err := nextByte(r); err != nil {
			return Number{}, err
		}
		expVal, eerr := parseExponentDigits(r, startPos)
		if eerr != nil {
			if ovf, isOvf := eerr.(*exponentOverflow); isOvf {
				if sig != 0 && ovf.positive {
					return Number{}, syntaxErr(codeNumberOutOfRange, startPos.Line, startPos.Column)
				}
				if err := checkNumberTerminator(r, startPos); err != nil {
					return Number{}, err
				}
				f := 0.0
				if neg {
					f = math.Copysign(0, -1)
				}
				return Number{kind: numF64, f64: f}, nil
			}
			return Number{}, eerr
		}
		exp += expVal
	}

	if !isFloat && !overflowed {
		if err := checkNumberTerminator(r, startPos); err != nil {
			return Number{}, err
		}
		if !neg {
			return Number{kind: numU64, u64: sig}, nil
		}
		i := -int64(sig)
		if i >= 0 {
			return Number{kind: numF64, f64: -float64(sig)}, nil
		}
		return Number{kind: numI64, i64: i}, nil
	}

	if err := checkNumberTerminator(r, startPos); err != nil {
		return Number{}, err
	}
	return f64FromParts(neg, sig, exp, startPos)
}

func parseExponentDigits(r Read, startPos Position) (int, error) {
	neg := false
	b, ok, err := peekByte(r)
	if err != nil {
		return 0, err
	}
	if ok && (b == '+' || b == '-') {
		neg = b == '-'
		if _, _, err := nextByte(r); err != nil {
			return 0, err
		}
	}

	b, ok, err = peekByte(r)
	if err != nil {
		return 0, err
	}
	if !ok || b < '0' || b > '9' {
		return 0, syntaxErr(codeInvalidNumber, startPos.Line, startPos.Column)
	}

	var val int64
	overflowed := false
	for {
		b, ok, err := peekByte(r)
		if err != nil {
			return 0, err
		}
		if !ok || b < '0' || b > '9' {
			break
		}
		d := int64(b - '0')
		if !overflowed {
			nv := val*10 + d
			if nv > math.MaxInt32 {
				overflowed = true
			} else {
				val = nv
			}
		}
		if _, _, err := nextByte(r); err != nil {
			return 0, err
		}
	}

	if overflowed {
		return 0, &exponentOverflow{positive: !neg}
	}
	if neg {
		val = -val
	}
	return int(val), nil
}

// f64FromParts combines significand and decimal exponent into a float,
// normalizing exponents outside [-308, 308] by repeated multiplication or
// division by 1e308 before the final multiply or divide against the table.
func f64FromParts(neg bool, sig uint64, exp int, startPos Position) (Number, error) {
	f := float64(sig)
	e := exp

	for e > 308 {
		f *= pow10[308]
		e -= 308
		if math.IsInf(f, 0) {
			return Number{}, syntaxErr(codeNumberOutOfRange, startPos.Line, startPos.Column)
		}
	}
	for e < -308 {
		f /= pow10[308]
		e += 308
		if f == 0 {
			e = 0
			break
		}
	}

	if e >= 0 {
		f *= pow10[e]
	} else {
		f /= pow10[-e]
	}

	if math.IsInf(f, 0) {
		return Number{}, syntaxErr(codeNumberOutOfRange, startPos.Line, startPos.Column)
	}
	if neg {
		f = -f
	}
	return Number{kind: numF64, f64: f}, nil
}

// checkNumberTerminator enforces that a number (or identifier) is followed
// by whitespace/a newline or one of the bytes that may start or end an
// adjacent value; anything else is a syntax error at the offending byte.
// The accepted set matches peekEndOfValue's: a container's own comma/close
// bookkeeping (expectSeqDelimiter) still separately rejects an unseparated
// `1 "a"` inside an array, so allowing a quote or bracket through here only
// widens what a bare top-level or stream value may be followed by.
func checkNumberTerminator(r Read, startPos Position) error {
	var hadNewline bool
	b, ok, err := skipWSUntilNewline(r, &hadNewline)
	if err != nil {
		return err
	}
	if hadNewline || !ok {
		return nil
	}
	switch b {
	case ',', ']', '}', '"', '\'', '[', '{', ':':
		return nil
	default:
		pos := r.PeekPosition()
		return syntaxErr(codeUnexpectedCharacter, pos.Line, pos.Column)
	}
}
