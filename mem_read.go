package rjson

import "unicode/utf8"

// memSource is the minimal surface SliceRead and StrRead need from their
// backing storage; both are simple random-access byte sequences, so the
// scanning logic below is written once against this interface instead of
// being duplicated per concrete type.
type memSource interface {
	byteAt(i int) byte
	length() int
	slice(a, b int) string
}

type sliceSource []byte

func (s sliceSource) byteAt(i int) byte     { return s[i] }
func (s sliceSource) length() int           { return len(s) }
func (s sliceSource) slice(a, b int) string { return string(s[a:b]) }

type strSource string

func (s strSource) byteAt(i int) byte     { return s[i] }
func (s strSource) length() int           { return len(s) }
func (s strSource) slice(a, b int) string { return string(s[a:b]) }

// memRead implements Read over an in-memory source. Over a string (StrRead)
// slicing allocates nothing; over a byte slice (SliceRead) each slice is
// copied into a new string. SliceRead and StrRead are thin constructors
// around it.
type memRead struct {
	src       memSource
	pos       int
	line, col int
}

func newMemRead(src memSource) *memRead {
	return &memRead{src: src, pos: 0, line: 1, col: 1}
}

func (m *memRead) Peek() (byte, bool, error) {
	if m.pos >= m.src.length() {
		return 0, false, nil
	}
	return m.src.byteAt(m.pos), true, nil
}

func (m *memRead) Next() (byte, bool, error) {
	if m.pos >= m.src.length() {
		return 0, false, nil
	}
	b := m.src.byteAt(m.pos)
	m.pos++
	if b == '\n' {
		m.line++
		m.col = 1
	} else {
		m.col++
	}
	return b, true, nil
}

func (m *memRead) PeekSecond() (byte, bool, error) {
	if m.pos+1 >= m.src.length() {
		return 0, false, nil
	}
	return m.src.byteAt(m.pos + 1), true, nil
}

func (m *memRead) Position() Position     { return Position{Line: m.line, Column: m.col - 1} }
func (m *memRead) PeekPosition() Position { return Position{Line: m.line, Column: m.col} }
func (m *memRead) ByteOffset() int        { return m.pos }

func (m *memRead) advance() {
	_, _, _ = m.Next()
}

// parseQuoted consumes bytes up to and including the matching quote byte,
// decoding backslash escapes along the way. The opening quote has already
// been consumed by the caller. When validate is true the assembled string
// must be valid UTF-8 or the call fails.
func (m *memRead) parseQuoted(quote byte, scratch *[]byte, validate bool) (StrRef, error) {
	start := m.pos
	*scratch = (*scratch)[:0]
	copying := false

	for {
		if m.pos >= m.src.length() {
			return StrRef{}, syntaxErr(codeEofWhileParsingString, m.line, m.col)
		}
		b := m.src.byteAt(m.pos)

		switch {
		case b == quote:
			if !copying {
				s := m.src.slice(start, m.pos)
				m.advance()
				if validate && !utf8.ValidString(s) {
					return StrRef{}, syntaxErr(codeInvalidUnicodeCodePoint, m.line, m.col)
				}
				return StrRef{S: s, Borrowed: true}, nil
			}
			m.advance()
			if validate && !utf8.Valid(*scratch) {
				return StrRef{}, syntaxErr(codeInvalidUnicodeCodePoint, m.line, m.col)
			}
			return StrRef{S: string(*scratch), Borrowed: false}, nil

		case b == '\\':
			if !copying {
				*scratch = append(*scratch, m.src.slice(start, m.pos)...)
				copying = true
			}
			m.advance()
			if err := m.decodeEscape(scratch); err != nil {
				return StrRef{}, err
			}

		case b < 0x20:
			return StrRef{}, syntaxErr(codeControlCharacterWhileParsingString, m.line, m.col)

		default:
			if copying {
				*scratch = append(*scratch, b)
			}
			m.advance()
		}
	}
}

// decodeEscape decodes one escape sequence (the backslash has already been
// consumed) and appends the result to scratch.
func (m *memRead) decodeEscape(scratch *[]byte) error {
	if m.pos >= m.src.length() {
		return syntaxErr(codeEofWhileParsingString, m.line, m.col)
	}
	b := m.src.byteAt(m.pos)
	m.advance()

	switch b {
	case '"':
		*scratch = append(*scratch, '"')
	case '\'':
		*scratch = append(*scratch, '\'')
	case '\\':
		*scratch = append(*scratch, '\\')
	case '/':
		*scratch = append(*scratch, '/')
	case 'n':
		*scratch = append(*scratch, '\n')
	case 'r':
		*scratch = append(*scratch, '\r')
	case 't':
		*scratch = append(*scratch, '\t')
	case 'b':
		*scratch = append(*scratch, '\b')
	case 'f':
		*scratch = append(*scratch, '\f')
	case 'u':
		return m.decodeUnicodeEscape(scratch)
	default:
		return syntaxErr(codeInvalidEscape, m.line, m.col)
	}
	return nil
}

func (m *memRead) decodeUnicodeEscape(scratch *[]byte) error {
	r, err := m.decodeHex4()
	if err != nil {
		return err
	}

	if r >= 0xDC00 && r <= 0xDFFF {
		// A low surrogate with no preceding high surrogate.
		return syntaxErr(codeInvalidUnicodeCodePoint, m.line, m.col)
	}

	if r >= 0xD800 && r <= 0xDBFF {
		if m.pos+1 >= m.src.length() || m.src.byteAt(m.pos) != '\\' || m.src.byteAt(m.pos+1) != 'u' {
			return syntaxErr(codeLoneLeadingSurrogateInHexEscape, m.line, m.col)
		}
		m.advance()
		m.advance()
		low, err := m.decodeHex4()
		if err != nil {
			return err
		}
		if low < 0xDC00 || low > 0xDFFF {
			return syntaxErr(codeLoneLeadingSurrogateInHexEscape, m.line, m.col)
		}
		r = ((r - 0xD800) << 10) + (low - 0xDC00) + 0x10000
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(r))
	*scratch = append(*scratch, buf[:n]...)
	return nil
}

func (m *memRead) decodeHex4() (int, error) {
	v := 0
	for i := 0; i < 4; i++ {
		if m.pos >= m.src.length() {
			return 0, syntaxErr(codeUnexpectedEndOfHexEscape, m.line, m.col)
		}
		b := m.src.byteAt(m.pos)
		d, ok := hexDigit(b)
		if !ok {
			return 0, syntaxErr(codeInvalidEscape, m.line, m.col)
		}
		m.advance()
		v = v<<4 | d
	}
	return v, nil
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

// isBareTerminator reports whether b ends a bare scalar value token. Member
// names use isMemberNameTerminator instead, which additionally stops at ':'
// so a key never swallows its own separator.
func isBareTerminator(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', ',', ']', '}':
		return true
	default:
		return false
	}
}

func isMemberNameTerminator(b byte) bool {
	return b == ':' || isBareTerminator(b)
}

func (m *memRead) parseBare(scratch *[]byte, stopAtColon bool) (StrRef, error) {
	start := m.pos
	for m.pos < m.src.length() {
		b := m.src.byteAt(m.pos)
		if stopAtColon {
			if isMemberNameTerminator(b) {
				break
			}
		} else if isBareTerminator(b) {
			break
		}
		m.advance()
	}
	_ = scratch
	return StrRef{S: m.src.slice(start, m.pos), Borrowed: true}, nil
}

func (m *memRead) ParseDoubleStr(scratch *[]byte) (StrRef, error) {
	return m.parseQuoted('"', scratch, true)
}

func (m *memRead) ParseSingleStr(scratch *[]byte) (StrRef, error) {
	return m.parseQuoted('\'', scratch, true)
}

func (m *memRead) ParseDoubleStrRaw(scratch *[]byte) (StrRef, error) {
	return m.parseQuoted('"', scratch, false)
}

func (m *memRead) ParseSingleStrRaw(scratch *[]byte) (StrRef, error) {
	return m.parseQuoted('\'', scratch, false)
}

func (m *memRead) ParseNoneStr(scratch *[]byte) (StrRef, error) {
	return m.parseBare(scratch, false)
}

func (m *memRead) ParseMemberName(scratch *[]byte) (StrRef, error) {
	return m.parseBare(scratch, true)
}

func (m *memRead) IgnoreDoubleStr() error {
	var scratch []byte
	_, err := m.parseQuoted('"', &scratch, false)
	return err
}

func (m *memRead) IgnoreSingleStr() error {
	var scratch []byte
	_, err := m.parseQuoted('\'', &scratch, false)
	return err
}

func (m *memRead) IgnoreNoneStr() error {
	var scratch []byte
	_, err := m.parseBare(&scratch, false)
	return err
}

func (m *memRead) IgnoreMemberName() error {
	var scratch []byte
	_, err := m.parseBare(&scratch, true)
	return err
}

// SliceRead reads a relaxed-JSON value out of an in-memory byte slice.
type SliceRead struct{ *memRead }

// NewSliceRead constructs an input source over b.
func NewSliceRead(b []byte) *SliceRead {
	return &SliceRead{newMemRead(sliceSource(b))}
}

// StrRead reads a relaxed-JSON value out of an in-memory UTF-8 string.
type StrRead struct{ *memRead }

// NewStrRead constructs an input source over s.
func NewStrRead(s string) *StrRead {
	return &StrRead{newMemRead(strSource(s))}
}
