package rjson

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// IoRead reads a relaxed-JSON value out of an arbitrary blocking io.Reader.
// Unlike SliceRead and StrRead it can never borrow into the source, so
// every string it produces is Copied into the caller's scratch buffer.
type IoRead struct {
	br        *bufio.Reader
	line, col int
	offset    int
	peeked    bool
	peekByte  byte
}

// NewIoRead wraps r as a Read source.
func NewIoRead(r io.Reader) *IoRead {
	return &IoRead{br: bufio.NewReader(r), line: 1, col: 1}
}

func (r *IoRead) Peek() (byte, bool, error) {
	if r.peeked {
		return r.peekByte, true, nil
	}
	b, err := r.br.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, err
	}
	r.peeked = true
	r.peekByte = b
	return b, true, nil
}

func (r *IoRead) Next() (byte, bool, error) {
	var b byte
	if r.peeked {
		b = r.peekByte
		r.peeked = false
	} else {
		var err error
		b, err = r.br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, false, nil
			}
			return 0, false, err
		}
	}
	r.offset++
	if b == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return b, true, nil
}

func (r *IoRead) PeekSecond() (byte, bool, error) {
	if r.peeked {
		b, err := r.br.Peek(1)
		if err != nil {
			if err == io.EOF {
				return 0, false, nil
			}
			return 0, false, err
		}
		return b[0], true, nil
	}
	b, err := r.br.Peek(2)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF || len(b) < 2 {
			return 0, false, nil
		}
		return 0, false, err
	}
	return b[1], true, nil
}

func (r *IoRead) Position() Position     { return Position{Line: r.line, Column: r.col - 1} }
func (r *IoRead) PeekPosition() Position { return Position{Line: r.line, Column: r.col} }
func (r *IoRead) ByteOffset() int        { return r.offset }

func (r *IoRead) parseQuoted(quote byte, scratch *[]byte, validate bool) (StrRef, error) {
	*scratch = (*scratch)[:0]

	for {
		b, ok, err := r.Next()
		if err != nil {
			return StrRef{}, ioErr(err, r.line, r.col)
		}
		if !ok {
			return StrRef{}, syntaxErr(codeEofWhileParsingString, r.line, r.col)
		}

		switch {
		case b == quote:
			if validate && !utf8.Valid(*scratch) {
				return StrRef{}, syntaxErr(codeInvalidUnicodeCodePoint, r.line, r.col)
			}
			return StrRef{S: string(*scratch), Borrowed: false}, nil
		case b == '\\':
			if err := r.decodeEscape(scratch); err != nil {
				return StrRef{}, err
			}
		case b < 0x20:
			return StrRef{}, syntaxErr(codeControlCharacterWhileParsingString, r.line, r.col)
		default:
			*scratch = append(*scratch, b)
		}
	}
}

func (r *IoRead) decodeEscape(scratch *[]byte) error {
	b, ok, err := r.Next()
	if err != nil {
		return ioErr(err, r.line, r.col)
	}
	if !ok {
		return syntaxErr(codeEofWhileParsingString, r.line, r.col)
	}

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
		return r.decodeUnicodeEscape(scratch)
	default:
		return syntaxErr(codeInvalidEscape, r.line, r.col)
	}
	return nil
}

func (r *IoRead) decodeUnicodeEscape(scratch *[]byte) error {
	hi, err := r.decodeHex4()
	if err != nil {
		return err
	}

	if hi >= 0xDC00 && hi <= 0xDFFF {
		return syntaxErr(codeInvalidUnicodeCodePoint, r.line, r.col)
	}

	cp := hi
	if hi >= 0xD800 && hi <= 0xDBFF {
		first, ok1, err := r.Peek()
		if err != nil {
			return ioErr(err, r.line, r.col)
		}
		second, ok2, err := r.PeekSecond()
		if err != nil {
			return ioErr(err, r.line, r.col)
		}
		if !ok1 || !ok2 || first != '\\' || second != 'u' {
			return syntaxErr(codeLoneLeadingSurrogateInHexEscape, r.line, r.col)
		}
		if _, _, err := r.Next(); err != nil {
			return ioErr(err, r.line, r.col)
		}
		if _, _, err := r.Next(); err != nil {
			return ioErr(err, r.line, r.col)
		}
		low, err := r.decodeHex4()
		if err != nil {
			return err
		}
		if low < 0xDC00 || low > 0xDFFF {
			return syntaxErr(codeLoneLeadingSurrogateInHexEscape, r.line, r.col)
		}
		cp = ((hi - 0xD800) << 10) + (low - 0xDC00) + 0x10000
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(cp))
	*scratch = append(*scratch, buf[:n]...)
	return nil
}

func (r *IoRead) decodeHex4() (int, error) {
	v := 0
	for i := 0; i < 4; i++ {
		b, ok, err := r.Next()
		if err != nil {
			return 0, ioErr(err, r.line, r.col)
		}
		if !ok {
			return 0, syntaxErr(codeUnexpectedEndOfHexEscape, r.line, r.col)
		}
		d, ok := hexDigit(b)
		if !ok {
			return 0, syntaxErr(codeInvalidEscape, r.line, r.col)
		}
		v = v<<4 | d
	}
	return v, nil
}

func (r *IoRead) parseBare(scratch *[]byte, stopAtColon bool) (StrRef, error) {
	*scratch = (*scratch)[:0]
	for {
		b, ok, err := r.Peek()
		if err != nil {
			return StrRef{}, ioErr(err, r.line, r.col)
		}
		if !ok {
			break
		}
		if stopAtColon {
			if isMemberNameTerminator(b) {
				break
			}
		} else if isBareTerminator(b) {
			break
		}
		if _, _, err := r.Next(); err != nil {
			return StrRef{}, ioErr(err, r.line, r.col)
		}
		*scratch = append(*scratch, b)
	}
	return StrRef{S: string(*scratch), Borrowed: false}, nil
}

func (r *IoRead) ParseDoubleStr(scratch *[]byte) (StrRef, error) {
	return r.parseQuoted('"', scratch, true)
}

func (r *IoRead) ParseSingleStr(scratch *[]byte) (StrRef, error) {
	return r.parseQuoted('\'', scratch, true)
}

func (r *IoRead) ParseDoubleStrRaw(scratch *[]byte) (StrRef, error) {
	return r.parseQuoted('"', scratch, false)
}

func (r *IoRead) ParseSingleStrRaw(scratch *[]byte) (StrRef, error) {
	return r.parseQuoted('\'', scratch, false)
}

func (r *IoRead) ParseNoneStr(scratch *[]byte) (StrRef, error) {
	return r.parseBare(scratch, false)
}

func (r *IoRead) ParseMemberName(scratch *[]byte) (StrRef, error) {
	return r.parseBare(scratch, true)
}

func (r *IoRead) IgnoreDoubleStr() error {
	var scratch []byte
	_, err := r.parseQuoted('"', &scratch, false)
	return err
}

func (r *IoRead) IgnoreSingleStr() error {
	var scratch []byte
	_, err := r.parseQuoted('\'', &scratch, false)
	return err
}

func (r *IoRead) IgnoreNoneStr() error {
	var scratch []byte
	_, err := r.parseBare(&scratch, false)
	return err
}

func (r *IoRead) IgnoreMemberName() error {
	var scratch []byte
	_, err := r.parseBare(&scratch, true)
	return err
}
