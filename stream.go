package rjson

// StreamIterator parses a sequence of top-level values out of one input,
// one at a time, in the style of a streaming decoder reading a log of
// concatenated values. Unlike a single array, entries need not share a
// common delimiter: whitespace, a newline, or nothing at all (for a
// self-delineating value immediately followed by another) all separate
// entries.
type StreamIterator struct {
	p          *Parser
	lastOffset int
}

// LastOffset returns the byte offset at which the most recent Next call
// began looking for a value (after skipping any leading whitespace and
// comments). Useful for reporting which slice of the input a decoded
// value came from.
func (it *StreamIterator) LastOffset() int { return it.lastOffset }

// StreamString constructs a StreamIterator over an in-memory string.
func StreamString(s string) *StreamIterator { return NewFromString(s).Stream() }

// StreamBytes constructs a StreamIterator over an in-memory byte slice.
func StreamBytes(b []byte) *StreamIterator { return NewFromBytes(b).Stream() }

// Next attempts to parse one more value, delivering its events to v. ok is
// false once only whitespace/comments (or nothing) remain; any other
// failure is returned as err.
func (it *StreamIterator) Next(v Visitor) (any, bool, error) {
	b, ok, err := skipWS(it.p.r)
	if err != nil {
		return nil, false, err
	}
	it.lastOffset = it.p.ByteOffset()
	if !ok {
		return nil, false, nil
	}
	selfDelineating := b == '[' || b == '{' || b == '"' || b == '\''

	val, err := it.p.ParseAny(v)
	if err != nil {
		return nil, false, err
	}

	if !selfDelineating {
		if err := it.peekEndOfValue(); err != nil {
			return nil, false, err
		}
	}
	return val, true, nil
}

// peekEndOfValue enforces that an ambiguous (non-self-delineating) value —
// a number, bare identifier, or bare scalar — is immediately followed by
// one of whitespace, a quote, a structural character, a comma/colon, or
// EOF; any other byte is reported as TrailingCharacters at its position.
func (it *StreamIterator) peekEndOfValue() error {
	b, ok, err := peekByte(it.p.r)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	switch b {
	case ' ', '\t', '\r', '\n', '"', '\'', '[', ']', '{', '}', ',', ':':
		return nil
	default:
		pos := it.p.r.PeekPosition()
		return syntaxErr(codeTrailingCharacters, pos.Line, pos.Column)
	}
}
