package rjson

// skipWS advances past whitespace and comments (`#...`, `//...`, `/*...*/`)
// and returns the next significant byte without consuming it. ok is false
// at EOF.
func skipWS(r Read) (byte, bool, error) {
	return skipWSImpl(r, nil, false)
}

// skipWSNotingNewline is skipWS but additionally sets *hadNewline to true if
// any newline was crossed, including one ending a line comment. Used after a
// value to decide whether a newline may substitute for a `,` or closing
// bracket.
func skipWSNotingNewline(r Read, hadNewline *bool) (byte, bool, error) {
	return skipWSImpl(r, hadNewline, false)
}

// skipWSUntilNewline stops at the first newline encountered, without
// consuming it, or at the next significant byte, whichever comes first.
// Leaving the newline itself unconsumed lets the enclosing container's own
// separator check (expectSeqDelimiter) discover and cross it in turn, so a
// newline can do double duty: it both closes a bare number/identifier and
// stands in for that element's `,`. Used after identifiers and numbers that
// end at an ambiguous boundary.
func skipWSUntilNewline(r Read, hadNewline *bool) (byte, bool, error) {
	return skipWSImpl(r, hadNewline, true)
}

func skipWSImpl(r Read, hadNewline *bool, stopAtNewline bool) (byte, bool, error) {
	for {
		b, ok, err := peekByte(r)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}

		switch b {
		case ' ', '\t', '\r':
			if _, _, err := nextByte(r); err != nil {
				return 0, false, err
			}
			continue
		case '\n':
			if stopAtNewline {
				if hadNewline != nil {
					*hadNewline = true
				}
				return b, true, nil
			}
			if _, _, err := nextByte(r); err != nil {
				return 0, false, err
			}
			if hadNewline != nil {
				*hadNewline = true
			}
			continue
		case '#':
			if err := skipLineComment(r); err != nil {
				return 0, false, err
			}
			continue
		case '/':
			second, ok, err := peekSecond(r)
			if err != nil {
				return 0, false, err
			}
			if !ok || (second != '/' && second != '*') {
				return b, true, nil
			}
			if _, _, err := nextByte(r); err != nil { // consume '/'
				return 0, false, err
			}
			if _, _, err := nextByte(r); err != nil { // consume '/' or '*'
				return 0, false, err
			}
			if second == '/' {
				if err := skipLineComment(r); err != nil {
					return 0, false, err
				}
			} else {
				if err := skipBlockComment(r); err != nil {
					return 0, false, err
				}
			}
			continue
		default:
			return b, true, nil
		}
	}
}

func skipLineComment(r Read) error {
	for {
		b, ok, err := peekByte(r)
		if err != nil {
			return err
		}
		if !ok || b == '\n' {
			return nil
		}
		if _, _, err := nextByte(r); err != nil {
			return err
		}
	}
}

// skipBlockComment is called with the cursor just past "/*". EOF before the
// closing "*/" is treated as an implicitly terminated comment, matching the
// top-level parse's own EOF reporting rather than a dedicated error kind.
func skipBlockComment(r Read) error {
	for {
		b, ok, err := nextByte(r)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if b != '*' {
			continue
		}
		for {
			b2, ok, err := peekByte(r)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if b2 == '/' {
				_, _, err := nextByte(r)
				return err
			}
			if b2 != '*' {
				break
			}
			if _, _, err := nextByte(r); err != nil {
				return err
			}
		}
	}
}
