package rjson

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// StrRef is the result of parsing a string token. Borrowed is true when the
// bytes could be handed back as a reference into the original input (no
// escapes were present); otherwise the bytes live in the parser's scratch
// buffer and are only valid until the next string or number capture begins.
type StrRef struct {
	S        string
	Borrowed bool
}

// Read is the input abstraction the parser drives. Implementations are
// SliceRead (over a []byte), StrRead (over a string) and IoRead (over a
// blocking io.Reader). All three share the contract below: every operation
// either fully advances past the token it was asked to consume, or returns
// an error and leaves the cursor at the failure point.
type Read interface {
	// Peek returns the next unread byte without consuming it. ok is false
	// at EOF.
	Peek() (b byte, ok bool, err error)
	// Next consumes and returns one byte. ok is false at EOF.
	Next() (b byte, ok bool, err error)
	// PeekSecond returns the byte one past Peek's, without consuming
	// either. ok is false if that position is at or past EOF. Only used
	// by the scanner to disambiguate '/' followed by '/' or '*' from a
	// lone '/' without consuming it speculatively.
	PeekSecond() (b byte, ok bool, err error)

	// Position returns the position of the most recently consumed byte;
	// right after a newline, or before any byte is consumed, the column is 0.
	Position() Position
	// PeekPosition returns the position of the next unread byte.
	PeekPosition() Position
	// ByteOffset is the count of bytes consumed so far.
	ByteOffset() int

	// ParseDoubleStr consumes a "-quoted string body (the opening quote
	// must already have been consumed) and decodes escapes, validating
	// that the result is UTF-8.
	ParseDoubleStr(scratch *[]byte) (StrRef, error)
	// ParseSingleStr is the same for '-quoted bodies.
	ParseSingleStr(scratch *[]byte) (StrRef, error)
	// ParseDoubleStrRaw is ParseDoubleStr without the UTF-8 validation. A Go
	// string has no validity requirement of its own, so this only differs
	// from ParseDoubleStr in that malformed UTF-8 byte sequences in the
	// source are passed through instead of rejected.
	ParseDoubleStrRaw(scratch *[]byte) (StrRef, error)
	// ParseSingleStrRaw is ParseSingleStr without the UTF-8 validation.
	ParseSingleStrRaw(scratch *[]byte) (StrRef, error)
	// ParseNoneStr consumes a bare scalar: bytes up to (excluding) the next
	// structural terminator, newline, or EOF. No escape interpretation.
	ParseNoneStr(scratch *[]byte) (StrRef, error)
	// ParseMemberName is ParseNoneStr but also terminates at ':'.
	ParseMemberName(scratch *[]byte) (StrRef, error)

	// Ignore* consume the same tokens without producing a value.
	IgnoreDoubleStr() error
	IgnoreSingleStr() error
	IgnoreNoneStr() error
	IgnoreMemberName() error
}
