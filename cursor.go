package rjson

// peekByte and nextByte wrap Read.Peek/Read.Next so every call site gets a
// properly positioned *Error instead of a raw error from the underlying
// reader.
func peekByte(r Read) (byte, bool, error) {
	b, ok, err := r.Peek()
	if err != nil {
		pos := r.PeekPosition()
		return 0, false, ioErr(err, pos.Line, pos.Column)
	}
	return b, ok, nil
}

func nextByte(r Read) (byte, bool, error) {
	b, ok, err := r.Next()
	if err != nil {
		pos := r.PeekPosition()
		return 0, false, ioErr(err, pos.Line, pos.Column)
	}
	return b, ok, nil
}

func peekSecond(r Read) (byte, bool, error) {
	b, ok, err := r.PeekSecond()
	if err != nil {
		pos := r.PeekPosition()
		return 0, false, ioErr(err, pos.Line, pos.Column)
	}
	return b, ok, nil
}
