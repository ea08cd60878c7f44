package rjson

import (
	"fmt"
	"io"
	"math"
)

// maxRecursionDepth bounds how many nested arrays/objects a single parse
// may descend into.
const maxRecursionDepth = 128

// scratchInitialCapacity is the starting size of a Parser's reusable
// string/number scratch buffer.
const scratchInitialCapacity = 128

// Parser drives a Read source through the relaxed-JSON grammar, delivering
// typed events to a caller-supplied Visitor. It holds no data model of its
// own; all state is either positional (owned by the Read) or transient
// (the scratch buffer, the recursion budget).
type Parser struct {
	r       Read
	scratch []byte
	depth   int
}

// NewFromString constructs a Parser reading from an in-memory string.
func NewFromString(s string) *Parser { return newParser(NewStrRead(s)) }

// NewFromBytes constructs a Parser reading from an in-memory byte slice.
func NewFromBytes(b []byte) *Parser { return newParser(NewSliceRead(b)) }

// NewFromReader constructs a Parser reading from a blocking io.Reader.
func NewFromReader(r io.Reader) *Parser { return newParser(NewIoRead(r)) }

func newParser(r Read) *Parser {
	return &Parser{r: r, scratch: make([]byte, 0, scratchInitialCapacity), depth: maxRecursionDepth}
}

// ByteOffset reports how many bytes have been consumed so far.
func (p *Parser) ByteOffset() int { return p.r.ByteOffset() }

// Stream wraps p in a StreamIterator for parsing a sequence of top-level
// values out of the same input.
func (p *Parser) Stream() *StreamIterator { return &StreamIterator{p: p} }

// End requires that nothing but whitespace and comments remain in the
// input; it is the strict-end mode used by the single-value top-level
// entry points (ParseString, ParseBytes, Parse).
func (p *Parser) End() error {
	_, ok, err := skipWS(p.r)
	if err != nil {
		return err
	}
	if ok {
		pos := p.r.PeekPosition()
		return syntaxErr(codeTrailingCharacters, pos.Line, pos.Column)
	}
	return nil
}

// ParseAny skips leading whitespace/comments, dispatches on the next byte
// per the grammar, and delivers the decoded value's events to v.
func (p *Parser) ParseAny(v Visitor) (any, error) {
	b, ok, err := skipWS(p.r)
	if err != nil {
		return nil, err
	}
	if !ok {
		pos := p.r.PeekPosition()
		return nil, syntaxErr(codeEofWhileParsingValue, pos.Line, pos.Column)
	}

	switch {
	case b == 'n':
		return p.parseIdentOrBareFallback(v, "ull", func() (any, error) { return v.VisitUnit() })
	case b == 't':
		return p.parseIdentOrBareFallback(v, "rue", func() (any, error) { return v.VisitBool(true) })
	case b == 'f':
		return p.parseIdentOrBareFallback(v, "alse", func() (any, error) { return v.VisitBool(false) })
	case b == '-' || (b >= '0' && b <= '9'):
		return p.parseNumberOrBareFallback(v)
	case b == '"':
		if _, _, err := nextByte(p.r); err != nil {
			return nil, err
		}
		ref, err := p.r.ParseDoubleStr(&p.scratch)
		if err != nil {
			return nil, err
		}
		return p.visitStrRef(v, ref)
	case b == '\'':
		if _, _, err := nextByte(p.r); err != nil {
			return nil, err
		}
		ref, err := p.r.ParseSingleStr(&p.scratch)
		if err != nil {
			return nil, err
		}
		return p.visitStrRef(v, ref)
	case b == '[':
		return p.parseSeq(v)
	case b == '{':
		return p.parseMap(v)
	default:
		return p.parseBareStringValue(v)
	}
}

func (p *Parser) visitStrRef(v Visitor, ref StrRef) (any, error) {
	var res any
	var err error
	if ref.Borrowed {
		res, err = v.VisitBorrowedStr(ref.S)
	} else {
		res, err = v.VisitStr(ref.S)
	}
	if err != nil {
		return nil, p.wrapConsumerErr(err)
	}
	return res, nil
}

func (p *Parser) parseBareStringValue(v Visitor) (any, error) {
	var scratch []byte
	ref, err := p.r.ParseNoneStr(&scratch)
	if err != nil {
		return nil, err
	}
	if ref.S == "" {
		pos := p.r.PeekPosition()
		return nil, syntaxErr(codeExpectedSomeValue, pos.Line, pos.Column)
	}
	return p.visitStrRef(v, ref)
}

// parseIdentOrBareFallback consumes the already-peeked first letter plus
// tail, capturing every byte. On a tail mismatch, a bad terminator, or any
// non-I/O failure it falls back to a bare string built from the captured
// prefix concatenated with the remaining bare token — the fallback-to-
// bare-string relaxation.
func (p *Parser) parseIdentOrBareFallback(v Visitor, tail string, onSuccess func() (any, error)) (any, error) {
	startPos := p.r.PeekPosition()
	p.scratch = p.scratch[:0]
	cr := &capturingRead{Read: p.r, buf: &p.scratch}

	if _, _, err := nextByte(cr); err != nil {
		return nil, err
	}
	matched := true
	for i := 0; i < len(tail); i++ {
		b, ok, err := peekByte(cr)
		if err != nil {
			return nil, err
		}
		if !ok || b != tail[i] {
			matched = false
			break
		}
		if _, _, err := nextByte(cr); err != nil {
			return nil, err
		}
	}

	if matched {
		if err := checkNumberTerminator(p.r, startPos); err != nil {
			if isIoErr(err) {
				return nil, err
			}
			return p.bareFallbackFromCapture(v)
		}
		return onSuccess()
	}
	return p.bareFallbackFromCapture(v)
}

func (p *Parser) parseNumberOrBareFallback(v Visitor) (any, error) {
	p.scratch = p.scratch[:0]
	cr := &capturingRead{Read: p.r, buf: &p.scratch}
	n, err := parseNumber(cr)
	if err != nil {
		if isIoErr(err) {
			return nil, err
		}
		return p.bareFallbackFromCapture(v)
	}
	return p.emitNumber(v, n)
}

func (p *Parser) emitNumber(v Visitor, n Number) (any, error) {
	var res any
	var err error
	switch {
	case n.IsU64():
		res, err = v.VisitU64(n.AsU64())
	case n.IsI64():
		res, err = v.VisitI64(n.AsI64())
	default:
		res, err = v.VisitF64(n.AsF64())
	}
	if err != nil {
		return nil, p.wrapConsumerErr(err)
	}
	return res, nil
}

func (p *Parser) bareFallbackFromCapture(v Visitor) (any, error) {
	prefix := string(p.scratch)
	var tailScratch []byte
	tail, err := p.r.ParseNoneStr(&tailScratch)
	if err != nil {
		return nil, err
	}
	full := prefix + tail.S
	res, err := v.VisitStr(full)
	if err != nil {
		return nil, p.wrapConsumerErr(err)
	}
	return res, nil
}

func isIoErr(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Code == codeIo
}

func (p *Parser) wrapConsumerErr(err error) error {
	if ce, ok := err.(*Error); ok {
		return ce
	}
	pos := p.r.Position()
	return &Error{Code: codeUnknown, Cause: err, Line: pos.Line, Column: pos.Column}
}

func (p *Parser) parseObjectColon() error {
	b, ok, err := skipWS(p.r)
	if err != nil {
		return err
	}
	if !ok {
		pos := p.r.PeekPosition()
		return syntaxErr(codeEofWhileParsingObject, pos.Line, pos.Column)
	}
	if b != ':' {
		pos := p.r.PeekPosition()
		return syntaxErr(codeExpectedColon, pos.Line, pos.Column)
	}
	_, _, err = nextByte(p.r)
	return err
}

// parseSeq consumes '[' through the matching ']', driving v.VisitSeq with
// a SeqAccess. If the visitor does not itself drain the access to
// completion, the remaining elements are skipped before returning.
func (p *Parser) parseSeq(v Visitor) (any, error) {
	if p.depth <= 0 {
		pos := p.r.PeekPosition()
		return nil, syntaxErr(codeRecursionLimitExceeded, pos.Line, pos.Column)
	}
	p.depth--
	defer func() { p.depth++ }()

	if _, _, err := nextByte(p.r); err != nil {
		return nil, err
	}
	access := &seqAccess{p: p, first: true}
	res, err := v.VisitSeq(access)
	if err != nil {
		return nil, p.wrapConsumerErr(err)
	}
	if !access.done {
		if err := access.finish(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// parseMap consumes '{' through the matching '}', driving v.VisitMap with
// a MapAccess. This is the self-describing ('any') path: objects are
// always delivered as maps here. Schema-driven enum-as-object parsing goes
// through ExpectEnum instead.
func (p *Parser) parseMap(v Visitor) (any, error) {
	if p.depth <= 0 {
		pos := p.r.PeekPosition()
		return nil, syntaxErr(codeRecursionLimitExceeded, pos.Line, pos.Column)
	}
	p.depth--
	defer func() { p.depth++ }()

	if _, _, err := nextByte(p.r); err != nil {
		return nil, err
	}
	access := &mapAccess{p: p, first: true}
	res, err := v.VisitMap(access)
	if err != nil {
		return nil, p.wrapConsumerErr(err)
	}
	if !access.done {
		if err := access.finish(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// ExpectEnum parses either a bare quoted string (a unit variant) or a
// single-member object `{ "variant": payload }`, driving v.VisitEnum. Use
// this instead of ParseAny when the caller already knows, from its own
// schema, that an enum is expected at this position.
func (p *Parser) ExpectEnum(v Visitor) (any, error) {
	b, ok, err := skipWS(p.r)
	if err != nil {
		return nil, err
	}
	if !ok {
		pos := p.r.PeekPosition()
		return nil, syntaxErr(codeEofWhileParsingValue, pos.Line, pos.Column)
	}

	switch b {
	case '"', '\'':
		if _, _, err := nextByte(p.r); err != nil {
			return nil, err
		}
		var ref StrRef
		if b == '"' {
			ref, err = p.r.ParseDoubleStr(&p.scratch)
		} else {
			ref, err = p.r.ParseSingleStr(&p.scratch)
		}
		if err != nil {
			return nil, err
		}
		access := &enumAccess{p: p, name: ref, hasBraces: false}
		res, err := v.VisitEnum(access)
		if err != nil {
			return nil, p.wrapConsumerErr(err)
		}
		return res, nil

	case '{':
		if p.depth <= 0 {
			pos := p.r.PeekPosition()
			return nil, syntaxErr(codeRecursionLimitExceeded, pos.Line, pos.Column)
		}
		p.depth--
		defer func() { p.depth++ }()

		if _, _, err := nextByte(p.r); err != nil {
			return nil, err
		}
		nb, ok, err := skipWS(p.r)
		if err != nil {
			return nil, err
		}
		if !ok {
			pos := p.r.PeekPosition()
			return nil, syntaxErr(codeEofWhileParsingObject, pos.Line, pos.Column)
		}

		var keyRef StrRef
		if nb == '"' || nb == '\'' {
			if _, _, err := nextByte(p.r); err != nil {
				return nil, err
			}
			if nb == '"' {
				keyRef, err = p.r.ParseDoubleStr(&p.scratch)
			} else {
				keyRef, err = p.r.ParseSingleStr(&p.scratch)
			}
		} else {
			keyRef, err = p.r.ParseMemberName(&p.scratch)
		}
		if err != nil {
			return nil, err
		}
		if err := p.parseObjectColon(); err != nil {
			return nil, err
		}

		access := &enumAccess{p: p, name: keyRef, hasBraces: true}
		res, err := v.VisitEnum(access)
		if err != nil {
			return nil, p.wrapConsumerErr(err)
		}
		if !access.payloadConsumed {
			if err := p.ignoreValue(); err != nil {
				return nil, err
			}
		}

		nb2, ok, err := skipWS(p.r)
		if err != nil {
			return nil, err
		}
		if !ok || nb2 != '}' {
			pos := p.r.PeekPosition()
			return nil, syntaxErr(codeEofWhileParsingObject, pos.Line, pos.Column)
		}
		if _, _, err := nextByte(p.r); err != nil {
			return nil, err
		}
		return res, nil

	default:
		pos := p.r.PeekPosition()
		return nil, syntaxErr(codeExpectedSomeValue, pos.Line, pos.Column)
	}
}

// ignoreValue is the non-emitting mirror of ParseAny used to skip a
// subtree; it honors the recursion budget and the same terminator rules
// but never surfaces an event.
func (p *Parser) ignoreValue() error {
	b, ok, err := skipWS(p.r)
	if err != nil {
		return err
	}
	if !ok {
		pos := p.r.PeekPosition()
		return syntaxErr(codeEofWhileParsingValue, pos.Line, pos.Column)
	}

	switch {
	case b == 'n':
		return p.ignoreIdentOrBare("ull")
	case b == 't':
		return p.ignoreIdentOrBare("rue")
	case b == 'f':
		return p.ignoreIdentOrBare("alse")
	case b == '-' || (b >= '0' && b <= '9'):
		return p.ignoreNumberOrBare()
	case b == '"':
		if _, _, err := nextByte(p.r); err != nil {
			return err
		}
		return p.r.IgnoreDoubleStr()
	case b == '\'':
		if _, _, err := nextByte(p.r); err != nil {
			return err
		}
		return p.r.IgnoreSingleStr()
	case b == '[':
		return p.ignoreSeq()
	case b == '{':
		return p.ignoreMap()
	default:
		return p.r.IgnoreNoneStr()
	}
}

func (p *Parser) ignoreIdentOrBare(tail string) error {
	startPos := p.r.PeekPosition()
	if _, _, err := nextByte(p.r); err != nil {
		return err
	}
	matched := true
	for i := 0; i < len(tail); i++ {
		b, ok, err := peekByte(p.r)
		if err != nil {
			return err
		}
		if !ok || b != tail[i] {
			matched = false
			break
		}
		if _, _, err := nextByte(p.r); err != nil {
			return err
		}
	}
	if matched {
		if err := checkNumberTerminator(p.r, startPos); err != nil {
			if isIoErr(err) {
				return err
			}
		} else {
			return nil
		}
	}
	return p.r.IgnoreNoneStr()
}

func (p *Parser) ignoreNumberOrBare() error {
	_, err := parseNumber(p.r)
	if err != nil {
		if isIoErr(err) {
			return err
		}
		return p.r.IgnoreNoneStr()
	}
	return nil
}

func (p *Parser) ignoreSeq() error {
	if p.depth <= 0 {
		pos := p.r.PeekPosition()
		return syntaxErr(codeRecursionLimitExceeded, pos.Line, pos.Column)
	}
	p.depth--
	defer func() { p.depth++ }()

	if _, _, err := nextByte(p.r); err != nil {
		return err
	}
	first := true
	for {
		b, ok, err := skipWS(p.r)
		if err != nil {
			return err
		}
		if !ok {
			pos := p.r.PeekPosition()
			return syntaxErr(codeEofWhileParsingList, pos.Line, pos.Column)
		}
		if b == ']' {
			_, _, err := nextByte(p.r)
			return err
		}
		if first && b == ',' {
			pos := p.r.PeekPosition()
			return syntaxErr(codeExtraComma, pos.Line, pos.Column)
		}
		first = false

		if err := p.ignoreValue(); err != nil {
			return err
		}
		if err := p.expectSeqDelimiter(); err != nil {
			return err
		}
	}
}

func (p *Parser) ignoreMap() error {
	if p.depth <= 0 {
		pos := p.r.PeekPosition()
		return syntaxErr(codeRecursionLimitExceeded, pos.Line, pos.Column)
	}
	p.depth--
	defer func() { p.depth++ }()

	if _, _, err := nextByte(p.r); err != nil {
		return err
	}
	first := true
	for {
		b, ok, err := skipWS(p.r)
		if err != nil {
			return err
		}
		if !ok {
			pos := p.r.PeekPosition()
			return syntaxErr(codeEofWhileParsingObject, pos.Line, pos.Column)
		}
		if b == '}' {
			_, _, err := nextByte(p.r)
			return err
		}
		if first && b == ',' {
			pos := p.r.PeekPosition()
			return syntaxErr(codeExtraComma, pos.Line, pos.Column)
		}
		first = false

		var ierr error
		if b == '"' || b == '\'' {
			if _, _, err := nextByte(p.r); err != nil {
				return err
			}
			if b == '"' {
				ierr = p.r.IgnoreDoubleStr()
			} else {
				ierr = p.r.IgnoreSingleStr()
			}
		} else {
			ierr = p.r.IgnoreMemberName()
		}
		if ierr != nil {
			return ierr
		}
		if err := p.parseObjectColon(); err != nil {
			return err
		}
		if err := p.ignoreValue(); err != nil {
			return err
		}
		if err := p.expectSeqDelimiter(); err != nil {
			return err
		}
	}
}

// expectSeqDelimiter applies the shared comma/newline/close rule used
// after every array element and object entry. It does not consume a
// closing bracket itself, leaving that for the next loop iteration.
func (p *Parser) expectSeqDelimiter() error {
	var hadNewline bool
	nb, ok, err := skipWSNotingNewline(p.r, &hadNewline)
	if err != nil {
		return err
	}
	if !ok {
		pos := p.r.PeekPosition()
		return syntaxErr(codeEofWhileParsingList, pos.Line, pos.Column)
	}
	if nb == ',' {
		_, _, err := nextByte(p.r)
		return err
	}
	if nb == ']' || nb == '}' || hadNewline {
		return nil
	}
	pos := p.r.PeekPosition()
	return syntaxErr(codeExpectedListCommaOrEnd, pos.Line, pos.Column)
}

// seqAccess is the SeqAccess handed to VisitSeq by parseSeq.
type seqAccess struct {
	p     *Parser
	first bool
	done  bool
}

func (a *seqAccess) NextElement(v Visitor) (any, bool, error) {
	if a.done {
		return nil, false, nil
	}
	b, ok, err := skipWS(a.p.r)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		pos := a.p.r.PeekPosition()
		return nil, false, syntaxErr(codeEofWhileParsingList, pos.Line, pos.Column)
	}
	if b == ']' {
		if _, _, err := nextByte(a.p.r); err != nil {
			return nil, false, err
		}
		a.done = true
		return nil, false, nil
	}
	if a.first && b == ',' {
		pos := a.p.r.PeekPosition()
		return nil, false, syntaxErr(codeExtraComma, pos.Line, pos.Column)
	}
	a.first = false

	val, err := a.p.ParseAny(v)
	if err != nil {
		return nil, false, err
	}
	if err := a.p.expectSeqDelimiter(); err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (a *seqAccess) finish() error {
	for !a.done {
		if _, _, err := a.NextElement(discardVisitor{}); err != nil {
			return err
		}
	}
	return nil
}

// mapAccess is the MapAccess handed to VisitMap by parseMap.
type mapAccess struct {
	p     *Parser
	first bool
	done  bool
}

func (a *mapAccess) NextKey(v Visitor) (any, bool, error) {
	if a.done {
		return nil, false, nil
	}
	b, ok, err := skipWS(a.p.r)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		pos := a.p.r.PeekPosition()
		return nil, false, syntaxErr(codeEofWhileParsingObject, pos.Line, pos.Column)
	}
	if b == '}' {
		if _, _, err := nextByte(a.p.r); err != nil {
			return nil, false, err
		}
		a.done = true
		return nil, false, nil
	}
	if a.first && b == ',' {
		pos := a.p.r.PeekPosition()
		return nil, false, syntaxErr(codeExtraComma, pos.Line, pos.Column)
	}
	a.first = false

	var ref StrRef
	if b == '"' || b == '\'' {
		if _, _, err := nextByte(a.p.r); err != nil {
			return nil, false, err
		}
		if b == '"' {
			ref, err = a.p.r.ParseDoubleStr(&a.p.scratch)
		} else {
			ref, err = a.p.r.ParseSingleStr(&a.p.scratch)
		}
	} else {
		ref, err = a.p.r.ParseMemberName(&a.p.scratch)
	}
	if err != nil {
		return nil, false, err
	}
	if err := a.p.parseObjectColon(); err != nil {
		return nil, false, err
	}

	key, err := a.p.visitStrRef(v, ref)
	if err != nil {
		return nil, false, err
	}
	return key, true, nil
}

func (a *mapAccess) NextValue(v Visitor) (any, error) {
	val, err := a.p.ParseAny(v)
	if err != nil {
		return nil, err
	}
	if err := a.p.expectSeqDelimiter(); err != nil {
		return nil, err
	}
	return val, nil
}

func (a *mapAccess) finish() error {
	for !a.done {
		_, ok, err := a.NextKey(discardVisitor{})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := a.NextValue(discardVisitor{}); err != nil {
			return err
		}
	}
	return nil
}

// enumAccess is the EnumAccess (and, doubling up, the VariantAccess)
// handed to VisitEnum by ExpectEnum.
type enumAccess struct {
	p               *Parser
	name            StrRef
	hasBraces       bool
	payloadConsumed bool
}

func (a *enumAccess) Variant(v Visitor) (any, VariantAccess, error) {
	name, err := a.p.visitStrRef(v, a.name)
	if err != nil {
		return nil, nil, err
	}
	return name, a, nil
}

func (a *enumAccess) Unit() error {
	a.payloadConsumed = true
	if !a.hasBraces {
		return nil
	}
	return a.p.ignoreValue()
}

func (a *enumAccess) Newtype(v Visitor) (any, error) {
	a.payloadConsumed = true
	if !a.hasBraces {
		pos := a.p.r.PeekPosition()
		return nil, syntaxErr(codeExpectedSomeValue, pos.Line, pos.Column)
	}
	return a.p.ParseAny(v)
}

// discardVisitor is used internally to drain an access object the
// top-level visitor chose not to fully consume itself.
type discardVisitor struct{}

func (discardVisitor) VisitUnit() (any, error)                { return nil, nil }
func (discardVisitor) VisitBool(b bool) (any, error)           { return b, nil }
func (discardVisitor) VisitU64(n uint64) (any, error)          { return n, nil }
func (discardVisitor) VisitI64(n int64) (any, error)           { return n, nil }
func (discardVisitor) VisitF64(f float64) (any, error)         { return f, nil }
func (discardVisitor) VisitBorrowedStr(s string) (any, error)  { return s, nil }
func (discardVisitor) VisitStr(s string) (any, error)          { return s, nil }

func (discardVisitor) VisitSeq(a SeqAccess) (any, error) {
	for {
		_, ok, err := a.NextElement(discardVisitor{})
		if err != nil || !ok {
			return nil, err
		}
	}
}

func (discardVisitor) VisitMap(a MapAccess) (any, error) {
	for {
		_, ok, err := a.NextKey(discardVisitor{})
		if err != nil || !ok {
			return nil, err
		}
		if _, err := a.NextValue(discardVisitor{}); err != nil {
			return nil, err
		}
	}
}

func (discardVisitor) VisitEnum(a EnumAccess) (any, error) {
	_, va, err := a.Variant(discardVisitor{})
	if err != nil {
		return nil, err
	}
	return nil, va.Unit()
}

// scalarEvent records which Visit* method the built-in typed accessors
// (ExpectBool, ExpectU64, ...) were called back with.
type scalarEvent struct {
	kind string
	b    bool
	u    uint64
	i    int64
	f    float64
	s    string
}

type scalarVisitor struct{ got scalarEvent }

func (v *scalarVisitor) VisitUnit() (any, error) { v.got = scalarEvent{kind: "unit"}; return nil, nil }

func (v *scalarVisitor) VisitBool(b bool) (any, error) {
	v.got = scalarEvent{kind: "bool", b: b}
	return b, nil
}

func (v *scalarVisitor) VisitU64(n uint64) (any, error) {
	v.got = scalarEvent{kind: "u64", u: n}
	return n, nil
}

func (v *scalarVisitor) VisitI64(n int64) (any, error) {
	v.got = scalarEvent{kind: "i64", i: n}
	return n, nil
}

func (v *scalarVisitor) VisitF64(f float64) (any, error) {
	v.got = scalarEvent{kind: "f64", f: f}
	return f, nil
}

func (v *scalarVisitor) VisitBorrowedStr(s string) (any, error) {
	v.got = scalarEvent{kind: "str", s: s}
	return s, nil
}

func (v *scalarVisitor) VisitStr(s string) (any, error) {
	v.got = scalarEvent{kind: "str", s: s}
	return s, nil
}

func (v *scalarVisitor) VisitSeq(a SeqAccess) (any, error) {
	v.got = scalarEvent{kind: "seq"}
	return discardVisitor{}.VisitSeq(a)
}

func (v *scalarVisitor) VisitMap(a MapAccess) (any, error) {
	v.got = scalarEvent{kind: "map"}
	return discardVisitor{}.VisitMap(a)
}

func (v *scalarVisitor) VisitEnum(a EnumAccess) (any, error) {
	v.got = scalarEvent{kind: "enum"}
	return discardVisitor{}.VisitEnum(a)
}

// ExpectBool parses a value that must be a bool, producing InvalidType
// otherwise.
func (p *Parser) ExpectBool() (bool, error) {
	v := &scalarVisitor{}
	if _, err := p.ParseAny(v); err != nil {
		return false, err
	}
	if v.got.kind != "bool" {
		return false, p.invalidType(v.got, "boolean")
	}
	return v.got.b, nil
}

// ExpectU64 parses a value that must be a non-negative integer.
func (p *Parser) ExpectU64() (uint64, error) {
	v := &scalarVisitor{}
	if _, err := p.ParseAny(v); err != nil {
		return 0, err
	}
	if v.got.kind == "u64" {
		return v.got.u, nil
	}
	return 0, p.invalidType(v.got, "u64")
}

// ExpectI64 parses a value that must be an integer representable as
// int64.
func (p *Parser) ExpectI64() (int64, error) {
	v := &scalarVisitor{}
	if _, err := p.ParseAny(v); err != nil {
		return 0, err
	}
	switch v.got.kind {
	case "i64":
		return v.got.i, nil
	case "u64":
		if v.got.u <= math.MaxInt64 {
			return int64(v.got.u), nil
		}
	}
	return 0, p.invalidType(v.got, "i64")
}

// ExpectF64 parses a value that must be numeric, widening integers.
func (p *Parser) ExpectF64() (float64, error) {
	v := &scalarVisitor{}
	if _, err := p.ParseAny(v); err != nil {
		return 0, err
	}
	switch v.got.kind {
	case "f64":
		return v.got.f, nil
	case "u64":
		return float64(v.got.u), nil
	case "i64":
		return float64(v.got.i), nil
	}
	return 0, p.invalidType(v.got, "f64")
}

// ExpectStr parses a value that must be a string.
func (p *Parser) ExpectStr() (string, error) {
	v := &scalarVisitor{}
	if _, err := p.ParseAny(v); err != nil {
		return "", err
	}
	if v.got.kind != "str" {
		return "", p.invalidType(v.got, "string")
	}
	return v.got.s, nil
}

func (p *Parser) invalidType(got scalarEvent, expected string) error {
	pos := p.r.Position()
	return invalidTypeErr(describeScalarEvent(got), expected, pos.Line, pos.Column)
}

func describeScalarEvent(e scalarEvent) string {
	switch e.kind {
	case "unit":
		return "null"
	case "bool":
		return fmt.Sprintf("boolean `%v`", e.b)
	case "u64":
		return fmt.Sprintf("integer `%d`", e.u)
	case "i64":
		return fmt.Sprintf("integer `%d`", e.i)
	case "f64":
		return fmt.Sprintf("floating point `%v`", e.f)
	case "str":
		return fmt.Sprintf("string %q", e.s)
	case "seq":
		return "sequence"
	case "map":
		return "map"
	case "enum":
		return "enum"
	default:
		return "value"
	}
}

// ParseString parses exactly one value out of s, requiring that only
// whitespace/comments follow it.
func ParseString(s string, v Visitor) (any, error) {
	p := NewFromString(s)
	val, err := p.ParseAny(v)
	if err != nil {
		return nil, err
	}
	if err := p.End(); err != nil {
		return nil, err
	}
	return val, nil
}

// ParseBytes is ParseString over a byte slice.
func ParseBytes(b []byte, v Visitor) (any, error) {
	p := NewFromBytes(b)
	val, err := p.ParseAny(v)
	if err != nil {
		return nil, err
	}
	if err := p.End(); err != nil {
		return nil, err
	}
	return val, nil
}

// Parse is ParseString over a blocking io.Reader.
func Parse(r io.Reader, v Visitor) (any, error) {
	p := NewFromReader(r)
	val, err := p.ParseAny(v)
	if err != nil {
		return nil, err
	}
	if err := p.End(); err != nil {
		return nil, err
	}
	return val, nil
}
