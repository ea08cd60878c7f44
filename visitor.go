package rjson

// Visitor receives the typed events the parser produces while decoding a
// single value. It is the sole extension point for building a data model
// on top of the parser; the parser itself never materializes one.
//
// Each Visit* method returns whatever representation the visitor chooses
// to build (an any, to stay data-model-agnostic) plus an error if the
// event was unacceptable to that visitor — the parser wraps such an error
// with the current position before returning it to its own caller.
type Visitor interface {
	VisitUnit() (any, error)
	VisitBool(b bool) (any, error)
	VisitU64(n uint64) (any, error)
	VisitI64(n int64) (any, error)
	VisitF64(f float64) (any, error)
	// VisitBorrowedStr receives a string that aliases the original input;
	// it must not be retained past the lifetime of that input.
	VisitBorrowedStr(s string) (any, error)
	// VisitStr receives a string owned by the parser's scratch buffer; it
	// must be copied if retained past the current call.
	VisitStr(s string) (any, error)
	VisitSeq(SeqAccess) (any, error)
	VisitMap(MapAccess) (any, error)
	VisitEnum(EnumAccess) (any, error)
}

// SeqAccess is handed to VisitSeq. The visitor drives iteration by calling
// NextElement repeatedly, each time supplying the Visitor that should
// receive the element's events, until ok is false.
type SeqAccess interface {
	NextElement(v Visitor) (val any, ok bool, err error)
}

// MapAccess is handed to VisitMap. Keys and values must be pulled
// alternately: NextKey, then NextValue, until NextKey reports ok == false.
type MapAccess interface {
	NextKey(v Visitor) (key any, ok bool, err error)
	NextValue(v Visitor) (val any, err error)
}

// EnumAccess is handed to VisitEnum for `{ "variant": payload }` and for a
// bare `"variant"` string (a unit variant with no payload at all — in that
// case Variant's VariantAccess.Unit is the only valid call).
type EnumAccess interface {
	Variant(v Visitor) (name any, payload VariantAccess, err error)
}

// VariantAccess reads the payload half of an enum variant.
type VariantAccess interface {
	// Unit confirms the variant carries no payload.
	Unit() error
	// Newtype parses the single payload value.
	Newtype(v Visitor) (any, error)
}
