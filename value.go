package rjson

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrType is returned by a Value accessor when the value is not of the
// requested type.
var ErrType = errors.New("type error")

// Type is the type of a decoded Value.
type Type int

// Possible Value types.
const (
	Null Type = iota
	U64
	I64
	Float
	String
	Boolean
	Array
	Object
	numTypes
	typeUnknown Type = -1
)

var typeStrings = [numTypes]string{
	"<null>",
	"<u64>",
	"<i64>",
	"<float>",
	"<string>",
	"<boolean>",
	"<array>",
	"<object>",
}

// String returns a string representation of a Type.
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "<unknown>"
	}
	return typeStrings[t]
}

// Value is a structured tree built from a full parse, the reference
// consumer for callers that want a DOM rather than streaming events. It
// implements Visitor itself, so ParseString(s, &Value{}) (or the DOM
// helpers below) produce one directly.
type Value struct {
	typ          Type
	u64Value     uint64
	i64Value     int64
	floatValue   float64
	stringValue  string
	booleanValue bool
	arrayValue   []*Value
	objectValue  []pair
}

type pair struct {
	key string
	val *Value
}

// ParseValue parses exactly one value out of s into a DOM tree.
func ParseValue(s string) (*Value, error) {
	v := &Value{}
	if _, err := ParseString(s, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Type returns the type of the value.
func (v *Value) Type() Type {
	if v.typ >= 0 && v.typ < numTypes {
		return v.typ
	}
	return typeUnknown
}

// AsNull extracts a null value. Returns ErrType if the value is not null.
func (v *Value) AsNull() (struct{}, error) {
	if v.typ == Null {
		return struct{}{}, nil
	}
	return struct{}{}, fmt.Errorf("%w: value not null %v", ErrType, v)
}

// AsFloat extracts a number as a float64, widening integers. Returns
// ErrType if the value isn't numeric.
func (v *Value) AsFloat() (float64, error) {
	switch v.typ {
	case U64:
		return float64(v.u64Value), nil
	case I64:
		return float64(v.i64Value), nil
	case Float:
		return v.floatValue, nil
	}
	return 0, fmt.Errorf("%w: value not a valid number %v", ErrType, v)
}

// AsI64 extracts an integer value representable as int64. Returns ErrType
// if the value isn't an integer, or a U64 too large to fit.
func (v *Value) AsI64() (int64, error) {
	switch v.typ {
	case I64:
		return v.i64Value, nil
	case U64:
		if v.u64Value <= 1<<63-1 {
			return int64(v.u64Value), nil
		}
	}
	return 0, fmt.Errorf("%w: value not a valid integer %v", ErrType, v)
}

// AsU64 extracts a non-negative integer value. Returns ErrType otherwise.
func (v *Value) AsU64() (uint64, error) {
	if v.typ == U64 {
		return v.u64Value, nil
	}
	return 0, fmt.Errorf("%w: value not a valid unsigned integer %v", ErrType, v)
}

// AsString extracts a string value. Returns ErrType if the value is not a
// string.
func (v *Value) AsString() (string, error) {
	if v.typ == String {
		return v.stringValue, nil
	}
	return "", fmt.Errorf("%w: value not a valid string %v", ErrType, v)
}

// AsBoolean extracts a boolean value. Returns ErrType if the value is not
// boolean.
func (v *Value) AsBoolean() (bool, error) {
	if v.typ == Boolean {
		return v.booleanValue, nil
	}
	return false, fmt.Errorf("%w: value not a valid boolean %v", ErrType, v)
}

// AsArray extracts an array value. Returns ErrType if the value is not an
// array.
func (v *Value) AsArray() ([]*Value, error) {
	if v.typ == Array {
		return v.arrayValue, nil
	}
	return nil, fmt.Errorf("%w: value not a valid array %v", ErrType, v)
}

// AsObject extracts an object value as a map. Returns ErrType if the value
// is not an object. Member order is not preserved, and of duplicate keys
// the last one wins; Key below returns the first member with a given name.
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.typ == Object {
		m := map[string]*Value{}
		for _, p := range v.objectValue {
			m[p.key] = p.val
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: value not a valid object %v", ErrType, v)
}

// String returns a debug representation of the value. It is not valid
// relaxed-JSON or JSON output.
func (v *Value) String() string {
	switch v.typ {
	case Null:
		return "null"
	case U64:
		return strconv.FormatUint(v.u64Value, 10)
	case I64:
		return strconv.FormatInt(v.i64Value, 10)
	case Float:
		return strconv.FormatFloat(v.floatValue, 'f', -1, 64)
	case String:
		return strconv.Quote(v.stringValue)
	case Boolean:
		if v.booleanValue {
			return "true"
		}
		return "false"
	case Array:
		str := "["
		for i, val := range v.arrayValue {
			if i > 0 {
				str += ", "
			}
			str += val.String()
		}
		str += "]"
		return str
	case Object:
		str := "{"
		for i, p := range v.objectValue {
			if i > 0 {
				str += ", "
			}
			str += strconv.Quote(p.key)
			str += ": "
			str += p.val.String()
		}
		str += "}"
		return str
	}
	return "<unknown>"
}

// Index is a fluent accessor for array members; out-of-range or
// non-array values yield a null Value rather than an error.
func (v *Value) Index(i int) *Value {
	if v.typ != Array || i < 0 || i >= len(v.arrayValue) {
		return &Value{}
	}
	return v.arrayValue[i]
}

// Key is a fluent accessor for object members; a missing key or
// non-object value yields a null Value rather than an error.
func (v *Value) Key(k string) *Value {
	if v.typ != Object {
		return &Value{}
	}
	for _, p := range v.objectValue {
		if p.key == k {
			return p.val
		}
	}
	return &Value{}
}

// Value implements Visitor directly: parsing into a zero Value builds the
// tree in place, and nested containers are built recursively via fresh
// *Value instances.

func (v *Value) VisitUnit() (any, error) {
	*v = Value{typ: Null}
	return v, nil
}

func (v *Value) VisitBool(b bool) (any, error) {
	*v = Value{typ: Boolean, booleanValue: b}
	return v, nil
}

func (v *Value) VisitU64(n uint64) (any, error) {
	*v = Value{typ: U64, u64Value: n}
	return v, nil
}

func (v *Value) VisitI64(n int64) (any, error) {
	*v = Value{typ: I64, i64Value: n}
	return v, nil
}

func (v *Value) VisitF64(f float64) (any, error) {
	*v = Value{typ: Float, floatValue: f}
	return v, nil
}

func (v *Value) VisitBorrowedStr(s string) (any, error) { return v.VisitStr(s) }

func (v *Value) VisitStr(s string) (any, error) {
	*v = Value{typ: String, stringValue: s}
	return v, nil
}

func (v *Value) VisitSeq(a SeqAccess) (any, error) {
	items := []*Value{}
	for {
		elem := &Value{}
		_, ok, err := a.NextElement(elem)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		items = append(items, elem)
	}
	*v = Value{typ: Array, arrayValue: items}
	return v, nil
}

func (v *Value) VisitMap(a MapAccess) (any, error) {
	pairs := []pair{}
	for {
		keyVisitor := &Value{}
		_, ok, err := a.NextKey(keyVisitor)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		key, err := keyVisitor.AsString()
		if err != nil {
			return nil, err
		}
		valVisitor := &Value{}
		if _, err := a.NextValue(valVisitor); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{key: key, val: valVisitor})
	}
	*v = Value{typ: Object, objectValue: pairs}
	return v, nil
}

// VisitEnum renders a variant as a single-key object: `{name: payload}`,
// or `{name: null}` for a unit variant with no payload.
func (v *Value) VisitEnum(a EnumAccess) (any, error) {
	nameVisitor := &Value{}
	_, va, err := a.Variant(nameVisitor)
	if err != nil {
		return nil, err
	}
	name, err := nameVisitor.AsString()
	if err != nil {
		return nil, err
	}

	payload := &Value{}
	ea, hasPayload := a.(*enumAccess)
	if hasPayload && ea.hasBraces {
		if _, err := va.Newtype(payload); err != nil {
			return nil, err
		}
	} else if err := va.Unit(); err != nil {
		return nil, err
	}

	*v = Value{typ: Object, objectValue: []pair{{key: name, val: payload}}}
	return v, nil
}
