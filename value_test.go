package rjson

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func equals(a, b *Value) bool {
	return cmp.Equal(a, b, cmp.AllowUnexported(Value{}, pair{}))
}

func TestTypeStrings(t *testing.T) {
	for _, test := range []struct {
		input    Type
		expected string
	}{
		{Null, typeStrings[Null]},
		{Array, typeStrings[Array]},
		{Object, typeStrings[Object]},
		{Boolean, typeStrings[Boolean]},
		{I64, typeStrings[I64]},
		{U64, typeStrings[U64]},
		{Float, typeStrings[Float]},
		{String, typeStrings[String]},
		{numTypes, "<unknown>"},
		{1000, "<unknown>"},
		{-1, "<unknown>"},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			actual := test.input.String()
			if test.expected != actual {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestValueType(t *testing.T) {
	for _, test := range []struct {
		input    Value
		expected Type
	}{
		{Value{typ: Null}, Null},
		{Value{typ: Array}, Array},
		{Value{typ: Object}, Object},
		{Value{typ: Boolean}, Boolean},
		{Value{typ: I64}, I64},
		{Value{typ: U64}, U64},
		{Value{typ: Float}, Float},
		{Value{typ: String}, String},
		{Value{typ: numTypes}, typeUnknown},
		{Value{typ: 1000}, typeUnknown},
		{Value{typ: -1}, typeUnknown},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			actual := test.input.Type()
			if test.expected != actual {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestAsNull(t *testing.T) {
	val := Value{}
	if _, err := val.AsNull(); err != nil {
		t.Errorf("expected no error got %v", err)
	}
	val = Value{typ: Boolean, booleanValue: true}
	if _, err := val.AsNull(); err == nil {
		t.Errorf("expected error got none")
	}
}

func TestAsFloat(t *testing.T) {
	val := Value{typ: Float, floatValue: 5}
	num, err := val.AsFloat()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if num != 5 {
		t.Errorf("expected %v got %v", 5, num)
	}

	val = Value{typ: I64, i64Value: 5}
	num, err = val.AsFloat()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if num != 5 {
		t.Errorf("expected %v got %v", 5, num)
	}

	val = Value{typ: U64, u64Value: 5}
	num, err = val.AsFloat()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if num != 5 {
		t.Errorf("expected %v got %v", 5, num)
	}

	val = Value{typ: Boolean, booleanValue: true}
	_, err = val.AsFloat()
	if err == nil {
		t.Errorf("expected error got none")
	}
}

func TestAsI64(t *testing.T) {
	val := Value{typ: I64, i64Value: -5}
	num, err := val.AsI64()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if num != -5 {
		t.Errorf("expected %v got %v", -5, num)
	}

	val = Value{typ: U64, u64Value: 5}
	num, err = val.AsI64()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if num != 5 {
		t.Errorf("expected %v got %v", 5, num)
	}

	val = Value{typ: Boolean, booleanValue: true}
	_, err = val.AsI64()
	if err == nil {
		t.Errorf("expected error got none")
	}
}

func TestAsU64(t *testing.T) {
	val := Value{typ: U64, u64Value: 5}
	num, err := val.AsU64()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if num != 5 {
		t.Errorf("expected %v got %v", 5, num)
	}

	val = Value{typ: I64, i64Value: -5}
	_, err = val.AsU64()
	if err == nil {
		t.Errorf("expected error got none")
	}
}

func TestAsString(t *testing.T) {
	val := Value{typ: String, stringValue: "5"}
	s, err := val.AsString()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if s != "5" {
		t.Errorf("expected %v got %v", "5", s)
	}

	val = Value{typ: Boolean, booleanValue: true}
	_, err = val.AsString()
	if err == nil {
		t.Errorf("expected error got none")
	}
}

func TestAsBoolean(t *testing.T) {
	val := Value{typ: Boolean, booleanValue: true}
	b, err := val.AsBoolean()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if b != true {
		t.Errorf("expected %v got %v", true, b)
	}

	val = Value{}
	_, err = val.AsBoolean()
	if err == nil {
		t.Errorf("expected error got none")
	}
}

func TestAsArray(t *testing.T) {
	val := Value{typ: Array, arrayValue: []*Value{{}}}
	a, err := val.AsArray()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if !equals(a[0], &Value{}) {
		t.Errorf("expected %v got %v", &Value{}, a[0])
	}

	val = Value{}
	_, err = val.AsArray()
	if err == nil {
		t.Errorf("expected error got none")
	}
}

func TestAsObject(t *testing.T) {
	val := Value{typ: Object, objectValue: []pair{{"a", &Value{}}}}
	o, err := val.AsObject()
	if err != nil {
		t.Errorf("expected no error got %v", err)
	}
	if !equals(o["a"], &Value{}) {
		t.Errorf("expected %v got %v", &Value{}, o["a"])
	}

	val = Value{}
	_, err = val.AsObject()
	if err == nil {
		t.Errorf("expected error got none")
	}
}

func TestValueString(t *testing.T) {
	for _, test := range []struct {
		input    Value
		expected string
	}{
		{Value{}, "null"},
		{Value{typ: I64, i64Value: -5}, `-5`},
		{Value{typ: Float, floatValue: -5}, `-5`},
		{Value{typ: Float, floatValue: -5.1}, `-5.1`},
		{Value{typ: Float, floatValue: -5.12}, `-5.12`},
		{Value{typ: String, stringValue: "-5.12"}, `"-5.12"`},
		{Value{typ: Boolean, booleanValue: true}, `true`},
		{Value{typ: Boolean, booleanValue: false}, `false`},
		{Value{typ: Array, arrayValue: []*Value{
			{},
			{typ: I64, i64Value: -5},
			{typ: String, stringValue: "-5.12"},
			{typ: Boolean, booleanValue: true},
		}}, `[null, -5, "-5.12", true]`},
		{Value{typ: Object, objectValue: []pair{
			{"a", &Value{}},
			{"b", &Value{typ: I64, i64Value: -5}},
			{"c", &Value{typ: String, stringValue: "-5.12"}},
			{"d", &Value{typ: Boolean, booleanValue: true}},
		}}, `{"a": null, "b": -5, "c": "-5.12", "d": true}`},
		{Value{typ: numTypes, i64Value: -5}, `<unknown>`},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			actual := test.input.String()
			if test.expected != actual {
				t.Errorf("expected %v got %v", test.expected, actual)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	val, err := ParseValue(`[[[true, false]]]`)
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	for _, test := range []struct {
		actual   *Value
		expected *Value
	}{
		{
			val.Index(0).Index(0).Index(0),
			&Value{typ: Boolean, booleanValue: true},
		},
		{
			val.Index(0).Index(0).Index(1),
			&Value{typ: Boolean, booleanValue: false},
		},
		{
			val.Index(0).Index(0).Index(2),
			&Value{},
		},
		{
			val.Index(0).Index(1).Index(2),
			&Value{},
		},
		{
			val.Index(-1).Index(1).Index(2),
			&Value{},
		},
	} {
		t.Run(fmt.Sprintf("%v", test.actual), func(t *testing.T) {
			if !equals(test.actual, test.expected) {
				t.Errorf("expected %v\ngot %v", test.expected, test.actual)
			}
		})
	}
}

func TestKey(t *testing.T) {
	val, err := ParseValue(`{"a": {"b": {"c": true, "d":false}}}`)
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	for _, test := range []struct {
		actual   *Value
		expected *Value
	}{
		{
			val.Key("a").Key("b").Key("c"),
			&Value{typ: Boolean, booleanValue: true},
		},
		{
			val.Key("a").Key("b").Key("d"),
			&Value{typ: Boolean, booleanValue: false},
		},
		{
			val.Key("a").Key("b").Key("e"),
			&Value{},
		},
		{
			val.Key("a").Key("e").Key("d"),
			&Value{},
		},
		{
			val.Key("e").Key("b").Key("d"),
			&Value{},
		},
	} {
		t.Run(fmt.Sprintf("%v", test.actual), func(t *testing.T) {
			if !equals(test.actual, test.expected) {
				t.Errorf("expected %v\ngot %v", test.expected, test.actual)
			}
		})
	}
}
