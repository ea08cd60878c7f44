package rjson_test

import (
	"fmt"
	"testing"

	"github.com/relaxedjson/rjson"
)

func TestUsage(t *testing.T) {
	// use one of the ParseXXX functions to get a value from text. You can
	// pass in strings, []byte, or an io.Reader.
	val, err := rjson.ParseValue(`
	{
		null: null,
		u64: 5,
		negative: -5,
		float: 5.0,
		boolean: true,
		array: [null, 5, 5.0, true],
		object: {}
	}
	`)
	if err != nil {
		t.Fatalf("can't parse, somehow: %v", err)
	}

	// to inspect the type, use the Type method.
	if val.Type() != rjson.Object {
		t.Error("value is wrong type!")
	}

	// Objects can be extracted as maps of values.
	m, _ := val.AsObject()
	if m["null"].Type() != rjson.Null {
		t.Error("null member is wrong type!")
	}

	// We differentiate unsigned integers, signed integers, and floats, but
	// AsFloat widens any of them.
	u, _ := m["u64"].AsFloat()
	f, _ := m["float"].AsFloat()
	if u != f {
		t.Error("5 should widen the same as 5.0")
	}

	// Arrays are represented as slices of values.
	a, _ := m["array"].AsArray()

	// Booleans are bools.
	b, _ := a[3].AsBoolean()
	if !b {
		t.Error("true... isn't?")
	}

	// Trailing commas are accepted in lists and objects, member names need
	// not be quoted, and '#'/'//' comments are allowed anywhere whitespace
	// is.
	goodInput, err := rjson.ParseValue(`{
		# a shopping list
		list: [
			1,
			2,
			3,
		],
	}`)
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}
	fmt.Printf("%v", goodInput) // {"list": [1, 2, 3]}

	// Key and Index allow for a fluent interface to drill down to values.
	beatles, err := rjson.ParseValue(`{
		name: 'The Beatles',
		type: band,
		members: [
			{ name: John, role: guitar }
			{ name: Paul, role: bass }
			{ name: George, role: guitar }
			{ name: Ringo, role: drums }
		]
	}`)
	if err != nil {
		t.Fatalf("expected no error got %v", err)
	}

	name, _ := beatles.Key("members").Index(2).Key("name").AsString()
	fmt.Println(name) // George

	// Drilling down over invalid values or missing keys just propagates a
	// null value rather than panicking.
	null := beatles.Key("something").Index(-1).Key("")
	fmt.Println(null) // null
}
