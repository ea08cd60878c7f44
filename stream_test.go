package rjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaxedjson/rjson"
)

func TestStreamYieldsConcatenatedValues(t *testing.T) {
	it := rjson.StreamString(`{"k": 3}1"cool"`)

	val, ok, err := it.Next(&rjson.Value{})
	require.NoError(t, err)
	require.True(t, ok)
	obj, err := val.(*rjson.Value).AsObject()
	require.NoError(t, err)
	k, err := obj["k"].AsU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), k)

	val, ok, err = it.Next(&rjson.Value{})
	require.NoError(t, err)
	require.True(t, ok)
	n, err := val.(*rjson.Value).AsU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	val, ok, err = it.Next(&rjson.Value{})
	require.NoError(t, err)
	require.True(t, ok)
	s, err := val.(*rjson.Value).AsString()
	require.NoError(t, err)
	assert.Equal(t, "cool", s)

	_, ok, err = it.Next(&rjson.Value{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStreamAllowsASelfDelineatingValueRightAfterANumber(t *testing.T) {
	it := rjson.StreamString("12[3]")

	val, ok, err := it.Next(&rjson.Value{})
	require.NoError(t, err)
	require.True(t, ok)
	n, err := val.(*rjson.Value).AsU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(12), n)

	val, ok, err = it.Next(&rjson.Value{})
	require.NoError(t, err)
	require.True(t, ok)
	arr, err := val.(*rjson.Value).AsArray()
	require.NoError(t, err)
	require.Len(t, arr, 1)
}

func TestStreamAmbiguousNumberFallsBackToBareString(t *testing.T) {
	it := rjson.StreamString("12)")
	val, ok, err := it.Next(&rjson.Value{})
	require.NoError(t, err)
	require.True(t, ok)
	s, err := val.(*rjson.Value).AsString()
	require.NoError(t, err)
	assert.Equal(t, "12)", s)
}

func TestStreamNewlineSeparatedValues(t *testing.T) {
	it := rjson.StreamString("1\n2\n3\n4")
	var got []uint64
	for {
		val, ok, err := it.Next(&rjson.Value{})
		require.NoError(t, err)
		if !ok {
			break
		}
		n, err := val.(*rjson.Value).AsU64()
		require.NoError(t, err)
		got = append(got, n)
	}
	assert.Equal(t, []uint64{1, 2, 3, 4}, got)
}

func TestStreamOfBytes(t *testing.T) {
	it := rjson.StreamBytes([]byte("true\nfalse"))
	val, ok, err := it.Next(&rjson.Value{})
	require.NoError(t, err)
	require.True(t, ok)
	b, err := val.(*rjson.Value).AsBoolean()
	require.NoError(t, err)
	assert.True(t, b)

	val, ok, err = it.Next(&rjson.Value{})
	require.NoError(t, err)
	require.True(t, ok)
	b, err = val.(*rjson.Value).AsBoolean()
	require.NoError(t, err)
	assert.False(t, b)
}
