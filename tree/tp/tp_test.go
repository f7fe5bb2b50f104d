package tp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	for _, tc := range []struct {
		Type Type
		Key  string
	}{
		{Prim{K: Int32}, "int32"},
		{Prim{ID: "Greeting", K: Int32}, "Greeting int32"},
		{Ptr{Elem: Prim{K: String}}, "*string"},
		{Array{Elem: Prim{K: Byte}}, "[]byte"},
		{Array{Elem: Prim{K: Bool}, Dims: []uint64{3, 4}}, "[3][4]bool"},
		{Map{Key: Prim{K: String}, Val: Prim{K: Int64}}, "map[string]int64"},
		{Chan{Elem: Prim{K: Rune}, Dir: RecvOnly}, "<-chan rune"},
		{
			Struct{ID: "point", Fields: []Field{
				{Name: "x", Type: Prim{K: Float64}},
				{Name: "y", Type: Prim{K: Float64}, Tag: `json:"y"`},
			}},
			"point struct{x float64; y float64 `json:\"y\"`}",
		},
		{
			Iface{Methods: []Field{
				{Name: "Close", Type: Func{Out: []Field{{Type: Prim{K: Bool}}}}},
			}},
			"interface{Close func()(bool)}",
		},
		{
			Func{
				ID:   "add",
				In:   []Field{{Name: "a", Type: Prim{K: Int64}}, {Name: "b", Type: Prim{K: Int64}}},
				Out:  []Field{{Type: Prim{K: Int64}}},
				Recv: &Field{Name: "c", Type: Struct{ID: "calc"}},
			},
			"add func(c calc struct{}).(a int64; b int64)(int64)",
		},
	} {
		assert.Equal(t, tc.Key, Key(tc.Type), "%+v", tc.Type)
	}
}

func TestKeyDeterministic(t *testing.T) {
	x := Map{Key: Prim{K: String}, Val: Array{Elem: Prim{K: Uint8}}}

	assert.Equal(t, Key(x), Key(x))
}

func TestDimWord(t *testing.T) {
	w, err := Array{Elem: Prim{K: Bool}}.DimWord()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), w)

	w, err = Array{Elem: Prim{K: Bool}, Dims: []uint64{2, 3}}.DimWord()
	require.NoError(t, err)
	assert.Equal(t, uint64(2)<<DimWidth|3, w)

	_, err = Array{Elem: Prim{K: Bool}, Dims: []uint64{1, 2, 3, 4, 5}}.DimWord()
	require.Error(t, err)
}
