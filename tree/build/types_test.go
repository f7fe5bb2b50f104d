package build

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explosionhm/opticode/tree/intern"
	"github.com/explosionhm/opticode/tree/ir"
	"github.com/explosionhm/opticode/tree/tp"
	"github.com/explosionhm/opticode/tree/wire"
)

func TestTypeTableDedup(t *testing.T) {
	tt := newTypeTable()

	x := tp.Func{In: []tp.Field{{Name: "a", Type: tp.Prim{K: tp.Int64}}}}

	h0, err := tt.Reg(x)
	require.NoError(t, err)

	h1, err := tt.Reg(x)
	require.NoError(t, err)

	assert.Equal(t, h0, h1)

	// the func itself and its nested param type
	assert.Len(t, tt.Sorted(), 2)
}

func TestCompositeTypes(t *testing.T) {
	ctx := context.Background()

	b := New()

	matrix := tp.Array{ID: "matrix", Elem: tp.Prim{K: tp.Float64}, Dims: []uint64{3, 3}}
	index := tp.Map{Key: tp.Prim{K: tp.String}, Val: tp.Ptr{Elem: tp.Prim{K: tp.Byte}}}

	_, err := b.Var("m", matrix, ir.Text("0"))
	require.NoError(t, err)

	_, err = b.Var("idx", index, ir.Text("nil"))
	require.NoError(t, err)

	data, err := b.Export(ctx, "demo", 0)
	require.NoError(t, err)

	p := wire.GetRootAsProgram(data, 0)

	types := map[uint32]*wire.Type{}

	var rec wire.TypeRec

	for j := 0; j < p.TypesLength(); j++ {
		require.True(t, p.Types(&rec, j))

		typ := &wire.Type{}
		require.True(t, rec.Type(typ))

		types[rec.Hash()] = typ
	}

	// array, map and every nested type have their own entries:
	// matrix, float64, map, string, *byte, byte
	require.Len(t, types, 6)

	m := types[typeHash(matrix)]
	require.NotNil(t, m)
	assert.Equal(t, byte(tp.KindArray), m.Kind())
	assert.Equal(t, uint64(3)<<tp.DimWidth|3, m.Dims())
	assert.Equal(t, typeHash(tp.Prim{K: tp.Float64}), m.Elem())
	assert.Equal(t, intern.Hash("matrix"), m.Name())

	x := types[typeHash(index)]
	require.NotNil(t, x)
	assert.Equal(t, byte(tp.KindMap), x.Kind())
	assert.Equal(t, typeHash(tp.Prim{K: tp.String}), x.KeyType())
	assert.Equal(t, typeHash(tp.Ptr{Elem: tp.Prim{K: tp.Byte}}), x.Elem())
}
