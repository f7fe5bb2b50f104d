package build

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/explosionhm/opticode/tree/ir"
)

func lit(s string) *ir.Node {
	return &ir.Node{Op: ir.Lit, Body: ir.Unary{X: ir.Quoted(s)}}
}

func TestInsertDistinctIDs(t *testing.T) {
	b := New()

	seen := map[ir.ID]struct{}{}

	for i := 0; i < 10; i++ {
		id, err := b.Insert(lit("x"))
		require.NoError(t, err)

		_, dup := seen[id]
		assert.False(t, dup, "id %v reused", id)
		seen[id] = struct{}{}
	}

	assert.Equal(t, 10, b.Len())
}

func TestInsertCollision(t *testing.T) {
	b := New()

	first, err := b.Insert(lit("occupant"), 5)
	require.NoError(t, err)
	require.Equal(t, ir.ID(5), first)

	second, err := b.Insert(lit("probe"), 5)
	require.NoError(t, err)
	assert.Greater(t, uint64(second), uint64(first))

	n, ok := b.Node(first)
	require.True(t, ok)
	assert.Equal(t, "occupant", n.Body.(ir.Unary).X.Str)
}

func TestInsertNoBody(t *testing.T) {
	b := New()

	_, err := b.Insert(&ir.Node{Op: ir.Nop})
	assert.True(t, errors.Is(err, ErrNoBody), "%v", err)

	_, err = b.Insert(nil)
	assert.True(t, errors.Is(err, ErrNoBody), "%v", err)
}

func TestConnect(t *testing.T) {
	b := New()

	pkg, err := b.Package("main")
	require.NoError(t, err)

	imp, err := b.Import("fmt")
	require.NoError(t, err)

	err = b.Connect(pkg, imp)
	require.NoError(t, err)

	p, _ := b.Node(pkg)
	c, _ := b.Node(imp)

	assert.Equal(t, imp, p.Next)
	assert.Equal(t, pkg, c.Parent)

	// only the two links are touched
	assert.Equal(t, ir.Nil, p.Parent)
	assert.Equal(t, ir.Nil, c.Next)
}

func TestConnectAbsent(t *testing.T) {
	b := New()

	pkg, err := b.Package("main")
	require.NoError(t, err)

	err = b.Connect(pkg, 1000)
	assert.NoError(t, err) // lenient: recorded, not returned
	assert.Len(t, b.Diags(), 1)
	assert.True(t, errors.Is(b.Diags()[0].Err, ErrNotFound))

	b.Strict = true

	err = b.Connect(1000, pkg)
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)
}

func TestUpdateField(t *testing.T) {
	b := New()

	n := b.NewNode(ir.Var, 0)
	n.Body = ir.Fields{Name: "xs", List: []ir.Value{ir.Text("a"), ir.Text("b"), ir.Text("c")}}

	id, err := b.Insert(n)
	require.NoError(t, err)

	err = b.UpdateField(id, 1, ir.Text("B"))
	require.NoError(t, err)

	got, _ := b.Node(id)
	list := got.Body.(ir.Fields).List

	assert.Equal(t, "a", list[0].Str)
	assert.Equal(t, "B", list[1].Str)
	assert.Equal(t, "c", list[2].Str)
}

func TestUpdateFieldErrors(t *testing.T) {
	b := New()
	b.Strict = true

	err := b.UpdateField(1000, 0, ir.Text("x"))
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)

	id, err := b.Insert(lit("x"))
	require.NoError(t, err)

	err = b.UpdateField(id, 0, ir.Text("y"))
	assert.True(t, errors.Is(err, ErrShape), "%v", err)

	n := b.NewNode(ir.Var, 0)
	n.Body = ir.Fields{List: []ir.Value{ir.Text("a")}}

	id, err = b.Insert(n)
	require.NoError(t, err)

	err = b.UpdateField(id, 3, ir.Text("y"))
	assert.True(t, errors.Is(err, ErrIndex), "%v", err)
}

func TestDeleteRecursive(t *testing.T) {
	b := New()

	shared, err := b.Insert(lit("shared"))
	require.NoError(t, err)

	owned, err := b.Insert(lit("owned"))
	require.NoError(t, err)

	holder := b.NewNode(ir.Block, 0)
	holder.Body = ir.Fields{List: []ir.Value{
		ir.Own(owned),
		ir.RefTo(shared),
		ir.Text("inline"),
	}}

	id, err := b.Insert(holder)
	require.NoError(t, err)

	err = b.Delete(id, true)
	require.NoError(t, err)

	_, ok := b.Node(id)
	assert.False(t, ok)

	_, ok = b.Node(owned)
	assert.False(t, ok, "owned content must cascade")

	_, ok = b.Node(shared)
	assert.True(t, ok, "pointer refs stay intact")
}

func TestDeleteFlat(t *testing.T) {
	b := New()

	owned, err := b.Insert(lit("owned"))
	require.NoError(t, err)

	holder := b.NewNode(ir.Block, 0)
	holder.Body = ir.Fields{List: []ir.Value{ir.Own(owned)}}

	id, err := b.Insert(holder)
	require.NoError(t, err)

	err = b.Delete(id, false)
	require.NoError(t, err)

	_, ok := b.Node(owned)
	assert.True(t, ok)
}

func TestDeleteAbsent(t *testing.T) {
	b := New()

	err := b.Delete(1000, false)
	assert.NoError(t, err)
	assert.Len(t, b.Diags(), 1)
}

func TestClear(t *testing.T) {
	b := New()

	_, err := b.Package("main")
	require.NoError(t, err)

	_, err = b.Intern("dangling")
	require.NoError(t, err)

	b.Clear()

	assert.Equal(t, 0, b.Len())

	id, err := b.Insert(lit("fresh"))
	require.NoError(t, err)
	assert.Equal(t, ir.ID(1), id)
}
