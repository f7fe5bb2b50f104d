// Package build owns the node store, the lookup tables and the binary
// encoding pass. All graph mutation goes through the Builder, which is the
// sole owner of the append-only buffer and must not be shared between
// goroutines or reused across export passes without Clear.
package build

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/explosionhm/opticode/tree/intern"
	"github.com/explosionhm/opticode/tree/ir"
)

type (
	Builder struct {
		// Strict turns recoverable graph errors into returned errors.
		// Default is the lenient keep-building mode: such errors are
		// recorded as diagnostics and the operation is skipped.
		Strict bool

		b *flatbuffers.Builder

		nodes map[ir.ID]*entry
		order []ir.ID

		strs  *intern.Table
		types *typeTable

		// finished: the current buffer pass is finalized, further
		// writes must go through Rebuild.
		// stale: the logical graph changed after finalization, the
		// recorded offsets no longer describe it.
		finished bool
		stale    bool

		diags []Diag
	}

	entry struct {
		node *ir.Node
		off  flatbuffers.UOffsetT
	}

	// Diag is a recorded non-fatal build problem.
	Diag struct {
		Err  error
		ID   ir.ID
		From loc.PC
	}
)

var (
	ErrNotFound = errors.New("no such node")
	ErrNoBody   = errors.New("node has no body")
	ErrShape    = errors.New("wrong node shape")
	ErrIndex    = errors.New("field index out of range")
	ErrFinished = errors.New("buffer pass is finished, rebuild needed")
)

func New() *Builder {
	return &Builder{
		b:     flatbuffers.NewBuilder(0),
		nodes: map[ir.ID]*entry{},
		strs:  intern.New(),
		types: newTypeTable(),
	}
}

// NewNode is the bare constructor. The caller attaches a body before Insert.
func (b *Builder) NewNode(op ir.Op, flags ir.Flags) *ir.Node {
	return &ir.Node{Op: op, Flags: flags}
}

// Insert stores the node under a free ID and eagerly encodes its own
// content. If the requested ID is occupied the next free one is taken, the
// occupant is never touched.
func (b *Builder) Insert(n *ir.Node, id ...ir.ID) (ir.ID, error) {
	if n == nil || n.Body == nil {
		return ir.Nil, errors.Wrap(ErrNoBody, "insert")
	}

	probe := ir.ID(len(b.nodes)) + 1
	if len(id) != 0 && id[0] != ir.Nil {
		probe = id[0]
	}

	for {
		if _, ok := b.nodes[probe]; !ok {
			break
		}

		probe++
	}

	e := &entry{node: n}

	err := b.reencode(probe, e)
	if err != nil {
		return ir.Nil, errors.Wrap(err, "encode node %v", probe)
	}

	b.nodes[probe] = e
	b.order = append(b.order, probe)

	tlog.V("store").Printw("insert", "id", probe, "op", n.Op, "shape", n.Body.Shape())

	return probe, nil
}

// UpdateField replaces one field of an indexed node and re-encodes it.
func (b *Builder) UpdateField(id ir.ID, i int, v ir.Value) error {
	e, ok := b.nodes[id]
	if !ok {
		return b.report(errors.Wrap(ErrNotFound, "update field"), id)
	}

	f, ok := e.node.Body.(ir.Fields)
	if !ok {
		return b.report(errors.Wrap(ErrShape, "update field: %v node", e.node.Body.Shape()), id)
	}

	if i < 0 || i >= len(f.List) {
		return b.report(errors.Wrap(ErrIndex, "update field: %d of %d", i, len(f.List)), id)
	}

	f.List[i] = v
	e.node.Body = f

	err := b.reencode(id, e)
	if err != nil {
		return errors.Wrap(err, "encode node %v", id)
	}

	return nil
}

// Connect chains child after parent: child.Parent and parent.Next are set,
// nothing else. The child's own Next and the parent's own Parent are left
// as they are. Both nodes are re-encoded.
func (b *Builder) Connect(parent, child ir.ID) error {
	pe, ok := b.nodes[parent]
	if !ok {
		return b.report(errors.Wrap(ErrNotFound, "connect: parent"), parent)
	}

	ce, ok := b.nodes[child]
	if !ok {
		return b.report(errors.Wrap(ErrNotFound, "connect: child"), child)
	}

	ce.node.Parent = parent
	pe.node.Next = child

	err := b.reencode(parent, pe)
	if err == nil {
		err = b.reencode(child, ce)
	}
	if err != nil {
		return errors.Wrap(err, "encode node")
	}

	return nil
}

// Delete removes the node. With recursive it also removes field values
// holding owned node refs; pointer-flagged refs stay, they belong to
// whoever created them.
func (b *Builder) Delete(id ir.ID, recursive bool) error {
	e, ok := b.nodes[id]
	if !ok {
		return b.report(errors.Wrap(ErrNotFound, "delete"), id)
	}

	delete(b.nodes, id)

	for i, x := range b.order {
		if x == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	if b.finished {
		b.stale = true
	}

	if recursive {
		for _, v := range bodyValues(e.node.Body) {
			if v.Ref == ir.Nil || v.Flags.Is(ir.VRef) {
				continue
			}

			err := b.Delete(v.Ref, true)
			if err != nil {
				return errors.Wrap(err, "owned %v", v.Ref)
			}
		}
	}

	tlog.V("store").Printw("delete", "id", id, "recursive", recursive)

	return nil
}

// Intern stores s in the string table and returns its hash.
func (b *Builder) Intern(s string) (uint32, error) {
	return b.strs.Put(s)
}

// Node exposes a stored node for introspection.
func (b *Builder) Node(id ir.ID) (*ir.Node, bool) {
	e, ok := b.nodes[id]
	if !ok {
		return nil, false
	}

	return e.node, true
}

func (b *Builder) Len() int {
	return len(b.nodes)
}

// Diags returns the problems recorded in lenient mode.
func (b *Builder) Diags() []Diag {
	return b.diags
}

// Clear drops the buffer, the store and both tables.
func (b *Builder) Clear() {
	b.b.Reset()
	b.nodes = map[ir.ID]*entry{}
	b.order = nil
	b.strs.Reset()
	b.types.Reset()
	b.finished = false
	b.stale = false
	b.diags = nil
}

func (b *Builder) report(err error, id ir.ID) error {
	if b.Strict {
		return err
	}

	b.diags = append(b.diags, Diag{Err: err, ID: id, From: loc.Caller(1)})

	tlog.V("diag").Printw("skipped", "err", err, "id", id, "from", loc.Callers(1, 3))

	return nil
}

func bodyValues(body ir.Body) []ir.Value {
	switch body := body.(type) {
	case ir.Fields:
		return body.List
	case ir.Binary:
		return []ir.Value{body.Left, body.Right}
	case ir.Unary:
		return []ir.Value{body.X}
	}

	return nil
}
