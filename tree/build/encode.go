package build

import (
	"context"

	flatbuffers "github.com/google/flatbuffers/go"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/explosionhm/opticode/tree/ir"
	"github.com/explosionhm/opticode/tree/wire"
)

type valRec struct {
	val   uint64
	flags uint32
	typ   uint32
}

// reencode writes the node's own content into the current buffer pass and
// records the fresh offset. After finalization the buffer is immutable, so
// the change stays logical and the pass is marked stale.
func (b *Builder) reencode(id ir.ID, e *entry) error {
	if b.finished {
		b.stale = true
		return nil
	}

	off, err := b.encodeNode(e.node)
	if err != nil {
		return err
	}

	e.off = off

	return nil
}

// encodeNode writes this node's value records and the node table. Refs to
// other nodes are stored as plain IDs, so no other node has to be encoded
// first, only this node's own content.
func (b *Builder) encodeNode(n *ir.Node) (flatbuffers.UOffsetT, error) {
	var name string
	var list []ir.Value

	switch body := n.Body.(type) {
	case ir.Fields:
		name, list = body.Name, body.List
	case ir.Binary:
		list = []ir.Value{body.Left, body.Right}
	case ir.Unary:
		list = []ir.Value{body.X}
	default:
		return 0, errors.Wrap(ErrNoBody, "%T", n.Body)
	}

	var nameHash uint32

	if name != "" {
		h, err := b.strs.Put(name)
		if err != nil {
			return 0, errors.Wrap(err, "node name")
		}

		nameHash = h
	}

	recs := make([]valRec, len(list))

	for i, v := range list {
		r, err := b.valRec(v)
		if err != nil {
			return 0, errors.Wrap(err, "field %d", i)
		}

		recs[i] = r
	}

	wire.NodeStartValsVector(b.b, len(recs))

	for i := len(recs) - 1; i >= 0; i-- {
		wire.CreateValue(b.b, recs[i].val, recs[i].flags, recs[i].typ)
	}

	vals := b.b.EndVector(len(recs))

	wire.NodeStart(b.b)
	wire.NodeAddOp(b.b, uint32(n.Op))
	wire.NodeAddParent(b.b, uint64(n.Parent))
	wire.NodeAddNext(b.b, uint64(n.Next))
	wire.NodeAddFlags(b.b, uint32(n.Flags))
	wire.NodeAddShape(b.b, byte(n.Body.Shape()))
	wire.NodeAddName(b.b, nameHash)
	wire.NodeAddVals(b.b, vals)

	return wire.NodeEnd(b.b), nil
}

// valRec resolves a value to its scalar record: text is interned and the
// hash widened, refs are the raw ID, types go through the type table.
func (b *Builder) valRec(v ir.Value) (r valRec, err error) {
	if v.Flags.Is(ir.VText) {
		h, err := b.strs.Put(v.Str)
		if err != nil {
			return r, errors.Wrap(err, "intern")
		}

		r.val = uint64(h)
	} else {
		r.val = uint64(v.Ref)
	}

	r.flags = uint32(v.Flags)

	if v.Type != nil {
		h, err := b.types.Reg(v.Type)
		if err != nil {
			return r, errors.Wrap(err, "type")
		}

		r.typ = h
	}

	return r, nil
}

// Export finalizes the current buffer pass: node offsets recorded at
// insertion, then sorted string and type tables, then the root container.
// A repeated Export with no intervening mutation returns the same bytes.
// After a mutation the offsets are unusable and Rebuild is the way out.
func (b *Builder) Export(ctx context.Context, name string, flags uint64) (data []byte, err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "tree: export", "name", name, "nodes", len(b.nodes))
	defer tr.Finish("err", &err)

	if b.stale {
		return nil, errors.Wrap(ErrFinished, "export")
	}

	if b.finished {
		return b.b.FinishedBytes(), nil
	}

	return b.assemble(name, flags)
}

// Rebuild starts a fresh buffer pass, re-encodes every live node in store
// order and assembles the container. The string and type tables persist
// so repeated incremental updates keep their interned content.
func (b *Builder) Rebuild(ctx context.Context, name string, flags uint64) (data []byte, err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "tree: rebuild", "name", name, "nodes", len(b.nodes))
	defer tr.Finish("err", &err)

	b.b.Reset()
	b.finished = false
	b.stale = false

	for _, id := range b.order {
		e := b.nodes[id]

		err = b.reencode(id, e)
		if err != nil {
			return nil, errors.Wrap(err, "encode node %v", id)
		}
	}

	return b.assemble(name, flags)
}

func (b *Builder) assemble(name string, flags uint64) (data []byte, err error) {
	// types first: encoding them interns names and keys,
	// which must land in the string table of the same pass
	typeVec, err := b.encodeTypes()
	if err != nil {
		return nil, errors.Wrap(err, "type table")
	}

	strVec := b.encodeStrs()

	nameOff := b.b.CreateString(name)

	offs := make([]flatbuffers.UOffsetT, len(b.order))
	for i, id := range b.order {
		offs[i] = b.nodes[id].off
	}

	wire.ProgramStartNodesVector(b.b, len(offs))

	for i := len(offs) - 1; i >= 0; i-- {
		b.b.PrependUOffsetT(offs[i])
	}

	nodeVec := b.b.EndVector(len(offs))

	wire.ProgramStart(b.b)
	wire.ProgramAddName(b.b, nameOff)
	wire.ProgramAddFlags(b.b, flags)
	wire.ProgramAddNodes(b.b, nodeVec)
	wire.ProgramAddStrs(b.b, strVec)
	wire.ProgramAddTypes(b.b, typeVec)
	root := wire.ProgramEnd(b.b)

	b.b.Finish(root)
	b.finished = true

	return b.b.FinishedBytes(), nil
}

// encodeStrs emits the string table ascending by hash, making identical
// logical content byte-identical across exports.
func (b *Builder) encodeStrs() flatbuffers.UOffsetT {
	entries := b.strs.Sorted()

	offs := make([]flatbuffers.UOffsetT, len(entries))

	for i, e := range entries {
		val := b.b.CreateString(e.Val)

		wire.StrStart(b.b)
		wire.StrAddHash(b.b, e.Hash)
		wire.StrAddVal(b.b, val)
		offs[i] = wire.StrEnd(b.b)
	}

	wire.ProgramStartStrsVector(b.b, len(offs))

	for i := len(offs) - 1; i >= 0; i-- {
		b.b.PrependUOffsetT(offs[i])
	}

	return b.b.EndVector(len(offs))
}

func (b *Builder) encodeTypes() (flatbuffers.UOffsetT, error) {
	entries := b.types.Sorted()

	offs := make([]flatbuffers.UOffsetT, len(entries))

	for i, e := range entries {
		t, err := b.encodeType(e.t)
		if err != nil {
			return 0, errors.Wrap(err, "%v", e.key)
		}

		wire.TypeRecStart(b.b)
		wire.TypeRecAddHash(b.b, e.hash)
		wire.TypeRecAddType(b.b, t)
		offs[i] = wire.TypeRecEnd(b.b)
	}

	wire.ProgramStartTypesVector(b.b, len(offs))

	for i := len(offs) - 1; i >= 0; i-- {
		b.b.PrependUOffsetT(offs[i])
	}

	return b.b.EndVector(len(offs)), nil
}
