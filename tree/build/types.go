package build

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"nikand.dev/go/heap"
	"tlog.app/go/errors"

	"github.com/explosionhm/opticode/tree/intern"
	"github.com/explosionhm/opticode/tree/tp"
	"github.com/explosionhm/opticode/tree/wire"
)

type (
	// typeTable content-addresses types by the hash of their canonical
	// key, so a type used many times is encoded once.
	typeTable struct {
		m map[uint32]tentry
	}

	tentry struct {
		hash uint32
		key  string
		t    tp.Type
	}

	fieldRec struct {
		name uint32
		typ  uint32
		tag  uint32
	}
)

func newTypeTable() *typeTable {
	return &typeTable{
		m: map[uint32]tentry{},
	}
}

// Reg registers the type and everything it is built from, returning the
// key hash the scalar records carry. Nested types are referenced by hash,
// so each one needs its own table entry.
func (tt *typeTable) Reg(t tp.Type) (uint32, error) {
	key := tp.Key(t)
	h := intern.Hash(key)

	if e, ok := tt.m[h]; ok {
		if e.key != key {
			return h, errors.Wrap(intern.ErrCollision, "%q and %q under 0x%08x", e.key, key, h)
		}

		return h, nil
	}

	tt.m[h] = tentry{hash: h, key: key, t: t}

	var err error

	reg := func(x tp.Type) {
		if err != nil || x == nil {
			return
		}

		_, err = tt.Reg(x)
	}

	regff := func(ff []tp.Field) {
		for _, f := range ff {
			reg(f.Type)
		}
	}

	switch t := t.(type) {
	case tp.Prim:
	case tp.Ptr:
		reg(t.Elem)
	case tp.Array:
		reg(t.Elem)
	case tp.Map:
		reg(t.Key)
		reg(t.Val)
	case tp.Chan:
		reg(t.Elem)
	case tp.Struct:
		regff(t.Fields)
	case tp.Iface:
		regff(t.Methods)
	case tp.Func:
		regff(t.In)
		regff(t.Out)

		if t.Recv != nil {
			reg(t.Recv.Type)
		}
	default:
		err = errors.New("unsupported type: %T", t)
	}

	if err != nil {
		return 0, err
	}

	return h, nil
}

func (tt *typeTable) Sorted() []tentry {
	h := heap.Heap[tentry]{Less: tentryLess}

	for _, e := range tt.m {
		h.Push(e)
	}

	res := make([]tentry, 0, len(tt.m))

	for h.Len() != 0 {
		res = append(res, h.Pop())
	}

	return res
}

func (tt *typeTable) Reset() {
	clear(tt.m)
}

func tentryLess(d []tentry, i, j int) bool {
	return d[i].hash < d[j].hash
}

func typeHash(t tp.Type) uint32 {
	return intern.Hash(tp.Key(t))
}

// encodeType writes one type record. Nested types appear as key hashes
// resolved through the type table, not as nested records.
func (b *Builder) encodeType(t tp.Type) (_ flatbuffers.UOffsetT, err error) {
	var nameHash uint32

	if id := t.TypeID(); id != "" {
		nameHash, err = b.strs.Put(id)
		if err != nil {
			return 0, errors.Wrap(err, "type name")
		}
	}

	keyHash := typeHash(t)

	var fields, methods, params, results flatbuffers.UOffsetT
	var recv *fieldRec
	var dims uint64

	switch t := t.(type) {
	case tp.Array:
		dims, err = t.DimWord()
	case tp.Struct:
		fields, err = b.fieldVec(t.Fields)
	case tp.Iface:
		methods, err = b.fieldVec(t.Methods)
	case tp.Func:
		params, err = b.fieldVec(t.In)
		if err == nil {
			results, err = b.fieldVec(t.Out)
		}

		if err == nil && t.Recv != nil {
			var r fieldRec

			r, err = b.fieldRec(*t.Recv)
			recv = &r
		}
	}
	if err != nil {
		return 0, errors.Wrap(err, "%v", t.Kind())
	}

	wire.TypeStart(b.b)
	wire.TypeAddName(b.b, nameHash)
	wire.TypeAddKind(b.b, byte(t.Kind()))
	wire.TypeAddKey(b.b, keyHash)

	switch t := t.(type) {
	case tp.Prim:
	case tp.Ptr:
		wire.TypeAddElem(b.b, typeHash(t.Elem))
	case tp.Array:
		wire.TypeAddDims(b.b, dims)
		wire.TypeAddElem(b.b, typeHash(t.Elem))
	case tp.Map:
		wire.TypeAddKeyType(b.b, typeHash(t.Key))
		wire.TypeAddElem(b.b, typeHash(t.Val))
	case tp.Chan:
		wire.TypeAddDir(b.b, int8(t.Dir))
		wire.TypeAddElem(b.b, typeHash(t.Elem))
	case tp.Struct:
		wire.TypeAddFields(b.b, fields)
	case tp.Iface:
		wire.TypeAddMethods(b.b, methods)
	case tp.Func:
		wire.TypeAddParams(b.b, params)
		wire.TypeAddResults(b.b, results)

		if recv != nil {
			wire.TypeAddRecv(b.b, wire.CreateField(b.b, recv.name, recv.typ, recv.tag))
		}
	}

	return wire.TypeEnd(b.b), nil
}

func (b *Builder) fieldVec(ff []tp.Field) (flatbuffers.UOffsetT, error) {
	recs := make([]fieldRec, len(ff))

	for i, f := range ff {
		r, err := b.fieldRec(f)
		if err != nil {
			return 0, errors.Wrap(err, "field %v", f.Name)
		}

		recs[i] = r
	}

	wire.TypeStartFieldVector(b.b, len(recs))

	for i := len(recs) - 1; i >= 0; i-- {
		wire.CreateField(b.b, recs[i].name, recs[i].typ, recs[i].tag)
	}

	return b.b.EndVector(len(recs)), nil
}

func (b *Builder) fieldRec(f tp.Field) (r fieldRec, err error) {
	if f.Name != "" {
		r.name, err = b.strs.Put(f.Name)
		if err != nil {
			return r, errors.Wrap(err, "name")
		}
	}

	if f.Tag != "" {
		r.tag, err = b.strs.Put(f.Tag)
		if err != nil {
			return r, errors.Wrap(err, "tag")
		}
	}

	r.typ = typeHash(f.Type)

	return r, nil
}
