// Package wire is the hand-written FlatBuffers binding for the exported
// container: a Program root with a node vector and two hash-sorted lookup
// vectors. Strings and types inside records are referenced by their
// FNV-1a hash, nodes by plain numeric IDs, never by builder offsets.
package wire

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type (
	Program struct {
		_tab flatbuffers.Table
	}

	Node struct {
		_tab flatbuffers.Table
	}

	// Value is a fixed 16-byte scalar record.
	Value struct {
		_tab flatbuffers.Struct
	}

	Str struct {
		_tab flatbuffers.Table
	}

	TypeRec struct {
		_tab flatbuffers.Table
	}

	Type struct {
		_tab flatbuffers.Table
	}

	// Field is a fixed 12-byte record of three hashes.
	Field struct {
		_tab flatbuffers.Struct
	}
)

const (
	ValueSize = 16
	FieldSize = 12
)

func GetRootAsProgram(buf []byte, offset flatbuffers.UOffsetT) *Program {
	n := flatbuffers.GetUOffsetT(buf[offset:])

	x := &Program{}
	x._tab.Bytes = buf
	x._tab.Pos = n + offset

	return x
}

func (rcv *Program) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}

	return nil
}

func (rcv *Program) Flags() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Program) Nodes(obj *Node, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o == 0 {
		return false
	}

	x := rcv._tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = rcv._tab.Indirect(x)

	obj._tab.Bytes = rcv._tab.Bytes
	obj._tab.Pos = x

	return true
}

func (rcv *Program) NodesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}

	return 0
}

func (rcv *Program) Strs(obj *Str, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o == 0 {
		return false
	}

	x := rcv._tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = rcv._tab.Indirect(x)

	obj._tab.Bytes = rcv._tab.Bytes
	obj._tab.Pos = x

	return true
}

func (rcv *Program) StrsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}

	return 0
}

func (rcv *Program) Types(obj *TypeRec, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o == 0 {
		return false
	}

	x := rcv._tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = rcv._tab.Indirect(x)

	obj._tab.Bytes = rcv._tab.Bytes
	obj._tab.Pos = x

	return true
}

func (rcv *Program) TypesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}

	return 0
}

func (rcv *Node) Op() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Node) Parent() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Node) Next() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Node) Flags() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Node) Shape() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Node) Name() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Node) Vals(obj *Value, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o == 0 {
		return false
	}

	x := rcv._tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * ValueSize

	obj._tab.Bytes = rcv._tab.Bytes
	obj._tab.Pos = x

	return true
}

func (rcv *Node) ValsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}

	return 0
}

func (rcv *Value) Val() uint64 {
	return rcv._tab.GetUint64(rcv._tab.Pos + 0)
}

func (rcv *Value) Flags() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + 8)
}

func (rcv *Value) Type() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + 12)
}

func (rcv *Str) Hash() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Str) Val() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}

	return nil
}

func (rcv *TypeRec) Hash() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *TypeRec) Type(obj *Type) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o == 0 {
		return false
	}

	obj._tab.Bytes = rcv._tab.Bytes
	obj._tab.Pos = rcv._tab.Indirect(o + rcv._tab.Pos)

	return true
}

func (rcv *Type) Name() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Type) Kind() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Type) Dims() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Type) Elem() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Type) Key() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Type) Dir() int8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetInt8(o + rcv._tab.Pos)
	}

	return 0
}

// KeyType is the map key type, Elem holds the map value type.
func (rcv *Type) KeyType() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(26))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}

	return 0
}

func (rcv *Type) Fields(obj *Field, j int) bool {
	return rcv.fieldVec(16, obj, j)
}

func (rcv *Type) FieldsLength() int {
	return rcv.fieldVecLen(16)
}

func (rcv *Type) Methods(obj *Field, j int) bool {
	return rcv.fieldVec(18, obj, j)
}

func (rcv *Type) MethodsLength() int {
	return rcv.fieldVecLen(18)
}

func (rcv *Type) Params(obj *Field, j int) bool {
	return rcv.fieldVec(20, obj, j)
}

func (rcv *Type) ParamsLength() int {
	return rcv.fieldVecLen(20)
}

func (rcv *Type) Results(obj *Field, j int) bool {
	return rcv.fieldVec(22, obj, j)
}

func (rcv *Type) ResultsLength() int {
	return rcv.fieldVecLen(22)
}

func (rcv *Type) Recv(obj *Field) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(24))
	if o == 0 {
		return false
	}

	obj._tab.Bytes = rcv._tab.Bytes
	obj._tab.Pos = o + rcv._tab.Pos

	return true
}

func (rcv *Type) fieldVec(slot flatbuffers.VOffsetT, obj *Field, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot))
	if o == 0 {
		return false
	}

	x := rcv._tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * FieldSize

	obj._tab.Bytes = rcv._tab.Bytes
	obj._tab.Pos = x

	return true
}

func (rcv *Type) fieldVecLen(slot flatbuffers.VOffsetT) int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(slot))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}

	return 0
}

func (rcv *Field) Name() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + 0)
}

func (rcv *Field) Type() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + 4)
}

func (rcv *Field) Tag() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + 8)
}
