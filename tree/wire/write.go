package wire

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Shape discriminators of the Node sub-record.
const (
	ShapeIndexed = 1
	ShapeBinary  = 2
	ShapeUnary   = 3
)

func ProgramStart(b *flatbuffers.Builder) {
	b.StartObject(5)
}

func ProgramAddName(b *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(0, name, 0)
}

func ProgramAddFlags(b *flatbuffers.Builder, flags uint64) {
	b.PrependUint64Slot(1, flags, 0)
}

func ProgramAddNodes(b *flatbuffers.Builder, nodes flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(2, nodes, 0)
}

func ProgramAddStrs(b *flatbuffers.Builder, strs flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(3, strs, 0)
}

func ProgramAddTypes(b *flatbuffers.Builder, types flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(4, types, 0)
}

func ProgramEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}

func ProgramStartNodesVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}

func ProgramStartStrsVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}

func ProgramStartTypesVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(4, n, 4)
}

func NodeStart(b *flatbuffers.Builder) {
	b.StartObject(7)
}

func NodeAddOp(b *flatbuffers.Builder, op uint32) {
	b.PrependUint32Slot(0, op, 0)
}

func NodeAddParent(b *flatbuffers.Builder, id uint64) {
	b.PrependUint64Slot(1, id, 0)
}

func NodeAddNext(b *flatbuffers.Builder, id uint64) {
	b.PrependUint64Slot(2, id, 0)
}

func NodeAddFlags(b *flatbuffers.Builder, flags uint32) {
	b.PrependUint32Slot(3, flags, 0)
}

func NodeAddShape(b *flatbuffers.Builder, shape byte) {
	b.PrependByteSlot(4, shape, 0)
}

func NodeAddName(b *flatbuffers.Builder, hash uint32) {
	b.PrependUint32Slot(5, hash, 0)
}

func NodeAddVals(b *flatbuffers.Builder, vals flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(6, vals, 0)
}

func NodeStartValsVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(ValueSize, n, 8)
}

func NodeEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}

// CreateValue writes the fixed scalar record. Struct fields are prepended
// back to front.
func CreateValue(b *flatbuffers.Builder, val uint64, flags, typ uint32) flatbuffers.UOffsetT {
	b.Prep(8, ValueSize)
	b.PrependUint32(typ)
	b.PrependUint32(flags)
	b.PrependUint64(val)

	return b.Offset()
}

func CreateField(b *flatbuffers.Builder, name, typ, tag uint32) flatbuffers.UOffsetT {
	b.Prep(4, FieldSize)
	b.PrependUint32(tag)
	b.PrependUint32(typ)
	b.PrependUint32(name)

	return b.Offset()
}

func StrStart(b *flatbuffers.Builder) {
	b.StartObject(2)
}

func StrAddHash(b *flatbuffers.Builder, hash uint32) {
	b.PrependUint32Slot(0, hash, 0)
}

func StrAddVal(b *flatbuffers.Builder, val flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, val, 0)
}

func StrEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}

func TypeRecStart(b *flatbuffers.Builder) {
	b.StartObject(2)
}

func TypeRecAddHash(b *flatbuffers.Builder, hash uint32) {
	b.PrependUint32Slot(0, hash, 0)
}

func TypeRecAddType(b *flatbuffers.Builder, typ flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(1, typ, 0)
}

func TypeRecEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}

func TypeStart(b *flatbuffers.Builder) {
	b.StartObject(12)
}

func TypeAddName(b *flatbuffers.Builder, hash uint32) {
	b.PrependUint32Slot(0, hash, 0)
}

func TypeAddKind(b *flatbuffers.Builder, kind byte) {
	b.PrependByteSlot(1, kind, 0)
}

func TypeAddDims(b *flatbuffers.Builder, dims uint64) {
	b.PrependUint64Slot(2, dims, 0)
}

func TypeAddElem(b *flatbuffers.Builder, hash uint32) {
	b.PrependUint32Slot(3, hash, 0)
}

func TypeAddKey(b *flatbuffers.Builder, hash uint32) {
	b.PrependUint32Slot(4, hash, 0)
}

func TypeAddDir(b *flatbuffers.Builder, dir int8) {
	b.PrependInt8Slot(5, dir, 0)
}

func TypeAddFields(b *flatbuffers.Builder, vec flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(6, vec, 0)
}

func TypeAddMethods(b *flatbuffers.Builder, vec flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(7, vec, 0)
}

func TypeAddParams(b *flatbuffers.Builder, vec flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(8, vec, 0)
}

func TypeAddResults(b *flatbuffers.Builder, vec flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(9, vec, 0)
}

func TypeAddRecv(b *flatbuffers.Builder, recv flatbuffers.UOffsetT) {
	b.PrependStructSlot(10, recv, 0)
}

func TypeAddKeyType(b *flatbuffers.Builder, hash uint32) {
	b.PrependUint32Slot(11, hash, 0)
}

func TypeStartFieldVector(b *flatbuffers.Builder, n int) flatbuffers.UOffsetT {
	return b.StartVector(FieldSize, n, 4)
}

func TypeEnd(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}
