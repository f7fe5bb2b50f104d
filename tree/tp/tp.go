// Package tp describes types attached to declarations. A type is an
// opaque payload for the node graph: the builder dedups and encodes it,
// nothing interprets it.
package tp

import (
	"strconv"

	"github.com/explosionhm/opticode/tree/bitpack"
)

type (
	Kind uint8
	Dir  int8

	// Type is a tagged union over primitive and composite kinds.
	// Every concrete type carries a declared name, possibly empty.
	Type interface {
		Kind() Kind
		TypeID() string
	}

	Prim struct {
		ID string
		K  Kind
	}

	Ptr struct {
		ID   string
		Elem Type
	}

	// Array with no dims is a slice.
	Array struct {
		ID   string
		Elem Type
		Dims []uint64
	}

	Map struct {
		ID  string
		Key Type
		Val Type
	}

	Chan struct {
		ID   string
		Elem Type
		Dir  Dir
	}

	Struct struct {
		ID     string
		Fields []Field
	}

	Field struct {
		Name string
		Type Type
		Tag  string
	}

	// Iface methods are Fields whose Type is a *Func.
	Iface struct {
		ID      string
		Methods []Field
	}

	Func struct {
		ID   string
		In   []Field
		Out  []Field
		Recv *Field
	}
)

const (
	Invalid Kind = iota

	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
	String
	Rune
	Byte

	KindPtr
	KindArray
	KindMap
	KindChan
	KindStruct
	KindIface
	KindFunc
)

const (
	Both Dir = iota
	RecvOnly
	SendOnly
)

// DimWidth is the bit budget of one array dimension inside the packed
// dimension word. Four dimensions fit a word.
const DimWidth = 16

func (t Prim) Kind() Kind   { return t.K }
func (t Ptr) Kind() Kind    { return KindPtr }
func (t Array) Kind() Kind  { return KindArray }
func (t Map) Kind() Kind    { return KindMap }
func (t Chan) Kind() Kind   { return KindChan }
func (t Struct) Kind() Kind { return KindStruct }
func (t Iface) Kind() Kind  { return KindIface }
func (t Func) Kind() Kind   { return KindFunc }

func (t Prim) TypeID() string   { return t.ID }
func (t Ptr) TypeID() string    { return t.ID }
func (t Array) TypeID() string  { return t.ID }
func (t Map) TypeID() string    { return t.ID }
func (t Chan) TypeID() string   { return t.ID }
func (t Struct) TypeID() string { return t.ID }
func (t Iface) TypeID() string  { return t.ID }
func (t Func) TypeID() string   { return t.ID }

// DimWord packs the array dimensions into a single word,
// first dimension in the highest bits.
func (t Array) DimWord() (uint64, error) {
	if len(t.Dims) == 0 {
		return 0, nil
	}

	w := make([]int, len(t.Dims))
	for i := range w {
		w[i] = DimWidth
	}

	return bitpack.Pack(t.Dims, w)
}

var kindNames = [...]string{
	Invalid:    "invalid",
	Bool:       "bool",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
	String:     "string",
	Rune:       "rune",
	Byte:       "byte",
	KindPtr:    "ptr",
	KindArray:  "array",
	KindMap:    "map",
	KindChan:   "chan",
	KindStruct: "struct",
	KindIface:  "interface",
	KindFunc:   "func",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}
