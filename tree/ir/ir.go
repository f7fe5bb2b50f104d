// Package ir is the logical node graph: pure data, freely mutable,
// independent of the binary encoding pass.
package ir

import "github.com/explosionhm/opticode/tree/tp"

type (
	// ID indexes a node in the store. Dense but not contiguous after
	// deletions. Nil marks an absent parent or next link.
	ID uint64

	Flags  uint32
	VFlags uint32
	Shape  uint8

	// Node represents one language construct. Parent and Next chain
	// sibling declarations and statements of the same lexical level,
	// they do not form a children list.
	Node struct {
		Op    Op
		Flags Flags

		Parent ID
		Next   ID

		Body Body
	}

	// Body is the shape-specific payload. Exactly one concrete shape
	// is attached to a node.
	Body interface {
		Shape() Shape
	}

	// Fields is the indexed shape: an optional declared name and an
	// ordered list of values of opcode-specific arity.
	Fields struct {
		Name string
		List []Value
	}

	// Binary is the two-operand shape.
	Binary struct {
		Left  Value
		Right Value
	}

	// Unary is the single-operand shape.
	Unary struct {
		X Value
	}

	// Value is a tagged scalar: text payload or node reference,
	// optionally annotated with a type.
	Value struct {
		Flags VFlags

		Str string
		Ref ID

		Type tp.Type
	}
)

const Nil ID = 0

const (
	ShapeIndexed Shape = iota + 1
	ShapeBinary
	ShapeUnary
)

const (
	// VText: Str is the payload, Ref is ignored.
	VText VFlags = 1 << iota

	// VQuoted: the text is a string literal, not an identifier.
	VQuoted

	// VRef: Ref names a node owned elsewhere and is never cascaded
	// into by recursive deletion. Ref without VRef is owned content.
	VRef

	// role hints
	VParam
	VStmt
)

func (f Fields) Shape() Shape { return ShapeIndexed }
func (f Binary) Shape() Shape { return ShapeBinary }
func (f Unary) Shape() Shape  { return ShapeUnary }

func (f VFlags) Is(x VFlags) bool { return f&x == x }
func (f Flags) Is(x Flags) bool   { return f&x == x }

// Text makes a plain text value.
func Text(s string) Value {
	return Value{Flags: VText, Str: s}
}

// Quoted makes a string literal value.
func Quoted(s string) Value {
	return Value{Flags: VText | VQuoted, Str: s}
}

// Own makes a value holding a node the enclosing node owns.
func Own(id ID) Value {
	return Value{Ref: id}
}

// RefTo makes a pointer reference to a node owned elsewhere.
func RefTo(id ID) Value {
	return Value{Flags: VRef, Ref: id}
}

// Typed attaches a type annotation.
func (v Value) Typed(t tp.Type) Value {
	v.Type = t
	return v
}

// As adds role flags.
func (v Value) As(f VFlags) Value {
	v.Flags |= f
	return v
}
