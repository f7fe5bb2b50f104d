package ir

import "fmt"

// Op tags a node with the construct it represents.
type Op uint32

const (
	Nop Op = iota

	// structure
	Package
	Import
	Const
	Var
	TypeDecl
	Func
	Block
	Return
	Call
	Ident
	Lit
	Index
	Selector
	Assign
	Define

	// control flow
	If
	Else
	For
	Range
	Switch
	Case
	Select
	Break
	Continue
	Goto
	Label
	Fallthrough

	// arithmetic
	Add
	Sub
	Mul
	Quo
	Rem

	// bitwise
	And
	Or
	Xor
	AndNot
	Shl
	Shr

	// logic
	LAnd
	LOr
	Not
	Neg

	// comparison
	Eq
	Neq
	Lt
	Leq
	Gt
	Geq

	// concurrency
	Send
	Recv
	Defer
	Go

	// builtins
	Append
	Len
	Cap
	Make
	New
	Copy
	Delete
	Close
	Panic
	Recover

	opMax
)

var opNames = [...]string{
	Nop:     "nop",
	Package: "package",
	Import:  "import",
	Const:   "const",
	Var:     "var",

	TypeDecl: "type",
	Func:     "func",
	Block:    "block",
	Return:   "return",
	Call:     "call",
	Ident:    "ident",
	Lit:      "lit",
	Index:    "index",
	Selector: "selector",
	Assign:   "assign",
	Define:   "define",

	If:          "if",
	Else:        "else",
	For:         "for",
	Range:       "range",
	Switch:      "switch",
	Case:        "case",
	Select:      "select",
	Break:       "break",
	Continue:    "continue",
	Goto:        "goto",
	Label:       "label",
	Fallthrough: "fallthrough",

	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Quo: "quo",
	Rem: "rem",

	And:    "and",
	Or:     "or",
	Xor:    "xor",
	AndNot: "andnot",
	Shl:    "shl",
	Shr:    "shr",

	LAnd: "land",
	LOr:  "lor",
	Not:  "not",
	Neg:  "neg",

	Eq:  "eq",
	Neq: "neq",
	Lt:  "lt",
	Leq: "leq",
	Gt:  "gt",
	Geq: "geq",

	Send:  "send",
	Recv:  "recv",
	Defer: "defer",
	Go:    "go",

	Append:  "append",
	Len:     "len",
	Cap:     "cap",
	Make:    "make",
	New:     "new",
	Copy:    "copy",
	Delete:  "delete",
	Close:   "close",
	Panic:   "panic",
	Recover: "recover",
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}

	return fmt.Sprintf("op(%d)", uint32(op))
}
