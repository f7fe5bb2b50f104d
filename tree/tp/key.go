package tp

import (
	"strconv"

	"tlog.app/go/errors"
)

// Key renders the canonical text of a type. Equal keys mean equal types,
// the text is what the type table hashes.
func Key(t Type) string {
	return string(AppendKey(nil, t))
}

func AppendKey(b []byte, t Type) []byte {
	if t == nil {
		return append(b, "<nil>"...)
	}

	if id := t.TypeID(); id != "" {
		b = append(b, id...)
		b = append(b, ' ')
	}

	switch t := t.(type) {
	case Prim:
		b = append(b, t.K.String()...)
	case Ptr:
		b = append(b, '*')
		b = AppendKey(b, t.Elem)
	case Array:
		for _, d := range t.Dims {
			b = append(b, '[')
			b = strconv.AppendUint(b, d, 10)
			b = append(b, ']')
		}

		if len(t.Dims) == 0 {
			b = append(b, "[]"...)
		}

		b = AppendKey(b, t.Elem)
	case Map:
		b = append(b, "map["...)
		b = AppendKey(b, t.Key)
		b = append(b, ']')
		b = AppendKey(b, t.Val)
	case Chan:
		switch t.Dir {
		case RecvOnly:
			b = append(b, "<-chan "...)
		case SendOnly:
			b = append(b, "chan<- "...)
		default:
			b = append(b, "chan "...)
		}

		b = AppendKey(b, t.Elem)
	case Struct:
		b = append(b, "struct{"...)
		b = appendFields(b, t.Fields)
		b = append(b, '}')
	case Iface:
		b = append(b, "interface{"...)
		b = appendFields(b, t.Methods)
		b = append(b, '}')
	case Func:
		b = append(b, "func"...)

		if t.Recv != nil {
			b = append(b, '(')
			b = appendFields(b, []Field{*t.Recv})
			b = append(b, ')')
			b = append(b, '.')
		}

		b = append(b, '(')
		b = appendFields(b, t.In)
		b = append(b, ")("...)
		b = appendFields(b, t.Out)
		b = append(b, ')')
	default:
		panic(errors.New("unsupported type: %T", t))
	}

	return b
}

func appendFields(b []byte, ff []Field) []byte {
	for i, f := range ff {
		if i != 0 {
			b = append(b, "; "...)
		}

		if f.Name != "" {
			b = append(b, f.Name...)
			b = append(b, ' ')
		}

		b = AppendKey(b, f.Type)

		if f.Tag != "" {
			b = append(b, " `"...)
			b = append(b, f.Tag...)
			b = append(b, '`')
		}
	}

	return b
}
