package build

import (
	"github.com/nikandfor/hacked/hfmt"

	"github.com/explosionhm/opticode/tree/ir"
)

// Dump appends a text rendering of the store and the string table.
// Debug only, the binary artifact is the authoritative output.
func (b *Builder) Dump(buf []byte) []byte {
	for _, id := range b.order {
		n := b.nodes[id].node

		buf = hfmt.Appendf(buf, "%4d  %-10v", id, n.Op)

		if n.Parent != ir.Nil || n.Next != ir.Nil {
			buf = hfmt.Appendf(buf, "  parent %d next %d", n.Parent, n.Next)
		}

		if n.Flags != 0 {
			buf = hfmt.Appendf(buf, "  flags %x", n.Flags)
		}

		switch body := n.Body.(type) {
		case ir.Fields:
			if body.Name != "" {
				buf = hfmt.Appendf(buf, "  %q", body.Name)
			}

			for _, v := range body.List {
				buf = appendValue(buf, v)
			}
		case ir.Binary:
			buf = appendValue(buf, body.Left)
			buf = appendValue(buf, body.Right)
		case ir.Unary:
			buf = appendValue(buf, body.X)
		}

		buf = append(buf, '\n')
	}

	for _, e := range b.strs.Sorted() {
		buf = hfmt.Appendf(buf, "str %08x  %q\n", e.Hash, e.Val)
	}

	for _, e := range b.types.Sorted() {
		buf = hfmt.Appendf(buf, "typ %08x  %v\n", e.hash, e.key)
	}

	return buf
}

func appendValue(buf []byte, v ir.Value) []byte {
	switch {
	case v.Flags.Is(ir.VText | ir.VQuoted):
		buf = hfmt.Appendf(buf, "  %q", v.Str)
	case v.Flags.Is(ir.VText):
		buf = hfmt.Appendf(buf, "  %v", v.Str)
	case v.Flags.Is(ir.VRef):
		buf = hfmt.Appendf(buf, "  ->%d", v.Ref)
	default:
		buf = hfmt.Appendf(buf, "  #%d", v.Ref)
	}

	if v.Type != nil {
		buf = hfmt.Appendf(buf, ":%v", v.Type.Kind())
	}

	return buf
}
