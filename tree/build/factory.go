package build

import (
	"github.com/explosionhm/opticode/tree/ir"
	"github.com/explosionhm/opticode/tree/tp"
)

// Factories for the common constructs. They only assemble nodes from the
// core primitives and Insert them, everything else goes the same road.

func (b *Builder) Package(name string) (ir.ID, error) {
	n := b.NewNode(ir.Package, 0)
	n.Body = ir.Fields{Name: name}

	return b.Insert(n)
}

func (b *Builder) Import(path string) (ir.ID, error) {
	n := b.NewNode(ir.Import, 0)
	n.Body = ir.Fields{List: []ir.Value{ir.Quoted(path)}}

	return b.Insert(n)
}

func (b *Builder) Const(name string, t tp.Type, val ir.Value) (ir.ID, error) {
	n := b.NewNode(ir.Const, 0)
	n.Body = ir.Fields{Name: name, List: []ir.Value{val.Typed(t)}}

	return b.Insert(n)
}

func (b *Builder) Var(name string, t tp.Type, val ir.Value) (ir.ID, error) {
	n := b.NewNode(ir.Var, 0)
	n.Body = ir.Fields{Name: name, List: []ir.Value{val.Typed(t)}}

	return b.Insert(n)
}

// Func declares a function: params first, then the body statements, the
// roles are told apart by value flags.
func (b *Builder) Func(name string, sig tp.Func, params []ir.Value, body []ir.ID) (ir.ID, error) {
	list := make([]ir.Value, 0, len(params)+len(body)+1)

	list = append(list, ir.Text(name).Typed(sig))

	for _, p := range params {
		list = append(list, p.As(ir.VParam))
	}

	for _, id := range body {
		list = append(list, ir.Own(id).As(ir.VStmt))
	}

	n := b.NewNode(ir.Func, 0)
	n.Body = ir.Fields{Name: name, List: list}

	return b.Insert(n)
}

func (b *Builder) BinOp(op ir.Op, left, right ir.Value) (ir.ID, error) {
	n := b.NewNode(op, 0)
	n.Body = ir.Binary{Left: left, Right: right}

	return b.Insert(n)
}

func (b *Builder) UnOp(op ir.Op, x ir.Value) (ir.ID, error) {
	n := b.NewNode(op, 0)
	n.Body = ir.Unary{X: x}

	return b.Insert(n)
}

func (b *Builder) Send(ch, val ir.Value) (ir.ID, error) {
	return b.BinOp(ir.Send, ch, val)
}

func (b *Builder) Recv(ch ir.Value) (ir.ID, error) {
	return b.UnOp(ir.Recv, ch)
}

func (b *Builder) Defer(call ir.Value) (ir.ID, error) {
	return b.UnOp(ir.Defer, call)
}

func (b *Builder) Go(call ir.Value) (ir.ID, error) {
	return b.UnOp(ir.Go, call)
}

func (b *Builder) Ret(x ir.Value) (ir.ID, error) {
	return b.UnOp(ir.Return, x)
}
