package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/explosionhm/opticode/tree/build"
	"github.com/explosionhm/opticode/tree/ir"
	"github.com/explosionhm/opticode/tree/tp"
	"github.com/explosionhm/opticode/tree/wire"
)

func main() {
	demoCmd := &cli.Command{
		Name:   "demo",
		Action: demoAct,
		Args:   cli.Args{},
	}

	dumpCmd := &cli.Command{
		Name:   "dump",
		Action: dumpAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "opticode",
		Description: "opticode builds and inspects binary program trees",
		Commands: []*cli.Command{
			demoCmd,
			dumpCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func demoAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	b := build.New()

	pkg, err := b.Package("main")
	if err != nil {
		return errors.Wrap(err, "package")
	}

	imp, err := b.Import("fmt")
	if err != nil {
		return errors.Wrap(err, "import")
	}

	konst, err := b.Const("Greeting", tp.Prim{ID: "Greeting", K: tp.Int32}, ir.Quoted("Hello, World!"))
	if err != nil {
		return errors.Wrap(err, "const")
	}

	for _, link := range [][2]ir.ID{{pkg, imp}, {imp, konst}} {
		err = b.Connect(link[0], link[1])
		if err != nil {
			return errors.Wrap(err, "connect")
		}
	}

	data, err := b.Export(ctx, "main", 0)
	if err != nil {
		return errors.Wrap(err, "export")
	}

	fmt.Printf("%s", b.Dump(nil))

	for _, a := range c.Args {
		err = os.WriteFile(a, data, 0o644)
		if err != nil {
			return errors.Wrap(err, "write %v", a)
		}

		tlog.Printw("written", "file", a, "size", len(data))
	}

	return nil
}

func dumpAct(c *cli.Command) (err error) {
	for _, a := range c.Args {
		data, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		p := wire.GetRootAsProgram(data, 0)

		fmt.Printf("program %q  flags %x  nodes %d\n", p.Name(), p.Flags(), p.NodesLength())

		var n wire.Node
		var v wire.Value

		for j := 0; j < p.NodesLength(); j++ {
			if !p.Nodes(&n, j) {
				continue
			}

			fmt.Printf("  node %d: op %v parent %d next %d shape %d name %08x\n",
				j, ir.Op(n.Op()), n.Parent(), n.Next(), n.Shape(), n.Name())

			for k := 0; k < n.ValsLength(); k++ {
				if !n.Vals(&v, k) {
					continue
				}

				fmt.Printf("    val %x flags %x type %08x\n", v.Val(), v.Flags(), v.Type())
			}
		}

		var s wire.Str

		for j := 0; j < p.StrsLength(); j++ {
			if !p.Strs(&s, j) {
				continue
			}

			fmt.Printf("  str %08x %q\n", s.Hash(), s.Val())
		}
	}

	return nil
}
