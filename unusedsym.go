package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xyproto/env/v2"

	"unusedsym/pkg/analysis"
	"unusedsym/pkg/rgbobj"
	"unusedsym/pkg/utils"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-D] <objects.o...>\n", os.Args[0])
	os.Exit(1)
}

// dumpSymbols prints each symbol name on its own line, in table order.
func dumpSymbols(w io.Writer, obj *rgbobj.ObjectFile) {
	for _, sym := range obj.Symbols {
		fmt.Fprintln(w, sym.Name)
	}
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		usage()
	}

	ctx := analysis.NewContext()

	if args[0] == "-D" {
		ctx.Args.DumpOnly = true
		args = args[1:]
	}
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		usage()
	}
	ctx.Args.Files = args

	quiet := env.Bool("UNUSEDSYM_QUIET")

	for _, name := range ctx.Args.Files {
		if !quiet {
			fmt.Fprintln(os.Stderr, name)
		}

		obj, err := rgbobj.Parse(rgbobj.MustNewFile(name))
		utils.MustNo(err)

		if ctx.Args.DumpOnly {
			dumpSymbols(os.Stdout, obj)
			continue
		}

		stats, err := ctx.AddFile(obj)
		utils.MustNo(err)

		if !quiet {
			fmt.Fprintln(os.Stderr, "Locals:", stats.Locals)
			fmt.Fprintln(os.Stderr, "Imports:", stats.Imports)
			fmt.Fprintln(os.Stderr, "Exports:", stats.Exports)
			fmt.Fprintln(os.Stderr)
		}
	}

	if ctx.Args.DumpOnly {
		return
	}

	fmt.Fprintln(os.Stderr, "Unreferenced globals:")
	for _, name := range ctx.Unreferenced() {
		fmt.Println(name)
	}
}
