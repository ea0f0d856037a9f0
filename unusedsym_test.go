package main

import (
	"bytes"
	"testing"

	"unusedsym/pkg/rgbobj"
)

func TestDumpSymbolsTableOrder(t *testing.T) {
	// listing order is the symbol-table order, never sorted
	obj := &rgbobj.ObjectFile{
		Symbols: []rgbobj.Symbol{
			{Name: "Zeta", Kind: rgbobj.SymbolExport},
			{Name: ".loop", Kind: rgbobj.SymbolLocal},
			{Name: "Alpha", Kind: rgbobj.SymbolImport},
		},
	}

	var buf bytes.Buffer
	dumpSymbols(&buf, obj)

	want := "Zeta\n.loop\nAlpha\n"
	if buf.String() != want {
		t.Errorf("dump = %q, want %q", buf.String(), want)
	}
}
