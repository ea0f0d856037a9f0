package analysis

import (
	"fmt"

	"unusedsym/pkg/rgbobj"
)

// FileStats are the per-file diagnostic counts: distinct local names and the
// number of import/export symbol-table entries.
type FileStats struct {
	Locals  int
	Imports int
	Exports int
}

// InvalidSymbolIndexError means a patch expression referenced a symbol-table
// index the file's table does not have. The file is corrupt.
type InvalidSymbolIndexError struct {
	File    string
	Index   uint32
	Symbols int
}

func (e *InvalidSymbolIndexError) Error() string {
	return fmt.Sprintf("%s: patch references symbol %d, table has %d", e.File, e.Index, e.Symbols)
}

// AddFile folds one parsed object into the cross-file tally. Every symbol in
// the file's table is seeded at zero so never-referenced symbols still show
// up in the final counts. Local symbols are scoped to this call; only patch
// expressions are scanned, assertions never count as references.
func (ctx *Context) AddFile(obj *rgbobj.ObjectFile) (FileStats, error) {
	var stats FileStats

	locals := make(map[string]int)
	for _, sym := range obj.Symbols {
		switch sym.Kind {
		case rgbobj.SymbolLocal:
			if _, ok := locals[sym.Name]; !ok {
				locals[sym.Name] = 0
			}
		case rgbobj.SymbolImport:
			stats.Imports++
			ctx.addGlobal(sym.Name)
		case rgbobj.SymbolExport:
			stats.Exports++
			ctx.addGlobal(sym.Name)
		}
	}
	stats.Locals = len(locals)

	for i := range obj.Sections {
		sec := &obj.Sections[i]
		if !sec.Kind.HasData() {
			continue
		}

		for _, patch := range sec.Patches {
			for _, idx := range rgbobj.ScanSymbolRefs(patch.RPN) {
				if int(idx) >= len(obj.Symbols) {
					return stats, &InvalidSymbolIndexError{
						File:    obj.File.Name,
						Index:   idx,
						Symbols: len(obj.Symbols),
					}
				}

				sym := &obj.Symbols[idx]
				if sym.Kind.Global() {
					ctx.Globals[sym.Name]++
				} else {
					locals[sym.Name]++
				}
			}
		}
	}

	return stats, nil
}
