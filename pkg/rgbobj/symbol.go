package rgbobj

type SymbolKind uint8

const (
	SymbolLocal SymbolKind = iota
	SymbolImport
	SymbolExport
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolLocal:
		return "local"
	case SymbolImport:
		return "import"
	case SymbolExport:
		return "export"
	}

	return "unknown"
}

// Global reports whether the symbol's name lives in the cross-file namespace.
func (k SymbolKind) Global() bool {
	return k != SymbolLocal
}

// Symbol is one entry of an object file's symbol table. Patches refer to
// symbols by their position in that table, so the table order is load-bearing.
type Symbol struct {
	Name string
	Kind SymbolKind

	// source location and value, absent for imports
	FileName  string
	LineNum   uint32
	SectionID uint32
	Value     uint32
}
