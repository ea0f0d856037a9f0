package rgbobj

import "bytes"

var (
	magicFixed    = []byte("RGB6") // version is always 6
	magicRevision = []byte("RGB9") // version is 10 + a u32 revision
)

// ObjectFile is one parsed RGB object container.
type ObjectFile struct {
	File    *File
	Version uint32

	Symbols    []Symbol
	Sections   []Section
	Assertions []Assertion // version >= 13
}

// layout captures which version-gated fields exist in a given container
// version. It is resolved once per file so the decode pass itself is a
// single linear walk with no version branching.
type layout struct {
	patchLine     bool // version < 11
	patchPC       bool // version >= 14
	sectionOffset bool // version >= 14
	assertions    bool // version >= 13
	assertPC      bool // version >= 14
}

func layoutFor(version uint32) (layout, bool) {
	switch version {
	case 6, 10:
		return layout{patchLine: true}, true
	case 11:
		return layout{}, true
	case 13:
		return layout{assertions: true}, true
	case 14:
		return layout{patchPC: true, sectionOffset: true, assertions: true, assertPC: true}, true
	}

	return layout{}, false
}

// Parse decodes one object file. Any short read or bad tag byte is fatal for
// the whole file: a single misread shifts every later offset, so there is no
// partial recovery.
func Parse(file *File) (*ObjectFile, error) {
	r := NewReader(file)

	magic, err := r.Bytes(4)
	if err != nil {
		return nil, err
	}

	var version uint32
	switch {
	case bytes.Equal(magic, magicFixed):
		version = 6
	case bytes.Equal(magic, magicRevision):
		revision, err := r.U32()
		if err != nil {
			return nil, err
		}
		version = 10 + revision
	default:
		return nil, &UnknownMagicError{File: file.Name}
	}

	lay, ok := layoutFor(version)
	if !ok {
		return nil, &UnsupportedVersionError{File: file.Name, Version: version}
	}

	obj := &ObjectFile{File: file, Version: version}

	numSymbols, err := r.U32()
	if err != nil {
		return nil, err
	}
	numSections, err := r.U32()
	if err != nil {
		return nil, err
	}

	for i := uint32(0); i < numSymbols; i++ {
		sym, err := parseSymbol(r)
		if err != nil {
			return nil, err
		}
		obj.Symbols = append(obj.Symbols, sym)
	}

	for i := uint32(0); i < numSections; i++ {
		sec, err := parseSection(r, lay)
		if err != nil {
			return nil, err
		}
		obj.Sections = append(obj.Sections, sec)
	}

	if lay.assertions {
		numAssertions, err := r.U32()
		if err != nil {
			return nil, err
		}
		for i := uint32(0); i < numAssertions; i++ {
			assert, err := parseAssertion(r, lay)
			if err != nil {
				return nil, err
			}
			obj.Assertions = append(obj.Assertions, assert)
		}
	}

	return obj, nil
}

// readTag reads a one-byte enum tag and range-checks it against max.
func readTag(r *Reader, max uint8, what string) (uint8, error) {
	tag, err := r.U8()
	if err != nil {
		return 0, err
	}
	if tag > max {
		return 0, r.decodeErrf(r.Pos()-1, "bad %s %d", what, tag)
	}

	return tag, nil
}

func parseSymbol(r *Reader) (Symbol, error) {
	var sym Symbol
	var err error

	if sym.Name, err = r.CString(); err != nil {
		return sym, err
	}

	kind, err := readTag(r, uint8(SymbolExport), "symbol kind")
	if err != nil {
		return sym, err
	}
	sym.Kind = SymbolKind(kind)

	if sym.Kind != SymbolImport {
		if sym.FileName, err = r.CString(); err != nil {
			return sym, err
		}
		if sym.LineNum, err = r.U32(); err != nil {
			return sym, err
		}
		if sym.SectionID, err = r.U32(); err != nil {
			return sym, err
		}
		if sym.Value, err = r.U32(); err != nil {
			return sym, err
		}
	}

	return sym, nil
}

func parseSection(r *Reader, lay layout) (Section, error) {
	var sec Section
	var err error

	if sec.Name, err = r.CString(); err != nil {
		return sec, err
	}
	if sec.Size, err = r.U32(); err != nil {
		return sec, err
	}

	kind, err := readTag(r, uint8(SectionOAM), "section kind")
	if err != nil {
		return sec, err
	}
	sec.Kind = SectionKind(kind)

	if sec.Org, err = r.U32(); err != nil {
		return sec, err
	}
	if sec.Bank, err = r.U32(); err != nil {
		return sec, err
	}

	if lay.sectionOffset {
		align, err := r.U8()
		if err != nil {
			return sec, err
		}
		sec.Align = uint32(align)
		if sec.Offset, err = r.U32(); err != nil {
			return sec, err
		}
	} else {
		if sec.Align, err = r.U32(); err != nil {
			return sec, err
		}
	}

	if sec.Kind.HasData() {
		if sec.Data, err = r.Bytes(int(sec.Size)); err != nil {
			return sec, err
		}

		numPatches, err := r.U32()
		if err != nil {
			return sec, err
		}
		for i := uint32(0); i < numPatches; i++ {
			patch, err := parsePatch(r, lay)
			if err != nil {
				return sec, err
			}
			sec.Patches = append(sec.Patches, patch)
		}
	}

	return sec, nil
}

func parsePatch(r *Reader, lay layout) (Patch, error) {
	var p Patch
	var err error

	if p.FileName, err = r.CString(); err != nil {
		return p, err
	}
	if lay.patchLine {
		if p.Line, err = r.U32(); err != nil {
			return p, err
		}
	}
	if p.Offset, err = r.U32(); err != nil {
		return p, err
	}
	if lay.patchPC {
		if p.PCSectionID, err = r.U32(); err != nil {
			return p, err
		}
		if p.PCOffset, err = r.U32(); err != nil {
			return p, err
		}
	}

	kind, err := readTag(r, uint8(PatchJr), "patch kind")
	if err != nil {
		return p, err
	}
	p.Kind = PatchKind(kind)

	size, err := r.U32()
	if err != nil {
		return p, err
	}
	if p.RPN, err = r.Bytes(int(size)); err != nil {
		return p, err
	}

	return p, nil
}

func parseAssertion(r *Reader, lay layout) (Assertion, error) {
	var a Assertion
	var err error

	if a.FileName, err = r.CString(); err != nil {
		return a, err
	}
	if a.Offset, err = r.U32(); err != nil {
		return a, err
	}
	if lay.assertPC {
		if a.SectionID, err = r.U32(); err != nil {
			return a, err
		}
		if a.PCOffset, err = r.U32(); err != nil {
			return a, err
		}
	}

	kind, err := readTag(r, uint8(AssertFail), "assertion kind")
	if err != nil {
		return a, err
	}
	a.Kind = AssertKind(kind)

	size, err := r.U32()
	if err != nil {
		return a, err
	}
	if a.RPN, err = r.Bytes(int(size)); err != nil {
		return a, err
	}
	if a.Message, err = r.CString(); err != nil {
		return a, err
	}

	return a, nil
}
