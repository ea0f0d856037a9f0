package rgbobj

type SectionKind uint8

const (
	SectionWRAM0 SectionKind = iota
	SectionVRAM
	SectionROMX
	SectionROM0
	SectionHRAM
	SectionWRAMX
	SectionSRAM
	SectionOAM
)

func (k SectionKind) String() string {
	switch k {
	case SectionWRAM0:
		return "WRAM0"
	case SectionVRAM:
		return "VRAM"
	case SectionROMX:
		return "ROMX"
	case SectionROM0:
		return "ROM0"
	case SectionHRAM:
		return "HRAM"
	case SectionWRAMX:
		return "WRAMX"
	case SectionSRAM:
		return "SRAM"
	case SectionOAM:
		return "OAM"
	}

	return "unknown"
}

// HasData reports whether sections of this kind carry data and patches in the
// container. RAM-like sections only reserve space.
func (k SectionKind) HasData() bool {
	return k == SectionROMX || k == SectionROM0
}

type Section struct {
	Name   string
	Kind   SectionKind
	Size   uint32
	Org    uint32
	Bank   uint32
	Align  uint32
	Offset uint32 // version >= 14

	// ROMX/ROM0 only
	Data    []byte
	Patches []Patch
}

type PatchKind uint8

const (
	PatchByte PatchKind = iota
	PatchWord
	PatchLong
	PatchJr
)

// Patch is a relocation: a fixup of a byte/word/long/jr-sized field within a
// section's data, computed from an RPN expression at link time.
type Patch struct {
	FileName    string
	Line        uint32 // version < 11
	Offset      uint32
	PCSectionID uint32 // version >= 14
	PCOffset    uint32 // version >= 14
	Kind        PatchKind
	RPN         []byte
}

type AssertKind uint8

const (
	AssertWarn AssertKind = iota
	AssertError
	AssertFail
)

// Assertion is a link-time check (version >= 13). Its expression is kept as
// opaque metadata; assertions do not count as symbol references.
type Assertion struct {
	FileName  string
	Offset    uint32
	SectionID uint32 // version >= 14
	PCOffset  uint32 // version >= 14
	Kind      AssertKind
	RPN       []byte
	Message   string
}
