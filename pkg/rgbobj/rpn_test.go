package rgbobj

import (
	"reflect"
	"testing"
)

// symref encodes a symbol-value operand referencing the given table index.
func symref(idx uint32) []byte {
	return []byte{rpnSymbol, byte(idx), byte(idx >> 8), byte(idx >> 16), byte(idx >> 24)}
}

func TestScanOperatorsOnly(t *testing.T) {
	// add, sub, mul: single-byte operators, no operands
	refs := ScanSymbolRefs([]byte{0x00, 0x01, 0x02})
	if len(refs) != 0 {
		t.Errorf("refs = %v, want none", refs)
	}
}

func TestScanEmpty(t *testing.T) {
	if refs := ScanSymbolRefs(nil); len(refs) != 0 {
		t.Errorf("refs = %v, want none", refs)
	}
}

func TestScanConstOperands(t *testing.T) {
	// back-to-back u32 literals whose payload bytes look like symbol
	// opcodes; the scanner must consume 5 bytes per operand and never
	// treat payload as opcodes
	rpn := []byte{
		rpnConst, 0x81, 0x50, 0x81, 0x50,
		rpnConst, 0x00, 0x00, 0x00, 0x00,
		rpnConst, 0xff, 0xff, 0xff, 0xff,
	}

	refs := ScanSymbolRefs(rpn)
	if len(refs) != 0 {
		t.Errorf("refs = %v, want none", refs)
	}
}

func TestScanSymbolOperands(t *testing.T) {
	var rpn []byte
	rpn = append(rpn, symref(2)...)
	rpn = append(rpn, 0x03) // an operator between the two references
	rpn = append(rpn, rpnBankSymbol, 0x07, 0x00, 0x00, 0x00)

	refs := ScanSymbolRefs(rpn)
	want := []uint32{2, 7}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("refs = %v, want %v", refs, want)
	}
}

func TestScanBankSectionString(t *testing.T) {
	// BANK("VRAM tiles") followed by a symbol reference; the string must
	// be skipped including its terminator
	rpn := []byte{rpnBankSection}
	rpn = append(rpn, []byte("VRAM tiles\x00")...)
	rpn = append(rpn, symref(1)...)

	refs := ScanSymbolRefs(rpn)
	want := []uint32{1}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("refs = %v, want %v", refs, want)
	}
}

func TestScanDeterminism(t *testing.T) {
	var rpn []byte
	rpn = append(rpn, symref(0)...)
	rpn = append(rpn, rpnConst, 0x10, 0x20, 0x30, 0x40)
	rpn = append(rpn, symref(3)...)
	rpn = append(rpn, 0x21, 0x22)

	first := ScanSymbolRefs(rpn)
	second := ScanSymbolRefs(rpn)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two scans differ: %v vs %v", first, second)
	}
	if want := []uint32{0, 3}; !reflect.DeepEqual(first, want) {
		t.Errorf("refs = %v, want %v", first, want)
	}
}
