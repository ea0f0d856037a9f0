package rgbobj

import "unusedsym/pkg/utils"

// RPN opcodes that carry an operand. Every other opcode is a single
// operator byte.
const (
	rpnBankSymbol  = 0x50 // BANK(symbol): u32 symbol-table index
	rpnBankSection = 0x51 // BANK("section"): null-terminated section name
	rpnConst       = 0x80 // u32 literal
	rpnSymbol      = 0x81 // symbol value: u32 symbol-table index
)

// ScanSymbolRefs walks a patch expression and collects every symbol-table
// index it references, in order. The expression is never evaluated; operator
// opcodes are skipped as single bytes. Indices are not validated here, the
// caller checks them against its symbol table.
func ScanSymbolRefs(rpn []byte) []uint32 {
	var refs []uint32

	pos := 0
	for pos < len(rpn) {
		switch rpn[pos] {
		case rpnBankSection:
			pos++
			for pos < len(rpn) && rpn[pos] != 0 {
				pos++
			}
			pos++
		case rpnConst:
			pos += 5
		case rpnBankSymbol, rpnSymbol:
			if pos+5 <= len(rpn) {
				refs = append(refs, utils.Read[uint32](rpn[pos+1:]))
			}
			pos += 5
		default:
			pos++
		}
	}

	return refs
}
