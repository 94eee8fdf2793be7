package vlparse

import "strings"

// primitiveTable is the fixed, order-sensitive prefix table from
// spec.md §6. Position in this slice plus one is the BoxKind (0 is
// reserved for "no kind"); do not reorder
// it, and insert any new prefix so it is never a prefix of an earlier,
// differently-kinded entry -- resolution always takes the first hit
// scanning from the top.
var primitiveTable = []string{
	"const0", "const1", "constX", "constZ",
	"buf", "not", "and", "nand", "or", "nor", "xor", "xnor", "sharp", "mux", "maj",
	"VERIFIC_",
	"add_", "mult_", "div_", "mod_", "rem_",
	"shift_left_", "shift_right_", "rotate_left_", "rotate_right_",
	"reduce_and_", "reduce_or_", "reduce_xor_", "reduce_nand_", "reduce_nor_", "reduce_xnor_",
	"LessThan_", "Mux_", "Select_", "Decoder_", "EnabledDecoder_", "PrioSelect_",
	"DualPortRam_", "ReadPort_", "WritePort_", "ClockedWritePort_",
	"lut",
	"and_", "or_", "xor_", "nand_", "nor_", "xnor_", "buf_", "inv_", "tri_",
	"sub_", "unary_minus_", "equal_", "not_equal_", "mux_",
	"wide_mux_", "wide_select_", "wide_dff_", "wide_dlatch_", "wide_dffrs_", "wide_dlatchrs_",
	"wide_prio_select_", "pow_", "PrioEncoder_", "abs",
}

// BoxKind indices for the assign-statement primitives, resolved once
// at init time by name rather than hardcoded, so the table in
// primitiveTable stays the single source of truth.
var (
	BoxBuf  = boxKindOf("buf")
	BoxInv  = boxKindOf("not")
	BoxAnd  = boxKindOf("and")
	BoxOr   = boxKindOf("or")
	BoxXor  = boxKindOf("xor")
	BoxXnor = boxKindOf("xnor")
	BoxMux  = boxKindOf("mux")
)

func boxKindOf(name string) BoxKind {
	for i, s := range primitiveTable {
		if s == name {
			return BoxKind(i + 1) // 0 is reserved for "no kind"
		}
	}
	panic("vlparse: primitive " + name + " missing from primitiveTable")
}

// PrimitiveName returns the table text behind k, or "" if k is out of
// range.
func PrimitiveName(k BoxKind) string {
	i := int(k) - 1
	if i < 0 || i >= len(primitiveTable) {
		return ""
	}
	return primitiveTable[i]
}

// resolvePrimitive prefix-matches candidate against primitiveTable,
// scanning from the top and returning the first entry whose text is a
// prefix of candidate. This is the primitive-resolution rule for both
// module-name elision (matching the whole known-module list) and
// instantiated-type resolution (matching the elementary-gate list);
// both draw from the same ordered table.
func resolvePrimitive(candidate string) (BoxKind, bool) {
	for i, s := range primitiveTable {
		if strings.HasPrefix(candidate, s) {
			return BoxKind(i + 1), true
		}
	}
	return 0, false
}

// isKnownModuleName reports whether name matches a primitive prefix,
// i.e. whether a module declaration with this name should be elided
// instead of parsed.
func isKnownModuleName(name string) bool {
	_, ok := resolvePrimitive(name)
	return ok
}
