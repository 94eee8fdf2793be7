package vlparse

// Pure byte predicates used throughout the lexer. None of these touch
// the parser state; they only classify a single byte.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isDigitB accepts the digit alphabet of a sized binary constant,
// which Verilog lets carry the unknown/high-impedance markers.
func isDigitB(c byte) bool {
	return c == '0' || c == '1' || c == 'x' || c == 'z'
}

// isDigitH accepts plain hex digits plus the unknown/high-impedance
// markers in either case, so sized hex literals like 4'hZ parse.
func isDigitH(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == 'x' || c == 'X' || c == 'z' || c == 'Z'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentStart(c byte) bool {
	return isLetter(c) || c == '_'
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '$'
}
