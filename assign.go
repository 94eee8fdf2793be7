package vlparse

// readAssign parses "lhs = [~] rhs1 [op rhs2 [: rhs3]] ;" and appends
// the resulting box. Precondition: the "assign" keyword has already
// been consumed.
//
// The emitted box's pins are always inputs first, output last,
// regardless of how many operands the operator took -- this module
// never reorders positional pins by formal (see SPEC_FULL.md's
// supplemented-features note on this Open Question).
func (p *Prs) readAssign() bool {
	if !p.skipSpaces() {
		return false
	}
	out, ok := p.readSignal()
	if !ok {
		return p.fail(ErrAssignOutput)
	}
	if !p.isChar('=') {
		return p.fail(ErrAssignEquals)
	}
	p.cur++
	if !p.skipSpaces() {
		return false
	}
	complement := false
	if p.isChar('~') {
		complement = true
		p.cur++
	}
	in1, ok := p.readSignal()
	if !ok {
		return p.fail(ErrAssignFirstInput)
	}

	pins := []Pin{{Actual: in1}}

	if p.isChar(';') {
		// Left unconsumed -- the module body loop's own ';'
		// handling consumes every statement terminator centrally.
		kind := BoxBuf
		if complement {
			kind = BoxInv
		}
		pins = append(pins, Pin{Actual: out})
		p.ntk.AddBox(kind, 0, pins)
		return true
	}

	var kind BoxKind
	switch {
	case p.isChar('&'):
		kind = BoxAnd
	case p.isChar('|'):
		kind = BoxOr
	case p.isChar('^'):
		if complement {
			kind = BoxXnor
		} else {
			kind = BoxXor
		}
	case p.isChar('?'):
		kind = BoxMux
	default:
		return p.fail(ErrAssignOp)
	}
	p.cur++

	in2, ok := p.readSignal()
	if !ok {
		return p.fail(ErrAssignSecondInput)
	}
	pins = append(pins, Pin{Actual: in2})

	if kind == BoxMux {
		if !p.isChar(':') {
			return p.fail(ErrMuxColon)
		}
		p.cur++
		in3, ok := p.readSignal()
		if !ok {
			return p.fail(ErrAssignThirdInput)
		}
		pins = append(pins, Pin{Actual: in3})
		if !p.isChar(';') {
			return p.fail(ErrAssignSemi)
		}
	} else if !p.isChar(';') {
		return p.fail(ErrAssignSemi)
	}
	// Left unconsumed -- same contract as the unary path above.

	pins = append(pins, Pin{Actual: out})
	p.ntk.AddBox(kind, 0, pins)
	return true
}
