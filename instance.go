package vlparse

// readInstance parses a module instantiation: TYPE [INST] ( PINS ) ;
// where PINS is either a positional signal list or an all-named
// ".formal(actual)" list. Precondition: typeName has already been
// read as the instantiated type's identifier (it may be a user
// module name or an elementary gate/primitive name).
func (p *Prs) readInstance(typeName NameId) bool {
	if !p.skipSpaces() {
		return false
	}
	instName := p.readName()
	if instName != 0 {
		if !p.skipSpaces() {
			return false
		}
	}
	if !p.isChar('(') {
		return p.fail(ErrInstanceParen)
	}
	p.cur++
	if !p.skipSpaces() {
		return false
	}

	var kind BoxKind
	var pins []Pin
	var ok bool
	named := p.isChar('.')

	if named {
		pins, ok = p.readNamedPins()
		if !ok {
			return false
		}
	} else {
		resolved, found := resolvePrimitive(p.it.String(typeName))
		if !found {
			return p.fail(ErrElementaryGate)
		}
		kind = resolved
		pins, ok = p.readPositionalPins(')')
		if !ok {
			return false
		}
	}

	if !p.isChar(')') {
		return p.fail(ErrInstanceParen)
	}
	p.cur++
	if !p.skipSpaces() {
		return false
	}
	if !p.isChar(';') {
		return p.fail(ErrInstanceSemi)
	}
	// Left unconsumed -- the module body loop consumes every
	// statement terminator itself.

	if named {
		p.ntk.AddInstanceBox(0, instName, typeName, pins)
	} else {
		p.ntk.AddBox(kind, instName, pins)
	}
	return true
}
