package vlparse

// readArguments parses the Verilog-2001/1995 header port list
// "( ... )" immediately after the module name. Each item is a plain
// name, optionally introduced by a direction keyword that "sticks" to
// every following item until another direction keyword appears, and
// optionally carrying its own "[hi:lo]" range.
//
// One quirk carried over verbatim from the source material: a range
// is not reset to scalar when a later direction keyword appears
// without its own bracket -- it keeps applying until a new "[...]"
// overwrites it. Verilog-2001 headers that restate a range on every
// direction change (the normal style) never observe this; it only
// matters for a header that changes direction mid-width without
// repeating the bracket.
//
// Precondition: the cursor is at '('.
func (p *Prs) readArguments() bool {
	p.cur++ // consume '('
	if !p.skipSpaces() {
		return false
	}
	if p.isChar(')') {
		return true // empty port list "()"
	}
	var dir Direction
	haveDir := false
	var rangeId NameId

	for {
		name := p.readName()
		if name == 0 {
			return false
		}
		if !p.skipSpaces() {
			return false
		}
		if d, ok := directionOf(name); ok {
			dir = d
			haveDir = true
			if p.isChar('[') {
				r, ok := p.readRange()
				if !ok {
					return false
				}
				rangeId = r
				if !p.skipSpaces() {
					return false
				}
			}
			name = p.readName()
			if name == 0 {
				return false
			}
			if !p.skipSpaces() {
				return false
			}
		}
		if haveDir {
			bucket, bucketR := p.ntk.buckets(dir)
			*bucket = append(*bucket, name)
			*bucketR = append(*bucketR, rangeId)
		}
		p.ntk.Ports = append(p.ntk.Ports, name)
		if p.isChar(')') {
			break
		}
		if !p.isChar(',') {
			return p.fail(ErrCommaInList)
		}
		p.cur++
		if !p.skipSpaces() {
			return false
		}
	}
	return true
}

// directionOf maps the three port-direction keywords to their
// Direction bucket; "wire" never appears in a header.
func directionOf(name NameId) (Direction, bool) {
	switch name {
	case KeywordInout:
		return DirInout, true
	case KeywordInput:
		return DirInput, true
	case KeywordOutput:
		return DirOutput, true
	default:
		return 0, false
	}
}

// ReadModule advances past exactly one "module ... endmodule" unit,
// or signals EOF if none remains. Return codes line up with
// ModuleStatus: EOF when there was nothing left to read, OK when a
// module finished at "endmodule", Primitive when the module's name
// matched a known-primitive prefix and its body was skipped whole,
// Recovered when a body statement failed and the module was
// finalized as a blackbox stub, and Fatal when a structural token is
// missing at module scope.
func (p *Prs) ReadModule(d *Design) ModuleStatus {
	if p.ntk != nil {
		p.fail(ErrUnfinished)
		return StatusFatal
	}
	if !p.skipSpaces() {
		p.clearError()
		return StatusEOF
	}

	kw := p.readName()
	if kw != KeywordModule {
		p.fail(ErrModuleKeyword)
		return StatusFatal
	}
	if !p.skipSpaces() {
		return StatusFatal
	}

	nameId := p.readName()
	if nameId == 0 {
		p.fail(ErrModuleName)
		return StatusFatal
	}

	if isKnownModuleName(p.it.String(nameId)) {
		if !p.skipUntilWord("endmodule") {
			p.fail(ErrEndmodule)
			return StatusFatal
		}
		p.known = append(p.known, nameId)
		p.clearError()
		return StatusPrimitive
	}

	p.ntk = d.initNtk(nameId)

	if !p.skipSpaces() {
		return StatusFatal
	}
	if !p.isChar('(') {
		p.fail(ErrModuleSemi)
		return StatusFatal
	}
	if !p.readArguments() {
		return StatusFatal
	}
	p.cur++ // consume ')'
	if !p.skipSpaces() {
		return StatusFatal
	}

	for p.isChar(';') {
		p.cur++
		if !p.skipSpaces() {
			return StatusFatal
		}
		tok := p.readName()

		if tok == KeywordEndmodule {
			p.succeeded = append(p.succeeded, p.ntk.Name)
			d.finalizeNtk(p.ntk)
			p.ntk = nil
			return StatusOK
		}

		var ok bool
		switch tok {
		case KeywordInout:
			ok = p.readDeclaration(DirInout)
		case KeywordInput:
			ok = p.readDeclaration(DirInput)
		case KeywordOutput:
			ok = p.readDeclaration(DirOutput)
		case KeywordWire:
			ok = p.readDeclaration(DirWire)
		case KeywordReg, KeywordDefparam:
			ok = p.skipUntil(';')
		case KeywordAssign:
			ok = p.readAssign()
		default:
			if tok == 0 {
				ok = false
			} else {
				ok = p.readInstance(tok)
			}
		}

		if !ok {
			if !p.skipUntilWord("endmodule") {
				p.fail(ErrEndmodule)
				return StatusFatal
			}
			p.failed = append(p.failed, p.ntk.Name)
			p.ntk.truncate(d.blackboxOnRecover())
			d.finalizeNtk(p.ntk)
			p.ntk = nil
			p.fUsingTemp2 = false
			p.clearError()
			return StatusRecovered
		}
		if !p.skipSpaces() {
			return StatusFatal
		}
	}
	p.fail(ErrModuleSemi)
	return StatusFatal
}
