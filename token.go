package vlparse

// readName reads one identifier under the cursor: an escaped name
// ("\" up to the terminating space, space excluded) or a simple name
// (identifier-start followed by identifier-cont bytes). Returns
// 0 if no identifier starts here -- that is not itself an
// error, since callers use a zero result to mean "not an identifier
// token" in several contexts (e.g. probing for "endmodule").
func (p *Prs) readName() NameId {
	start := p.cur
	switch {
	case p.isChar('\\'):
		p.cur++
		start = p.cur
		for p.cur < p.limit && !p.isChar(' ') {
			p.cur++
		}
	case isIdentStart(p.peek()):
		p.cur++
		for p.cur < p.limit && isIdentCont(p.peek()) {
			p.cur++
		}
	default:
		return 0
	}
	return p.it.InternBytes(p.buf[start:p.cur])
}

// readConstant reads a sized literal constant: DIGITS ' (b|h|d) DIGITS,
// where the digit alphabet after the radix letter depends on the
// radix. Precondition: the cursor is at a decimal digit.
func (p *Prs) readConstant() (NameId, bool) {
	start := p.cur
	for p.cur < p.limit && isDigit(p.peek()) {
		p.cur++
	}
	if !p.isChar('\'') {
		return 0, p.fail(ErrReadConstant)
	}
	p.cur++
	switch p.peek() {
	case 'b':
		p.cur++
		for p.cur < p.limit && isDigitB(p.peek()) {
			p.cur++
		}
	case 'h':
		p.cur++
		for p.cur < p.limit && isDigitH(p.peek()) {
			p.cur++
		}
	case 'd':
		p.cur++
		for p.cur < p.limit && isDigit(p.peek()) {
			p.cur++
		}
	default:
		return 0, p.fail(ErrReadRadix)
	}
	return p.it.InternBytes(p.buf[start:p.cur]), true
}

// readRange reads a bracketed "[hi]" or "[hi:lo]" range, tolerating
// (but not requiring) whitespace around the digits and colon, and
// interns the whitespace-collapsed rebuild so "[ 7 : 0 ]" and "[7:0]"
// produce the same NameId. Precondition: the cursor is at '['.
func (p *Prs) readRange() (NameId, bool) {
	p.vCover = p.vCover[:0]
	p.vCover = append(p.vCover, p.peek())
	p.cur++
	if !p.skipSpaces() {
		return 0, false
	}
	if !isDigit(p.peek()) {
		return 0, p.fail(ErrRangeDigit)
	}
	for p.cur < p.limit && isDigit(p.peek()) {
		p.vCover = append(p.vCover, p.peek())
		p.cur++
	}
	if !p.skipSpaces() {
		return 0, false
	}
	if p.isChar(':') {
		p.vCover = append(p.vCover, ':')
		p.cur++
		if !p.skipSpaces() {
			return 0, false
		}
		if !isDigit(p.peek()) {
			return 0, p.fail(ErrRangeDigit)
		}
		for p.cur < p.limit && isDigit(p.peek()) {
			p.vCover = append(p.vCover, p.peek())
			p.cur++
		}
		if !p.skipSpaces() {
			return 0, false
		}
	}
	if !p.isChar(']') {
		return 0, p.fail(ErrRangeClose)
	}
	p.vCover = append(p.vCover, ']')
	p.cur++
	return p.it.InternBytes(p.vCover), true
}

// readConcat reads "{ s1, s2, ... }" via readSignalList and collapses
// a one-element result to that element's own SigRef rather than
// materializing a Concat of one. Precondition: the cursor is at '{'.
func (p *Prs) readConcat() (SigRef, bool) {
	p.cur++ // consume '{'
	items, ok := p.readSignalList(p.vTemp2, '}')
	if !ok {
		return 0, false
	}
	p.vTemp2 = items[:0]
	p.cur++ // readSignalList only returns ok once the cursor sits at '}'
	if len(items) == 1 {
		return items[0], true
	}
	idx := p.ntk.AddConcat(items)
	return MakeSigRef(idx, SigConcat), true
}

// readSignal dispatches on the next byte: a digit starts a sized
// constant, '{' starts a (non-nested) concatenation, anything else is
// an identifier optionally followed by a bracketed range.
func (p *Prs) readSignal() (SigRef, bool) {
	if !p.skipSpaces() {
		return 0, false
	}
	if isDigit(p.peek()) {
		id, ok := p.readConstant()
		if !ok {
			return 0, false
		}
		if !p.skipSpaces() {
			return 0, false
		}
		return MakeSigRef(int(id), SigConst), true
	}
	if p.isChar('{') {
		if p.fUsingTemp2 {
			return 0, p.fail(ErrNestedConcat)
		}
		p.fUsingTemp2 = true
		ref, ok := p.readConcat()
		p.fUsingTemp2 = false
		if !ok {
			return 0, false
		}
		if !p.skipSpaces() {
			return 0, false
		}
		return ref, true
	}
	name := p.readName()
	if name == 0 {
		return 0, p.fail(ErrSignalInList)
	}
	if !p.skipSpaces() {
		return 0, false
	}
	if p.isChar('[') {
		rangeId, ok := p.readRange()
		if !ok {
			return 0, false
		}
		if !p.skipSpaces() {
			return 0, false
		}
		idx := p.ntk.AddSlice(name, rangeId)
		return MakeSigRef(idx, SigSlice), true
	}
	return MakeSigRef(int(name), SigName), true
}

// readSignalList repeats readSignal, separated by ',', until last is
// seen. scratch is reused (cleared first) as the destination, then
// returned so the caller can keep or discard it without an extra
// allocation round-trip. Used by readConcat, which just wants the
// bare SigRefs -- positional instantiations want formal/actual pairs
// instead and go through readPositionalPins.
func (p *Prs) readSignalList(scratch []SigRef, last byte) ([]SigRef, bool) {
	items := scratch[:0]
	for {
		sig, ok := p.readSignal()
		if !ok {
			return nil, false
		}
		items = append(items, sig)
		if p.isChar(last) {
			break
		}
		if !p.isChar(',') {
			return nil, p.fail(ErrCommaInList)
		}
		p.cur++
	}
	return items, true
}

// readPositionalPins reads a comma-separated signal list terminated by
// last, returning each signal wrapped as a positional Pin
// (formal=0, actual=signal) -- the encoding plain instantiations and
// assign-statements both use for their box's pins.
func (p *Prs) readPositionalPins(last byte) ([]Pin, bool) {
	p.vTemp = p.vTemp[:0]
	for {
		sig, ok := p.readSignal()
		if !ok {
			return nil, false
		}
		p.vTemp = append(p.vTemp, Pin{Formal: 0, Actual: sig})
		if p.isChar(last) {
			break
		}
		if !p.isChar(',') {
			return nil, p.fail(ErrCommaInList)
		}
		p.cur++
	}
	return p.vTemp, true
}

// readNameList reads a comma-separated list of plain identifiers
// terminated by last -- used by the declaration parser, which does
// not deal in signal expressions at all.
func (p *Prs) readNameList(last byte) ([]NameId, bool) {
	var names []NameId
	for {
		name := p.readName()
		if name == 0 {
			return nil, p.fail(ErrNameInList)
		}
		names = append(names, name)
		if p.isChar(last) {
			break
		}
		if !p.isChar(',') {
			return nil, p.fail(ErrCommaInList)
		}
		p.cur++
		if !p.skipSpaces() {
			return nil, false
		}
	}
	return names, true
}

// readNamedPins reads a ".formal(actual)"-list terminated by ')'.
// Precondition: the cursor is at '.'.
func (p *Prs) readNamedPins() ([]Pin, bool) {
	var pins []Pin
	for p.isChar('.') {
		p.cur++
		formal := p.readName()
		if formal == 0 {
			return nil, p.fail(ErrNameInList)
		}
		if !p.isChar('(') {
			return nil, p.fail(ErrInstanceParen)
		}
		p.cur++
		if !p.skipSpaces() {
			return nil, false
		}
		actual, ok := p.readSignal()
		if !ok {
			return nil, false
		}
		if !p.isChar(')') {
			return nil, p.fail(ErrInstanceParen)
		}
		p.cur++
		pins = append(pins, Pin{Formal: formal, Actual: actual})
		if !p.skipSpaces() {
			return nil, false
		}
		if p.isChar(')') {
			break
		}
		if !p.isChar(',') {
			return nil, p.fail(ErrCommaInList)
		}
		p.cur++
		if !p.skipSpaces() {
			return nil, false
		}
	}
	return pins, true
}
