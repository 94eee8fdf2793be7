package vlparse

import "strings"

// Prs is the parser's entire mutable state: a cursor over a read-only
// byte buffer, the shared Interner, the module currently being built
// (nil between modules), a handful of reusable scratch buffers, and
// the bookkeeping lists the module parser appends a name to on every
// terminal outcome.
//
// Reentrancy on the same Prs is forbidden; parsing two files
// concurrently requires two Prs values over two Interners.
type Prs struct {
	buf   []byte
	cur   int
	limit int

	it  *Interner
	ntk *Ntk // nil between modules

	err *ParseError

	// Scratch buffers, cleared at the start of each use. vTemp2 is
	// additionally guarded by fUsingTemp2 because the grammar
	// refuses nested `{ ... }` rather than give every nesting depth
	// its own buffer.
	vTemp       []Pin
	vTemp2      []SigRef
	vCover      []byte
	fUsingTemp2 bool

	succeeded []NameId
	known     []NameId
	failed    []NameId
}

// NewPrs creates a parser over input, sharing it (the Interner) with
// every Ntk it goes on to build.
func NewPrs(input []byte, it *Interner) *Prs {
	return &Prs{
		buf:   input,
		cur:   0,
		limit: len(input),
		it:    it,
	}
}

// Err returns the single pending error, or nil if none is set.
func (p *Prs) Err() *ParseError { return p.err }

// Succeeded, Known, and Failed return the name lists spec.md's Prs
// struct keeps: modules that finished cleanly at "endmodule", modules
// whose name matched a primitive prefix and were elided whole, and
// modules that hit a local recoverable error and were finalized as
// blackbox stubs.
func (p *Prs) Succeeded() []NameId { return p.succeeded }
func (p *Prs) Known() []NameId     { return p.known }
func (p *Prs) Failed() []NameId    { return p.failed }

func (p *Prs) atEOF() bool { return p.cur >= p.limit }

func (p *Prs) peek() byte {
	if p.atEOF() {
		return 0
	}
	return p.buf[p.cur]
}

func (p *Prs) peekAt(off int) byte {
	i := p.cur + off
	if i < 0 || i >= p.limit {
		return 0
	}
	return p.buf[i]
}

func (p *Prs) isChar(c byte) bool { return p.peek() == c }

// skipComments advances past exactly one comment if the cursor sits
// at the start of one: "//" to the next '\n' (inclusive), or "/*" to
// the next "*/" (inclusive). It reports whether it consumed anything;
// an unterminated block comment runs the cursor to EOF, which the
// caller's surrounding skipSpaces loop turns into ErrEOF.
func (p *Prs) skipComments() bool {
	if !p.isChar('/') {
		return false
	}
	if p.peekAt(1) == '/' {
		for p.cur += 2; p.cur < p.limit; p.cur++ {
			if p.isChar('\n') {
				p.cur++
				return true
			}
		}
		return true
	}
	if p.peekAt(1) == '*' {
		for p.cur += 2; p.cur < p.limit; p.cur++ {
			if p.isChar('*') && p.peekAt(1) == '/' {
				p.cur += 2
				return true
			}
		}
		return true
	}
	return false
}

// skipEscapedName advances past an escaped identifier ("\" up to the
// terminating space) and past that space too, if the cursor sits at
// one.
func (p *Prs) skipEscapedName() bool {
	if !p.isChar('\\') {
		return false
	}
	for p.cur++; p.cur < p.limit; p.cur++ {
		if p.isChar(' ') {
			p.cur++
			return true
		}
	}
	return true
}

// skipSpaces alternates whitespace runs with comments until a
// non-space, non-comment byte is under the cursor. Reaching EOF
// inside this loop is the one place ErrEOF is raised.
func (p *Prs) skipSpaces() bool {
	for p.cur < p.limit {
		for p.cur < p.limit && isSpace(p.peek()) {
			p.cur++
		}
		if p.cur >= p.limit {
			return p.fail(ErrEOF)
		}
		if !p.skipComments() {
			return true
		}
	}
	return p.fail(ErrEOF)
}

// skipUntil consumes bytes, honoring comments and escaped names, until
// the cursor sits at c. Returns false (EOF, no error recorded) if c is
// never found -- callers decide whether that is itself an error.
func (p *Prs) skipUntil(c byte) bool {
	for p.cur < p.limit {
		if p.isChar(c) {
			return true
		}
		if p.skipComments() {
			continue
		}
		if p.skipEscapedName() {
			continue
		}
		p.cur++
	}
	return false
}

// skipUntilWord does a raw substring search from the cursor for w; on
// a match it positions the cursor just past w and returns true. Used
// only for error recovery, to resynchronize at the next "endmodule".
func (p *Prs) skipUntilWord(w string) bool {
	idx := strings.Index(string(p.buf[p.cur:]), w)
	if idx < 0 {
		p.cur = p.limit
		return false
	}
	p.cur += idx + len(w)
	return true
}
