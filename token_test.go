package vlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrs(input string) (*Prs, *Interner) {
	it := NewInterner()
	return NewPrs([]byte(input), it), it
}

func TestReadNameSimple(t *testing.T) {
	p, it := newTestPrs("foo_bar123 rest")
	id := p.readName()
	require.NotZero(t, id)
	assert.Equal(t, "foo_bar123", it.String(id))
	assert.Equal(t, ' ', rune(p.peek()))
}

func TestReadNameEscaped(t *testing.T) {
	p, it := newTestPrs(`\a.b[0] rest`)
	id := p.readName()
	require.NotZero(t, id)
	assert.Equal(t, "a.b[0]", it.String(id))
	assert.Equal(t, ' ', rune(p.peek()))
}

func TestReadNameNoIdentifierHere(t *testing.T) {
	p, _ := newTestPrs("123abc")
	id := p.readName()
	assert.Zero(t, id)
}

func TestReadConstantBinaryWithX(t *testing.T) {
	p, it := newTestPrs("1'bx;")
	id, ok := p.readConstant()
	require.True(t, ok)
	assert.Equal(t, "1'bx", it.String(id))
}

func TestReadConstantHexWithZ(t *testing.T) {
	p, it := newTestPrs("4'hZ;")
	id, ok := p.readConstant()
	require.True(t, ok)
	assert.Equal(t, "4'hZ", it.String(id))
}

func TestReadConstantMissingRadixFails(t *testing.T) {
	p, _ := newTestPrs("12;")
	_, ok := p.readConstant()
	assert.False(t, ok)
	require.NotNil(t, p.Err())
	assert.Equal(t, ErrReadConstant, p.Err().Kind)
}

func TestReadRangeCollapsesWhitespace(t *testing.T) {
	p, it := newTestPrs("[ 7 : 0 ] rest")
	id, ok := p.readRange()
	require.True(t, ok)
	assert.Equal(t, "[7:0]", it.String(id))
}

func TestReadRangeCompact(t *testing.T) {
	p, it := newTestPrs("[7:0]")
	id, ok := p.readRange()
	require.True(t, ok)
	assert.Equal(t, "[7:0]", it.String(id))
}

func TestReadRangeAndCompactRangeInternToSameId(t *testing.T) {
	p1, it := newTestPrs("[ 3 : 0 ]")
	id1, ok := p1.readRange()
	require.True(t, ok)

	p2 := NewPrs([]byte("[3:0]"), it)
	id2, ok := p2.readRange()
	require.True(t, ok)

	assert.Equal(t, id1, id2)
}

func TestSkipCommentsLineComment(t *testing.T) {
	p, _ := newTestPrs("// a line comment\nrest")
	ok := p.skipSpaces()
	require.True(t, ok)
	assert.Equal(t, 'r', rune(p.peek()))
}

func TestSkipCommentsBlockComment(t *testing.T) {
	p, _ := newTestPrs("/* block */ rest")
	ok := p.skipSpaces()
	require.True(t, ok)
	assert.Equal(t, 'r', rune(p.peek()))
}

func TestLineCommentSwallowsBlockCommentStart(t *testing.T) {
	// A "/*" appearing after "//" on the same line is just text; the
	// line comment still ends at the next newline.
	p, _ := newTestPrs("// look /* not a real block start\nrest")
	ok := p.skipSpaces()
	require.True(t, ok)
	assert.Equal(t, 'r', rune(p.peek()))
}
