package vlparse

// readDeclaration parses an inout/input/output/wire statement body:
// an optional leading "[hi:lo]" range, then a comma-separated name
// list terminated by ';'. Every name in the list shares the one
// range (0 for scalar) and is appended, in order, to the bucket
// matching dir. Precondition: the direction keyword itself has
// already been consumed.
func (p *Prs) readDeclaration(dir Direction) bool {
	if !p.skipSpaces() {
		return false
	}
	var rangeId NameId
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
	names, ok := p.readNameList(';')
	if !ok {
		return false
	}
	bucket, bucketR := p.ntk.buckets(dir)
	for _, name := range names {
		*bucket = append(*bucket, name)
		*bucketR = append(*bucketR, rangeId)
	}
	return true
}
