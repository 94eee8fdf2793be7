package vlparse

// NameId is a positive, stable integer handle for an interned byte
// range. Zero means "absent" -- a signal, port, or box field set to
// NameId 0 carries no name.
//
// IDs are assigned in request order and never change once minted, so a
// NameId can be cached across calls into the same Interner for the
// lifetime of a Design.
type NameId int32

// Keyword IDs occupy the first reserved slots of every Interner, in
// exactly this order, so a single identifier read doubles as keyword
// recognition by ID comparison rather than string comparison.
const (
	KeywordModule NameId = iota + 1
	KeywordInout
	KeywordInput
	KeywordOutput
	KeywordWire
	KeywordAssign
	KeywordReg
	KeywordAlways
	KeywordDefparam
	KeywordBegin
	KeywordEnd
	KeywordEndmodule
)

var keywordText = [...]string{
	KeywordModule:    "module",
	KeywordInout:     "inout",
	KeywordInput:     "input",
	KeywordOutput:    "output",
	KeywordWire:      "wire",
	KeywordAssign:    "assign",
	KeywordReg:       "reg",
	KeywordAlways:    "always",
	KeywordDefparam:  "defparam",
	KeywordBegin:     "begin",
	KeywordEnd:       "end",
	KeywordEndmodule: "endmodule",
}

// Interner is an append-only string table assigning stable positive
// integer IDs to byte ranges. It is shared by a Design and the Prs
// that builds it, and must outlive both.
//
// The shape mirrors the teacher's two interning idioms merged into
// one: tree.go's append-only strs table, and Database.InternFileID's
// lazily-assigned, check-then-insert monotone ID map.
type Interner struct {
	strs []string
	ids  map[string]NameId
}

// NewInterner creates an Interner with the keyword table already
// loaded at IDs 1..12, as required by the module parser, which tells
// keywords apart from user identifiers by ID rather than by string
// comparison.
func NewInterner() *Interner {
	it := &Interner{
		strs: make([]string, 1, 256), // index 0 is the "absent" sentinel
		ids:  make(map[string]NameId, 256),
	}
	for i := 1; i < len(keywordText); i++ {
		if got := it.Intern(keywordText[i]); got != NameId(i) {
			panic("vlparse: keyword table order drifted from NameId assignment")
		}
	}
	return it
}

// Intern returns the NameId for s, minting a new one if s has never
// been seen before. Interning the same string twice always returns
// the same ID.
func (it *Interner) Intern(s string) NameId {
	if id, ok := it.ids[s]; ok {
		return id
	}
	id := NameId(len(it.strs))
	it.strs = append(it.strs, s)
	it.ids[s] = id
	return id
}

// InternBytes interns a byte slice without forcing the caller to
// allocate a string up front; the map lookup on a []byte-derived key
// is free of allocation when the key is already present.
func (it *Interner) InternBytes(b []byte) NameId {
	if id, ok := it.ids[string(b)]; ok {
		return id
	}
	return it.Intern(string(b))
}

// String returns the text behind id, or "" for NameId 0 or any ID
// this Interner never minted.
func (it *Interner) String(id NameId) string {
	if id <= 0 || int(id) >= len(it.strs) {
		return ""
	}
	return it.strs[id]
}

// Len reports how many IDs (including the absent sentinel) have been
// assigned so far.
func (it *Interner) Len() int {
	return len(it.strs)
}
