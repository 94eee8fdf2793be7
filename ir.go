package vlparse

// SigTag is the 2-bit discriminator packed into the low bits of a
// SigRef.
type SigTag uint32

const (
	SigName SigTag = iota
	SigSlice
	SigConst
	SigConcat
)

func (t SigTag) String() string {
	switch t {
	case SigName:
		return "name"
	case SigSlice:
		return "slice"
	case SigConst:
		return "const"
	case SigConcat:
		return "concat"
	default:
		return "unknown"
	}
}

// SigRef is a tagged 32-bit reference to a signal expression: a plain
// name, a bracketed slice, a sized constant, or a concatenation.
// Consumers decode the tag before touching the payload: for SigName
// and SigConst the payload IS a NameId; for SigSlice and SigConcat it
// is an index into the owning Ntk's Slices/Concats table.
type SigRef uint32

// MakeSigRef packs a payload and a tag into a SigRef.
func MakeSigRef(payload int, tag SigTag) SigRef {
	return SigRef(uint32(payload)<<2 | uint32(tag&0x3))
}

func (s SigRef) Tag() SigTag { return SigTag(s & 0x3) }

func (s SigRef) Payload() int { return int(s >> 2) }

// NameId treats the payload as a NameId; valid only when Tag() is
// SigName or SigConst.
func (s SigRef) NameId() NameId { return NameId(s.Payload()) }

// Index treats the payload as a table index; valid only when Tag()
// is SigSlice or SigConcat.
func (s SigRef) Index() int { return s.Payload() }

// Slice is a bracketed range applied to a base signal: base[rangeText].
// rangeText is the interned, whitespace-normalized literal text of the
// bracket, e.g. "[7:0]".
type Slice struct {
	Base      NameId
	RangeText NameId
}

// Concat is an ordered list of signal references inside `{ ... }`.
// A Concat of exactly one element is never materialized -- the
// concatenation reader collapses it to the singleton's own SigRef.
type Concat struct {
	Items []SigRef
}

// Pin is one formal/actual binding of a box. Formal is 0 for a
// positional pin ("bind by position"); otherwise it names the port
// being bound.
type Pin struct {
	Formal NameId
	Actual SigRef
}

// BoxKind identifies a box's operation: either one of the fixed
// assign-statement primitives (AND, OR, ...) or an index into the
// primitive prefix table resolved from an instantiated type name. Both
// draw from the same ordered table (see primitives.go), exactly as
// the source material does by giving assign operators and named
// elementary gates overlapping enum values.
type BoxKind int

// Box is one continuous assignment or module instantiation, lowered
// to a fixed operation over positional or named pins.
//
// Kind is 0 for a named-pin instantiation of a user submodule -- the
// accepted grammar never resolves such an instance to a primitive, so
// there is nothing to prefix-match against. TypeName then carries the
// instantiated type's own interned name, for a later elaborator to
// resolve against the design's module table. The source material
// reuses one int field for both a small primitive-table index and a
// raw NameId, relying on the two numbering spaces never being
// compared; TypeName avoids that overlap instead of replicating it.
type Box struct {
	Kind         BoxKind
	InstanceName NameId // 0 when the instantiation omitted a name
	TypeName     NameId // set only when Kind == 0 (submodule instance)
	Pins         []Pin
}

// Direction selects one of the four parallel port/wire buckets a Ntk
// keeps. Inout/Input/Output buckets are filled by the header argument
// parser and by explicit declarations; Wire is filled only by
// declarations.
type Direction int

const (
	DirInout Direction = iota
	DirInput
	DirOutput
	DirWire
)

// Ntk is the per-module intermediate representation: an interned
// name, the header's ordered port list, four parallel (names, ranges)
// buckets classifying those ports (plus internal wires), and the
// slice/concat/box tables built while parsing the module body.
//
// Every reference inside a Ntk is a plain integer -- a NameId, a
// SigRef, or a table index -- so the whole structure is pointer-free
// and trivially walkable by a separate writer/elaborator.
type Ntk struct {
	Name  NameId
	Ports []NameId

	Inouts, InoutsR   []NameId
	Inputs, InputsR   []NameId
	Outputs, OutputsR []NameId
	Wires, WiresR     []NameId

	Slices  []Slice
	Concats []Concat
	Boxes   []Box

	// Blackbox is set when this Ntk was finalized by the module
	// parser's recovery path rather than by reaching "endmodule"
	// cleanly: Slices/Concats/Boxes/Wires are always empty in that
	// case; Ports/Inouts/Inputs/Outputs keep what was parsed before
	// the failure unless "driver.blackbox_on_recover" is false, in
	// which case they are empty too.
	Blackbox bool
}

// buckets returns pointers to the (names, ranges) slice pair for d,
// so declaration and header-argument parsing can push into the right
// bucket without a type switch at every call site.
func (n *Ntk) buckets(d Direction) (names *[]NameId, ranges *[]NameId) {
	switch d {
	case DirInout:
		return &n.Inouts, &n.InoutsR
	case DirInput:
		return &n.Inputs, &n.InputsR
	case DirOutput:
		return &n.Outputs, &n.OutputsR
	default:
		return &n.Wires, &n.WiresR
	}
}

// AddSlice appends a slice record and returns its table index.
func (n *Ntk) AddSlice(base, rangeText NameId) int {
	n.Slices = append(n.Slices, Slice{Base: base, RangeText: rangeText})
	return len(n.Slices) - 1
}

// AddConcat appends a concat record and returns its table index.
// Callers are expected to have already handled the single-element
// collapse; AddConcat always materializes what it is given.
func (n *Ntk) AddConcat(items []SigRef) int {
	owned := make([]SigRef, len(items))
	copy(owned, items)
	n.Concats = append(n.Concats, Concat{Items: owned})
	return len(n.Concats) - 1
}

// AddBox appends a box in statement order and returns its index.
func (n *Ntk) AddBox(kind BoxKind, instanceName NameId, pins []Pin) int {
	return n.AddInstanceBox(kind, instanceName, 0, pins)
}

// AddInstanceBox is AddBox plus an explicit submodule type name, used
// for named-pin instantiations, which are never resolved to a
// primitive.
func (n *Ntk) AddInstanceBox(kind BoxKind, instanceName, typeName NameId, pins []Pin) int {
	owned := make([]Pin, len(pins))
	copy(owned, pins)
	n.Boxes = append(n.Boxes, Box{Kind: kind, InstanceName: instanceName, TypeName: typeName, Pins: owned})
	return len(n.Boxes) - 1
}

// truncate drops every table the module body built, finalizing the
// blackbox-stub shape the module parser's recovery path uses on a
// local parse failure. When keepPorts is true (the default,
// "driver.blackbox_on_recover"), the Ports list and the
// Inouts/Inputs/Outputs buckets survive as filled so far, whether
// from the header or from body declarations read before the failure;
// when false, the stub is emptied down to just its name.
func (n *Ntk) truncate(keepPorts bool) {
	n.Wires = nil
	n.WiresR = nil
	n.Slices = nil
	n.Concats = nil
	n.Boxes = nil
	n.Blackbox = true
	if !keepPorts {
		n.Ports = nil
		n.Inouts, n.InoutsR = nil, nil
		n.Inputs, n.InputsR = nil, nil
		n.Outputs, n.OutputsR = nil, nil
	}
}

// ModuleStatus classifies how a single design-level module read
// terminated; values line up with spec.md's 0..4 return codes.
type ModuleStatus int

const (
	StatusEOF       ModuleStatus = 0
	StatusOK        ModuleStatus = 1
	StatusPrimitive ModuleStatus = 2
	StatusRecovered ModuleStatus = 3
	StatusFatal     ModuleStatus = 4
)

// Design owns every module produced by a parse and the shared
// Interner; the three classification lists (succeeded/known/failed)
// live on the Prs. The Interner outlives the Prs that fed it;
// Design.Modules holds, in source order, every module that got a Ntk
// (succeeded or recovered-as-blackbox) -- primitive modules get no
// Ntk and are recorded by name only, in the Prs's known list, since
// their bodies are never read.
//
// Config is optional: a nil Config makes the module parser's recovery
// path behave as if "driver.blackbox_on_recover" were true, which is
// also that setting's default in NewConfig.
type Design struct {
	Interner *Interner
	Config   *Config
	Modules  []*Ntk
}

// blackboxOnRecover reports the effective "driver.blackbox_on_recover"
// setting, defaulting to true when d.Config is nil.
func (d *Design) blackboxOnRecover() bool {
	if d.Config == nil {
		return true
	}
	return d.Config.GetBool("driver.blackbox_on_recover")
}

// initNtk starts a fresh module IR for name; the caller (the module
// parser) holds it as its in-progress module. It is not appended to
// Modules until finalizeNtk runs.
func (d *Design) initNtk(name NameId) *Ntk {
	return &Ntk{Name: name}
}

// finalizeNtk appends ntk to the design's module list in the order it
// was parsed.
func (d *Design) finalizeNtk(ntk *Ntk) {
	d.Modules = append(d.Modules, ntk)
}
