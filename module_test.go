package vlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseModules runs ReadModule to exhaustion (EOF or the first Fatal)
// and returns every status observed along the way, in order.
func parseModules(t *testing.T, src string) (*Design, *Interner, []ModuleStatus) {
	t.Helper()
	it := NewInterner()
	d := &Design{Interner: it}
	p := NewPrs([]byte(src), it)

	var statuses []ModuleStatus
	for {
		st := p.ReadModule(d)
		statuses = append(statuses, st)
		if st == StatusEOF || st == StatusFatal {
			break
		}
	}
	return d, it, statuses
}

func names(it *Interner, ids []NameId) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = it.String(id)
	}
	return out
}

func sigName(t *testing.T, it *Interner, s SigRef) string {
	t.Helper()
	require.Equal(t, SigName, s.Tag())
	return it.String(s.NameId())
}

func pinNames(t *testing.T, it *Interner, pins []Pin) []string {
	t.Helper()
	out := make([]string, len(pins))
	for i, pin := range pins {
		out[i] = sigName(t, it, pin.Actual)
	}
	return out
}

func TestScenarioAndGate(t *testing.T) {
	d, it, statuses := parseModules(t, `module m(a,b,y); input a,b; output y; assign y = a & b; endmodule`)

	require.Equal(t, []ModuleStatus{StatusOK, StatusEOF}, statuses)
	require.Len(t, d.Modules, 1)

	m := d.Modules[0]
	assert.Equal(t, "m", it.String(m.Name))
	assert.Equal(t, []string{"a", "b", "y"}, names(it, m.Ports))
	assert.Equal(t, []string{"a", "b"}, names(it, m.Inputs))
	assert.Equal(t, []string{"y"}, names(it, m.Outputs))

	require.Len(t, m.Boxes, 1)
	box := m.Boxes[0]
	assert.Equal(t, BoxAnd, box.Kind)
	assert.Equal(t, []string{"a", "b", "y"}, pinNames(t, it, box.Pins))
}

func TestScenarioInverterWithRanges(t *testing.T) {
	d, it, statuses := parseModules(t, `module m(a,b,y); input [3:0] a,b; output [3:0] y; assign y = ~a; endmodule`)

	require.Equal(t, []ModuleStatus{StatusOK, StatusEOF}, statuses)
	m := d.Modules[0]

	require.Len(t, m.InputsR, 2)
	rangeText := it.String(m.InputsR[0])
	assert.Equal(t, "[3:0]", rangeText)
	assert.Equal(t, rangeText, it.String(m.InputsR[1]))
	require.Len(t, m.OutputsR, 1)
	assert.Equal(t, "[3:0]", it.String(m.OutputsR[0]))

	require.Len(t, m.Boxes, 1)
	box := m.Boxes[0]
	assert.Equal(t, BoxInv, box.Kind)
	assert.Equal(t, []string{"a", "y"}, pinNames(t, it, box.Pins))
}

func TestScenarioMux(t *testing.T) {
	d, it, statuses := parseModules(t, `module m(s,a,b,y); input s,a,b; output y; assign y = s ? a : b; endmodule`)

	require.Equal(t, []ModuleStatus{StatusOK, StatusEOF}, statuses)
	m := d.Modules[0]
	require.Len(t, m.Boxes, 1)
	box := m.Boxes[0]
	assert.Equal(t, BoxMux, box.Kind)
	assert.Equal(t, []string{"s", "a", "b", "y"}, pinNames(t, it, box.Pins))
}

func TestScenarioGateInstances(t *testing.T) {
	src := `module m(a,b,y); input a,b; output y; wire w; and g1(w,a,b); buf g2(y,w); endmodule`
	d, it, statuses := parseModules(t, src)

	require.Equal(t, []ModuleStatus{StatusOK, StatusEOF}, statuses)
	m := d.Modules[0]
	require.Len(t, m.Boxes, 2)

	assert.Equal(t, BoxAnd, m.Boxes[0].Kind)
	assert.Equal(t, "g1", it.String(m.Boxes[0].InstanceName))

	assert.Equal(t, BoxBuf, m.Boxes[1].Kind)
	assert.Equal(t, "g2", it.String(m.Boxes[1].InstanceName))
}

func TestScenarioUnparseableBodyBecomesBlackbox(t *testing.T) {
	d, it, statuses := parseModules(t, `module m(a,y); input a; output y; always @* y = a; endmodule`)

	require.Equal(t, []ModuleStatus{StatusRecovered, StatusEOF}, statuses)
	require.Len(t, d.Modules, 1)

	m := d.Modules[0]
	assert.True(t, m.Blackbox)
	assert.Equal(t, []string{"a", "y"}, names(it, m.Ports))
	assert.Empty(t, m.Boxes)
}

func TestBlackboxOnRecoverFalseDropsPorts(t *testing.T) {
	it := NewInterner()
	cfg := NewConfig()
	cfg.SetBool("driver.blackbox_on_recover", false)
	d := &Design{Interner: it, Config: cfg}
	p := NewPrs([]byte(`module m(a,y); input a; output y; always @* y = a; endmodule`), it)

	require.Equal(t, StatusRecovered, p.ReadModule(d))
	require.Len(t, d.Modules, 1)

	m := d.Modules[0]
	assert.True(t, m.Blackbox)
	assert.Empty(t, m.Ports)
	assert.Empty(t, m.Inputs)
	assert.Empty(t, m.Outputs)
}

func TestScenarioKnownPrimitiveModuleIsSkipped(t *testing.T) {
	src := `module VERIFIC_add(a,b,y); input [7:0] a,b; output [7:0] y; /* body */ endmodule ` +
		`module m(a,b,y); input a,b; output y; assign y = a & b; endmodule`
	d, it, statuses := parseModules(t, src)

	require.Equal(t, []ModuleStatus{StatusPrimitive, StatusOK, StatusEOF}, statuses)
	require.Len(t, d.Modules, 1)
	assert.Equal(t, "m", it.String(d.Modules[0].Name))
}

func TestBoundaryEmptyPortList(t *testing.T) {
	_, _, statuses := parseModules(t, `module m(); endmodule`)
	require.Equal(t, []ModuleStatus{StatusOK, StatusEOF}, statuses)
}

func TestBoundaryAssignTrailingWhitespaceBeforeSemicolon(t *testing.T) {
	src := "module m(a,y); input a; output y; assign y = a   ; endmodule"
	d, _, statuses := parseModules(t, src)
	require.Equal(t, []ModuleStatus{StatusOK, StatusEOF}, statuses)
	require.Len(t, d.Modules[0].Boxes, 1)
	assert.Equal(t, BoxBuf, d.Modules[0].Boxes[0].Kind)
}

func TestBoundaryEscapedIdentifierInPortList(t *testing.T) {
	src := `module m(\a.b , y); output y; endmodule`
	d, it, statuses := parseModules(t, src)
	require.Equal(t, []ModuleStatus{StatusOK, StatusEOF}, statuses)
	assert.Equal(t, []string{"a.b", "y"}, names(it, d.Modules[0].Ports))
}

func TestBoundaryConstantsAcceptUnknownAndHighZ(t *testing.T) {
	p, it := newTestPrs("1'bx")
	id, ok := p.readConstant()
	require.True(t, ok)
	assert.Equal(t, "1'bx", it.String(id))

	p2, it2 := newTestPrs("4'hZ")
	id2, ok := p2.readConstant()
	require.True(t, ok)
	assert.Equal(t, "4'hZ", it2.String(id2))
}
