package vlparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDesignFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adder.v")
	src := []byte(`module m(a,b,y); input a,b; output y; assign y = a & b; endmodule`)
	require.NoError(t, os.WriteFile(path, src, 0644))

	cfg := NewConfig()
	cfg.SetBool("driver.mmap_input", false)

	d, err := ParseDesign(path, cfg)
	require.NoError(t, err)
	require.Len(t, d.Modules, 1)
	assert.Equal(t, "m", d.Interner.String(d.Modules[0].Name))
}

func TestParseDesignFatalPropagatesError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.v")
	require.NoError(t, os.WriteFile(path, []byte(`not a module at all`), 0644))

	cfg := NewConfig()
	cfg.SetBool("driver.mmap_input", false)

	_, err := ParseDesign(path, cfg)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrModuleKeyword, pe.Kind)
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.True(t, cfg.GetBool("driver.mmap_input"))
	assert.True(t, cfg.GetBool("driver.blackbox_on_recover"))
	assert.Equal(t, "info", cfg.GetString("driver.log_level"))
}

func TestConfigPanicsOnTypeMismatch(t *testing.T) {
	cfg := NewConfig()
	assert.Panics(t, func() {
		cfg.GetInt("driver.mmap_input")
	})
}

func TestConfigPanicsOnMissingKey(t *testing.T) {
	cfg := NewConfig()
	assert.Panics(t, func() {
		cfg.GetString("driver.does_not_exist")
	})
}
