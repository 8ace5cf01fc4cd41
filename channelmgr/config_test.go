package channelmgr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsEmptyPathIsNotAnError(t *testing.T) {
	d, err := LoadDefaults("")
	require.NoError(t, err)
	assert.Equal(t, Defaults{}, d)
}

func TestLoadDefaultsMissingFileIsNotAnError(t *testing.T) {
	d, err := LoadDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults{}, d)
}

func TestLoadDefaultsParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")
	contents := `
delay_seconds: 300
auto_interval_seconds: 3600
auto_enabled: true
supported_channels: [11, 15, 20]
favored_channels: [20]
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	d, err := LoadDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, uint16(300), d.DelaySeconds)
	assert.Equal(t, uint32(3600), d.AutoIntervalS)
	assert.True(t, d.AutoEnabled)
	assert.Equal(t, []uint8{11, 15, 20}, d.SupportedChans)
	assert.Equal(t, []uint8{20}, d.FavoredChans)
}

func TestLoadDefaultsRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := LoadDefaults(path)
	assert.Error(t, err)
}

func TestDefaultsApplyIgnoresBelowMinimumDelay(t *testing.T) {
	c := newConfig()
	before := c.delay

	d := Defaults{DelaySeconds: MinDelaySeconds - 1}
	d.apply(&c)

	assert.Equal(t, before, c.delay)
}

func TestDefaultsApplyIgnoresOutOfRangeInterval(t *testing.T) {
	c := newConfig()
	before := c.autoInterval

	d := Defaults{AutoIntervalS: MaxTimerSeconds + 1}
	d.apply(&c)

	assert.Equal(t, before, c.autoInterval)
}
