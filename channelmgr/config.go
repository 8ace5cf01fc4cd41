package channelmgr

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// config holds the Manager's runtime-tunable configuration (spec.md §3).
// It is intentionally unexported: all mutation goes through the Manager's
// setters so that mask intersection against the MAC's supported mask, and
// argument validation, always happen.
type config struct {
	supportedMask ChannelMask
	favoredMask   ChannelMask
	delay         time.Duration
	autoInterval  time.Duration
	autoEnabled   bool
}

func newConfig() config {
	return config{
		delay:        MinDelaySeconds * time.Second,
		autoInterval: DefaultAutoSelectIntervalSeconds * time.Second,
		autoEnabled:  false,
	}
}

// Defaults is the subset of configuration a host application may seed from
// an on-disk file at startup, in the style of the teacher's apcfg-backed
// property defaults. Any field left zero keeps the package's built-in
// default.
type Defaults struct {
	DelaySeconds   uint16  `yaml:"delay_seconds"`
	AutoIntervalS  uint32  `yaml:"auto_interval_seconds"`
	AutoEnabled    bool    `yaml:"auto_enabled"`
	SupportedChans []uint8 `yaml:"supported_channels"`
	FavoredChans   []uint8 `yaml:"favored_channels"`
}

// LoadDefaults reads a YAML defaults file. A missing path is not an error:
// it simply yields zero-value Defaults, so callers can unconditionally pass
// the result to NewManager.
func LoadDefaults(path string) (Defaults, error) {
	var d Defaults
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, errors.Wrapf(err, "reading channel manager defaults %q", path)
	}

	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, errors.Wrapf(err, "parsing channel manager defaults %q", path)
	}
	return d, nil
}

func (d Defaults) apply(c *config) {
	if d.DelaySeconds >= MinDelaySeconds {
		c.delay = time.Duration(d.DelaySeconds) * time.Second
	}
	if d.AutoIntervalS >= 1 && d.AutoIntervalS <= MaxTimerSeconds {
		c.autoInterval = time.Duration(d.AutoIntervalS) * time.Second
	}
	c.autoEnabled = d.AutoEnabled
	if len(d.SupportedChans) > 0 {
		c.supportedMask = NewChannelMask(d.SupportedChans...)
	}
	if len(d.FavoredChans) > 0 {
		c.favoredMask = NewChannelMask(d.FavoredChans...)
	}
}
