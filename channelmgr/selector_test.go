package channelmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() config {
	c := newConfig()
	c.supportedMask = AllChannelsMask()
	c.favoredMask = AllChannelsMask()
	return c
}

func TestSelectorTooFewSamples(t *testing.T) {
	s := &selector{rnd: &fakeRandom{}}
	monitor := newFakeMonitor(MinSamples)

	_, _, res := s.findBetterChannel(newTestConfig(), monitor)
	assert.Equal(t, InvalidState, res)
}

func TestSelectorNoCandidate(t *testing.T) {
	s := &selector{rnd: &fakeRandom{}}
	cfg := newTestConfig()
	cfg.supportedMask = 0
	cfg.favoredMask = 0
	monitor := newFakeMonitor(MinSamples + 1)

	_, _, res := s.findBetterChannel(cfg, monitor)
	assert.Equal(t, NotFound, res)
}

func TestSelectorPrefersFavoredWhenClose(t *testing.T) {
	s := &selector{rnd: &fakeRandom{}}
	cfg := newTestConfig()
	cfg.favoredMask = NewChannelMask(20)

	monitor := newFakeMonitor(MinSamples + 1)
	monitor.occupancy[20] = 0x0200 // favored, a bit worse
	monitor.occupancy[15] = 0x0100 // best overall, but not favored

	channel, occ, res := s.findBetterChannel(cfg, monitor)
	require.Equal(t, Ok, res)
	assert.Equal(t, uint8(20), channel)
	assert.Equal(t, uint16(0x0200), occ)
}

func TestSelectorSkipsFavoredWhenMuchWorse(t *testing.T) {
	s := &selector{rnd: &fakeRandom{}}
	cfg := newTestConfig()
	cfg.favoredMask = NewChannelMask(20)

	monitor := newFakeMonitor(MinSamples + 1)
	monitor.occupancy[20] = 0x0500 // favored, very congested
	monitor.occupancy[15] = 0x0100 // overall best, far cleaner

	channel, occ, res := s.findBetterChannel(cfg, monitor)
	require.Equal(t, Ok, res)
	assert.Equal(t, uint8(15), channel)
	assert.Equal(t, uint16(0x0100), occ)
}

func TestSelectChannelHonorsChangeThreshold(t *testing.T) {
	s := &selector{rnd: &fakeRandom{}}
	cfg := newTestConfig()

	mac := &fakeMac{channel: 11, supportedMask: AllChannelsMask()}
	monitor := newFakeMonitor(MinSamples + 1)
	monitor.occupancy[11] = 0x0200
	monitor.occupancy[15] = 0x0200 - (ThresholdToChangeChannel - 1)

	_, ok, res := s.selectChannel(cfg, mac, monitor, true)
	require.Equal(t, Ok, res)
	assert.False(t, ok, "improvement below threshold must not trigger a change")
}

func TestSelectChannelChangesWhenImprovementMeetsThreshold(t *testing.T) {
	s := &selector{rnd: &fakeRandom{}}
	cfg := newTestConfig()

	mac := &fakeMac{channel: 11, supportedMask: AllChannelsMask()}
	monitor := newFakeMonitor(MinSamples + 1)
	monitor.occupancy[11] = 0x0400
	monitor.occupancy[15] = 0x0100

	channel, ok, res := s.selectChannel(cfg, mac, monitor, true)
	require.Equal(t, Ok, res)
	require.True(t, ok)
	assert.Equal(t, uint8(15), channel)
}

func TestSelectChannelGatesOnCCAWhenNotSkipped(t *testing.T) {
	s := &selector{rnd: &fakeRandom{}}
	cfg := newTestConfig()

	mac := &fakeMac{channel: 11, supportedMask: AllChannelsMask(), ccaRate: 0}
	monitor := newFakeMonitor(MinSamples + 1)
	monitor.occupancy[11] = 0x0400
	monitor.occupancy[15] = 0x0100

	_, ok, res := s.selectChannel(cfg, mac, monitor, false)
	require.Equal(t, Ok, res)
	assert.False(t, ok, "low CCA failure rate should suppress the quality-checked path")
}

func TestSelectChannelNeverPicksUnsupportedChannel(t *testing.T) {
	s := &selector{rnd: &fakeRandom{}}
	cfg := newTestConfig()
	cfg.supportedMask = NewChannelMask(11, 15)
	cfg.favoredMask = NewChannelMask(11, 15)

	monitor := newFakeMonitor(MinSamples + 1)
	monitor.occupancy[11] = 0x0400
	monitor.occupancy[15] = 0x0100
	monitor.occupancy[20] = 0x0000 // best overall, but not supported

	channel, _, res := s.findBetterChannel(cfg, monitor)
	require.Equal(t, Ok, res)
	assert.True(t, cfg.supportedMask.Contains(channel))
}
