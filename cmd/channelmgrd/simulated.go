package main

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/thread-mesh/channelmgr/channelmgr"
)

// This file provides simulated collaborators so cmd/channelmgrd can run and
// be observed end-to-end without a real 802.15.4 radio, channel monitor, or
// pending-dataset transport, all of which are out of scope per spec.md §1.
// The shape follows ap.wifid's apTrack/congestionMap simulation of nearby-AP
// occupancy, simplified to a static-with-jitter table.

type simMac struct {
	channel       uint8
	supportedMask channelmgr.ChannelMask
	ccaRate       uint16
}

func (m *simMac) CurrentPanChannel() uint8                     { return m.channel }
func (m *simMac) SupportedChannelMask() channelmgr.ChannelMask { return m.supportedMask }
func (m *simMac) CCAFailureRate() uint16                       { return m.ccaRate }

type simMonitor struct {
	samples   uint32
	occupancy map[uint8]uint16
}

func newSimMonitor(seed int64) *simMonitor {
	r := rand.New(rand.NewSource(seed))
	occ := make(map[uint8]uint16, channelmgr.MaxChannel-channelmgr.MinChannel+1)
	for c := channelmgr.MinChannel; c <= channelmgr.MaxChannel; c++ {
		occ[uint8(c)] = uint16(r.Intn(0x0500))
	}
	return &simMonitor{samples: channelmgr.MinSamples + 1, occupancy: occ}
}

func (m *simMonitor) SampleCount() uint32 { return m.samples }

func (m *simMonitor) ChannelOccupancy(channel uint8) uint16 {
	return m.occupancy[channel]
}

func (m *simMonitor) FindBestChannels(mask channelmgr.ChannelMask) (channelmgr.ChannelMask, uint16) {
	var best channelmgr.ChannelMask
	bestOcc := uint16(0xffff)
	for _, c := range mask.Channels() {
		occ := m.occupancy[c]
		switch {
		case occ < bestOcc:
			bestOcc = occ
			best = channelmgr.NewChannelMask(c)
		case occ == bestOcc:
			best = best.Add(c)
		}
	}
	return best, bestOcc
}

// simUpdater simulates a pending-dataset exchange completing after a fixed
// simulated network delay. Completions are delivered on a channel so the
// host loop can dispatch them serially, as the real collaborator's callback
// contract requires.
type simUpdater struct {
	log         *zap.SugaredLogger
	completions chan func()
	settle      time.Duration
}

func newSimUpdater(log *zap.SugaredLogger, settle time.Duration) *simUpdater {
	return &simUpdater{
		log:         log,
		completions: make(chan func(), 1),
		settle:      settle,
	}
}

func (u *simUpdater) RequestUpdate(dataset channelmgr.DatasetInfo, done channelmgr.UpdateDoneFunc, _ time.Duration) channelmgr.UpdateResult {
	u.log.Infow("simulated dataset update requested",
		"channel", dataset.Channel, "delay", dataset.Delay)

	time.AfterFunc(u.settle, func() {
		select {
		case u.completions <- func() { done(channelmgr.UpdateOK) }:
		default:
		}
	})
	return channelmgr.UpdateOK
}

func (u *simUpdater) CancelUpdate() {
	u.log.Infow("simulated dataset update canceled")
	// Best-effort: a completion already scheduled on u.completions may
	// still be delivered, exactly as spec.md §5 allows.
}

type simNotifier struct {
	log *zap.SugaredLogger
}

func (n *simNotifier) Signal(event channelmgr.NotifierEvent) {
	n.log.Infow("notifier signal", "event", event)
}

type simRandom struct {
	r *rand.Rand
}

func newSimRandom(seed int64) *simRandom {
	return &simRandom{r: rand.New(rand.NewSource(seed))}
}

func (s *simRandom) UniformU32InRange(lo, hi uint32) uint32 {
	if hi <= lo {
		return lo
	}
	return lo + uint32(s.r.Int63n(int64(hi-lo)))
}

type simMle struct {
	disabled bool
}

func (m *simMle) IsDisabled() bool { return m.disabled }
