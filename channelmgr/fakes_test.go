package channelmgr

import "time"

// fakeMac is a minimal, test-only Mac implementation.
type fakeMac struct {
	channel       uint8
	supportedMask ChannelMask
	ccaRate       uint16
}

func (f *fakeMac) CurrentPanChannel() uint8         { return f.channel }
func (f *fakeMac) SupportedChannelMask() ChannelMask { return f.supportedMask }
func (f *fakeMac) CCAFailureRate() uint16           { return f.ccaRate }

// fakeMonitor is a test-only ChannelMonitor backed by an explicit
// per-channel occupancy table.
type fakeMonitor struct {
	samples   uint32
	occupancy map[uint8]uint16
}

func newFakeMonitor(samples uint32) *fakeMonitor {
	occ := make(map[uint8]uint16, MaxChannel-MinChannel+1)
	for c := MinChannel; c <= MaxChannel; c++ {
		occ[uint8(c)] = 0xffff
	}
	return &fakeMonitor{samples: samples, occupancy: occ}
}

func (f *fakeMonitor) SampleCount() uint32 { return f.samples }

func (f *fakeMonitor) ChannelOccupancy(channel uint8) uint16 {
	return f.occupancy[channel]
}

func (f *fakeMonitor) FindBestChannels(mask ChannelMask) (ChannelMask, uint16) {
	var best ChannelMask
	bestOcc := uint16(0xffff)
	for _, c := range mask.Channels() {
		occ := f.occupancy[c]
		if occ < bestOcc {
			bestOcc = occ
			best = NewChannelMask(c)
		} else if occ == bestOcc {
			best = best.Add(c)
		}
	}
	return best, bestOcc
}

// fakeUpdater is a test-only DatasetUpdater that queues a scripted result
// for the next RequestUpdate call and records the pending callback so tests
// can drive completion explicitly.
type fakeUpdater struct {
	nextResult  UpdateResult
	requests    []DatasetInfo
	cancels     int
	pendingDone UpdateDoneFunc
}

func (f *fakeUpdater) RequestUpdate(dataset DatasetInfo, done UpdateDoneFunc, _ time.Duration) UpdateResult {
	f.requests = append(f.requests, dataset)
	if f.nextResult == UpdateOK {
		f.pendingDone = done
	}
	return f.nextResult
}

func (f *fakeUpdater) CancelUpdate() {
	f.cancels++
}

// complete invokes the pending callback, simulating the updater finishing
// asynchronously.
func (f *fakeUpdater) complete(result UpdateResult) {
	done := f.pendingDone
	f.pendingDone = nil
	if done != nil {
		done(result)
	}
}

// fakeNotifier records every signaled event.
type fakeNotifier struct {
	signaled []NotifierEvent
}

func (f *fakeNotifier) Signal(event NotifierEvent) {
	f.signaled = append(f.signaled, event)
}

// fakeTimer is a test-only Timer that records its own schedule without any
// real-time behavior; tests fire it by calling Manager.HandleTimer directly.
type fakeTimer struct {
	running  bool
	fireTime time.Time
	starts   int
	stops    int
}

func (f *fakeTimer) Start(d time.Duration) {
	f.running = true
	f.starts++
	f.fireTime = time.Now().Add(d)
}

func (f *fakeTimer) StartAt(origin time.Time, d time.Duration) {
	f.running = true
	f.starts++
	f.fireTime = origin.Add(d)
}

func (f *fakeTimer) Stop() {
	f.running = false
	f.stops++
}

func (f *fakeTimer) IsRunning() bool     { return f.running }
func (f *fakeTimer) FireTime() time.Time { return f.fireTime }

// fakeRandom is a deterministic Random: it always returns lo, unless a
// sequence of fixed return values has been configured.
type fakeRandom struct {
	sequence []uint32
	calls    int
}

func (f *fakeRandom) UniformU32InRange(lo, hi uint32) uint32 {
	if f.calls < len(f.sequence) {
		v := f.sequence[f.calls]
		f.calls++
		if v >= lo && v < hi {
			return v
		}
	}
	f.calls++
	return lo
}

// fakeMle reports a fixed disabled state.
type fakeMle struct {
	disabled bool
}

func (f *fakeMle) IsDisabled() bool { return f.disabled }
