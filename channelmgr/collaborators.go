package channelmgr

import "time"

// UpdateResult is the outcome reported by a DatasetUpdater, either as the
// immediate return of RequestUpdate or as the asynchronous argument to the
// completion callback. It mirrors the small set of outcomes the migration
// state machine must distinguish (spec.md §4.3, §7): success, transient
// exhaustion of resources, obsolescence by a newer active dataset, and
// everything else (treated as fatal-for-this-attempt).
type UpdateResult int

// UpdateResult values.
const (
	UpdateOK UpdateResult = iota
	UpdateBusy
	UpdateNoBufs
	UpdateAlreadyNewer
	UpdateInvalidState
	UpdateFailed
)

func (r UpdateResult) String() string {
	switch r {
	case UpdateOK:
		return "ok"
	case UpdateBusy:
		return "busy"
	case UpdateNoBufs:
		return "no-bufs"
	case UpdateAlreadyNewer:
		return "already-newer"
	case UpdateInvalidState:
		return "invalid-state"
	default:
		return "failed"
	}
}

// DatasetInfo is the minimal payload this component hands to the
// dataset-updater: the target channel and the migration delay to request.
// Serialization and transmission of the pending dataset itself is out of
// scope (spec.md §1); the updater owns that.
type DatasetInfo struct {
	Channel uint8
	Delay   time.Duration
}

// UpdateDoneFunc is the completion callback a DatasetUpdater invokes,
// exactly once, for a given RequestUpdate call that returned UpdateOK.
type UpdateDoneFunc func(result UpdateResult)

// Mac is the subset of the MAC layer this component reads from.
type Mac interface {
	CurrentPanChannel() uint8
	SupportedChannelMask() ChannelMask
	CCAFailureRate() uint16
}

// ChannelMonitor is the channel-occupancy sampling subsystem. Lower
// occupancy values are better. Its results are meaningful only once
// SampleCount() exceeds MinSamples (spec.md §4.2 step 1).
type ChannelMonitor interface {
	SampleCount() uint32
	ChannelOccupancy(channel uint8) uint16
	// FindBestChannels returns the subset of mask tied for minimum
	// occupancy, and that occupancy value.
	FindBestChannels(mask ChannelMask) (ChannelMask, uint16)
}

// DatasetUpdater performs the actual pending-dataset exchange. RequestUpdate
// must invoke done exactly once if it returns UpdateOK; any other return
// value means no callback will fire for this call.
type DatasetUpdater interface {
	RequestUpdate(dataset DatasetInfo, done UpdateDoneFunc, checkWaitInterval time.Duration) UpdateResult
	CancelUpdate()
}

// NotifierEvent identifies the kind of configuration-change event being
// published.
type NotifierEvent int

// NotifierEvent values.
const (
	EventChannelManagerNewChannelChanged NotifierEvent = iota
)

// Notifier publishes configuration-change events to the rest of the stack.
type Notifier interface {
	Signal(event NotifierEvent)
}

// Timer is a single-shot timer abstraction. A Manager owns exactly one, and
// reuses it for auto-select ticks, request jitter, and retry backoff
// (spec.md §4.4) by disambiguating on its own state rather than the timer's.
type Timer interface {
	Start(d time.Duration)
	StartAt(origin time.Time, d time.Duration)
	Stop()
	IsRunning() bool
	FireTime() time.Time
}

// Random is a non-cryptographic uniform random source.
type Random interface {
	// UniformU32InRange returns a value in [lo, hi), i.e. hi is exclusive.
	UniformU32InRange(lo, hi uint32) uint32
}

// Mle reports whether the mesh layer is currently disabled.
type Mle interface {
	IsDisabled() bool
}
