// Package channelmgr implements the channel-selection policy and migration
// state machine for a Thread-like 802.15.4 mesh stack: it debounces
// requests to move the network to a new radio channel, selects a candidate
// channel from channel-monitor occupancy samples, and drives a pending
// operational dataset update through a host-supplied DatasetUpdater.
//
// A Manager is owned by, and driven entirely by, a single host event loop:
// it never blocks and performs no locking of its own (see the driver module
// in SPEC_FULL.md for the concurrency model this assumes).
package channelmgr

import (
	"time"

	"go.uber.org/zap"
)

// Collaborators bundles the external interfaces a Manager needs (spec.md
// §6.2). All fields are required except Log, which defaults to a no-op
// logger.
type Collaborators struct {
	Mac      Mac
	Monitor  ChannelMonitor
	Updater  DatasetUpdater
	Notifier Notifier
	Timer    Timer
	Random   Random
	Mle      Mle
	Log      *zap.SugaredLogger
}

// Manager is the channel manager component. It is not safe for concurrent
// use: callers must serialize all method calls (and timer/updater callback
// deliveries) on a single goroutine, exactly as spec.md §5 requires.
type Manager struct {
	mac      Mac
	monitor  ChannelMonitor
	updater  DatasetUpdater
	notifier Notifier
	timer    Timer
	rnd      Random
	mle      Mle
	log      *zap.SugaredLogger

	sel *selector
	cfg config

	state         State
	targetChannel uint8
}

// NewManager constructs a Manager from its collaborators and optional
// startup defaults. The returned Manager starts in Idle with auto-selection
// disabled unless Defaults.AutoEnabled is set.
func NewManager(c Collaborators, defaults Defaults) *Manager {
	if c.Log == nil {
		c.Log = zap.NewNop().Sugar()
	}

	cfg := newConfig()
	cfg.supportedMask = c.Mac.SupportedChannelMask()
	defaults.apply(&cfg)
	cfg.supportedMask = cfg.supportedMask.Intersect(c.Mac.SupportedChannelMask())
	cfg.favoredMask = cfg.favoredMask.Intersect(c.Mac.SupportedChannelMask())

	m := &Manager{
		mac:      c.Mac,
		monitor:  c.Monitor,
		updater:  c.Updater,
		notifier: c.Notifier,
		timer:    c.Timer,
		rnd:      c.Random,
		mle:      c.Mle,
		log:      c.Log,
		sel:      &selector{rnd: c.Random},
		cfg:      cfg,
		state:    Idle,
	}

	if cfg.autoEnabled {
		m.startAutoTimer()
	}

	return m
}

// RequestChannelChange requests migration to channel (spec.md §4.1).
func (m *Manager) RequestChannelChange(channel uint8) Result {
	m.log.Infof("request to change to channel %d with delay %s", channel, m.cfg.delay)

	if channel == m.mac.CurrentPanChannel() {
		m.log.Infof("already operating on channel %d", channel)
		return Ok
	}

	if m.state == ChangeInProgress {
		if m.targetChannel == channel {
			return Ok
		}
		m.log.Infof("canceling in-flight update to %d in favor of %d", m.targetChannel, channel)
		m.updater.CancelUpdate()
	}

	m.state = ChangeRequested
	m.targetChannel = channel

	jitter := time.Duration(m.rnd.UniformU32InRange(0, uint32(StartJitter.Milliseconds()))) * time.Millisecond
	m.timer.Start(time.Millisecond + jitter)

	m.notifier.Signal(EventChannelManagerNewChannelChanged)

	return Ok
}

// SetDelay sets the migration delay used by the next dataset update issued
// (spec.md §4.1).
func (m *Manager) SetDelay(seconds uint16) Result {
	if seconds < MinDelaySeconds {
		return InvalidArgs
	}
	m.cfg.delay = time.Duration(seconds) * time.Second
	return Ok
}

// SetSupportedChannels stores mask intersected with the MAC's supported
// mask. Never fails.
func (m *Manager) SetSupportedChannels(mask ChannelMask) {
	m.cfg.supportedMask = mask.Intersect(m.mac.SupportedChannelMask())
	m.log.Infof("supported channels: %s", m.cfg.supportedMask)
}

// SetFavoredChannels stores mask intersected with the MAC's supported mask.
// Never fails.
func (m *Manager) SetFavoredChannels(mask ChannelMask) {
	m.cfg.favoredMask = mask.Intersect(m.mac.SupportedChannelMask())
	m.log.Infof("favored channels: %s", m.cfg.favoredMask)
}

// SetAutoSelectionEnabled enables or disables the auto-select driver
// (spec.md §4.1). Enabling triggers an immediate selection attempt, as if
// the timer had just fired from Idle, before arming the timer. Disabling
// stops the timer only when Idle; an in-flight migration is left to
// complete on its own, and will itself re-arm or disarm the timer then.
func (m *Manager) SetAutoSelectionEnabled(enabled bool) {
	if enabled == m.cfg.autoEnabled {
		return
	}
	m.cfg.autoEnabled = enabled
	if enabled {
		_ = m.RequestChannelSelect(false)
	}
	m.startAutoTimer()
}

// SetAutoSelectionInterval sets the auto-select period (spec.md §4.1),
// preserving the timer's original start time when rescheduling a running
// auto-select timer.
func (m *Manager) SetAutoSelectionInterval(seconds uint32) Result {
	if seconds < 1 || seconds > MaxTimerSeconds {
		return InvalidArgs
	}

	prev := m.cfg.autoInterval
	next := time.Duration(seconds) * time.Second
	if prev == next {
		return Ok
	}
	m.cfg.autoInterval = next

	if m.cfg.autoEnabled && m.state == Idle && m.timer.IsRunning() {
		origin := m.timer.FireTime().Add(-prev)
		m.timer.StartAt(origin, next)
	}

	return Ok
}

// RequestChannelSelect runs the selection policy and, if it finds a better
// channel, requests migration to it (spec.md §4.1).
func (m *Manager) RequestChannelSelect(skipQualityCheck bool) Result {
	m.log.Infof("request to select channel (skip quality check: %v)", skipQualityCheck)

	if m.mle.IsDisabled() {
		return InvalidState
	}

	channel, ok, res := m.sel.selectChannel(m.cfg, m.mac, m.monitor, skipQualityCheck)
	if res != Ok {
		m.log.Infof("channel select failed: %s", res)
		return res
	}
	if !ok {
		return Ok
	}

	return m.RequestChannelChange(channel)
}

// State returns the Manager's current migration state.
func (m *Manager) State() State {
	return m.state
}

// TargetChannel returns the channel currently targeted by an in-flight or
// pending migration. It is only meaningful when State() != Idle.
func (m *Manager) TargetChannel() uint8 {
	return m.targetChannel
}
