package channelmgr

// This file implements the migration state machine of spec.md §4.3-§4.4:
// timer dispatch (auto-select / jitter / retry, disambiguated by state),
// dataset-update issuance, and completion handling. Grounded on
// original_source's StartDatasetUpdate/HandleDatasetUpdateDone/HandleTimer
// for the exact transition table, and on ap.wifid/hostapd.go's retry
// bookkeeping for the shape of "issue an async request, react to Busy by
// backing off and retrying".

// HandleTimer must be called by the host when the Manager's owned Timer
// fires. Dispatch is purely a function of current state (spec.md §4.4): the
// timer is armed to at most one role at a time.
func (m *Manager) HandleTimer() {
	switch m.state {
	case Idle:
		m.log.Infof("auto-triggered channel select")
		_ = m.RequestChannelSelect(false)
		m.startAutoTimer()

	case ChangeRequested:
		m.startDatasetUpdate()

	case ChangeInProgress:
		// The timer has no role while an update is outstanding; a
		// fire here is a stale event and is ignored.
	}
}

// startDatasetUpdate issues the pending-dataset update for the current
// target channel and delay (spec.md §4.3's "Dataset update issuance").
func (m *Manager) startDatasetUpdate() {
	dataset := DatasetInfo{
		Channel: m.targetChannel,
		Delay:   m.cfg.delay,
	}

	switch m.updater.RequestUpdate(dataset, m.handleUpdateDone, ChangeCheckWaitInterval) {
	case UpdateOK:
		m.state = ChangeInProgress
		// Wait for handleUpdateDone.

	case UpdateBusy, UpdateNoBufs:
		m.timer.Start(PendingDatasetTxRetryInterval)

	case UpdateInvalidState:
		m.log.Infof("request to change to channel %d failed: device is disabled", m.targetChannel)
		m.state = Idle
		m.startAutoTimer()

	default:
		m.state = Idle
		m.startAutoTimer()
	}
}

// handleUpdateDone is the DatasetUpdater completion callback. Per the
// resolution of spec.md §9's open question, a deferred callback that
// arrives after the target has been superseded by a newer request is a
// no-op: it is only meaningful while state is still ChangeInProgress.
func (m *Manager) handleUpdateDone(result UpdateResult) {
	if m.state != ChangeInProgress {
		m.log.Debugf("ignoring stale update-done callback (%s), state is now %s", result, m.state)
		return
	}

	if result == UpdateOK {
		m.log.Infof("channel changed to %d", m.targetChannel)
	} else if result == UpdateAlreadyNewer {
		m.log.Infof("canceling channel change to %d: active dataset is more recent", m.targetChannel)
	} else {
		m.log.Infof("canceling channel change to %d: %s", m.targetChannel, result)
	}

	m.state = Idle
	m.startAutoTimer()
}

// startAutoTimer is a no-op unless state == Idle. From Idle, it starts the
// auto-select timer when auto-selection is enabled, or stops the timer
// otherwise.
func (m *Manager) startAutoTimer() {
	if m.state != Idle {
		return
	}

	if m.cfg.autoEnabled {
		m.timer.Start(m.cfg.autoInterval)
	} else {
		m.timer.Stop()
	}
}
