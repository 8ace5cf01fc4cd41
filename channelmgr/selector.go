package channelmgr

// selector implements the channel-selection policy of spec.md §4.2: given a
// fresh channel-monitor snapshot, pick a candidate channel or report that
// none is available. It is grounded on ap.wifid/channels.go's congestion-
// minimizing channel search, generalized to occupancy-based tie sets and
// favored/supported masks the way original_source's FindBetterChannel does.
type selector struct {
	rnd Random
}

// findBetterChannel returns the best candidate channel and its occupancy, or
// a Result explaining why none could be produced.
func (s *selector) findBetterChannel(cfg config, monitor ChannelMonitor) (channel uint8, occupancy uint16, res Result) {
	if monitor.SampleCount() <= MinSamples {
		return 0, 0, InvalidState
	}

	favoredAndSupported := cfg.favoredMask.Intersect(cfg.supportedMask)
	favoredBest, favoredOcc := monitor.FindBestChannels(favoredAndSupported)
	overallBest, overallOcc := monitor.FindBestChannels(cfg.supportedMask)

	best, bestOcc := favoredBest, favoredOcc
	if favoredBest.IsEmpty() ||
		(favoredOcc >= ThresholdToSkipFavored && overallOcc < favoredOcc-ThresholdToSkipFavored) {
		best, bestOcc = overallBest, overallOcc
	}

	if best.IsEmpty() {
		return 0, 0, NotFound
	}

	return best.ChooseRandom(s.rnd), bestOcc, Ok
}

// shouldAttemptChange reports whether the current CCA failure rate warrants
// attempting an autonomous channel change (spec.md §4.2's CCA-failure gate).
func shouldAttemptChange(mac Mac) bool {
	return mac.CCAFailureRate() >= CCAFailureRateThreshold
}

// selectChannel runs the full RequestChannelSelect policy (spec.md §4.1):
// it finds a candidate, compares it to the current channel using
// ThresholdToChangeChannel, and reports the channel to migrate to, if any.
// A zero ok means no migration should be requested; res explains why when
// that is itself an error rather than "already optimal".
func (s *selector) selectChannel(cfg config, mac Mac, monitor ChannelMonitor, skipQualityCheck bool) (channel uint8, ok bool, res Result) {
	if !skipQualityCheck && !shouldAttemptChange(mac) {
		return 0, false, Ok
	}

	candidate, candidateOcc, res := s.findBetterChannel(cfg, monitor)
	if res != Ok {
		return 0, false, res
	}

	current := mac.CurrentPanChannel()
	if candidate == current {
		return 0, false, Ok
	}

	currentOcc := monitor.ChannelOccupancy(current)
	if candidateOcc >= currentOcc || currentOcc-candidateOcc < ThresholdToChangeChannel {
		return 0, false, Ok
	}

	return candidate, true, Ok
}
