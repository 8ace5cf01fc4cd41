package channelmgr

import "time"

// Tunable constants (spec.md §6.3). Values are the spec's "typical values"
// for an implementation that tunes them to its own deployment.
const (
	// MinDelaySeconds is the minimum migration delay accepted by SetDelay.
	MinDelaySeconds = 120

	// MaxTimerSeconds bounds the auto-select interval.
	MaxTimerSeconds = 24 * 60 * 60 // 1 day

	// DefaultAutoSelectIntervalSeconds is used when no explicit interval
	// has been configured.
	DefaultAutoSelectIntervalSeconds = 9 * 60 * 60 // 9 hours

	// StartJitter bounds the random delay applied before a requested
	// migration is actually issued, to avoid a thundering herd when many
	// nodes receive the same trigger at once.
	StartJitter = 2 * time.Second

	// PendingDatasetTxRetryInterval is how long to wait before retrying
	// a dataset-update request that failed with Busy/NoBufs.
	PendingDatasetTxRetryInterval = 1 * time.Minute

	// ChangeCheckWaitInterval is passed through to the dataset updater as
	// its post-change settle window.
	ChangeCheckWaitInterval = 30 * time.Second

	// MinSamples is the minimum channel-monitor sample count required
	// before the selection policy will produce a candidate.
	MinSamples = 1

	// ThresholdToSkipFavored is the occupancy delta above which the
	// favored-channel preference may be skipped in favor of the overall
	// best channel.
	ThresholdToSkipFavored = 0x0300

	// ThresholdToChangeChannel is the minimum occupancy improvement
	// required to justify migrating away from the current channel.
	ThresholdToChangeChannel = 0x0120

	// CCAFailureRateThreshold gates whether a quality-checked selection
	// attempt proceeds at all.
	CCAFailureRateThreshold = 0x0300
)
