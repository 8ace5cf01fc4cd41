// Command channelmgrd is a runnable demonstration harness for the
// channelmgr package: it wires a Manager to simulated MAC, channel-monitor,
// dataset-updater, notifier, timer, and random collaborators, and drives
// its single event loop the way a host mesh stack would. It is not part of
// the component itself (spec.md §1 scopes the real collaborators out), but
// lets the package be run and observed end to end.
package main

import (
	"encoding/binary"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thread-mesh/channelmgr/channelmgr"
)

const pname = "channelmgrd"

var (
	defaultsPath  string
	autoEnabled   bool
	autoInterval  time.Duration
	delay         time.Duration
	initialCCA    uint16
	settleWindow  time.Duration
	supportedList []int
	favoredList   []int
)

func main() {
	root := &cobra.Command{
		Use:   pname,
		Short: "runs the channel manager against a simulated mesh stack",
		RunE:  run,
	}

	flags := root.Flags()
	flags.StringVar(&defaultsPath, "defaults", "", "path to a YAML channel manager defaults file")
	flags.BoolVar(&autoEnabled, "auto", true, "enable autonomous channel selection")
	flags.DurationVar(&autoInterval, "auto-interval", 10*time.Second, "auto-select interval")
	flags.DurationVar(&delay, "delay", channelmgr.MinDelaySeconds*time.Second, "migration delay")
	flags.Uint16Var(&initialCCA, "cca-failure-rate", channelmgr.CCAFailureRateThreshold, "simulated CCA failure rate")
	flags.DurationVar(&settleWindow, "settle", 2*time.Second, "simulated dataset-update settle time")
	flags.IntSliceVar(&supportedList, "supported", nil, "supported channel numbers (default: all)")
	flags.IntSliceVar(&favoredList, "favored", nil, "favored channel numbers")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	log, err := channelmgr.NewLogger(pname)
	if err != nil {
		return errors.Wrap(err, "constructing logger")
	}
	defer log.Sync()

	instanceID := uuid.New()
	log = log.With("instance", instanceID.String())
	log.Infof("starting")

	defaults, err := channelmgr.LoadDefaults(defaultsPath)
	if err != nil {
		return errors.Wrap(err, "loading defaults")
	}
	if !autoEnabled {
		defaults.AutoEnabled = false
	} else {
		defaults.AutoEnabled = true
	}
	if defaults.AutoIntervalS == 0 {
		defaults.AutoIntervalS = uint32(autoInterval.Seconds())
	}
	if defaults.DelaySeconds == 0 {
		defaults.DelaySeconds = uint16(delay.Seconds())
	}
	if len(defaults.SupportedChans) == 0 {
		defaults.SupportedChans = toChannels(supportedList)
	}
	if len(defaults.FavoredChans) == 0 {
		defaults.FavoredChans = toChannels(favoredList)
	}

	supported := channelmgr.AllChannelsMask()
	if len(defaults.SupportedChans) > 0 {
		supported = channelmgr.NewChannelMask(defaults.SupportedChans...)
	}

	mac := &simMac{
		channel:       channelmgr.MinChannel,
		supportedMask: supported,
		ccaRate:       initialCCA,
	}
	seed := int64(binary.BigEndian.Uint64(instanceID[:8]))
	monitor := newSimMonitor(seed)
	updater := newSimUpdater(log, settleWindow)
	notifier := &simNotifier{log: log}
	timer := newRealTimer()
	rnd := newSimRandom(seed)
	mle := &simMle{}

	mgr := channelmgr.NewManager(channelmgr.Collaborators{
		Mac:      mac,
		Monitor:  monitor,
		Updater:  updater,
		Notifier: notifier,
		Timer:    timer,
		Random:   rnd,
		Mle:      mle,
		Log:      log,
	}, defaults)

	log.Infow("manager constructed",
		"state", mgr.State(),
		"supported", supported,
		"favored", channelmgr.NewChannelMask(defaults.FavoredChans...))

	return eventLoop(log, mgr, timer, updater)
}

// eventLoop serializes every timer fire and updater completion onto a
// single goroutine, exactly as this component's concurrency model requires
// (spec.md §5): there is no locking anywhere in the channelmgr package
// because nothing in it is ever called concurrently.
func eventLoop(log *zap.SugaredLogger, mgr *channelmgr.Manager, timer *realTimer, updater *simUpdater) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-timer.fired:
			mgr.HandleTimer()

		case complete := <-updater.completions:
			complete()

		case sig := <-sigCh:
			log.Infof("received signal %v, shutting down", sig)
			return nil
		}
	}
}

func toChannels(list []int) []uint8 {
	if len(list) == 0 {
		return nil
	}
	out := make([]uint8, len(list))
	for i, v := range list {
		out[i] = uint8(v)
	}
	return out
}
