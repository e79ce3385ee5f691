package sampler

import (
	"time"

	"github.com/hostwatch/agent/common"
	"github.com/hostwatch/agent/sysinfo"
	"github.com/hostwatch/agent/types"
	"github.com/hostwatch/agent/utils"

	log "github.com/sirupsen/logrus"
)

// bytesPerSecToMbps converts a byte rate to megabits per second with a
// binary megabit, matching what activity monitors display.
func bytesPerSecToMbps(bytesPerSec float64) float64 {
	return bytesPerSec * 8 / (1 << 20)
}

// networkTracker differences interface byte counters over wall-clock
// time. It follows the default-route interface; when that changes the
// baseline is discarded so rates never mix counters of two interfaces.
type networkTracker struct {
	iface    string
	seeded   bool
	prevRx   uint64
	prevTx   uint64
	prevTime time.Time
}

// update resolves the active interface, locates its counters and returns
// the rate sample for the elapsed window. The first reading after a seed
// or an interface change reports zero rates.
func (t *networkTracker) update(reader sysinfo.Reader, now time.Time) (types.NetworkRateSample, error) {
	name, err := resolveInterface(reader)
	if err != nil {
		return types.NetworkRateSample{}, err
	}

	counters, err := reader.InterfaceCounters()
	if err != nil {
		return types.NetworkRateSample{}, err
	}

	var rx, tx uint64
	found := false
	for _, c := range counters {
		if c.Name == name {
			rx, tx = c.RxBytes, c.TxBytes
			found = true
			break
		}
	}
	if !found {
		log.Debugf("[sampler] no counters for interface %s", name)
		return types.NetworkRateSample{}, common.ErrNoInterface
	}

	sample := types.NetworkRateSample{Interface: name, Timestamp: now}

	if !t.seeded || t.iface != name {
		t.iface = name
		t.seeded = true
		t.prevRx, t.prevTx, t.prevTime = rx, tx, now
		return sample, nil
	}

	elapsed := now.Sub(t.prevTime).Seconds()
	if elapsed > 0 {
		sample.DownBytesPerSec = float64(utils.SatSub(rx, t.prevRx)) / elapsed
		sample.UpBytesPerSec = float64(utils.SatSub(tx, t.prevTx)) / elapsed
		sample.DownMbps = bytesPerSecToMbps(sample.DownBytesPerSec)
		sample.UpMbps = bytesPerSecToMbps(sample.UpBytesPerSec)
	}

	t.prevRx, t.prevTx, t.prevTime = rx, tx, now
	return sample, nil
}
