package sampler

import (
	"github.com/hostwatch/agent/sysinfo"
	"github.com/hostwatch/agent/utils"
)

// cpuTracker turns monotonically increasing tick counters into a usage
// percentage by differencing consecutive readings.
type cpuTracker struct {
	seeded      bool
	prev        sysinfo.CPUTicks
	lastPercent float64
}

// update consumes a fresh tick reading and returns the busy percentage
// over the elapsed window. The first reading only seeds the baseline.
// A window with no elapsed ticks reports the previous percentage but
// still re-seeds, so a counter reset cannot poison later readings.
func (t *cpuTracker) update(ticks sysinfo.CPUTicks) float64 {
	if !t.seeded {
		t.prev = ticks
		t.seeded = true
		return t.lastPercent
	}

	busy := utils.SatSub(ticks.User, t.prev.User) +
		utils.SatSub(ticks.System, t.prev.System) +
		utils.SatSub(ticks.Nice, t.prev.Nice)
	total := busy + utils.SatSub(ticks.Idle, t.prev.Idle)
	t.prev = ticks

	if total == 0 {
		return t.lastPercent
	}
	t.lastPercent = utils.ClampPercent(float64(busy) / float64(total) * 100)
	return t.lastPercent
}
