package sampler

import (
	"github.com/hostwatch/agent/common"
	"github.com/hostwatch/agent/types"
)

// rateHistory keeps the most recent rate samples in arrival order,
// evicting the oldest once full.
type rateHistory struct {
	samples []types.NetworkRateSample
	limit   int
}

func newRateHistory() *rateHistory {
	return &rateHistory{limit: common.NetworkHistorySize}
}

func (h *rateHistory) push(s types.NetworkRateSample) {
	if len(h.samples) >= h.limit {
		h.samples = h.samples[1:]
	}
	h.samples = append(h.samples, s)
}

// snapshot returns a copy so published snapshots never alias the
// tracker's backing array.
func (h *rateHistory) snapshot() []types.NetworkRateSample {
	out := make([]types.NetworkRateSample, len(h.samples))
	copy(out, h.samples)
	return out
}
