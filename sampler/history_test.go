package sampler

import (
	"testing"

	"github.com/hostwatch/agent/common"
	"github.com/hostwatch/agent/types"

	"github.com/stretchr/testify/assert"
)

func TestRateHistoryFIFO(t *testing.T) {
	h := newRateHistory()
	for i := 0; i < common.NetworkHistorySize+10; i++ {
		h.push(types.NetworkRateSample{DownBytesPerSec: float64(i)})
	}

	samples := h.snapshot()
	assert.Len(t, samples, common.NetworkHistorySize)
	// the ten oldest were evicted
	assert.Equal(t, 10.0, samples[0].DownBytesPerSec)
	assert.Equal(t, float64(common.NetworkHistorySize+9), samples[len(samples)-1].DownBytesPerSec)
}

func TestRateHistorySnapshotIsCopy(t *testing.T) {
	h := newRateHistory()
	h.push(types.NetworkRateSample{DownBytesPerSec: 1})

	snap := h.snapshot()
	h.push(types.NetworkRateSample{DownBytesPerSec: 2})
	assert.Len(t, snap, 1)
}
