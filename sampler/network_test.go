package sampler

import (
	"testing"
	"time"

	"github.com/hostwatch/agent/sysinfo"
	"github.com/hostwatch/agent/sysinfo/mocks"

	"github.com/stretchr/testify/assert"
)

func TestBytesPerSecToMbps(t *testing.T) {
	assert.InDelta(t, 0.00953674, bytesPerSecToMbps(1250), 1e-6)
	assert.InDelta(t, 8.0, bytesPerSecToMbps(1<<20), 1e-9)
	assert.Equal(t, 0.0, bytesPerSecToMbps(0))
}

func TestNetworkTrackerSeedThenRate(t *testing.T) {
	reader := mocks.FromTemplate().(*mocks.Magi)
	tracker := &networkTracker{}
	t0 := time.Now()

	// first reading seeds, rates are zero
	sample, err := tracker.update(reader, t0)
	assert.NoError(t, err)
	assert.Equal(t, "en0", sample.Interface)
	assert.Equal(t, 0.0, sample.DownBytesPerSec)
	assert.Equal(t, 0.0, sample.UpBytesPerSec)

	// 2500 bytes down, 500 up over two seconds
	reader.Advance(0, 0, 0, 2500, 500)
	sample, err = tracker.update(reader, t0.Add(2*time.Second))
	assert.NoError(t, err)
	assert.InDelta(t, 1250.0, sample.DownBytesPerSec, 1e-9)
	assert.InDelta(t, 250.0, sample.UpBytesPerSec, 1e-9)
	assert.InDelta(t, 0.00953674, sample.DownMbps, 1e-6)
}

func TestNetworkTrackerCounterReset(t *testing.T) {
	tracker := &networkTracker{
		iface:  "en0",
		seeded: true,
		prevRx: 1 << 40,
		prevTx: 1 << 40,
	}
	tracker.prevTime = time.Now().Add(-2 * time.Second)

	reader := mocks.FromTemplate()
	sample, err := tracker.update(reader, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, sample.DownBytesPerSec)
	assert.Equal(t, 0.0, sample.UpBytesPerSec)
}

func TestNetworkTrackerInterfaceChange(t *testing.T) {
	tracker := &networkTracker{iface: "en5", seeded: true, prevRx: 0, prevTx: 0, prevTime: time.Now().Add(-2 * time.Second)}

	// tracker was following en5, the template routes via en0
	reader := mocks.FromTemplate()
	sample, err := tracker.update(reader, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, "en0", sample.Interface)
	assert.Equal(t, 0.0, sample.DownBytesPerSec)
	assert.Equal(t, "en0", tracker.iface)
}

var _ sysinfo.Reader = &mocks.Reader{}
