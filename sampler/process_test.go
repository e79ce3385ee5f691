package sampler

import (
	"testing"
	"time"

	"github.com/hostwatch/agent/sysinfo"
	"github.com/hostwatch/agent/types"

	"github.com/stretchr/testify/assert"
)

func TestProcessTrackerCPUPercent(t *testing.T) {
	tracker := newProcessTracker()
	t0 := time.Now()

	// first pass seeds baselines, cpu is zero everywhere
	samples := tracker.update([]sysinfo.ProcessInfo{
		{Pid: 1, ShortName: "heavy", CPUTimeNs: 2_000_000_000, RSSBytes: 200 << 20},
	}, 4, t0)
	assert.Len(t, samples, 1)
	assert.Equal(t, 0.0, samples[0].CPUPercent)

	// 0.5s of cpu over a 2s window on 4 cores
	samples = tracker.update([]sysinfo.ProcessInfo{
		{Pid: 1, ShortName: "heavy", CPUTimeNs: 2_500_000_000, RSSBytes: 200 << 20},
	}, 4, t0.Add(2*time.Second))
	assert.Len(t, samples, 1)
	assert.InDelta(t, 6.25, samples[0].CPUPercent, 1e-9)
}

func TestProcessTrackerFirstSighting(t *testing.T) {
	tracker := newProcessTracker()
	t0 := time.Now()

	tracker.update([]sysinfo.ProcessInfo{
		{Pid: 1, ShortName: "old", CPUTimeNs: 1e9, RSSBytes: 100 << 20},
	}, 4, t0)

	// pid 2 appears mid-flight with a big counter, must not spike
	samples := tracker.update([]sysinfo.ProcessInfo{
		{Pid: 1, ShortName: "old", CPUTimeNs: 1e9, RSSBytes: 100 << 20},
		{Pid: 2, ShortName: "new", CPUTimeNs: 9e9, RSSBytes: 100 << 20},
	}, 4, t0.Add(2*time.Second))
	assert.Len(t, samples, 2)
	for _, s := range samples {
		assert.Equal(t, 0.0, s.CPUPercent)
	}
}

func TestProcessTrackerVisibilityFilter(t *testing.T) {
	tracker := newProcessTracker()
	t0 := time.Now()

	procs := []sysinfo.ProcessInfo{
		{Pid: 1, ShortName: "idle", CPUTimeNs: 0, RSSBytes: 1 << 20},
		{Pid: 2, ShortName: "fat", CPUTimeNs: 0, RSSBytes: 100 << 20},
		{Pid: 3, ShortName: "busy", CPUTimeNs: 0, RSSBytes: 1 << 20},
	}
	tracker.update(procs, 4, t0)

	procs[2].CPUTimeNs = 800_000_000
	samples := tracker.update(procs, 4, t0.Add(2*time.Second))

	names := []string{}
	for _, s := range samples {
		names = append(names, s.Name)
	}
	// busy passes on cpu, fat passes on memory, idle is filtered
	assert.ElementsMatch(t, []string{"fat", "busy"}, names)
}

func TestProcessTrackerRanking(t *testing.T) {
	tracker := newProcessTracker()
	t0 := time.Now()

	procs := make([]sysinfo.ProcessInfo, 0, 8)
	for i := int32(1); i <= 8; i++ {
		procs = append(procs, sysinfo.ProcessInfo{Pid: i, ShortName: "p", RSSBytes: 60 << 20})
	}
	tracker.update(procs, 4, t0)

	for i := range procs {
		procs[i].CPUTimeNs = uint64(i+1) * 100_000_000
	}
	samples := tracker.update(procs, 4, t0.Add(2*time.Second))

	assert.Len(t, samples, 8)
	top := topByCPU(samples, 6)
	assert.Len(t, top, 6)
	assert.Equal(t, int32(8), top[0].Pid)
	assert.True(t, top[0].CPUPercent >= top[5].CPUPercent)
}

func TestProcessTrackerNameFromExePath(t *testing.T) {
	tracker := newProcessTracker()
	name := tracker.displayName(sysinfo.ProcessInfo{Pid: 1, ShortName: "truncatedname", ExePath: "/Applications/Some.app/Contents/MacOS/Full Name"})
	assert.Equal(t, "Full Name", name)

	// cached by pid afterwards
	name = tracker.displayName(sysinfo.ProcessInfo{Pid: 1, ShortName: "other", ExePath: ""})
	assert.Equal(t, "Full Name", name)
}

func TestTopByMemory(t *testing.T) {
	samples := []types.ProcessSample{
		{Pid: 1, CPUPercent: 50, MemoryMB: 100},
		{Pid: 2, CPUPercent: 10, MemoryMB: 900},
		{Pid: 3, CPUPercent: 5, MemoryMB: 500},
	}
	byMem := topByMemory(samples, 2)
	assert.Len(t, byMem, 2)
	assert.Equal(t, int32(2), byMem[0].Pid)
	assert.Equal(t, int32(3), byMem[1].Pid)
	// input order untouched
	assert.Equal(t, int32(1), samples[0].Pid)
}

func TestMergeTop(t *testing.T) {
	byCPU := []types.ProcessSample{{Pid: 1}, {Pid: 2}}
	byMem := []types.ProcessSample{{Pid: 2}, {Pid: 3}}
	merged := mergeTop(byCPU, byMem)
	assert.Len(t, merged, 3)
	assert.Equal(t, int32(1), merged[0].Pid)
	assert.Equal(t, int32(2), merged[1].Pid)
	assert.Equal(t, int32(3), merged[2].Pid)
}
