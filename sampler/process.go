package sampler

import (
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/hostwatch/agent/common"
	"github.com/hostwatch/agent/sysinfo"
	"github.com/hostwatch/agent/types"
	"github.com/hostwatch/agent/utils"

	"github.com/patrickmn/go-cache"
)

// processTracker differences per-process CPU time over wall-clock time
// and ranks processes by load. Display names are cached by pid since exe
// resolution is the expensive part of a process pass.
type processTracker struct {
	seeded   bool
	prevCPU  map[int32]uint64
	lastPass time.Time
	names    *cache.Cache
}

func newProcessTracker() *processTracker {
	return &processTracker{
		prevCPU: map[int32]uint64{},
		names:   cache.New(common.NameCacheTTL, 2*common.NameCacheTTL),
	}
}

// update consumes one process-table pass and returns the visible samples
// sorted by descending CPU. A process seen for the first time has no
// baseline and reports zero CPU; pids that disappeared drop out of the
// baseline map so pid reuse cannot inherit a stale counter.
func (t *processTracker) update(procs []sysinfo.ProcessInfo, cores int, now time.Time) []types.ProcessSample {
	elapsed := now.Sub(t.lastPass).Seconds()
	firstPass := !t.seeded

	nextCPU := make(map[int32]uint64, len(procs))
	samples := make([]types.ProcessSample, 0, len(procs))
	for _, p := range procs {
		nextCPU[p.Pid] = p.CPUTimeNs

		var percent float64
		prev, seen := t.prevCPU[p.Pid]
		if !firstPass && seen && elapsed > 0 && cores > 0 {
			deltaSec := float64(utils.SatSub(p.CPUTimeNs, prev)) / 1e9
			percent = utils.ClampPercent(deltaSec / elapsed / float64(cores) * 100)
		}

		memMB := float64(p.RSSBytes) / (1 << 20)
		if percent <= common.VisibleCPUPercent && memMB <= common.VisibleMemoryMB {
			continue
		}

		samples = append(samples, types.ProcessSample{
			Pid:        p.Pid,
			Name:       t.displayName(p),
			CPUPercent: percent,
			MemoryMB:   memMB,
		})
	}

	t.prevCPU = nextCPU
	t.lastPass = now
	t.seeded = true

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].CPUPercent > samples[j].CPUPercent
	})
	return samples
}

func (t *processTracker) displayName(p sysinfo.ProcessInfo) string {
	key := strconv.Itoa(int(p.Pid))
	if name, ok := t.names.Get(key); ok {
		return name.(string)
	}

	name := p.ShortName
	if p.ExePath != "" {
		name = filepath.Base(p.ExePath)
	}
	t.names.Set(key, name, cache.DefaultExpiration)
	return name
}

// topByCPU returns the heaviest CPU consumers, at most n.
func topByCPU(samples []types.ProcessSample, n int) []types.ProcessSample {
	if len(samples) > n {
		samples = samples[:n]
	}
	out := make([]types.ProcessSample, len(samples))
	copy(out, samples)
	return out
}

// topByMemory re-ranks the visible samples by resident size.
func topByMemory(samples []types.ProcessSample, n int) []types.ProcessSample {
	byMem := make([]types.ProcessSample, len(samples))
	copy(byMem, samples)
	sort.SliceStable(byMem, func(i, j int) bool {
		return byMem[i].MemoryMB > byMem[j].MemoryMB
	})
	if len(byMem) > n {
		byMem = byMem[:n]
	}
	return byMem
}

// mergeTop joins the CPU and memory leaders, CPU leaders first, without
// duplicating a process that appears in both lists.
func mergeTop(byCPU, byMem []types.ProcessSample) []types.ProcessSample {
	seen := make(map[int32]struct{}, len(byCPU)+len(byMem))
	merged := make([]types.ProcessSample, 0, len(byCPU)+len(byMem))
	for _, s := range byCPU {
		seen[s.Pid] = struct{}{}
		merged = append(merged, s)
	}
	for _, s := range byMem {
		if _, ok := seen[s.Pid]; ok {
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
