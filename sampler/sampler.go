package sampler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hostwatch/agent/common"
	"github.com/hostwatch/agent/sysinfo"
	"github.com/hostwatch/agent/types"
	"github.com/hostwatch/agent/utils"

	log "github.com/sirupsen/logrus"
)

// Reporter receives every published snapshot, for metrics export.
type Reporter interface {
	Report(*types.Snapshot)
}

// Sampler drives the fixed-cadence sampling loop and publishes immutable
// snapshots. Consumers read the latest snapshot or subscribe for pushes;
// they never see a snapshot under construction.
type Sampler struct {
	config *types.Config
	reader sysinfo.Reader

	cpu     *cpuTracker
	procs   *processTracker
	network *networkTracker
	history *rateHistory
	cores   int

	controller *Controller
	reporter   Reporter

	latest atomic.Value // *types.Snapshot
	kick   chan struct{}

	subsMu sync.Mutex
	subs   map[chan *types.Snapshot]struct{}
}

// New .
func New(config *types.Config, reader sysinfo.Reader) *Sampler {
	s := &Sampler{
		config:  config,
		reader:  reader,
		cpu:     &cpuTracker{},
		procs:   newProcessTracker(),
		network: &networkTracker{},
		history: newRateHistory(),
		kick:    make(chan struct{}, 1),
		subs:    map[chan *types.Snapshot]struct{}{},
	}
	s.controller = NewController(s.Kick)
	return s
}

// SetReporter attaches a metrics reporter. Must be called before Run.
func (s *Sampler) SetReporter(r Reporter) {
	s.reporter = r
}

// Controller returns the action controller bound to this sampler.
func (s *Sampler) Controller() *Controller {
	return s.controller
}

// Run samples immediately, then on every tick until the context ends.
// Ticks and kicks are served by this single loop, so a slow pass delays
// the next one instead of overlapping it.
func (s *Sampler) Run(ctx context.Context) error {
	log.Infof("[sampler] start sampling, interval %v", common.SampleInterval)
	s.sample()

	ticker := time.NewTicker(common.SampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sample()
		case <-s.kick:
			s.sample()
		case <-ctx.Done():
			log.Info("[sampler] stop sampling")
			return nil
		}
	}
}

// Kick requests an extra sampling pass. Duplicate kicks while one is
// already pending coalesce.
func (s *Sampler) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Latest returns the most recently published snapshot, nil before the
// first pass completes.
func (s *Sampler) Latest() *types.Snapshot {
	if v := s.latest.Load(); v != nil {
		return v.(*types.Snapshot)
	}
	return nil
}

// Subscribe registers for snapshot pushes. The channel is buffered and a
// slow consumer misses snapshots rather than stalling the loop. The
// returned func cancels the subscription.
func (s *Sampler) Subscribe() (<-chan *types.Snapshot, func()) {
	ch := make(chan *types.Snapshot, 1)
	s.subsMu.Lock()
	s.subs[ch] = struct{}{}
	s.subsMu.Unlock()

	return ch, func() {
		s.subsMu.Lock()
		delete(s.subs, ch)
		s.subsMu.Unlock()
	}
}

// sample runs one pass over every facet and publishes the result. A facet
// whose read fails keeps its value from the previous snapshot, a partial
// failure never tears down what the other facets produced.
func (s *Sampler) sample() {
	now := time.Now()
	prev := s.Latest()

	snap := &types.Snapshot{Taken: now}

	cores, err := s.reader.CoreCount()
	if err != nil || cores <= 0 {
		if s.cores == 0 {
			s.cores = 1
		}
	} else {
		s.cores = cores
	}

	s.sampleCPUAndProcesses(snap, prev, now)
	s.sampleMemory(snap, prev)
	s.sampleNetwork(snap, prev, now)
	s.sampleDisk(snap, prev)

	s.publish(snap)
}

func (s *Sampler) sampleCPUAndProcesses(snap, prev *types.Snapshot, now time.Time) {
	snap.CPU.Cores = s.cores

	ticks, err := s.reader.CPUTicks()
	if err != nil {
		log.Errorf("[sampler] read cpu ticks failed %v", err)
		if prev != nil {
			snap.CPU.Percent = prev.CPU.Percent
		}
	} else {
		snap.CPU.Percent = s.cpu.update(ticks)
	}

	procs, err := s.reader.Processes()
	if err != nil {
		log.Errorf("[sampler] read processes failed %v", err)
		if prev != nil {
			snap.CPU.TopProcesses = prev.CPU.TopProcesses
			snap.Memory.TopProcesses = prev.Memory.TopProcesses
			snap.Urgent = prev.Urgent
		}
		return
	}

	visible := s.procs.update(procs, s.cores, now)
	byCPU := topByCPU(visible, common.TopProcessCount)
	byMem := topByMemory(visible, common.TopProcessCount)
	snap.CPU.TopProcesses = byCPU
	snap.Memory.TopProcesses = byMem
	snap.Urgent = classifyUrgent(mergeTop(byCPU, byMem))
}

func (s *Sampler) sampleMemory(snap, prev *types.Snapshot) {
	counters, err := s.reader.Memory()
	if err != nil {
		log.Errorf("[sampler] read memory failed %v", err)
		if prev != nil {
			top := snap.Memory.TopProcesses
			snap.Memory = prev.Memory
			snap.Memory.TopProcesses = top
		}
		return
	}

	top := snap.Memory.TopProcesses
	snap.Memory = buildMemorySnapshot(counters)
	snap.Memory.TopProcesses = top
}

func (s *Sampler) sampleNetwork(snap, prev *types.Snapshot, now time.Time) {
	sample, err := s.network.update(s.reader, now)
	switch {
	case errors.Is(err, common.ErrNoInterface):
		// no route means no throughput, not a stale reading
		log.Warnf("[sampler] no active interface")
		snap.Network.Current = types.NetworkRateSample{Timestamp: now}
		if prev != nil {
			snap.Network.History = prev.Network.History
		}
		return
	case err != nil:
		log.Errorf("[sampler] read network failed %v", err)
		if prev != nil {
			snap.Network = prev.Network
		}
		return
	}

	s.history.push(sample)
	snap.Network.Current = sample
	snap.Network.History = s.history.snapshot()
}

func (s *Sampler) sampleDisk(snap, prev *types.Snapshot) {
	usage, err := s.reader.DiskUsage()
	if err != nil {
		log.Errorf("[sampler] read disk failed %v", err)
		if prev != nil {
			snap.Disk = prev.Disk
		}
		return
	}
	snap.Disk = types.DiskSnapshot{
		TotalBytes:  usage.TotalBytes,
		UsedBytes:   usage.UsedBytes,
		UsedPercent: usage.UsedPercent,
	}
}

// publish makes the snapshot visible, fans it out and reports metrics.
// Subscribers with a full buffer are skipped.
func (s *Sampler) publish(snap *types.Snapshot) {
	s.latest.Store(snap)

	s.subsMu.Lock()
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
	s.subsMu.Unlock()

	if s.reporter != nil {
		_ = utils.Pool.Submit(func() { s.reporter.Report(snap) })
	}
}
