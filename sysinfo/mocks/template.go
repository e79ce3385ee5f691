package mocks

import (
	"sync"

	"github.com/hostwatch/agent/sysinfo"
)

// Magi a fake host with a steady workload
type Magi struct {
	Reader
	sync.Mutex

	ticks    sysinfo.CPUTicks
	procs    []sysinfo.ProcessInfo
	counters []sysinfo.InterfaceCounters
}

func (m *Magi) init() {
	m.ticks = sysinfo.CPUTicks{User: 1000, System: 500, Nice: 0, Idle: 8500}
	m.procs = []sysinfo.ProcessInfo{
		{Pid: 101, ShortName: "melchior", ExePath: "/usr/bin/melchior", CPUTimeNs: 2_000_000_000, RSSBytes: 512 << 20},
		{Pid: 102, ShortName: "balthasar", ExePath: "/usr/bin/balthasar", CPUTimeNs: 500_000_000, RSSBytes: 100 << 20},
		{Pid: 103, ShortName: "casper", ExePath: "/usr/bin/casper", CPUTimeNs: 10_000_000, RSSBytes: 10 << 20},
	}
	m.counters = []sysinfo.InterfaceCounters{
		{Name: "lo0", RxBytes: 1 << 20, TxBytes: 1 << 20},
		{Name: "en0", RxBytes: 10 << 20, TxBytes: 2 << 20},
	}
}

// Advance moves the fake host forward as if it had been busy.
func (m *Magi) Advance(busyTicks, idleTicks, cpuNs, rxBytes, txBytes uint64) {
	m.Lock()
	defer m.Unlock()
	m.ticks.User += busyTicks
	m.ticks.Idle += idleTicks
	for i := range m.procs {
		m.procs[i].CPUTimeNs += cpuNs
	}
	for i := range m.counters {
		m.counters[i].RxBytes += rxBytes
		m.counters[i].TxBytes += txBytes
	}
}

// FromTemplate returns a mock reader instance created from template
func FromTemplate() sysinfo.Reader {
	m := &Magi{}
	m.init()
	m.On("CPUTicks").Return(func() sysinfo.CPUTicks {
		m.Lock()
		defer m.Unlock()
		return m.ticks
	}, nil)
	m.On("CoreCount").Return(4, nil)
	m.On("Memory").Return(sysinfo.MemoryCounters{
		TotalBytes:      16 << 30,
		PageSize:        16384,
		ActivePages:     400000,
		WiredPages:      100000,
		CompressedPages: 50000,
		FreePages:       200000,
		InactivePages:   150000,
	}, nil)
	m.On("Processes").Return(func() []sysinfo.ProcessInfo {
		m.Lock()
		defer m.Unlock()
		procs := make([]sysinfo.ProcessInfo, len(m.procs))
		copy(procs, m.procs)
		return procs
	}, nil)
	m.On("Interfaces").Return([]sysinfo.InterfaceInfo{
		{Name: "lo0", Up: true, Running: true, Addrs: []string{"127.0.0.1/8", "::1/128"}},
		{Name: "en0", Up: true, Running: true, Addrs: []string{"192.168.1.10/24"}},
	}, nil)
	m.On("InterfaceCounters").Return(func() []sysinfo.InterfaceCounters {
		m.Lock()
		defer m.Unlock()
		counters := make([]sysinfo.InterfaceCounters, len(m.counters))
		copy(counters, m.counters)
		return counters
	}, nil)
	m.On("OutboundIP").Return("192.168.1.10", nil)
	m.On("DiskUsage").Return(sysinfo.DiskUsage{
		TotalBytes:  500 << 30,
		UsedBytes:   300 << 30,
		UsedPercent: 60.0,
	}, nil)
	return m
}
