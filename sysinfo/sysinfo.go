// Package sysinfo wraps the operating-system counters the sampler consumes.
// Everything here is a one-shot read; no deltas, no state beyond the page
// size. Rate computation lives in the sampler package.
package sysinfo

// CPUTicks is one reading of the aggregate tick counters, summed across all
// cores. Each field increases monotonically except across counter resets.
type CPUTicks struct {
	User   uint64
	System uint64
	Nice   uint64
	Idle   uint64
}

// MemoryCounters is one reading of the kernel page accounting.
type MemoryCounters struct {
	TotalBytes      uint64
	PageSize        uint64
	ActivePages     uint64
	WiredPages      uint64
	CompressedPages uint64
	FreePages       uint64
	InactivePages   uint64
}

// ProcessInfo is the raw per-process reading: identity plus the two
// counters the sampler needs. CPUTimeNs is cumulative user+system time.
type ProcessInfo struct {
	Pid       int32
	ShortName string
	ExePath   string
	CPUTimeNs uint64
	RSSBytes  uint64
}

// InterfaceInfo describes one network interface for route resolution.
type InterfaceInfo struct {
	Name    string
	Up      bool
	Running bool
	Addrs   []string
}

// InterfaceCounters is the cumulative byte counters of one interface.
type InterfaceCounters struct {
	Name    string
	RxBytes uint64
	TxBytes uint64
}

// DiskUsage is an absolute gauge of one filesystem.
type DiskUsage struct {
	TotalBytes  uint64
	UsedBytes   uint64
	UsedPercent float64
}

// Reader is the capability interface over the host operating system.
// Implementations must be safe for use from a single goroutine; the sampler
// never calls into a Reader concurrently.
type Reader interface {
	// CPUTicks reads the aggregate tick counters.
	CPUTicks() (CPUTicks, error)
	// CoreCount returns the number of logical cores.
	CoreCount() (int, error)
	// Memory reads the page-granularity memory accounting.
	Memory() (MemoryCounters, error)
	// Processes enumerates the live process table. Processes whose
	// counters cannot be read (usually a race with exit) are skipped.
	Processes() ([]ProcessInfo, error)
	// Interfaces enumerates network interfaces with flags and addresses.
	Interfaces() ([]InterfaceInfo, error)
	// InterfaceCounters reads the cumulative per-interface byte counters.
	InterfaceCounters() ([]InterfaceCounters, error)
	// OutboundIP reports the local address the kernel would bind a
	// connectionless socket to when reaching an external host.
	OutboundIP() (string, error)
	// DiskUsage reads the root filesystem gauge.
	DiskUsage() (DiskUsage, error)
}
