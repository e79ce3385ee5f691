package common

import "time"

const (
	// SampleInterval is the fixed sampling cadence.
	// Sampling policy is deliberately not configurable.
	SampleInterval = 2 * time.Second
	// ResampleDelay is how long to wait after a process action
	// before taking an out-of-cycle sample.
	ResampleDelay = time.Second

	// NetworkHistorySize bounds the throughput history buffer.
	NetworkHistorySize = 40
	// TopProcessCount is the length of the ranked process views.
	TopProcessCount = 6
	// MaxAdvisories caps the urgent-process list.
	MaxAdvisories = 5

	// VisibleCPUPercent and VisibleMemoryMB gate which processes make it
	// into the snapshot at all. A process passes if it exceeds either one.
	VisibleCPUPercent = 0.05
	VisibleMemoryMB   = 50.0

	// ProbeAddr is the external address used to discover the default-route
	// interface. No packet has to reach it, the kernel picks the local
	// address at connect time.
	ProbeAddr = "8.8.8.8:80"

	// NameCacheTTL bounds how long a pid to display-name mapping is trusted.
	// Also guards against pid reuse.
	NameCacheTTL = 5 * time.Minute

	// CommandTimeout applies to maintenance commands (purge, dns flush).
	CommandTimeout = 10 * time.Second
)
