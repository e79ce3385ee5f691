package types

import "time"

// Severity grades an urgent advisory.
type Severity string

// severity levels, ordered High > Medium > Low
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ProcessSample is one live process as observed during a sampling pass.
// Samples are rebuilt every tick; only the pid carries over between ticks.
type ProcessSample struct {
	Pid        int32   `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_percent"`
	MemoryMB   float64 `json:"memory_mb"`
}

// CPUSnapshot is the aggregate CPU view for one tick.
type CPUSnapshot struct {
	Percent      float64         `json:"percent"`
	Cores        int             `json:"cores"`
	TopProcesses []ProcessSample `json:"top_processes"`
}

// MemorySnapshot is the memory view for one tick. Used and free come from
// different kernel accounting categories, so used+free does not have to
// equal total.
type MemorySnapshot struct {
	TotalBytes   uint64          `json:"total_bytes"`
	UsedBytes    uint64          `json:"used_bytes"`
	FreeBytes    uint64          `json:"free_bytes"`
	TotalGiB     float64         `json:"total_gib"`
	UsedGiB      float64         `json:"used_gib"`
	FreeGiB      float64         `json:"free_gib"`
	TopProcesses []ProcessSample `json:"top_processes"`
}

// NetworkRateSample is the throughput observed between two consecutive
// counter readings of the default-route interface.
type NetworkRateSample struct {
	Interface       string    `json:"interface"`
	DownBytesPerSec float64   `json:"down_bytes_per_sec"`
	UpBytesPerSec   float64   `json:"up_bytes_per_sec"`
	DownMbps        float64   `json:"down_mbps"`
	UpMbps          float64   `json:"up_mbps"`
	Timestamp       time.Time `json:"timestamp"`
}

// NetworkSnapshot carries the current rate plus a bounded history window.
type NetworkSnapshot struct {
	Current NetworkRateSample   `json:"current"`
	History []NetworkRateSample `json:"history"`
}

// DiskSnapshot is an absolute gauge of the root filesystem.
type DiskSnapshot struct {
	TotalBytes  uint64  `json:"total_bytes"`
	UsedBytes   uint64  `json:"used_bytes"`
	UsedPercent float64 `json:"used_percent"`
}

// UrgentAdvisory flags a process that warrants attention. Derived every
// tick, never persisted.
type UrgentAdvisory struct {
	Pid        int32    `json:"pid"`
	Name       string   `json:"name"`
	Issue      string   `json:"issue"`
	Severity   Severity `json:"severity"`
	CPUPercent float64  `json:"cpu_percent"`
	MemoryMB   float64  `json:"memory_mb"`
}

// Snapshot is the immutable bundle published after each sampling pass.
// All facets belong to the same tick.
type Snapshot struct {
	Taken   time.Time        `json:"taken"`
	CPU     CPUSnapshot      `json:"cpu"`
	Memory  MemorySnapshot   `json:"memory"`
	Network NetworkSnapshot  `json:"network"`
	Disk    DiskSnapshot     `json:"disk"`
	Urgent  []UrgentAdvisory `json:"urgent"`
}
