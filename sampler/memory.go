package sampler

import (
	"github.com/hostwatch/agent/sysinfo"
	"github.com/hostwatch/agent/types"

	"github.com/docker/go-units"
)

// buildMemorySnapshot derives the used/free split from the raw page
// accounting. Used counts active, wired and compressor pages; free
// counts free and inactive pages, inactive being reclaimable on demand.
func buildMemorySnapshot(m sysinfo.MemoryCounters) types.MemorySnapshot {
	used := (m.ActivePages + m.WiredPages + m.CompressedPages) * m.PageSize
	free := (m.FreePages + m.InactivePages) * m.PageSize

	return types.MemorySnapshot{
		TotalBytes: m.TotalBytes,
		UsedBytes:  used,
		FreeBytes:  free,
		TotalGiB:   float64(m.TotalBytes) / units.GiB,
		UsedGiB:    float64(used) / units.GiB,
		FreeGiB:    float64(free) / units.GiB,
	}
}
