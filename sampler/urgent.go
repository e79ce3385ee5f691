package sampler

import (
	"fmt"

	"github.com/hostwatch/agent/common"
	"github.com/hostwatch/agent/types"
)

// Advisory thresholds. A process is graded by its worst symptom.
const (
	urgentCPUPercent   = 50.0
	urgentMemoryMB     = 2048.0
	moderateCPUPercent = 20.0
	moderateMemoryMB   = 1000.0
)

// classifyUrgent grades the given samples and returns at most
// MaxAdvisories advisories, in the order the samples were given.
func classifyUrgent(samples []types.ProcessSample) []types.UrgentAdvisory {
	advisories := []types.UrgentAdvisory{}
	for _, s := range samples {
		if len(advisories) >= common.MaxAdvisories {
			break
		}

		adv := types.UrgentAdvisory{
			Pid:        s.Pid,
			Name:       s.Name,
			CPUPercent: s.CPUPercent,
			MemoryMB:   s.MemoryMB,
		}

		switch {
		case s.CPUPercent > urgentCPUPercent:
			adv.Severity = types.SeverityHigh
			adv.Issue = fmt.Sprintf("High CPU usage (%.1f%%)", s.CPUPercent)
		case s.MemoryMB > urgentMemoryMB:
			adv.Severity = types.SeverityMedium
			adv.Issue = fmt.Sprintf("High memory usage (%.0f MB)", s.MemoryMB)
		case s.CPUPercent > moderateCPUPercent || s.MemoryMB > moderateMemoryMB:
			adv.Severity = types.SeverityLow
			adv.Issue = "Moderate resource usage"
		default:
			continue
		}

		advisories = append(advisories, adv)
	}
	return advisories
}
