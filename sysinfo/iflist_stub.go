//go:build !darwin
// +build !darwin

package sysinfo

import (
	gonet "github.com/shirou/gopsutil/net"
)

// InterfaceCounters reads per-interface byte counters. Off darwin there
// is no routing-socket dump to parse so gopsutil does the read.
func (r *HostReader) InterfaceCounters() ([]InterfaceCounters, error) {
	stats, err := gonet.IOCounters(true)
	if err != nil {
		return nil, err
	}

	counters := make([]InterfaceCounters, 0, len(stats))
	for _, s := range stats {
		counters = append(counters, InterfaceCounters{
			Name:    s.Name,
			RxBytes: s.BytesRecv,
			TxBytes: s.BytesSent,
		})
	}
	return counters, nil
}
