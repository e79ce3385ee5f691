//go:build darwin
// +build darwin

package sysinfo

import (
	"syscall"
)

// InterfaceCounters fetches the raw interface dump from the routing
// socket and parses the byte counters out of it.
func (r *HostReader) InterfaceCounters() ([]InterfaceCounters, error) {
	buf, err := syscall.RouteRIB(syscall.NET_RT_IFLIST2, 0)
	if err != nil {
		return nil, err
	}
	return ParseInterfaceDump(buf)
}
