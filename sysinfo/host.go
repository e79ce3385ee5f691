package sysinfo

import (
	"context"
	"net"
	"os"
	"path/filepath"

	"github.com/hostwatch/agent/common"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"
	log "github.com/sirupsen/logrus"
)

// clockTick is the USER_HZ tick rate; gopsutil reports CPU times in
// seconds, the trackers want raw ticks.
const clockTick = 100

// HostReader reads the live host via gopsutil, with platform-specific raw
// reads where gopsutil has no equivalent (compressor pages, the interface
// statistics dump).
type HostReader struct {
	pageSize uint64
}

// NewHostReader .
func NewHostReader() *HostReader {
	return &HostReader{pageSize: uint64(os.Getpagesize())}
}

// CPUTicks reads the tick counters summed over all cores.
func (r *HostReader) CPUTicks() (CPUTicks, error) {
	times, err := cpu.Times(false)
	if err != nil {
		return CPUTicks{}, err
	}
	if len(times) == 0 {
		return CPUTicks{}, common.ErrNoCPUStats
	}
	t := times[0]
	return CPUTicks{
		User:   uint64(t.User * clockTick),
		System: uint64(t.System * clockTick),
		Nice:   uint64(t.Nice * clockTick),
		Idle:   uint64(t.Idle * clockTick),
	}, nil
}

// CoreCount .
func (r *HostReader) CoreCount() (int, error) {
	return cpu.Counts(true)
}

// Memory reads the page accounting. The compressor page count is only
// reachable through vm_stat, so when that read succeeds it supplies all
// five page counters; otherwise the gopsutil byte figures are converted
// back to pages and compressed is reported as zero.
func (r *HostReader) Memory() (MemoryCounters, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryCounters{}, err
	}
	if st, err := readVMStat(context.Background()); err == nil {
		st.TotalBytes = vm.Total
		return st, nil
	}
	return MemoryCounters{
		TotalBytes:    vm.Total,
		PageSize:      r.pageSize,
		ActivePages:   vm.Active / r.pageSize,
		WiredPages:    vm.Wired / r.pageSize,
		FreePages:     vm.Free / r.pageSize,
		InactivePages: vm.Inactive / r.pageSize,
	}, nil
}

// Processes walks the live process table. A process that fails any of its
// reads is dropped from the result, not reported as an error; it raced
// with exit or belongs to another user.
func (r *HostReader) Processes() ([]ProcessInfo, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	infos := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		times, err := p.Times()
		if err != nil {
			continue
		}
		memInfo, err := p.MemoryInfo()
		if err != nil || memInfo == nil {
			continue
		}
		// exe resolution can fail for system processes, the short
		// name is enough then
		exe, _ := p.Exe()

		infos = append(infos, ProcessInfo{
			Pid:       p.Pid,
			ShortName: name,
			ExePath:   exe,
			CPUTimeNs: uint64((times.User + times.System) * 1e9),
			RSSBytes:  memInfo.RSS,
		})
	}
	return infos, nil
}

// Interfaces enumerates interfaces with their flags and addresses.
func (r *HostReader) Interfaces() ([]InterfaceInfo, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	infos := make([]InterfaceInfo, 0, len(ifaces))
	for _, iface := range ifaces {
		info := InterfaceInfo{
			Name:    iface.Name,
			Up:      iface.Flags&net.FlagUp != 0,
			Running: iface.Flags&net.FlagRunning != 0,
		}
		addrs, err := iface.Addrs()
		if err != nil {
			log.Debugf("[sysinfo] addrs of %s failed %v", iface.Name, err)
		}
		for _, addr := range addrs {
			info.Addrs = append(info.Addrs, addr.String())
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// OutboundIP learns the default-route local address. Connecting a UDP
// socket never sends a packet; the kernel just picks the source address.
func (r *HostReader) OutboundIP() (string, error) {
	conn, err := net.Dial("udp", common.ProbeAddr)
	if err != nil {
		return "", err
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String(), nil
}

// DiskUsage reads the root filesystem gauge.
func (r *HostReader) DiskUsage() (DiskUsage, error) {
	usage, err := disk.Usage(string(filepath.Separator))
	if err != nil {
		return DiskUsage{}, err
	}
	return DiskUsage{
		TotalBytes:  usage.Total,
		UsedBytes:   usage.Used,
		UsedPercent: usage.UsedPercent,
	}, nil
}
