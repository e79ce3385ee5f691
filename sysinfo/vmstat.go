package sysinfo

import (
	"bufio"
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/hostwatch/agent/common"
)

var vmStatPageSize = regexp.MustCompile(`page size of (\d+) bytes`)

// readVMStat shells out to vm_stat for the page accounting incl. the
// compressor, which has no sysctl or gopsutil equivalent.
func readVMStat(ctx context.Context) (MemoryCounters, error) {
	ctx, cancel := context.WithTimeout(ctx, common.CommandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "vm_stat").Output()
	if err != nil {
		return MemoryCounters{}, err
	}
	return parseVMStat(string(out))
}

// parseVMStat extracts the page size and the page counters from vm_stat
// output. Counter lines look like "Pages active: 514424.".
func parseVMStat(out string) (MemoryCounters, error) {
	var st MemoryCounters

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if m := vmStatPageSize.FindStringSubmatch(line); m != nil {
			st.PageSize, _ = strconv.ParseUint(m[1], 10, 64)
			continue
		}

		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}
		value, err := strconv.ParseUint(strings.Trim(strings.TrimSpace(line[idx+1:]), "."), 10, 64)
		if err != nil {
			continue
		}

		switch strings.TrimSpace(line[:idx]) {
		case "Pages free":
			st.FreePages = value
		case "Pages active":
			st.ActivePages = value
		case "Pages inactive":
			st.InactivePages = value
		case "Pages wired down":
			st.WiredPages = value
		case "Pages occupied by compressor":
			st.CompressedPages = value
		}
	}

	if st.PageSize == 0 {
		return st, common.ErrNoMemoryStats
	}
	return st, nil
}
