package common

import "errors"

var (
	// ErrNoCPUStats means the kernel returned an empty tick table.
	ErrNoCPUStats = errors.New("no cpu stats")
	// ErrNoMemoryStats means the page accounting could not be parsed.
	ErrNoMemoryStats = errors.New("no memory stats")
	// ErrNoInterface means no default-route interface could be resolved.
	ErrNoInterface = errors.New("no active network interface")
	// ErrShortBuffer means an interface-statistics dump ended mid-record.
	ErrShortBuffer = errors.New("interface dump buffer too short")
	// ErrBadRecordLength means a record declared a length that does not fit
	// the remaining buffer.
	ErrBadRecordLength = errors.New("invalid record length in interface dump")
	// ErrProcessGone means the process vanished between enumeration and read.
	ErrProcessGone = errors.New("process has exited")
)
