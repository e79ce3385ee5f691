package version

import (
	"fmt"
	"runtime"
)

// NAME is the name of this daemon
const NAME = "hostwatch-agent"

var (
	// VERSION is set by -ldflags at build time
	VERSION = "unknown"
	// REVISION is set by -ldflags at build time
	REVISION = "HEAD"
	// BUILTAT is set by -ldflags at build time
	BUILTAT = "now"
)

// String prints the full version banner
func String() string {
	version := ""
	version += fmt.Sprintf("Version:        %s\n", VERSION)
	version += fmt.Sprintf("Git hash:       %s\n", REVISION)
	version += fmt.Sprintf("Built:          %s\n", BUILTAT)
	version += fmt.Sprintf("Golang version: %s\n", runtime.Version())
	version += fmt.Sprintf("OS/Arch:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return version
}
