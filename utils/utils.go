package utils

import (
	"context"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// WritePid writes the current pid to the given path
func WritePid(path string) {
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0755); err != nil {
		log.Panicf("save pid file failed %s", err)
	}
}

// WithTimeout runs f under a derived context with the given timeout
func WithTimeout(ctx context.Context, timeout time.Duration, f func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	f(ctx)
}

// ClampPercent keeps a percentage in [0, 100]
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// SatSub is a saturating unsigned subtraction, used for monotonic counters
// that can reset or wrap.
func SatSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
