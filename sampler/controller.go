package sampler

import (
	"context"
	"os/exec"
	"time"

	"github.com/hostwatch/agent/common"
	"github.com/hostwatch/agent/utils"

	"github.com/shirou/gopsutil/process"
	log "github.com/sirupsen/logrus"
)

// Controller carries out the actions the snapshot consumers can trigger,
// terminating processes and running host maintenance commands. The signal
// functions are fields so tests can run without touching real pids.
type Controller struct {
	terminate func(pid int32) error
	kill      func(pid int32) error
	resample  func()

	resamplePending utils.AtomicBool
}

// NewController .
func NewController(resample func()) *Controller {
	return &Controller{
		terminate: func(pid int32) error {
			p, err := process.NewProcess(pid)
			if err != nil {
				return common.ErrProcessGone
			}
			return p.Terminate()
		},
		kill: func(pid int32) error {
			p, err := process.NewProcess(pid)
			if err != nil {
				return common.ErrProcessGone
			}
			return p.Kill()
		},
		resample: resample,
	}
}

// Terminate asks the process to exit and escalates to a kill when the
// polite signal fails. The outcome surfaces through the next snapshot,
// not through an error, so a vanished process is a success. A re-sample
// is scheduled shortly after to reflect the change.
func (c *Controller) Terminate(pid int32) {
	if err := c.terminate(pid); err != nil {
		log.Infof("[controller] terminate %d failed, killing: %v", pid, err)
		if err := c.kill(pid); err != nil {
			log.Warnf("[controller] kill %d failed: %v", pid, err)
		}
	}

	// a burst of terminations needs only one delayed pass
	if c.resamplePending.Cas() {
		_ = utils.Pool.Submit(func() {
			time.Sleep(common.ResampleDelay)
			c.resamplePending.Unset()
			c.resample()
		})
	}
}

// PurgeMemory asks the kernel to flush the filesystem cache.
func (c *Controller) PurgeMemory(ctx context.Context) error {
	return c.runCommand(ctx, "purge")
}

// FlushDNS restarts the resolver so cached entries are dropped.
func (c *Controller) FlushDNS(ctx context.Context) error {
	if err := c.runCommand(ctx, "dscacheutil", "-flushcache"); err != nil {
		return err
	}
	return c.runCommand(ctx, "killall", "-HUP", "mDNSResponder")
}

func (c *Controller) runCommand(ctx context.Context, name string, args ...string) error {
	var err error
	utils.WithTimeout(ctx, common.CommandTimeout, func(ctx context.Context) {
		var out []byte
		if out, err = exec.CommandContext(ctx, name, args...).CombinedOutput(); err != nil {
			log.Errorf("[controller] %s failed: %v, output: %s", name, err, out)
			return
		}
		log.Infof("[controller] %s done", name)
	})
	return err
}
