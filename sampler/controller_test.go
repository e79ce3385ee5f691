package sampler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestControllerTerminateGraceful(t *testing.T) {
	var killed int32
	resampled := make(chan struct{}, 1)

	c := NewController(func() { resampled <- struct{}{} })
	c.terminate = func(pid int32) error { return nil }
	c.kill = func(pid int32) error {
		atomic.AddInt32(&killed, 1)
		return nil
	}

	c.Terminate(1234)
	assert.Equal(t, int32(0), atomic.LoadInt32(&killed))

	select {
	case <-resampled:
	case <-time.After(5 * time.Second):
		t.Fatal("re-sample was never scheduled")
	}
}

func TestControllerTerminateEscalates(t *testing.T) {
	var killedPid int32
	c := NewController(func() {})
	c.terminate = func(pid int32) error { return errors.New("operation not permitted") }
	c.kill = func(pid int32) error {
		atomic.StoreInt32(&killedPid, pid)
		return nil
	}

	c.Terminate(4321)
	assert.Equal(t, int32(4321), atomic.LoadInt32(&killedPid))
}

func TestControllerTerminateBothFail(t *testing.T) {
	c := NewController(func() {})
	c.terminate = func(pid int32) error { return errors.New("gone") }
	c.kill = func(pid int32) error { return errors.New("gone") }

	// fire and forget, no panic, no error to surface
	c.Terminate(99999)
}
