//go:build darwin
// +build darwin

package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterfaceCountersLive(t *testing.T) {
	r := NewHostReader()
	counters, err := r.InterfaceCounters()
	assert.NoError(t, err)
	assert.NotEmpty(t, counters)

	names := map[string]bool{}
	for _, c := range counters {
		assert.NotEmpty(t, c.Name)
		names[c.Name] = true
	}
	assert.True(t, names["lo0"])
}
