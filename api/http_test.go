package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hostwatch/agent/sampler"
	"github.com/hostwatch/agent/sysinfo/mocks"
	"github.com/hostwatch/agent/types"

	"github.com/stretchr/testify/assert"
)

func TestVersionEndpoint(t *testing.T) {
	h := &Handler{}
	w := httptest.NewRecorder()
	JSONWrapper(h.version)(w, httptest.NewRequest(http.MethodGet, "/version/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "version")
}

func TestSnapshotBeforeFirstPass(t *testing.T) {
	s := sampler.New(&types.Config{HostName: "fake"}, mocks.FromTemplate())
	h := &Handler{sampler: s}

	w := httptest.NewRecorder()
	JSONWrapper(h.snapshot)(w, httptest.NewRequest(http.MethodGet, "/snapshot/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSnapshotEndpoints(t *testing.T) {
	s := sampler.New(&types.Config{HostName: "fake"}, mocks.FromTemplate())
	h := &Handler{sampler: s}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, unsub := s.Subscribe()
	defer unsub()
	go func() { _ = s.Run(ctx) }()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no snapshot published")
	}

	for name, handler := range map[string]func(*http.Request) (int, interface{}){
		"/snapshot/": h.snapshot,
		"/cpu/":      h.cpu,
		"/memory/":   h.memory,
		"/network/":  h.network,
		"/disk/":     h.disk,
		"/urgent/":   h.urgent,
	} {
		w := httptest.NewRecorder()
		JSONWrapper(handler)(w, httptest.NewRequest(http.MethodGet, name, nil))
		assert.Equal(t, http.StatusOK, w.Code, name)
	}

	w := httptest.NewRecorder()
	JSONWrapper(h.cpu)(w, httptest.NewRequest(http.MethodGet, "/cpu/", nil))
	var cpu types.CPUSnapshot
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cpu))
	assert.Equal(t, 4, cpu.Cores)
}

func TestTerminateRejectsBadPid(t *testing.T) {
	s := sampler.New(&types.Config{HostName: "fake"}, mocks.FromTemplate())
	h := &Handler{sampler: s}

	for _, pid := range []string{"", "abc", "-1", "0"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/process/terminate/?pid="+pid, nil)
		JSONWrapper(h.terminate)(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "pid %q", pid)
	}
}
