package api

import (
	"net/http"
	"runtime/pprof"
	"strconv"

	_ "net/http/pprof"

	"github.com/hostwatch/agent/sampler"
	"github.com/hostwatch/agent/version"

	"github.com/bmizerany/pat"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Handler serves the snapshot API
type Handler struct {
	sampler *sampler.Sampler
}

// URL /version/
func (h *Handler) version(req *http.Request) (int, interface{}) {
	return http.StatusOK, JSON{"version": version.VERSION}
}

// URL /profile/
func (h *Handler) profile(req *http.Request) (int, interface{}) {
	r := JSON{}
	for _, p := range pprof.Profiles() {
		r[p.Name()] = p.Count()
	}
	return http.StatusOK, r
}

// URL /snapshot/
func (h *Handler) snapshot(req *http.Request) (int, interface{}) {
	snap := h.sampler.Latest()
	if snap == nil {
		return http.StatusServiceUnavailable, JSON{"error": "no snapshot yet"}
	}
	return http.StatusOK, snap
}

// URL /cpu/
func (h *Handler) cpu(req *http.Request) (int, interface{}) {
	snap := h.sampler.Latest()
	if snap == nil {
		return http.StatusServiceUnavailable, JSON{"error": "no snapshot yet"}
	}
	return http.StatusOK, snap.CPU
}

// URL /memory/
func (h *Handler) memory(req *http.Request) (int, interface{}) {
	snap := h.sampler.Latest()
	if snap == nil {
		return http.StatusServiceUnavailable, JSON{"error": "no snapshot yet"}
	}
	return http.StatusOK, snap.Memory
}

// URL /network/
func (h *Handler) network(req *http.Request) (int, interface{}) {
	snap := h.sampler.Latest()
	if snap == nil {
		return http.StatusServiceUnavailable, JSON{"error": "no snapshot yet"}
	}
	return http.StatusOK, snap.Network
}

// URL /disk/
func (h *Handler) disk(req *http.Request) (int, interface{}) {
	snap := h.sampler.Latest()
	if snap == nil {
		return http.StatusServiceUnavailable, JSON{"error": "no snapshot yet"}
	}
	return http.StatusOK, snap.Disk
}

// URL /urgent/
func (h *Handler) urgent(req *http.Request) (int, interface{}) {
	snap := h.sampler.Latest()
	if snap == nil {
		return http.StatusServiceUnavailable, JSON{"error": "no snapshot yet"}
	}
	return http.StatusOK, snap.Urgent
}

// URL /process/terminate/
func (h *Handler) terminate(req *http.Request) (int, interface{}) {
	pid, err := strconv.ParseInt(req.FormValue("pid"), 10, 32)
	if err != nil || pid <= 0 {
		return http.StatusBadRequest, JSON{"error": "invalid pid"}
	}
	h.sampler.Controller().Terminate(int32(pid))
	return http.StatusAccepted, JSON{"pid": pid}
}

// URL /memory/purge/
func (h *Handler) purgeMemory(req *http.Request) (int, interface{}) {
	if err := h.sampler.Controller().PurgeMemory(req.Context()); err != nil {
		return http.StatusInternalServerError, JSON{"error": err.Error()}
	}
	return http.StatusOK, JSON{"ok": true}
}

// URL /dns/flush/
func (h *Handler) flushDNS(req *http.Request) (int, interface{}) {
	if err := h.sampler.Controller().FlushDNS(req.Context()); err != nil {
		return http.StatusInternalServerError, JSON{"error": err.Error()}
	}
	return http.StatusOK, JSON{"ok": true}
}

// Serve starts the API in a background goroutine
func Serve(addr string, s *sampler.Sampler) {
	if addr == "" {
		return
	}

	h := &Handler{sampler: s}
	restfulAPIServer := pat.New()
	handlers := map[string]map[string]func(*http.Request) (int, interface{}){
		"GET": {
			"/profile/":  h.profile,
			"/version/":  h.version,
			"/snapshot/": h.snapshot,
			"/cpu/":      h.cpu,
			"/memory/":   h.memory,
			"/network/":  h.network,
			"/disk/":     h.disk,
			"/urgent/":   h.urgent,
		},
		"POST": {
			"/process/terminate/": h.terminate,
			"/memory/purge/":      h.purgeMemory,
			"/dns/flush/":         h.flushDNS,
		},
	}

	for method, routes := range handlers {
		for route, handler := range routes {
			restfulAPIServer.Add(method, route, http.HandlerFunc(JSONWrapper(handler)))
		}
	}

	http.Handle("/", restfulAPIServer)
	http.Handle("/metrics", promhttp.Handler())
	log.Infof("[api] http api started %s", addr)
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Panicf("[api] http api failed %s", err)
		}
	}()
}
