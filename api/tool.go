package api

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// JSON .
type JSON map[string]interface{}

// JSONWrapper encodes handler results as a JSON response
func JSONWrapper(f func(*http.Request) (int, interface{})) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, req *http.Request) {
		log.Debugf("[api] %s %s", req.Method, req.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		code, result := f(req)
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Errorf("[api] encode response failed %v", err)
		}
	}
}
