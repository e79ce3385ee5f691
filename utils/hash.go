package utils

import "hash/fnv"

// HashBackends picks a stable backend out of a fixed list, keyed by fnv32a.
// Used to spread metric transfers across multiple statsd endpoints.
type HashBackends struct {
	data   []string
	length uint32
}

// NewHashBackends .
func NewHashBackends(data []string) *HashBackends {
	return &HashBackends{data, uint32(len(data))}
}

// Get returns the backend for v; offset shifts the choice deterministically.
func (h *HashBackends) Get(v string, offset int) string {
	if h.length == 0 {
		return ""
	}
	hash := fnv.New32a()
	hash.Write([]byte(v))
	return h.data[(hash.Sum32()+uint32(offset))%h.length]
}

// Len .
func (h *HashBackends) Len() int {
	return len(h.data)
}
