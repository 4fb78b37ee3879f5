// Package generation assembles fully-specified configuration records
// from sweep templates and benchmarks and persists them for the cache
// simulator to consume.
package generation

import "github.com/sarchlab/cachescape/hierarchy"

// MemoryParams carries the flat main-memory parameters kept for
// simulator compatibility.
type MemoryParams struct {
	AccessLatency int `json:"access_latency"`
}

// TraceParams points the simulator at the benchmark's trace.
type TraceParams struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
}

// Record is one persisted configuration: a resolved hierarchy paired
// with one benchmark trace. Records are built fresh per (template,
// benchmark) pair and never mutated after they are written.
type Record struct {
	CacheHierarchy []hierarchy.Level `json:"cache_hierarchy"`
	Memory         MemoryParams      `json:"memory"`
	Trace          TraceParams       `json:"trace"`
	TestName       string            `json:"test_name"`
	Description    string            `json:"description"`
}
