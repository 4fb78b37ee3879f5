// Package hierarchy defines the structural description of a cache
// hierarchy and resolves the effective organization of each level.
package hierarchy

// Organization classifies the structure of a single cache level.
type Organization string

// Valid organizations. The two Invalid organizations are sentinels for
// geometries that cannot hold a single block; they are persisted as-is so
// that broken sweeps remain inspectable.
const (
	SetAssociative    Organization = "SetAssociative"
	DirectMapped      Organization = "DirectMapped"
	FullyAssociative  Organization = "FullyAssociative"
	InvalidBlockSize  Organization = "Invalid_BlockSize"
	InvalidZeroBlocks Organization = "Invalid_ZeroBlocks"
)

// Policy is a block replacement policy.
type Policy string

// Supported replacement policies.
const (
	LRU    Policy = "LRU"
	FIFO   Policy = "FIFO"
	Random Policy = "RANDOM"
)

// InclusionPolicy controls how a lower-level cache relates to the levels
// above it. Only meaningful on non-L1 levels.
type InclusionPolicy string

// Supported inclusion policies. NINE is non-inclusive non-exclusive.
const (
	Inclusive InclusionPolicy = "Inclusive"
	Exclusive InclusionPolicy = "Exclusive"
	NINE      InclusionPolicy = "NINE"
)

// Level describes one cache level. Level 1 is nearest to the processor.
// AccessLatency is carried for simulator compatibility only; the
// generator never reasons about timing.
type Level struct {
	Level           int             `json:"level"`
	Organization    Organization    `json:"organization"`
	Size            int             `json:"size"`
	BlockSize       int             `json:"block_size"`
	Associativity   int             `json:"associativity"`
	Policy          Policy          `json:"policy"`
	AccessLatency   int             `json:"access_latency"`
	WriteBack       bool            `json:"write_back"`
	WriteAllocate   bool            `json:"write_allocate"`
	InclusionPolicy InclusionPolicy `json:"inclusion_policy,omitempty"`
}

// NumBlocks returns the number of blocks the level can hold, or 0 when
// the geometry is invalid.
func (l Level) NumBlocks() int {
	if l.BlockSize <= 0 {
		return 0
	}

	return l.Size / l.BlockSize
}
