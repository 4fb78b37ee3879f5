package hierarchy

import "fmt"

// Template is a partially-specified cache hierarchy produced by an axis
// generator. VariationTag identifies the template within its variation
// set; it is folded into the final test name and never persisted itself.
type Template struct {
	VariationTag string
	Levels       []Level
}

// Clone returns a deep copy of the template. Generators and the
// assembler only ever mutate clones, so a template handed out once can
// never be changed behind a consumer's back.
func (t Template) Clone() Template {
	levels := make([]Level, len(t.Levels))
	copy(levels, t.Levels)

	return Template{
		VariationTag: t.VariationTag,
		Levels:       levels,
	}
}

// MemoryAccessLatency is the flat main-memory latency carried in every
// record for simulator compatibility.
const MemoryAccessLatency = 100

// BaseTemplate returns a fresh copy of the default two-level hierarchy:
// a 1KB 2-way L1 over an inclusive 8KB 4-way L2, both with 32B blocks,
// LRU replacement, and write-back write-allocate behavior.
func BaseTemplate() Template {
	return Template{
		Levels: []Level{
			{
				Level:         1,
				Organization:  SetAssociative,
				Size:          1024,
				BlockSize:     32,
				Associativity: 2,
				Policy:        LRU,
				AccessLatency: 1,
				WriteBack:     true,
				WriteAllocate: true,
			},
			{
				Level:           2,
				Organization:    SetAssociative,
				Size:            8192,
				BlockSize:       32,
				Associativity:   4,
				Policy:          LRU,
				AccessLatency:   10,
				WriteBack:       true,
				WriteAllocate:   true,
				InclusionPolicy: Inclusive,
			},
		},
	}
}

// L1OnlyTemplate returns a fresh copy of the single-level hierarchy used
// by the L1-only comparison sweeps.
func L1OnlyTemplate() Template {
	base := BaseTemplate()

	return Template{
		Levels: []Level{base.Levels[0]},
	}
}

// SizeLabel renders a byte count the way sweep tags expect: whole
// kilobytes for sizes of at least 1KB, raw bytes otherwise.
func SizeLabel(bytes int) string {
	if bytes >= 1024 {
		return fmt.Sprintf("%dKB", bytes/1024)
	}

	return fmt.Sprintf("%dB", bytes)
}
