package generation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sarchlab/cachescape/benchmarks"
	"github.com/sarchlab/cachescape/hierarchy"
)

// Assemble combines one template with one benchmark into a Record. The
// template is cloned first, so the caller's copy is never touched.
// Organization resolution runs here, after every axis mutation is in
// place, and overwrites whatever organization and associativity the
// generator left on the levels.
func Assemble(
	t hierarchy.Template,
	b benchmarks.Benchmark,
	traceDir string,
) Record {
	if len(t.Levels) == 0 {
		panic("template must have at least one cache level")
	}

	t = t.Clone()

	tracePath := filepath.Join(traceDir, b.TraceFile)
	if abs, err := filepath.Abs(tracePath); err == nil {
		tracePath = abs
	}

	labels := make([]string, len(t.Levels))
	for i := range t.Levels {
		r := hierarchy.ResolveLevel(&t.Levels[i])
		labels[i] = r.Label
	}

	testName := fmt.Sprintf("%s_%s", b.Key, t.VariationTag)

	return Record{
		CacheHierarchy: t.Levels,
		Memory:         MemoryParams{AccessLatency: hierarchy.MemoryAccessLatency},
		Trace:          TraceParams{Type: "File", Filename: tracePath},
		TestName:       testName,
		Description:    describe(t, b, labels),
	}
}

func describe(
	t hierarchy.Template,
	b benchmarks.Benchmark,
	labels []string,
) string {
	parts := []string{
		fmt.Sprintf("Benchmark: %s (%s)", b.Description, b.Key),
		"Variation: " + t.VariationTag,
		"Analysis Focus: Hit rate and algorithmic behavior",
	}

	for i, level := range t.Levels {
		parts = append(parts, fmt.Sprintf(
			"L%d: Size=%dB, Block=%dB, Policy=%s, Org=%s",
			level.Level, level.Size, level.BlockSize,
			level.Policy, labels[i],
		))
	}

	return strings.Join(parts, " | ")
}
