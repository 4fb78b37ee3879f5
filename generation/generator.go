package generation

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sarchlab/cachescape/benchmarks"
	"github.com/sarchlab/cachescape/manifest"
	"github.com/sarchlab/cachescape/sweep"
)

// SetCount is the number of records generated for one variation set.
type SetCount struct {
	SetID string
	Count int
}

// Summary reports what a generation run produced.
type Summary struct {
	PerSet        []SetCount
	Total         int
	TracesPresent bool
}

// Generator drives the full design-space generation: every variation
// set crossed with every benchmark of the chosen group.
type Generator struct {
	configDir string
	traceDir  string
	group     string
	catalog   benchmarks.Catalog
	sets      []sweep.Set
	writer    *Writer
	recorder  *manifest.Recorder
	out       io.Writer
}

// Builder can build Generators.
type Builder struct {
	configDir string
	traceDir  string
	group     string
	catalog   benchmarks.Catalog
	sets      []sweep.Set
	recorder  *manifest.Recorder
	out       io.Writer
}

// MakeBuilder creates a Builder with the default catalog, the full
// variation-set registry, and the conventional directory names.
func MakeBuilder() Builder {
	return Builder{
		configDir: "configs",
		traceDir:  "traces",
		group:     "all",
		catalog:   benchmarks.DefaultCatalog(),
		sets:      sweep.Registry(),
		out:       os.Stdout,
	}
}

// WithConfigDir sets the root directory that records are written under.
func (b Builder) WithConfigDir(dir string) Builder {
	b.configDir = dir
	return b
}

// WithTraceDir sets the directory that benchmark traces live in.
func (b Builder) WithTraceDir(dir string) Builder {
	b.traceDir = dir
	return b
}

// WithBenchmarkGroup selects the benchmark group to cross every
// variation set with.
func (b Builder) WithBenchmarkGroup(group string) Builder {
	b.group = group
	return b
}

// WithCatalog replaces the benchmark catalog.
func (b Builder) WithCatalog(c benchmarks.Catalog) Builder {
	b.catalog = c
	return b
}

// WithSets replaces the variation-set registry.
func (b Builder) WithSets(sets []sweep.Set) Builder {
	b.sets = sets
	return b
}

// WithManifest attaches a manifest recorder that gets one row per
// written record.
func (b Builder) WithManifest(r *manifest.Recorder) Builder {
	b.recorder = r
	return b
}

// WithOutput redirects the progress report.
func (b Builder) WithOutput(w io.Writer) Builder {
	b.out = w
	return b
}

// Build builds the Generator.
func (b Builder) Build() *Generator {
	if len(b.sets) == 0 {
		panic("generator needs at least one variation set")
	}

	return &Generator{
		configDir: b.configDir,
		traceDir:  b.traceDir,
		group:     b.group,
		catalog:   b.catalog,
		sets:      b.sets,
		writer:    NewWriter(b.configDir),
		recorder:  b.recorder,
		out:       b.out,
	}
}

// Run generates the full design space. Missing traces only warn; a
// failed file write is logged and skipped so one bad record never
// aborts the batch.
func (g *Generator) Run() (Summary, error) {
	group, err := g.catalog.Group(g.group)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		TracesPresent: benchmarks.CheckTraces(g.catalog, g.traceDir, g.out),
	}

	for _, set := range g.sets {
		fmt.Fprintf(g.out, "\nGenerating for variation set: %s\n", set.ID)

		count := 0
		for _, tpl := range set.Generate() {
			for _, bench := range group {
				rec := Assemble(tpl, bench, g.traceDir)

				path, err := g.writer.Write(set.ID, rec)
				if err != nil {
					log.Printf("skipping %s: %v", rec.TestName, err)
					continue
				}

				if g.recorder != nil {
					g.recorder.Record(manifest.Entry{
						Set:          set.ID,
						TestName:     rec.TestName,
						Benchmark:    bench.Key,
						VariationTag: tpl.VariationTag,
						Path:         path,
					})
				}

				count++
			}
		}

		fmt.Fprintf(g.out, "  Generated %d config files in '%s/%s'\n",
			count, g.configDir, set.ID)

		sum.PerSet = append(sum.PerSet, SetCount{SetID: set.ID, Count: count})
		sum.Total += count
	}

	fmt.Fprintf(g.out, "\nTotal configuration files generated: %d\n", sum.Total)

	return sum, nil
}
