package benchmarks

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CheckTraces reports, for every benchmark in the catalog, whether its
// trace file exists under traceDir. Missing traces are advisory:
// configuration authoring is deliberately decoupled from trace
// availability, so callers normally only warn on a false return.
func CheckTraces(c Catalog, traceDir string, w io.Writer) bool {
	allExist := true

	fmt.Fprintln(w, "Checking for trace files...")
	for _, b := range c.All() {
		path := filepath.Join(traceDir, b.TraceFile)
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(w, "  MISSING: %s (for benchmark '%s')\n",
				path, b.Key)
			allExist = false
			continue
		}
		fmt.Fprintf(w, "  FOUND: %s\n", path)
	}

	if !allExist {
		fmt.Fprintln(w, "\nWARNING: Some trace files are missing. "+
			"Configs will still be generated, but the simulator needs "+
			"the traces to run them.")
	}

	return allExist
}
