// Package benchmarks holds the catalog of memory-access-pattern
// benchmarks that every generated configuration is paired with.
package benchmarks

import "fmt"

// Benchmark is one access-pattern workload. TraceFile is relative to the
// trace root directory.
type Benchmark struct {
	Key         string
	TraceFile   string
	Description string
}

// Catalog is an immutable, ordered collection of benchmarks.
type Catalog struct {
	entries []Benchmark
	index   map[string]int
}

// NewCatalog builds a catalog from the given benchmarks, preserving
// their order. Duplicate keys are a programmer error.
func NewCatalog(entries []Benchmark) Catalog {
	c := Catalog{
		entries: make([]Benchmark, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, b := range c.entries {
		if _, dup := c.index[b.Key]; dup {
			panic("duplicate benchmark key: " + b.Key)
		}
		c.index[b.Key] = i
	}

	return c
}

// DefaultCatalog returns the standard set of access-pattern benchmarks.
func DefaultCatalog() Catalog {
	return NewCatalog([]Benchmark{
		{"SequentialAccess", "sequential_access.out",
			"Sequential memory access pattern"},
		{"StridedAccess", "strided_access.out",
			"Strided memory access pattern"},
		{"RowMajorMatrix", "row_major.out",
			"Row-major matrix traversal"},
		{"ColumnMajorMatrix", "column_major.out",
			"Column-major matrix traversal"},
		{"RandomAccess", "random_access.out",
			"Random memory access pattern"},
		{"LinkedListTraversal", "linked_list.out",
			"Linked list traversal"},
		{"BlockedDataAccess", "blocked_access.out",
			"Blocked data access pattern"},
		{"WriteHeavy", "write_heavy.out",
			"Write-intensive workload"},
		{"MatrixNaive", "matrix_naive.out",
			"Naive matrix multiplication"},
		{"MatrixBlocked", "matrix_blocked.out",
			"Blocked matrix multiplication"},
		{"BinaryTree", "binary_tree.out",
			"Binary tree traversal"},
		{"ConflictHeavy", "conflict_heavy.out",
			"Conflict-heavy access pattern"},
	})
}

// Len returns the number of benchmarks in the catalog.
func (c Catalog) Len() int {
	return len(c.entries)
}

// All returns every benchmark in catalog order.
func (c Catalog) All() []Benchmark {
	out := make([]Benchmark, len(c.entries))
	copy(out, c.entries)

	return out
}

// Keys returns every benchmark key in catalog order.
func (c Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, b := range c.entries {
		keys[i] = b.Key
	}

	return keys
}

// Get looks a benchmark up by key.
func (c Catalog) Get(key string) (Benchmark, bool) {
	i, ok := c.index[key]
	if !ok {
		return Benchmark{}, false
	}

	return c.entries[i], true
}

// GroupNames returns the names of the defined benchmark groups in a
// fixed order.
func GroupNames() []string {
	return []string{
		"all",
		"quick_test",
		"spatial_locality",
		"temporal_locality",
		"mixed_patterns",
	}
}

var groups = map[string][]string{
	"quick_test": {
		"SequentialAccess", "RandomAccess", "LinkedListTraversal",
	},
	"spatial_locality": {
		"SequentialAccess", "RowMajorMatrix", "BlockedDataAccess",
	},
	"temporal_locality": {
		"LinkedListTraversal", "BinaryTree", "ConflictHeavy",
	},
	"mixed_patterns": {
		"StridedAccess", "ColumnMajorMatrix", "WriteHeavy",
	},
}

// Group returns the benchmarks of a named group in declaration order.
// The "all" group is the whole catalog. An unknown group name or a group
// member missing from the catalog is an error.
func (c Catalog) Group(name string) ([]Benchmark, error) {
	if name == "all" {
		return c.All(), nil
	}

	keys, ok := groups[name]
	if !ok {
		return nil, fmt.Errorf("unknown benchmark group %q", name)
	}

	out := make([]Benchmark, 0, len(keys))
	for _, key := range keys {
		b, ok := c.Get(key)
		if !ok {
			return nil, fmt.Errorf(
				"group %q references unknown benchmark %q", name, key)
		}
		out = append(out, b)
	}

	return out, nil
}
