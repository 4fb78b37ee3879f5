// Package sweep generates cache hierarchy templates by varying one
// structural axis at a time against a shared baseline.
package sweep

import "github.com/sarchlab/cachescape/hierarchy"

// Set pairs a variation-set identifier with the generator that produces
// its templates. The identifier doubles as the output subdirectory name.
type Set struct {
	ID       string
	Generate func() []hierarchy.Template
}

// Registry returns every variation set in its declared order. The
// numeric prefixes exist purely for human navigation of the output
// tree; iteration order is what matters for determinism.
func Registry() []Set {
	return []Set{
		{"00_Base_Configs", BaseConfigs},
		{"01_L1_Size_Variations", L1Sizes},
		{"02_L1_Associativity_Variations", L1Associativities},
		{"03_L1_BlockSize_Variations", L1BlockSizes},
		{"04_L1_Policy_Variations", L1Policies},
		{"05_L2_Size_Variations", L2Sizes},
		{"06_L2_Associativity_Variations", L2Associativities},
		{"07_L2_BlockSize_Variations", L2BlockSizes},
		{"08_Inclusion_Policy_Variations", InclusionPolicies},
		{"09_Hierarchy_Size_Ratios", HierarchySizeRatios},
		{"10_L1Only_vs_Hierarchy", L1OnlyVsHierarchy},
		{"11_Write_Traffic_Analysis", WriteTraffic},
		{"12_Policy_Combinations", PolicyCombinations},
	}
}
