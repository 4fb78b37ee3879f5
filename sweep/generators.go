package sweep

import (
	"fmt"
	"sort"

	"github.com/sarchlab/cachescape/hierarchy"
)

// BaseConfigs produces the single unmodified baseline template.
func BaseConfigs() []hierarchy.Template {
	t := hierarchy.BaseTemplate()
	t.VariationTag = "BaseConfig"

	return []hierarchy.Template{t}
}

// L1Sizes sweeps the L1 capacity to expose capacity-miss behavior.
func L1Sizes() []hierarchy.Template {
	sizes := []int{256, 512, 1024, 2048, 4096, 8192, 16384}

	templates := make([]hierarchy.Template, 0, len(sizes))
	for _, size := range sizes {
		t := hierarchy.BaseTemplate()
		t.Levels[0].Size = size
		t.VariationTag = "L1Size_" + hierarchy.SizeLabel(size)
		templates = append(templates, t)
	}

	return templates
}

// L1Associativities sweeps the requested L1 associativity, always
// including the value that saturates the baseline L1 into a fully
// associative cache.
func L1Associativities() []hierarchy.Template {
	base := hierarchy.BaseTemplate()

	return associativitySweep(base, 0, "L1Assoc_")
}

// L2Associativities sweeps the requested L2 associativity, including
// L2's own saturation point.
func L2Associativities() []hierarchy.Template {
	base := hierarchy.BaseTemplate()

	return associativitySweep(base, 1, "L2Assoc_")
}

// associativitySweep varies the associativity of one level. The tag
// carries the resolved organization label, computed on a throwaway copy
// so that the template itself still holds the raw request; resolution of
// the persisted record happens later, in the assembler.
func associativitySweep(
	base hierarchy.Template,
	levelIdx int,
	tagPrefix string,
) []hierarchy.Template {
	targets := []int{1, 2, 4, 8, 16, 32}

	level := base.Levels[levelIdx]
	if saturation := level.NumBlocks(); saturation > 0 {
		targets = append(targets, saturation)
	}
	targets = dedupeSorted(targets)

	templates := make([]hierarchy.Template, 0, len(targets))
	for _, assoc := range targets {
		t := base.Clone()
		t.Levels[levelIdx].Associativity = assoc

		probe := t.Levels[levelIdx]
		r := hierarchy.Resolve(probe.Size, probe.BlockSize, probe.Associativity)
		t.VariationTag = tagPrefix + r.Label

		templates = append(templates, t)
	}

	return templates
}

func dedupeSorted(values []int) []int {
	sort.Ints(values)

	out := values[:0]
	for i, v := range values {
		if i == 0 || v != values[i-1] {
			out = append(out, v)
		}
	}

	return out
}

// L1BlockSizes sweeps the L1 block size. When the hierarchy has an L2,
// its block size is raised to at least the new L1 block size so blocks
// moving down the hierarchy always fit.
func L1BlockSizes() []hierarchy.Template {
	blockSizes := []int{16, 32, 64, 128, 256}

	templates := make([]hierarchy.Template, 0, len(blockSizes))
	for _, bs := range blockSizes {
		t := hierarchy.BaseTemplate()
		t.Levels[0].BlockSize = bs
		if len(t.Levels) > 1 && t.Levels[1].BlockSize < bs {
			t.Levels[1].BlockSize = bs
		}
		t.VariationTag = fmt.Sprintf("L1Block_%dB", bs)
		templates = append(templates, t)
	}

	return templates
}

// L2BlockSizes sweeps the L2 block size. The L1 block size is lowered to
// the smaller of its default and the new L2 block size; it is never
// raised above its default.
func L2BlockSizes() []hierarchy.Template {
	blockSizes := []int{16, 32, 64, 128, 256}
	defaultL1Block := hierarchy.BaseTemplate().Levels[0].BlockSize

	templates := make([]hierarchy.Template, 0, len(blockSizes))
	for _, bs := range blockSizes {
		t := hierarchy.BaseTemplate()
		t.Levels[1].BlockSize = bs

		l1Block := defaultL1Block
		if bs < l1Block {
			l1Block = bs
		}
		t.Levels[0].BlockSize = l1Block

		t.VariationTag = fmt.Sprintf("L2Block_%dB", bs)
		templates = append(templates, t)
	}

	return templates
}

// L1Policies compares replacement policies at L1.
func L1Policies() []hierarchy.Template {
	policies := []hierarchy.Policy{
		hierarchy.LRU, hierarchy.FIFO, hierarchy.Random,
	}

	templates := make([]hierarchy.Template, 0, len(policies))
	for _, p := range policies {
		t := hierarchy.BaseTemplate()
		t.Levels[0].Policy = p
		t.VariationTag = "L1Policy_" + string(p)
		templates = append(templates, t)
	}

	return templates
}

// L2Sizes sweeps the L2 capacity.
func L2Sizes() []hierarchy.Template {
	sizes := []int{2048, 4096, 8192, 16384, 32768, 65536}

	templates := make([]hierarchy.Template, 0, len(sizes))
	for _, size := range sizes {
		t := hierarchy.BaseTemplate()
		t.Levels[1].Size = size
		t.VariationTag = "L2Size_" + hierarchy.SizeLabel(size)
		templates = append(templates, t)
	}

	return templates
}

// InclusionPolicies compares the three L2 inclusion policies.
func InclusionPolicies() []hierarchy.Template {
	policies := []hierarchy.InclusionPolicy{
		hierarchy.Inclusive, hierarchy.Exclusive, hierarchy.NINE,
	}

	templates := make([]hierarchy.Template, 0, len(policies))
	for _, p := range policies {
		t := hierarchy.BaseTemplate()
		t.Levels[1].InclusionPolicy = p
		t.VariationTag = "Inclusion_" + string(p)
		templates = append(templates, t)
	}

	return templates
}

// HierarchySizeRatios splits a fixed 12KB capacity budget between L1 and
// L2 at several named ratios.
func HierarchySizeRatios() []hierarchy.Template {
	ratios := []struct {
		l1, l2 int
		tag    string
	}{
		{1024, 11264, "Small_L1_Large_L2"},
		{2048, 10240, "L1_L2_1to5"},
		{3072, 9216, "L1_L2_1to3"},
		{4096, 8192, "L1_L2_1to2"},
		{6144, 6144, "Equal_L1_L2"},
		{8192, 4096, "L1_L2_2to1"},
		{10240, 2048, "Large_L1_Small_L2"},
	}

	templates := make([]hierarchy.Template, 0, len(ratios))
	for _, r := range ratios {
		t := hierarchy.BaseTemplate()
		t.Levels[0].Size = r.l1
		t.Levels[1].Size = r.l2
		t.VariationTag = "HierarchyRatio_" + r.tag
		templates = append(templates, t)
	}

	return templates
}

// L1OnlyVsHierarchy compares single-level caches against two-level
// hierarchies of the same total capacity.
func L1OnlyVsHierarchy() []hierarchy.Template {
	templates := []hierarchy.Template{}

	l1OnlySizes := []int{4096, 8192, 12288, 16384}
	for _, size := range l1OnlySizes {
		t := hierarchy.L1OnlyTemplate()
		t.Levels[0].Size = size
		t.VariationTag = "L1Only_" + hierarchy.SizeLabel(size)
		templates = append(templates, t)
	}

	hierarchies := []struct {
		l1, l2 int
		tag    string
	}{
		{1024, 3072, "L1L2_4KB"},
		{2048, 6144, "L1L2_8KB"},
		{3072, 9216, "L1L2_12KB"},
		{4096, 12288, "L1L2_16KB"},
	}
	for _, h := range hierarchies {
		t := hierarchy.BaseTemplate()
		t.Levels[0].Size = h.l1
		t.Levels[1].Size = h.l2
		t.VariationTag = "Hierarchy_" + h.tag
		templates = append(templates, t)
	}

	return templates
}

// WriteTraffic sweeps all four write-back/write-allocate combinations,
// applied identically to every level present.
func WriteTraffic() []hierarchy.Template {
	combos := []struct {
		writeBack, writeAllocate bool
		tag                      string
	}{
		{true, true, "WB_WA"},
		{true, false, "WB_NoWA"},
		{false, true, "WT_WA"},
		{false, false, "WT_NoWA"},
	}

	templates := make([]hierarchy.Template, 0, len(combos))
	for _, combo := range combos {
		t := hierarchy.BaseTemplate()
		for i := range t.Levels {
			t.Levels[i].WriteBack = combo.writeBack
			t.Levels[i].WriteAllocate = combo.writeAllocate
		}
		t.VariationTag = "WriteTraffic_" + combo.tag
		templates = append(templates, t)
	}

	return templates
}

// PolicyCombinations pairs different replacement policies at L1 and L2.
func PolicyCombinations() []hierarchy.Template {
	combos := []struct {
		l1, l2 hierarchy.Policy
	}{
		{hierarchy.LRU, hierarchy.LRU},
		{hierarchy.LRU, hierarchy.FIFO},
		{hierarchy.LRU, hierarchy.Random},
		{hierarchy.FIFO, hierarchy.LRU},
		{hierarchy.Random, hierarchy.LRU},
	}

	templates := make([]hierarchy.Template, 0, len(combos))
	for _, combo := range combos {
		t := hierarchy.BaseTemplate()
		t.Levels[0].Policy = combo.l1
		t.Levels[1].Policy = combo.l2
		t.VariationTag = fmt.Sprintf(
			"PolicyCombo_%s_%s", combo.l1, combo.l2)
		templates = append(templates, t)
	}

	return templates
}
