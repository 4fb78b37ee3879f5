package sweep_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachescape/hierarchy"
	"github.com/sarchlab/cachescape/sweep"
)

func tagsOf(templates []hierarchy.Template) []string {
	tags := make([]string, len(templates))
	for i, t := range templates {
		tags[i] = t.VariationTag
	}

	return tags
}

var _ = Describe("Registry", func() {
	It("should list the variation sets in declared order", func() {
		sets := sweep.Registry()

		ids := make([]string, len(sets))
		for i, s := range sets {
			ids[i] = s.ID
		}

		Expect(ids).To(Equal([]string{
			"00_Base_Configs",
			"01_L1_Size_Variations",
			"02_L1_Associativity_Variations",
			"03_L1_BlockSize_Variations",
			"04_L1_Policy_Variations",
			"05_L2_Size_Variations",
			"06_L2_Associativity_Variations",
			"07_L2_BlockSize_Variations",
			"08_Inclusion_Policy_Variations",
			"09_Hierarchy_Size_Ratios",
			"10_L1Only_vs_Hierarchy",
			"11_Write_Traffic_Analysis",
			"12_Policy_Combinations",
		}))
	})

	It("should produce identical templates on repeated invocations", func() {
		for _, set := range sweep.Registry() {
			first := set.Generate()
			second := set.Generate()

			Expect(second).To(Equal(first), "set %s", set.ID)
		}
	})

	It("should give every template a tag unique within its set", func() {
		for _, set := range sweep.Registry() {
			seen := map[string]bool{}
			for _, tag := range tagsOf(set.Generate()) {
				Expect(seen[tag]).To(BeFalse(),
					"duplicate tag %s in set %s", tag, set.ID)
				seen[tag] = true
			}
		}
	})

	It("should hand out templates that are safe to mutate", func() {
		for _, set := range sweep.Registry() {
			first := set.Generate()
			for i := range first {
				first[i].VariationTag = "clobbered"
				first[i].Levels[0].Size = -1
			}

			second := set.Generate()
			for _, t := range second {
				Expect(t.VariationTag).NotTo(Equal("clobbered"))
				Expect(t.Levels[0].Size).NotTo(Equal(-1))
			}
		}
	})
})

var _ = Describe("BaseConfigs", func() {
	It("should produce the single baseline template", func() {
		templates := sweep.BaseConfigs()

		Expect(templates).To(HaveLen(1))
		Expect(templates[0].VariationTag).To(Equal("BaseConfig"))
		Expect(templates[0].Levels).To(Equal(hierarchy.BaseTemplate().Levels))
	})
})

var _ = Describe("L1Sizes", func() {
	It("should sweep 256B through 16KB", func() {
		templates := sweep.L1Sizes()

		Expect(tagsOf(templates)).To(Equal([]string{
			"L1Size_256B", "L1Size_512B", "L1Size_1KB", "L1Size_2KB",
			"L1Size_4KB", "L1Size_8KB", "L1Size_16KB",
		}))

		for _, t := range templates {
			Expect(t.Levels[1].Size).To(Equal(8192),
				"L2 must stay at baseline")
		}
	})
})

var _ = Describe("L1Associativities", func() {
	It("should tag each template with the resolved label", func() {
		// Baseline L1 holds 32 blocks, so the saturation point 32 is
		// already in the target list.
		Expect(tagsOf(sweep.L1Associativities())).To(Equal([]string{
			"L1Assoc_DirectMapped",
			"L1Assoc_2way",
			"L1Assoc_4way",
			"L1Assoc_8way",
			"L1Assoc_16way",
			"L1Assoc_FullyAssoc",
		}))
	})

	It("should keep the raw associativity request on the template", func() {
		templates := sweep.L1Associativities()

		// The last template requests the saturating associativity.
		Expect(templates[len(templates)-1].Levels[0].Associativity).
			To(Equal(32))
	})
})

var _ = Describe("L2Associativities", func() {
	It("should include L2's own saturation point", func() {
		// Baseline L2 holds 256 blocks, beyond the fixed targets.
		Expect(tagsOf(sweep.L2Associativities())).To(Equal([]string{
			"L2Assoc_DirectMapped",
			"L2Assoc_2way",
			"L2Assoc_4way",
			"L2Assoc_8way",
			"L2Assoc_16way",
			"L2Assoc_32way",
			"L2Assoc_FullyAssoc",
		}))
	})
})

var _ = Describe("L1BlockSizes", func() {
	It("should raise the L2 block size to at least the L1 block size",
		func() {
			templates := sweep.L1BlockSizes()

			Expect(tagsOf(templates)).To(Equal([]string{
				"L1Block_16B", "L1Block_32B", "L1Block_64B",
				"L1Block_128B", "L1Block_256B",
			}))

			for _, t := range templates {
				l1 := t.Levels[0].BlockSize
				l2 := t.Levels[1].BlockSize
				Expect(l2).To(BeNumerically(">=", l1))
			}

			// A small L1 block leaves L2 at its default.
			Expect(templates[0].Levels[1].BlockSize).To(Equal(32))
			// A large L1 block drags L2 up with it.
			Expect(templates[4].Levels[1].BlockSize).To(Equal(256))
		})
})

var _ = Describe("L2BlockSizes", func() {
	It("should lower L1's block size but never raise it past its default",
		func() {
			templates := sweep.L2BlockSizes()

			Expect(tagsOf(templates)).To(Equal([]string{
				"L2Block_16B", "L2Block_32B", "L2Block_64B",
				"L2Block_128B", "L2Block_256B",
			}))

			// L2 at 16B pulls L1 down to 16B.
			Expect(templates[0].Levels[0].BlockSize).To(Equal(16))
			// Larger L2 blocks leave L1 at its 32B default.
			Expect(templates[2].Levels[0].BlockSize).To(Equal(32))
			Expect(templates[4].Levels[0].BlockSize).To(Equal(32))
		})
})

var _ = Describe("Policy sweeps", func() {
	It("should cover the three replacement policies at L1", func() {
		Expect(tagsOf(sweep.L1Policies())).To(Equal([]string{
			"L1Policy_LRU", "L1Policy_FIFO", "L1Policy_RANDOM",
		}))
	})

	It("should pair policies across the two levels", func() {
		templates := sweep.PolicyCombinations()

		Expect(tagsOf(templates)).To(Equal([]string{
			"PolicyCombo_LRU_LRU",
			"PolicyCombo_LRU_FIFO",
			"PolicyCombo_LRU_RANDOM",
			"PolicyCombo_FIFO_LRU",
			"PolicyCombo_RANDOM_LRU",
		}))

		Expect(templates[3].Levels[0].Policy).To(Equal(hierarchy.FIFO))
		Expect(templates[3].Levels[1].Policy).To(Equal(hierarchy.LRU))
	})
})

var _ = Describe("L2Sizes", func() {
	It("should sweep 2KB through 64KB", func() {
		Expect(tagsOf(sweep.L2Sizes())).To(Equal([]string{
			"L2Size_2KB", "L2Size_4KB", "L2Size_8KB",
			"L2Size_16KB", "L2Size_32KB", "L2Size_64KB",
		}))
	})
})

var _ = Describe("InclusionPolicies", func() {
	It("should set the policy on L2 only", func() {
		templates := sweep.InclusionPolicies()

		Expect(tagsOf(templates)).To(Equal([]string{
			"Inclusion_Inclusive", "Inclusion_Exclusive", "Inclusion_NINE",
		}))

		for _, t := range templates {
			Expect(t.Levels[0].InclusionPolicy).
				To(Equal(hierarchy.InclusionPolicy("")))
		}
		Expect(templates[1].Levels[1].InclusionPolicy).
			To(Equal(hierarchy.Exclusive))
	})
})

var _ = Describe("HierarchySizeRatios", func() {
	It("should split a fixed 12KB budget", func() {
		templates := sweep.HierarchySizeRatios()

		Expect(templates).To(HaveLen(7))
		for _, t := range templates {
			Expect(t.Levels[0].Size + t.Levels[1].Size).To(Equal(12288))
		}

		Expect(tagsOf(templates)[0]).To(Equal(
			"HierarchyRatio_Small_L1_Large_L2"))
		Expect(tagsOf(templates)[6]).To(Equal(
			"HierarchyRatio_Large_L1_Small_L2"))
	})
})

var _ = Describe("L1OnlyVsHierarchy", func() {
	It("should oppose single-level caches to equal-capacity hierarchies",
		func() {
			templates := sweep.L1OnlyVsHierarchy()

			Expect(tagsOf(templates)).To(Equal([]string{
				"L1Only_4KB", "L1Only_8KB", "L1Only_12KB", "L1Only_16KB",
				"Hierarchy_L1L2_4KB", "Hierarchy_L1L2_8KB",
				"Hierarchy_L1L2_12KB", "Hierarchy_L1L2_16KB",
			}))

			for _, t := range templates[:4] {
				Expect(t.Levels).To(HaveLen(1))
			}
			for i, t := range templates[4:] {
				Expect(t.Levels).To(HaveLen(2))
				total := t.Levels[0].Size + t.Levels[1].Size
				Expect(total).To(Equal(templates[i].Levels[0].Size),
					"hierarchy capacity must match its L1-only twin")
			}
		})
})

var _ = Describe("WriteTraffic", func() {
	It("should apply each combination to every level", func() {
		templates := sweep.WriteTraffic()

		Expect(tagsOf(templates)).To(Equal([]string{
			"WriteTraffic_WB_WA", "WriteTraffic_WB_NoWA",
			"WriteTraffic_WT_WA", "WriteTraffic_WT_NoWA",
		}))

		for _, t := range templates {
			for _, l := range t.Levels {
				Expect(l.WriteBack).To(Equal(t.Levels[0].WriteBack))
				Expect(l.WriteAllocate).To(Equal(t.Levels[0].WriteAllocate))
			}
		}

		Expect(templates[3].Levels[0].WriteBack).To(BeFalse())
		Expect(templates[3].Levels[0].WriteAllocate).To(BeFalse())
	})
})
