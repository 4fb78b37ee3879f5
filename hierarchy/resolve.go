package hierarchy

import "fmt"

// Resolution is the outcome of resolving a level's organization from its
// raw size, block size, and requested associativity.
type Resolution struct {
	Organization  Organization
	Associativity int
	Label         string
}

// Resolve computes the effective organization of a cache level. An
// associativity request larger than the number of blocks is capped
// silently rather than rejected. A non-positive block size or a size too
// small to hold one block resolves to a sentinel organization with zero
// associativity. Resolve is pure and idempotent.
func Resolve(size, blockSize, associativity int) Resolution {
	if blockSize <= 0 {
		return Resolution{
			Organization:  InvalidBlockSize,
			Associativity: 0,
			Label:         "InvalidBlock",
		}
	}

	numBlocks := size / blockSize
	if numBlocks == 0 {
		return Resolution{
			Organization:  InvalidZeroBlocks,
			Associativity: 0,
			Label:         "InvalidSizeOrBlock",
		}
	}

	effective := associativity
	if effective > numBlocks {
		effective = numBlocks
	}

	switch {
	case effective >= numBlocks:
		return Resolution{
			Organization:  FullyAssociative,
			Associativity: effective,
			Label:         "FullyAssoc",
		}
	case effective == 1:
		return Resolution{
			Organization:  DirectMapped,
			Associativity: effective,
			Label:         "DirectMapped",
		}
	default:
		return Resolution{
			Organization:  SetAssociative,
			Associativity: effective,
			Label:         fmt.Sprintf("%dway", effective),
		}
	}
}

// ResolveLevel applies Resolve to a level in place, overwriting its
// Organization and Associativity fields, and returns the resolution. It
// must run only after every structural mutation to the level is final;
// an earlier resolution is stale and must be discarded.
func ResolveLevel(l *Level) Resolution {
	r := Resolve(l.Size, l.BlockSize, l.Associativity)
	l.Organization = r.Organization
	l.Associativity = r.Associativity

	return r
}
