// SPDX-License-Identifier: MIT

// Package segment - canonical ordering & group bounds.
//
// Purpose:
//   - Order types so that each group occupies one contiguous index range and
//     groups appear in ascending numeric order.
//   - Apply one permutation to every parallel slice without copying any of them.
//
// Complexity quicksheet:
//   - Sort: O(T log T) comparisons + O(T·k) swaps for k parallel slices.

package segment

import (
	"cmp"
	"slices"
)

// Sort orders the collection canonically and computes the group bounds.
// Implementation:
//   - Stage 1: build the permutation p (p[new] = old) with compareTypes.
//   - Stage 2: apply p in place to every parallel slice (cycle following).
//   - Stage 3: one counting scan; bounds are prefix sums of the counts.
//
// Behavior highlights:
//   - Strict total order (ties broken by original index), so Sort is stable
//     and sorting a sorted collection yields the identity permutation.
//   - Empty groups get a zero-width range positioned where the next nonempty
//     group starts (or at Len()).
//
// Complexity:
//   - Time O(T log T), Space O(T) for the permutation and the visited marks.
func (c *Collection) Sort() {
	p := c.permutation()

	applyPermutation(c.groups, p)
	applyPermutation(c.hb, p)
	applyPermutation(c.sigma, p)
	applyPermutation(c.corr, p)
	applyPermutation(c.atomicN, p)
	applyPermutation(c.areas, p)

	c.perm = p
	c.computeBounds()
	c.sorted = true
}

// permutation returns indices 0..T-1 ordered by the canonical tiers.
func (c *Collection) permutation() []int {
	p := make([]int, len(c.groups))
	for i := range p {
		p[i] = i
	}
	slices.SortFunc(p, c.compareTypes)

	return p
}

// compareTypes implements the tie-break tiers, in priority order:
// group; atomic number for monoatomic ions; σ; σcorr; hb class;
// atomic number; original index.
func (c *Collection) compareTypes(i, j int) int {
	if c.groups[i] != c.groups[j] {
		return cmp.Compare(c.groups[i], c.groups[j])
	}
	if c.groups[i].IsMonoatomicIon() && c.atomicN[i] != c.atomicN[j] {
		return cmp.Compare(c.atomicN[i], c.atomicN[j])
	}
	if c.sigma[i] != c.sigma[j] {
		return cmp.Compare(c.sigma[i], c.sigma[j])
	}
	if c.corr[i] != c.corr[j] {
		return cmp.Compare(c.corr[i], c.corr[j])
	}
	if c.hb[i] != c.hb[j] {
		return cmp.Compare(c.hb[i], c.hb[j])
	}
	if c.atomicN[i] != c.atomicN[j] {
		return cmp.Compare(c.atomicN[i], c.atomicN[j])
	}

	return cmp.Compare(i, j)
}

// computeBounds fills count/lower/upper from the sorted group slice.
func (c *Collection) computeBounds() {
	c.count = [NumGroups]int{}
	for _, g := range c.groups {
		c.count[g]++
	}
	start := 0
	for g := 0; g < NumGroups; g++ {
		c.lower[g] = start
		start += c.count[g]
		c.upper[g] = start
	}
}

// applyPermutation reorders vec so that vec'[i] = vec[p[i]], in place.
// Each cycle of p is walked once; a visited mark skips indices that an
// earlier cycle already placed.
// Complexity: O(len(vec)) swaps, O(len(vec)) bits of marks.
func applyPermutation[T any](vec []T, p []int) {
	done := make([]bool, len(vec))
	for i := range vec {
		if done[i] {
			continue
		}
		done[i] = true
		prev, j := i, p[i]
		for j != i {
			vec[prev], vec[j] = vec[j], vec[prev]
			done[j] = true
			prev, j = j, p[j]
		}
	}
}

// Sorted reports whether the bounds reflect the current contents.
func (c *Collection) Sorted() bool { return c.sorted }

// Permutation returns a copy of the permutation applied by the last Sort
// (entry i is the pre-sort index now stored at i), or nil before any Sort.
func (c *Collection) Permutation() []int {
	if c.perm == nil {
		return nil
	}

	return append([]int(nil), c.perm...)
}

// LowerBound returns the first index of group g. Valid after Sort.
func (c *Collection) LowerBound(g Group) int { return c.lower[g] }

// UpperBound returns one past the last index of group g. Valid after Sort.
func (c *Collection) UpperBound(g Group) int { return c.upper[g] }

// Count returns the number of types in group g. Valid after Sort.
func (c *Collection) Count(g Group) int { return c.count[g] }

// GroupSpan returns [LowerBound(g), UpperBound(g)).
func (c *Collection) GroupSpan(g Group) Span {
	return Span{Lower: c.lower[g], Upper: c.upper[g]}
}

// NeutralSpan returns the combined range of groups 0, 1 and 2:
// [LowerBound(0), max(UpperBound(0), UpperBound(1), UpperBound(2))).
func (c *Collection) NeutralSpan() Span {
	return Span{
		Lower: c.lower[NeutralMonoatomic],
		Upper: max(c.upper[NeutralMonoatomic], c.upper[NeutralPolyatomic], c.upper[Water]),
	}
}
