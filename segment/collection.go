// SPDX-License-Identifier: MIT

// Package segment - Collection storage & the add-or-accumulate registry.
//
// Purpose:
//   - Keep every descriptor in its own parallel slice so Sort can permute them
//     independently and the matrix builder can scan σ without touching areas.
//   - Give every type a fixed-width area row (one cell per molecule).
//
// Complexity quicksheet:
//   - Add: O(T) linear search over T existing types; At-style accessors: O(1).

package segment

import (
	"fmt"
	"math"
)

// Collection is the ordered set of segment types of one calculation batch.
type Collection struct {
	molecules int // width of every area row

	groups  []Group
	hb      []HBType
	sigma   []float64
	corr    []float64
	atomicN []uint16
	areas   [][]float64 // areas[k][mol]

	sorted bool
	perm   []int // permutation applied by the last Sort

	lower [NumGroups]int
	upper [NumGroups]int
	count [NumGroups]int
}

// NewCollection creates an empty collection for a batch of molecules.
// Returns ErrInvalidMolecules when molecules <= 0.
func NewCollection(molecules int) (*Collection, error) {
	if molecules <= 0 {
		return nil, ErrInvalidMolecules
	}

	return &Collection{molecules: molecules}, nil
}

// Len returns the number of segment types.
func (c *Collection) Len() int { return len(c.groups) }

// Molecules returns the number of molecules per area row.
func (c *Collection) Molecules() int { return c.molecules }

// Reserve grows the capacity of every parallel slice to at least n types.
func (c *Collection) Reserve(n int) {
	if n <= cap(c.groups) {
		return
	}
	c.groups = append(make([]Group, 0, n), c.groups...)
	c.hb = append(make([]HBType, 0, n), c.hb...)
	c.sigma = append(make([]float64, 0, n), c.sigma...)
	c.corr = append(make([]float64, 0, n), c.corr...)
	c.atomicN = append(make([]uint16, 0, n), c.atomicN...)
	c.areas = append(make([][]float64, 0, n), c.areas...)
}

// Clear removes all types and resets the group bounds. Molecules is kept.
func (c *Collection) Clear() {
	c.groups = c.groups[:0]
	c.hb = c.hb[:0]
	c.sigma = c.sigma[:0]
	c.corr = c.corr[:0]
	c.atomicN = c.atomicN[:0]
	c.areas = c.areas[:0]
	c.sorted = false
	c.perm = nil
	c.lower = [NumGroups]int{}
	c.upper = [NumGroups]int{}
	c.count = [NumGroups]int{}
}

// Add records area contributed by molecule mol to the type identified by
// (group, sigma, sigmaCorr, hb, atomicNumber).
// Implementation:
//   - Stage 1: area == 0 is a no-op (nothing created, nothing mutated).
//   - Stage 2: validate molecule index, group, hb class, σ, σcorr and area.
//   - Stage 3: linear search for an exact descriptor match; on a hit add the
//     area to that type's row, otherwise append a new type whose row holds
//     area at mol and zero elsewhere.
//
// Behavior highlights:
//   - Equal descriptors are never duplicated; areas are summed.
//   - Appending a new type invalidates a previous Sort; accumulating does not.
//
// Errors:
//   - ErrMoleculeIndex, ErrInvalidGroup, ErrInvalidHBType, ErrInvalidSigma,
//     ErrInvalidArea.
//
// Complexity:
//   - Time O(T), Space O(Molecules) for a new type.
func (c *Collection) Add(mol int, group Group, sigma, sigmaCorr float64, hb HBType, atomicNumber uint16, area float64) error {
	if area == 0 {
		return nil
	}
	if mol < 0 || mol >= c.molecules {
		return fmt.Errorf("Add(mol=%d): %w", mol, ErrMoleculeIndex)
	}
	if !group.Valid() {
		return fmt.Errorf("Add(group=%d): %w", group, ErrInvalidGroup)
	}
	if !hb.Valid() {
		return fmt.Errorf("Add(hb=%d): %w", hb, ErrInvalidHBType)
	}
	if !isFinite(sigma) || !isFinite(sigmaCorr) {
		return fmt.Errorf("Add(sigma=%v, sigmaCorr=%v): %w", sigma, sigmaCorr, ErrInvalidSigma)
	}
	if !isFinite(area) {
		return fmt.Errorf("Add(area=%v): %w", area, ErrInvalidArea)
	}

	k := c.find(group, sigma, sigmaCorr, hb, atomicNumber)
	if k < 0 {
		c.groups = append(c.groups, group)
		c.hb = append(c.hb, hb)
		c.sigma = append(c.sigma, sigma)
		c.corr = append(c.corr, sigmaCorr)
		c.atomicN = append(c.atomicN, atomicNumber)
		c.areas = append(c.areas, make([]float64, c.molecules))
		k = len(c.groups) - 1
		c.sorted = false
	}
	c.areas[k][mol] += area

	return nil
}

// find returns the index of the exact descriptor match or -1.
func (c *Collection) find(group Group, sigma, sigmaCorr float64, hb HBType, atomicNumber uint16) int {
	for k := range c.groups {
		if c.groups[k] == group &&
			c.hb[k] == hb &&
			c.sigma[k] == sigma &&
			c.corr[k] == sigmaCorr &&
			c.atomicN[k] == atomicNumber {
			return k
		}
	}

	return -1
}

// Group returns the group of type k. Indices are not bounds-checked.
func (c *Collection) Group(k int) Group { return c.groups[k] }

// HB returns the hydrogen-bond class of type k.
func (c *Collection) HB(k int) HBType { return c.hb[k] }

// Sigma returns σ of type k.
func (c *Collection) Sigma(k int) float64 { return c.sigma[k] }

// SigmaCorr returns σcorr of type k.
func (c *Collection) SigmaCorr(k int) float64 { return c.corr[k] }

// AtomicNumber returns the atomic number of type k.
func (c *Collection) AtomicNumber(k int) uint16 { return c.atomicN[k] }

// Area returns the area molecule mol contributes to type k.
func (c *Collection) Area(k, mol int) float64 { return c.areas[k][mol] }

// Type returns a snapshot of type k with a copied area row.
func (c *Collection) Type(k int) Type {
	return Type{
		Group:        c.groups[k],
		HB:           c.hb[k],
		Sigma:        c.sigma[k],
		SigmaCorr:    c.corr[k],
		AtomicNumber: c.atomicN[k],
		Areas:        append([]float64(nil), c.areas[k]...),
	}
}

// MoleculeArea sums the area of molecule mol over all types.
func (c *Collection) MoleculeArea(mol int) float64 {
	var s float64
	for k := range c.areas {
		s += c.areas[k][mol]
	}

	return s
}

// Clone returns a deep copy, including sort state and bounds.
func (c *Collection) Clone() *Collection {
	out := &Collection{
		molecules: c.molecules,
		groups:    append([]Group(nil), c.groups...),
		hb:        append([]HBType(nil), c.hb...),
		sigma:     append([]float64(nil), c.sigma...),
		corr:      append([]float64(nil), c.corr...),
		atomicN:   append([]uint16(nil), c.atomicN...),
		areas:     make([][]float64, len(c.areas)),
		sorted:    c.sorted,
		perm:      append([]int(nil), c.perm...),
		lower:     c.lower,
		upper:     c.upper,
		count:     c.count,
	}
	for k := range c.areas {
		out.areas[k] = append([]float64(nil), c.areas[k]...)
	}

	return out
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
