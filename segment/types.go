// SPDX-License-Identifier: MIT

package segment

// Group partitions segment types by molecule charge state and atomicity.
type Group uint8

// The seven groups in canonical order.
const (
	NeutralMonoatomic Group = iota // 0
	NeutralPolyatomic              // 1
	Water                          // 2
	CationMonoatomic               // 3
	CationPolyatomic               // 4
	AnionMonoatomic                // 5
	AnionPolyatomic                // 6
)

// NumGroups is the number of groups; valid groups are [0, NumGroups).
const NumGroups = 7

var groupNames = [NumGroups]string{
	"neutral-monoatomic",
	"neutral-polyatomic",
	"water",
	"cation-monoatomic",
	"cation-polyatomic",
	"anion-monoatomic",
	"anion-polyatomic",
}

// Valid reports whether g is one of the seven groups.
func (g Group) Valid() bool { return g < NumGroups }

// IsIonic reports whether g belongs to a charged molecule (groups 3..6).
func (g Group) IsIonic() bool { return g >= CationMonoatomic && g.Valid() }

// IsMonoatomicIon reports whether g is group 3 or 5. Types of these groups
// are ordered by atomic number before σ.
func (g Group) IsMonoatomicIon() bool { return g == CationMonoatomic || g == AnionMonoatomic }

// String returns the group name, or "invalid" for out-of-range values.
func (g Group) String() string {
	if !g.Valid() {
		return "invalid"
	}

	return groupNames[g]
}

// HBType is the hydrogen-bonding class of a segment.
type HBType uint8

const (
	HBNone     HBType = 0 // no hydrogen bonding
	HBDonor    HBType = 1 // donor class, pairs with negative σ
	HBAcceptor HBType = 2 // acceptor class, pairs with positive σ
)

// Valid reports whether h is 0, 1 or 2.
func (h HBType) Valid() bool { return h <= HBAcceptor }

// Type is a value snapshot of one segment type.
type Type struct {
	Group        Group
	HB           HBType
	Sigma        float64   // screening charge density [e/Å²]
	SigmaCorr    float64   // locally averaged density for the misfit correlation [e/Å²]
	AtomicNumber uint16    // meaningful for monoatomic ions
	Areas        []float64 // contact area per molecule [Å²], copy
}

// TotalArea sums the per-molecule areas.
func (t Type) TotalArea() float64 {
	var s float64
	for _, a := range t.Areas {
		s += a
	}

	return s
}

// Span is a half-open index range [Lower, Upper).
type Span struct {
	Lower, Upper int
}

// Len returns the number of indices in the span (never negative).
func (s Span) Len() int {
	if s.Upper < s.Lower {
		return 0
	}

	return s.Upper - s.Lower
}

// Contains reports whether k lies in [Lower, Upper).
func (s Span) Contains(k int) bool { return k >= s.Lower && k < s.Upper }
