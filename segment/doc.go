// Package segment aggregates molecular surface segments into canonical
// segment types and orders them into contiguous polarity/charge groups.
//
// 🚀 What is a segment type?
//
//	Every surface patch of a molecule carries a screening charge density σ,
//	a locally correlated density σcorr, a hydrogen-bond class and, for
//	monoatomic ions, the atomic number of its atom. Patches whose descriptors
//	are identical are interchangeable for the interaction model, so they are
//	merged into one Type that accumulates the contact area contributed by
//	every molecule of the calculation batch.
//
// ✨ Lifecycle of a Collection:
//   - NewCollection(molecules) fixes the width of every per-molecule area row.
//   - Add(...) is called once per quantized sample; equal descriptors merge.
//   - Sort() orders types by group and secondary descriptors and computes the
//     [LowerBound(g), UpperBound(g)) range of each of the 7 groups.
//   - Afterwards the collection is read-only for matrix construction.
//
// Groups (ascending order after Sort):
//
//	0 neutral monoatomic   3 cation monoatomic   5 anion monoatomic
//	1 neutral polyatomic   4 cation polyatomic   6 anion polyatomic
//	2 water
//
// Descriptors are compared with exact floating-point equality: quantize σ and
// σcorr before calling Add, otherwise near-identical samples stay separate.
//
// Collection is not safe for concurrent mutation.
package segment
