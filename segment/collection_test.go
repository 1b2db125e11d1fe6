package segment_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosmors/segment"
)

// mustCollection allocates a collection or fails the test.
func mustCollection(t *testing.T, molecules int) *segment.Collection {
	t.Helper()
	c, err := segment.NewCollection(molecules)
	require.NoError(t, err)

	return c
}

func TestNewCollection_RejectsNonPositive(t *testing.T) {
	for _, m := range []int{0, -1} {
		_, err := segment.NewCollection(m)
		require.ErrorIs(t, err, segment.ErrInvalidMolecules)
	}
}

// TestAdd_DeduplicatesAndSums adds the same descriptor twice.
func TestAdd_DeduplicatesAndSums(t *testing.T) {
	c := mustCollection(t, 2)
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, 0.005, 0.004, segment.HBNone, 6, 1.25))
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, 0.005, 0.004, segment.HBNone, 6, 0.75))
	require.NoError(t, c.Add(1, segment.NeutralPolyatomic, 0.005, 0.004, segment.HBNone, 6, 3.0))

	require.Equal(t, 1, c.Len())
	require.Equal(t, 2.0, c.Area(0, 0))
	require.Equal(t, 3.0, c.Area(0, 1))
	require.Equal(t, 5.0, c.Type(0).TotalArea())
}

// TestAdd_DistinctDescriptors checks that every key field separates types.
func TestAdd_DistinctDescriptors(t *testing.T) {
	c := mustCollection(t, 1)
	base := func() error {
		return c.Add(0, segment.NeutralPolyatomic, 0.01, 0.02, segment.HBNone, 8, 1)
	}
	require.NoError(t, base())
	require.NoError(t, c.Add(0, segment.Water, 0.01, 0.02, segment.HBNone, 8, 1))
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, 0.011, 0.02, segment.HBNone, 8, 1))
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, 0.01, 0.021, segment.HBNone, 8, 1))
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, 0.01, 0.02, segment.HBAcceptor, 8, 1))
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, 0.01, 0.02, segment.HBNone, 7, 1))
	require.Equal(t, 6, c.Len())

	require.NoError(t, base())
	require.Equal(t, 6, c.Len())
	require.Equal(t, 2.0, c.Area(0, 0))
}

// TestAdd_ZeroAreaIsNoop verifies that area 0 neither creates nor mutates.
func TestAdd_ZeroAreaIsNoop(t *testing.T) {
	c := mustCollection(t, 1)
	require.NoError(t, c.Add(0, segment.Water, -0.01, 0, segment.HBDonor, 1, 2.5))
	before := c.Type(0)

	require.NoError(t, c.Add(0, segment.Water, -0.01, 0, segment.HBDonor, 1, 0))
	require.NoError(t, c.Add(0, segment.Water, 0.02, 0, segment.HBNone, 8, 0))
	// a zero area is accepted even with inputs that would otherwise fail
	require.NoError(t, c.Add(99, segment.Group(42), 0, 0, segment.HBType(9), 0, 0))

	require.Equal(t, 1, c.Len())
	require.Equal(t, before, c.Type(0))
}

// TestAdd_InvalidInput covers the validation errors.
func TestAdd_InvalidInput(t *testing.T) {
	c := mustCollection(t, 2)
	tests := []struct {
		name string
		err  error
		call func() error
	}{
		{"mol negative", segment.ErrMoleculeIndex, func() error {
			return c.Add(-1, segment.Water, 0, 0, segment.HBNone, 0, 1)
		}},
		{"mol too large", segment.ErrMoleculeIndex, func() error {
			return c.Add(2, segment.Water, 0, 0, segment.HBNone, 0, 1)
		}},
		{"group", segment.ErrInvalidGroup, func() error {
			return c.Add(0, segment.Group(7), 0, 0, segment.HBNone, 0, 1)
		}},
		{"hb", segment.ErrInvalidHBType, func() error {
			return c.Add(0, segment.Water, 0, 0, segment.HBType(3), 0, 1)
		}},
		{"nan sigma", segment.ErrInvalidSigma, func() error {
			return c.Add(0, segment.Water, math.NaN(), 0, segment.HBNone, 0, 1)
		}},
		{"inf sigma", segment.ErrInvalidSigma, func() error {
			return c.Add(0, segment.Water, math.Inf(-1), 0, segment.HBNone, 0, 1)
		}},
		{"nan sigma corr", segment.ErrInvalidSigma, func() error {
			return c.Add(0, segment.Water, 0, math.NaN(), segment.HBNone, 0, 1)
		}},
		{"inf sigma corr", segment.ErrInvalidSigma, func() error {
			return c.Add(0, segment.Water, 0, math.Inf(1), segment.HBNone, 0, 1)
		}},
		{"nan area", segment.ErrInvalidArea, func() error {
			return c.Add(0, segment.Water, 0, 0, segment.HBNone, 0, math.NaN())
		}},
		{"inf area", segment.ErrInvalidArea, func() error {
			return c.Add(0, segment.Water, 0, 0, segment.HBNone, 0, math.Inf(1))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), tc.err)
		})
	}
	// Rejected samples never create a type.
	require.Equal(t, 0, c.Len())
	require.Zero(t, c.Len())
}

// TestCollection_CloneIsIndependent mutates a clone and checks the source.
func TestCollection_CloneIsIndependent(t *testing.T) {
	c := mustCollection(t, 1)
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, 0.001, 0, segment.HBNone, 6, 1))
	c.Sort()

	cl := c.Clone()
	require.True(t, cl.Sorted())
	require.NoError(t, cl.Add(0, segment.NeutralPolyatomic, 0.001, 0, segment.HBNone, 6, 4))
	require.NoError(t, cl.Add(0, segment.Water, 0.001, 0, segment.HBNone, 8, 1))

	require.Equal(t, 1, c.Len())
	require.Equal(t, 1.0, c.Area(0, 0))
	require.True(t, c.Sorted())
	require.False(t, cl.Sorted())
}

// TestCollection_ClearAndReserve resets the contents but keeps the width.
func TestCollection_ClearAndReserve(t *testing.T) {
	c := mustCollection(t, 3)
	c.Reserve(16)
	require.NoError(t, c.Add(2, segment.AnionPolyatomic, 0.01, 0, segment.HBNone, 0, 1))
	c.Sort()
	require.Equal(t, 1, c.Count(segment.AnionPolyatomic))

	c.Clear()
	require.Zero(t, c.Len())
	require.False(t, c.Sorted())
	require.Nil(t, c.Permutation())
	require.Equal(t, 3, c.Molecules())
	require.Zero(t, c.Count(segment.AnionPolyatomic))
}

// TestCollection_MoleculeArea sums one molecule's column.
func TestCollection_MoleculeArea(t *testing.T) {
	c := mustCollection(t, 2)
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, -0.01, 0, segment.HBDonor, 1, 1.5))
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, 0.01, 0, segment.HBAcceptor, 8, 2.5))
	require.NoError(t, c.Add(1, segment.NeutralPolyatomic, 0.01, 0, segment.HBAcceptor, 8, 7))
	require.Equal(t, 4.0, c.MoleculeArea(0))
	require.Equal(t, 7.0, c.MoleculeArea(1))
}

func TestGroup_Predicates(t *testing.T) {
	require.False(t, segment.Water.IsIonic())
	require.True(t, segment.CationMonoatomic.IsIonic())
	require.True(t, segment.AnionPolyatomic.IsIonic())
	require.False(t, segment.Group(7).IsIonic())
	require.True(t, segment.AnionMonoatomic.IsMonoatomicIon())
	require.False(t, segment.CationPolyatomic.IsMonoatomicIon())
	require.Equal(t, "water", segment.Water.String())
	require.Equal(t, "invalid", segment.Group(9).String())
}

// TestAdd_NonFiniteSigmaNotRegistered repeats one NaN-σ sample; none of the
// attempts may create a type.
func TestAdd_NonFiniteSigmaNotRegistered(t *testing.T) {
	c := mustCollection(t, 1)
	for k := 0; k < 3; k++ {
		require.ErrorIs(t, c.Add(0, segment.NeutralPolyatomic, math.NaN(), 0, segment.HBNone, 0, 1), segment.ErrInvalidSigma)
	}
	require.Equal(t, 0, c.Len())
}
