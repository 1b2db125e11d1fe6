package interaction_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosmors/interaction"
	"github.com/katalvlaran/cosmors/segment"
)

// seg is one Add call on molecule 0.
type seg struct {
	group segment.Group
	sigma float64
	corr  float64
	hb    segment.HBType
	z     uint16
}

// sorted builds and sorts a one-molecule collection with unit areas.
func sorted(t *testing.T, segs ...seg) *segment.Collection {
	t.Helper()
	c, err := segment.NewCollection(1)
	require.NoError(t, err)
	for _, s := range segs {
		require.NoError(t, c.Add(0, s.group, s.sigma, s.corr, s.hb, s.z, 1))
	}
	c.Sort()

	return c
}

// plainParams are DefaultParameters without correlation or reference state.
func plainParams() interaction.Parameters {
	p := interaction.DefaultParameters()
	p.Misfit = interaction.MisfitPlain

	return p
}

func mustBuilder(t *testing.T, p interaction.Parameters, opts ...interaction.Option) *interaction.Builder {
	t.Helper()
	b, err := interaction.NewBuilder(p, opts...)
	require.NoError(t, err)

	return b
}

// recorder captures metrics calls.
type recorder struct {
	mu       sync.Mutex
	stages   []string
	errors   []string
	segments int
}

func (r *recorder) ObserveStage(stage string, _ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
}

func (r *recorder) IncBuildError(stage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, stage)
}

func (r *recorder) SetSegmentTypes(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.segments = n
}
