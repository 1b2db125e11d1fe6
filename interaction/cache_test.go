package interaction_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosmors/interaction"
	"github.com/katalvlaran/cosmors/segment"
)

func TestCache_HitsAndEviction(t *testing.T) {
	c := sorted(t,
		seg{group: segment.NeutralPolyatomic, sigma: -0.01},
		seg{group: segment.NeutralPolyatomic, sigma: 0.01},
	)
	cache, err := interaction.NewCache(mustBuilder(t, plainParams()), c, 2)
	require.NoError(t, err)

	first, hit, err := cache.Get(298.15)
	require.NoError(t, err)
	require.False(t, hit)
	again, hit, err := cache.Get(298.15)
	require.NoError(t, err)
	require.True(t, hit)
	require.Same(t, first, again)

	_, _, err = cache.Get(310)
	require.NoError(t, err)
	_, _, err = cache.Get(320)
	require.NoError(t, err)
	require.Equal(t, 2, cache.Len())

	_, hit, err = cache.Get(298.15)
	require.NoError(t, err)
	require.False(t, hit)

	cache.Purge()
	require.Equal(t, 0, cache.Len())
}

func TestCache_ErrorsNotCached(t *testing.T) {
	c, err := segment.NewCollection(1)
	require.NoError(t, err)
	require.NoError(t, c.Add(0, segment.NeutralPolyatomic, 0.01, 0, segment.HBNone, 0, 1))

	cache, err := interaction.NewCache(mustBuilder(t, plainParams()), c, 0)
	require.NoError(t, err)
	_, _, err = cache.Get(300)
	require.ErrorIs(t, err, interaction.ErrNotSorted)
	require.Equal(t, 0, cache.Len())

	c.Sort()
	_, hit, err := cache.Get(300)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestCache_ConcurrentGet(t *testing.T) {
	c := sorted(t, seg{group: segment.NeutralPolyatomic, sigma: 0.004})
	cache, err := interaction.NewCache(mustBuilder(t, plainParams()), c, 4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*interaction.Result, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			res, _, err := cache.Get(300)
			if err == nil {
				results[g] = res
			}
		}(g)
	}
	wg.Wait()
	for _, r := range results {
		require.NotNil(t, r)
		require.Equal(t, 300.0, r.Temperature)
	}
	require.Equal(t, 1, cache.Len())
}

func TestNewCache_Nil(t *testing.T) {
	_, err := interaction.NewCache(nil, sorted(t), 1)
	require.Error(t, err)
	_, err = interaction.NewCache(mustBuilder(t, plainParams()), nil, 1)
	require.ErrorIs(t, err, interaction.ErrNilCollection)
}
