//  Copyright (c) 2015 Couchbase, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the
//  License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing,
//  software distributed under the License is distributed on an "AS
//  IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
//  express or implied. See the License for the specific language
//  governing permissions and limitations under the License.

package hg64

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuantileInterpolation is spec.md §8 scenario S3.
func TestQuantileInterpolation(t *testing.T) {
	h, err := New(5)
	require.NoError(t, err)

	for v := uint64(100); v <= 199; v++ {
		h.Inc(v)
	}

	snap := h.Snapshot()

	median := snap.ValueAtQuantile(0.5)
	assert.GreaterOrEqual(t, median, uint64(149))
	assert.LessOrEqual(t, median, uint64(150))

	rank := snap.RankOfValue(150)
	assert.GreaterOrEqual(t, rank, uint64(49))
	assert.LessOrEqual(t, rank, uint64(51))
}

// TestMonotoneRank is spec.md §8 property 6.
func TestMonotoneRank(t *testing.T) {
	h, err := New(6)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(5))
	for i := 0; i < 5000; i++ {
		h.Add(uint64(r.Int63n(1<<32)), uint64(1+r.Intn(3)))
	}

	snap := h.Snapshot()
	pop := snap.Population()

	var prevValue uint64
	for rank := uint64(0); rank < pop; rank += pop / 200 {
		v := snap.ValueAtRank(rank)
		require.NotEqual(t, uint64(math.MaxUint64), v)
		require.GreaterOrEqual(t, v, prevValue)
		prevValue = v
	}

	var prevRank uint64
	for _, v := range []uint64{0, 1 << 8, 1 << 16, 1 << 24, 1<<32 - 1} {
		rank := snap.RankOfValue(v)
		require.GreaterOrEqual(t, rank, prevRank)
		prevRank = rank
	}
}

// TestApproximateInverse is spec.md §8 property 7.
func TestApproximateInverse(t *testing.T) {
	h, err := New(8)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(6))
	for i := 0; i < 20000; i++ {
		h.Add(uint64(r.Int63n(1<<40)), 1)
	}

	snap := h.Snapshot()
	pop := snap.Population()

	for _, rank := range []uint64{0, pop / 4, pop / 2, pop - 1} {
		v := snap.ValueAtRank(rank)
		back := snap.RankOfValue(v)

		lo := int64(rank) - 1
		hi := int64(rank) + 1
		assert.GreaterOrEqual(t, int64(back), lo)
		assert.LessOrEqual(t, int64(back), hi)
	}
}

// TestValueAtQuantileClampsQ checks that q outside [0, 1] is clamped
// before computing a rank (spec.md §4.6). A clamped q of exactly 1.0
// computes rank == population, which — like any out-of-range rank —
// resolves to math.MaxUint64 rather than the largest recorded value;
// spec.md's rank is a 0-indexed position among population samples, so
// the valid range tops out at population-1, not population.
func TestValueAtQuantileClampsQ(t *testing.T) {
	h, err := New(5)
	require.NoError(t, err)
	h.Inc(10)
	h.Inc(20)

	snap := h.Snapshot()
	assert.Equal(t, snap.ValueAtRank(0), snap.ValueAtQuantile(-1))
	assert.Equal(t, uint64(math.MaxUint64), snap.ValueAtQuantile(2))
	assert.Equal(t, snap.ValueAtRank(snap.Population()-1), snap.ValueAtQuantile(0.999999))
}

func TestQuantileOfValueEmptyIsNaN(t *testing.T) {
	h, err := New(5)
	require.NoError(t, err)

	snap := h.Snapshot()
	assert.True(t, math.IsNaN(snap.QuantileOfValue(42)))
}

func TestQuantileOfValueRange(t *testing.T) {
	h, err := New(6)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		h.Add(uint64(r.Int63n(1<<30)), 1)
	}

	snap := h.Snapshot()
	for i := 0; i < 100; i++ {
		q := snap.QuantileOfValue(uint64(r.Int63n(1 << 30)))
		assert.GreaterOrEqual(t, q, 0.0)
		assert.LessOrEqual(t, q, 1.0)
	}
}
