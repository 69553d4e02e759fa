// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"math/big"
	"testing"

	"github.com/ajroetker/dragonbox/internal/wide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u128ToBig(u wide.Uint128) *big.Int {
	hi := new(big.Int).SetUint64(u.Hi)
	hi.Lsh(hi, 64)
	return hi.Add(hi, new(big.Int).SetUint64(u.Lo))
}

func TestBinary32TableSize(t *testing.T) {
	require.Len(t, binary32Cache, MaxK32-MinK32+1)
}

func TestBinary64TableSize(t *testing.T) {
	require.Len(t, binary64Cache, MaxK64-MinK64+1)
}

func TestBinary32Bounds(t *testing.T) {
	for k := MinK32; k <= MaxK32; k++ {
		v := Binary32(k)
		assert.NotZero(t, v>>63, "phi_%d top bit must be set", k)
	}
}

func TestBinary64Bounds(t *testing.T) {
	for k := MinK64; k <= MaxK64; k++ {
		v := Binary64(k)
		assert.NotZero(t, v.Hi>>63, "phi_%d top bit must be set", k)
	}
}

func TestBinary32OutOfRangePanics(t *testing.T) {
	require.Panics(t, func() { Binary32(MinK32 - 1) })
	require.Panics(t, func() { Binary32(MaxK32 + 1) })
}

func TestBinary64OutOfRangePanics(t *testing.T) {
	require.Panics(t, func() { Binary64(MinK64 - 1) })
	require.Panics(t, func() { Binary64(MaxK64 + 1) })
}

// TestCompactBinary64MatchesFullWithinMargin checks property P5's compact
// tolerance (epsilon <= 3) for every k, and requires an exact match at the
// stored base positions.
func TestCompactBinary64MatchesFullWithinMargin(t *testing.T) {
	for k := MinK64; k <= MaxK64; k++ {
		full := Binary64(k)
		compact := CompactBinary64(k)

		fullBig := u128ToBig(full)
		compactBig := u128ToBig(compact)

		diff := new(big.Int).Sub(compactBig, fullBig)
		if (k-MinK64)%CompressionRatio == 0 {
			assert.Equal(t, 0, diff.Sign(), "k=%d expected exact match at stored base", k)
			continue
		}
		absDiff := new(big.Int).Abs(diff)
		assert.True(t, absDiff.Cmp(big.NewInt(3)) <= 0,
			"k=%d compact vs full differ by %s, want a small margin", k, diff.String())
	}
}
