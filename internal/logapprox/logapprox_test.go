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

package logapprox

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exactFloorLog2Pow10 computes floor(e*log2(10)) at arbitrary precision by
// comparing 10^e against powers of two, used here only as a few
// spot-checks; the exhaustive sweep lives in internal/verify (property P6).
func exactFloorLog2Pow10(e int) int {
	if e == 0 {
		return 0
	}
	// 10^|e| compared against 2^n: find largest n with 2^n <= 10^e (e>0)
	// or smallest n with 2^n <= 10^e treated via reciprocal for e<0.
	ten := big.NewInt(10)
	if e > 0 {
		pow := new(big.Int).Exp(ten, big.NewInt(int64(e)), nil)
		n := pow.BitLen() - 1
		// 2^n <= pow < 2^(n+1) by construction of BitLen.
		return n
	}
	// e < 0: log2(10^e) = -log2(10^-e); floor via bit length of 10^-e.
	pow := new(big.Int).Exp(ten, big.NewInt(int64(-e)), nil)
	n := pow.BitLen() - 1
	// 10^-e in [2^n, 2^(n+1)), so 10^e in (2^-(n+1), 2^-n], so
	// floor(log2(10^e)) is -(n+1) unless 10^-e is an exact power of two
	// (never true for e != 0 since 10 has a factor of 5).
	return -(n + 1)
}

func TestFloorLog2Pow10Spot(t *testing.T) {
	for _, e := range []int{0, 1, -1, 2, -2, 10, -10, 100, -100, 1233, -1233} {
		assert.Equal(t, exactFloorLog2Pow10(e), FloorLog2Pow10(e), "e=%d", e)
	}
}

func TestFloorLog10Pow2KnownPoints(t *testing.T) {
	// floor(e * log10(2)): log10(2) ~= 0.3010299957
	cases := map[int]int{0: 0, 1: 0, 3: 0, 4: 1, 10: 3, -1: -1, -10: -4}
	for e, want := range cases {
		assert.Equal(t, want, FloorLog10Pow2(e), "e=%d", e)
	}
}

func TestRangePanics(t *testing.T) {
	require.Panics(t, func() { FloorLog10Pow2(2621) })
	require.Panics(t, func() { FloorLog10Pow2(-2621) })
	require.Panics(t, func() { FloorLog2Pow10(1234) })
	require.Panics(t, func() { FloorLog10Pow2MinusLog10FourOverThree(2937) })
	require.Panics(t, func() { FloorLog5Pow2(1832) })
	require.Panics(t, func() { FloorLog5Pow2MinusLog5Three(2428) })
	require.NotPanics(t, func() { FloorLog10Pow2(2620) })
	require.NotPanics(t, func() { FloorLog10Pow2(-2620) })
}
