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

// Package verify holds the big-integer oracle checks behind
// cmd/dragonboxverify: P5 (cache-entry validity) and P6 (log-approximator
// exactness), both computed at arbitrary precision so the checks are
// independent of the fixed-point tricks they're verifying.
package verify

import (
	"fmt"
	"math/big"

	"github.com/ajroetker/dragonbox/internal/cache"
	"github.com/ajroetker/dragonbox/internal/logapprox"
)

// CacheMismatch describes one cache entry that fails its validity bound.
type CacheMismatch struct {
	K        int
	Got      *big.Int
	LowBound *big.Int
	Epsilon  int64
}

func (m CacheMismatch) String() string {
	return fmt.Sprintf("k=%d: got %s, want in [%s, %s+%d)", m.K, m.Got, m.LowBound, m.LowBound, m.Epsilon)
}

// exactFloorLog2Pow10 computes floor(e*log2(10)) at arbitrary precision by
// comparing 10^e against powers of two, used as ground truth against
// logapprox.FloorLog2Pow10.
func exactFloorLog2Pow10(e int) int {
	return exactFloor(e, 10, 2, 1, 1)
}

// exactFloor returns floor(log_base(a^e * num/den)), i.e.
// floor(e*log_base(a) + log_base(num/den)), using integer comparison of
// a^e * num/den against powers of base. This never loses precision since
// every operand is a small integer and the comparison is done with math/big.
func exactFloor(e, a, base int, num, den int64) int {
	numerator := big.NewInt(num)
	denominator := big.NewInt(den)
	if e > 0 {
		numerator.Mul(numerator, new(big.Int).Exp(big.NewInt(int64(a)), big.NewInt(int64(e)), nil))
	} else if e < 0 {
		denominator.Mul(denominator, new(big.Int).Exp(big.NewInt(int64(a)), big.NewInt(int64(-e)), nil))
	}

	// Binary search the largest n with base^n <= numerator/denominator.
	lo, hi := -100000, 100000
	for lo < hi {
		mid := (lo + hi + 1) / 2
		var lhs, rhs big.Int
		if mid >= 0 {
			lhs.Mul(denominator, new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(mid)), nil))
			rhs.Set(numerator)
		} else {
			lhs.Set(denominator)
			rhs.Mul(numerator, new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(-mid)), nil))
		}
		if lhs.Cmp(&rhs) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LogApproximatorMismatch names a function and input where the fixed-point
// approximation disagrees with the arbitrary-precision floor.
type LogApproximatorMismatch struct {
	Function string
	Input    int
	Got      int
	Want     int
}

// LogApproximators checks every function in internal/logapprox against an
// arbitrary-precision floor over its documented domain (spec P6).
func LogApproximators() []LogApproximatorMismatch {
	var mismatches []LogApproximatorMismatch

	check := func(name string, lo, hi int, approx func(int) int, want func(int) int) {
		for e := lo; e <= hi; e++ {
			got := approx(e)
			w := want(e)
			if got != w {
				mismatches = append(mismatches, LogApproximatorMismatch{name, e, got, w})
			}
		}
	}

	check("FloorLog10Pow2", -2620, 2620, logapprox.FloorLog10Pow2, func(e int) int { return exactFloor(e, 2, 10, 1, 1) })
	check("FloorLog2Pow10", -1233, 1233, logapprox.FloorLog2Pow10, exactFloorLog2Pow10)
	check("FloorLog10Pow2MinusLog10FourOverThree", -2985, 2936, logapprox.FloorLog10Pow2MinusLog10FourOverThree, func(e int) int { return exactFloor(e, 2, 10, 3, 4) })
	check("FloorLog5Pow2", -1831, 1831, logapprox.FloorLog5Pow2, func(e int) int { return exactFloor(e, 2, 5, 1, 1) })
	check("FloorLog5Pow2MinusLog5Three", -3543, 2427, logapprox.FloorLog5Pow2MinusLog5Three, func(e int) int { return exactFloor(e, 2, 5, 1, 3) })

	return mismatches
}

// CacheBinary32 checks every binary32 cache entry against the P5 bound
// (phi_k in [ceil(2^63 * 10^k / 2^floor_log2_pow10(k)), +7)).
func CacheBinary32() []CacheMismatch {
	var mismatches []CacheMismatch
	for k := cache.MinK32; k <= cache.MaxK32; k++ {
		low := exactCacheLowerBound(k, 64)
		got := new(big.Int).SetUint64(cache.Binary32(k))
		mismatches = append(mismatches, checkBound(k, got, low, 7)...)
	}
	return mismatches
}

// CacheBinary64 checks every binary64 cache entry (full and, when compact
// is true, the compact reconstruction) against the P5 bound.
func CacheBinary64(compact bool) []CacheMismatch {
	var mismatches []CacheMismatch
	epsilon := int64(13)
	if compact {
		epsilon = 3
	}
	for k := cache.MinK64; k <= cache.MaxK64; k++ {
		low := exactCacheLowerBound(k, 128)
		var v = cache.Binary64(k)
		if compact {
			v = cache.CompactBinary64(k)
		}
		got := new(big.Int).Lsh(new(big.Int).SetUint64(v.Hi), 64)
		got.Or(got, new(big.Int).SetUint64(v.Lo))
		mismatches = append(mismatches, checkBound(k, got, low, epsilon)...)
	}
	return mismatches
}

func exactCacheLowerBound(k, cacheBits int) *big.Int {
	e := logapprox.FloorLog2Pow10(k)
	numerator := big.NewInt(1)
	denominator := big.NewInt(1)
	if k >= 0 {
		numerator.Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
	} else {
		denominator.Exp(big.NewInt(10), big.NewInt(int64(-k)), nil)
	}
	numerator.Lsh(numerator, uint(cacheBits-1))
	if e >= 0 {
		denominator.Lsh(denominator, uint(e))
	} else {
		numerator.Lsh(numerator, uint(-e))
	}
	// ceil(numerator/denominator)
	q, r := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

func checkBound(k int, got, low *big.Int, epsilon int64) []CacheMismatch {
	if !fitsInt64(big.NewInt(int64(k))) {
		panic("verify: k out of int64 range")
	}
	high := new(big.Int).Add(low, big.NewInt(epsilon))
	if got.Cmp(low) < 0 || got.Cmp(high) >= 0 {
		return []CacheMismatch{{K: k, Got: got, LowBound: low, Epsilon: epsilon}}
	}
	return nil
}

// CoprimeCheck reports whether 5^o and 2^alpha are coprime (their gcd is 1),
// a sanity check on the compact cache's shift-and-round recipe (they
// must be coprime for the reconstruction's rounding error bound to hold).
func CoprimeCheck(o, alpha int) bool {
	fivePowO := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(o)), nil)
	twoPowAlpha := new(big.Int).Lsh(big.NewInt(1), uint(alpha))
	return new(big.Int).GCD(nil, nil, fivePowO, twoPowAlpha).Cmp(big.NewInt(1)) == 0
}

// fitsInt64 reports whether a big.Int result is safe to narrow to int64,
// guarding the CLI's summary output (which prints k alongside the bound)
// against silently wrapping on an exponent far outside either format's
// documented range.
func fitsInt64(v *big.Int) bool {
	return v.IsInt64()
}
