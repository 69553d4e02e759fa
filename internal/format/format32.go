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

package format

import "github.com/ajroetker/dragonbox/internal/wide"

// binary32 format descriptor constants.
const (
	SignificandBits32         = 23
	ExponentBits32            = 8
	MinExponent32             = -126
	MaxExponent32             = 127
	ExponentBias32            = -127
	DecimalSignificandDigits32 = 9
	DecimalExponentDigits32   = 2
	CacheBits32               = 64
	CarrierBits32             = 32
	Kappa32                   = 1

	shorterIntervalLeftEndpointLower32  = 2
	shorterIntervalLeftEndpointUpper32  = 3
	shorterIntervalRightEndpointLower32 = 0
	shorterIntervalRightEndpointUpper32 = 3

	ShorterIntervalTieLower32 = -35
	ShorterIntervalTieUpper32 = -35
)

// ComputeMul32 applies the cache multiplier to u and reports whether the
// 96-bit product (the 32-bit u times the 64-bit cache entry) is exactly an
// integer.
func ComputeMul32(u uint32, cache uint64) (integerPart uint32, isInteger bool) {
	r := wide.Mul96Upper64(u, cache)
	return uint32(r >> 32), uint32(r) == 0
}

// ComputeDelta32 returns the 32-bit delta bound for the given beta.
func ComputeDelta32(cache uint64, beta int) uint32 {
	return uint32(cache >> uint(CacheBits32-1-beta))
}

// ComputeMulParity32 returns the parity bit and integer-ness of the 96-bit
// product of the 32-bit twoF and the 64-bit cache, valid for beta in [1, 32].
func ComputeMulParity32(twoF uint32, cache uint64, beta int) (parity, isInteger bool) {
	if beta < 1 || beta > 32 {
		panic("format.ComputeMulParity32: beta out of range")
	}
	r := wide.Mul96Lower64(twoF, cache)
	parity = ((r >> uint(64-beta)) & 1) != 0
	isInteger = (uint32(0xffffffff) & uint32(r>>uint(32-beta))) == 0
	return parity, isInteger
}

// ComputeLeftEndpointForShorterInterval32 returns xi for the shorter
// interval case.
func ComputeLeftEndpointForShorterInterval32(cache uint64, beta int) uint32 {
	return uint32((cache - (cache >> (SignificandBits32 + 2))) >> uint(CacheBits32-SignificandBits32-1-beta))
}

// ComputeRightEndpointForShorterInterval32 returns zi for the shorter
// interval case.
func ComputeRightEndpointForShorterInterval32(cache uint64, beta int) uint32 {
	return uint32((cache + (cache >> (SignificandBits32 + 1))) >> uint(CacheBits32-SignificandBits32-1-beta))
}

// ComputeRoundUpForShorterInterval32 returns the round-up candidate when
// the bigger-divisor attempt in the shorter-interval kernel fails.
func ComputeRoundUpForShorterInterval32(cache uint64, beta int) uint32 {
	return (uint32(cache>>uint(CacheBits32-SignificandBits32-2-beta)) + 1) / 2
}

// IsLeftEndpointIntegerShorterInterval32 reports whether the shorter
// interval's left endpoint is integer-valued for the given binary
// exponent.
func IsLeftEndpointIntegerShorterInterval32(binaryExponent int) bool {
	return binaryExponent >= shorterIntervalLeftEndpointLower32 && binaryExponent <= shorterIntervalLeftEndpointUpper32
}

// IsRightEndpointIntegerShorterInterval32 reports whether the shorter
// interval's right endpoint is integer-valued for the given binary
// exponent.
func IsRightEndpointIntegerShorterInterval32(binaryExponent int) bool {
	return binaryExponent >= shorterIntervalRightEndpointLower32 && binaryExponent <= shorterIntervalRightEndpointUpper32
}

// DivideByPow10TwoOf32 computes floor(n / 100) using a multiply-high
// shortcut valid for all carrier_uint(32) inputs (kappa+1 divisor for
// binary32, since Kappa32 == 1).
func DivideByPow10TwoOf32(n uint32) uint32 {
	return uint32((uint64(n) * 1374389535) >> 37)
}

// DivideByPow10OneOf32 computes floor(n / 10), used by the shorter-interval
// kernel's bigger-divisor attempt.
func DivideByPow10OneOf32(n uint32) uint32 {
	return uint32((uint64(n) * 429496730) >> 32)
}

// CheckDivisibilityAndDivideByPow10_32 replaces n with floor(n / 10^Kappa32)
// and reports whether n was exactly divisible by 10^Kappa32, using the
// 16-bit magic-multiply trick instead of a division instruction.
// Precondition: n <= 10^(Kappa32+1).
func CheckDivisibilityAndDivideByPow10_32(n *uint32) bool {
	prod := *n * kappaDivideMagic32
	const mask = uint32(1)<<16 - 1
	result := (prod & mask) < kappaDivideMagic32
	*n = prod >> 16
	return result
}

// SmallDivisionByPow10_32 computes floor(n / 10^Kappa32) without checking
// divisibility. Precondition: n <= 10^(Kappa32+1).
func SmallDivisionByPow10_32(n uint32) uint32 {
	return (n * kappaDivideMagic32) >> 16
}

// RemoveTrailingZeros32 strips trailing decimal zeros from a nonzero n
// using three branchless multiply-rotate-compare stages (stripping 4, 2,
// then 1 zero), returning the odd-in-base-10 residue and the zero count.
func RemoveTrailingZeros32(n uint32) (residue uint32, zeros int) {
	r := rotr32(n*184254097, 4)
	b := r < 429497
	s := 0
	if b {
		s = 1
		n = r
	}

	r = rotr32(n*42949673, 2)
	b = r < 42949673
	s = s*2 + boolToInt(b)
	if b {
		n = r
	}

	r = rotr32(n*1288490189, 1)
	b = r < 429496730
	s = s*2 + boolToInt(b)
	if b {
		n = r
	}

	return n, s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
