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

// binary64 format descriptor constants.
const (
	SignificandBits64          = 52
	ExponentBits64             = 11
	MinExponent64              = -1022
	MaxExponent64              = 1023
	ExponentBias64             = -1023
	DecimalSignificandDigits64 = 17
	DecimalExponentDigits64    = 3
	CacheBits64                = 128
	CarrierBits64              = 64
	Kappa64                    = 2

	shorterIntervalLeftEndpointLower64  = 2
	shorterIntervalLeftEndpointUpper64  = 3
	shorterIntervalRightEndpointLower64 = 0
	shorterIntervalRightEndpointUpper64 = 3

	ShorterIntervalTieLower64 = -77
	ShorterIntervalTieUpper64 = -77
)

// ComputeMul64 applies the cache multiplier to u and reports whether the
// 192-bit product (the 64-bit u times the 128-bit cache entry) is exactly an
// integer.
func ComputeMul64(u uint64, cache wide.Uint128) (integerPart uint64, isInteger bool) {
	r := wide.Mul192Upper128(u, cache)
	return r.Hi, r.Lo == 0
}

// ComputeDelta64 returns the 64-bit delta bound for the given beta.
func ComputeDelta64(cache wide.Uint128, beta int) uint64 {
	return cache.Hi >> uint(CarrierBits64-1-beta)
}

// ComputeMulParity64 returns the parity bit and integer-ness of the
// 192-bit product of the 64-bit twoF and the 128-bit cache, valid for beta
// in [1, 63].
func ComputeMulParity64(twoF uint64, cache wide.Uint128, beta int) (parity, isInteger bool) {
	if beta < 1 || beta >= 64 {
		panic("format.ComputeMulParity64: beta out of range")
	}
	r := wide.Mul192Lower128(twoF, cache)
	parity = ((r.Hi >> uint(64-beta)) & 1) != 0
	isInteger = ((r.Hi << uint(beta)) | (r.Lo >> uint(64-beta))) == 0
	return parity, isInteger
}

// ComputeLeftEndpointForShorterInterval64 returns xi for the shorter
// interval case.
func ComputeLeftEndpointForShorterInterval64(cache wide.Uint128, beta int) uint64 {
	return (cache.Hi - (cache.Hi >> (SignificandBits64 + 2))) >> uint(CarrierBits64-SignificandBits64-1-beta)
}

// ComputeRightEndpointForShorterInterval64 returns zi for the shorter
// interval case.
func ComputeRightEndpointForShorterInterval64(cache wide.Uint128, beta int) uint64 {
	return (cache.Hi + (cache.Hi >> (SignificandBits64 + 1))) >> uint(CarrierBits64-SignificandBits64-1-beta)
}

// ComputeRoundUpForShorterInterval64 returns the round-up candidate when
// the bigger-divisor attempt in the shorter-interval kernel fails.
func ComputeRoundUpForShorterInterval64(cache wide.Uint128, beta int) uint64 {
	return (cache.Hi>>uint(CarrierBits64-SignificandBits64-2-beta) + 1) / 2
}

// IsLeftEndpointIntegerShorterInterval64 reports whether the shorter
// interval's left endpoint is integer-valued for the given binary
// exponent.
func IsLeftEndpointIntegerShorterInterval64(binaryExponent int) bool {
	return binaryExponent >= shorterIntervalLeftEndpointLower64 && binaryExponent <= shorterIntervalLeftEndpointUpper64
}

// IsRightEndpointIntegerShorterInterval64 reports whether the shorter
// interval's right endpoint is integer-valued for the given binary
// exponent.
func IsRightEndpointIntegerShorterInterval64(binaryExponent int) bool {
	return binaryExponent >= shorterIntervalRightEndpointLower64 && binaryExponent <= shorterIntervalRightEndpointUpper64
}

// DivideByPow10ThreeOf64 computes floor(n / 1000) using a multiply-high
// shortcut (kappa+1 divisor for binary64, since Kappa64 == 2).
func DivideByPow10ThreeOf64(n uint64) uint64 {
	return wide.Mul128Upper64(n, 4722366482869645214) >> 8
}

// DivideByPow10OneOf64 computes floor(n / 10), used by the
// shorter-interval kernel's bigger-divisor attempt.
func DivideByPow10OneOf64(n uint64) uint64 {
	return wide.Mul128Upper64(n, 1844674407370955162)
}

// CheckDivisibilityAndDivideByPow10_64 replaces n with floor(n / 10^Kappa64)
// and reports whether n was exactly divisible by 10^Kappa64. Precondition:
// n <= 10^(Kappa64+1).
func CheckDivisibilityAndDivideByPow10_64(n *uint64) bool {
	prod := uint32(*n) * kappaDivideMagic64
	const mask = uint32(1)<<16 - 1
	result := (prod & mask) < kappaDivideMagic64
	*n = uint64(prod >> 16)
	return result
}

// SmallDivisionByPow10_64 computes floor(n / 10^Kappa64) without checking
// divisibility. Precondition: n <= 10^(Kappa64+1).
func SmallDivisionByPow10_64(n uint64) uint64 {
	return uint64((uint32(n) * kappaDivideMagic64) >> 16)
}

// RemoveTrailingZeros64 strips trailing decimal zeros from a nonzero n
// using four branchless multiply-rotate-compare stages (stripping 8, 4, 2,
// then 1 zero), returning the odd-in-base-10 residue and the zero count.
func RemoveTrailingZeros64(n uint64) (residue uint64, zeros int) {
	r := rotr64(n*28999941890838049, 8)
	b := r < 184467440738
	s := 0
	if b {
		s = 1
		n = r
	}

	r = rotr64(n*182622766329724561, 4)
	b = r < 1844674407370956
	s = s*2 + boolToInt(b)
	if b {
		n = r
	}

	r = rotr64(n*10330176681277348905, 2)
	b = r < 184467440737095517
	s = s*2 + boolToInt(b)
	if b {
		n = r
	}

	r = rotr64(n*14757395258967641293, 1)
	b = r < 1844674407370955162
	s = s*2 + boolToInt(b)
	if b {
		n = r
	}

	return n, s
}
