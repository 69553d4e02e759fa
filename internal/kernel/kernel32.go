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

package kernel

import (
	"github.com/ajroetker/dragonbox/internal/format"
	"github.com/ajroetker/dragonbox/internal/logapprox"
)

// Decimal32 is the raw (significand, exponent) pair a binary32 kernel
// produces, before sign and trailing-zero policy are applied.
type Decimal32 struct {
	Significand uint32
	Exponent    int
}

// Cache32Func resolves a cache index (-minus_k) to its binary32 entry; the
// caller supplies either cache.Binary32 directly or a wrapper that traces
// lookups.
type Cache32Func func(k int) uint64

const bigDivisor32 = 100 // 10^(Kappa32+1)
const smallDivisor32 = 10 // 10^Kappa32

// NearestNormal32 is the Schubfach-style nearest-rounding kernel for the
// normal (non-power-of-two) interval of a binary32 value. twoFc must carry
// the materialised hidden bit (2*fc).
func NearestNormal32(twoFc uint32, binaryExponent int, interval IntervalType, rounding BinaryToDecimalRounding, cache Cache32Func) Decimal32 {
	// Step 1: Schubfach multiplier calculation.
	minusK := logapprox.FloorLog10Pow2(binaryExponent) - format.Kappa32
	beta := binaryExponent + logapprox.FloorLog2Pow10(-minusK)
	c := cache(-minusK)

	delta := format.ComputeDelta32(c, beta)
	zInt, zIsInteger := format.ComputeMul32((twoFc|1)<<uint(beta), c)

	// Step 2: try the bigger divisor.
	s := format.DivideByPow10TwoOf32(zInt)
	r := zInt - bigDivisor32*s

	switch {
	case r < delta:
		if r == 0 && zIsInteger && !interval.IncludeRight {
			s--
			r = bigDivisor32
			break
		}
		return Decimal32{Significand: s, Exponent: minusK + format.Kappa32 + 1}
	case r > delta:
		// s*10^(kappa+1) lies below the interval: use the smaller divisor.
	default:
		xPar, xInt := format.ComputeMulParity32(twoFc-1, c, beta)
		if xPar || (xInt && interval.IncludeLeft) {
			return Decimal32{Significand: s, Exponent: minusK + format.Kappa32 + 1}
		}
	}

	// Step 3: the smaller divisor.
	s *= 10
	d := r - delta/2 + smallDivisor32/2
	approxYParity := (d^(smallDivisor32/2))&1 != 0
	divisible := format.CheckDivisibilityAndDivideByPow10_32(&d)
	s += d

	if divisible {
		yPar, yInt := format.ComputeMulParity32(twoFc, c, beta)
		if yPar != approxYParity {
			s--
		} else if yInt && rounding.PreferRoundDown32(s) {
			s--
		}
	}

	return Decimal32{Significand: s, Exponent: minusK + format.Kappa32}
}

// NearestShorter32 is the nearest-rounding kernel used when the normal
// interval's precondition fails: the input sits exactly at a power-of-two
// boundary, where the left half-interval is shorter than the right.
func NearestShorter32(binaryExponent int, interval IntervalType, rounding BinaryToDecimalRounding, cache Cache32Func) Decimal32 {
	minusK := logapprox.FloorLog10Pow2MinusLog10FourOverThree(binaryExponent)
	beta := binaryExponent + logapprox.FloorLog2Pow10(-minusK)
	c := cache(-minusK)

	xi := format.ComputeLeftEndpointForShorterInterval32(c, beta)
	zi := format.ComputeRightEndpointForShorterInterval32(c, beta)

	if !interval.IncludeRight && format.IsRightEndpointIntegerShorterInterval32(binaryExponent) {
		zi--
	}
	if !interval.IncludeLeft || !format.IsLeftEndpointIntegerShorterInterval32(binaryExponent) {
		xi++
	}

	s := format.DivideByPow10OneOf32(zi)
	if s*10 >= xi {
		return Decimal32{Significand: s, Exponent: minusK + 1}
	}

	s = format.ComputeRoundUpForShorterInterval32(c, beta)
	switch {
	case rounding.PreferRoundDown32(s) && binaryExponent >= format.ShorterIntervalTieLower32 && binaryExponent <= format.ShorterIntervalTieUpper32:
		s--
	case s < xi:
		s++
	}

	return Decimal32{Significand: s, Exponent: minusK}
}

// LeftClosedDirected32 is the left-closed, right-open directed-rounding
// kernel (rounds toward +Inf for positive inputs). It carries the
// documented exceptional fix-up for binary32 at binaryExponent <= -80,
// where two hand-verified inputs make the naive integer-ness check wrong.
func LeftClosedDirected32(twoFc uint32, binaryExponent int, cache Cache32Func) Decimal32 {
	minusK := logapprox.FloorLog10Pow2(binaryExponent) - format.Kappa32
	beta := binaryExponent + logapprox.FloorLog2Pow10(-minusK)
	c := cache(-minusK)

	delta := format.ComputeDelta32(c, beta)
	integerPart, isInteger := format.ComputeMul32(twoFc<<uint(beta), c)

	if binaryExponent <= -80 {
		isInteger = false
	}
	if !isInteger {
		integerPart++
	}

	s := format.DivideByPow10TwoOf32(integerPart)
	r := integerPart - bigDivisor32*s

	if r != 0 {
		s++
		r = bigDivisor32 - r
	}

	returnEarly := true
	switch {
	case r > delta:
		returnEarly = false
	case r == delta:
		zPar, zIsInteger := format.ComputeMulParity32(twoFc+2, c, beta)
		if zPar || zIsInteger {
			returnEarly = false
		}
	}

	if returnEarly {
		return Decimal32{Significand: s, Exponent: minusK + format.Kappa32 + 1}
	}

	s *= 10
	s -= format.SmallDivisionByPow10_32(r)
	return Decimal32{Significand: s, Exponent: minusK + format.Kappa32}
}

// RightClosedDirected32 is the right-closed, left-open directed-rounding
// kernel (rounds toward -Inf for positive inputs). shorterInterval shifts
// beta and minus_k by one, mirroring the normal kernel's shorter-interval
// specialisation.
func RightClosedDirected32(twoFc uint32, binaryExponent int, shorterInterval bool, cache Cache32Func) Decimal32 {
	adjust := 0
	if shorterInterval {
		adjust = 1
	}
	minusK := logapprox.FloorLog10Pow2(binaryExponent-adjust) - format.Kappa32
	beta := binaryExponent + logapprox.FloorLog2Pow10(-minusK)
	c := cache(-minusK)

	var delta uint32
	if shorterInterval {
		delta = format.ComputeDelta32(c, beta-1)
	} else {
		delta = format.ComputeDelta32(c, beta)
	}
	zi, _ := format.ComputeMul32(twoFc<<uint(beta), c)

	s := format.DivideByPow10TwoOf32(zi)
	r := zi - bigDivisor32*s

	returnEarly := true
	switch {
	case r > delta:
		returnEarly = false
	case r == delta:
		var parityArg uint32 = 2
		if shorterInterval {
			parityArg = 1
		}
		parity, _ := format.ComputeMulParity32(twoFc-parityArg, c, beta)
		if !parity {
			returnEarly = false
		}
	}

	if returnEarly {
		return Decimal32{Significand: s, Exponent: minusK + format.Kappa32 + 1}
	}

	s *= 10
	s += format.SmallDivisionByPow10_32(r)
	return Decimal32{Significand: s, Exponent: minusK + format.Kappa32}
}
