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
	"github.com/ajroetker/dragonbox/internal/wide"
)

// Decimal64 is the raw (significand, exponent) pair a binary64 kernel
// produces, before sign and trailing-zero policy are applied.
type Decimal64 struct {
	Significand uint64
	Exponent    int
}

// Cache64Func resolves a cache index (-minus_k) to its binary64 entry; the
// caller supplies either cache.Binary64, cache.CompactBinary64, or a
// tracing wrapper around either.
type Cache64Func func(k int) wide.Uint128

const bigDivisor64 = 1000 // 10^(Kappa64+1)
const smallDivisor64 = 100 // 10^Kappa64

// NearestNormal64 is the binary64 counterpart of NearestNormal32.
func NearestNormal64(twoFc uint64, binaryExponent int, interval IntervalType, rounding BinaryToDecimalRounding, cache Cache64Func) Decimal64 {
	minusK := logapprox.FloorLog10Pow2(binaryExponent) - format.Kappa64
	beta := binaryExponent + logapprox.FloorLog2Pow10(-minusK)
	c := cache(-minusK)

	delta := format.ComputeDelta64(c, beta)
	zInt, zIsInteger := format.ComputeMul64((twoFc|1)<<uint(beta), c)

	s := format.DivideByPow10ThreeOf64(zInt)
	r := zInt - bigDivisor64*s

	switch {
	case r < delta:
		if r == 0 && zIsInteger && !interval.IncludeRight {
			s--
			r = bigDivisor64
			break
		}
		return Decimal64{Significand: s, Exponent: minusK + format.Kappa64 + 1}
	case r > delta:
		// s*10^(kappa+1) lies below the interval: use the smaller divisor.
	default:
		xPar, xInt := format.ComputeMulParity64(twoFc-1, c, beta)
		if xPar || (xInt && interval.IncludeLeft) {
			return Decimal64{Significand: s, Exponent: minusK + format.Kappa64 + 1}
		}
	}

	s *= 10
	d := r - delta/2 + smallDivisor64/2
	approxYParity := (d^(smallDivisor64/2))&1 != 0
	divisible := format.CheckDivisibilityAndDivideByPow10_64(&d)
	s += d

	if divisible {
		yPar, yInt := format.ComputeMulParity64(twoFc, c, beta)
		if yPar != approxYParity {
			s--
		} else if yInt && rounding.PreferRoundDown64(s) {
			s--
		}
	}

	return Decimal64{Significand: s, Exponent: minusK + format.Kappa64}
}

// NearestShorter64 is the binary64 counterpart of NearestShorter32.
func NearestShorter64(binaryExponent int, interval IntervalType, rounding BinaryToDecimalRounding, cache Cache64Func) Decimal64 {
	minusK := logapprox.FloorLog10Pow2MinusLog10FourOverThree(binaryExponent)
	beta := binaryExponent + logapprox.FloorLog2Pow10(-minusK)
	c := cache(-minusK)

	xi := format.ComputeLeftEndpointForShorterInterval64(c, beta)
	zi := format.ComputeRightEndpointForShorterInterval64(c, beta)

	if !interval.IncludeRight && format.IsRightEndpointIntegerShorterInterval64(binaryExponent) {
		zi--
	}
	if !interval.IncludeLeft || !format.IsLeftEndpointIntegerShorterInterval64(binaryExponent) {
		xi++
	}

	s := format.DivideByPow10OneOf64(zi)
	if s*10 >= xi {
		return Decimal64{Significand: s, Exponent: minusK + 1}
	}

	s = format.ComputeRoundUpForShorterInterval64(c, beta)
	switch {
	case rounding.PreferRoundDown64(s) && binaryExponent >= format.ShorterIntervalTieLower64 && binaryExponent <= format.ShorterIntervalTieUpper64:
		s--
	case s < xi:
		s++
	}

	return Decimal64{Significand: s, Exponent: minusK}
}

// LeftClosedDirected64 is the binary64 counterpart of LeftClosedDirected32.
// binary64 carries no exponent-range exceptional fix-up: the original
// source's documented exceptional case is specific to binary32.
func LeftClosedDirected64(twoFc uint64, binaryExponent int, cache Cache64Func) Decimal64 {
	minusK := logapprox.FloorLog10Pow2(binaryExponent) - format.Kappa64
	beta := binaryExponent + logapprox.FloorLog2Pow10(-minusK)
	c := cache(-minusK)

	delta := format.ComputeDelta64(c, beta)
	integerPart, isInteger := format.ComputeMul64(twoFc<<uint(beta), c)

	if !isInteger {
		integerPart++
	}

	s := format.DivideByPow10ThreeOf64(integerPart)
	r := integerPart - bigDivisor64*s

	if r != 0 {
		s++
		r = bigDivisor64 - r
	}

	returnEarly := true
	switch {
	case r > delta:
		returnEarly = false
	case r == delta:
		zPar, zIsInteger := format.ComputeMulParity64(twoFc+2, c, beta)
		if zPar || zIsInteger {
			returnEarly = false
		}
	}

	if returnEarly {
		return Decimal64{Significand: s, Exponent: minusK + format.Kappa64 + 1}
	}

	s *= 10
	s -= format.SmallDivisionByPow10_64(r)
	return Decimal64{Significand: s, Exponent: minusK + format.Kappa64}
}

// RightClosedDirected64 is the binary64 counterpart of RightClosedDirected32.
func RightClosedDirected64(twoFc uint64, binaryExponent int, shorterInterval bool, cache Cache64Func) Decimal64 {
	adjust := 0
	if shorterInterval {
		adjust = 1
	}
	minusK := logapprox.FloorLog10Pow2(binaryExponent-adjust) - format.Kappa64
	beta := binaryExponent + logapprox.FloorLog2Pow10(-minusK)
	c := cache(-minusK)

	var delta uint64
	if shorterInterval {
		delta = format.ComputeDelta64(c, beta-1)
	} else {
		delta = format.ComputeDelta64(c, beta)
	}
	zi, _ := format.ComputeMul64(twoFc<<uint(beta), c)

	s := format.DivideByPow10ThreeOf64(zi)
	r := zi - bigDivisor64*s

	returnEarly := true
	switch {
	case r > delta:
		returnEarly = false
	case r == delta:
		var parityArg uint64 = 2
		if shorterInterval {
			parityArg = 1
		}
		parity, _ := format.ComputeMulParity64(twoFc-parityArg, c, beta)
		if !parity {
			returnEarly = false
		}
	}

	if returnEarly {
		return Decimal64{Significand: s, Exponent: minusK + format.Kappa64 + 1}
	}

	s *= 10
	s += format.SmallDivisionByPow10_64(r)
	return Decimal64{Significand: s, Exponent: minusK + format.Kappa64}
}
