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

package dragonbox

import (
	"math"

	"github.com/ajroetker/dragonbox/internal/cache"
	"github.com/ajroetker/dragonbox/internal/format"
	"github.com/ajroetker/dragonbox/internal/kernel"
)

func isDirectedRounding(d DecimalToBinaryRounding) bool {
	switch d {
	case TowardPlusInfinity, TowardMinusInfinity, TowardZero, AwayFromZero:
		return true
	default:
		return false
	}
}

// useLeftClosedDirected reports which directed kernel a directed
// DecimalToBinaryRounding mode selects. Only meaningful when
// isDirectedRounding(d) is true.
func useLeftClosedDirected(d DecimalToBinaryRounding, negative bool) bool {
	switch d {
	case TowardPlusInfinity:
		return negative
	case TowardMinusInfinity:
		return !negative
	case TowardZero:
		return true
	default: // AwayFromZero
		return false
	}
}

func normalIntervalType(d DecimalToBinaryRounding, significandEven, negative bool) kernel.IntervalType {
	switch d {
	case NearestToEven:
		return kernel.IntervalType{IncludeLeft: significandEven, IncludeRight: significandEven}
	case NearestToOdd:
		return kernel.IntervalType{IncludeLeft: !significandEven, IncludeRight: !significandEven}
	case NearestTowardPlusInfinity:
		return kernel.IntervalType{IncludeLeft: !negative, IncludeRight: negative}
	case NearestTowardMinusInfinity:
		return kernel.IntervalType{IncludeLeft: negative, IncludeRight: !negative}
	case NearestTowardZero:
		return kernel.IntervalType{IncludeLeft: false, IncludeRight: true}
	default: // NearestAwayFromZero
		return kernel.IntervalType{IncludeLeft: true, IncludeRight: false}
	}
}

// shorterIntervalType differs from normalIntervalType only for the
// to-even/to-odd modes: the shorter-interval case has no significand
// parity to tie-break on, so those two modes fall back to always-closed /
// always-open instead.
func shorterIntervalType(d DecimalToBinaryRounding, negative bool) kernel.IntervalType {
	switch d {
	case NearestToEven:
		return kernel.IntervalType{IncludeLeft: true, IncludeRight: true}
	case NearestToOdd:
		return kernel.IntervalType{IncludeLeft: false, IncludeRight: false}
	case NearestTowardPlusInfinity:
		return kernel.IntervalType{IncludeLeft: !negative, IncludeRight: negative}
	case NearestTowardMinusInfinity:
		return kernel.IntervalType{IncludeLeft: negative, IncludeRight: !negative}
	case NearestTowardZero:
		return kernel.IntervalType{IncludeLeft: false, IncludeRight: true}
	default: // NearestAwayFromZero
		return kernel.IntervalType{IncludeLeft: true, IncludeRight: false}
	}
}

func cacheFunc64(p Policy) kernel.Cache64Func {
	if p.Cache == CompactCache {
		return cache.CompactBinary64
	}
	return cache.Binary64
}

func applyTrailingZeroPolicy32(p Policy, significand uint32, exponent int32) (uint32, int32, bool) {
	switch p.TrailingZero {
	case RemoveTrailingZeros:
		residue, zeros := format.RemoveTrailingZeros32(significand)
		return residue, exponent + int32(zeros), false
	case ReportTrailingZeros:
		_, zeros := format.RemoveTrailingZeros32(significand)
		return significand, exponent, zeros > 0
	default: // IgnoreTrailingZeros
		return significand, exponent, false
	}
}

func applyTrailingZeroPolicy64(p Policy, significand uint64, exponent int32) (uint64, int32, bool) {
	switch p.TrailingZero {
	case RemoveTrailingZeros:
		residue, zeros := format.RemoveTrailingZeros64(significand)
		return residue, exponent + int32(zeros), false
	case ReportTrailingZeros:
		_, zeros := format.RemoveTrailingZeros64(significand)
		return significand, exponent, zeros > 0
	default: // IgnoreTrailingZeros
		return significand, exponent, false
	}
}

// ToDecimal converts a finite, nonzero or zero binary64 value to its
// shortest decimal representation under p. ok is false for NaN and
// infinities, which this package leaves to the caller's formatter.
func ToDecimal(x float64, p Policy) (Decimal[uint64], bool) {
	bits := math.Float64bits(x)
	negative := bits>>63 != 0
	biasedExponent := int(bits>>format.SignificandBits64) & (1<<format.ExponentBits64 - 1)
	storedSignificand := bits & (1<<format.SignificandBits64 - 1)

	if biasedExponent == 1<<format.ExponentBits64-1 {
		return Decimal[uint64]{}, false
	}

	if biasedExponent == 0 && storedSignificand == 0 {
		d := Decimal[uint64]{}
		if p.Sign == ReturnSign {
			d.IsNegative = negative
		}
		return d, true
	}

	var twoFc uint64
	var binaryExponent int
	var useShorter bool

	if biasedExponent == 0 {
		twoFc = storedSignificand << 1
		binaryExponent = format.MinExponent64 - format.SignificandBits64
	} else {
		twoFc = (storedSignificand | (1 << format.SignificandBits64)) << 1
		binaryExponent = biasedExponent + format.ExponentBias64 - format.SignificandBits64
		useShorter = storedSignificand == 0 && biasedExponent > 1
	}

	significandEven := storedSignificand%2 == 0
	c := cacheFunc64(p)

	var res kernel.Decimal64
	switch {
	case useShorter && isDirectedRounding(p.DecimalToBinary):
		if useLeftClosedDirected(p.DecimalToBinary, negative) {
			res = kernel.LeftClosedDirected64(twoFc, binaryExponent, c)
		} else {
			res = kernel.RightClosedDirected64(twoFc, binaryExponent, true, c)
		}
	case useShorter:
		res = kernel.NearestShorter64(binaryExponent, shorterIntervalType(p.DecimalToBinary, negative), p.BinaryToDecimal, c)
	case isDirectedRounding(p.DecimalToBinary):
		if useLeftClosedDirected(p.DecimalToBinary, negative) {
			res = kernel.LeftClosedDirected64(twoFc, binaryExponent, c)
		} else {
			res = kernel.RightClosedDirected64(twoFc, binaryExponent, false, c)
		}
	default:
		res = kernel.NearestNormal64(twoFc, binaryExponent, normalIntervalType(p.DecimalToBinary, significandEven, negative), p.BinaryToDecimal, c)
	}

	significand, exponent, mayHaveTrailingZeros := applyTrailingZeroPolicy64(p, res.Significand, int32(res.Exponent))

	d := Decimal[uint64]{Significand: significand, Exponent: exponent, MayHaveTrailingZeros: mayHaveTrailingZeros}
	if p.Sign == ReturnSign {
		d.IsNegative = negative
	}
	return d, true
}

// ToDecimal32 is the binary32 counterpart of ToDecimal.
func ToDecimal32(x float32, p Policy) (Decimal[uint32], bool) {
	bits := math.Float32bits(x)
	negative := bits>>31 != 0
	biasedExponent := int(bits>>format.SignificandBits32) & (1<<format.ExponentBits32 - 1)
	storedSignificand := bits & (1<<format.SignificandBits32 - 1)

	if biasedExponent == 1<<format.ExponentBits32-1 {
		return Decimal[uint32]{}, false
	}

	if biasedExponent == 0 && storedSignificand == 0 {
		d := Decimal[uint32]{}
		if p.Sign == ReturnSign {
			d.IsNegative = negative
		}
		return d, true
	}

	var twoFc uint32
	var binaryExponent int
	var useShorter bool

	if biasedExponent == 0 {
		twoFc = storedSignificand << 1
		binaryExponent = format.MinExponent32 - format.SignificandBits32
	} else {
		twoFc = (storedSignificand | (1 << format.SignificandBits32)) << 1
		binaryExponent = biasedExponent + format.ExponentBias32 - format.SignificandBits32
		useShorter = storedSignificand == 0 && biasedExponent > 1
	}

	significandEven := storedSignificand%2 == 0

	var res kernel.Decimal32
	switch {
	case useShorter && isDirectedRounding(p.DecimalToBinary):
		if useLeftClosedDirected(p.DecimalToBinary, negative) {
			res = kernel.LeftClosedDirected32(twoFc, binaryExponent, cache.Binary32)
		} else {
			res = kernel.RightClosedDirected32(twoFc, binaryExponent, true, cache.Binary32)
		}
	case useShorter:
		res = kernel.NearestShorter32(binaryExponent, shorterIntervalType(p.DecimalToBinary, negative), p.BinaryToDecimal, cache.Binary32)
	case isDirectedRounding(p.DecimalToBinary):
		if useLeftClosedDirected(p.DecimalToBinary, negative) {
			res = kernel.LeftClosedDirected32(twoFc, binaryExponent, cache.Binary32)
		} else {
			res = kernel.RightClosedDirected32(twoFc, binaryExponent, false, cache.Binary32)
		}
	default:
		res = kernel.NearestNormal32(twoFc, binaryExponent, normalIntervalType(p.DecimalToBinary, significandEven, negative), p.BinaryToDecimal, cache.Binary32)
	}

	significand, exponent, mayHaveTrailingZeros := applyTrailingZeroPolicy32(p, res.Significand, int32(res.Exponent))

	d := Decimal[uint32]{Significand: significand, Exponent: exponent, MayHaveTrailingZeros: mayHaveTrailingZeros}
	if p.Sign == ReturnSign {
		d.IsNegative = negative
	}
	return d, true
}
