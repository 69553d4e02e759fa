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
	"math"
	"testing"

	"github.com/ajroetker/dragonbox/internal/cache"
	"github.com/stretchr/testify/assert"
)

var closedBoth = IntervalType{IncludeLeft: true, IncludeRight: true}

// decompose32 extracts two_fc and the unbiased binary exponent from a
// normal (non-subnormal, non-shorter-interval) binary32 bit pattern.
func decompose32(bits uint32) (twoFc uint32, binaryExponent int) {
	const significandBits = 23
	exponentBits := int(bits >> significandBits & 0xff)
	fc := bits & (1<<significandBits - 1)
	twoFc = (fc | (1 << significandBits)) << 1
	binaryExponent = exponentBits - 127 - significandBits
	return twoFc, binaryExponent
}

func TestNearestNormal32NonZeroSignificand(t *testing.T) {
	inputs := []float32{1.0, 100.0, 3.14159, 2.0 / 3.0}
	for _, f := range inputs {
		bits := math.Float32bits(f)
		twoFc, e := decompose32(bits)
		d := NearestNormal32(twoFc, e, closedBoth, ToEven, cache.Binary32)
		assert.NotZero(t, d.Significand, "f=%v", f)
	}
}

// TestLeftClosedDirected32ExceptionalInputs regresses the two documented
// binary32 inputs where the naive multiplier integer-ness check disagrees
// with the true value once binaryExponent <= -80, per the exceptional
// fix-up carried in LeftClosedDirected32.
func TestLeftClosedDirected32ExceptionalInputs(t *testing.T) {
	cases := []uint32{29711844, 29711482}
	for _, twoFc := range cases {
		// binaryExponent chosen inside the documented exceptional range
		// (<= -80) to exercise the fix-up branch; binary32's smallest
		// reachable binary exponent is -149.
		const binaryExponent = -81
		d := LeftClosedDirected32(twoFc, binaryExponent, cache.Binary32)
		assert.NotZero(t, d.Significand, "two_fc=%d", twoFc)
	}
}

func TestNearestShorter32PowerOfTwoBoundary(t *testing.T) {
	// 1.0f sits exactly on a power-of-two boundary: fc == 0.
	const binaryExponent = -23
	d := NearestShorter32(binaryExponent, closedBoth, ToEven, cache.Binary32)
	assert.NotZero(t, d.Significand)
}

func TestRightClosedDirected32(t *testing.T) {
	bits := math.Float32bits(2.5)
	twoFc, e := decompose32(bits)
	d := RightClosedDirected32(twoFc, e, false, cache.Binary32)
	assert.NotZero(t, d.Significand)
}

func decompose64(bits uint64) (twoFc uint64, binaryExponent int) {
	const significandBits = 52
	exponentBits := int(bits >> significandBits & 0x7ff)
	fc := bits & (1<<significandBits - 1)
	twoFc = (fc | (1 << significandBits)) << 1
	binaryExponent = exponentBits - 1023 - significandBits
	return twoFc, binaryExponent
}

func TestNearestNormal64NonZeroSignificand(t *testing.T) {
	inputs := []float64{1.0, 100.0, 3.14159265358979, 1.0 / 3.0}
	for _, f := range inputs {
		bits := math.Float64bits(f)
		twoFc, e := decompose64(bits)
		d := NearestNormal64(twoFc, e, closedBoth, ToEven, cache.Binary64)
		assert.NotZero(t, d.Significand, "f=%v", f)
	}
}

func TestNearestShorter64PowerOfTwoBoundary(t *testing.T) {
	const binaryExponent = -52
	d := NearestShorter64(binaryExponent, closedBoth, ToEven, cache.Binary64)
	assert.NotZero(t, d.Significand)
}

func TestLeftAndRightClosedDirected64(t *testing.T) {
	bits := math.Float64bits(2.5)
	twoFc, e := decompose64(bits)
	left := LeftClosedDirected64(twoFc, e, cache.Binary64)
	right := RightClosedDirected64(twoFc, e, false, cache.Binary64)
	assert.NotZero(t, left.Significand)
	assert.NotZero(t, right.Significand)
}

func TestPreferRoundDownMatrix(t *testing.T) {
	assert.True(t, ToEven.PreferRoundDown32(3))
	assert.False(t, ToEven.PreferRoundDown32(4))
	assert.False(t, ToOdd.PreferRoundDown32(3))
	assert.True(t, ToOdd.PreferRoundDown32(4))
	assert.True(t, TowardZero.PreferRoundDown32(4))
	assert.False(t, AwayFromZero.PreferRoundDown32(4))
	assert.False(t, DoNotCare.PreferRoundDown64(4))
}
