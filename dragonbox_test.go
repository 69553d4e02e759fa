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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendFloatConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want string
	}{
		{"+0.0", 0.0, "0E0"},
		{"-0.0", math.Copysign(0, -1), "-0E0"},
		{"1.0", 1.0, "1E0"},
		{"smallest subnormal", math.Float64frombits(1), "5E-324"},
		{"1/3", 1.0 / 3.0, "3.3333333333333331E-1"},
		{"+Inf", math.Inf(1), "Infinity"},
		{"-Inf", math.Inf(-1), "-Infinity"},
		{"NaN", math.NaN(), "NaN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := string(AppendFloat(nil, c.x, DefaultPolicy()))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestAppendFloat32LargestFinite(t *testing.T) {
	x := math.Float32frombits(0x7f7fffff)
	got := string(AppendFloat32(nil, x, DefaultPolicy()))
	assert.Equal(t, "3.4028235E38", got)
}

func TestToDecimalNonFiniteNotOK(t *testing.T) {
	_, ok := ToDecimal(math.NaN(), DefaultPolicy())
	assert.False(t, ok)
	_, ok = ToDecimal(math.Inf(1), DefaultPolicy())
	assert.False(t, ok)
	_, ok = ToDecimal32(float32(math.NaN()), DefaultPolicy())
	assert.False(t, ok)
}

func TestToDecimalZero(t *testing.T) {
	d, ok := ToDecimal(0.0, DefaultPolicy())
	require.True(t, ok)
	assert.Equal(t, uint64(0), d.Significand)
	assert.Equal(t, int32(0), d.Exponent)
	assert.False(t, d.IsNegative)

	d, ok = ToDecimal(math.Copysign(0, -1), DefaultPolicy())
	require.True(t, ok)
	assert.True(t, d.IsNegative)
}

func TestToDecimalOneIsShortest(t *testing.T) {
	d, ok := ToDecimal(1.0, DefaultPolicy())
	require.True(t, ok)
	assert.Equal(t, uint64(1), d.Significand)
	assert.Equal(t, int32(0), d.Exponent)
}

func TestToDecimalApproximatesInputNearestToEven(t *testing.T) {
	inputs := []float64{1.0, 100.25, 2.0 / 3.0, 1e300, 1e-300, 123456789.123456}
	for _, x := range inputs {
		d, ok := ToDecimal(x, DefaultPolicy())
		require.True(t, ok, "x=%v", x)
		parsed := float64(d.Significand) * math.Pow10(int(d.Exponent))
		if d.IsNegative {
			parsed = -parsed
		}
		assert.InEpsilon(t, x, parsed, 1e-9, "x=%v", x)
	}
}

func TestPolicyTrailingZeroModes(t *testing.T) {
	remove := DefaultPolicy()
	remove.TrailingZero = RemoveTrailingZeros
	dRemove, _ := ToDecimal(100.0, remove)
	assert.Equal(t, uint64(1), dRemove.Significand)
	assert.Equal(t, int32(2), dRemove.Exponent)

	ignore := DefaultPolicy()
	ignore.TrailingZero = IgnoreTrailingZeros
	dIgnore, _ := ToDecimal(100.0, ignore)
	assert.Equal(t, uint64(1000000000000000), dIgnore.Significand)
}

func TestPolicyDirectedRoundingSelectsKernel(t *testing.T) {
	for _, mode := range []DecimalToBinaryRounding{TowardZero, AwayFromZero, TowardPlusInfinity, TowardMinusInfinity} {
		p := DefaultPolicy()
		p.DecimalToBinary = mode
		_, ok := ToDecimal(2.0/3.0, p)
		assert.True(t, ok)
	}
}

func TestPolicyCompactCacheMatchesFullCache(t *testing.T) {
	full := DefaultPolicy()
	compact := DefaultPolicy()
	compact.Cache = CompactCache

	inputs := []float64{1.0, 2.0 / 3.0, 1e250, 1e-250}
	for _, x := range inputs {
		dFull, _ := ToDecimal(x, full)
		dCompact, _ := ToDecimal(x, compact)
		if diff := cmp.Diff(dFull, dCompact); diff != "" {
			t.Errorf("full vs compact cache diverge for x=%v (-full +compact):\n%s", x, diff)
		}
	}
}
