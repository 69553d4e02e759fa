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

import (
	"testing"

	"github.com/ajroetker/dragonbox/internal/wide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveTrailingZeros32(t *testing.T) {
	cases := []struct {
		n       uint32
		residue uint32
		zeros   int
	}{
		{1, 1, 0},
		{10, 1, 1},
		{100, 1, 2},
		{120, 12, 1},
		{1000000000, 1, 9},
		{123456789, 123456789, 0},
	}
	for _, c := range cases {
		residue, zeros := RemoveTrailingZeros32(c.n)
		assert.Equal(t, c.residue, residue, "n=%d", c.n)
		assert.Equal(t, c.zeros, zeros, "n=%d", c.n)
		assert.Equal(t, c.n, residue*pow10u32(zeros))
	}
}

func TestRemoveTrailingZeros64(t *testing.T) {
	cases := []struct {
		n       uint64
		residue uint64
		zeros   int
	}{
		{1, 1, 0},
		{10, 1, 1},
		{100000000, 1, 8},
		{100000000000000000, 1, 17},
		{17976931348623157, 17976931348623157, 0},
	}
	for _, c := range cases {
		residue, zeros := RemoveTrailingZeros64(c.n)
		assert.Equal(t, c.residue, residue, "n=%d", c.n)
		assert.Equal(t, c.zeros, zeros, "n=%d", c.n)
		assert.Equal(t, c.n, residue*pow10u64(zeros))
	}
}

func pow10u32(n int) uint32 {
	r := uint32(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}

func pow10u64(n int) uint64 {
	r := uint64(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}

func TestDivideByPow10Helpers(t *testing.T) {
	assert.Equal(t, uint32(12), DivideByPow10TwoOf32(1234))
	assert.Equal(t, uint32(123), DivideByPow10OneOf32(1234))
	assert.Equal(t, uint64(12), DivideByPow10ThreeOf64(12345))
	assert.Equal(t, uint64(1234), DivideByPow10OneOf64(12345))
}

func TestCheckDivisibilityAndDivide32(t *testing.T) {
	n := uint32(100)
	ok := CheckDivisibilityAndDivideByPow10_32(&n)
	require.True(t, ok)
	assert.Equal(t, uint32(10), n)

	n = 101
	ok = CheckDivisibilityAndDivideByPow10_32(&n)
	require.False(t, ok)
}

func TestCheckDivisibilityAndDivide64(t *testing.T) {
	n := uint64(1000)
	ok := CheckDivisibilityAndDivideByPow10_64(&n)
	require.True(t, ok)
	assert.Equal(t, uint64(10), n)

	n = 1001
	ok = CheckDivisibilityAndDivideByPow10_64(&n)
	require.False(t, ok)
}

func TestComputeMulParityRangePanics(t *testing.T) {
	require.Panics(t, func() { ComputeMulParity32(0, 0, 0) })
	require.Panics(t, func() { ComputeMulParity32(0, 0, 33) })
	require.Panics(t, func() { ComputeMulParity64(0, wide.Uint128{}, 0) })
	require.Panics(t, func() { ComputeMulParity64(0, wide.Uint128{}, 64) })
}

func TestShorterIntervalEndpointThresholds(t *testing.T) {
	assert.True(t, IsLeftEndpointIntegerShorterInterval32(2))
	assert.True(t, IsLeftEndpointIntegerShorterInterval32(3))
	assert.False(t, IsLeftEndpointIntegerShorterInterval32(1))
	assert.False(t, IsLeftEndpointIntegerShorterInterval32(4))

	assert.True(t, IsRightEndpointIntegerShorterInterval32(0))
	assert.True(t, IsRightEndpointIntegerShorterInterval32(3))
	assert.False(t, IsRightEndpointIntegerShorterInterval32(-1))
	assert.False(t, IsRightEndpointIntegerShorterInterval32(4))

	assert.True(t, IsLeftEndpointIntegerShorterInterval64(2))
	assert.True(t, IsRightEndpointIntegerShorterInterval64(0))
}
