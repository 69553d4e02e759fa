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

// Package wide provides the 128-bit-wide integer arithmetic that the
// Dragonbox kernels need to multiply a 64-bit significand against a
// 64- or 128-bit cache entry without ever dividing.
//
// Every function here is pure, allocation-free and branch-free; the 64x64
// product is built on math/bits.Mul64, which already lowers to a single
// hardware multiply-high instruction on amd64 and arm64, so there is no
// separate portable-vs-intrinsic split to maintain.
package wide

import "math/bits"

// Uint128 is a 128-bit unsigned integer split into two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// AddUint64 adds n to u in place, propagating the carry into Hi.
func (u *Uint128) AddUint64(n uint64) {
	lo, carry := bits.Add64(u.Lo, n, 0)
	u.Lo = lo
	u.Hi += carry
}

// Mul128 returns the exact 128-bit product of x and y.
func Mul128(x, y uint64) Uint128 {
	hi, lo := bits.Mul64(x, y)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul128Upper64 returns only the high 64 bits of the product of x and y.
func Mul128Upper64(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}

// Mul192Upper128 returns the upper 128 bits of the 192-bit product of the
// 64-bit x and the 128-bit y, i.e. floor(x*y / 2^64).
func Mul192Upper128(x uint64, y Uint128) Uint128 {
	r := Mul128(x, y.Hi)
	r.AddUint64(Mul128Upper64(x, y.Lo))
	return r
}

// Mul192Lower128 returns the lower 128 bits of the 192-bit product of the
// 64-bit x and the 128-bit y.
func Mul192Lower128(x uint64, y Uint128) Uint128 {
	high := x * y.Hi
	highLow := Mul128(x, y.Lo)
	return Uint128{Hi: high + highLow.Hi, Lo: highLow.Lo}
}

// Mul96Upper64 returns the top 64 bits of the product of the 32-bit x and
// the 64-bit y.
func Mul96Upper64(x uint32, y uint64) uint64 {
	yh := uint32(y >> 32)
	yl := uint32(y)
	xyh := uint64(x) * uint64(yh)
	xyl := uint64(x) * uint64(yl)
	return xyh + (xyl >> 32)
}

// Mul96Lower64 returns the low 64 bits of the product of the 32-bit x and
// the 64-bit y.
func Mul96Lower64(x uint32, y uint64) uint64 {
	return uint64(x) * y
}
