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

// Package logapprox computes floor(e*log_b(a) - s) for the handful of
// (b, a, s) triples the Dragonbox kernel needs, using fixed-point integer
// multiplies instead of floating-point logarithms. Each formula below is
// exact (matches the arbitrary-precision floor) only within the documented
// range of e; callers outside that range get a panic rather than a silently
// wrong answer.
package logapprox

// FloorLog10Pow2 returns floor(e * log10(2)) for e in [-2620, 2620].
func FloorLog10Pow2(e int) int {
	checkRange("FloorLog10Pow2", e, -2620, 2620)
	return int(int64(e)*315653) >> 20
}

// FloorLog2Pow10 returns floor(e * log2(10)) for e in [-1233, 1233].
func FloorLog2Pow10(e int) int {
	checkRange("FloorLog2Pow10", e, -1233, 1233)
	return int(int64(e)*1741647) >> 19
}

// FloorLog10Pow2MinusLog10FourOverThree returns floor(e*log10(2) - log10(4/3))
// for e in [-2985, 2936].
func FloorLog10Pow2MinusLog10FourOverThree(e int) int {
	checkRange("FloorLog10Pow2MinusLog10FourOverThree", e, -2985, 2936)
	return int(int64(e)*631305-261663) >> 21
}

// FloorLog5Pow2 returns floor(e * log5(2)) for e in [-1831, 1831].
func FloorLog5Pow2(e int) int {
	checkRange("FloorLog5Pow2", e, -1831, 1831)
	return int(int64(e)*225799) >> 19
}

// FloorLog5Pow2MinusLog5Three returns floor(e*log5(2) - log5(3)) for
// e in [-3543, 2427].
func FloorLog5Pow2MinusLog5Three(e int) int {
	checkRange("FloorLog5Pow2MinusLog5Three", e, -3543, 2427)
	return int(int64(e)*451597-715764) >> 20
}

func checkRange(name string, e, lo, hi int) {
	if e < lo || e > hi {
		panic(name + ": exponent out of documented range")
	}
}
