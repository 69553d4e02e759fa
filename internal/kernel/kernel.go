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

// Package kernel implements the four Dragonbox conversion routines —
// nearest-rounding on the normal interval, nearest-rounding on the shorter
// (power-of-two boundary) interval, and the two directed-rounding
// variants — for both binary32 and binary64. Every routine here is a pure,
// allocation-free function of its arguments: no shared state, no I/O, and
// (per its documented exponent precondition) no panics reachable from
// well-formed dispatcher input.
package kernel

// IntervalType captures which end of the rounding interval a
// nearest-rounding kernel treats as closed, the Go equivalent of the
// source's compile-time interval-type tag.
type IntervalType struct {
	IncludeLeft  bool
	IncludeRight bool
}

// BinaryToDecimalRounding selects how ties are broken once the small and
// big divisor attempts agree up to parity.
type BinaryToDecimalRounding int

const (
	ToEven BinaryToDecimalRounding = iota
	ToOdd
	AwayFromZero
	TowardZero
	DoNotCare
)

// PreferRoundDown32 implements spec's prefer_round_down(s) for a 32-bit
// candidate significand.
func (r BinaryToDecimalRounding) PreferRoundDown32(s uint32) bool {
	switch r {
	case ToEven:
		return s%2 != 0
	case ToOdd:
		return s%2 == 0
	case TowardZero:
		return true
	default: // AwayFromZero, DoNotCare
		return false
	}
}

// PreferRoundDown64 implements spec's prefer_round_down(s) for a 64-bit
// candidate significand.
func (r BinaryToDecimalRounding) PreferRoundDown64(s uint64) bool {
	switch r {
	case ToEven:
		return s%2 != 0
	case ToOdd:
		return s%2 == 0
	case TowardZero:
		return true
	default: // AwayFromZero, DoNotCare
		return false
	}
}
