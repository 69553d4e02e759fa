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

import "github.com/ajroetker/dragonbox/internal/kernel"

// SignPolicy controls whether ToDecimal reports the input's sign.
type SignPolicy int

const (
	IgnoreSign SignPolicy = iota
	ReturnSign
)

// TrailingZeroPolicy controls what ToDecimal does with trailing decimal
// zeros in the returned significand.
type TrailingZeroPolicy int

const (
	IgnoreTrailingZeros TrailingZeroPolicy = iota
	RemoveTrailingZeros
	ReportTrailingZeros
)

// DecimalToBinaryRounding selects which half-open rounding interval the
// dispatcher hands to the kernel, and in turn which kernel entry point
// (nearest or directed) is used. The core conversion kernel never reads
// this value directly; dispatch.go translates it into an IntervalType (for
// the nearest-rounding kernels) or a LeftClosedDirected/RightClosedDirected
// choice (for the directed kernels) before any kernel call.
type DecimalToBinaryRounding int

const (
	NearestToEven DecimalToBinaryRounding = iota
	NearestToOdd
	NearestTowardPlusInfinity
	NearestTowardMinusInfinity
	NearestTowardZero
	NearestAwayFromZero
	TowardPlusInfinity
	TowardMinusInfinity
	TowardZero
	AwayFromZero
)

// CachePolicy selects which power-of-ten cache internal/cache serves reads
// from.
type CachePolicy int

const (
	FullCache CachePolicy = iota
	CompactCache
)

// Policy bundles every configuration knob ToDecimal/ToDecimal32 accept,
// mirroring the source's compile-time policy tags as plain runtime enums:
// the kernel's branches on these values fold the same way the tags did,
// just without a template instantiation per combination.
type Policy struct {
	Sign            SignPolicy
	TrailingZero    TrailingZeroPolicy
	DecimalToBinary DecimalToBinaryRounding
	BinaryToDecimal kernel.BinaryToDecimalRounding
	Cache           CachePolicy
}

// DefaultPolicy returns (return_sign, remove_trailing_zeros, nearest_to_even,
// to_even, full_cache), the combination P1's functional-equivalence
// property is defined against.
func DefaultPolicy() Policy {
	return Policy{
		Sign:            ReturnSign,
		TrailingZero:    RemoveTrailingZeros,
		DecimalToBinary: NearestToEven,
		BinaryToDecimal: kernel.ToEven,
		Cache:           FullCache,
	}
}
