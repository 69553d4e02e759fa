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

// Carrier is the unsigned integer type whose bit width matches a
// supported binary float format: uint32 backs binary32, uint64 backs
// binary64.
type Carrier interface {
	~uint32 | ~uint64
}

// Decimal is the result of a Dragonbox conversion: s * 10^Exponent == x
// under the rounding interpretation the caller's Policy selected.
type Decimal[C Carrier] struct {
	Significand          C
	Exponent             int32
	IsNegative           bool
	MayHaveTrailingZeros bool
}
