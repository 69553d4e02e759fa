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

// Package format carries the per-IEEE-754-format constants and primitive
// operations (multiplier application, delta, parity, shorter-interval
// endpoints, trailing-zero removal, divisibility checks) that the
// conversion kernels in internal/kernel compose into full algorithms. None
// of it allocates or branches on anything but its own arguments.
package format

import "math/bits"

// Format-independent constants shared by both binary32 and binary64: the
// divide_magic_number table indexed by kappa-1, reused by both the
// divisibility check in Step 3 and the plain division the directed kernels
// need.
const (
	kappaDivideMagic32 = 6554
	kappaDivideMagic64 = 656
)

func rotr32(n uint32, r uint) uint32 { return bits.RotateLeft32(n, -int(r)) }
func rotr64(n uint64, r uint) uint64 { return bits.RotateLeft64(n, -int(r)) }
