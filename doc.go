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

// Package dragonbox converts IEEE-754 binary32 and binary64 values to the
// shortest decimal significand that round-trips back to the original bit
// pattern, using the Schubfach-style Dragonbox algorithm: a precomputed
// power-of-ten cache and pure 64/128-bit integer arithmetic in place of
// division or big-integer fallback paths.
//
// Basic usage:
//
//	d, ok := dragonbox.ToDecimal(1.0/3.0, dragonbox.DefaultPolicy())
//	// d == Decimal[uint64]{Significand: 33333333333333331, Exponent: -17, IsNegative: false}
//
//	buf := dragonbox.AppendFloat(nil, 1.0/3.0, dragonbox.DefaultPolicy())
//	// buf == "3.3333333333333331E-1"
//
// ToDecimal and ToDecimal32 return ok == false for NaN and infinities;
// AppendFloat and AppendFloat32 handle those directly, writing "NaN" or
// "[-]Infinity".
//
// The conversion kernels in internal/kernel are pure, allocation-free
// functions with no shared state: concurrent calls from any number of
// goroutines need no synchronisation.
package dragonbox
