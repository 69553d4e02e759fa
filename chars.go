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
	"strconv"
)

// AppendFloat converts x to its shortest decimal form under p and appends
// it to dst, mirroring strconv.AppendFloat's write-into-caller-buffer
// convention. NaN renders as "NaN" (no sign); infinities render as
// "[-]Infinity"; finite values render as "[-]d[.ddd...]E[-]d[d[d]]" with no
// leading zeros in the exponent and 0 rendered as "0E0".
func AppendFloat(dst []byte, x float64, p Policy) []byte {
	switch {
	case math.IsNaN(x):
		return append(dst, "NaN"...)
	case math.IsInf(x, 0):
		if math.Signbit(x) {
			dst = append(dst, '-')
		}
		return append(dst, "Infinity"...)
	}
	d, _ := ToDecimal(x, p)
	return appendDecimal(dst, d.Significand, d.Exponent, d.IsNegative)
}

// AppendFloat32 is the binary32 counterpart of AppendFloat.
func AppendFloat32(dst []byte, x float32, p Policy) []byte {
	x64 := float64(x)
	switch {
	case math.IsNaN(x64):
		return append(dst, "NaN"...)
	case math.IsInf(x64, 0):
		if math.Signbit(x64) {
			dst = append(dst, '-')
		}
		return append(dst, "Infinity"...)
	}
	d, _ := ToDecimal32(x, p)
	return appendDecimal(dst, uint64(d.Significand), d.Exponent, d.IsNegative)
}

// appendDecimal writes the scientific-notation grammar shared by both
// formats: a single leading digit, a decimal point and the remaining
// digits if there is more than one, then E and the adjusted exponent.
func appendDecimal(dst []byte, significand uint64, exponent int32, negative bool) []byte {
	if negative {
		dst = append(dst, '-')
	}

	var buf [20]byte
	digits := strconv.AppendUint(buf[:0], significand, 10)

	dst = append(dst, digits[0])
	if len(digits) > 1 {
		dst = append(dst, '.')
		dst = append(dst, digits[1:]...)
	}

	dst = append(dst, 'E')
	printedExponent := int(exponent) + len(digits) - 1
	return strconv.AppendInt(dst, int64(printedExponent), 10)
}
