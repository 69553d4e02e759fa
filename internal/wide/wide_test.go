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

package wide

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func bigFromU128(u Uint128) *big.Int {
	hi := new(big.Int).SetUint64(u.Hi)
	hi.Lsh(hi, 64)
	return hi.Add(hi, new(big.Int).SetUint64(u.Lo))
}

func TestMul128(t *testing.T) {
	cases := []struct{ x, y uint64 }{
		{0, 0},
		{1, 1},
		{0xffffffffffffffff, 0xffffffffffffffff},
		{0x123456789abcdef0, 0xfedcba9876543210},
		{1, 0xffffffffffffffff},
	}
	for _, c := range cases {
		got := Mul128(c.x, c.y)
		want := new(big.Int).Mul(new(big.Int).SetUint64(c.x), new(big.Int).SetUint64(c.y))
		require.Equal(t, want, bigFromU128(got), "Mul128(%d,%d)", c.x, c.y)
		require.Equal(t, got.Hi, Mul128Upper64(c.x, c.y))
	}
}

func TestMul192Upper128(t *testing.T) {
	x := uint64(0xfedcba9876543210)
	y := Uint128{Hi: 0x1122334455667788, Lo: 0x99aabbccddeeff00}

	got := Mul192Upper128(x, y)

	full := new(big.Int).Mul(new(big.Int).SetUint64(x), bigFromU128(y))
	want := new(big.Int).Rsh(full, 64)
	require.Equal(t, want, bigFromU128(got))
}

func TestMul192Lower128(t *testing.T) {
	x := uint64(0xfedcba9876543210)
	y := Uint128{Hi: 0x1122334455667788, Lo: 0x99aabbccddeeff00}

	got := Mul192Lower128(x, y)

	full := new(big.Int).Mul(new(big.Int).SetUint64(x), bigFromU128(y))
	mask := new(big.Int).Lsh(big.NewInt(1), 128)
	mask.Sub(mask, big.NewInt(1))
	want := new(big.Int).And(full, mask)
	require.Equal(t, want, bigFromU128(got))
}

func TestMul96Upper64(t *testing.T) {
	x := uint32(0xdeadbeef)
	y := uint64(0x0123456789abcdef)

	got := Mul96Upper64(x, y)

	full := new(big.Int).Mul(new(big.Int).SetUint64(uint64(x)), new(big.Int).SetUint64(y))
	want := new(big.Int).Rsh(full, 32)
	require.Equal(t, want.Uint64(), got)
}

func TestMul96Lower64(t *testing.T) {
	x := uint32(0xdeadbeef)
	y := uint64(0x0123456789abcdef)

	got := Mul96Lower64(x, y)
	want := uint64(x) * y
	require.Equal(t, want, got)
}

func TestAddUint64Carry(t *testing.T) {
	u := Uint128{Hi: 0, Lo: 0xffffffffffffffff}
	u.AddUint64(1)
	require.Equal(t, Uint128{Hi: 1, Lo: 0}, u)
}
