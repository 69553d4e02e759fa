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

// Package cache holds the precomputed power-of-ten tables Dragonbox reads
// instead of performing any division at conversion time, plus a compact
// reconstruction path for binary64 that trades a larger multiply for a
// much smaller table. The tables are generated ahead of time (see
// cmd/dragonboxgen) and checked in as literal data, the way forkkit-ryu
// ships its generated tables.go.
package cache

import (
	"github.com/ajroetker/dragonbox/internal/logapprox"
	"github.com/ajroetker/dragonbox/internal/wide"
)

// Exponent bounds for the two formats' cache tables.
const (
	MinK32 = -31
	MaxK32 = 46

	MinK64 = -292
	MaxK64 = 326

	// CompressionRatio is the stride of the compact binary64 cache: one
	// stored entry every 27 positions.
	CompressionRatio = 27
)

// compactBinary64Base stores one binary64 cache entry every
// CompressionRatio positions, the entries the compact policy reconstructs
// the rest from.
var compactBinary64Base = func() []wide.Uint128 {
	n := (MaxK64 - MinK64 + CompressionRatio) / CompressionRatio
	table := make([]wide.Uint128, n)
	for i := range table {
		table[i] = binary64Cache[i*CompressionRatio]
	}
	return table
}()

// pow5Compact holds 5^o for o in [0, CompressionRatio), used to bridge from
// a stored base entry to any of the CompressionRatio-1 entries that follow
// it.
var pow5Compact = func() [CompressionRatio]uint64 {
	var table [CompressionRatio]uint64
	p := uint64(1)
	for i := range table {
		table[i] = p
		p *= 5
	}
	return table
}()

// Binary32 returns the full-precision phi_k entry for exponent k, which
// must lie in [MinK32, MaxK32].
func Binary32(k int) uint64 {
	if k < MinK32 || k > MaxK32 {
		panic("cache.Binary32: k out of range")
	}
	return binary32Cache[k-MinK32]
}

// Binary64 returns the full-precision phi_k entry for exponent k, which
// must lie in [MinK64, MaxK64].
func Binary64(k int) wide.Uint128 {
	if k < MinK64 || k > MaxK64 {
		panic("cache.Binary64: k out of range")
	}
	return binary64Cache[k-MinK64]
}

// CompactBinary64 reconstructs phi_k from the nearest preceding stored
// entry and a power of five, trading one 128-bit multiply for 26 out of
// every 27 table entries. The result is within 3 units of the exact value
// that Binary64 would return, which the kernel's multiplication-margin
// analysis already tolerates.
func CompactBinary64(k int) wide.Uint128 {
	if k < MinK64 || k > MaxK64 {
		panic("cache.CompactBinary64: k out of range")
	}

	cacheIndex := (k - MinK64) / CompressionRatio
	kb := cacheIndex*CompressionRatio + MinK64
	offset := k - kb

	base := compactBinary64Base[cacheIndex]
	if offset == 0 {
		return base
	}

	alpha := logapprox.FloorLog2Pow10(kb+offset) - logapprox.FloorLog2Pow10(kb) - offset
	if alpha <= 0 || alpha >= 64 {
		panic("cache.CompactBinary64: alpha out of expected range")
	}

	pow5 := pow5Compact[offset]
	recovered := wide.Mul128(base.Hi, pow5)
	middleLow := wide.Mul128(base.Lo, pow5)
	recovered.AddUint64(middleLow.Hi)

	highToMiddle := recovered.Hi << (64 - uint(alpha))
	middleToLow := recovered.Lo << (64 - uint(alpha))

	recovered = wide.Uint128{
		Hi: (recovered.Lo >> uint(alpha)) | highToMiddle,
		Lo: (middleLow.Lo >> uint(alpha)) | middleToLow,
	}
	recovered.Lo++

	return recovered
}
