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

package main

import (
	"bytes"
	"fmt"
	"math/big"
	"os"

	"github.com/ajroetker/dragonbox/internal/cache"
	"github.com/ajroetker/dragonbox/internal/logapprox"
	"github.com/spf13/cobra"
	"golang.org/x/tools/imports"
)

func newCacheCmd() *cobra.Command {
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Regenerate the full binary32 or binary64 cache table",
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			switch format {
			case "binary32":
				writeBinary32Table(&buf, cache.MinK32, cache.MaxK32)
			case "binary64":
				writeBinary64Table(&buf, cache.MinK64, cache.MaxK64)
			default:
				return fmt.Errorf("dragonboxgen cache: unknown --format %q (want binary32 or binary64)", format)
			}

			formatted, err := imports.Process(outPath, buf.Bytes(), nil)
			if err != nil {
				return fmt.Errorf("dragonboxgen cache: formatting generated source: %w", err)
			}
			if outPath == "" {
				_, err = os.Stdout.Write(formatted)
				return err
			}
			return os.WriteFile(outPath, formatted, 0o644)
		},
	}

	cmd.Flags().StringVar(&format, "format", "binary32", "binary32 or binary64")
	cmd.Flags().StringVar(&outPath, "out", "", "output file, e.g. internal/cache/binary32_table.go or internal/cache/binary64_table.go (default: stdout)")
	return cmd
}

// phiK computes ceil(10^k * 2^(cacheBits-1-floor(k*log2(10))) ), the exact
// definition internal/cache's literal tables encode (see
// internal/verify.exactCacheLowerBound, which checks the committed tables
// against this same formula).
func phiK(k, cacheBits int) *big.Int {
	e := logapprox.FloorLog2Pow10(k)
	numerator := big.NewInt(1)
	denominator := big.NewInt(1)
	if k >= 0 {
		numerator.Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
	} else {
		denominator.Exp(big.NewInt(10), big.NewInt(int64(-k)), nil)
	}
	numerator.Lsh(numerator, uint(cacheBits-1))
	if e >= 0 {
		denominator.Lsh(denominator, uint(e))
	} else {
		numerator.Lsh(numerator, uint(-e))
	}
	q, r := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// writeBinary32Table emits the source of internal/cache/binary32_table.go:
// a standalone file in package cache declaring the same binary32Cache
// identifier internal/cache/cache.go's Binary32 reads from, one entry per
// line and without the committed file's license header and doc comment.
func writeBinary32Table(buf *bytes.Buffer, minK, maxK int) {
	fmt.Fprintf(buf, "package cache\n\n// Generated by dragonboxgen cache --format binary32. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "var binary32Cache = [%d]uint64{\n", maxK-minK+1)
	for k := minK; k <= maxK; k++ {
		v := phiK(k, 64)
		fmt.Fprintf(buf, "\t0x%016x,\n", v.Uint64())
	}
	fmt.Fprintln(buf, "}")
}

// writeBinary64Table emits the source of internal/cache/binary64_table.go:
// a standalone file in package cache declaring the same binary64Cache
// identifier internal/cache/cache.go's Binary64 and CompactBinary64 read
// from, without the committed file's license header and doc comment.
func writeBinary64Table(buf *bytes.Buffer, minK, maxK int) {
	fmt.Fprintf(buf, "package cache\n\n// Generated by dragonboxgen cache --format binary64. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "import \"github.com/ajroetker/dragonbox/internal/wide\"\n\n")
	fmt.Fprintf(buf, "var binary64Cache = [%d]wide.Uint128{\n", maxK-minK+1)
	for k := minK; k <= maxK; k++ {
		v := phiK(k, 128)
		hi := new(big.Int).Rsh(v, 64)
		lo := new(big.Int).And(v, new(big.Int).SetUint64(^uint64(0)))
		fmt.Fprintf(buf, "\t{Hi: 0x%016x, Lo: 0x%016x},\n", hi.Uint64(), lo.Uint64())
	}
	fmt.Fprintln(buf, "}")
}
