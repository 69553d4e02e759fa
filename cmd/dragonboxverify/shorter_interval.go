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
	"fmt"
	"math"
	"strconv"

	dragonbox "github.com/ajroetker/dragonbox"
	"github.com/spf13/cobra"
)

// newVerifyShorterIntervalCmd enumerates every biased exponent that
// triggers the shorter-interval kernel (stored_significand == 0,
// biased_exponent in [2, 2^exponent_bits-2]) and checks that the result
// round-trips, supplementing spec P4.
func newVerifyShorterIntervalCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "shorter-interval",
		Short: "Enumerate every biased exponent exercising the shorter-interval kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "binary32":
				return verifyShorterInterval32()
			case "binary64":
				return verifyShorterInterval64()
			default:
				return fmt.Errorf("dragonboxverify shorter-interval: unknown --format %q", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "binary64", "binary32 or binary64")
	return cmd
}

func verifyShorterInterval64() error {
	failures := 0
	for e := 1; e <= 0x7fe; e++ {
		bits := uint64(e) << 52
		x := math.Float64frombits(bits)
		text := string(dragonbox.AppendFloat(nil, x, dragonbox.DefaultPolicy()))
		parsed, err := strconv.ParseFloat(text, 64)
		if err != nil || math.Float64bits(parsed) != bits {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("dragonboxverify shorter-interval (binary64): %d failures", failures)
	}
	fmt.Println("shorter-interval (binary64): all biased exponents round-trip")
	return nil
}

func verifyShorterInterval32() error {
	failures := 0
	for e := 1; e <= 0xfe; e++ {
		bits := uint32(e) << 23
		x := math.Float32frombits(bits)
		text := string(dragonbox.AppendFloat32(nil, x, dragonbox.DefaultPolicy()))
		parsed, err := strconv.ParseFloat(text, 32)
		if err != nil || math.Float32bits(float32(parsed)) != bits {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("dragonboxverify shorter-interval (binary32): %d failures", failures)
	}
	fmt.Println("shorter-interval (binary32): all biased exponents round-trip")
	return nil
}
