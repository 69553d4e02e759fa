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
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"sync/atomic"

	dragonbox "github.com/ajroetker/dragonbox"
	"github.com/ajroetker/dragonbox/internal/kernel"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var binaryToDecimalPolicies = map[string]kernel.BinaryToDecimalRounding{
	"do-not-care":    kernel.DoNotCare,
	"to-even":        kernel.ToEven,
	"to-odd":         kernel.ToOdd,
	"away-from-zero": kernel.AwayFromZero,
	"toward-zero":    kernel.TowardZero,
}

func newVerifyRandomCmd() *cobra.Command {
	var count int
	var policyName string

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Sample uniformly random binary64 floats and check round-trip agreement",
		RunE: func(cmd *cobra.Command, args []string) error {
			rounding, ok := binaryToDecimalPolicies[policyName]
			if !ok {
				return fmt.Errorf("dragonboxverify random: unknown --policy %q", policyName)
			}

			policy := dragonbox.DefaultPolicy()
			policy.BinaryToDecimal = rounding

			samples := make([]float64, count)
			for i := range samples {
				samples[i] = math.Float64frombits(rand.Uint64())
			}

			var failures atomic.Int64
			g, _ := errgroup.WithContext(context.Background())
			for _, chunk := range lo.Chunk(samples, 4096) {
				g.Go(func() error {
					for _, x := range chunk {
						if math.IsNaN(x) || math.IsInf(x, 0) {
							continue
						}
						text := string(dragonbox.AppendFloat(nil, x, policy))
						parsed, err := strconv.ParseFloat(text, 64)
						if err != nil || math.Float64bits(parsed) != math.Float64bits(x) {
							failures.Add(1)
						}
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if n := failures.Load(); n > 0 {
				return fmt.Errorf("dragonboxverify random: %d/%d samples failed round-trip", n, count)
			}
			fmt.Printf("random: %d samples round-tripped under policy %s\n", count, policyName)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1_000_000, "number of uniformly random binary64 samples")
	cmd.Flags().StringVar(&policyName, "policy", "to-even", "binary-to-decimal rounding: do-not-care, to-even, to-odd, away-from-zero, toward-zero")
	return cmd
}
