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

	"github.com/ajroetker/dragonbox/internal/verify"
	"github.com/spf13/cobra"
)

func newVerifyCacheCmd() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Check every cache entry against the P5 big-integer bound",
		RunE: func(cmd *cobra.Command, args []string) error {
			mismatches := verify.CacheBinary32()
			mismatches = append(mismatches, verify.CacheBinary64(compact)...)

			for _, m := range mismatches {
				fmt.Println(m.String())
			}
			if len(mismatches) > 0 {
				return fmt.Errorf("dragonboxverify cache: %d mismatches", len(mismatches))
			}
			fmt.Println("cache: all entries within bound")
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "check the compact binary64 reconstruction instead of the full table")
	return cmd
}
