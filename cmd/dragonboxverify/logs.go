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

func newVerifyLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Check every log approximator against an arbitrary-precision floor (P6)",
		RunE: func(cmd *cobra.Command, args []string) error {
			mismatches := verify.LogApproximators()
			for _, m := range mismatches {
				fmt.Printf("%s(%d): got %d, want %d\n", m.Function, m.Input, m.Got, m.Want)
			}
			if len(mismatches) > 0 {
				return fmt.Errorf("dragonboxverify logs: %d mismatches", len(mismatches))
			}
			fmt.Println("logs: all approximators exact over their documented range")
			return nil
		},
	}
}
