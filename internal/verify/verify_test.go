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

package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogApproximatorsFullRangeIsExact(t *testing.T) {
	mismatches := LogApproximators()
	assert.Empty(t, mismatches)
}

func TestCacheBinary32ValidityFullRange(t *testing.T) {
	mismatches := CacheBinary32()
	assert.Empty(t, mismatches)
}

func TestCacheBinary64ValidityFullRange(t *testing.T) {
	mismatches := CacheBinary64(false)
	assert.Empty(t, mismatches)
}

func TestCacheBinary64CompactValidityFullRange(t *testing.T) {
	mismatches := CacheBinary64(true)
	assert.Empty(t, mismatches)
}

func TestCoprimeCheck(t *testing.T) {
	// 5^o and 2^alpha share no prime factors for any o, alpha >= 0.
	assert.True(t, CoprimeCheck(3, 5))
	assert.True(t, CoprimeCheck(0, 0))
	assert.True(t, CoprimeCheck(26, 60))
}
