//  Copyright (c) 2015 Couchbase, Inc.
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the
//  License. You may obtain a copy of the License at
//    http://www.apache.org/licenses/LICENSE-2.0
//  Unless required by applicable law or agreed to in writing,
//  software distributed under the License is distributed on an "AS
//  IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
//  express or implied. See the License for the specific language
//  governing permissions and limitations under the License.

package hg64

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLeadingZeros64(t *testing.T) {
	assert.Equal(t, 64, countLeadingZeros64(0))
	assert.Equal(t, 63, countLeadingZeros64(1))
	assert.Equal(t, 0, countLeadingZeros64(1<<63))
	assert.Equal(t, 32, countLeadingZeros64(1<<31))
}

func TestCountTrailingZeros64(t *testing.T) {
	assert.Equal(t, 64, countTrailingZeros64(0))
	assert.Equal(t, 0, countTrailingZeros64(1))
	assert.Equal(t, 63, countTrailingZeros64(1<<63))
	assert.Equal(t, 4, countTrailingZeros64(0b10000))
}

func TestPopcount64(t *testing.T) {
	assert.Equal(t, 0, popcount64(0))
	assert.Equal(t, 64, popcount64(^uint64(0)))
	assert.Equal(t, 1, popcount64(1<<40))
	assert.Equal(t, 3, popcount64(0b1011))
}
