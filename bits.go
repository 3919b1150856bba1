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

import "math/bits"

// countLeadingZeros64 returns the number of leading zero bits in x,
// with x == 0 returning 64. It compiles to a single CPU instruction on
// every architecture the Go compiler targets (LZCNT/BSR/CLZ), which is
// the "intrinsic" value_to_key's branchless layout (spec.md §4.1)
// assumes.
func countLeadingZeros64(x uint64) int {
	return bits.LeadingZeros64(x)
}

// countTrailingZeros64 returns the number of trailing zero bits in x,
// with x == 0 returning 64. Used to walk a snapshot's bin-presence
// bitmap from one set bit to the next without scanning every slot.
func countTrailingZeros64(x uint64) int {
	return bits.TrailingZeros64(x)
}

// popcount64 returns the number of set bits in x. Used to size a
// snapshot's flat counter buffer from its bin-presence bitmap.
func popcount64(x uint64) int {
	return bits.OnesCount64(x)
}
