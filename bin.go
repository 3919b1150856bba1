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

import "sync/atomic"

// bin is a one-shot publication cell: it holds either a nil pointer or
// a counter array of exactly mantissas entries, set at most once for
// the histogram's lifetime.
//
// ptr is only ever written by a successful CompareAndSwap from nil; a
// losing writer discards its own array and reads back the winner's
// pointer. Go's garbage collector makes the "free the loser's array"
// step of spec.md §4.2 implicit: the loser's slice simply becomes
// unreachable.
type bin struct {
	ptr atomic.Pointer[[]uint64]
}

// get performs an acquire-ordered load of the bin's counter array,
// returning nil if the bin has never been written to.
func (b *bin) get() []uint64 {
	p := b.ptr.Load()
	if p == nil {
		return nil
	}
	return *p
}

// ensure returns the bin's counter array, installing a fresh
// mantissas-length array on first use. Concurrent callers racing to
// install see exactly one winner; every caller, winner or loser,
// returns the same slice.
func (b *bin) ensure(mantissas uint64) []uint64 {
	if p := b.ptr.Load(); p != nil {
		return *p
	}

	fresh := make([]uint64, mantissas)
	if b.ptr.CompareAndSwap(nil, &fresh) {
		return fresh
	}

	// Lost the race: some other writer already published. Discard
	// fresh (the garbage collector reclaims it) and use the winner's
	// array.
	return *b.ptr.Load()
}
