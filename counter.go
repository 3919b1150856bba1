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

// readCounter returns a relaxed read of the counter for key k, or zero
// if k's bin has never been written to. It is the read-only path
// (spec.md §4.2): a missing bin is treated as count zero, never
// installed.
func (h *Histogram) readCounter(k uint64) uint64 {
	b := &h.top[h.cfg.binForKey(k)]
	arr := b.get()
	if arr == nil {
		return 0
	}
	return atomic.LoadUint64(&arr[h.cfg.slotForKey(k)])
}

// addCounter ensures k's bin exists and fetch-adds amount into its
// counter, relaxed (spec.md §4.3).
func (h *Histogram) addCounter(k uint64, amount uint64) {
	b := &h.top[h.cfg.binForKey(k)]
	arr := b.ensure(h.cfg.mantissas)
	atomic.AddUint64(&arr[h.cfg.slotForKey(k)], amount)
}
