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
	"bytes"
	"fmt"
	"sync/atomic"
)

// Snapshot is an immutable, point-in-time copy of a Histogram's
// counters, augmented with per-bin totals and the overall population
// (spec.md §4.5). Once built, a Snapshot never changes; the query
// engine in query.go operates only on Snapshots and is therefore
// race-free (spec.md §5).
type Snapshot struct {
	cfg        config
	binmap     uint64       // bit i set iff bin i was present at capture time
	binStarts  [bins]int    // offset into counters for each present bin
	binTotals  [bins]uint64 // sum of counters for each present bin
	counters   []uint64     // contiguous copy of every present bin's counters
	population uint64       // sum of every binTotals entry
}

// Snapshot builds an immutable copy of h's current state.
//
// The bin-presence bitmap is captured first, in one pass over the 64
// top-level pointers; only bins observed present at that moment are
// copied. Bins installed by a concurrent writer after the bitmap was
// captured are excluded entirely, rather than risk reading a
// partially-initialized bin (spec.md §4.5, §9). Within each included
// bin, every counter is read with a relaxed atomic load; concurrent
// increments that commit during the copy are reflected in some
// counters and not others, so the resulting per-bin total is
// self-consistent (it equals the sum of the counters actually copied)
// even though the population across bins may undercount writes still
// in flight.
func (h *Histogram) Snapshot() *Snapshot {
	cfg := h.cfg

	var binmap uint64
	var arrs [bins][]uint64
	for i := 0; i < bins; i++ {
		if a := h.top[i].get(); a != nil {
			binmap |= uint64(1) << uint(i)
			arrs[i] = a
		}
	}

	total := popcount64(binmap) * int(cfg.mantissas)
	counters := make([]uint64, total)

	snap := &Snapshot{cfg: cfg, binmap: binmap, counters: counters}

	offset := 0
	remaining := binmap
	for remaining != 0 {
		i := countTrailingZeros64(remaining)
		remaining &^= uint64(1) << uint(i)

		dst := counters[offset : offset+int(cfg.mantissas)]
		var binTotal uint64
		for slot := range dst {
			v := atomic.LoadUint64(&arrs[i][slot])
			dst[slot] = v
			binTotal += v
		}

		snap.binStarts[i] = offset
		snap.binTotals[i] = binTotal
		snap.population += binTotal

		offset += int(cfg.mantissas)
	}

	return snap
}

// Sigbits returns the precision of the Histogram this Snapshot was
// taken from.
func (s *Snapshot) Sigbits() int {
	return s.cfg.sigbits
}

// Population returns the total number of samples represented by this
// Snapshot.
func (s *Snapshot) Population() uint64 {
	return s.population
}

// present reports whether bin bi had been allocated at capture time.
func (s *Snapshot) present(bi int) bool {
	return s.binmap&(uint64(1)<<uint(bi)) != 0
}

// binTotal returns bi's total count, or zero if the bin was absent.
func (s *Snapshot) binTotal(bi int) uint64 {
	if !s.present(bi) {
		return 0
	}
	return s.binTotals[bi]
}

// counterAt returns the count for a single slot within bin bi, or zero
// if the bin was absent.
func (s *Snapshot) counterAt(bi, slot int) uint64 {
	if !s.present(bi) {
		return 0
	}
	return s.counters[s.binStarts[bi]+slot]
}

// String renders an ASCII bar-graph of this Snapshot's present bins,
// in the spirit of the teacher's EmitGraph: one line per non-empty
// bin, its value range, share of the population, and a proportional
// bar. Intended for debugging and tests, not for machine parsing — the
// CLI-facing CSV dump spec.md places out of scope is a different,
// external concern.
func (s *Snapshot) String() string {
	return s.Fprint(nil, nil).String()
}

var graphBar = []byte("##############################")

// Fprint writes the bar-graph described by String into out, allocating
// out if it is nil, prefixing every bin line (not the header line)
// with prefix if non-nil, and returns the buffer written to.
func (s *Snapshot) Fprint(prefix []byte, out *bytes.Buffer) *bytes.Buffer {
	if out == nil {
		out = bytes.NewBuffer(make([]byte, 0, 80*bins))
	}

	barLen := float64(len(graphBar))

	var maxCount uint64
	for bi := 0; bi < bins; bi++ {
		if t := s.binTotal(bi); t > maxCount {
			maxCount = t
		}
	}

	fmt.Fprintf(out, "hg64(sigbits=%d) (%v Total)\n", s.cfg.sigbits, s.population)

	if s.population == 0 {
		return out
	}

	remaining := s.binmap
	for remaining != 0 {
		bi := countTrailingZeros64(remaining)
		remaining &^= uint64(1) << uint(bi)

		binCount := s.binTotals[bi]
		if binCount == 0 {
			continue
		}

		lo := bi * int(s.cfg.mantissas)
		hi := lo + int(s.cfg.mantissas) - 1
		min := s.cfg.keyToMin(uint64(lo))
		max := s.cfg.keyToMax(uint64(hi))

		if prefix != nil {
			out.Write(prefix)
		}

		fmt.Fprintf(out, "[%v - %v] %10v %7.2f%%", min, max, binCount,
			100.0*(float64(binCount)/float64(s.population)))

		out.Write([]byte(" "))
		barWant := int(barLen * (float64(binCount) / float64(maxCount)))
		out.Write(graphBar[0:barWant])
		out.Write([]byte("\n"))
	}

	return out
}
