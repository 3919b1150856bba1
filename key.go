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

// bins is the fixed number of top-level slots: one per binary exponent
// class of a 64-bit value.
const bins = 64

// config holds the quantities derived from sigbits once, at
// construction time, so that every hot-path operation is pure integer
// arithmetic over already-computed fields.
type config struct {
	sigbits   int
	mantissas uint64 // 1 << sigbits; counters per bin
	denormals int    // sigbits - 1; exponents collapsed into bin 0
	exponents int    // bins - denormals; number of active top-level bins
	keys      uint64 // exponents * mantissas; total distinct buckets
}

// newConfig validates sigbits and returns the derived quantities, or
// ErrBadConfig if sigbits is outside [1, 15].
func newConfig(sigbits int) (config, error) {
	if sigbits < 1 || sigbits > 15 {
		return config{}, ErrBadConfig
	}

	mantissas := uint64(1) << uint(sigbits)
	denormals := sigbits - 1
	exponents := bins - denormals

	return config{
		sigbits:   sigbits,
		mantissas: mantissas,
		denormals: denormals,
		exponents: exponents,
		keys:      uint64(exponents) * mantissas,
	}, nil
}

// binForKey returns the top-level slot a key belongs to.
func (c config) binForKey(k uint64) int {
	return int(k / c.mantissas)
}

// slotForKey returns the counter index within its bin's array.
func (c config) slotForKey(k uint64) int {
	return int(k % c.mantissas)
}

// valueToKey maps v to its dense key in [0, keys), per spec.md §3.
//
// binned forces every denormal value (v < mantissas) into the same
// exponent class as mantissas itself, so the leading-zero count below
// never has to special-case the bottom of the range.
func (c config) valueToKey(v uint64) uint64 {
	binned := v | c.mantissas
	clz := countLeadingZeros64(binned)
	exponent := 63 - c.sigbits - clz
	mantissa := (v >> exponent) & (2*c.mantissas - 1)
	return uint64(exponent<<c.sigbits) + mantissa
}

// keyToMin returns the smallest value mapping to key k.
func (c config) keyToMin(k uint64) uint64 {
	if k < c.mantissas {
		return k
	}

	exponent := (k / c.mantissas) - 1
	mantissa := (k % c.mantissas) + c.mantissas
	return mantissa << exponent
}

// keyToMax returns the largest value mapping to key k.
//
// The range is UINT64_MAX/4 shifted right by 63 minus k's bin, rather
// than derived from keyToMin's exponent (bin - 1), which would
// underflow in bin 0. The shift stays within [sigbits-1, 63] for every
// key, so it never reaches 64, and bins 0 and 1 get a range of zero;
// see spec.md §4.1.
func (c config) keyToMax(k uint64) uint64 {
	shift := 63 - (k / c.mantissas)
	rng := uint64(math.MaxUint64/4) >> shift
	return c.keyToMin(k) + rng
}
