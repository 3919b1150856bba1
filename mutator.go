//  Copyright 2017-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package hg64

// Adder represents the write-only subset of Histogram's API: code that
// only ever records samples, and should never be handed a Histogram it
// might query or merge, can depend on this interface instead of the
// concrete type.
type Adder interface {
	Add(value uint64, count uint64)
	Inc(value uint64)
}

var _ Adder = (*Histogram)(nil)
