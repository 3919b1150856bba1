//  Copyright 2017-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package hg64

import (
	"io"
	"strings"
)

// Registry is a set of Histograms identified by name, for services
// that track one distribution per metric (request latency, payload
// size, ...) and want to summarize or merge them together as a unit.
type Registry map[string]*Histogram

// String renders every Histogram in the Registry as a bar-graph
// Snapshot dump, one per name, in the style of Snapshot.String.
func (r Registry) String() string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name+":\n"+r[name].Snapshot().String())
	}
	return strings.Join(out, "\n")
}

// Fprint writes String's output to w.
func (r Registry) Fprint(w io.Writer) (int, error) {
	return w.Write([]byte(r.String()))
}

// Merge adds every sample recorded in every Histogram of src into the
// matching entry of r, creating a fresh entry (at src's precision) for
// any name r doesn't already hold. Unlike the teacher's AddAll, this
// never fails on a precision mismatch: Histogram.Merge (spec.md §4.4)
// is defined for any pair of precisions, so two Registries tracking
// the same name at different sigbits still merge correctly.
func (r Registry) Merge(src Registry) error {
	for name, h := range src {
		if r[name] != nil {
			continue
		}

		fresh, err := New(h.Sigbits())
		if err != nil {
			return err
		}
		r[name] = fresh
	}

	for name, h := range src {
		r[name].Merge(h)
	}

	return nil
}
