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

// Package hg64 provides a compact, high-throughput quantile sketch over
// unsigned 64-bit values: a histogram whose buckets sit on a logarithmic
// grid of configurable precision, with lock-free concurrent updates and
// offline rank/quantile queries over a point-in-time snapshot.
//
// A Histogram is created with a precision in significant bits
// (1 through 15); finer precision costs more memory per bin but bounds
// the relative error of any recovered value more tightly. Writers call
// Add or Inc from any number of goroutines without external
// synchronization. Get, Size and MeanVariance read the live Histogram
// directly and tolerate concurrent writers without locking, at the
// cost of not reflecting a single consistent instant. Readers that
// need rank or quantile queries, which require walking bins in a fixed
// order, take a Snapshot first and query that instead.
package hg64
