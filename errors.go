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

import "errors"

// ErrBadConfig is returned by New when sigbits is outside [1, 15].
var ErrBadConfig = errors.New("hg64: sigbits out of range [1, 15]")

// errKeyInvariant builds the error Validate returns when it finds a
// violation of spec.md §3's key-arithmetic invariants.
func errKeyInvariant(what string) error {
	return errors.New("hg64: validate: " + what)
}
