/*
Package binder provides an ordered key-value container with copy-on-write sharing.

Binders

A binder manages a sequence of (key, value) entries, much like a ring binder
holds a stack of notes with index tabs attached: notes keep the order they
have been filed in, while the tabs let us flip to any note directly, without
leafing through the binder page by page. Accordingly, entries of a binder
preserve insertion order, new entries are placed by position (at the front or
behind an entry already present), and every entry is reachable by key in
logarithmic time through a balanced search tree over the keys.

Binders share their contents. Cloning a binder is a constant-time operation,
no matter how many entries it holds: clones alias the same internal state and
merely register as an additional owner of it. Only when an owner is about to
mutate a state which it shares with others, it detaches, i.e., copies the
state in full and applies the mutation to the private copy. Owners of other
handles, as well as iterators already in flight, never observe the mutation.

From Wikipedia:
Copy-on-write (COW), sometimes referred to as implicit sharing or shadowing,
is a resource-management technique used in computer programming to efficiently
implement a “duplicate” or “copy” operation on modifiable resources. If a
resource is duplicated but not modified, it is not necessary to create a new
resource; the resource can be shared between the copy and the original.
Modifications must still create a copy, hence the technique: the copy
operation is deferred until the first write.

Mutating operations validate their arguments against the current state before
any copying takes place. A failed operation therefore leaves the binder
untouched and never produces a half-detached state.

Handles to a single binder must not be used from multiple goroutines without
synchronization. Distinct handles for the same content, however, may read
concurrently, as the owner count is the only piece of state they touch in
common.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package binder

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// BinderError is an error type for the binder module
type BinderError string

func (e BinderError) Error() string {
	return string(e)
}

// ErrDuplicateKey is flagged whenever an entry is to be inserted with a key
// already present in the binder.
const ErrDuplicateKey = BinderError("key already present in binder")

// ErrKeyNotFound is flagged whenever a key is looked up which no entry of the
// binder carries.
const ErrKeyNotFound = BinderError("no entry with given key")

// ErrEmptyBinder signals an operation which needs at least one entry, called
// on a binder without entries.
const ErrEmptyBinder = BinderError("binder is empty")

// ErrBinderCompleted signals that a binder builder has already completed a binder
// and it's illegal to further add entries.
const ErrBinderCompleted = BinderError("forbidden to add entries; binder has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = BinderError("illegal arguments")

// ErrInvalidState is flagged by consistency checks when sequence, key index
// and entry count of a binder have drifted apart.
const ErrInvalidState = BinderError("binder state out of sync")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
