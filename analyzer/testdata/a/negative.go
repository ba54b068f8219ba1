// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package a

import "test/thread"

var global = thread.New(compute)

func startGlobal() {
	global.Start()
}

type holder struct{ t *thread.Thread }

func (h *holder) start() {
	h.t = thread.New(compute)
	h.t.Start()
}

type starter interface{ Start() }

func viaInterface() {
	var s starter = thread.New(compute)
	s.Start()
}

func joinedThread() {
	t := thread.New(compute)
	t.Start()
	t.Join()
}

func startedTwice() {
	t := thread.New(compute)
	t.Start()
	t.Start()
}

func passedOn() *thread.Thread {
	t := thread.New(compute)
	t.Start()

	return t
}

func captured() {
	t := thread.New(compute)
	t.Start()

	defer func() { t.Join() }()
}

func conditional(ok bool) {
	var t *thread.Thread
	if ok {
		t = thread.New(compute)
	}
	t.Start()
}

func reassigned() {
	t := thread.New(compute)
	t = thread.New(prepare)
	t.Start()
}

func startedInLoop(n int) {
	t := thread.New(compute)
	for range n {
		t.Start()
	}
}

func deferredStart() {
	t := thread.New(compute)
	defer t.Start()
}

func startedBeforeAssignment() {
	var t *thread.Thread
	t.Start()
	t = thread.New(compute)
}

func twoNames() {
	var a, t = 1, thread.New(compute)
	t.Start()
	_ = a
}

func parameter(t *thread.Thread) {
	t.Start()
}

func named() {
	t := thread.NewWithName("worker", compute)
	t.Start()
}

func methodValue() {
	t := thread.New(compute)
	start := t.Start
	start()
}
