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

// Package thread provides a raw, unmanaged thread of execution.
//
// A [Thread] runs its function on a dedicated operating system thread: the goroutine is wired
// to its OS thread and never released, so the OS thread terminates with it. This is rarely
// what a program needs; prefer [fillmore-labs.com/threadguard/task.Run], which schedules
// work on a bounded, managed pool. The threadguard analyzer reports threads that are only
// started and suggests the replacement.
package thread

import (
	"errors"
	"runtime"
	"sync"
)

var (
	// ErrAlreadyStarted is the panic value when a [Thread] is started twice.
	ErrAlreadyStarted = errors.New("thread already started")

	// ErrNotStarted is the panic value when joining a [Thread] that was never started.
	ErrNotStarted = errors.New("thread not started")
)

// Thread is an unmanaged thread of execution.
type Thread struct {
	fn func()

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

// New creates a new [Thread] executing fn. The thread is not running until [Thread.Start] is called.
func New(fn func()) *Thread {
	return &Thread{fn: fn, done: make(chan struct{})}
}

// Start begins execution of the thread. It panics with [ErrAlreadyStarted] when called twice.
func (t *Thread) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		panic(ErrAlreadyStarted)
	}

	t.started = true

	go t.run()
}

func (t *Thread) run() {
	// Never unlocked: the OS thread exits together with this goroutine.
	runtime.LockOSThread()
	defer close(t.done)

	t.fn()
}

// Join blocks until the thread function returns. It panics with [ErrNotStarted] when the
// thread was never started.
func (t *Thread) Join() {
	if !t.Started() {
		panic(ErrNotStarted)
	}

	<-t.done
}

// Started reports whether [Thread.Start] has been called.
func (t *Thread) Started() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.started
}
