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

// Package task schedules functions on a managed pool.
//
// [Run] is the replacement threadguard suggests for threads that are only started:
//
//	task.Run(func() { compute() })
//
// A panic in a scheduled function is recovered and reported by [Task.Wait] instead of
// crashing the program. Fire-and-forget callers simply never call Wait.
package task

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrPanicked is returned by [Task.Wait] when the scheduled function panicked.
var ErrPanicked = errors.New("task panicked")

// Task is a handle to a scheduled function.
type Task struct {
	done chan struct{}
	err  error
}

// Done returns a channel that is closed when the function returned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the function returned and reports a recovered panic.
func (t *Task) Wait() error {
	<-t.done

	return t.err
}

// Scheduler runs functions with bounded concurrency.
// The zero value is ready to use and does not bound concurrency.
type Scheduler struct {
	sem *semaphore.Weighted // nil when unbounded
	wg  sync.WaitGroup
}

// NewScheduler creates a [Scheduler] running at most limit functions concurrently.
// A non-positive limit defaults to [runtime.GOMAXPROCS].
func NewScheduler(limit int) *Scheduler {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	return &Scheduler{sem: semaphore.NewWeighted(int64(limit))}
}

// Run schedules fn and returns immediately.
func (s *Scheduler) Run(fn func()) *Task {
	t := &Task{done: make(chan struct{})}

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		defer close(t.done)

		if s.sem != nil {
			// Acquire only fails on a canceled context.
			_ = s.sem.Acquire(context.Background(), 1)
			defer s.sem.Release(1)
		}

		t.err = call(fn)
	}()

	return t
}

// Wait blocks until all functions scheduled so far returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func call(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()

	fn()

	return nil
}

var defaultScheduler Scheduler

// Run schedules fn on the default [Scheduler].
//
// The default scheduler does not bound concurrency, so long-running functions
// such as blocking loops never delay other tasks. Use [NewScheduler] for a bounded pool.
func Run(fn func()) *Task {
	return defaultScheduler.Run(fn)
}

// Wait blocks until all functions scheduled on the default [Scheduler] so far returned.
func Wait() {
	defaultScheduler.Wait()
}
