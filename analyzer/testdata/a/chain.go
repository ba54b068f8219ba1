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

import (
	"test/task"
	"test/thread"
)

func compute() {}

func prepare() {}

type worker struct{}

func (worker) run() {}

func pooled() *task.Task {
	return task.Run(compute)
}

func chainBare() {
	thread.New(compute).Start() // want `'thread.New\(compute\).Start\(\)' should be replaced with task.Run \(tg:chain\)`
}

func chainClosure(n int) {
	thread.New(func() { // want `'thread.New\(func\(\) \{\.\.\.\}\).Start\(\)' should be replaced with task.Run \(tg:chain\)`
		_ = n * 2
	}).Start()
}

func chainMethod(w worker) {
	thread.New(w.run).Start() // want `'thread.New\(w.run\).Start\(\)' should be replaced with task.Run \(tg:chain\)`
}

func chainDeferred() {
	defer thread.New(compute).Start() // want `tg:chain`
}

func chainCase(n int) {
	switch n {
	case 1:
		thread.New(compute).Start() // want `tg:chain`
	}
}

func chainComputed() {
	thread.New(makeFunc()).Start()
}

func chainNamed() {
	thread.NewWithName("worker", compute).Start()
}

func makeFunc() func() { return compute }

func chainKept() *thread.Thread {
	return thread.New(compute)
}

var chainPackageLevel = func() {
	thread.New(compute).Start() // want `tg:chain`
}
