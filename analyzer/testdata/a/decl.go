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

func declShort() {
	t := thread.New(compute)
	t.Start() // want `'t' should be replaced with task.Run \(tg:decl\)`
}

func declVar() {
	var t = thread.New(func() {
		compute()
	})
	prepare()
	t.Start() // want `'t' should be replaced with task.Run \(tg:decl\)`
}

func declTyped() {
	prepare()
	// worker thread
	var t *thread.Thread = thread.New(compute) // constructed here
	prepare()
	t.Start() // want `tg:decl`
}

func declGrouped() {
	var (
		n = 1
		t = thread.New(compute)
	)
	t.Start() // want `tg:decl`
	_ = n
}

func declNested(ok bool) {
	if ok {
		t := thread.New(compute)
		t.Start() // want `tg:decl`
	}
}

func declInClosure() {
	fn := func() {
		t := thread.New(compute)
		t.Start() // want `tg:decl`
	}
	fn()
}

func declShadowed() {
	t := thread.New(compute)
	{
		compute := prepare
		compute()
		t.Start() // want `tg:decl`
	}
}

func declPooled() *task.Task {
	return task.Run(prepare)
}

func declJoined() {
	t := thread.New(compute)
	t.Start()
	t.Join()
}

func declReassigned() {
	f := compute
	t := thread.New(f)
	f = prepare
	t.Start() // want `tg:decl`
}

var declPackageLevel = func() {
	t := thread.New(compute)
	t.Start() // want `tg:decl`
}
