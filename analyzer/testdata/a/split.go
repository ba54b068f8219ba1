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

func splitSimple() {
	var t *thread.Thread
	t = thread.New(compute)
	t.Start() // want `'t' should be replaced with task.Run \(tg:split\)`
}

func splitLater() {
	var t *thread.Thread
	prepare()
	t = thread.New(func() {
		prepare()
	})
	prepare()
	t.Start() // want `tg:split`
}

func splitMulti() {
	var t, u *thread.Thread
	t = thread.New(compute)
	u = thread.New(compute)
	t.Start() // want `tg:split`
	u.Start()
	u.Join()
}

func splitMultiLast() {
	var u, t *thread.Thread
	u = thread.New(compute)
	t = thread.New(compute)
	u.Join()
	t.Start() // want `tg:split`
}

func splitGrouped() {
	var (
		t *thread.Thread
		n int
	)
	n = 2
	t = thread.New(compute)
	t.Start() // want `tg:split`
	_ = n
}

func splitPooled() *task.Task {
	return task.Run(compute)
}
