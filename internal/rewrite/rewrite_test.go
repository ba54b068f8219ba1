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

package rewrite_test

import (
	"errors"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/threadguard/internal/config"
	"fillmore-labs.com/threadguard/internal/match"
	. "fillmore-labs.com/threadguard/internal/rewrite"
	"fillmore-labs.com/threadguard/internal/testsource"
)

func TestFix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "ChainKeepsThreadImport",
			src: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() *thread.Thread {
	thread.New(f2).Start()
	return nil
}

func f2() {}
`,
			want: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() *thread.Thread {
	task.Run(func() { f2() })
	return nil
}

func f2() {}
`,
		},
		{
			name: "DeclSwapsImport",
			src: `package test

import "test/thread"

func f() {
	t := thread.New(func() {
		println("work")
	})
	t.Start()
}
`,
			want: `package test

import "test/task"

func f() {
	task.Run(func() {
		println("work")
	})
}
`,
		},
		{
			name: "SplitRemovesThreadImport",
			src: `package test

import (
	"fmt"
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	var t *thread.Thread // worker
	t = thread.New(func() { fmt.Println() })
	t.Start()
}
`,
			want: `package test

import (
	"fmt"
	"test/task"
)

var _ = task.Run

func f() {
	task.Run(func() { fmt.Println() })
}
`,
		},
		{
			name: "SplitMultiFirst",
			src: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	var t, u *thread.Thread
	t = thread.New(f)
	u = thread.New(f)
	t.Start()
	u.Join()
}
`,
			want: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	var u *thread.Thread
	u = thread.New(f)
	task.Run(func() { f() })
	u.Join()
}
`,
		},
		{
			name: "SplitMultiLast",
			src: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	var u, t *thread.Thread
	u = thread.New(f)
	t = thread.New(f)
	t.Start()
	u.Join()
}
`,
			want: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	var u *thread.Thread
	u = thread.New(f)
	task.Run(func() { f() })
	u.Join()
}
`,
		},
		{
			name: "AddImportSingle",
			src: `package test

import "test/thread"

var keep *thread.Thread

func f() {
	thread.New(f).Start()
}
`,
			want: `package test

import (
	"test/task"
	"test/thread"
)

var keep *thread.Thread

func f() {
	task.Run(func() { f() })
}
`,
		},
		{
			name: "AddImportGroup",
			src: `package test

import (
	"fmt"

	"test/thread"
)

var keep *thread.Thread

func f() {
	thread.New(func() { fmt.Println() }).Start()
}
`,
			want: `package test

import (
	"fmt"

	"test/task"
	"test/thread"
)

var keep *thread.Thread

func f() {
	task.Run(func() { fmt.Println() })
}
`,
		},
		{
			name: "UnmodifiedLocal",
			src: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	g := f
	thread.New(g).Start()
	_ = thread.New
}
`,
			want: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	g := f
	task.Run(func() { g() })
	_ = thread.New
}
`,
		},
		{
			name: "NamedImport",
			src: `package test

import (
	pool "test/task"
	"test/thread"
)

var _ = pool.Run

func f() {
	task := 0
	_ = task
	t := thread.New(f)
	t.Start()
	_ = thread.New
}
`,
			want: `package test

import (
	pool "test/task"
	"test/thread"
)

var _ = pool.Run

func f() {
	task := 0
	_ = task
	pool.Run(func() { f() })
	_ = thread.New
}
`,
		},
		{
			name: "DotImport",
			src: `package test

import (
	. "test/task"
	"test/thread"
)

var _ = Run

func f() {
	thread.New(f).Start()
	_ = thread.New
}
`,
			want: `package test

import (
	. "test/task"
	"test/thread"
)

var _ = Run

func f() {
	Run(func() { f() })
	_ = thread.New
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fix(t, tt.src)
			if err != nil {
				t.Fatalf("Fix() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestFixDeclined(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "ShadowedQualifier",
			src: `package test

import "test/thread"

func f() {
	task := thread.New(f)
	task.Start()
	thread.New(f).Start()
}
`,
			want: ErrShadowed,
		},
		{
			name: "ShadowedCallable",
			src: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	t := thread.New(g)
	{
		g := func() {}
		_ = g
		t.Start()
	}
}

func g() {}
`,
			want: ErrShadowed,
		},
		{
			name: "ReassignedCallable",
			src: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	g := f
	t := thread.New(g)
	g = h
	t.Start()
}

func h() {}
`,
			want: ErrReassigned,
		},
		{
			name: "AddressedCallable",
			src: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

func f() {
	g := f
	thread.New(g).Start()
	reset(&g)
}

func reset(*func()) {}
`,
			want: ErrReassigned,
		},
		{
			name: "PackageVariableCallable",
			src: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

var handler = h

func f() {
	thread.New(handler).Start()
}

func h() {}
`,
			want: ErrReassigned,
		},
		{
			name: "FieldCallable",
			src: `package test

import (
	"test/task"
	"test/thread"
)

var _ = task.Run

type worker struct{ fn func() }

func f(w worker) {
	thread.New(w.fn).Start()
}
`,
			want: ErrReassigned,
		},
		{
			name: "BlankImport",
			src: `package test

import (
	_ "test/task"
	"test/thread"
)

func f() {
	thread.New(f).Start()
}
`,
			want: ErrBlankImport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := fix(t, tt.src); !errors.Is(err, tt.want) {
				t.Errorf("Fix() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReplacement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		qualifier string
		closure   bool
		src       string
		want      string
	}{
		{"Bare", "task", false, "compute", "task.Run(func() { compute() })"},
		{"Method", "task", false, "w.run", "task.Run(func() { w.run() })"},
		{"Closure", "task", true, "func() { compute() }", "task.Run(func() { compute() })"},
		{"Unqualified", "", false, "compute", "Run(func() { compute() })"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Replacement(tt.qualifier, "Run", match.Argument{Closure: tt.closure}, []byte(tt.src))
			if string(got) != tt.want {
				t.Errorf("Replacement() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFixIdempotent(t *testing.T) {
	t.Parallel()

	const src = `package test

import "test/thread"

func f() {
	var t *thread.Thread
	t = thread.New(f)
	t.Start()
}
`

	once, err := fix(t, src)
	if err != nil {
		t.Fatalf("Fix() error = %v", err)
	}

	s := testsource.Load(t, once)
	if matches := detect(s); len(matches) != 0 {
		t.Errorf("Got %d matches after fix, want none", len(matches))
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edits []analysis.TextEdit
		want  error
	}{
		{"Disjoint", []analysis.TextEdit{{Pos: 10, End: 20}, {Pos: 1, End: 5}}, nil},
		{"Adjacent", []analysis.TextEdit{{Pos: 1, End: 5}, {Pos: 5, End: 8}}, nil},
		{"Insertions", []analysis.TextEdit{{Pos: 3, End: 3}, {Pos: 3, End: 3}}, nil},
		{"Overlap", []analysis.TextEdit{{Pos: 1, End: 6}, {Pos: 5, End: 8}}, ErrOverlap},
		{"Nested", []analysis.TextEdit{{Pos: 1, End: 10}, {Pos: 3, End: 3}}, ErrOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Check(tt.edits); !errors.Is(err, tt.want) {
				t.Errorf("Check() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func detect(s testsource.Source) []match.Match {
	d := match.New(s.Info, testsource.Targets(), config.DefaultRules())

	return d.Detect(s.Body.Inspector().Root())
}

// fix applies the fix for the single match in src.
func fix(tb testing.TB, src string) (string, error) {
	tb.Helper()

	s := testsource.Load(tb, src)

	matches := detect(s)
	if len(matches) == 0 {
		tb.Fatal("No match found")
	}

	u := Unit{File: s.File, Handle: s.Handle(), Src: s.Src, Pkg: s.Pkg, Info: s.Info}

	edits, err := Fix(u, matches[0], testsource.Targets().Task)
	if err != nil {
		return "", err
	}

	out, err := Apply(s.Handle(), s.Src, edits)
	if err != nil {
		tb.Fatalf("Apply() error = %v", err)
	}

	return string(out), nil
}
