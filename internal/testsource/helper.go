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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the threadguard analyzer by handling common
// boilerplate code for parsing and type-checking Go sources against stub thread and task packages.
package testsource

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/threadguard/internal/config"
)

const (
	testpkg  = "test"
	filename = "test.go"

	// ThreadPath is the import path of the stub thread package.
	ThreadPath = "test/thread"

	// TaskPath is the import path of the stub task package.
	TaskPath = "test/task"
)

var stubs = map[string]string{
	ThreadPath: `package thread

type Thread struct{ fn func() }

func New(fn func()) *Thread { return &Thread{fn: fn} }

func NewWithName(name string, fn func()) *Thread { return &Thread{fn: fn} }

func (t *Thread) Start() {}

func (t *Thread) Join() {}

func (t *Thread) Restart() *Thread { return t }
`,
	TaskPath: `package task

type Task struct{}

func Run(fn func()) *Task { return &Task{} }
`,
}

// Targets returns the configuration for the stub packages.
func Targets() config.Targets {
	return config.Targets{
		Threads: []config.Name{{PkgPath: ThreadPath, Name: "Thread"}},
		Start:   config.DefaultStart,
		Task:    config.Name{PkgPath: TaskPath, Name: "Run"},
	}
}

// Source is a parsed and type-checked source file.
type Source struct {
	Fset *token.FileSet
	File *ast.File
	Src  []byte
	Pkg  *types.Package
	Info *types.Info

	// Body is a cursor positioned at the last function's body.
	Body inspector.Cursor
}

// Handle returns the [token.File] of the source.
func (s Source) Handle() *token.File {
	return s.Fset.File(s.File.FileStart)
}

// Load parses and type-checks a complete source file of package `test`.
//
// The packages "test/thread" and "test/task" resolve to in-memory stubs.
func Load(tb testing.TB, src string) Source {
	tb.Helper()

	s, errs := load(tb, src)
	if len(errs) > 0 {
		tb.Fatalf("failed to type Check source: %v", errs[0])
	}

	return s
}

// Fragment is like [Load], but wraps the statements in a function body.
//
// The wrapping file imports the stub packages and declares
//
//	func compute()
//	func yield() bool
func Fragment(tb testing.TB, stmts string) Source {
	tb.Helper()

	return Load(tb, wrapSource(stmts))
}

// Partial is like [Fragment], but tolerates type errors and returns them.
// Type information is recorded for everything that could be resolved.
func Partial(tb testing.TB, stmts string) (Source, []error) {
	tb.Helper()

	return load(tb, wrapSource(stmts))
}

func load(tb testing.TB, src string) (Source, []error) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	pkg, info, errs := check(fset, f)

	body, ok := lastFuncBody(f)
	if !ok {
		tb.Fatal("Can't find function")
	}

	return Source{Fset: fset, File: f, Src: []byte(src), Pkg: pkg, Info: info, Body: body}, errs
}

// check type-checks the file, collecting all errors.
func check(fset *token.FileSet, f *ast.File) (*types.Package, *types.Info, []error) {
	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	var errs []error

	conf := types.Config{
		Importer: &stubImporter{fset: fset, fallback: importer.Default()},
		Error:    func(err error) { errs = append(errs, err) },
	}

	pkg, _ := conf.Check(testpkg, fset, []*ast.File{f}, info) // errors are collected

	return pkg, info, errs
}

// stubImporter type-checks the stub packages from source.
type stubImporter struct {
	fset     *token.FileSet
	fallback types.Importer
	pkgs     map[string]*types.Package
}

func (i *stubImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := i.pkgs[path]; ok {
		return pkg, nil
	}

	src, ok := stubs[path]
	if !ok {
		return i.fallback.Import(path)
	}

	f, err := parser.ParseFile(i.fset, path+"/stub.go", src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	conf := types.Config{Importer: i}

	pkg, err := conf.Check(path, i.fset, []*ast.File{f}, nil)
	if err != nil {
		return nil, err
	}

	if i.pkgs == nil {
		i.pkgs = make(map[string]*types.Package)
	}
	i.pkgs[path] = pkg

	return pkg, nil
}

func wrapSource(stmts string) string {
	const (
		header = "package " + testpkg + `

import (
	"test/task"
	"test/thread"
)

var (
	_ = task.Run
	_ = thread.New
)

func compute() {}

func yield() bool { return false }

func _() {
`
		suffix = "\n}\n"
	)

	var src bytes.Buffer
	src.Grow(len(header) + len(stmts) + len(suffix))

	src.WriteString(header) // ignore error
	src.WriteString(stmts)  // ignore error
	src.WriteString(suffix) // ignore error

	return src.String()
}

func lastFuncBody(f *ast.File) (body inspector.Cursor, ok bool) {
	root := inspector.New([]*ast.File{f}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		if c.Node().(*ast.FuncDecl).Body != nil {
			body, ok = c.ChildAt(edge.FuncDecl_Body, -1), true
		}
	}

	return body, ok
}
