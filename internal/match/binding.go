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

package match

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/threadguard/internal/astutil"
	"fillmore-labs.com/threadguard/internal/usage"
)

// binding matches a local variable that is declared, assigned a construction once and started once:
//
//	t := thread.New(f)
//	t.Start()
//
//	var t *thread.Thread
//	t = thread.New(f)
//	t.Start()
func (d Detector) binding(start inspector.Cursor, v *types.Var) (Match, bool) {
	node, ok := d.scopes.Declaring(v)
	if !ok {
		return Match{}, false
	}

	root, ok := scopeRoot(start, node)
	if !ok || v.Pos() < root.Node().Pos() || root.Node().End() <= v.Pos() { // parameters
		return Match{}, false
	}

	refs := d.refs.References(root, v)

	var decl, assign, started *usage.Reference

	for i := range refs {
		ref := &refs[i]
		if !ref.Kind.Acceptable() {
			return Match{}, false
		}

		var slot **usage.Reference

		switch ref.Kind {
		case usage.KindDeclaration:
			slot = &decl

		case usage.KindAssignment:
			slot = &assign

		case usage.KindStart:
			slot = &started

		default:
			return Match{}, false
		}

		if *slot != nil {
			return Match{}, false
		}

		*slot = ref
	}

	if decl == nil || started == nil || started.Stmt != start.Parent() {
		return Match{}, false
	}

	m := Match{Start: start, Stmt: started.Stmt, Binding: &Binding{Var: v, Decl: *decl}, References: refs}

	construction := decl

	switch {
	case decl.Value != nil && assign == nil:
		m.Shape = Declared

	case decl.Value == nil && decl.Spec != nil && assign != nil:
		m.Shape, m.Binding.Assign = Split, *assign
		construction = assign

	default:
		return Match{}, false
	}

	call, ok := ast.Unparen(construction.Value).(*ast.CallExpr)
	if !ok {
		return Match{}, false
	}

	if m.Site, ok = d.resolver.Construction(call); !ok {
		return Match{}, false
	}

	if !ordered(decl.Stmt, construction.Stmt, started.Stmt) {
		return Match{}, false
	}

	if !reaches(construction.Stmt, started.Stmt) {
		return Match{}, false
	}

	return m, true
}

// scopeRoot returns the ancestor of c corresponding to the scope node, which for
// top-level function variables is the function body.
func scopeRoot(c inspector.Cursor, node ast.Node) (inspector.Cursor, bool) {
	prev := c
	for p := c.Parent(); p.Node() != nil; prev, p = p, p.Parent() {
		switch n := p.Node().(type) {
		case *ast.FuncDecl:
			if n.Type == node {
				return prev, prev.Node() == n.Body
			}

		case *ast.FuncLit:
			if n.Type == node {
				return prev, prev.Node() == n.Body
			}
		}

		if p.Node() == node {
			return p, true
		}
	}

	return inspector.Cursor{}, false
}

// ordered reports whether the statements follow each other in source order,
// where the declaration may also be the construction.
func ordered(decl, construction, start inspector.Cursor) bool {
	return decl.Node().Pos() <= construction.Node().Pos() && construction.Node().End() <= start.Node().Pos()
}

// reaches reports whether the start statement is executed exactly once after the
// construction statement: it is nested in the construction's statement list without
// an intervening loop.
func reaches(construction, start inspector.Cursor) bool {
	list := construction.Parent()
	if !astutil.Encloses(list.Node(), start.Node()) {
		return false
	}

	for p := start.Parent(); p.Node() != list.Node(); p = p.Parent() {
		switch p.Node().(type) {
		case *ast.ForStmt, *ast.RangeStmt, *ast.FuncLit:
			return false

		case nil:
			return false
		}
	}

	return true
}
