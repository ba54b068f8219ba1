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

package usage

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/threadguard/internal/astutil"
)

// Collector enumerates and classifies the references to a variable.
type Collector struct {
	// Info provides the identifier resolution.
	Info *types.Info

	// IsStart reports whether a call is a start invocation.
	IsStart func(call *ast.CallExpr) bool
}

// References returns all references to v below root, ordered by source position.
//
// References are bound to v by object identity, so a shadowing declaration of the same
// name in a nested scope is not mistaken for v.
func (c Collector) References(root inspector.Cursor, v *types.Var) []Reference {
	var refs []Reference

	for i := range root.Preorder((*ast.Ident)(nil)) {
		id := i.Node().(*ast.Ident)
		if c.Info.Uses[id] != v && c.Info.Defs[id] != v {
			continue
		}

		refs = append(refs, c.classify(i, root, id))
	}

	return refs
}

// classify determines the [Kind] of a reference.
func (c Collector) classify(i, root inspector.Cursor, id *ast.Ident) Reference {
	ref := Reference{Ident: id, Kind: KindUse}

	// Captured by a closure, which runs at an unknown time.
	if astutil.InFuncLit(i, root) {
		return ref
	}

	switch kind, _ := i.ParentEdge(); kind {
	case edge.ValueSpec_Names:
		return c.declaration(ref, i.Parent())

	case edge.AssignStmt_Lhs:
		return c.assignment(ref, i.Parent())

	case edge.SelectorExpr_X:
		return c.invocation(ref, i.Parent())

	default:
		return ref
	}
}

// declaration classifies a var declaration: var t T, var t = x, var t T = x.
func (c Collector) declaration(ref Reference, spec inspector.Cursor) Reference {
	vspec := spec.Node().(*ast.ValueSpec)

	stmt := spec.Parent().Parent() // ValueSpec → GenDecl → DeclStmt
	if _, ok := stmt.Node().(*ast.DeclStmt); !ok || !astutil.InStatementList(stmt) {
		return ref
	}

	switch {
	case len(vspec.Values) == 0:

	case len(vspec.Names) == 1 && len(vspec.Values) == 1:
		ref.Value = vspec.Values[0]

	default: // multiple variables initialized together
		return ref
	}

	ref.Kind, ref.Stmt, ref.Spec = KindDeclaration, stmt, vspec

	return ref
}

// assignment classifies short variable declarations (t := x) and plain assignments (t = x).
func (c Collector) assignment(ref Reference, asgn inspector.Cursor) Reference {
	stmt := asgn.Node().(*ast.AssignStmt)
	if len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 || !astutil.InStatementList(asgn) {
		return ref
	}

	switch stmt.Tok {
	case token.DEFINE:
		if c.Info.Defs[ref.Ident] == nil {
			return ref
		}

		ref.Kind = KindDeclaration

	case token.ASSIGN:
		ref.Kind = KindAssignment

	default: // op-assignment
		return ref
	}

	ref.Stmt, ref.Value = asgn, stmt.Rhs[0]

	return ref
}

// invocation classifies method calls: t.Start(), t.Join().
func (c Collector) invocation(ref Reference, sel inspector.Cursor) Reference {
	if kind, _ := sel.ParentEdge(); kind != edge.CallExpr_Fun {
		return ref // method value or field access
	}

	call := sel.Parent()

	ref.Kind = KindInvocation

	if c.IsStart == nil || !c.IsStart(call.Node().(*ast.CallExpr)) {
		return ref
	}

	if kind, _ := call.ParentEdge(); kind != edge.ExprStmt_X {
		return ref // result is used
	}

	stmt := call.Parent()
	if !astutil.InStatementList(stmt) {
		return ref
	}

	ref.Kind, ref.Stmt = KindStart, stmt

	return ref
}
