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

package rewrite

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/threadguard/internal/match"
)

// invariant checks that a bare callable denotes the same function when the task runs.
//
// The wrapping closure evaluates the callable when it is called, not at construction.
// Only functions and local variables that are never modified after their declaration qualify.
func invariant(u Unit, m match.Match) error {
	if m.Site.Arg.Closure {
		return nil
	}

	file := enclosingFile(m.Start)

	var err error

	ast.Inspect(m.Site.Arg.Expr, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok || err != nil {
			return err == nil
		}

		v, ok := u.Info.Uses[id].(*types.Var)
		if !ok {
			return false // functions, methods and package names
		}

		if v.IsField() || v.Pkg() == nil || v.Parent() == nil || v.Parent() == v.Pkg().Scope() || modified(u.Info, file, v) {
			err = fmt.Errorf("%w: %s", ErrReassigned, id.Name)
		}

		return false
	})

	return err
}

// enclosingFile returns the file containing c.
func enclosingFile(c inspector.Cursor) inspector.Cursor {
	for p := c; p.Node() != nil; p = p.Parent() {
		if _, ok := p.Node().(*ast.File); ok {
			return p
		}
	}

	return c
}

// modified reports whether v is assigned, incremented, ranged over as a target or has its address taken
// anywhere below root, including through its fields, elements and pointer methods.
func modified(info *types.Info, root inspector.Cursor, v *types.Var) bool {
	for c := range root.Preorder((*ast.Ident)(nil)) {
		if info.Uses[c.Node().(*ast.Ident)] != v {
			continue
		}

		if target(info, c) {
			return true
		}
	}

	return false
}

// target reports whether the operand at c is written to.
func target(info *types.Info, c inspector.Cursor) bool {
	for {
		kind, _ := c.ParentEdge()
		parent := c.Parent()

		switch kind {
		case edge.ParenExpr_X, edge.IndexExpr_X, edge.StarExpr_X:

		case edge.SelectorExpr_X:
			if sel, ok := info.Selections[parent.Node().(*ast.SelectorExpr)]; ok && addressed(sel) {
				return true
			}

		case edge.AssignStmt_Lhs, edge.IncDecStmt_X, edge.RangeStmt_Key, edge.RangeStmt_Value:
			return true

		case edge.UnaryExpr_X:
			return parent.Node().(*ast.UnaryExpr).Op == token.AND

		default:
			return false
		}

		c = parent
	}
}

// addressed reports whether a method selection implicitly takes the address of its operand.
func addressed(sel *types.Selection) bool {
	if sel.Kind() != types.MethodVal {
		return false
	}

	sig, ok := sel.Obj().Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	_, ptrRecv := sig.Recv().Type().(*types.Pointer)
	_, ptrOperand := sel.Recv().Underlying().(*types.Pointer)

	return ptrRecv && !ptrOperand
}
