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
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/threadguard/internal/config"
	"fillmore-labs.com/threadguard/internal/match"
)

var (
	// ErrShadowed is returned when an identifier of the replacement would resolve differently at the start site.
	ErrShadowed = errors.New("identifier shadowed")

	// ErrBlankImport is returned when the task package is imported for side effects only.
	ErrBlankImport = errors.New("task package imported as _")

	// ErrReassigned is returned when a bare callable reads a variable that may change before the task runs.
	ErrReassigned = errors.New("callable variable may be reassigned")

	// ErrOverlap is returned when text edits overlap.
	ErrOverlap = errors.New("overlapping edits")
)

// Unit is a type-checked source file.
type Unit struct {
	File   *ast.File
	Handle *token.File
	Src    []byte
	Pkg    *types.Package
	Info   *types.Info
}

// text returns the source text of a node.
func (u Unit) text(n ast.Node) []byte {
	return u.Src[u.Handle.Offset(n.Pos()):u.Handle.Offset(n.End())]
}

// Fix computes the text edits replacing a match with a call to the task function.
//
// The start invocation is replaced, the statements made dead by the replacement are deleted,
// and the imports are adjusted.
func Fix(u Unit, m match.Match, task config.Name) ([]analysis.TextEdit, error) {
	start := m.StartCall()

	qual, imp, err := qualifier(u, task, start.Pos())
	if err != nil {
		return nil, err
	}

	if err := stable(u, m.Site.Arg.Expr, start.Pos()); err != nil {
		return nil, err
	}

	if err := invariant(u, m); err != nil {
		return nil, err
	}

	edits := []analysis.TextEdit{{
		Pos:     start.Pos(),
		End:     start.End(),
		NewText: Replacement(qual, task.Name, m.Site.Arg, u.text(m.Site.Arg.Expr)),
	}}

	edits = append(edits, deletions(u, m)...)

	edits = append(edits, imports(u, m, edits, imp)...)

	// Validate the result, which must be syntactically correct Go
	if _, err := Apply(u.Handle, u.Src, edits); err != nil {
		return nil, err
	}

	return edits, nil
}

// stable checks that the free identifiers of the argument resolve to the same objects at pos.
func stable(u Unit, arg ast.Expr, pos token.Pos) error {
	scope := u.Pkg.Scope().Innermost(pos)
	if scope == nil {
		return nil
	}

	var err error

	ast.Inspect(arg, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok || err != nil {
			return err == nil
		}

		obj := u.Info.Uses[id]
		if obj == nil || obj.Pkg() != u.Pkg || obj.Parent() == nil {
			return false // fields, methods, predeclared and imported identifiers
		}

		if arg.Pos() <= obj.Pos() && obj.Pos() < arg.End() {
			return false // declared in the argument itself
		}

		if _, found := scope.LookupParent(id.Name, pos); found != obj {
			err = fmt.Errorf("%w: %s", ErrShadowed, id.Name)
		}

		return false
	})

	return err
}
