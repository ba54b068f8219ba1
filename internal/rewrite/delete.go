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
	"go/ast"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/threadguard/internal/match"
	"fillmore-labs.com/threadguard/internal/usage"
)

// deletions returns the edits removing the declaration and construction of a bound thread.
func deletions(u Unit, m match.Match) []analysis.TextEdit {
	b := m.Binding
	if b == nil {
		return nil
	}

	var edits []analysis.TextEdit

	switch m.Shape {
	case match.Declared:
		edits = append(edits, deleteDecl(u, b.Decl))

	case match.Split:
		edits = append(edits, deleteDecl(u, b.Decl), deleteStmt(u, b.Assign.Stmt.Node()))
	}

	return edits
}

// deleteDecl removes a declaration: the name from a multi-name specification,
// the specification from a grouped declaration, or the whole statement.
func deleteDecl(u Unit, decl usage.Reference) analysis.TextEdit {
	stmt := decl.Stmt.Node()

	spec := decl.Spec
	if spec == nil {
		return deleteStmt(u, stmt)
	}

	if len(spec.Names) > 1 {
		return deleteName(spec.Names, decl.Ident)
	}

	if g := stmt.(*ast.DeclStmt).Decl.(*ast.GenDecl); len(g.Specs) > 1 {
		pos, end := spec.Pos(), spec.End()
		if spec.Doc != nil {
			pos = spec.Doc.Pos()
		}

		if spec.Comment != nil {
			end = spec.Comment.End()
		}

		return lineEdit(u, pos, end)
	}

	return deleteStmt(u, stmt)
}

// deleteStmt removes a statement including its doc and line comments.
func deleteStmt(u Unit, stmt ast.Node) analysis.TextEdit {
	pos, end := stmt.Pos(), stmt.End()

	if d, ok := stmt.(*ast.DeclStmt); ok {
		if g, ok := d.Decl.(*ast.GenDecl); ok && g.Doc != nil && g.Doc.Pos() < pos {
			pos = g.Doc.Pos()
		}
	}

	return lineEdit(u, pos, end)
}

// deleteName removes a single name together with its separating comma.
func deleteName(names []*ast.Ident, name *ast.Ident) analysis.TextEdit {
	i := slices.Index(names, name)

	switch {
	case i < 0:
		return analysis.TextEdit{Pos: name.Pos(), End: name.End()}

	case i < len(names)-1:
		return analysis.TextEdit{Pos: name.Pos(), End: names[i+1].Pos()}

	default:
		return analysis.TextEdit{Pos: names[i-1].End(), End: name.End()}
	}
}

// lineEdit deletes [pos, end). When the range occupies its lines alone, the lines
// are deleted completely, including a trailing line comment.
func lineEdit(u Unit, pos, end token.Pos) analysis.TextEdit {
	src := u.Src
	start, stop := u.Handle.Offset(pos), u.Handle.Offset(end)

	i := start
	for i > 0 && isBlank(src[i-1]) {
		i--
	}

	if i > 0 && src[i-1] != '\n' {
		return analysis.TextEdit{Pos: pos, End: end}
	}

	j := stop
	for j < len(src) && isBlank(src[j]) {
		j++
	}

	if j+1 < len(src) && src[j] == '/' && src[j+1] == '/' {
		for j < len(src) && src[j] != '\n' {
			j++
		}
	}

	switch {
	case j == len(src):

	case src[j] == '\n':
		j++

	default:
		return analysis.TextEdit{Pos: pos, End: end}
	}

	return analysis.TextEdit{Pos: u.Handle.Pos(i), End: u.Handle.Pos(j)}
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}
