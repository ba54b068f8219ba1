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
	"strconv"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/threadguard/internal/config"
	"fillmore-labs.com/threadguard/internal/match"
)

// newImport is an import declaration to add.
type newImport struct {
	name string // explicit package name, empty when the import path determines it
	path string
}

// spec renders the import specification.
func (i newImport) spec() string {
	if i.name != "" {
		return i.name + " " + strconv.Quote(i.path)
	}

	return strconv.Quote(i.path)
}

// qualifier determines how the task function is referenced at pos and whether its package must be imported.
func qualifier(u Unit, task config.Name, pos token.Pos) (string, *newImport, error) {
	if u.Pkg.Path() == task.PkgPath {
		if fn, ok := lookup(u, task.Name, pos).(*types.Func); !ok || fn.Pkg() != u.Pkg {
			return "", nil, fmt.Errorf("%w: %s", ErrShadowed, task.Name)
		}

		return "", nil, nil
	}

	for _, spec := range u.File.Imports {
		if path, err := strconv.Unquote(spec.Path.Value); err != nil || path != task.PkgPath {
			continue
		}

		switch {
		case spec.Name == nil:

		case spec.Name.Name == "_":
			return "", nil, ErrBlankImport

		case spec.Name.Name == ".":
			if fn, ok := lookup(u, task.Name, pos).(*types.Func); !ok || fn.Pkg() == nil || fn.Pkg().Path() != task.PkgPath {
				return "", nil, fmt.Errorf("%w: %s", ErrShadowed, task.Name)
			}

			return "", nil, nil
		}

		pkgName := importedName(u, spec)
		if pkgName == nil {
			continue
		}

		if lookup(u, pkgName.Name(), pos) != pkgName {
			return "", nil, fmt.Errorf("%w: %s", ErrShadowed, pkgName.Name())
		}

		return pkgName.Name(), nil, nil
	}

	name, explicit := packageName(u.Pkg, task)

	if lookup(u, name, pos) != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrShadowed, name)
	}

	imp := &newImport{path: task.PkgPath}
	if explicit {
		imp.name = name
	}

	return name, imp, nil
}

// lookup resolves a name in the scope at pos.
func lookup(u Unit, name string, pos token.Pos) types.Object {
	scope := u.Pkg.Scope().Innermost(pos)
	if scope == nil {
		return nil
	}

	_, obj := scope.LookupParent(name, pos)

	return obj
}

// importedName returns the package name declared by an import specification.
func importedName(u Unit, spec *ast.ImportSpec) *types.PkgName {
	var obj types.Object
	if spec.Name != nil {
		obj = u.Info.Defs[spec.Name]
	} else {
		obj = u.Info.Implicits[spec]
	}

	pkgName, _ := obj.(*types.PkgName)

	return pkgName
}

// packageName returns the name of the task package, when it is a transitive dependency of pkg,
// or the name derived from its import path.
func packageName(pkg *types.Package, task config.Name) (name string, explicit bool) {
	guess := task.PkgName()

	seen := make(map[*types.Package]struct{})
	queue := pkg.Imports()

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}

		if p.Path() == task.PkgPath {
			return p.Name(), p.Name() != guess
		}

		queue = append(queue, p.Imports()...)
	}

	return guess, false
}

// imports returns the edits adding the task import and removing the thread import
// when no references to it remain.
func imports(u Unit, m match.Match, edits []analysis.TextEdit, imp *newImport) []analysis.TextEdit {
	decl, spec := unusedImport(u, m, edits)

	switch {
	case spec != nil && imp != nil:
		// Replacing the specification avoids adjacent edits in the import block.
		return []analysis.TextEdit{{Pos: spec.Pos(), End: spec.End(), NewText: []byte(imp.spec())}}

	case spec != nil:
		return []analysis.TextEdit{removeImport(u, decl, spec)}

	case imp != nil:
		return []analysis.TextEdit{addImport(u, *imp)}

	default:
		return nil
	}
}

// unusedImport returns the import of the thread constructor's package when all its references are removed by edits.
func unusedImport(u Unit, m match.Match, edits []analysis.TextEdit) (*ast.GenDecl, *ast.ImportSpec) {
	sel, ok := ast.Unparen(m.Site.Call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, nil
	}

	x, ok := sel.X.(*ast.Ident)
	if !ok {
		return nil, nil
	}

	pkgName, ok := u.Info.Uses[x].(*types.PkgName)
	if !ok {
		return nil, nil
	}

	kept := m.Site.Arg.Expr

	for id, obj := range u.Info.Uses {
		if obj != pkgName {
			continue
		}

		if pos := id.Pos(); removed(pos, edits) && (pos < kept.Pos() || kept.End() <= pos) {
			continue
		}

		return nil, nil
	}

	for _, d := range u.File.Decls {
		g, ok := d.(*ast.GenDecl)
		if !ok || g.Tok != token.IMPORT {
			continue
		}

		for _, s := range g.Specs {
			if spec := s.(*ast.ImportSpec); importedName(u, spec) == pkgName {
				return g, spec
			}
		}
	}

	return nil, nil
}

// removed reports whether pos lies in the range of an edit.
func removed(pos token.Pos, edits []analysis.TextEdit) bool {
	for _, e := range edits {
		if e.Pos <= pos && pos < e.End {
			return true
		}
	}

	return false
}

// removeImport deletes an import specification, or the whole declaration for its last specification.
func removeImport(u Unit, decl *ast.GenDecl, spec *ast.ImportSpec) analysis.TextEdit {
	if len(decl.Specs) > 1 {
		pos, end := spec.Pos(), spec.End()
		if spec.Doc != nil {
			pos = spec.Doc.Pos()
		}

		if spec.Comment != nil {
			end = spec.Comment.End()
		}

		return lineEdit(u, pos, end)
	}

	pos := decl.Pos()
	if decl.Doc != nil {
		pos = decl.Doc.Pos()
	}

	return lineEdit(u, pos, decl.End())
}

// addImport inserts an import specification into the last import declaration,
// or a new declaration after the package clause.
// A single unparenthesized import is turned into a group.
func addImport(u Unit, imp newImport) analysis.TextEdit {
	var last *ast.GenDecl

	for _, d := range u.File.Decls {
		if g, ok := d.(*ast.GenDecl); ok && g.Tok == token.IMPORT {
			last = g
		}
	}

	spec := imp.spec()

	switch {
	case last == nil:
		pos := u.File.Name.End()

		return analysis.TextEdit{Pos: pos, End: pos, NewText: []byte("\n\nimport " + spec)}

	case !last.Lparen.IsValid():
		return groupImport(u, last, imp)

	case len(last.Specs) == 0:
		return analysis.TextEdit{Pos: last.Rparen, End: last.Rparen, NewText: []byte(spec)}

	case u.Src[u.Handle.Offset(last.Rparen)-1] == '\n':
		return analysis.TextEdit{Pos: last.Rparen, End: last.Rparen, NewText: []byte("\t" + spec + "\n")}

	default:
		return analysis.TextEdit{Pos: last.Rparen, End: last.Rparen, NewText: []byte("; " + spec)}
	}
}

// groupImport replaces a single unparenthesized import with a sorted group holding both imports.
func groupImport(u Unit, decl *ast.GenDecl, imp newImport) analysis.TextEdit {
	existing := decl.Specs[0].(*ast.ImportSpec)

	end := existing.End()
	if existing.Comment != nil {
		end = existing.Comment.End()
	}

	old := string(u.Src[u.Handle.Offset(existing.Pos()):u.Handle.Offset(end)])

	specs := []string{old, imp.spec()}
	if path, err := strconv.Unquote(existing.Path.Value); err == nil && imp.path < path {
		specs[0], specs[1] = specs[1], specs[0]
	}

	text := "import (\n\t" + specs[0] + "\n\t" + specs[1] + "\n)"

	return analysis.TextEdit{Pos: decl.Pos(), End: end, NewText: []byte(text)}
}
