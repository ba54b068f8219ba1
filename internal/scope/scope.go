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

package scope

import (
	"go/ast"
	"go/types"
)

// Index maps scopes to their corresponding AST nodes.
//
// It inverts [types.Info.Scopes] to navigate from a declared object to the syntax
// defining its scope.
type Index map[*types.Scope]ast.Node

// NewIndex creates a scope index from the type checker's scope map.
func NewIndex(info *types.Info) Index {
	s := make(Index, len(info.Scopes))
	for node, scope := range info.Scopes {
		s[scope] = node
	}

	return s
}

// Local reports whether v is a local variable, as opposed to a package-level variable,
// a struct field or a variable declared in the universe scope.
func Local(v *types.Var) bool {
	if v.IsField() {
		return false
	}

	parent := v.Parent()
	if parent == nil || parent == types.Universe {
		return false
	}

	if pkg := v.Pkg(); pkg != nil && parent == pkg.Scope() {
		return false
	}

	return true
}

// Declaring returns the node defining the scope of a local variable, when that scope
// belongs to a statement list.
//
// For variables declared at the top level of a function body this is the *[ast.FuncType],
// since go/types associates the function scope with the signature. Variables declared in
// the init statement of control flow statements return false.
func (s Index) Declaring(v *types.Var) (ast.Node, bool) {
	if !Local(v) {
		return nil, false
	}

	switch n := s[v.Parent()].(type) {
	case *ast.BlockStmt, *ast.CaseClause, *ast.CommClause, *ast.FuncType:
		return n, true

	default:
		return nil, false
	}
}
