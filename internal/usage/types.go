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

	"golang.org/x/tools/go/ast/inspector"
)

// Kind classifies a reference to a variable.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindDeclaration is the defining identifier of the variable.
	KindDeclaration Kind = iota // declaration

	// KindAssignment is the single target of a plain assignment statement.
	KindAssignment // assignment

	// KindStart is the receiver of a start invocation statement.
	KindStart // start

	// KindInvocation is the receiver of any other method call.
	KindInvocation // invocation

	// KindUse is any other use: an argument, an operand, a captured variable, a complex assignment.
	KindUse // use
)

// Acceptable reports whether a reference of this kind is allowed for a variable
// that is only constructed and started.
func (k Kind) Acceptable() bool {
	switch k {
	case KindDeclaration, KindAssignment, KindStart:
		return true

	default:
		return false
	}
}

// Reference is a single occurrence of a variable.
type Reference struct {
	// Ident is the identifier referring to the variable.
	Ident *ast.Ident

	// Kind classifies this reference.
	Kind Kind

	// Stmt is the statement containing the reference for declarations, assignments and starts.
	// It is an element of a statement list.
	Stmt inspector.Cursor

	// Spec is the value specification for declarations with the var keyword, nil otherwise.
	Spec *ast.ValueSpec

	// Value is the expression assigned to the variable, if any.
	Value ast.Expr
}
