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

	"fillmore-labs.com/threadguard/internal/usage"
)

// Argument is the callable passed to a thread construction.
type Argument struct {
	// Expr is the argument expression, without parentheses.
	Expr ast.Expr

	// Closure is true for an inline function literal and false for a bare callable
	// reference (function name, qualified function or method value).
	Closure bool
}

// Site is the construction of a thread: thread.New(f).
type Site struct {
	// Call is the constructor call.
	Call *ast.CallExpr

	// Arg is the callable passed to the constructor.
	Arg Argument
}

// Binding is the local variable receiving a construction.
type Binding struct {
	// Var is the bound variable.
	Var *types.Var

	// Decl is the declaration of the variable.
	Decl usage.Reference

	// Assign is the separate assignment of the construction, for [Split] matches.
	Assign usage.Reference
}

// Match is a thread that is constructed and started, but never joined or passed on.
type Match struct {
	// Shape is the syntactic form of the match.
	Shape Shape

	// Site is the thread construction.
	Site Site

	// Start is the start invocation, *ast.CallExpr.
	Start inspector.Cursor

	// Stmt is the statement containing the start invocation.
	Stmt inspector.Cursor

	// Binding is the variable holding the thread, nil for [Chain] matches.
	Binding *Binding

	// References are all references to the bound variable, in source order.
	References []usage.Reference
}

// StartCall returns the start invocation.
func (m Match) StartCall() *ast.CallExpr {
	return m.Start.Node().(*ast.CallExpr)
}
