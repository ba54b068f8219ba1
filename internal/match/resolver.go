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
	"slices"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/threadguard/internal/config"
)

// Resolver decides by symbol resolution whether calls construct or start a thread.
//
// Unresolvable syntax, as produced by incomplete or erroneous code, never matches.
type Resolver struct {
	info    *types.Info
	targets config.Targets
}

// NewResolver creates a [Resolver] for the given targets.
func NewResolver(info *types.Info, targets config.Targets) Resolver {
	return Resolver{info: info, targets: targets}
}

// IsThread reports whether t is a thread-like type or a pointer to one.
func (r Resolver) IsThread(t types.Type) bool {
	if t == nil {
		return false
	}

	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Origin().Obj()
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	path, name := obj.Pkg().Path(), obj.Name()

	return slices.ContainsFunc(r.targets.Threads, func(n config.Name) bool {
		return n.PkgPath == path && n.Name == name
	})
}

// Construction checks whether call constructs a thread from a single callable.
//
// Constructors are package-level functions returning a thread-like type and taking
// exactly one argument of type func(). The argument must be a function literal or
// a bare reference to a function or method value.
func (r Resolver) Construction(call *ast.CallExpr) (Site, bool) {
	fn, ok := typeutil.Callee(r.info, call).(*types.Func)
	if !ok || fn.Signature().Recv() != nil {
		return Site{}, false
	}

	if !r.IsThread(r.info.TypeOf(call)) {
		return Site{}, false
	}

	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return Site{}, false
	}

	arg := ast.Unparen(call.Args[0])
	if !isNiladic(r.info.TypeOf(arg)) {
		return Site{}, false
	}

	switch arg.(type) {
	case *ast.FuncLit:
		return Site{Call: call, Arg: Argument{Expr: arg, Closure: true}}, true

	case *ast.Ident, *ast.SelectorExpr:
		return Site{Call: call, Arg: Argument{Expr: arg}}, true

	default:
		return Site{}, false
	}
}

// IsStart reports whether call is a start invocation of a thread-like type.
func (r Resolver) IsStart(call *ast.CallExpr) bool {
	if len(call.Args) != 0 {
		return false
	}

	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return false
	}

	if s, ok := r.info.Selections[sel]; !ok || s.Kind() != types.MethodVal {
		return false
	}

	fn, ok := typeutil.Callee(r.info, call).(*types.Func)
	if !ok || fn.Name() != r.targets.Start {
		return false
	}

	recv := fn.Signature().Recv()

	return recv != nil && r.IsThread(recv.Type()) && r.IsThread(r.info.TypeOf(sel.X))
}

// isNiladic reports whether t is a function type without parameters and results.
func isNiladic(t types.Type) bool {
	if t == nil {
		return false
	}

	sig, ok := t.Underlying().(*types.Signature)

	return ok && sig.Params().Len() == 0 && sig.Results().Len() == 0 && sig.TypeParams().Len() == 0
}
