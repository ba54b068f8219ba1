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

	"fillmore-labs.com/threadguard/internal/config"
	"fillmore-labs.com/threadguard/internal/scope"
	"fillmore-labs.com/threadguard/internal/usage"
)

// Detector finds threads that are constructed and only ever started.
type Detector struct {
	resolver Resolver
	scopes   scope.Index
	refs     usage.Collector
	rules    config.BitMask[config.Rules]
}

// New creates a [Detector] for the given type information.
func New(info *types.Info, targets config.Targets, rules config.BitMask[config.Rules]) Detector {
	r := NewResolver(info, targets)

	return Detector{
		resolver: r,
		scopes:   scope.NewIndex(info),
		refs:     usage.Collector{Info: info, IsStart: r.IsStart},
		rules:    rules,
	}
}

// Resolver returns the symbol resolver used for detection.
func (d Detector) Resolver() Resolver {
	return d.resolver
}

// Detect returns all matches below root in source order of their start invocation.
func (d Detector) Detect(root inspector.Cursor) []Match {
	var (
		matches []Match
		seen    map[*types.Var]struct{}
	)

	for c := range root.Preorder((*ast.CallExpr)(nil)) {
		call := c.Node().(*ast.CallExpr)
		if !d.resolver.IsStart(call) {
			continue
		}

		switch x := ast.Unparen(ast.Unparen(call.Fun).(*ast.SelectorExpr).X).(type) {
		case *ast.CallExpr:
			if !d.rules.Enabled(config.ChainRule) {
				continue
			}

			if m, ok := d.chain(c, x); ok {
				matches = append(matches, m)
			}

		case *ast.Ident:
			v, ok := d.resolver.info.Uses[x].(*types.Var)
			if !ok {
				continue
			}

			if _, ok := seen[v]; ok {
				continue
			}

			if seen == nil {
				seen = make(map[*types.Var]struct{})
			}
			seen[v] = struct{}{}

			if m, ok := d.binding(c, v); ok && d.rules.Enabled(m.Shape.Rule()) {
				matches = append(matches, m)
			}
		}
	}

	return matches
}
