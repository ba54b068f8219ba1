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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// chain matches a construction started in the same expression statement:
//
//	thread.New(f).Start()
//	defer thread.New(f).Start()
func (d Detector) chain(start inspector.Cursor, recv *ast.CallExpr) (Match, bool) {
	site, ok := d.resolver.Construction(recv)
	if !ok {
		return Match{}, false
	}

	switch kind, _ := start.ParentEdge(); kind {
	case edge.ExprStmt_X, edge.DeferStmt_Call:

	default: // the started thread is used
		return Match{}, false
	}

	return Match{Shape: Chain, Site: site, Start: start, Stmt: start.Parent()}, true
}
