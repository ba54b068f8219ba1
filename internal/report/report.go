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

package report

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/threadguard/internal/astutil"
	"fillmore-labs.com/threadguard/internal/config"
	"fillmore-labs.com/threadguard/internal/match"
	"fillmore-labs.com/threadguard/internal/rewrite"
)

// Reporter emits diagnostics with suggested fixes for the matches of a single file.
type Reporter struct {
	pass    *analysis.Pass
	file    astutil.CurrentFile
	targets config.Targets

	src    []byte
	srcErr error
	read   bool
}

// New creates a [Reporter] for a file.
func New(p *analysis.Pass, file astutil.CurrentFile, targets config.Targets) *Reporter {
	return &Reporter{pass: p, file: file, targets: targets}
}

// Report emits a diagnostic for each match not suppressed by a //nolint:threadguard comment.
func (r *Reporter) Report(ctx context.Context, matches []match.Match) {
	if len(matches) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, m := range matches {
		stmt := m.Stmt.Node()
		if r.file.NoLintComment(stmt.Pos()) {
			continue
		}

		diagnostic := analysis.Diagnostic{Category: m.Shape.String()}

		switch m.Shape {
		case match.Chain:
			diagnostic.Pos, diagnostic.End = stmt.Pos(), stmt.End()
			diagnostic.Message = r.message(describe(m, r.targets.Start), m.Shape)

		default:
			start := m.StartCall()
			diagnostic.Pos, diagnostic.End = start.Pos(), start.End()
			diagnostic.Message = r.message(m.Binding.Var.Name(), m.Shape)
			diagnostic.Related = related(m)
		}

		if fix, ok := r.fix(m, diagnostic.Message); ok {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{fix}
		}

		r.pass.Report(diagnostic)
	}
}

// message formats the diagnostic message.
func (r *Reporter) message(subject string, shape match.Shape) string {
	task := r.targets.Task.PkgName() + "." + r.targets.Task.Name

	return fmt.Sprintf("'%s' should be replaced with %s (tg:%s)", subject, task, shape)
}

// fix computes the suggested fix for a match. Generated files don't get fixes.
func (r *Reporter) fix(m match.Match, message string) (analysis.SuggestedFix, bool) {
	if r.file.Generated() {
		return analysis.SuggestedFix{}, false
	}

	src, err := r.source()
	if err != nil {
		astutil.InternalError(r.pass, r.file.File(), "Can't read source: %v", err)

		return analysis.SuggestedFix{}, false
	}

	unit := rewrite.Unit{
		File:   r.file.File(),
		Handle: r.file.Handle(),
		Src:    src,
		Pkg:    r.pass.Pkg,
		Info:   r.pass.TypesInfo,
	}

	edits, err := rewrite.Fix(unit, m, r.targets.Task)

	switch {
	case err == nil:
		return analysis.SuggestedFix{Message: message, TextEdits: edits}, true

	case errors.Is(err, rewrite.ErrInvalidResult):
		astutil.InternalError(r.pass, m.Stmt.Node(), "Can't rewrite statement: %v", err)
	}

	return analysis.SuggestedFix{}, false
}

// source reads the file contents once.
func (r *Reporter) source() ([]byte, error) {
	if !r.read {
		r.src, r.srcErr = r.pass.ReadFile(r.file.Handle().Name())
		r.read = true
	}

	return r.src, r.srcErr
}

// describe renders a chained construction and start, eliding closures.
func describe(m match.Match, start string) string {
	arg := "func() {...}"
	if !m.Site.Arg.Closure {
		arg = types.ExprString(m.Site.Arg.Expr)
	}

	return fmt.Sprintf("%s(%s).%s()", types.ExprString(m.Site.Call.Fun), arg, start)
}

// related points to the declaration and construction of a bound thread.
func related(m match.Match) []analysis.RelatedInformation {
	b := m.Binding

	switch m.Shape {
	case match.Declared:
		return []analysis.RelatedInformation{info(b.Decl.Stmt.Node(), "constructed here")}

	case match.Split:
		return []analysis.RelatedInformation{
			info(b.Decl.Ident, "declared here"),
			info(b.Assign.Stmt.Node(), "constructed here"),
		}

	default:
		return nil
	}
}

func info(n ast.Node, message string) analysis.RelatedInformation {
	return analysis.RelatedInformation{Pos: n.Pos(), End: n.End(), Message: message}
}
