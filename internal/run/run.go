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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/threadguard/internal/astutil"
	"fillmore-labs.com/threadguard/internal/config"
	"fillmore-labs.com/threadguard/internal/match"
	"fillmore-labs.com/threadguard/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the threadguard analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	if err := r.Targets.Validate(); err != nil {
		return nil, fmt.Errorf("threadguard: %w", err)
	}

	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("threadguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Rules.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ThreadGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	detector := match.New(p.TypesInfo, r.Targets, r.Rules)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		reporter := report.New(p, currentFile, r.Targets)

		// Loop over all top-level declarations in this file
		for c := range f.Children() {
			var doc *ast.CommentGroup

			switch decl := c.Node().(type) {
			case *ast.FuncDecl:
				if decl.Body == nil {
					continue
				}

				doc = decl.Doc

			case *ast.GenDecl:
				// Function literals in package-level initializers
				if decl.Tok != token.VAR {
					continue
				}

				doc = decl.Doc

			default:
				continue
			}

			// Skip declarations with nolint comment
			if astutil.DocHasNoLint(doc) {
				continue
			}

			reporter.Report(ctx, detect(ctx, detector, c))
		}
	}

	return nil, nil
}

func detect(ctx context.Context, d match.Detector, decl inspector.Cursor) []match.Match {
	defer trace.StartRegion(ctx, "Detect").End()

	return d.Detect(decl)
}
