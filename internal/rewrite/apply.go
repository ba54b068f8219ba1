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
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// ErrInvalidResult is returned when applying edits produces source that can't be formatted.
var ErrInvalidResult = errors.New("invalid result")

// Check verifies that no two edits overlap.
func Check(edits []analysis.TextEdit) error {
	sorted := slices.SortedStableFunc(slices.Values(edits), compareEdits)

	for i := 1; i < len(sorted); i++ {
		if prev, e := sorted[i-1], sorted[i]; e.Pos < prev.End {
			return fmt.Errorf("%w: [%d,%d) and [%d,%d)", ErrOverlap, prev.Pos, prev.End, e.Pos, e.End)
		}
	}

	return nil
}

// Apply applies text edits to the source of a file and formats the result.
func Apply(handle *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	if err := Check(edits); err != nil {
		return nil, err
	}

	sorted := slices.SortedStableFunc(slices.Values(edits), compareEdits)

	var (
		buf  bytes.Buffer
		last int
	)

	buf.Grow(len(src))

	for _, e := range sorted {
		pos, end := handle.Offset(e.Pos), handle.Offset(e.End)
		if !e.End.IsValid() {
			end = pos
		}

		buf.Write(src[last:pos]) // ignore error
		buf.Write(e.NewText)     // ignore error
		last = end
	}

	buf.Write(src[last:]) // ignore error

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResult, err)
	}

	return out, nil
}

func compareEdits(a, b analysis.TextEdit) int {
	return cmp.Or(cmp.Compare(a.Pos, b.Pos), cmp.Compare(a.End, b.End))
}
