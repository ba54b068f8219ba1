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

import "fillmore-labs.com/threadguard/internal/config"

// Shape is the syntactic form of a [Match]. Its string value is the rule identifier.
type Shape uint8

//go:generate go tool stringer -type Shape -linecomment
const (
	// Chain is a construction started in the same expression: thread.New(f).Start().
	Chain Shape = iota // chain

	// Declared is a variable declared with a construction: t := thread.New(f); t.Start().
	Declared // decl

	// Split is a variable declared separately from its construction: var t *thread.Thread; t = thread.New(f); t.Start().
	Split // split
)

// Rule returns the configuration flag enabling this shape.
func (s Shape) Rule() config.Rules {
	switch s {
	case Chain:
		return config.ChainRule

	case Declared:
		return config.DeclRule

	case Split:
		return config.SplitRule

	default:
		return 0
	}
}
