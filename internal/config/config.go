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

package config

// Rules represents the detection rules of the analyzer.
type Rules uint8

const (
	// ChainRule enables detection of chained construction and start (thread.New(f).Start()).
	ChainRule Rules = 1 << iota

	// DeclRule enables detection of variables declared with a thread construction.
	DeclRule

	// SplitRule enables detection of variables declared separately from the construction.
	SplitRule
)

// Behavior represents behavioral options of the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota
)

// DefaultRules returns the rules enabled by default.
func DefaultRules() BitMask[Rules] {
	return NewBitMask(ChainRule | DeclRule | SplitRule)
}

// DefaultBehavior returns the default behavior.
func DefaultBehavior() BitMask[Behavior] {
	return BitMask[Behavior]{}
}
