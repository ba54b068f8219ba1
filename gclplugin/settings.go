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

package gclplugin

import threadguard "fillmore-labs.com/threadguard/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Thread lists the thread-like types, as "pkg/path.Type".
	Thread []string `json:"thread,omitzero"`
	// Start is the method name starting a thread.
	Start *string `json:"start,omitzero"`
	// Task is the function scheduling a func() on a managed pool, as "pkg/path.Func".
	Task *string `json:"task,omitzero"`
	// Chain enables reporting chained construction and start.
	Chain *bool `json:"chain,omitzero"`
	// Decl enables reporting declarations started once.
	Decl *bool `json:"decl,omitzero"`
	// Split enables reporting separate declarations started once.
	Split *bool `json:"split,omitzero"`
}

// Options converts [Settings] into a list of [threadguard.Option] for the threadguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []threadguard.Option {
	var opts []threadguard.Option

	if len(s.Thread) > 0 {
		opts = append(opts, threadguard.WithThreads(s.Thread...))
	}

	opts = appendOption(opts, s.Start, threadguard.WithStart)
	opts = appendOption(opts, s.Task, threadguard.WithTask)
	opts = appendOption(opts, s.Chain, threadguard.WithChain)
	opts = appendOption(opts, s.Decl, threadguard.WithDecl)
	opts = appendOption(opts, s.Split, threadguard.WithSplit)

	return opts
}

// appendOption appends a non-nil setting to a [threadguard.Option] list.
func appendOption[T any](opts []threadguard.Option, value *T, constructor func(T) threadguard.Option) []threadguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
