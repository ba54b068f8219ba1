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

import "fillmore-labs.com/threadguard/internal/match"

// Replacement renders the call of the task function for a thread argument.
//
// Closures are passed verbatim, bare callables are wrapped in a function literal:
//
//	task.Run(func() { ... })
//	task.Run(func() { compute() })
func Replacement(qualifier, name string, arg match.Argument, src []byte) []byte {
	buf := make([]byte, 0, len(qualifier)+len(name)+len(src)+20)

	if qualifier != "" {
		buf = append(buf, qualifier...)
		buf = append(buf, '.')
	}

	buf = append(buf, name...)
	buf = append(buf, '(')

	if arg.Closure {
		buf = append(buf, src...)
	} else {
		buf = append(buf, "func() { "...)
		buf = append(buf, src...)
		buf = append(buf, "() }"...)
	}

	return append(buf, ')')
}
