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

// Package analyzer implements the threadguard static analysis pass.
//
// # Overview
//
// ThreadGuard detects raw threads that are constructed and only ever started: nobody joins
// them, nobody passes them on. Such fire-and-forget threads should be tasks on a managed pool.
//
// # Example
//
// Before:
//
//	func serve() {
//	    t := thread.New(handle) // t is never joined
//	    t.Start()
//	}
//
// After applying threadguard's suggested fix:
//
//	func serve() {
//	    task.Run(func() { handle() })
//	}
//
// # Detected Shapes
//
//   - chain: thread.New(f).Start(), also deferred
//   - decl: t := thread.New(f) or var t = thread.New(f), followed by t.Start()
//   - split: var t *thread.Thread, then t = thread.New(f) and t.Start()
//
// Variables with any other reference, for example a Join call, a second start, an argument
// or a capture by a function literal, are not reported.
//
// # Configuration
//
// The thread-like types, the start method and the task function are configurable with
// the -thread, -start and -task flags, or with a YAML file passed by -config.
package analyzer
