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

package analyzer

import (
	"flag"

	"fillmore-labs.com/threadguard/internal/config"
	"fillmore-labs.com/threadguard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(threadsValue{&r.Targets.Threads}, "thread", "comma-separated thread-like types (pkg/path.Type)")
	flags.StringVar(&r.Targets.Start, "start", r.Targets.Start, "method name starting a thread")
	flags.Var(nameValue{&r.Targets.Task}, "task", "function scheduling a func() on a managed pool (pkg/path.Func)")

	flags.Var(newRuleValue(&r.Rules, config.ChainRule), "chain", "report chained construction and start")
	flags.Var(newRuleValue(&r.Rules, config.DeclRule), "decl", "report declarations started once")
	flags.Var(newRuleValue(&r.Rules, config.SplitRule), "split", "report separate declarations started once")
	flags.Var(newBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")

	flags.Var(configValue{r}, "config", "YAML configuration file")
}
