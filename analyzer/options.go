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
	"log/slog"

	"fillmore-labs.com/threadguard/internal/config"
	"fillmore-labs.com/threadguard/internal/run"
)

// Option configures specific behavior of a [New] threadguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithThreads is an [Option] to configure the thread-like types, given as "pkg/path.Type".
//
// Invalid types are reported when the analyzer runs.
func WithThreads(threads ...string) Option { return threadsOption{threads: threads} }

type threadsOption struct{ threads []string }

func (o threadsOption) apply(r *run.Options) {
	names := make([]config.Name, 0, len(o.threads))
	for _, t := range o.threads {
		names = append(names, parseName(t))
	}

	r.Targets.Threads = names
}

func (o threadsOption) LogAttr() slog.Attr {
	return slog.Any("threads", o.threads)
}

// WithStart is an [Option] to configure the method name starting a thread.
func WithStart(start string) Option { return startOption{start: start} }

type startOption struct{ start string }

func (o startOption) apply(r *run.Options) {
	r.Targets.Start = o.start
}

func (o startOption) LogAttr() slog.Attr {
	return slog.String("start", o.start)
}

// WithTask is an [Option] to configure the replacing task function, given as "pkg/path.Func".
//
// An invalid function is reported when the analyzer runs.
func WithTask(task string) Option { return taskOption{task: task} }

type taskOption struct{ task string }

func (o taskOption) apply(r *run.Options) {
	r.Targets.Task = parseName(o.task)
}

func (o taskOption) LogAttr() slog.Attr {
	return slog.String("task", o.task)
}

// WithChain is an [Option] to configure whether chained constructions are reported.
func WithChain(chain bool) Option { return ruleOption{rule: config.ChainRule, key: "chain", enabled: chain} }

// WithDecl is an [Option] to configure whether constructions bound in declarations are reported.
func WithDecl(decl bool) Option { return ruleOption{rule: config.DeclRule, key: "decl", enabled: decl} }

// WithSplit is an [Option] to configure whether constructions assigned to previously declared variables are reported.
func WithSplit(split bool) Option {
	return ruleOption{rule: config.SplitRule, key: "split", enabled: split}
}

type ruleOption struct {
	rule    config.Rules
	key     string
	enabled bool
}

func (o ruleOption) apply(r *run.Options) {
	r.Rules.Set(o.rule, o.enabled)
}

func (o ruleOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// parseName parses a target, keeping invalid input for validation at run time.
func parseName(s string) config.Name {
	n, err := config.ParseName(s)
	if err != nil {
		return config.Name{PkgPath: s}
	}

	return n
}
