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

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/mod/module"
)

// Default targets, pointing to the packages shipped with this module.
const (
	DefaultThread = "fillmore-labs.com/threadguard/thread.Thread"
	DefaultStart  = "Start"
	DefaultTask   = "fillmore-labs.com/threadguard/task.Run"
)

var (
	// ErrEmptyTarget is returned when a target specification is empty.
	ErrEmptyTarget = errors.New("empty target")

	// ErrInvalidTarget is returned when a target specification can't be parsed.
	ErrInvalidTarget = errors.New("invalid target")
)

// Name is a package-level object, referenced as "pkg/path.Name".
type Name struct {
	PkgPath string
	Name    string
}

// ParseName parses a target specification of the form "pkg/path.Name".
func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyTarget
	}

	// The package path may contain dots in its first element, so only look behind the last slash.
	slash := strings.LastIndexByte(s, '/')

	dot := strings.LastIndexByte(s[slash+1:], '.')
	if dot < 0 {
		return Name{}, fmt.Errorf("%w %q: expected pkg/path.Name", ErrInvalidTarget, s)
	}

	dot += slash + 1

	n := Name{PkgPath: s[:dot], Name: s[dot+1:]}
	if err := n.Validate(); err != nil {
		return Name{}, err
	}

	return n, nil
}

// MustParseName is like [ParseName] but panics on invalid input.
func MustParseName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}

	return n
}

// Validate checks that the package path is a valid import path and the name an exported identifier.
func (n Name) Validate() error {
	if err := module.CheckImportPath(n.PkgPath); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidTarget, n, err)
	}

	if !token.IsIdentifier(n.Name) || !token.IsExported(n.Name) {
		return fmt.Errorf("%w %q: %q is not an exported identifier", ErrInvalidTarget, n, n.Name)
	}

	return nil
}

// String returns the "pkg/path.Name" form.
func (n Name) String() string {
	return n.PkgPath + "." + n.Name
}

// PkgName returns the default package name, the last element of the import path.
//
// Major version suffixes like "/v2" are skipped.
func (n Name) PkgName() string {
	name, _, ok := module.SplitPathVersion(n.PkgPath)
	if !ok || name == "" {
		name = n.PkgPath
	}

	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	return strings.ReplaceAll(name, "-", "_")
}

// Targets describes the thread-like types, their start method and the replacing task function.
type Targets struct {
	// Threads are the thread-like types.
	Threads []Name

	// Start is the method name starting a thread.
	Start string

	// Task is the function scheduling a func() on a managed pool.
	Task Name
}

// DefaultTargets returns the [Targets] for the packages shipped with this module.
func DefaultTargets() Targets {
	return Targets{
		Threads: []Name{MustParseName(DefaultThread)},
		Start:   DefaultStart,
		Task:    MustParseName(DefaultTask),
	}
}

// Validate checks the [Targets] for completeness.
func (t Targets) Validate() error {
	if len(t.Threads) == 0 {
		return fmt.Errorf("thread types: %w", ErrEmptyTarget)
	}

	for _, n := range t.Threads {
		if err := n.Validate(); err != nil {
			return fmt.Errorf("thread type: %w", err)
		}
	}

	if !token.IsIdentifier(t.Start) || !token.IsExported(t.Start) {
		return fmt.Errorf("start method %q: %w", t.Start, ErrInvalidTarget)
	}

	if err := t.Task.Validate(); err != nil {
		return fmt.Errorf("task function: %w", err)
	}

	return nil
}

// ParseThreads parses a comma-separated list of thread-like types.
func ParseThreads(s string) ([]Name, error) {
	var threads []Name

	for spec := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(spec) == "" {
			continue
		}

		n, err := ParseName(spec)
		if err != nil {
			return nil, err
		}

		threads = append(threads, n)
	}

	if len(threads) == 0 {
		return nil, ErrEmptyTarget
	}

	return threads, nil
}

// FormatThreads formats a list of thread-like types as comma-separated list.
func FormatThreads(threads []Name) string {
	specs := make([]string, 0, len(threads))
	for _, n := range threads {
		specs = append(specs, n.String())
	}

	return strings.Join(specs, ",")
}
