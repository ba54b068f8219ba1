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
	"strconv"

	"fillmore-labs.com/threadguard/internal/config"
	"fillmore-labs.com/threadguard/internal/run"
)

func newRuleValue(b *config.BitMask[config.Rules], rule config.Rules) boolValue[config.Rules, *config.BitMask[config.Rules]] {
	return boolValue[config.Rules, *config.BitMask[config.Rules]]{flags: b, value: rule}
}

func newBehaviorValue(b *config.BitMask[config.Behavior], behavior config.Behavior) boolValue[config.Behavior, *config.BitMask[config.Behavior]] {
	return boolValue[config.Behavior, *config.BitMask[config.Behavior]]{flags: b, value: behavior}
}

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// threadsValue is a comma-separated list of thread-like types.
type threadsValue struct{ threads *[]config.Name }

// Set implements [flag.Value].
func (f threadsValue) Set(s string) error {
	threads, err := config.ParseThreads(s)
	if err != nil {
		return err
	}

	*f.threads = threads

	return nil
}

// String implements [flag.Value].
func (f threadsValue) String() string {
	if f.threads == nil {
		return ""
	}

	return config.FormatThreads(*f.threads)
}

// nameValue is a package-level object.
type nameValue struct{ name *config.Name }

// Set implements [flag.Value].
func (f nameValue) Set(s string) error {
	n, err := config.ParseName(s)
	if err != nil {
		return err
	}

	*f.name = n

	return nil
}

// String implements [flag.Value].
func (f nameValue) String() string {
	if f.name == nil {
		return ""
	}

	return f.name.String()
}

// configValue loads a YAML configuration file into the options.
type configValue struct{ r *run.Options }

// Set implements [flag.Value].
func (f configValue) Set(s string) error {
	c, err := config.LoadFile(s)
	if err != nil {
		return err
	}

	return c.Apply(&f.r.Targets, &f.r.Rules, &f.r.Behavior)
}

// String implements [flag.Value].
func (f configValue) String() string { return "" }
