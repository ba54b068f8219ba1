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
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the structure of a YAML configuration file:
//
//	thread:
//	  - fillmore-labs.com/threadguard/thread.Thread
//	start: Start
//	task: fillmore-labs.com/threadguard/task.Run
//	rules:
//	  chain: true
//	  decl: true
//	  split: true
//	generated: false
//
// Omitted fields keep their current value.
type File struct {
	Thread    []string  `yaml:"thread"`
	Start     *string   `yaml:"start"`
	Task      *string   `yaml:"task"`
	Rules     FileRules `yaml:"rules"`
	Generated *bool     `yaml:"generated"`
}

// FileRules enables or disables single rules.
type FileRules struct {
	Chain *bool `yaml:"chain"`
	Decl  *bool `yaml:"decl"`
	Split *bool `yaml:"split"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return File{}, err
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", name, err)
	}

	return c, nil
}

// Decode reads a YAML configuration, rejecting unknown fields.
func Decode(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c File
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}

	return c, nil
}

// Apply merges the configuration into [Targets], rules and behavior.
func (c File) Apply(t *Targets, rules *BitMask[Rules], behavior *BitMask[Behavior]) error {
	if len(c.Thread) > 0 {
		threads := make([]Name, 0, len(c.Thread))
		for _, spec := range c.Thread {
			n, err := ParseName(spec)
			if err != nil {
				return fmt.Errorf("thread: %w", err)
			}

			threads = append(threads, n)
		}

		t.Threads = threads
	}

	if c.Start != nil {
		t.Start = *c.Start
	}

	if c.Task != nil {
		n, err := ParseName(*c.Task)
		if err != nil {
			return fmt.Errorf("task: %w", err)
		}

		t.Task = n
	}

	setFlag(rules, ChainRule, c.Rules.Chain)
	setFlag(rules, DeclRule, c.Rules.Decl)
	setFlag(rules, SplitRule, c.Rules.Split)
	setFlag(behavior, IncludeGenerated, c.Generated)

	return t.Validate()
}

func setFlag[T ~uint8 | ~uint16 | ~uint32](b *BitMask[T], flag T, value *bool) {
	if value == nil {
		return
	}

	b.Set(flag, *value)
}
