// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/protractor/base/iox/tomlx"
	"cogentcore.org/protractor/base/iox/yamlx"
	"cogentcore.org/protractor/events"
	"cogentcore.org/protractor/protractor"
	"github.com/mitchellh/go-homedir"
)

// Script is a sequence of pointer events to replay against a dial.
type Script struct {

	// Angle, if set, is applied with SetAngle before the events.
	Angle *int `toml:"angle" yaml:"angle"`

	Events []events.Pointer `toml:"events" yaml:"events"`
}

// expandPath expands a leading ~ in the given path.
func expandPath(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expanding path %q: %w", path, err)
	}
	return p, nil
}

// openFile decodes the given TOML or YAML file into v,
// choosing the format by extension.
func openFile(v any, path string) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = tomlx.Open(v, path)
	case ".yaml", ".yml":
		err = yamlx.Open(v, path)
	default:
		return fmt.Errorf("unsupported file type %q: must be .toml, .yaml or .yml", path)
	}
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	return nil
}

// saveFile encodes v into the given TOML or YAML file.
func saveFile(v any, path string) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = tomlx.Save(v, path)
	case ".yaml", ".yml":
		err = yamlx.Save(v, path)
	default:
		return fmt.Errorf("unsupported file type %q: must be .toml, .yaml or .yml", path)
	}
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// openConfig returns the dial config in the given file. Fields missing
// from the file keep their default values. An empty path returns the
// default config.
func openConfig(path string) (protractor.Config, error) {
	cfg := protractor.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if err := openFile(&cfg, path); err != nil {
		return cfg, err
	}
	cfg.Clamp()
	return cfg, nil
}

// openScript returns the event script in the given file.
func openScript(path string) (*Script, error) {
	sc := &Script{}
	if err := openFile(sc, path); err != nil {
		return nil, err
	}
	for i := range sc.Events {
		ev := &sc.Events[i]
		if ev.Typ == events.UnknownType {
			return nil, fmt.Errorf("%s: event %d has no type", path, i)
		}
		ev.Normalize()
	}
	return sc, nil
}
