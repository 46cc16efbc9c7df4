// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/protractor/base/errors"
	"cogentcore.org/protractor/protractor"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Render a dial again each time its config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config == "" {
				return fmt.Errorf("watch needs a config file (--config)")
			}
			path, err := expandPath(opts.config)
			if err != nil {
				return err
			}
			cfg, err := openConfig(path)
			if err != nil {
				return err
			}
			d := newDial(opts, cfg)
			if err := writeImage(d, opts.output); err != nil {
				return err
			}
			w, err := newConfigWatcher(path)
			if err != nil {
				return err
			}
			defer w.Close()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			watchConfig(ctx, w, path, func(cfg protractor.Config) {
				d.SetConfig(cfg)
				errors.Log(writeImage(d, opts.output))
			})
			return nil
		},
	}
}

// newConfigWatcher returns a watcher on the directory of the given
// config file, so that files replaced on save are still seen.
func newConfigWatcher(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %q: %w", path, err)
	}
	return w, nil
}

// watchConfig calls reload with the new config each time the config
// file at path is written, until ctx is done. A config that fails to
// load is logged and skipped. reload is called on the calling goroutine.
func watchConfig(ctx context.Context, w *fsnotify.Watcher, path string, reload func(protractor.Config)) {
	path = filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := openConfig(path)
			if err != nil {
				errors.Log(err)
				continue
			}
			slog.Info("config changed", "file", path)
			reload(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}
