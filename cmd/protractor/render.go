// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/protractor/base/iox/imagex"
	"cogentcore.org/protractor/math32"
	"cogentcore.org/protractor/paint/raster"
	"cogentcore.org/protractor/protractor"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	angle := -1
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a dial to an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := openConfig(opts.config)
			if err != nil {
				return err
			}
			d := newDial(opts, cfg)
			if angle >= 0 {
				d.SetAngle(angle)
			}
			return writeImage(d, opts.output)
		},
	}
	cmd.Flags().IntVarP(&angle, "angle", "a", -1, "angle to render; the config angle is used when negative")
	return cmd
}

// newDial returns a dial with the given config, laid out per the options.
func newDial(opts *options, cfg protractor.Config) *protractor.Dial {
	name := "dial"
	if opts.config != "" {
		name = opts.config
	}
	d := protractor.New(cfg).SetName(name)
	d.Layout(opts.width, opts.height, opts.density)
	return d
}

// writeImage renders the dial into a new image of its measured size
// and saves it to the given file.
func writeImage(d *protractor.Dial, path string) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	plan := d.Render()
	sz := plan.Size
	img := raster.Image(plan, int(math32.Ceil(sz.X)), int(math32.Ceil(sz.Y)))
	if err := imagex.Save(img, path); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	slog.Info("wrote image", "file", path, "angle", d.Angle(), "size", sz)
	return nil
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults <file.toml|file.yaml>",
		Short: "Write the default dial config to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.Contains(args[0], ".") {
				return fmt.Errorf("missing file extension in %q", args[0])
			}
			return saveFile(protractor.DefaultConfig(), args[0])
		},
	}
}
