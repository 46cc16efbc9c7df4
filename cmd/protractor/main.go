// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command protractor renders protractor dials to images and replays
// pointer event scripts against them.
package main

import (
	"os"

	"cogentcore.org/protractor/logx"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	config  string
	output  string
	width   float32
	height  float32
	density float32

	veryVerbose bool
	verbose     bool
	quiet       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "protractor",
		Short:         "Render and drive semicircular protractor dials",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.config, "config", "c", "", "dial config file (.toml, .yaml or .yml); defaults are used when empty")
	pf.StringVarP(&opts.output, "output", "o", "protractor.png", "image file to write")
	pf.Float32Var(&opts.width, "width", 400, "available width in pixels")
	pf.Float32Var(&opts.height, "height", 400, "available height in pixels")
	pf.Float32Var(&opts.density, "density", 1, "display density in pixels per dp")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "debug level logging")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "info level logging")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(newRenderCmd(opts), newReplayCmd(opts), newWatchCmd(opts), newDefaultsCmd())
	return root
}
