// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/protractor/protractor"
	"github.com/spf13/cobra"
)

func newReplayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a pointer event script against a dial and render the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := openConfig(opts.config)
			if err != nil {
				return err
			}
			sc, err := openScript(args[0])
			if err != nil {
				return err
			}
			d := newDial(opts, cfg)
			ll := &logListener{}
			d.SetListener(ll)
			handled := replay(d, sc)
			slog.Info("replayed script", "file", args[0], "events", len(sc.Events), "handled", handled,
				"progress", ll.progress, "start", ll.start, "stop", ll.stop, "angle", d.Angle())
			return writeImage(d, opts.output)
		},
	}
}

// replay applies the script to the dial and returns
// the number of events the dial handled.
func replay(d *protractor.Dial, sc *Script) int {
	if sc.Angle != nil {
		d.SetAngle(*sc.Angle)
	}
	handled := 0
	for i := range sc.Events {
		ev := sc.Events[i]
		if d.HandleEvent(&ev) {
			handled++
		}
		slog.Debug("replay event", "index", i, "event", ev.String(), "handled", ev.IsHandled(), "state", d.TouchState())
	}
	return handled
}

// logListener logs and counts dial notifications.
type logListener struct {
	progress, start, stop int
}

func (ll *logListener) ProgressChanged(d *protractor.Dial, angle int, fromUser bool) {
	ll.progress++
	slog.Info("progress changed", "dial", d, "angle", angle, "from_user", fromUser)
}

func (ll *logListener) StartTrackingTouch(d *protractor.Dial) {
	ll.start++
	slog.Info("start tracking touch", "dial", d)
}

func (ll *logListener) StopTrackingTouch(d *protractor.Dial) {
	ll.stop++
	slog.Info("stop tracking touch", "dial", d)
}
