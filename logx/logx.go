// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger setup:
// slog text records prefixed by a level tag that is colored
// according to the terminal color profile.
package logx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through the -v/-q flags of a command. It defaults to
// [slog.LevelInfo], or to Debug or Warn with the debug or release
// build tags.
var UserLevel = defaultUserLevel

// UseColor is whether to use color in log messages. It is on by default
// and only takes effect when the output supports color.
var UseColor = true

// levelColors are the ANSI colors used for each level tag.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "4", // blue
	slog.LevelInfo:  "2", // green
	slog.LevelWarn:  "3", // yellow
	slog.LevelError: "1", // red
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options: -vv for Debug, -v for Info, -q for Error.
// The default is Warn for non-verbose command output.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Handler is a [slog.Handler] that writes each record as a colored
// level tag followed by the logfmt text of the record, without a time.
type Handler struct {
	out   *termenv.Output
	w     io.Writer
	mu    *sync.Mutex
	buf   *bytes.Buffer
	inner slog.Handler
}

// NewHandler returns a new [Handler] writing to w at [UserLevel].
// The color profile is detected from w unless given in opts.
func NewHandler(w io.Writer, opts ...termenv.OutputOption) *Handler {
	h := &Handler{
		out: termenv.NewOutput(w, opts...),
		w:   w,
		mu:  &sync.Mutex{},
		buf: &bytes.Buffer{},
	}
	h.inner = slog.NewTextHandler(h.buf, &slog.HandlerOptions{
		Level: levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.LevelKey || a.Key == slog.TimeKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	return h
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}
	tag := h.out.String(r.Level.String())
	if c, has := levelColors[r.Level]; has && UseColor {
		tag = tag.Foreground(h.out.Color(c)).Bold()
	}
	if _, err := io.WriteString(h.w, tag.String()+" "); err != nil {
		return err
	}
	_, err := h.w.Write(h.buf.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.inner = h.inner.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.inner = h.inner.WithGroup(name)
	return &nh
}

// SetDefaultLogger sets the default [slog] logger to one
// writing colored text to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// levelVar reports [UserLevel] at each call, so changes to it
// take effect on loggers that were already created.
type levelVar struct{}

func (levelVar) Level() slog.Level { return UserLevel }
