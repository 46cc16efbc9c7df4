// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners holds the handler functions registered on a widget
// for each event type. The zero value is ready to use.
type Listeners map[Types][]func(e Event)

// Add registers fun for events of the given type.
func (ls *Listeners) Add(typ Types, fun func(e Event)) {
	if *ls == nil {
		*ls = Listeners{}
	}
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call passes e to the functions registered for its type, the most
// recently added first, until one of them marks e as handled. Later
// registrations can thus override earlier ones. It returns whether
// e is handled. An event that is already handled is not passed on.
func (ls Listeners) Call(e Event) bool {
	fns := ls[e.Type()]
	for i := len(fns) - 1; i >= 0 && !e.IsHandled(); i-- {
		fns[i](e)
	}
	return e.IsHandled()
}
