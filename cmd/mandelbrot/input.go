// Copyright 2025 go-highway Authors
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

package main

import (
	"bytes"
	"strconv"
)

// action is a viewer command decoded from terminal input.
type action int

const (
	actQuit action = iota + 1
	actZoomIn
	actZoomOut
	actLeft
	actRight
	actUp
	actDown
	actReset
	actScalar
	actBatched
	actVector
	actToggleCompose
	actClick
)

// event is one decoded action. Clicks carry the 0-based cell under the
// pointer.
type event struct {
	act  action
	x, y int
}

// parseInput decodes raw-mode terminal bytes: single-key commands, CSI and
// SS3 arrow keys, and SGR mouse reports (ESC [ < b ; x ; y M). Unknown bytes,
// unknown escape sequences and incomplete sequences are dropped.
func parseInput(b []byte) []event {
	var events []event
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != 0x1b {
			if act, ok := keyActions[c]; ok {
				events = append(events, event{act: act})
			}
			continue
		}
		if i+2 >= len(b) || (b[i+1] != '[' && b[i+1] != 'O') {
			continue
		}
		if act, ok := arrowActions[b[i+2]]; ok {
			events = append(events, event{act: act})
			i += 2
			continue
		}
		if b[i+1] == '[' && b[i+2] == '<' {
			ev, n, ok := parseSGRMouse(b[i+3:])
			if ok {
				events = append(events, ev)
			}
			i += 2 + n
			continue
		}
		if b[i+1] == 'O' {
			i += 2
			continue
		}
		// Unknown CSI: skip parameter and intermediate bytes through the
		// final byte so digits such as the 1 in ESC [ 1 ; 5 A are not read
		// as keys.
		j := i + 2
		for j < len(b) && (b[j] < 0x40 || b[j] > 0x7e) {
			j++
		}
		i = j
	}
	return events
}

var keyActions = map[byte]action{
	'q':  actQuit,
	'Q':  actQuit,
	0x03: actQuit, // ctrl-c; raw mode turns off signal generation
	'+':  actZoomIn,
	'=':  actZoomIn,
	'-':  actZoomOut,
	'_':  actZoomOut,
	'h':  actLeft,
	'l':  actRight,
	'k':  actUp,
	'j':  actDown,
	'r':  actReset,
	'1':  actScalar,
	'2':  actBatched,
	'3':  actVector,
	'c':  actToggleCompose,
}

var arrowActions = map[byte]action{
	'A': actUp,
	'B': actDown,
	'C': actRight,
	'D': actLeft,
}

// parseSGRMouse decodes "b;x;yM" and returns the number of bytes consumed.
// Left press recenters, wheel up and down zoom. Other reports (release,
// motion, other buttons) consume their bytes and yield nothing.
func parseSGRMouse(b []byte) (ev event, n int, ok bool) {
	end := bytes.IndexAny(b, "Mm")
	if end < 0 {
		return event{}, len(b), false
	}
	fields := bytes.Split(b[:end], []byte{';'})
	if len(fields) != 3 {
		return event{}, end + 1, false
	}
	var v [3]int
	for i, f := range fields {
		x, err := strconv.Atoi(string(f))
		if err != nil {
			return event{}, end + 1, false
		}
		v[i] = x
	}
	if b[end] != 'M' {
		return event{}, end + 1, false
	}
	switch v[0] {
	case 0:
		return event{act: actClick, x: v[1] - 1, y: v[2] - 1}, end + 1, true
	case 64:
		return event{act: actZoomIn}, end + 1, true
	case 65:
		return event{act: actZoomOut}, end + 1, true
	}
	return event{}, end + 1, false
}
