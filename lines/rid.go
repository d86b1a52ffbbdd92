// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

var ridRegex = mustCompile(`^rid:([\w-]+) (send|recv)(?: (` + rest + `))?$`)

type RidDirection string

const (
	RidSend RidDirection = "send"
	RidRecv RidDirection = "recv"
)

// RidLine a=rid:<rid-id> <direction> [<restrictions>]
// https://datatracker.ietf.org/doc/html/rfc8851
type RidLine struct {
	ID        string
	Direction RidDirection
	// Params are restrictions as text, ex. "pt=99,102;max-width=1280"
	Params string
}

func ParseRidLine(value string) (*RidLine, bool) {
	m, ok := match(ridRegex, value)
	if !ok {
		return nil, false
	}
	return &RidLine{ID: m[0], Direction: RidDirection(m[1]), Params: m[2]}, true
}

func (l *RidLine) SDPLine() string {
	s := "a=rid:" + l.ID + " " + string(l.Direction)
	if l.Params != "" {
		s += " " + l.Params
	}
	return s
}
