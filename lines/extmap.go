// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import "strconv"

var extmapRegex = mustCompile(`^extmap:(` + num + `)(?:/(sendonly|recvonly|sendrecv|inactive))? (` + anyNonWS + `)(?: (` + rest + `))?$`)

// ExtMapLine a=extmap:<value>["/"<direction>] <URI> <extensionattributes>
// https://datatracker.ietf.org/doc/html/rfc8285#section-8
type ExtMapLine struct {
	ID int
	// Direction is empty when not set
	Direction  Direction
	URI        string
	Attributes string
}

func ParseExtMapLine(value string) (*ExtMapLine, bool) {
	m, ok := match(extmapRegex, value)
	if !ok {
		return nil, false
	}
	id, ok := atoi(m[0])
	if !ok {
		return nil, false
	}
	return &ExtMapLine{
		ID:         id,
		Direction:  Direction(m[1]),
		URI:        m[2],
		Attributes: m[3],
	}, true
}

func (l *ExtMapLine) SDPLine() string {
	s := "a=extmap:" + strconv.Itoa(l.ID)
	if l.Direction != "" {
		s += "/" + string(l.Direction)
	}
	s += " " + l.URI
	if l.Attributes != "" {
		s += " " + l.Attributes
	}
	return s
}
