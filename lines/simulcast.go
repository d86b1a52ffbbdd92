// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import (
	"fmt"
	"strings"
)

var simulcastRegex = mustCompile(`^simulcast:(send|recv)(?: (` + anyNonWS + `))?(?: (send|recv)(?: (` + anyNonWS + `))?)?$`)

// SimulcastLayer is single rid alternative of a layer.
type SimulcastLayer struct {
	RID    string
	Paused bool
}

func (l SimulcastLayer) String() string {
	if l.Paused {
		return "~" + l.RID
	}
	return l.RID
}

// SimulcastLayerList is list of layers where each layer is list of alternatives.
// "1,~2;3" has two layers, first has alternatives 1 and paused 2.
type SimulcastLayerList struct {
	Layers [][]SimulcastLayer
}

// ParseSimulcastLayerList parses layers of one simulcast direction.
func ParseSimulcastLayerList(s string) (SimulcastLayerList, error) {
	var list SimulcastLayerList
	if strings.TrimSpace(s) == "" {
		return list, ErrSimulcastStreamListEmpty
	}
	for _, token := range strings.Split(s, ";") {
		if token == "" {
			return SimulcastLayerList{}, fmt.Errorf("%q: %w", s, ErrSimulcastLayerListEmpty)
		}
		rids := strings.Split(token, ",")
		alternatives := make([]SimulcastLayer, 0, len(rids))
		for _, rid := range rids {
			if rid == "" || rid == "~" {
				return SimulcastLayerList{}, fmt.Errorf("%q: %w", s, ErrSimulcastRidEmpty)
			}
			paused := rid[0] == '~'
			if paused {
				rid = rid[1:]
			}
			alternatives = append(alternatives, SimulcastLayer{RID: rid, Paused: paused})
		}
		list.Layers = append(list.Layers, alternatives)
	}
	return list, nil
}

// AddLayer adds layer with single alternative
func (l *SimulcastLayerList) AddLayer(layer SimulcastLayer) {
	l.Layers = append(l.Layers, []SimulcastLayer{layer})
}

func (l *SimulcastLayerList) AddLayerWithAlternatives(alternatives ...SimulcastLayer) {
	l.Layers = append(l.Layers, alternatives)
}

func (l SimulcastLayerList) Len() int {
	return len(l.Layers)
}

func (l SimulcastLayerList) String() string {
	var sb strings.Builder
	for i, alternatives := range l.Layers {
		if i > 0 {
			sb.WriteString(";")
		}
		for j, alt := range alternatives {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(alt.String())
		}
	}
	return sb.String()
}

// SimulcastLine a=simulcast:<send|recv> <layers> [<send|recv> <layers>]
// https://datatracker.ietf.org/doc/html/rfc8853#section-5.1
type SimulcastLine struct {
	Send SimulcastLayerList
	Recv SimulcastLayerList

	// recvFirst keeps direction order of parsed line
	recvFirst bool
	// raw and err are set when layer list is malformed
	raw string
	err error
}

// ParseSimulcastLine recognizes directions in any order, but each only once.
// A malformed layer list is still recognized. Its error is reported by Err
// and the line is written back unchanged.
func ParseSimulcastLine(value string) (*SimulcastLine, bool) {
	m, ok := match(simulcastRegex, value)
	if !ok {
		return nil, false
	}
	if m[2] != "" && m[0] == m[2] {
		return nil, false
	}

	l := &SimulcastLine{recvFirst: m[0] == "recv"}
	for i := 0; i < 4 && m[i] != ""; i += 2 {
		list, err := ParseSimulcastLayerList(m[i+1])
		if err != nil {
			return &SimulcastLine{raw: value, err: fmt.Errorf("%s: %w", m[i], err)}, true
		}
		if m[i] == "send" {
			l.Send = list
		} else {
			l.Recv = list
		}
	}
	return l, true
}

// Err returns layer list error of parsed line.
func (l *SimulcastLine) Err() error {
	return l.err
}

func (l *SimulcastLine) SDPLine() string {
	if l.err != nil {
		return "a=" + l.raw
	}
	dirs := make([]string, 0, 2)
	if l.Send.Len() > 0 {
		dirs = append(dirs, "send "+l.Send.String())
	}
	if l.Recv.Len() > 0 {
		dirs = append(dirs, "recv "+l.Recv.String())
	}
	if l.recvFirst && len(dirs) == 2 {
		dirs[0], dirs[1] = dirs[1], dirs[0]
	}
	return "a=simulcast:" + strings.Join(dirs, " ")
}
