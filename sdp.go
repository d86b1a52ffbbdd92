// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

// Package sdpmunge parses SDP into a model that can be inspected and changed
// and writes it back without losing lines it does not understand.
package sdpmunge

import (
	"strings"

	"github.com/emiago/sdpmunge/lines"
)

// SDP is parsed session description. Media are in order of m-lines.
type SDP struct {
	Session SessionDescription
	Media   []MediaDescription
}

// Lines returns all lines, session first and then every media block.
func (s *SDP) Lines() []lines.Line {
	ls := s.Session.Lines()
	for _, m := range s.Media {
		ls = append(ls, m.Lines()...)
	}
	return ls
}

// String serializes SDP. Every line ends with CRLF.
func (s *SDP) String() string {
	var sb strings.Builder
	for _, l := range s.Lines() {
		sb.WriteString(l.SDPLine())
		sb.WriteString("\r\n")
	}
	return sb.String()
}

func (s *SDP) Bytes() []byte {
	return []byte(s.String())
}

// AVMedia returns audio and video media blocks
func (s *SDP) AVMedia() []*AVMediaDescription {
	var av []*AVMediaDescription
	for _, m := range s.Media {
		if a, ok := m.(*AVMediaDescription); ok {
			av = append(av, a)
		}
	}
	return av
}

// FindMid returns media block with mid.
func (s *SDP) FindMid(mid string) (MediaDescription, bool) {
	for _, m := range s.Media {
		if m.Info().Mid == mid {
			return m, true
		}
	}
	return nil, false
}
