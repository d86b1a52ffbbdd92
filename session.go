// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"github.com/emiago/sdpmunge/lines"
)

// SessionDescription are lines before first m-line.
// Nil fields were not present.
type SessionDescription struct {
	Version            *lines.VersionLine
	Origin             *lines.OriginLine
	SessionName        *lines.SessionNameLine
	SessionInformation *lines.SessionInformationLine
	Connection         *lines.ConnectionLine
	Bandwidth          *lines.BandwidthLine
	Timing             *lines.TimingLine
	Groups             []*lines.BundleGroupLine
	// OtherLines are all lines not stored in fields above, in order they were added
	OtherLines []lines.Line
}

// AddLine stores line in its field. Unknown lines and repeated lines go to OtherLines.
func (s *SessionDescription) AddLine(l lines.Line) error {
	if !s.addLine(l) {
		s.OtherLines = append(s.OtherLines, l)
	}
	return nil
}

func (s *SessionDescription) addLine(l lines.Line) bool {
	switch v := l.(type) {
	case *lines.VersionLine:
		return setOnce(&s.Version, v)
	case *lines.OriginLine:
		return setOnce(&s.Origin, v)
	case *lines.SessionNameLine:
		return setOnce(&s.SessionName, v)
	case *lines.SessionInformationLine:
		return setOnce(&s.SessionInformation, v)
	case *lines.ConnectionLine:
		return setOnce(&s.Connection, v)
	case *lines.BandwidthLine:
		return setOnce(&s.Bandwidth, v)
	case *lines.TimingLine:
		return setOnce(&s.Timing, v)
	case *lines.BundleGroupLine:
		s.Groups = append(s.Groups, v)
		return true
	}
	return false
}

// Lines returns session lines in order: v, o, s, i, c, b, t, groups, other lines.
func (s *SessionDescription) Lines() []lines.Line {
	ls := make([]lines.Line, 0, 7+len(s.Groups)+len(s.OtherLines))
	ls = appendNonNil(ls, s.Version)
	ls = appendNonNil(ls, s.Origin)
	ls = appendNonNil(ls, s.SessionName)
	ls = appendNonNil(ls, s.SessionInformation)
	ls = appendNonNil(ls, s.Connection)
	ls = appendNonNil(ls, s.Bandwidth)
	ls = appendNonNil(ls, s.Timing)
	for _, g := range s.Groups {
		ls = append(ls, g)
	}
	return append(ls, s.OtherLines...)
}

// setOnce sets field if empty. Repeated line is not lost, caller keeps it in other lines.
func setOnce[T any](field **T, l *T) bool {
	if *field != nil {
		return false
	}
	*field = l
	return true
}

// appendNonNil skips nil line pointers, which would otherwise be non nil Line
func appendNonNil[L interface {
	comparable
	lines.Line
}](ls []lines.Line, l L) []lines.Line {
	var zero L
	if l == zero {
		return ls
	}
	return append(ls, l)
}
