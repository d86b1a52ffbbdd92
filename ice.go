// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"github.com/emiago/sdpmunge/lines"
)

// ICEInfo are ICE lines of media block
// https://datatracker.ietf.org/doc/html/rfc8839
type ICEInfo struct {
	Ufrag      *lines.IceUfragLine
	Pwd        *lines.IcePwdLine
	Options    *lines.IceOptionsLine
	Candidates []*lines.CandidateLine
}

func (i *ICEInfo) addLine(l lines.Line) bool {
	switch v := l.(type) {
	case *lines.IceUfragLine:
		return setOnce(&i.Ufrag, v)
	case *lines.IcePwdLine:
		return setOnce(&i.Pwd, v)
	case *lines.IceOptionsLine:
		return setOnce(&i.Options, v)
	case *lines.CandidateLine:
		i.Candidates = append(i.Candidates, v)
		return true
	}
	return false
}

// Lines returns ufrag, pwd, options and candidates
func (i *ICEInfo) Lines() []lines.Line {
	ls := make([]lines.Line, 0, 3+len(i.Candidates))
	ls = appendNonNil(ls, i.Ufrag)
	ls = appendNonNil(ls, i.Pwd)
	ls = appendNonNil(ls, i.Options)
	for _, c := range i.Candidates {
		ls = append(ls, c)
	}
	return ls
}
