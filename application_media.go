// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"github.com/emiago/sdpmunge/lines"
)

// ApplicationMediaDescription is application media block, usually data channel.
// m=application 9 UDP/DTLS/SCTP webrtc-datachannel
type ApplicationMediaDescription struct {
	MediaInfo

	// Formats are m-line formats as they are
	Formats        []string
	SctpPort       *lines.SctpPortLine
	MaxMessageSize *lines.MaxMessageSizeLine
}

func NewApplicationMediaDescription(ml *lines.MediaLine) *ApplicationMediaDescription {
	return &ApplicationMediaDescription{
		MediaInfo: newMediaInfo(ml),
		Formats:   append([]string(nil), ml.Formats...),
	}
}

func (m *ApplicationMediaDescription) AddLine(l lines.Line) error {
	handled, err := m.MediaInfo.addLine(l)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	switch v := l.(type) {
	case *lines.SctpPortLine:
		handled = setOnce(&m.SctpPort, v)
	case *lines.MaxMessageSizeLine:
		handled = setOnce(&m.MaxMessageSize, v)
	}
	if !handled {
		m.OtherLines = append(m.OtherLines, l)
	}
	return nil
}

// Lines returns media block in order: m-line, c, b, ICE, fingerprint, setup, mid,
// content, sctp-port, max-message-size, other lines.
func (m *ApplicationMediaDescription) Lines() []lines.Line {
	ls := m.headLines(m.Formats)
	ls = appendNonNil(ls, m.Content)
	ls = appendNonNil(ls, m.SctpPort)
	ls = appendNonNil(ls, m.MaxMessageSize)
	return append(ls, m.OtherLines...)
}
