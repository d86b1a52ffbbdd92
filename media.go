// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"fmt"

	"github.com/emiago/sdpmunge/lines"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MediaDescription is media block opened by m-line.
// It is either *AVMediaDescription or *ApplicationMediaDescription.
type MediaDescription interface {
	// AddLine stores line in media block. Lines that block does not know end in OtherLines.
	AddLine(l lines.Line) error
	// Lines returns lines of media block starting with m-line
	Lines() []lines.Line
	// Info returns fields shared by all media blocks
	Info() *MediaInfo
}

// MediaInfo are fields every media block has.
// Empty or nil fields were not present.
type MediaInfo struct {
	Type     lines.MediaType
	Port     int
	NumPorts int
	Protocol string

	Mid         string
	ICE         ICEInfo
	Fingerprint *lines.FingerprintLine
	Setup       lines.Setup
	Bandwidth   *lines.BandwidthLine
	Connection  *lines.ConnectionLine
	Content     *lines.ContentLine

	// OtherLines are all lines not stored in fields, in order they were added
	OtherLines []lines.Line

	log *zerolog.Logger
}

func newMediaInfo(ml *lines.MediaLine) MediaInfo {
	return MediaInfo{
		Type:     ml.Type,
		Port:     ml.Port,
		NumPorts: ml.NumPorts,
		Protocol: ml.Protocol,
	}
}

func (m *MediaInfo) Info() *MediaInfo {
	return m
}

// SetLogger sets logger used by munging helpers on this block.
// Parse sets the logger given with WithLogger. Without it global log.Logger is used.
func (m *MediaInfo) SetLogger(l zerolog.Logger) {
	m.log = &l
}

func (m *MediaInfo) logger() *zerolog.Logger {
	if m.log == nil {
		return &log.Logger
	}
	return m.log
}

// addLine handles lines shared by every media kind and ICE lines.
// Media kinds call it before their own lines.
func (m *MediaInfo) addLine(l lines.Line) (bool, error) {
	switch v := l.(type) {
	case *lines.MediaLine:
		return false, fmt.Errorf("%w: %q", ErrMediaLineInMedia, v.SDPLine())
	case *lines.BundleGroupLine:
		return false, fmt.Errorf("%w: %q", ErrBundleGroupInMedia, v.SDPLine())
	case *lines.ConnectionLine:
		return setOnce(&m.Connection, v), nil
	case *lines.BandwidthLine:
		return setOnce(&m.Bandwidth, v), nil
	case *lines.MidLine:
		if m.Mid != "" {
			return false, nil
		}
		m.Mid = v.Mid
		return true, nil
	case *lines.FingerprintLine:
		return setOnce(&m.Fingerprint, v), nil
	case *lines.SetupLine:
		if m.Setup != "" {
			return false, nil
		}
		m.Setup = v.Setup
		return true, nil
	case *lines.ContentLine:
		return setOnce(&m.Content, v), nil
	}
	return m.ICE.addLine(l), nil
}

// headLines returns m-line, connection, bandwidth, ICE, fingerprint, setup and mid
func (m *MediaInfo) headLines(formats []string) []lines.Line {
	ls := []lines.Line{&lines.MediaLine{
		Type:     m.Type,
		Port:     m.Port,
		NumPorts: m.NumPorts,
		Protocol: m.Protocol,
		Formats:  formats,
	}}
	ls = appendNonNil(ls, m.Connection)
	ls = appendNonNil(ls, m.Bandwidth)
	ls = append(ls, m.ICE.Lines()...)
	ls = appendNonNil(ls, m.Fingerprint)
	if m.Setup != "" {
		ls = append(ls, &lines.SetupLine{Setup: m.Setup})
	}
	if m.Mid != "" {
		ls = append(ls, &lines.MidLine{Mid: m.Mid})
	}
	return ls
}
