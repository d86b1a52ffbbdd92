// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/emiago/sdpmunge/lines"
	"github.com/pion/rtp"
)

// RTP header extension profiles
// https://datatracker.ietf.org/doc/html/rfc8285#section-4
const (
	ExtensionProfileOneByte uint16 = 0xBEDE
	ExtensionProfileTwoByte uint16 = 0x1000
)

const (
	// https://datatracker.ietf.org/doc/html/rfc8285#section-4.2
	extensionIDOneByteMax = 14
	// https://datatracker.ietf.org/doc/html/rfc8285#section-4.3
	extensionIDTwoByteMax = 255
)

type HeaderExtIDMode int

const (
	// HeaderExtIDModeOneByte all extension ids are in 1-14
	HeaderExtIDModeOneByte HeaderExtIDMode = iota
	// HeaderExtIDModeTwoByte all extension ids are above 14
	HeaderExtIDModeTwoByte
	// HeaderExtIDModeMixed ids are in both ranges
	HeaderExtIDModeMixed
)

func (m HeaderExtIDMode) String() string {
	switch m {
	case HeaderExtIDModeOneByte:
		return "one-byte"
	case HeaderExtIDModeTwoByte:
		return "two-byte"
	case HeaderExtIDModeMixed:
		return "mixed"
	}
	return "unknown"
}

// AVMediaDescription is audio or video media block.
type AVMediaDescription struct {
	MediaInfo

	// Pts are payload types in m-line order
	Pts []int
	// Extensions by extmap id
	Extensions map[int]*lines.ExtMapLine
	Rids       []*lines.RidLine
	Simulcast  *lines.SimulcastLine
	// Codecs by payload type. Every payload type of Pts has codec.
	Codecs     map[int]*CodecInfo
	Direction  lines.Direction
	RtcpMux    bool
	Ssrcs      []*lines.SsrcLine
	SsrcGroups []*lines.SsrcGroupLine
}

// NewAVMediaDescription creates media block with codec for every m-line format.
// Formats must be payload type numbers.
func NewAVMediaDescription(ml *lines.MediaLine) (*AVMediaDescription, error) {
	m := &AVMediaDescription{
		MediaInfo:  newMediaInfo(ml),
		Pts:        make([]int, 0, len(ml.Formats)),
		Extensions: make(map[int]*lines.ExtMapLine),
		Codecs:     make(map[int]*CodecInfo, len(ml.Formats)),
	}
	for _, f := range ml.Formats {
		pt, err := strconv.Atoi(f)
		if err != nil || pt < 0 || strconv.Itoa(pt) != f {
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidPayloadType, f, ml.SDPLine())
		}
		m.Pts = append(m.Pts, pt)
		if _, exists := m.Codecs[pt]; !exists {
			m.Codecs[pt] = NewCodecInfo(pt)
		}
	}
	return m, nil
}

// AddLine stores line in media block.
// Codec lines for payload type not in m-line, invalid extension ids and malformed
// simulcast layers are errors.
func (m *AVMediaDescription) AddLine(l lines.Line) error {
	handled, err := m.MediaInfo.addLine(l)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	handled, err = m.addLine(l)
	if err != nil {
		return err
	}
	if !handled {
		m.OtherLines = append(m.OtherLines, l)
	}
	return nil
}

func (m *AVMediaDescription) addLine(l lines.Line) (bool, error) {
	switch v := l.(type) {
	case *lines.DirectionLine:
		if m.Direction != "" {
			return false, nil
		}
		m.Direction = v.Direction
		return true, nil

	case *lines.ExtMapLine:
		if err := m.checkExtensionID(v.ID); err != nil {
			return false, fmt.Errorf("%q: %w", v.SDPLine(), err)
		}
		if m.Extensions == nil {
			m.Extensions = make(map[int]*lines.ExtMapLine)
		}
		m.Extensions[v.ID] = v
		return true, nil

	case *lines.RidLine:
		m.Rids = append(m.Rids, v)
		return true, nil

	case *lines.RtcpMuxLine:
		if m.RtcpMux {
			return false, nil
		}
		m.RtcpMux = true
		return true, nil

	case *lines.SimulcastLine:
		if err := v.Err(); err != nil {
			return false, fmt.Errorf("%q: %w", v.SDPLine(), err)
		}
		return setOnce(&m.Simulcast, v), nil

	case *lines.RtpMapLine, *lines.FmtpLine, *lines.RtcpFbLine:
		pt := l.(lines.CodecLine).PT()
		codec, ok := m.Codecs[pt]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnknownPayloadType, l.SDPLine())
		}
		return codec.addLine(l)

	case *lines.SsrcLine:
		m.Ssrcs = append(m.Ssrcs, v)
		return true, nil

	case *lines.SsrcGroupLine:
		m.SsrcGroups = append(m.SsrcGroups, v)
		return true, nil
	}
	return false, nil
}

// Lines returns media block in order: m-line, c, b, ICE, fingerprint, setup, mid, rtcp-mux,
// content, extmaps, rids, simulcast, direction, codecs, ssrcs, ssrc groups, other lines.
func (m *AVMediaDescription) Lines() []lines.Line {
	formats := make([]string, len(m.Pts))
	for i, pt := range m.Pts {
		formats[i] = strconv.Itoa(pt)
	}

	ls := m.headLines(formats)
	if m.RtcpMux {
		ls = append(ls, &lines.RtcpMuxLine{})
	}
	ls = appendNonNil(ls, m.Content)
	for _, id := range m.ExtensionIDs() {
		ls = append(ls, m.Extensions[id])
	}
	for _, r := range m.Rids {
		ls = append(ls, r)
	}
	ls = appendNonNil(ls, m.Simulcast)
	if m.Direction != "" {
		ls = append(ls, &lines.DirectionLine{Direction: m.Direction})
	}

	written := make(map[int]struct{}, len(m.Pts))
	for _, pt := range m.Pts {
		if _, ok := written[pt]; ok {
			continue
		}
		written[pt] = struct{}{}
		if c, ok := m.Codecs[pt]; ok {
			ls = append(ls, c.Lines()...)
		}
	}

	for _, s := range m.Ssrcs {
		ls = append(ls, s)
	}
	for _, g := range m.SsrcGroups {
		ls = append(ls, g)
	}
	return append(ls, m.OtherLines...)
}

// Codec returns codec of payload type
func (m *AVMediaDescription) Codec(pt int) (*CodecInfo, bool) {
	c, ok := m.Codecs[pt]
	return c, ok
}

// RemovePt removes codec and all codecs that have it as primary codec, like RTX or RED.
func (m *AVMediaDescription) RemovePt(pt int) {
	remove := []int{pt}
	for _, c := range m.Codecs {
		if c.HasPrimaryCodec && c.PrimaryCodecPT == pt && c.PT != pt {
			remove = append(remove, c.PT)
		}
	}
	for _, p := range remove {
		delete(m.Codecs, p)
	}
	m.Pts = slices.DeleteFunc(m.Pts, func(p int) bool {
		return slices.Contains(remove, p)
	})
}

// ExtensionIDs returns used extension ids sorted
func (m *AVMediaDescription) ExtensionIDs() []int {
	ids := make([]int, 0, len(m.Extensions))
	for id := range m.Extensions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (m *AVMediaDescription) checkExtensionID(id int) error {
	if id == 0 {
		return ErrReservedExtensionID
	}
	if id < 0 || id > extensionIDTwoByteMax {
		return fmt.Errorf("id %d: %w", id, ErrExtensionIDOutOfRange)
	}
	if _, exists := m.Extensions[id]; exists {
		return fmt.Errorf("id %d: %w", id, ErrDuplicateExtensionID)
	}
	return nil
}

// AddExtension adds extension with first free id and returns the id.
// direction and attributes are optional and can be empty.
func (m *AVMediaDescription) AddExtension(uri string, direction lines.Direction, attributes string) (int, error) {
	id := 1
	for _, used := range m.ExtensionIDs() {
		if used != id {
			break
		}
		id++
	}
	if err := m.AddExtensionWithID(id, uri, direction, attributes); err != nil {
		return 0, err
	}
	return id, nil
}

// AddExtensionWithID adds extension with given id. Id 0 is reserved and id must not be in use.
func (m *AVMediaDescription) AddExtensionWithID(id int, uri string, direction lines.Direction, attributes string) error {
	if err := m.checkExtensionID(id); err != nil {
		return err
	}
	if m.Extensions == nil {
		m.Extensions = make(map[int]*lines.ExtMapLine)
	}
	m.Extensions[id] = &lines.ExtMapLine{
		ID:         id,
		Direction:  direction,
		URI:        uri,
		Attributes: attributes,
	}
	return nil
}

// FindExtension returns extension with uri
func (m *AVMediaDescription) FindExtension(uri string) (*lines.ExtMapLine, bool) {
	for _, id := range m.ExtensionIDs() {
		if e := m.Extensions[id]; e.URI == uri {
			return e, true
		}
	}
	return nil, false
}

// HeaderExtIDMode tells which RTP header extension format extension ids need.
// Media block without extensions is one-byte.
func (m *AVMediaDescription) HeaderExtIDMode() HeaderExtIDMode {
	oneByte, twoByte := false, false
	for id := range m.Extensions {
		if id <= extensionIDOneByteMax {
			oneByte = true
		} else {
			twoByte = true
		}
	}
	switch {
	case oneByte && twoByte:
		return HeaderExtIDModeMixed
	case twoByte:
		return HeaderExtIDModeTwoByte
	}
	return HeaderExtIDModeOneByte
}

// ExtensionProfile returns RTP header extension profile able to carry all extension ids.
func (m *AVMediaDescription) ExtensionProfile() uint16 {
	if m.HeaderExtIDMode() == HeaderExtIDModeOneByte {
		return ExtensionProfileOneByte
	}
	return ExtensionProfileTwoByte
}

// SetRTPHeaderExtension sets extension payload on RTP header under id negotiated for uri.
// Header without extensions gets profile from ExtensionProfile.
func (m *AVMediaDescription) SetRTPHeaderExtension(h *rtp.Header, uri string, payload []byte) error {
	ext, ok := m.FindExtension(uri)
	if !ok {
		return fmt.Errorf("%w: %s", ErrExtensionNotFound, uri)
	}
	if !h.Extension {
		h.Extension = true
		h.ExtensionProfile = m.ExtensionProfile()
	}
	return h.SetExtension(uint8(ext.ID), payload)
}
