// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

// Package sdpmod connects sdpmunge with other libraries: pion webrtc and sdp,
// sipgo messages, DTLS fingerprints and prometheus.
package sdpmod

import (
	"strconv"
	"strings"

	"github.com/emiago/sdpmunge"
	"github.com/emiago/sdpmunge/lines"
	"github.com/pion/webrtc/v3"
)

// FromSessionDescription parses SDP of pion session description, ex. offer passed from browser.
func FromSessionDescription(desc webrtc.SessionDescription, opts ...sdpmunge.ParseOption) (*sdpmunge.SDP, error) {
	return sdpmunge.Parse(desc.SDP, opts...)
}

// ToSessionDescription serializes munged SDP back to session description of typ,
// ready for SetLocalDescription or SetRemoteDescription.
func ToSessionDescription(s *sdpmunge.SDP, typ webrtc.SDPType) webrtc.SessionDescription {
	return webrtc.SessionDescription{
		Type: typ,
		SDP:  s.String(),
	}
}

// CodecParameters converts codecs of media block in m-line order.
// Codecs without rtpmap are skipped as they have no mime type.
func CodecParameters(m *sdpmunge.AVMediaDescription) []webrtc.RTPCodecParameters {
	params := make([]webrtc.RTPCodecParameters, 0, len(m.Pts))
	seen := make(map[int]struct{}, len(m.Pts))
	for _, pt := range m.Pts {
		if _, ok := seen[pt]; ok {
			continue
		}
		seen[pt] = struct{}{}

		c, ok := m.Codec(pt)
		if !ok || c.Name == "" {
			continue
		}

		var channels uint16
		if c.EncodingParams != "" {
			if n, err := strconv.ParseUint(c.EncodingParams, 10, 16); err == nil {
				channels = uint16(n)
			}
		}

		var feedback []webrtc.RTCPFeedback
		for _, fb := range c.Feedback {
			typ, param, _ := strings.Cut(fb, " ")
			feedback = append(feedback, webrtc.RTCPFeedback{Type: typ, Parameter: param})
		}

		params = append(params, webrtc.RTPCodecParameters{
			RTPCodecCapability: webrtc.RTPCodecCapability{
				MimeType:     string(m.Type) + "/" + c.Name,
				ClockRate:    uint32(c.ClockRate),
				Channels:     channels,
				SDPFmtpLine:  c.FmtpParams.String(),
				RTCPFeedback: feedback,
			},
			PayloadType: webrtc.PayloadType(pt),
		})
	}
	return params
}

// RegisterCodecs registers codecs of media block on media engine,
// so pion negotiates exactly codecs that are left after munging.
func RegisterCodecs(engine *webrtc.MediaEngine, m *sdpmunge.AVMediaDescription) error {
	typ := webrtc.RTPCodecTypeAudio
	if m.Type == lines.MediaTypeVideo {
		typ = webrtc.RTPCodecTypeVideo
	}
	for _, codec := range CodecParameters(m) {
		if err := engine.RegisterCodec(codec, typ); err != nil {
			return err
		}
	}
	return nil
}
