// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmod

import (
	"fmt"
	"strings"

	"github.com/emiago/sdpmunge"
	"github.com/emiago/sipgo/sip"
)

const ContentTypeSDP = "application/sdp"

// SIPMessage is sip request or response carrying body
type SIPMessage interface {
	Body() []byte
	SetBody(body []byte)
	GetHeader(name string) sip.Header
	AppendHeader(header sip.Header)
	ReplaceHeader(header sip.Header)
}

// IsSDPBody checks that message has non empty body with Content-Type application/sdp.
// Content type parameters like charset are ignored.
func IsSDPBody(msg SIPMessage) bool {
	if len(msg.Body()) == 0 {
		return false
	}
	h := msg.GetHeader("Content-Type")
	if h == nil {
		return false
	}
	mediaType, _, _ := strings.Cut(h.Value(), ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), ContentTypeSDP)
}

// FromSIPMessage parses SDP body of INVITE, ACK or their responses.
func FromSIPMessage(msg SIPMessage, opts ...sdpmunge.ParseOption) (*sdpmunge.SDP, error) {
	if !IsSDPBody(msg) {
		return nil, ErrNotSDPBody
	}
	s, err := sdpmunge.Parse(string(msg.Body()), opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing sip body: %w", err)
	}
	return s, nil
}

// SetSIPBody sets serialized SDP as message body and sets Content-Type.
// Content-Length is updated by message.
func SetSIPBody(msg SIPMessage, s *sdpmunge.SDP) {
	h := sip.NewHeader("Content-Type", ContentTypeSDP)
	if msg.GetHeader("Content-Type") == nil {
		msg.AppendHeader(h)
	} else {
		msg.ReplaceHeader(h)
	}
	msg.SetBody(s.Bytes())
}
