// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"github.com/pion/rtcp"
)

// FeedbackPacketFormat maps rtcp-fb value to RTCP packet type and feedback message type (FMT)
// that carries it. ok is false for values without known packet.
// https://datatracker.ietf.org/doc/html/rfc4585#section-6
func FeedbackPacketFormat(fb string) (typ rtcp.PacketType, format uint8, ok bool) {
	switch fb {
	case "nack":
		return rtcp.TypeTransportSpecificFeedback, rtcp.FormatTLN, true
	case "nack pli":
		return rtcp.TypePayloadSpecificFeedback, rtcp.FormatPLI, true
	case "nack sli":
		return rtcp.TypePayloadSpecificFeedback, rtcp.FormatSLI, true
	case "ccm fir":
		return rtcp.TypePayloadSpecificFeedback, rtcp.FormatFIR, true
	case RtcpFbRemb:
		return rtcp.TypePayloadSpecificFeedback, rtcp.FormatREMB, true
	case RtcpFbTwcc:
		return rtcp.TypeTransportSpecificFeedback, rtcp.FormatTCC, true
	}
	return 0, 0, false
}
