// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import (
	"strconv"
)

// Encoding name and clock rate are separated by slash so they can not use anyNonWS
const nonSlashToken = `[^\s/]+`

var (
	rtpmapRegex = mustCompile(`^rtpmap:(` + num + `) (` + nonSlashToken + `)/(` + nonSlashToken + `)(?:/(` + nonSlashToken + `))?$`)
	rtcpFbRegex = mustCompile(`^rtcp-fb:(` + num + `) (` + rest + `)$`)
	fmtpRegex   = mustCompile(`^fmtp:(` + num + `) (` + rest + `)$`)
)

// CodecLine is implemented by lines that belong to single payload type: rtpmap, rtcp-fb and fmtp.
type CodecLine interface {
	Line
	PT() int
}

// RtpMapLine a=rtpmap:<payload type> <encoding name>/<clock rate>[/<encoding parameters>]
// https://tools.ietf.org/html/rfc4566#section-6
type RtpMapLine struct {
	PayloadType  int
	EncodingName string
	ClockRate    int
	// EncodingParams is number of channels for audio
	EncodingParams string
}

func ParseRtpMapLine(value string) (*RtpMapLine, bool) {
	m, ok := match(rtpmapRegex, value)
	if !ok {
		return nil, false
	}
	pt, ok := atoi(m[0])
	if !ok {
		return nil, false
	}
	clockRate, ok := atoi(m[2])
	if !ok {
		return nil, false
	}
	return &RtpMapLine{
		PayloadType:    pt,
		EncodingName:   m[1],
		ClockRate:      clockRate,
		EncodingParams: m[3],
	}, true
}

func (l *RtpMapLine) PT() int { return l.PayloadType }

func (l *RtpMapLine) SDPLine() string {
	s := "a=rtpmap:" + strconv.Itoa(l.PayloadType) + " " + l.EncodingName + "/" + strconv.Itoa(l.ClockRate)
	if l.EncodingParams != "" {
		s += "/" + l.EncodingParams
	}
	return s
}

// RtcpFbLine a=rtcp-fb:<payload type> <feedback>
// https://datatracker.ietf.org/doc/html/rfc4585#section-4.2
type RtcpFbLine struct {
	PayloadType int
	// Feedback is type with optional parameter, ex. "nack pli"
	Feedback string
}

func ParseRtcpFbLine(value string) (*RtcpFbLine, bool) {
	m, ok := match(rtcpFbRegex, value)
	if !ok {
		return nil, false
	}
	pt, ok := atoi(m[0])
	if !ok {
		return nil, false
	}
	return &RtcpFbLine{PayloadType: pt, Feedback: m[1]}, true
}

func (l *RtcpFbLine) PT() int { return l.PayloadType }

func (l *RtcpFbLine) SDPLine() string {
	return "a=rtcp-fb:" + strconv.Itoa(l.PayloadType) + " " + l.Feedback
}

// FmtpLine a=fmtp:<payload type> <format specific parameters>
// Params are kept as text. Use ParseFmtpParams to read them.
type FmtpLine struct {
	PayloadType int
	Params      string
}

func ParseFmtpLine(value string) (*FmtpLine, bool) {
	m, ok := match(fmtpRegex, value)
	if !ok {
		return nil, false
	}
	pt, ok := atoi(m[0])
	if !ok {
		return nil, false
	}
	return &FmtpLine{PayloadType: pt, Params: m[1]}, true
}

func (l *FmtpLine) PT() int { return l.PayloadType }

func (l *FmtpLine) SDPLine() string {
	return "a=fmtp:" + strconv.Itoa(l.PayloadType) + " " + l.Params
}
