// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import (
	"strconv"
	"strings"
)

var (
	midRegex            = mustCompile(`^mid:(` + anyNonWS + `)$`)
	fingerprintRegex    = mustCompile(`^fingerprint:(` + anyNonWS + `) (` + anyNonWS + `)$`)
	setupRegex          = mustCompile(`^setup:(actpass|active|passive)$`)
	directionRegex      = mustCompile(`^(sendrecv|sendonly|recvonly|inactive)$`)
	rtcpMuxRegex        = mustCompile(`^rtcp-mux$`)
	contentRegex        = mustCompile(`^content:(` + rest + `)$`)
	bundleGroupRegex    = mustCompile(`^group:BUNDLE (` + rest + `)$`)
	sctpPortRegex       = mustCompile(`^sctp-port:(` + num + `)$`)
	maxMessageSizeRegex = mustCompile(`^max-message-size:(` + num + `)$`)
)

// MidLine a=mid:<identification-tag>
type MidLine struct {
	Mid string
}

func ParseMidLine(value string) (*MidLine, bool) {
	m, ok := match(midRegex, value)
	if !ok {
		return nil, false
	}
	return &MidLine{Mid: m[0]}, true
}

func (l *MidLine) SDPLine() string {
	return "a=mid:" + l.Mid
}

// FingerprintLine a=fingerprint:<hash-func> <fingerprint>
// https://datatracker.ietf.org/doc/html/rfc8122#section-5
type FingerprintLine struct {
	// Algorithm is hash function name, ex. sha-256
	Algorithm string
	// Value is colon separated uppercase hex
	Value string
}

func ParseFingerprintLine(value string) (*FingerprintLine, bool) {
	m, ok := match(fingerprintRegex, value)
	if !ok {
		return nil, false
	}
	return &FingerprintLine{Algorithm: m[0], Value: m[1]}, true
}

func (l *FingerprintLine) SDPLine() string {
	return "a=fingerprint:" + l.Algorithm + " " + l.Value
}

type Setup string

const (
	SetupActpass Setup = "actpass"
	SetupActive  Setup = "active"
	SetupPassive Setup = "passive"
)

// SetupLine a=setup:<role>
type SetupLine struct {
	Setup Setup
}

func ParseSetupLine(value string) (*SetupLine, bool) {
	m, ok := match(setupRegex, value)
	if !ok {
		return nil, false
	}
	return &SetupLine{Setup: Setup(m[0])}, true
}

func (l *SetupLine) SDPLine() string {
	return "a=setup:" + string(l.Setup)
}

type Direction string

const (
	DirectionSendRecv Direction = "sendrecv"
	DirectionSendOnly Direction = "sendonly"
	DirectionRecvOnly Direction = "recvonly"
	DirectionInactive Direction = "inactive"
)

// DirectionLine a=sendrecv, a=sendonly, a=recvonly or a=inactive
type DirectionLine struct {
	Direction Direction
}

func ParseDirectionLine(value string) (*DirectionLine, bool) {
	m, ok := match(directionRegex, value)
	if !ok {
		return nil, false
	}
	return &DirectionLine{Direction: Direction(m[0])}, true
}

func (l *DirectionLine) SDPLine() string {
	return "a=" + string(l.Direction)
}

// RtcpMuxLine a=rtcp-mux
type RtcpMuxLine struct{}

func ParseRtcpMuxLine(value string) (*RtcpMuxLine, bool) {
	if !rtcpMuxRegex.MatchString(value) {
		return nil, false
	}
	return &RtcpMuxLine{}, true
}

func (l *RtcpMuxLine) SDPLine() string {
	return "a=rtcp-mux"
}

// ContentLine a=content:<value>[,<value>]
// https://datatracker.ietf.org/doc/html/rfc4796
type ContentLine struct {
	Values []string
}

func ParseContentLine(value string) (*ContentLine, bool) {
	m, ok := match(contentRegex, value)
	if !ok {
		return nil, false
	}
	return &ContentLine{Values: strings.Split(m[0], ",")}, true
}

func (l *ContentLine) SDPLine() string {
	return "a=content:" + strings.Join(l.Values, ",")
}

// BundleGroupLine a=group:BUNDLE <mid> <mid> ...
// It is only valid on session level.
type BundleGroupLine struct {
	Mids []string
}

func ParseBundleGroupLine(value string) (*BundleGroupLine, bool) {
	m, ok := match(bundleGroupRegex, value)
	if !ok {
		return nil, false
	}
	return &BundleGroupLine{Mids: strings.Split(m[0], " ")}, true
}

func (l *BundleGroupLine) SDPLine() string {
	return "a=group:BUNDLE " + strings.Join(l.Mids, " ")
}

// SctpPortLine a=sctp-port:<port>
// https://datatracker.ietf.org/doc/html/rfc8841#section-5
type SctpPortLine struct {
	Port int
}

func ParseSctpPortLine(value string) (*SctpPortLine, bool) {
	m, ok := match(sctpPortRegex, value)
	if !ok {
		return nil, false
	}
	port, ok := atoi(m[0])
	if !ok {
		return nil, false
	}
	return &SctpPortLine{Port: port}, true
}

func (l *SctpPortLine) SDPLine() string {
	return "a=sctp-port:" + strconv.Itoa(l.Port)
}

// MaxMessageSizeLine a=max-message-size:<size>
type MaxMessageSizeLine struct {
	MaxMessageSize uint64
}

func ParseMaxMessageSizeLine(value string) (*MaxMessageSizeLine, bool) {
	m, ok := match(maxMessageSizeRegex, value)
	if !ok {
		return nil, false
	}
	size, ok := atou64(m[0])
	if !ok {
		return nil, false
	}
	return &MaxMessageSizeLine{MaxMessageSize: size}, true
}

func (l *MaxMessageSizeLine) SDPLine() string {
	return "a=max-message-size:" + strconv.FormatUint(l.MaxMessageSize, 10)
}
