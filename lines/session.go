// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import (
	"strconv"
)

var (
	versionRegex    = mustCompile(`^(` + num + `)$`)
	originRegex     = mustCompile(`^(` + anyNonWS + `) (` + anyNonWS + `) (` + num + `) (` + anyNonWS + `) (` + anyNonWS + `) (` + anyNonWS + `)$`)
	timingRegex     = mustCompile(`^(` + num + `) (` + num + `)$`)
	connectionRegex = mustCompile(`^(` + anyNonWS + `) (` + anyNonWS + `) (` + anyNonWS + `)$`)
	bandwidthRegex  = mustCompile(`^(CT|AS|TIAS):(` + num + `)$`)
)

// VersionLine v=<version>
type VersionLine struct {
	Version int
}

func ParseVersionLine(value string) (*VersionLine, bool) {
	m, ok := match(versionRegex, value)
	if !ok {
		return nil, false
	}
	v, ok := atoi(m[0])
	if !ok {
		return nil, false
	}
	return &VersionLine{Version: v}, true
}

func (l *VersionLine) SDPLine() string {
	return "v=" + strconv.Itoa(l.Version)
}

// OriginLine o=<username> <sess-id> <sess-version> <nettype> <addrtype> <unicast-address>
// https://tools.ietf.org/html/rfc4566#section-5.2
type OriginLine struct {
	Username string
	// SessionID is kept as text. Values are commonly bigger than what fits in int64.
	SessionID      string
	SessionVersion uint64
	NetType        string
	AddrType       string
	Address        string
}

func ParseOriginLine(value string) (*OriginLine, bool) {
	m, ok := match(originRegex, value)
	if !ok {
		return nil, false
	}
	ver, ok := atou64(m[2])
	if !ok {
		return nil, false
	}
	return &OriginLine{
		Username:       m[0],
		SessionID:      m[1],
		SessionVersion: ver,
		NetType:        m[3],
		AddrType:       m[4],
		Address:        m[5],
	}, true
}

func (l *OriginLine) SDPLine() string {
	return "o=" + l.Username + " " + l.SessionID + " " + strconv.FormatUint(l.SessionVersion, 10) + " " + l.NetType + " " + l.AddrType + " " + l.Address
}

// SessionNameLine s=<session name>
type SessionNameLine struct {
	Name string
}

func ParseSessionNameLine(value string) (*SessionNameLine, bool) {
	if value == "" {
		return nil, false
	}
	return &SessionNameLine{Name: value}, true
}

func (l *SessionNameLine) SDPLine() string {
	return "s=" + l.Name
}

// SessionInformationLine i=<session description>
type SessionInformationLine struct {
	Info string
}

func ParseSessionInformationLine(value string) (*SessionInformationLine, bool) {
	if value == "" {
		return nil, false
	}
	return &SessionInformationLine{Info: value}, true
}

func (l *SessionInformationLine) SDPLine() string {
	return "i=" + l.Info
}

// TimingLine t=<start-time> <stop-time>
type TimingLine struct {
	Start uint64
	Stop  uint64
}

func ParseTimingLine(value string) (*TimingLine, bool) {
	m, ok := match(timingRegex, value)
	if !ok {
		return nil, false
	}
	start, ok := atou64(m[0])
	if !ok {
		return nil, false
	}
	stop, ok := atou64(m[1])
	if !ok {
		return nil, false
	}
	return &TimingLine{Start: start, Stop: stop}, true
}

func (l *TimingLine) SDPLine() string {
	return "t=" + strconv.FormatUint(l.Start, 10) + " " + strconv.FormatUint(l.Stop, 10)
}

// ConnectionLine c=<nettype> <addrtype> <connection-address>
// https://tools.ietf.org/html/rfc4566#section-5.7
type ConnectionLine struct {
	NetType  string
	AddrType string
	// Address may carry /ttl and /range suffixes for multicast
	Address string
}

func ParseConnectionLine(value string) (*ConnectionLine, bool) {
	m, ok := match(connectionRegex, value)
	if !ok {
		return nil, false
	}
	return &ConnectionLine{NetType: m[0], AddrType: m[1], Address: m[2]}, true
}

func (l *ConnectionLine) SDPLine() string {
	return "c=" + l.NetType + " " + l.AddrType + " " + l.Address
}

type BandwidthType string

const (
	BandwidthCT   BandwidthType = "CT"
	BandwidthAS   BandwidthType = "AS"
	BandwidthTIAS BandwidthType = "TIAS"
)

// BandwidthLine b=<bwtype>:<bandwidth>
type BandwidthLine struct {
	Type      BandwidthType
	Bandwidth int
}

func ParseBandwidthLine(value string) (*BandwidthLine, bool) {
	m, ok := match(bandwidthRegex, value)
	if !ok {
		return nil, false
	}
	bw, ok := atoi(m[1])
	if !ok {
		return nil, false
	}
	return &BandwidthLine{Type: BandwidthType(m[0]), Bandwidth: bw}, true
}

func (l *BandwidthLine) SDPLine() string {
	return "b=" + string(l.Type) + ":" + strconv.Itoa(l.Bandwidth)
}
