// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import (
	"strconv"
	"strings"
)

var (
	ssrcRegex      = mustCompile(`^ssrc:(` + num + `) (` + sdpToken + `)(?::(` + anyNonWS + `)(?: (` + rest + `))?)?$`)
	ssrcGroupRegex = mustCompile(`^ssrc-group:(SIM|FID|FEC|FEC-FR) (` + num + `(?: ` + num + `)*)$`)
)

// SsrcLine a=ssrc:<ssrc-id> <attribute>[:<value>[ <data>]]
// https://datatracker.ietf.org/doc/html/rfc5576#section-4.1
type SsrcLine struct {
	SSRC      uint32
	Attribute string
	// Value is empty when attribute has none, ex. "cname" value
	Value string
	// Data is the rest after value, ex. track id of msid
	Data string
}

func ParseSsrcLine(value string) (*SsrcLine, bool) {
	m, ok := match(ssrcRegex, value)
	if !ok {
		return nil, false
	}
	ssrc, ok := atou32(m[0])
	if !ok {
		return nil, false
	}
	return &SsrcLine{SSRC: ssrc, Attribute: m[1], Value: m[2], Data: m[3]}, true
}

func (l *SsrcLine) SDPLine() string {
	s := "a=ssrc:" + strconv.FormatUint(uint64(l.SSRC), 10) + " " + l.Attribute
	if l.Value != "" {
		s += ":" + l.Value
		if l.Data != "" {
			s += " " + l.Data
		}
	}
	return s
}

type SsrcGroupSemantics string

const (
	SsrcGroupSIM   SsrcGroupSemantics = "SIM"
	SsrcGroupFID   SsrcGroupSemantics = "FID"
	SsrcGroupFEC   SsrcGroupSemantics = "FEC"
	SsrcGroupFECFR SsrcGroupSemantics = "FEC-FR"
)

// SsrcGroupLine a=ssrc-group:<semantics> <ssrc-id> ...
// https://datatracker.ietf.org/doc/html/rfc5576#section-4.2
type SsrcGroupLine struct {
	Semantics SsrcGroupSemantics
	SSRCs     []uint32
}

func ParseSsrcGroupLine(value string) (*SsrcGroupLine, bool) {
	m, ok := match(ssrcGroupRegex, value)
	if !ok {
		return nil, false
	}
	fields := strings.Split(m[1], " ")
	ssrcs := make([]uint32, 0, len(fields))
	for _, f := range fields {
		ssrc, ok := atou32(f)
		if !ok {
			return nil, false
		}
		ssrcs = append(ssrcs, ssrc)
	}
	return &SsrcGroupLine{Semantics: SsrcGroupSemantics(m[0]), SSRCs: ssrcs}, true
}

func (l *SsrcGroupLine) SDPLine() string {
	var sb strings.Builder
	sb.WriteString("a=ssrc-group:")
	sb.WriteString(string(l.Semantics))
	for _, ssrc := range l.SSRCs {
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatUint(uint64(ssrc), 10))
	}
	return sb.String()
}
