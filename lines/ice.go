// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import (
	"strconv"
	"strings"
)

var (
	iceUfragRegex   = mustCompile(`^ice-ufrag:(` + anyNonWS + `)$`)
	icePwdRegex     = mustCompile(`^ice-pwd:(` + anyNonWS + `)$`)
	iceOptionsRegex = mustCompile(`^ice-options:(` + rest + `)$`)
	// https://datatracker.ietf.org/doc/html/rfc8839#section-5.1
	candidateRegex = mustCompile(`^candidate:([a-zA-Z0-9+/]+) (` + num + `) (` + anyNonWS + `) (` + num + `) (` + anyNonWS + `) (` + num + `) typ (` + anyNonWS + `)(?: raddr (` + anyNonWS + `))?(?: rport (` + num + `))?(?: (` + rest + `))?$`)
)

// IceUfragLine a=ice-ufrag:<ufrag>
type IceUfragLine struct {
	Ufrag string
}

func ParseIceUfragLine(value string) (*IceUfragLine, bool) {
	m, ok := match(iceUfragRegex, value)
	if !ok {
		return nil, false
	}
	return &IceUfragLine{Ufrag: m[0]}, true
}

func (l *IceUfragLine) SDPLine() string {
	return "a=ice-ufrag:" + l.Ufrag
}

// IcePwdLine a=ice-pwd:<password>
type IcePwdLine struct {
	Pwd string
}

func ParseIcePwdLine(value string) (*IcePwdLine, bool) {
	m, ok := match(icePwdRegex, value)
	if !ok {
		return nil, false
	}
	return &IcePwdLine{Pwd: m[0]}, true
}

func (l *IcePwdLine) SDPLine() string {
	return "a=ice-pwd:" + l.Pwd
}

// IceOptionsLine a=ice-options:<option> <option> ...
type IceOptionsLine struct {
	Options []string
}

func ParseIceOptionsLine(value string) (*IceOptionsLine, bool) {
	m, ok := match(iceOptionsRegex, value)
	if !ok {
		return nil, false
	}
	return &IceOptionsLine{Options: strings.Split(m[0], " ")}, true
}

func (l *IceOptionsLine) SDPLine() string {
	return "a=ice-options:" + strings.Join(l.Options, " ")
}

// CandidateLine
// a=candidate:<foundation> <component-id> <transport> <priority> <address> <port> typ <cand-type>
// [raddr <rel-addr>] [rport <rel-port>] *(<extension-att-name> <extension-att-value>)
type CandidateLine struct {
	Foundation    string
	ComponentID   int
	Transport     string
	Priority      uint32
	Address       string
	Port          int
	CandidateType string
	RelAddr       string
	// RelPort is only valid with HasRelPort. Port 0 is common for srflx/relay in browsers
	RelPort    int
	HasRelPort bool
	// Extensions is everything after the known fields, ex. "generation 0 network-id 1"
	Extensions string
}

func ParseCandidateLine(value string) (*CandidateLine, bool) {
	m, ok := match(candidateRegex, value)
	if !ok {
		return nil, false
	}
	c := &CandidateLine{
		Foundation:    m[0],
		Transport:     m[2],
		Address:       m[4],
		CandidateType: m[6],
		RelAddr:       m[7],
		Extensions:    m[9],
	}
	if c.ComponentID, ok = atoi(m[1]); !ok {
		return nil, false
	}
	if c.Priority, ok = atou32(m[3]); !ok {
		return nil, false
	}
	if c.Port, ok = atoi(m[5]); !ok {
		return nil, false
	}
	if m[8] != "" {
		if c.RelPort, ok = atoi(m[8]); !ok {
			return nil, false
		}
		c.HasRelPort = true
	}
	return c, true
}

func (l *CandidateLine) SDPLine() string {
	var sb strings.Builder
	sb.WriteString("a=candidate:")
	sb.WriteString(l.Foundation)
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(l.ComponentID))
	sb.WriteString(" ")
	sb.WriteString(l.Transport)
	sb.WriteString(" ")
	sb.WriteString(strconv.FormatUint(uint64(l.Priority), 10))
	sb.WriteString(" ")
	sb.WriteString(l.Address)
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(l.Port))
	sb.WriteString(" typ ")
	sb.WriteString(l.CandidateType)
	if l.RelAddr != "" {
		sb.WriteString(" raddr ")
		sb.WriteString(l.RelAddr)
	}
	if l.HasRelPort {
		sb.WriteString(" rport ")
		sb.WriteString(strconv.Itoa(l.RelPort))
	}
	if l.Extensions != "" {
		sb.WriteString(" ")
		sb.WriteString(l.Extensions)
	}
	return sb.String()
}
