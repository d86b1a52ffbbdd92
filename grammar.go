// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"strings"

	"github.com/emiago/sdpmunge/lines"
)

// Grammar maps line type, the character before '=', to ordered list of parsers.
// Parsers are tried in order they were added and first that recognizes the line wins.
//
// Grammar is not safe for concurrent modification. Build it once with AddParser
// and then it can be shared by any number of goroutines parsing. Calling AddParser
// while the same grammar is used for parsing is not allowed.
type Grammar struct {
	parsers map[byte][]lines.Parser
}

// NewGrammar creates empty grammar. Every line parsed with it is UnknownLine.
func NewGrammar() *Grammar {
	return &Grammar{parsers: make(map[byte][]lines.Parser)}
}

// NewDefaultGrammar creates grammar with all line formats of lines package.
// Use it as a base for adding custom parsers.
func NewDefaultGrammar() *Grammar {
	g := NewGrammar()
	g.AddParser('v', lines.AsParser(lines.ParseVersionLine))
	g.AddParser('o', lines.AsParser(lines.ParseOriginLine))
	g.AddParser('s', lines.AsParser(lines.ParseSessionNameLine))
	g.AddParser('i', lines.AsParser(lines.ParseSessionInformationLine))
	g.AddParser('c', lines.AsParser(lines.ParseConnectionLine))
	g.AddParser('b', lines.AsParser(lines.ParseBandwidthLine))
	g.AddParser('t', lines.AsParser(lines.ParseTimingLine))
	g.AddParser('m', lines.AsParser(lines.ParseMediaLine))

	for _, p := range []lines.Parser{
		lines.AsParser(lines.ParseIceUfragLine),
		lines.AsParser(lines.ParseIcePwdLine),
		lines.AsParser(lines.ParseIceOptionsLine),
		lines.AsParser(lines.ParseCandidateLine),
		lines.AsParser(lines.ParseMidLine),
		lines.AsParser(lines.ParseFingerprintLine),
		lines.AsParser(lines.ParseSetupLine),
		lines.AsParser(lines.ParseDirectionLine),
		lines.AsParser(lines.ParseRtcpMuxLine),
		lines.AsParser(lines.ParseContentLine),
		lines.AsParser(lines.ParseBundleGroupLine),
		lines.AsParser(lines.ParseRtpMapLine),
		lines.AsParser(lines.ParseRtcpFbLine),
		lines.AsParser(lines.ParseFmtpLine),
		lines.AsParser(lines.ParseExtMapLine),
		lines.AsParser(lines.ParseRidLine),
		lines.AsParser(lines.ParseSimulcastLine),
		lines.AsParser(lines.ParseSsrcLine),
		lines.AsParser(lines.ParseSsrcGroupLine),
		lines.AsParser(lines.ParseSctpPortLine),
		lines.AsParser(lines.ParseMaxMessageSizeLine),
	} {
		g.AddParser('a', p)
	}
	return g
}

// defaultGrammar is used by Parse when no grammar is passed. It is never modified.
var defaultGrammar = NewDefaultGrammar()

// AddParser appends parser for line type tag. Already added parsers keep priority.
func (g *Grammar) AddParser(tag byte, p lines.Parser) {
	g.parsers[tag] = append(g.parsers[tag], p)
}

// Parsers returns parsers for line type tag in order they are tried.
func (g *Grammar) Parsers(tag byte) []lines.Parser {
	p := g.parsers[tag]
	return p[:len(p):len(p)]
}

// Clone returns copy of grammar that can be extended without changing g.
func (g *Grammar) Clone() *Grammar {
	c := NewGrammar()
	for tag, p := range g.parsers {
		c.parsers[tag] = append([]lines.Parser(nil), p...)
	}
	return c
}

// ParseLine parses single SDP line, ex. "a=mid:0".
// It never fails. Line that no parser recognizes is returned as UnknownLine with the whole text.
func (g *Grammar) ParseLine(raw string) lines.Line {
	if len(raw) > 2 && raw[1] == '=' {
		value := raw[2:]
		for _, p := range g.parsers[raw[0]] {
			if l, ok := p(value); ok {
				return l
			}
		}
	}
	return &lines.UnknownLine{Value: raw}
}

// Tokenize splits SDP text into lines and parses each of them.
// Both CRLF and LF line endings are accepted. Lines shorter than 3 characters are skipped.
func (g *Grammar) Tokenize(text string) []lines.Line {
	raws := splitLines(text)
	ls := make([]lines.Line, 0, len(raws))
	for _, raw := range raws {
		ls = append(ls, g.ParseLine(raw))
	}
	return ls
}

func splitLines(text string) []string {
	raws := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\r' || r == '\n'
	})
	n := 0
	for _, raw := range raws {
		if len(raw) <= 2 {
			continue
		}
		raws[n] = raw
		n++
	}
	return raws[:n]
}
