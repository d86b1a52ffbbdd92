// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import (
	"strconv"
	"strings"
)

type MediaType string

const (
	MediaTypeAudio       MediaType = "audio"
	MediaTypeVideo       MediaType = "video"
	MediaTypeApplication MediaType = "application"
)

var mediaRegex = mustCompile(`^(` + sdpToken + `) (` + num + `)(?:/(` + num + `))? (` + anyNonWS + `) (` + rest + `)$`)

// MediaLine represents a media type.
// m=<media> <port>/<number of ports> <proto> <fmt> ...
// https://tools.ietf.org/html/rfc4566#section-5.14
type MediaLine struct {
	Type MediaType
	Port int
	// NumPorts is 0 when m-line has no /<number of ports>
	NumPorts int
	Protocol string
	Formats  []string
}

func ParseMediaLine(value string) (*MediaLine, bool) {
	m, ok := match(mediaRegex, value)
	if !ok {
		return nil, false
	}
	port, ok := atoi(m[1])
	if !ok {
		return nil, false
	}
	numPorts := 0
	if m[2] != "" {
		if numPorts, ok = atoi(m[2]); !ok || numPorts == 0 {
			return nil, false
		}
	}
	formats := strings.Split(m[4], " ")
	for _, f := range formats {
		if f == "" {
			return nil, false
		}
	}
	return &MediaLine{
		Type:     MediaType(m[0]),
		Port:     port,
		NumPorts: numPorts,
		Protocol: m[3],
		Formats:  formats,
	}, true
}

func (l *MediaLine) SDPLine() string {
	ports := strconv.Itoa(l.Port)
	if l.NumPorts > 0 {
		ports += "/" + strconv.Itoa(l.NumPorts)
	}
	return "m=" + string(l.Type) + " " + ports + " " + l.Protocol + " " + strings.Join(l.Formats, " ")
}
