// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

// Package lines holds the SDP line formats understood by sdpmunge.
//
// Every format is a Line implementation paired with a recognizer. A recognizer
// gets the value part of a line, the text after "x=", and either returns the
// typed line or reports that it does not recognize it. SDPLine is the exact
// inverse and includes the one character type prefix.
package lines

import (
	"regexp"
	"strconv"
)

// Line is a single SDP line.
type Line interface {
	// SDPLine returns line in SDP form including type prefix, ex. "a=mid:0"
	SDPLine() string
}

// Parser recognizes the value of an SDP line. It must not keep value.
type Parser func(value string) (Line, bool)

// AsParser converts typed recognizer into Parser that can be registered in grammar.
func AsParser[T Line](fn func(value string) (T, bool)) Parser {
	return func(value string) (Line, bool) {
		l, ok := fn(value)
		if !ok {
			return nil, false
		}
		return l, true
	}
}

// Pieces of the line grammars
const (
	// Any consecutive string of digits
	num = `\d+`
	// SDP token https://www.rfc-editor.org/rfc/rfc8866.html#name-sdp-grammar
	sdpToken = "[!#$%&'*+\\-.^_`{|}~a-zA-Z0-9]+"
	// Any consecutive non whitespace
	anyNonWS = `\S+`
	// Rest of the line, at least one char
	rest = `.+`
)

func mustCompile(expr string) *regexp.Regexp {
	return regexp.MustCompile(expr)
}

// match runs re against value and returns submatches without the full match.
func match(re *regexp.Regexp, value string) ([]string, bool) {
	m := re.FindStringSubmatch(value)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

// Numbers with leading zeros are rejected as they would not be written back the same.
func canonicalNum(s string) bool {
	return len(s) == 1 || (len(s) > 1 && s[0] != '0')
}

func atoi(s string) (int, bool) {
	if !canonicalNum(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func atou32(s string) (uint32, bool) {
	if !canonicalNum(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err == nil
}

func atou64(s string) (uint64, bool) {
	if !canonicalNum(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	return n, err == nil
}
