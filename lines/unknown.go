// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

// UnknownLine is any line no parser recognized.
// Value is the whole original line including type prefix and it is written back as is.
type UnknownLine struct {
	Value string
}

func (l *UnknownLine) SDPLine() string {
	return l.Value
}
