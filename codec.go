// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"fmt"
	"strconv"

	"github.com/emiago/sdpmunge/lines"
)

// CodecInfo is everything known about single payload type of media block.
type CodecInfo struct {
	PT int
	// Name is encoding name from rtpmap. It is empty for static payload types without rtpmap.
	Name           string
	ClockRate      int
	EncodingParams string
	FmtpParams     lines.FmtpParams
	// Feedback are rtcp-fb values in order, ex. "nack pli"
	Feedback []string
	// PrimaryCodecPT is payload type from apt param for RTX and RED codecs.
	// Valid only with HasPrimaryCodec.
	PrimaryCodecPT  int
	HasPrimaryCodec bool

	hasRtpMap bool
}

func NewCodecInfo(pt int) *CodecInfo {
	return &CodecInfo{PT: pt}
}

// addLine handles rtpmap, fmtp and rtcp-fb lines. Repeated rtpmap is not handled.
func (c *CodecInfo) addLine(l lines.Line) (bool, error) {
	switch v := l.(type) {
	case *lines.RtpMapLine:
		if c.hasRtpMap {
			return false, nil
		}
		c.hasRtpMap = true
		c.Name = v.EncodingName
		c.ClockRate = v.ClockRate
		c.EncodingParams = v.EncodingParams
		return true, nil

	case *lines.FmtpLine:
		params, err := lines.ParseFmtpParams(v.Params)
		if err != nil {
			return false, fmt.Errorf("codec %d: %w", c.PT, err)
		}
		c.FmtpParams.Merge(params)
		if apt, ok := params.Get("apt"); ok {
			pt, err := strconv.Atoi(apt)
			if err != nil {
				return false, fmt.Errorf("codec %d apt=%q: %w", c.PT, apt, ErrInvalidPayloadType)
			}
			c.PrimaryCodecPT = pt
			c.HasPrimaryCodec = true
		}
		return true, nil

	case *lines.RtcpFbLine:
		c.Feedback = append(c.Feedback, v.Feedback)
		return true, nil
	}
	return false, nil
}

// Lines returns rtpmap, all rtcp-fb and fmtp line if codec has params
func (c *CodecInfo) Lines() []lines.Line {
	ls := make([]lines.Line, 0, 2+len(c.Feedback))
	if c.Name != "" {
		ls = append(ls, &lines.RtpMapLine{
			PayloadType:    c.PT,
			EncodingName:   c.Name,
			ClockRate:      c.ClockRate,
			EncodingParams: c.EncodingParams,
		})
	}
	for _, fb := range c.Feedback {
		ls = append(ls, &lines.RtcpFbLine{PayloadType: c.PT, Feedback: fb})
	}
	if c.FmtpParams.Len() > 0 {
		ls = append(ls, &lines.FmtpLine{PayloadType: c.PT, Params: c.FmtpParams.String()})
	}
	return ls
}

// HasFeedback checks rtcp-fb value, ex. "nack"
func (c *CodecInfo) HasFeedback(fb string) bool {
	for _, f := range c.Feedback {
		if f == fb {
			return true
		}
	}
	return false
}

func (c *CodecInfo) String() string {
	if c.Name == "" {
		return strconv.Itoa(c.PT)
	}
	return strconv.Itoa(c.PT) + "(" + c.Name + "/" + strconv.Itoa(c.ClockRate) + ")"
}
