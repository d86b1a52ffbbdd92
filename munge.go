// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"slices"
	"strings"

	"github.com/emiago/sdpmunge/lines"
)

// Common rtcp-fb values
const (
	RtcpFbRemb = "goog-remb"
	RtcpFbTwcc = "transport-cc"
)

// DisableRtcpFbValue removes rtcp-fb value from all codecs of media
func DisableRtcpFbValue(fb string, media ...*AVMediaDescription) {
	for _, m := range media {
		for _, c := range m.Codecs {
			c.Feedback = slices.DeleteFunc(c.Feedback, func(f string) bool {
				return f == fb
			})
		}
	}
}

// DisableRemb removes goog-remb feedback
func DisableRemb(media ...*AVMediaDescription) {
	DisableRtcpFbValue(RtcpFbRemb, media...)
}

// DisableTwcc removes transport-cc feedback
func DisableTwcc(media ...*AVMediaDescription) {
	DisableRtcpFbValue(RtcpFbTwcc, media...)
}

// HasCodec checks if media has codec with name. Name is case insensitive.
func HasCodec(name string, m *AVMediaDescription) bool {
	for _, c := range m.Codecs {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// RemoveCodec removes all codecs with name, case insensitive, together with their RTX and RED codecs.
// It reports whether anything was removed.
func RemoveCodec(name string, media ...*AVMediaDescription) bool {
	return RetainCodecsFunc(func(c *CodecInfo) bool {
		return !strings.EqualFold(c.Name, name)
	}, media...)
}

// RetainCodecs keeps only codecs with names in allowed, case insensitive.
// Codecs without rtpmap have no name and are kept.
// It reports whether anything was removed.
func RetainCodecs(allowed []string, media ...*AVMediaDescription) bool {
	return RetainCodecsFunc(func(c *CodecInfo) bool {
		if c.Name == "" {
			return true
		}
		for _, name := range allowed {
			if strings.EqualFold(c.Name, name) {
				return true
			}
		}
		return false
	}, media...)
}

// RetainCodecsFunc removes every codec for which keep returns false.
// Removing is done with RemovePt so dependent codecs are removed as well.
// Removals are logged at debug level with the block logger, see MediaInfo.SetLogger.
// It reports whether anything was removed.
func RetainCodecsFunc(keep func(c *CodecInfo) bool, media ...*AVMediaDescription) bool {
	changed := false
	for _, m := range media {
		for _, pt := range slices.Clone(m.Pts) {
			c, ok := m.Codecs[pt]
			if !ok || keep(c) {
				continue
			}
			m.RemovePt(pt)
			changed = true
			m.logger().Debug().Str("codec", c.String()).Str("mid", m.Mid).Msg("Codec removed")
		}
	}
	return changed
}

// RetainCandidates keeps only candidates with transport in allowed, ex. "udp". Transport is case insensitive.
// It reports whether anything was removed.
func RetainCandidates(allowed []string, media ...MediaDescription) bool {
	return RetainCandidatesFunc(func(c *lines.CandidateLine) bool {
		for _, t := range allowed {
			if strings.EqualFold(c.Transport, t) {
				return true
			}
		}
		return false
	}, media...)
}

// RetainCandidatesFunc removes every candidate for which keep returns false.
// It reports whether anything was removed.
func RetainCandidatesFunc(keep func(c *lines.CandidateLine) bool, media ...MediaDescription) bool {
	changed := false
	for _, m := range media {
		ice := &m.Info().ICE
		n := len(ice.Candidates)
		ice.Candidates = slices.DeleteFunc(ice.Candidates, func(c *lines.CandidateLine) bool {
			return !keep(c)
		})
		if len(ice.Candidates) != n {
			changed = true
		}
	}
	return changed
}

// FindOtherLine returns first line of type T, useful for custom lines in OtherLines.
func FindOtherLine[T lines.Line](ls []lines.Line) (T, bool) {
	for _, l := range ls {
		if t, ok := l.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
