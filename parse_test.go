// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/emiago/sdpmunge/lines"
	"github.com/emiago/sdpmunge/testdata"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCorpusRoundTrip(t *testing.T) {
	for _, name := range testdata.SDPFiles() {
		t.Run(name, func(t *testing.T) {
			text := testdata.ReadSDP(name)
			sdp, err := Parse(text)
			require.NoError(t, err)

			out := sdp.String()
			// Order may change, but no line is lost or changed
			diff := cmp.Diff(splitLines(text), splitLines(out), cmpopts.SortSlices(func(a, b string) bool { return a < b }))
			assert.Empty(t, diff)

			assert.True(t, strings.HasSuffix(out, "\r\n"))
			assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\n")

			// Serialized output is fixed point
			sdp2, err := Parse(out)
			require.NoError(t, err)
			assert.Equal(t, out, sdp2.String())
		})
	}
}

func TestParseOrdering(t *testing.T) {
	sdp, err := Parse(testdata.ReadSDP("ordering_input.sdp"))
	require.NoError(t, err)
	assert.Equal(t, testdata.ReadSDP("ordering_expected.sdp"), sdp.String())
}

func TestParseChromeOffer(t *testing.T) {
	sdp, err := Parse(testdata.ReadSDP("chrome_a_v_dc_offer.sdp"))
	require.NoError(t, err)

	require.NotNil(t, sdp.Session.Version)
	require.NotNil(t, sdp.Session.Origin)
	assert.Equal(t, "2890844526482350573", sdp.Session.Origin.SessionID)
	require.Len(t, sdp.Session.Groups, 1)
	assert.Equal(t, []string{"0", "1", "2"}, sdp.Session.Groups[0].Mids)

	require.Len(t, sdp.Media, 3)
	assert.Equal(t, lines.MediaTypeAudio, sdp.Media[0].Info().Type)
	assert.Equal(t, lines.MediaTypeVideo, sdp.Media[1].Info().Type)
	assert.Equal(t, lines.MediaTypeApplication, sdp.Media[2].Info().Type)

	audio := sdp.Media[0].(*AVMediaDescription)
	assert.Equal(t, "0", audio.Mid)
	assert.Len(t, audio.Pts, 14)
	assert.True(t, audio.RtcpMux)
	assert.Equal(t, lines.DirectionSendRecv, audio.Direction)
	assert.Equal(t, lines.SetupActpass, audio.Setup)
	require.NotNil(t, audio.ICE.Ufrag)
	require.NotNil(t, audio.Fingerprint)
	assert.Equal(t, "sha-256", audio.Fingerprint.Algorithm)

	opus, ok := audio.Codec(111)
	require.True(t, ok)
	assert.Equal(t, "opus", opus.Name)
	assert.Equal(t, 48000, opus.ClockRate)
	assert.Equal(t, "2", opus.EncodingParams)
	assert.True(t, opus.HasFeedback(RtcpFbTwcc))
	v, _ := opus.FmtpParams.Get("useinbandfec")
	assert.Equal(t, "1", v)

	video := sdp.Media[1].(*AVMediaDescription)
	assert.Len(t, video.Pts, 23)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 10, 11, 13, 14}, video.ExtensionIDs())
	rtx, ok := video.Codec(97)
	require.True(t, ok)
	assert.True(t, rtx.HasPrimaryCodec)
	assert.Equal(t, 96, rtx.PrimaryCodecPT)
	require.Len(t, video.SsrcGroups, 1)
	assert.Equal(t, lines.SsrcGroupFID, video.SsrcGroups[0].Semantics)

	app := sdp.Media[2].(*ApplicationMediaDescription)
	assert.Equal(t, []string{"webrtc-datachannel"}, app.Formats)
	require.NotNil(t, app.SctpPort)
	assert.Equal(t, 5000, app.SctpPort.Port)
	require.NotNil(t, app.MaxMessageSize)
	assert.Equal(t, uint64(262144), app.MaxMessageSize.MaxMessageSize)

	m, ok := sdp.FindMid("1")
	require.True(t, ok)
	assert.Same(t, video, m)
	_, ok = sdp.FindMid("5")
	assert.False(t, ok)
	assert.Len(t, sdp.AVMedia(), 2)
}

func TestParseFirefoxOffer(t *testing.T) {
	sdp, err := Parse(testdata.ReadSDP("ffox_a_v_dc_offer.sdp"))
	require.NoError(t, err)

	// Session level fingerprint is not a session field
	fp, ok := FindOtherLine[*lines.FingerprintLine](sdp.Session.OtherLines)
	require.True(t, ok)
	assert.Equal(t, "sha-256", fp.Algorithm)

	audio := sdp.Media[0].(*AVMediaDescription)
	require.Contains(t, audio.Extensions, 2)
	assert.Equal(t, lines.DirectionRecvOnly, audio.Extensions[2].Direction)
	dtmf, ok := audio.Codec(101)
	require.True(t, ok)
	assert.True(t, dtmf.FmtpParams.Has("0-15"))

	video := sdp.Media[1].(*AVMediaDescription)
	require.Len(t, video.Rids, 3)
	assert.Equal(t, "c", video.Rids[2].ID)
	assert.Equal(t, lines.RidSend, video.Rids[2].Direction)
	require.NotNil(t, video.Simulcast)
	assert.Equal(t, 3, video.Simulcast.Send.Len())
	assert.Equal(t, 0, video.Simulcast.Recv.Len())
}

func TestParseCLinesInMedia(t *testing.T) {
	sdp, err := Parse(testdata.ReadSDP("c_lines_in_media.sdp"))
	require.NoError(t, err)

	require.NotNil(t, sdp.Session.Connection)
	assert.Equal(t, "host.atlanta.example.com", sdp.Session.Connection.Address)
	require.Len(t, sdp.Media, 2)
	require.NotNil(t, sdp.Media[0].Info().Connection)
	assert.Equal(t, "192.0.2.10", sdp.Media[0].Info().Connection.Address)
	assert.Equal(t, "IP6", sdp.Media[1].Info().Connection.AddrType)
}

func TestParseRtcpFeedback(t *testing.T) {
	sdp, err := Parse(testdata.ReadSDP("offer_with_rtcp_feedback.sdp"))
	require.NoError(t, err)

	video := sdp.AVMedia()[0]
	require.NotNil(t, video.Bandwidth)
	assert.Equal(t, lines.BandwidthAS, video.Bandwidth.Type)
	h264, _ := video.Codec(98)
	assert.Equal(t, []string{"nack", "nack pli", "nack sli", "ccm fir", "ccm tmmbr", "goog-remb", "transport-cc"}, h264.Feedback)
	sprop, ok := h264.FmtpParams.Get("sprop-parameter-sets")
	require.True(t, ok)
	assert.Equal(t, "Z0IAKeKQFAe2AtwEBAaQeJEV,aM48gA==", sprop)

	rtx, _ := video.Codec(99)
	assert.Equal(t, 98, rtx.PrimaryCodecPT)
	v, _ := rtx.FmtpParams.Get("rtx-time")
	assert.Equal(t, "3000", v)
}

func TestParseLineEndings(t *testing.T) {
	lf := "v=0\no=- 1 1 IN IP4 127.0.0.1\ns=-\nt=0 0\nm=audio 9 RTP/AVP 0\na=rtpmap:0 PCMU/8000\n"
	crlf := strings.ReplaceAll(lf, "\n", "\r\n")

	s1, err := Parse(lf)
	require.NoError(t, err)
	s2, err := Parse(crlf)
	require.NoError(t, err)
	assert.Equal(t, crlf, s1.String())
	assert.Equal(t, s1.String(), s2.String())
	assert.Equal(t, []byte(crlf), s1.Bytes())

	// Empty lines and short fragments are skipped
	s3, err := Parse("\r\n\r\nv=0\r\n\r\nx\r\ns=-\r\n")
	require.NoError(t, err)
	assert.Equal(t, "v=0\r\ns=-\r\n", s3.String())
}

func TestParseUnknownLines(t *testing.T) {
	text := "v=0\r\nz=2882844526 -1h\r\nk=prompt\r\nm=audio 9 RTP/AVP 0\r\na=rtpmap:0 PCMU/8000\r\nBROKEN LINE\r\na=x-custom:1 2 3\r\n"
	sdp, err := Parse(text)
	require.NoError(t, err)

	require.Len(t, sdp.Session.OtherLines, 2)
	assert.Equal(t, &lines.UnknownLine{Value: "z=2882844526 -1h"}, sdp.Session.OtherLines[0])

	other := sdp.Media[0].Info().OtherLines
	require.Len(t, other, 2)
	assert.Equal(t, "BROKEN LINE", other[0].SDPLine())
	assert.Equal(t, "a=x-custom:1 2 3", other[1].SDPLine())
	assert.Equal(t, text, sdp.String())
}

func TestParseRepeatedLines(t *testing.T) {
	text := "v=0\r\nv=1\r\nm=audio 9 RTP/AVP 0\r\na=mid:a\r\na=mid:b\r\na=rtpmap:0 PCMU/8000\r\na=rtpmap:0 PCMA/8000\r\n"
	sdp, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, 0, sdp.Session.Version.Version)
	require.Len(t, sdp.Session.OtherLines, 1)
	assert.Equal(t, "v=1", sdp.Session.OtherLines[0].SDPLine())

	audio := sdp.AVMedia()[0]
	assert.Equal(t, "a", audio.Mid)
	c, _ := audio.Codec(0)
	assert.Equal(t, "PCMU", c.Name)
	assert.Len(t, audio.OtherLines, 2)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		err  error
	}{
		{"UnknownPayloadType", "v=0\r\nm=video 9 RTP/AVP 96\r\na=rtcp-fb:999 nack\r\n", ErrUnknownPayloadType},
		{"RtpMapUnknownPayloadType", "m=audio 9 RTP/AVP 0\r\na=rtpmap:8 PCMA/8000\r\n", ErrUnknownPayloadType},
		{"BundleGroupInMedia", "v=0\r\nm=audio 9 RTP/AVP 0\r\na=group:BUNDLE 0\r\n", ErrBundleGroupInMedia},
		{"UnsupportedMediaType", "v=0\r\nm=text 9 RTP/AVP 98\r\n", ErrUnsupportedMediaType},
		{"InvalidPayloadType", "v=0\r\nm=audio 9 RTP/AVP 0 abc\r\n", ErrInvalidPayloadType},
		{"InvalidFmtp", "m=audio 9 RTP/AVP 111\r\na=fmtp:111 minptime\r\n", lines.ErrFmtpParamsInvalid},
		{"InvalidApt", "m=video 9 RTP/AVP 97\r\na=fmtp:97 apt=x\r\n", ErrInvalidPayloadType},
		{"ReservedExtensionID", "m=audio 9 RTP/AVP 0\r\na=extmap:0 urn:x\r\n", ErrReservedExtensionID},
		{"ExtensionIDOutOfRange", "m=audio 9 RTP/AVP 0\r\na=extmap:256 urn:x\r\n", ErrExtensionIDOutOfRange},
		{"DuplicateExtensionID", "m=audio 9 RTP/AVP 0\r\na=extmap:1 urn:x\r\na=extmap:1 urn:y\r\n", ErrDuplicateExtensionID},
		{"SimulcastStreamListEmpty", "v=0\r\nm=video 9 RTP/AVP 96\r\na=simulcast:send\r\n", lines.ErrSimulcastStreamListEmpty},
		{"SimulcastLayerListEmpty", "v=0\r\nm=video 9 RTP/AVP 96\r\na=simulcast:send 1;;2\r\n", lines.ErrSimulcastLayerListEmpty},
		{"SimulcastRidEmpty", "v=0\r\nm=video 9 RTP/AVP 96\r\na=simulcast:send 1,~\r\n", lines.ErrSimulcastRidEmpty},
		{"SimulcastPausedRidEmpty", "v=0\r\nm=video 9 RTP/AVP 96\r\na=simulcast:send ~\r\n", lines.ErrSimulcastRidEmpty},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sdp, err := Parse(tc.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, sdp)
		})
	}
}

func TestMediaAddMediaLine(t *testing.T) {
	m, err := NewMediaDescription(&lines.MediaLine{Type: lines.MediaTypeAudio, Port: 9, Protocol: "RTP/AVP", Formats: []string{"0"}})
	require.NoError(t, err)
	err = m.AddLine(&lines.MediaLine{Type: lines.MediaTypeVideo, Port: 9, Protocol: "RTP/AVP", Formats: []string{"96"}})
	assert.ErrorIs(t, err, ErrMediaLineInMedia)

	app, err := NewMediaDescription(&lines.MediaLine{Type: lines.MediaTypeApplication, Port: 9, Protocol: "UDP/DTLS/SCTP", Formats: []string{"webrtc-datachannel"}})
	require.NoError(t, err)
	assert.ErrorIs(t, app.AddLine(&lines.BundleGroupLine{Mids: []string{"0"}}), ErrBundleGroupInMedia)

	m, err = NewMediaDescription(&lines.MediaLine{Type: "message", Port: 9, Protocol: "TCP/MSRP", Formats: []string{"*"}})
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
	assert.Nil(t, m)
}

type fooLine struct {
	Value int
}

func (l *fooLine) SDPLine() string { return "a=foo:" + strconv.Itoa(l.Value) }

func parseFooLine(value string) (*fooLine, bool) {
	v, found := strings.CutPrefix(value, "foo:")
	if !found {
		return nil, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, false
	}
	return &fooLine{Value: n}, true
}

func TestParseCustomGrammar(t *testing.T) {
	text := "v=0\r\nm=audio 9 RTP/AVP 0\r\na=foo:42\r\na=mid:0\r\n"

	g := NewDefaultGrammar().Clone()
	g.AddParser('a', lines.AsParser(parseFooLine))

	sdp, err := Parse(text, WithGrammar(g))
	require.NoError(t, err)
	foo, ok := FindOtherLine[*fooLine](sdp.Media[0].Info().OtherLines)
	require.True(t, ok)
	assert.Equal(t, 42, foo.Value)
	assert.Equal(t, "0", sdp.Media[0].Info().Mid)

	// Default grammar is not changed by clone
	sdp, err = Parse(text)
	require.NoError(t, err)
	_, ok = FindOtherLine[*fooLine](sdp.Media[0].Info().OtherLines)
	assert.False(t, ok)
	u, ok := FindOtherLine[*lines.UnknownLine](sdp.Media[0].Info().OtherLines)
	require.True(t, ok)
	assert.Equal(t, "a=foo:42", u.Value)

	// Empty grammar knows nothing, even m-lines
	ls := NewGrammar().Tokenize(text)
	require.Len(t, ls, 4)
	for _, l := range ls {
		assert.IsType(t, &lines.UnknownLine{}, l)
	}
}

func TestGrammarPriority(t *testing.T) {
	g := NewDefaultGrammar()
	g.AddParser('a', lines.AsParser(func(value string) (*fooLine, bool) {
		return &fooLine{Value: 1}, value == "mid:0"
	}))
	// Catalog mid parser was added first
	assert.IsType(t, &lines.MidLine{}, g.ParseLine("a=mid:0"))

	ps := g.Parsers('a')
	n := len(ps)
	ps = append(ps, lines.AsParser(parseFooLine))
	assert.Len(t, g.Parsers('a'), n)
	assert.Len(t, ps, n+1)

	assert.IsType(t, &lines.UnknownLine{}, g.ParseLine("a:mid=0"))
	assert.IsType(t, &lines.UnknownLine{}, g.ParseLine("a="))
}

type recordObserver struct {
	stats []ParseStats
	errs  []error
}

func (o *recordObserver) ObserveParse(stats ParseStats, err error) {
	o.stats = append(o.stats, stats)
	o.errs = append(o.errs, err)
}

func TestParseObserver(t *testing.T) {
	o := &recordObserver{}
	_, err := Parse(testdata.ReadSDP("chrome_a_v_dc_offer.sdp"), WithObserver(o))
	require.NoError(t, err)
	_, err = Parse("m=text 9 RTP/AVP 0\r\n", WithObserver(o))
	require.Error(t, err)

	require.Len(t, o.stats, 2)
	assert.Equal(t, 173, o.stats[0].Lines)
	assert.Greater(t, o.stats[0].UnknownLines, 0)
	assert.Equal(t, []lines.MediaType{lines.MediaTypeAudio, lines.MediaTypeVideo, lines.MediaTypeApplication}, o.stats[0].Media)
	assert.NoError(t, o.errs[0])

	assert.Equal(t, 1, o.stats[1].Lines)
	assert.Empty(t, o.stats[1].Media)
	assert.ErrorIs(t, o.errs[1], ErrUnsupportedMediaType)
}

func TestParseDebugLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)

	ParseDebug = true
	defer func() { ParseDebug = false }()

	_, err := Parse("v=0\r\na=unknown-thing\r\nm=audio 9 RTP/AVP 0\r\n", WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a=unknown-thing")
	assert.Contains(t, buf.String(), "Media block created")
}

func TestAssemble(t *testing.T) {
	ls := []lines.Line{
		&lines.VersionLine{},
		&lines.MediaLine{Type: lines.MediaTypeAudio, Port: 9, Protocol: "RTP/AVP", Formats: []string{"0"}},
		&lines.RtpMapLine{PayloadType: 0, EncodingName: "PCMU", ClockRate: 8000},
	}
	sdp, err := Assemble(ls)
	require.NoError(t, err)
	assert.Equal(t, "v=0\r\nm=audio 9 RTP/AVP 0\r\na=rtpmap:0 PCMU/8000\r\n", sdp.String())

	_, err = Assemble([]lines.Line{&lines.MediaLine{Type: "text", Port: 9, Protocol: "RTP/AVP", Formats: []string{"0"}}})
	assert.True(t, errors.Is(err, ErrUnsupportedMediaType))
}

func BenchmarkParse(b *testing.B) {
	text := testdata.ReadSDP("chrome_a_v_dc_offer.sdp")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString(b *testing.B) {
	sdp, err := Parse(testdata.ReadSDP("chrome_a_v_dc_offer.sdp"))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sdp.String()
	}
}
