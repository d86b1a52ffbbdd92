// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFmtpParams(t *testing.T) {
	const h264 = "level-asymmetry-allowed=1;max-br=1000000;max-dpb=63600;packetization-mode=1;profile-level-id=420034"

	t.Run("KeyValues", func(t *testing.T) {
		p, err := ParseFmtpParams(h264)
		require.NoError(t, err)
		assert.Equal(t, []string{"level-asymmetry-allowed", "max-br", "max-dpb", "packetization-mode", "profile-level-id"}, p.Keys())
		v, ok := p.Get("profile-level-id")
		require.True(t, ok)
		assert.Equal(t, "420034", v)
		assert.Equal(t, h264, p.String())
	})

	t.Run("SafariPrefix", func(t *testing.T) {
		p, err := ParseFmtpParams("a=fmtp:97 " + h264)
		require.NoError(t, err)
		assert.Equal(t, 5, p.Len())
		assert.Equal(t, h264, p.String())
	})

	t.Run("Positional", func(t *testing.T) {
		for _, s := range []string{"0/5", "111/111", "0-16", "0-15,66,70"} {
			p, err := ParseFmtpParams(s)
			require.NoError(t, err, s)
			require.Equal(t, 1, p.Len())
			assert.True(t, p.Has(s))
			_, ok := p.Get(s)
			assert.False(t, ok, "positional param has no value")
			assert.Equal(t, s, p.String())
		}
	})

	t.Run("Base64Padding", func(t *testing.T) {
		s := "packetization-mode=1;sprop-parameter-sets=Z0IAH5WoFAFuQA==,aM48gA=="
		p, err := ParseFmtpParams(s)
		require.NoError(t, err)
		v, _ := p.Get("sprop-parameter-sets")
		assert.Equal(t, "Z0IAH5WoFAFuQA==,aM48gA==", v)
		assert.Equal(t, s, p.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{
			"level-asymmetry-allowed=1;max-br=1000000max-dpb=63600;packetization-mode=1",
			"level-asymmetry-allowed=1;max-br=max-dpb=63600;packetization-mode=1",
			"level-asymmetry-allowed=1;max-br;max-dpb=63600;packetization-mode=1",
			"level-asymmetry-allowed=1;max-br=1000000;;max-dpb=63600",
			"level-asymmetry-allowed=1;max-br=;max-dpb=63600",
			"level-asymmetry-allowed=1;=1000000;max-dpb=63600",
			"level-asymmetry-allowed=1;=;max-dpb=63600",
			"level-asymmetry-allowed=1;=max-dpb=63600",
			"a=fmtp:97",
		} {
			_, err := ParseFmtpParams(s)
			assert.ErrorIs(t, err, ErrFmtpParamsInvalid, s)
		}
	})
}

func TestFmtpParamsMerge(t *testing.T) {
	var p FmtpParams
	p.Set("minptime", "10")
	p.Set("useinbandfec", "1")

	other, err := ParseFmtpParams("useinbandfec=0;stereo=1")
	require.NoError(t, err)
	p.Merge(other)

	assert.Equal(t, "minptime=10;useinbandfec=0;stereo=1", p.String())

	p.Delete("minptime")
	assert.Equal(t, "useinbandfec=0;stereo=1", p.String())
	// Delete must not touch params it was copied from
	assert.Equal(t, "useinbandfec=0;stereo=1", other.String())

	p.SetKey("0/5")
	assert.Equal(t, "useinbandfec=0;stereo=1;0/5", p.String())
}
