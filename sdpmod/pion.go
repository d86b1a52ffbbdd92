// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmod

import (
	"github.com/emiago/sdpmunge"
	"github.com/pion/sdp/v3"
)

// ToPion converts SDP to pion sdp model
func ToPion(s *sdpmunge.SDP) (*sdp.SessionDescription, error) {
	sd := &sdp.SessionDescription{}
	if err := sd.Unmarshal(s.Bytes()); err != nil {
		return nil, err
	}
	return sd, nil
}

// FromPion converts pion sdp model to SDP
func FromPion(sd *sdp.SessionDescription, opts ...sdpmunge.ParseOption) (*sdpmunge.SDP, error) {
	data, err := sd.Marshal()
	if err != nil {
		return nil, err
	}
	return sdpmunge.Parse(string(data), opts...)
}
