// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmod

import "errors"

var (
	ErrNotSDPBody          = errors.New("message body is not application/sdp")
	ErrNoFingerprint       = errors.New("no fingerprint in SDP")
	ErrFingerprintMismatch = errors.New("certificate does not match any fingerprint")
)
