// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package lines

import "errors"

var (
	ErrFmtpParamsInvalid = errors.New("fmtp params invalid")

	ErrSimulcastStreamListEmpty = errors.New("simulcast stream list empty")
	ErrSimulcastLayerListEmpty  = errors.New("simulcast layer list empty")
	ErrSimulcastRidEmpty        = errors.New("simulcast rid empty")
)
