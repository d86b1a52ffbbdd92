// SPDX-License-Identifier: MPL-2.0
// SPDX-FileCopyrightText: Copyright (c) 2024, Emir Aganovic

package sdpmunge

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMediaLineInMedia     = errors.New("media line passed to existing media block")
	ErrBundleGroupInMedia   = errors.New("bundle group line not allowed in media block")
	ErrUnknownPayloadType   = errors.New("line for payload type not declared in m-line")
	ErrInvalidPayloadType   = errors.New("invalid payload type")

	ErrDuplicateExtensionID  = errors.New("extension id already in use")
	ErrReservedExtensionID   = errors.New("extension id 0 is reserved")
	ErrExtensionIDOutOfRange = errors.New("extension id out of range")
	ErrExtensionNotFound     = errors.New("extension not found")
)
