// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	"github.com/pkg/errors"
)

// Decode errors. Every structural violation is fatal to the decode call
// that hit it; no partial results are returned past a violation.
var (
	// ErrInvalidMagic indicates that the capture does not start with the
	// 0x4223 signature.
	ErrInvalidMagic = errors.New("invalid magic bytes")

	// ErrUnsupportedRate indicates a data rate code that the format does not
	// enumerate, including the "power down" code 0.
	ErrUnsupportedRate = errors.New("unsupported data rate")

	// ErrUnknownDataType indicates that neither the XYZ nor a magnitude flag
	// is set in the data_type byte.
	ErrUnknownDataType = errors.New("unknown data type")

	// ErrAmbiguousDataType indicates that the data_type byte selects both the
	// XYZ and a magnitude encoding. The format leaves this combination
	// undefined, so it is rejected rather than resolved by precedence.
	ErrAmbiguousDataType = errors.New("ambiguous data type")

	// ErrUnterminatedStream indicates that the capture ended before the 0xFF
	// marker that closes the chunk section.
	ErrUnterminatedStream = errors.New("unterminated sample stream")

	// ErrTruncatedStepCount indicates that fewer than two bytes follow the
	// marker.
	ErrTruncatedStepCount = errors.New("truncated step count")
)
