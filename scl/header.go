// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	"encoding/binary"

	"github.com/rieck/stepcounter-devel/support/byteslicereader"
	"github.com/rieck/stepcounter-devel/support/fmtutil"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

const (
	// Magic is the little-endian 16-bit signature that every capture starts
	// with.
	Magic uint16 = 0x4223

	// HeaderSize is the fixed size of the magic bytes plus the configuration
	// header. There are no optional or variable-length header fields.
	HeaderSize = 16
)

// ParseHeader validates the magic bytes and unpacks the configuration
// header, consuming exactly HeaderSize bytes from r.
//
// A capture that does not start with Magic fails with ErrInvalidMagic.
// Unmapped enumeration codes are not an error; they are preserved in the
// returned DeviceConfig.
func ParseHeader(r *byteslicereader.R) (*DeviceConfig, error) {
	magic, err := r.Next(2)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidMagic, "capture shorter than magic bytes")
	}
	if v := binary.LittleEndian.Uint16(magic); v != Magic {
		return nil, errors.Wrapf(ErrInvalidMagic, "got %s, want 0x%04X", fmtutil.HexSlice(magic), Magic)
	}

	var cfg DeviceConfig
	if err := struc.Unpack(r, &cfg); err != nil {
		return nil, errors.Wrap(err, "could not unpack configuration header")
	}
	return &cfg, nil
}
