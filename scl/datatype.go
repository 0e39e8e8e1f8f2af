// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	"fmt"
	"strings"
)

// Capture data type flags.
const (
	// DataXYZ is the LOG_DATA_XYZ flag: records are three-axis samples.
	DataXYZ DataType = 0x01
	// DataMagnitude is the LOG_DATA_MAG flag: records are scalar magnitudes.
	DataMagnitude DataType = 0x02
	// DataL1 is the LOG_DATA_L1 flag: magnitudes were computed with the L1
	// norm instead of L2. The byte layout is identical to DataMagnitude.
	DataL1 DataType = 0x04
)

var dataTypeNames = []struct {
	flag DataType
	text string
}{
	{DataXYZ, "XYZ"},
	{DataMagnitude, "MAGNITUDE"},
	{DataL1, "L1"},
}

// DataType is the bitmask describing what the firmware logged per record.
type DataType uint8

// HasXYZ is true if records carry three-axis samples.
func (dt DataType) HasXYZ() bool { return dt&DataXYZ != 0 }

// HasMagnitude is true if records carry scalar magnitudes. The L1 flag
// selects the same byte layout, so it counts as a magnitude encoding.
func (dt DataType) HasMagnitude() bool { return dt&(DataMagnitude|DataL1) != 0 }

// Shape resolves the record shape fixed for the whole capture.
//
// Exactly one of the XYZ and magnitude encodings must be selected. Neither
// fails with ErrUnknownDataType. Both fails with ErrAmbiguousDataType, since
// the format does not define how mixed records would be framed.
func (dt DataType) Shape() (Shape, error) {
	switch {
	case dt.HasXYZ() && dt.HasMagnitude():
		return 0, ErrAmbiguousDataType
	case dt.HasXYZ():
		return ShapeXYZ, nil
	case dt.HasMagnitude():
		return ShapeMagnitude, nil
	default:
		return 0, ErrUnknownDataType
	}
}

// String writes a string version of these flags.
//
// Output looks like:
// 0x03(XYZ|MAGNITUDE)
func (dt DataType) String() string {
	flags := make([]string, 0, len(dataTypeNames))
	for _, f := range dataTypeNames {
		if dt&f.flag != 0 {
			flags = append(flags, f.text)
		}
	}

	if len(flags) > 0 {
		return fmt.Sprintf("0x%02X(%s)", uint8(dt), strings.Join(flags, "|"))
	}
	return fmt.Sprintf("0x%02X", uint8(dt))
}

// Shape identifies the record encoding fixed at stream start.
type Shape int

const (
	// ShapeXYZ records are three signed little-endian 16-bit integers.
	ShapeXYZ Shape = iota + 1
	// ShapeMagnitude records are one unsigned little-endian 24-bit integer.
	ShapeMagnitude
)

// RecordSize returns the wire size of a single record of this shape.
func (s Shape) RecordSize() int {
	switch s {
	case ShapeXYZ:
		return 6
	case ShapeMagnitude:
		return 3
	default:
		panic(fmt.Sprintf("invalid shape (%d)", int(s)))
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeXYZ:
		return "XYZ"
	case ShapeMagnitude:
		return "MAGNITUDE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}
