// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	"encoding/binary"
)

// Vector3 is a single three-axis accelerometer sample.
type Vector3 struct {
	X int16
	Y int16
	Z int16
}

// Reading is one decoded motion sample.
//
// Exactly one payload field is meaningful, fixed for the whole capture by
// its Shape: Vector for ShapeXYZ, Magnitude for ShapeMagnitude.
type Reading struct {
	// Timestamp is the sample time in Unix seconds. Whole seconds come from
	// the chunk ordinal, the fraction from the sample's position within its
	// chunk divided by the sampling rate.
	Timestamp float64

	// Vector is the three-axis sample for ShapeXYZ captures.
	Vector Vector3

	// Magnitude is the precomputed scalar magnitude for ShapeMagnitude
	// captures. It is an unsigned 24-bit value, in [0, 1<<24 - 1].
	Magnitude uint32
}

// decodeVector decodes a 6-byte XYZ record.
func decodeVector(b []byte) Vector3 {
	return Vector3{
		X: int16(binary.LittleEndian.Uint16(b[0:2])),
		Y: int16(binary.LittleEndian.Uint16(b[2:4])),
		Z: int16(binary.LittleEndian.Uint16(b[4:6])),
	}
}

// decodeMagnitude decodes a 3-byte magnitude record.
//
// The firmware writes the 24-bit value least significant byte first. There
// is no sign extension; the result is always in [0, 1<<24 - 1].
func decodeMagnitude(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}
