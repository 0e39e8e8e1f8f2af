// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package scl decodes step counter log captures written by the watch's
// accelerometer logging face.
//
// A capture is a single fixed-layout binary blob (all multi-byte integers
// little-endian):
//
//	offset  size  field
//	0       2     magic = 0x4223
//	2       1     version
//	3       1     mode
//	4       1     data_rate
//	5       1     low_power_mode
//	6       1     bwf_mode
//	7       1     range
//	8       1     filter
//	9       1     low_noise
//	10      1     data_type (bitmask: 0x01 XYZ, 0x02 magnitude, 0x04 L1)
//	11      1     index
//	12      4     start_ts (Unix seconds)
//	16      *     repeated { count: u8, count * record }
//	...     1     marker = 0xFF
//	...     2     step_count
//
// Records are either three signed 16-bit axis samples (6 bytes) or one
// unsigned 24-bit magnitude (3 bytes), selected once per capture by the
// data_type flags. The chunk section is terminated by the 0xFF marker,
// immediately followed by the device's step count.
//
// Decode is the main entry point; it performs a single forward pass over a
// fully-buffered capture and returns an immutable Capture.
package scl
