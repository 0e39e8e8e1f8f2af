// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	"fmt"
	"time"
)

// Mode is the accelerometer operating mode.
type Mode uint8

const (
	// ModeLowPower is the low power operating mode.
	ModeLowPower Mode = 0
	// ModeHighPerformance is the high performance operating mode.
	ModeHighPerformance Mode = 1
	// ModeOnDemand is the on demand (single conversion) operating mode.
	ModeOnDemand Mode = 2
)

func (m Mode) String() string {
	switch m {
	case ModeLowPower:
		return "Low power"
	case ModeHighPerformance:
		return "High performance"
	case ModeOnDemand:
		return "On demand"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(m))
	}
}

// RateCode is the raw output data rate code from the configuration header.
//
// A RateCode does not translate directly to a sampling rate; see SampleRate.
type RateCode uint8

const (
	// RatePowerDown indicates that the accelerometer is powered down.
	RatePowerDown RateCode = 0
	// RateLow selects the low rate, whose frequency depends on the low power
	// mode.
	RateLow RateCode = 1
	// Rate12_5 selects 12.5 Hz.
	Rate12_5 RateCode = 2
	// Rate25 selects 25 Hz.
	Rate25 RateCode = 3
	// Rate50 selects 50 Hz.
	Rate50 RateCode = 4
)

func (rc RateCode) String() string {
	switch rc {
	case RatePowerDown:
		return "Power down"
	case RateLow:
		return "Low"
	case Rate12_5:
		return "12.5 Hz"
	case Rate25:
		return "25 Hz"
	case Rate50:
		return "50 Hz"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(rc))
	}
}

// LowPowerMode selects the accelerometer's low power resolution mode.
type LowPowerMode uint8

func (lp LowPowerMode) String() string {
	switch lp {
	case 0:
		return "Mode 1 (12-bit)"
	case 1:
		return "Mode 2 (14-bit)"
	case 2:
		return "Mode 3 (14-bit)"
	case 3:
		return "Mode 4 (14-bit)"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(lp))
	}
}

// BandwidthFilter is the bandwidth filter divisor code.
type BandwidthFilter uint8

func (bw BandwidthFilter) String() string {
	switch bw {
	case 0:
		return "Div2"
	case 1:
		return "Div4"
	case 2:
		return "Div10"
	case 3:
		return "Div20"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(bw))
	}
}

// Range is the full-scale measurement range code.
type Range uint8

func (r Range) String() string {
	switch r {
	case 0:
		return "±2g"
	case 1:
		return "±4g"
	case 2:
		return "±8g"
	case 3:
		return "±16g"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(r))
	}
}

// FilterPath selects the accelerometer's filter path.
type FilterPath uint8

func (fp FilterPath) String() string {
	switch fp {
	case 0:
		return "Low pass"
	case 1:
		return "High pass"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(fp))
	}
}

// LowNoise reports whether the low noise configuration is enabled.
type LowNoise uint8

func (ln LowNoise) String() string {
	switch ln {
	case 0:
		return "Disabled"
	case 1:
		return "Enabled"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(ln))
	}
}

// DeviceConfig is the capture's configuration header, written by the
// firmware immediately after the magic bytes.
//
// The struct is its own wire layout: fields are unpacked in declaration
// order, one byte per enumerated field, with struc handling the one
// multi-byte field. Unmapped enum codes are preserved as-is; they only
// surface as UNKNOWN(n) when rendered.
//
//	/**
//	 * Header format (after magic):
//	 * uint8_t version;
//	 * uint8_t mode;
//	 * uint8_t data_rate;
//	 * uint8_t low_power_mode;
//	 * uint8_t bwf_mode;
//	 * uint8_t range;
//	 * uint8_t filter;
//	 * uint8_t low_noise;
//	 * uint8_t data_type;
//	 * uint8_t index;
//	 * uint32_t start_ts;
//	 */
type DeviceConfig struct {
	Version         uint8
	Mode            Mode
	DataRate        RateCode
	LowPowerMode    LowPowerMode
	BandwidthFilter BandwidthFilter
	Range           Range
	Filter          FilterPath
	LowNoise        LowNoise
	DataType        DataType
	Index           uint8

	// StartTS is the capture start time, in Unix seconds.
	StartTS uint32 `struc:",little"`
}

// StartTime returns the capture start timestamp as a time.Time.
func (c *DeviceConfig) StartTime() time.Time {
	return time.Unix(int64(c.StartTS), 0)
}
