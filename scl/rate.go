// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	"github.com/pkg/errors"
)

// sampleRates maps the unambiguous rate codes to their frequency in Hz.
var sampleRates = map[RateCode]float64{
	Rate12_5: 12.5,
	Rate25:   25,
	Rate50:   50,
}

// SampleRate resolves the effective sampling rate, in Hz, for cfg.
//
// The RateLow code does not map to a single frequency: 1.6 Hz exists only in
// low power mode 1 (code 0); in every other low power mode the accelerometer
// runs it at 12.5 Hz. RatePowerDown and unmapped codes fail with
// ErrUnsupportedRate.
//
// The rate is resolved once per decode and is constant for the whole
// capture.
func SampleRate(cfg *DeviceConfig) (float64, error) {
	if cfg.DataRate == RateLow {
		if cfg.LowPowerMode == 0 {
			return 1.6, nil
		}
		return 12.5, nil
	}

	if hz, ok := sampleRates[cfg.DataRate]; ok {
		return hz, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedRate, "code %d", uint8(cfg.DataRate))
}
