// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	"github.com/rieck/stepcounter-devel/support/byteslicereader"
	"github.com/rieck/stepcounter-devel/support/logging"
)

// Capture is the fully-decoded contents of one log file.
//
// A Capture is produced in a single forward pass over the input buffer and
// is not mutated afterwards.
type Capture struct {
	// Config is the device configuration header.
	Config *DeviceConfig

	// Shape is the record shape shared by every reading.
	Shape Shape

	// Rate is the resolved sampling rate, in Hz.
	Rate float64

	// Readings is the decoded sample sequence, in stream order.
	Readings []Reading

	// Steps is the device-reported step count for the capture.
	Steps uint16
}

// Duration returns the time spanned by the readings, in seconds. A capture
// with fewer than two readings has a duration of 0.
func (c *Capture) Duration() float64 {
	if len(c.Readings) < 2 {
		return 0
	}
	return c.Readings[len(c.Readings)-1].Timestamp - c.Readings[0].Timestamp
}

// Decoder decodes step counter log captures.
//
// The zero value is a valid Decoder. Decode is a pure function of its input
// bytes, so a single Decoder may be used from multiple goroutines.
type Decoder struct {
	// Logger, if not nil, receives decode-level debug traces.
	Logger logging.L
}

// Decode decodes a complete raw (non-base64) capture.
//
// Any structural violation fails the whole decode; no partial results are
// returned.
func (d *Decoder) Decode(data []byte) (*Capture, error) {
	log := logging.Must(d.Logger)
	r := byteslicereader.R{Buffer: data}

	cfg, err := ParseHeader(&r)
	if err != nil {
		return nil, err
	}
	log.Debugf("header: version=%d data_type=%s rate_code=%s start_ts=%d",
		cfg.Version, cfg.DataType, cfg.DataRate, cfg.StartTS)

	cs, err := NewChunkStream(cfg)
	if err != nil {
		return nil, err
	}
	cs.Logger = d.Logger

	readings, err := cs.ReadAll(&r)
	if err != nil {
		return nil, err
	}

	steps, err := ReadStepCount(&r)
	if err != nil {
		return nil, err
	}

	return &Capture{
		Config:   cfg,
		Shape:    cs.Shape,
		Rate:     cs.Rate,
		Readings: readings,
		Steps:    steps,
	}, nil
}

// Decode decodes a complete raw capture with a default Decoder.
func Decode(data []byte) (*Capture, error) {
	var d Decoder
	return d.Decode(data)
}
