// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	"encoding/binary"

	"github.com/rieck/stepcounter-devel/support/byteslicereader"
	"github.com/rieck/stepcounter-devel/support/logging"

	"github.com/pkg/errors"
)

// Marker is the sentinel byte that terminates the chunk section.
const Marker byte = 0xFF

// streamState tracks the chunk section state machine.
type streamState int

const (
	// stateStreaming means the stream position is at a chunk boundary.
	stateStreaming streamState = iota
	// stateTerminated means the marker byte has been consumed.
	stateTerminated
)

// ChunkStream reads the repeated chunk section of a capture.
//
// Each chunk is a count byte followed by that many fixed-size records. The
// record shape and the sampling rate are fixed before the first chunk is
// read and never re-examined per record.
type ChunkStream struct {
	// Shape is the record shape for every chunk in the stream.
	Shape Shape

	// Rate is the resolved sampling rate, in Hz. It provides the sub-second
	// part of each record's timestamp.
	Rate float64

	// StartTS is the capture start time in Unix seconds, from the
	// configuration header.
	StartTS uint32

	// Logger, if not nil, receives chunk-level debug traces.
	Logger logging.L

	state streamState

	// chunkIndex is the 0-based ordinal of the next chunk, in order of
	// appearance. Successive chunks are one second apart.
	chunkIndex int
}

// NewChunkStream builds a ChunkStream for cfg, resolving the record shape
// and the sampling rate up front.
func NewChunkStream(cfg *DeviceConfig) (*ChunkStream, error) {
	shape, err := cfg.DataType.Shape()
	if err != nil {
		return nil, errors.Wrapf(err, "data type %s", cfg.DataType)
	}

	rate, err := SampleRate(cfg)
	if err != nil {
		return nil, err
	}

	return &ChunkStream{
		Shape:   shape,
		Rate:    rate,
		StartTS: cfg.StartTS,
	}, nil
}

// Terminated is true once the marker byte has been consumed.
func (cs *ChunkStream) Terminated() bool { return cs.state == stateTerminated }

// ReadAll reads chunks from r until the marker byte, returning every decoded
// reading in stream order.
//
// Reaching the end of the buffer before the marker fails with
// ErrUnterminatedStream.
func (cs *ChunkStream) ReadAll(r *byteslicereader.R) ([]Reading, error) {
	var readings []Reading
	for !cs.Terminated() {
		chunk, err := cs.readChunk(r)
		if err != nil {
			return nil, err
		}
		readings = append(readings, chunk...)
	}

	cs.logger().Debugf("decoded %d readings in %d chunks", len(readings), cs.chunkIndex)
	return readings, nil
}

// readChunk reads the next chunk from r. If the stream position holds the
// marker instead, it is consumed and the stream transitions to terminated,
// returning no readings.
func (cs *ChunkStream) readChunk(r *byteslicereader.R) ([]Reading, error) {
	b, err := r.PeekByte()
	if err != nil {
		return nil, errors.Wrapf(ErrUnterminatedStream, "end of capture at offset %d", r.Pos())
	}
	if b == Marker {
		// Consume the marker; the step count follows.
		_, _ = r.ReadByte()
		cs.state = stateTerminated
		return nil, nil
	}

	count, _ := r.ReadByte()
	base := float64(cs.StartTS) + float64(cs.chunkIndex)

	readings := make([]Reading, count)
	for i := range readings {
		rec, err := r.Next(cs.Shape.RecordSize())
		if err != nil {
			return nil, errors.Wrapf(ErrUnterminatedStream,
				"chunk %d record %d/%d at offset %d", cs.chunkIndex, i, count, r.Pos())
		}

		readings[i].Timestamp = base + float64(i)/cs.Rate
		switch cs.Shape {
		case ShapeXYZ:
			readings[i].Vector = decodeVector(rec)
		case ShapeMagnitude:
			readings[i].Magnitude = decodeMagnitude(rec)
		}
	}

	cs.logger().Debugf("chunk %d: %d records", cs.chunkIndex, count)
	cs.chunkIndex++
	return readings, nil
}

func (cs *ChunkStream) logger() logging.L { return logging.Must(cs.Logger) }

// ReadStepCount reads the device-reported step count that immediately
// follows the marker byte.
func ReadStepCount(r *byteslicereader.R) (uint16, error) {
	b, err := r.Next(2)
	if err != nil {
		return 0, errors.Wrapf(ErrTruncatedStepCount, "%d bytes after marker", len(b))
	}
	return binary.LittleEndian.Uint16(b), nil
}
