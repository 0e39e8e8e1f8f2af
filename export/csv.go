// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package export renders decoded captures for external consumers: CSV for
// the analysis pipeline and human-readable summaries for the CLI.
package export

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/rieck/stepcounter-devel/scl"

	"github.com/pkg/errors"
)

// csvHeader returns the column header row for a capture's record shape.
func csvHeader(shape scl.Shape) []string {
	if shape == scl.ShapeXYZ {
		return []string{"Timestamp", "X", "Y", "Z", "Steps"}
	}
	return []string{"Timestamp", "Magnitude", "Steps"}
}

// csvRow renders one reading. The device reports the cumulative step count
// once per capture, so only the first row carries it; every later row
// carries 0.
func csvRow(c *scl.Capture, i int) []string {
	var steps uint16
	if i == 0 {
		steps = c.Steps
	}

	rd := &c.Readings[i]
	ts := strconv.FormatFloat(rd.Timestamp, 'f', -1, 64)
	stepCol := strconv.FormatUint(uint64(steps), 10)

	if c.Shape == scl.ShapeXYZ {
		return []string{
			ts,
			strconv.FormatInt(int64(rd.Vector.X), 10),
			strconv.FormatInt(int64(rd.Vector.Y), 10),
			strconv.FormatInt(int64(rd.Vector.Z), 10),
			stepCol,
		}
	}
	return []string{ts, strconv.FormatUint(uint64(rd.Magnitude), 10), stepCol}
}

// WriteCSV renders c to w, one row per reading.
func WriteCSV(w io.Writer, c *scl.Capture) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader(c.Shape)); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for i := range c.Readings {
		if err := cw.Write(csvRow(c, i)); err != nil {
			return errors.Wrapf(err, "writing CSV row %d", i)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing CSV")
}

// ExportCSV creates path and writes c to it as CSV.
func ExportCSV(path string, c *scl.Capture) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteCSV(bw, c); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "flushing file buffer")
}
