// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rieck/stepcounter-devel/scl"
)

// describeDataType renders the data type flags the way the capture reports
// label them.
func describeDataType(dt scl.DataType) string {
	var names []string
	if dt&scl.DataXYZ != 0 {
		names = append(names, "XYZ coordinates")
	}
	if dt&scl.DataMagnitude != 0 {
		names = append(names, "Magnitude")
	}
	if dt&scl.DataL1 != 0 {
		names = append(names, "L1 norm")
	}

	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ", ")
}

// WriteHeaderSummary writes a human-readable report of the configuration
// header to w.
func WriteHeaderSummary(w io.Writer, cfg *scl.DeviceConfig) {
	fmt.Fprintln(w, "Header:")
	fmt.Fprintf(w, "  Version: %d\n", cfg.Version)
	fmt.Fprintln(w, "  Device State:")
	fmt.Fprintf(w, "    Mode: %s\n", cfg.Mode)
	fmt.Fprintf(w, "    Data Rate: %s\n", cfg.DataRate)
	fmt.Fprintf(w, "    Low Power Mode: %s\n", cfg.LowPowerMode)
	fmt.Fprintf(w, "    Bandwidth Filter: %s\n", cfg.BandwidthFilter)
	fmt.Fprintf(w, "    Range: %s\n", cfg.Range)
	fmt.Fprintf(w, "    Filter: %s\n", cfg.Filter)
	fmt.Fprintf(w, "    Low Noise: %s\n", cfg.LowNoise)
	fmt.Fprintf(w, "  Data Type: %s\n", describeDataType(cfg.DataType))
	fmt.Fprintf(w, "  Index: %d\n", cfg.Index)
	fmt.Fprintf(w, "  Start Timestamp: %d (%s)\n",
		cfg.StartTS, cfg.StartTime().Format("2006-01-02 15:04:05"))
}

// WriteReadingsSummary writes a human-readable report of the decoded
// readings to w.
func WriteReadingsSummary(w io.Writer, c *scl.Capture) {
	fmt.Fprintln(w, "Readings:")
	fmt.Fprintf(w, "  Time range: %.2fs\n", c.Duration())
	fmt.Fprintf(w, "  Samples: %d\n", len(c.Readings))

	if c.Shape == scl.ShapeMagnitude && len(c.Readings) > 0 {
		min, max := c.Readings[0].Magnitude, c.Readings[0].Magnitude
		var sum uint64
		for i := range c.Readings {
			m := c.Readings[i].Magnitude
			if m < min {
				min = m
			}
			if m > max {
				max = m
			}
			sum += uint64(m)
		}
		avg := float64(sum) / float64(len(c.Readings))
		fmt.Fprintf(w, "  Magnitudes: %d/%.0f/%d (min/avg/max)\n", min, avg, max)
	}

	fmt.Fprintf(w, "  Steps: %d\n", c.Steps)
}
