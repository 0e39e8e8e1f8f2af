// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package cli implements the step counter log parser command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rieck/stepcounter-devel/export"
	"github.com/rieck/stepcounter-devel/scl"
	"github.com/rieck/stepcounter-devel/support/fmtutil"
	"github.com/rieck/stepcounter-devel/support/logging"
	"github.com/rieck/stepcounter-devel/transport"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	csvExport = pflag.StringP("csv-export", "c", "", "Export the readings to the named CSV file.")
	verbose   = pflag.BoolP("verbose", "v", false, "Enable debug logging.")
)

// Main is the main entry point. It returns the process exit code.
func Main() int {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input>\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Parse a binary step counter capture, raw or base64-encoded.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		return 2
	}

	logger := buildLogger(*verbose)
	if err := run(logger, pflag.Arg(0), *csvExport); err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	return 0
}

// buildLogger constructs the zap logger backing logging.L.
func buildLogger(verbose bool) logging.L {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return logging.Nop
	}
	return logger.Sugar()
}

// run decodes the capture at input, prints its reports, and optionally
// exports CSV.
//
// A missing or unreadable input is an error like any other; the process
// exits non-zero rather than printing and succeeding.
func run(l logging.L, input, csvPath string) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrapf(err, "reading input %s", input)
	}

	data, err := transport.Decode(raw)
	if err != nil {
		return errors.Wrapf(err, "unwrapping %s", input)
	}
	l.Debugf("capture is %d bytes, leading bytes:\n%s",
		len(data), fmtutil.Hex(data[:min(len(data), 32)]))

	d := scl.Decoder{Logger: l}
	capture, err := d.Decode(data)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", input)
	}

	export.WriteHeaderSummary(os.Stdout, capture.Config)
	export.WriteReadingsSummary(os.Stdout, capture)

	if csvPath != "" {
		if err := export.ExportCSV(csvPath, capture); err != nil {
			return err
		}
		l.Infof("exported %d readings to %s", len(capture.Readings), csvPath)
	}
	return nil
}
