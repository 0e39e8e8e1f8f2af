// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package transport unwraps the optional base64 text encoding that capture
// files may be transported in.
//
// Classification is a best-effort heuristic that fails open toward raw
// binary: a misclassified raw file simply fails the magic check during
// decoding, so leniency here is safe.
package transport

import (
	"bytes"
	"encoding/base64"
	"regexp"

	"github.com/pkg/errors"
)

// ErrInvalidBase64 indicates that content classified as base64 could not be
// decoded.
var ErrInvalidBase64 = errors.New("invalid base64 content")

// classifyLines is the number of non-empty leading lines inspected by
// IsBase64.
const classifyLines = 10

// base64Line matches one line of base64 text: payload characters optionally
// followed by up to two padding characters.
var base64Line = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// IsBase64 reports whether data looks like a base64 text wrapping of a
// capture.
//
// Up to the first 10 non-empty lines are inspected; data classifies as
// base64 iff every one of them matches the base64 character class. Binary
// content fails the match and classifies as raw.
func IsBase64(data []byte) bool {
	inspected := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if !base64Line.Match(line) {
			return false
		}
		if inspected++; inspected >= classifyLines {
			break
		}
	}
	return true
}

// Decode returns the raw capture bytes for data.
//
// If data classifies as base64, all whitespace is stripped and the remainder
// is base64-decoded, failing with ErrInvalidBase64 on malformed characters
// or padding. Otherwise data is returned unchanged.
func Decode(data []byte) ([]byte, error) {
	if !IsBase64(data) {
		return data, nil
	}

	stripped := bytes.Join(bytes.Fields(data), nil)
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(stripped)))
	n, err := base64.StdEncoding.Decode(decoded, stripped)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidBase64, err.Error())
	}
	return decoded[:n], nil
}
