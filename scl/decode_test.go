// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Decode", func() {
	Context("round trips", func() {
		It("decodes a magnitude capture back to what built it", func() {
			cfg := magnitudeConfig()
			data := newCaptureBuilder(cfg).
				addMagnitudeChunk(100, 200, 300).
				addMagnitudeChunk(400).
				finish(42)

			c, err := Decode(data)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Config).To(Equal(cfg))
			Expect(c.Shape).To(Equal(ShapeMagnitude))
			Expect(c.Rate).To(Equal(12.5))
			Expect(c.Steps).To(Equal(uint16(42)))

			Expect(c.Readings).To(HaveLen(4))
			mags := make([]uint32, len(c.Readings))
			for i, rd := range c.Readings {
				mags[i] = rd.Magnitude
			}
			Expect(mags).To(Equal([]uint32{100, 200, 300, 400}))
		})

		It("decodes an XYZ capture, including negative axes", func() {
			cfg := magnitudeConfig()
			cfg.DataType = DataXYZ
			data := newCaptureBuilder(cfg).
				addXYZChunk(
					Vector3{X: -1, Y: 2, Z: -32768},
					Vector3{X: 32767, Y: 0, Z: -100},
				).
				finish(7)

			c, err := Decode(data)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Shape).To(Equal(ShapeXYZ))
			Expect(c.Steps).To(Equal(uint16(7)))
			Expect(c.Readings).To(HaveLen(2))
			Expect(c.Readings[0].Vector).To(Equal(Vector3{X: -1, Y: 2, Z: -32768}))
			Expect(c.Readings[1].Vector).To(Equal(Vector3{X: 32767, Y: 0, Z: -100}))
		})

		It("decodes an empty capture", func() {
			data := newCaptureBuilder(magnitudeConfig()).finish(0)

			c, err := Decode(data)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Readings).To(BeEmpty())
			Expect(c.Steps).To(Equal(uint16(0)))
			Expect(c.Duration()).To(Equal(0.0))
		})
	})

	Context("timestamps", func() {
		It("combines the chunk ordinal with the in-chunk rate offset", func() {
			// start_ts = 1000, rate = 12.5 Hz.
			data := newCaptureBuilder(magnitudeConfig()).
				addMagnitudeChunk(1, 2, 3).
				addMagnitudeChunk(4).
				finish(0)

			c, err := Decode(data)
			Expect(err).ToNot(HaveOccurred())

			Expect(c.Readings[0].Timestamp).To(Equal(1000.0))
			Expect(c.Readings[1].Timestamp).To(BeNumerically("~", 1000.08, 1e-9))
			Expect(c.Readings[2].Timestamp).To(BeNumerically("~", 1000.16, 1e-9))
			Expect(c.Readings[3].Timestamp).To(Equal(1001.0))
		})

		It("uses the resolved 1.6 Hz low rate", func() {
			cfg := magnitudeConfig()
			cfg.DataRate = RateLow
			cfg.LowPowerMode = 0
			data := newCaptureBuilder(cfg).
				addMagnitudeChunk(1, 2).
				finish(0)

			c, err := Decode(data)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Rate).To(Equal(1.6))
			Expect(c.Readings[1].Timestamp).To(BeNumerically("~", 1000.625, 1e-9))
		})
	})

	Context("structural violations", func() {
		It("yields no readings on a corrupted magic", func() {
			data := newCaptureBuilder(magnitudeConfig()).
				addMagnitudeChunk(1).
				finish(3)
			data[1] = 0x99

			c, err := Decode(data)
			Expect(errors.Cause(err)).To(Equal(ErrInvalidMagic))
			Expect(c).To(BeNil())
		})

		It("propagates an unsupported rate", func() {
			cfg := magnitudeConfig()
			cfg.DataRate = RatePowerDown
			data := newCaptureBuilder(cfg).finish(0)

			_, err := Decode(data)
			Expect(errors.Cause(err)).To(Equal(ErrUnsupportedRate))
		})

		It("propagates a missing marker", func() {
			data := newCaptureBuilder(magnitudeConfig()).
				addMagnitudeChunk(1, 2).
				bytes()

			_, err := Decode(data)
			Expect(errors.Cause(err)).To(Equal(ErrUnterminatedStream))
		})

		It("propagates a truncated step count", func() {
			data := newCaptureBuilder(magnitudeConfig()).
				addMagnitudeChunk(1).
				addRaw(Marker, 0x2A). // only one byte after the marker
				bytes()

			_, err := Decode(data)
			Expect(errors.Cause(err)).To(Equal(ErrTruncatedStepCount))
		})
	})
})
