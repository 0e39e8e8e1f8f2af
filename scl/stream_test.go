// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package scl

import (
	"github.com/rieck/stepcounter-devel/support/byteslicereader"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("ChunkStream", func() {
	Context("shape selection", func() {
		It("selects XYZ from the XYZ flag", func() {
			cfg := magnitudeConfig()
			cfg.DataType = DataXYZ

			cs, err := NewChunkStream(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(cs.Shape).To(Equal(ShapeXYZ))
			Expect(cs.Shape.RecordSize()).To(Equal(6))
		})

		It("selects magnitude from the magnitude flag", func() {
			cs, err := NewChunkStream(magnitudeConfig())
			Expect(err).ToNot(HaveOccurred())
			Expect(cs.Shape).To(Equal(ShapeMagnitude))
			Expect(cs.Shape.RecordSize()).To(Equal(3))
		})

		It("selects magnitude from the L1 flag alone", func() {
			cfg := magnitudeConfig()
			cfg.DataType = DataL1

			cs, err := NewChunkStream(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(cs.Shape).To(Equal(ShapeMagnitude))
		})

		It("rejects a data type with no record flags", func() {
			cfg := magnitudeConfig()
			cfg.DataType = 0

			_, err := NewChunkStream(cfg)
			Expect(errors.Cause(err)).To(Equal(ErrUnknownDataType))
		})

		It("rejects XYZ combined with magnitude", func() {
			cfg := magnitudeConfig()
			cfg.DataType = DataXYZ | DataMagnitude

			_, err := NewChunkStream(cfg)
			Expect(errors.Cause(err)).To(Equal(ErrAmbiguousDataType))
		})

		It("rejects XYZ combined with L1", func() {
			cfg := magnitudeConfig()
			cfg.DataType = DataXYZ | DataL1

			_, err := NewChunkStream(cfg)
			Expect(errors.Cause(err)).To(Equal(ErrAmbiguousDataType))
		})
	})

	Context("reading chunks", func() {
		var cs *ChunkStream

		BeforeEach(func() {
			var err error
			cs, err = NewChunkStream(magnitudeConfig())
			Expect(err).ToNot(HaveOccurred())
		})

		stream := func(data []byte) *byteslicereader.R {
			return &byteslicereader.R{Buffer: data}
		}

		It("terminates immediately on a leading marker", func() {
			r := stream([]byte{0xFF, 0x00, 0x00})
			readings, err := cs.ReadAll(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(readings).To(BeEmpty())
			Expect(cs.Terminated()).To(BeTrue())

			By("leaving the step count unread")
			Expect(r.Remaining()).To(Equal(2))
		})

		It("decodes magnitude bytes unsigned, low byte first", func() {
			r := stream([]byte{
				0x02, // count
				0x01, 0x00, 0x00,
				0xFF, 0xFF, 0xFF,
				0xFF, // marker
			})
			readings, err := cs.ReadAll(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(readings).To(HaveLen(2))
			Expect(readings[0].Magnitude).To(Equal(uint32(1)))
			Expect(readings[1].Magnitude).To(Equal(uint32(16777215)))
		})

		It("fails with ErrUnterminatedStream when the marker never arrives", func() {
			r := stream([]byte{
				0x01,
				0x01, 0x00, 0x00,
			})
			_, err := cs.ReadAll(r)
			Expect(errors.Cause(err)).To(Equal(ErrUnterminatedStream))
		})

		It("fails with ErrUnterminatedStream on a record cut short", func() {
			r := stream([]byte{
				0x02,
				0x01, 0x00, 0x00,
				0x02, 0x00, // second record truncated
			})
			_, err := cs.ReadAll(r)
			Expect(errors.Cause(err)).To(Equal(ErrUnterminatedStream))
		})

		It("advances the chunk ordinal across empty chunks", func() {
			r := stream([]byte{
				0x00,             // chunk 0, no records
				0x01,             // chunk 1
				0x05, 0x00, 0x00, //   one record
				0xFF,
			})
			readings, err := cs.ReadAll(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(readings).To(HaveLen(1))
			Expect(readings[0].Timestamp).To(Equal(1001.0))
		})
	})

	Context("ReadStepCount", func() {
		It("reads a little-endian count", func() {
			r := &byteslicereader.R{Buffer: []byte{0x2A, 0x01}}
			steps, err := ReadStepCount(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(steps).To(Equal(uint16(298)))
		})

		It("fails with ErrTruncatedStepCount on one byte", func() {
			r := &byteslicereader.R{Buffer: []byte{0x2A}}
			_, err := ReadStepCount(r)
			Expect(errors.Cause(err)).To(Equal(ErrTruncatedStepCount))
		})

		It("fails with ErrTruncatedStepCount on no bytes", func() {
			r := &byteslicereader.R{}
			_, err := ReadStepCount(r)
			Expect(errors.Cause(err)).To(Equal(ErrTruncatedStepCount))
		})
	})
})
