package bmp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	// PixelOffset is where raw pixel data starts.
	PixelOffset = FileHeaderSize + InfoHeaderSize

	// MaxPixelBytes is the largest pixel payload the 32-bit file size field can describe.
	MaxPixelBytes = math.MaxUint32 - PixelOffset

	magic         = "BM"
	bitsPerPixel  = 24
	bytesPerPixel = bitsPerPixel / 8
)

var (
	ErrInvalidHeader = errors.New("bmp: invalid header")
	ErrPixelCount    = errors.New("bmp: pixel buffer does not match dimensions")
)

type fileHeader struct {
	Magic     [2]byte
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	Offset    uint32
}

type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitsPerPixel    uint16
	Compression     uint32
	ImageSize       uint32
	XResolution     int32
	YResolution     int32
	Colors          uint32
	ImportantColors uint32
}

// Header is the decoded pair of bitmap headers.
type Header struct {
	FileSize     uint32
	Offset       uint32
	Width        int
	Height       int
	BitsPerPixel int
	Compression  uint32
}

// PixelBytes is the length of the raw pixel data following the headers.
func (h Header) PixelBytes() int {
	return h.Width * h.Height * bytesPerPixel
}

func newHeaders(width, height int) (fileHeader, infoHeader) {
	fh := fileHeader{
		Size:   uint32(PixelOffset + width*height*bytesPerPixel),
		Offset: PixelOffset,
	}
	copy(fh.Magic[:], magic)

	ih := infoHeader{
		Size:         InfoHeaderSize,
		Width:        int32(width),
		Height:       int32(height),
		Planes:       1,
		BitsPerPixel: bitsPerPixel,
	}
	return fh, ih
}

// ReadHeader parses the 54 header bytes at the start of r.
func ReadHeader(r io.ReaderAt) (Header, error) {
	buf := make([]byte, PixelOffset)
	if _, err := r.ReadAt(buf, 0); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}

	var fh fileHeader
	var ih infoHeader
	br := bytes.NewReader(buf)
	if err := binary.Read(br, binary.LittleEndian, &fh); err != nil {
		return Header{}, err
	}
	if err := binary.Read(br, binary.LittleEndian, &ih); err != nil {
		return Header{}, err
	}

	if string(fh.Magic[:]) != magic {
		return Header{}, fmt.Errorf("%w: magic %q", ErrInvalidHeader, fh.Magic[:])
	}
	if ih.Size != InfoHeaderSize {
		return Header{}, fmt.Errorf("%w: info header size %d", ErrInvalidHeader, ih.Size)
	}
	if ih.BitsPerPixel != bitsPerPixel || ih.Compression != 0 {
		return Header{}, fmt.Errorf("%w: expected uncompressed 24-bit, got %d bits compression %d",
			ErrInvalidHeader, ih.BitsPerPixel, ih.Compression)
	}
	if ih.Width <= 0 || ih.Height <= 0 {
		return Header{}, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidHeader, ih.Width, ih.Height)
	}

	return Header{
		FileSize:     fh.Size,
		Offset:       fh.Offset,
		Width:        int(ih.Width),
		Height:       int(ih.Height),
		BitsPerPixel: int(ih.BitsPerPixel),
		Compression:  ih.Compression,
	}, nil
}
