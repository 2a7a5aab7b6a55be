package bmp

import (
	"fmt"

	"golang.org/x/exp/mmap"
)

// File is a bitmap opened for reading through a memory map.
type File struct {
	Header
	reader *mmap.ReaderAt
}

// Open maps the file at path and parses its headers.
func Open(path string) (*File, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	header, err := ReadHeader(reader)
	if err != nil {
		reader.Close()
		return nil, err
	}

	if want := int(header.Offset) + header.PixelBytes(); reader.Len() < want {
		reader.Close()
		return nil, fmt.Errorf("%w: file is %d bytes, headers describe %d", ErrInvalidHeader, reader.Len(), want)
	}

	return &File{Header: header, reader: reader}, nil
}

// Pixels returns a copy of the raw pixel data.
func (f *File) Pixels() ([]byte, error) {
	buf := make([]byte, f.PixelBytes())
	if _, err := f.reader.ReadAt(buf, int64(f.Offset)); err != nil {
		return nil, fmt.Errorf("could not read %d pixel bytes at offset %d: %w", len(buf), f.Offset, err)
	}
	return buf, nil
}

// Size is the mapped file length in bytes.
func (f *File) Size() int {
	return f.reader.Len()
}

func (f *File) Close() error {
	return f.reader.Close()
}
