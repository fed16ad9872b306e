// Package icns reads and writes Apple .icns icon containers.
//
// Layout: the magic "icns", a big-endian uint32 total file length, then
// elements of (4-byte OSType, big-endian uint32 length including the
// 8-byte element header, data). Only PNG-backed element types are written.
package icns

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	magic      = "icns"
	headerSize = 8
)

// Element is one image inside the container.
type Element struct {
	Type string
	Data []byte
}

// Encode writes elems as an .icns container.
func Encode(w io.Writer, elems []Element) error {
	total := headerSize
	for _, e := range elems {
		if len(e.Type) != 4 {
			return fmt.Errorf("element type %q must be 4 bytes", e.Type)
		}
		total += headerSize + len(e.Data)
	}
	if uint64(total) > 0xFFFFFFFF {
		return errors.New("icns container exceeds 4 GiB")
	}

	var buf bytes.Buffer
	buf.Grow(total)
	buf.WriteString(magic)
	binary.Write(&buf, binary.BigEndian, uint32(total))
	for _, e := range elems {
		buf.WriteString(e.Type)
		binary.Write(&buf, binary.BigEndian, uint32(headerSize+len(e.Data)))
		buf.Write(e.Data)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Decode parses an .icns container into its elements.
func Decode(r io.Reader) ([]Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < headerSize || string(data[:4]) != magic {
		return nil, errors.New("not an icns file")
	}
	total := binary.BigEndian.Uint32(data[4:8])
	if int(total) != len(data) {
		return nil, fmt.Errorf("header length %d does not match file size %d", total, len(data))
	}

	var elems []Element
	for off := headerSize; off < len(data); {
		if len(data)-off < headerSize {
			return nil, fmt.Errorf("truncated element header at offset %d", off)
		}
		typ := string(data[off : off+4])
		n := int(binary.BigEndian.Uint32(data[off+4 : off+8]))
		if n < headerSize || off+n > len(data) {
			return nil, fmt.Errorf("element %s at offset %d has bad length %d", typ, off, n)
		}
		elems = append(elems, Element{Type: typ, Data: data[off+headerSize : off+n]})
		off += n
	}
	return elems, nil
}
