// Package protowire implements a minimal Protocol-Buffers wire reader.
//
// It is deliberately not a deserializer: callers know which field numbers
// they care about and skip everything else by wire type. Messages never
// need a compiled schema.
package protowire

import (
	"errors"
	"fmt"
)

// WireType is the low three bits of a field tag.
type WireType uint64

const (
	TypeVarint WireType = 0
	Type64Bit  WireType = 1
	TypeBytes  WireType = 2
	Type32Bit  WireType = 5
)

// ErrMalformed marks a message that cannot be walked by wire-type rules.
// Callers treat it as fatal for the frame and recoverable for the scan.
var ErrMalformed = errors.New("malformed wire message")

const maxVarintLen = 10

// Cursor walks a single wire-encoded message buffer.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// More reports whether any bytes remain.
func (c *Cursor) More() bool {
	return c.off < len(c.buf)
}

// Tag reads the next field tag and splits it into field number and wire type.
func (c *Cursor) Tag() (uint64, WireType, error) {
	tag, err := c.Varint()
	if err != nil {
		return 0, 0, fmt.Errorf("read tag: %w", err)
	}
	return tag >> 3, WireType(tag & 7), nil
}

// Varint reads one LEB128-encoded value.
func (c *Cursor) Varint() (uint64, error) {
	var value uint64
	for i := 0; i < maxVarintLen; i++ {
		if c.off >= len(c.buf) {
			return 0, fmt.Errorf("varint truncated at offset %d: %w", c.off, ErrMalformed)
		}
		b := c.buf[c.off]
		c.off++
		value |= uint64(b&0x7f) << (7 * i)
		if b < 0x80 {
			return value, nil
		}
	}
	return 0, fmt.Errorf("varint exceeds %d bytes: %w", maxVarintLen, ErrMalformed)
}

// Bytes reads one length-delimited field and returns a subslice of the
// underlying buffer.
func (c *Cursor) Bytes() ([]byte, error) {
	length, err := c.Varint()
	if err != nil {
		return nil, fmt.Errorf("read length: %w", err)
	}
	if length > uint64(len(c.buf)-c.off) {
		return nil, fmt.Errorf("length %d overruns buffer at offset %d: %w", length, c.off, ErrMalformed)
	}
	start := c.off
	c.off += int(length)
	return c.buf[start:c.off], nil
}

// Skip advances past one field value of the given wire type. Unknown wire
// types are malformed: there is no safe way to find the next tag.
func (c *Cursor) Skip(wt WireType) error {
	switch wt {
	case TypeVarint:
		_, err := c.Varint()
		return err
	case Type64Bit:
		return c.advance(8)
	case TypeBytes:
		_, err := c.Bytes()
		return err
	case Type32Bit:
		return c.advance(4)
	default:
		return fmt.Errorf("wire type %d: %w", wt, ErrMalformed)
	}
}

func (c *Cursor) advance(n int) error {
	if len(c.buf)-c.off < n {
		return fmt.Errorf("fixed field overruns buffer at offset %d: %w", c.off, ErrMalformed)
	}
	c.off += n
	return nil
}

// SubMessage extracts the raw bytes of the first length-delimited occurrence
// of field in payload, or nil when the field is absent.
func SubMessage(payload []byte, field uint64) ([]byte, error) {
	c := NewCursor(payload)
	for c.More() {
		num, wt, err := c.Tag()
		if err != nil {
			return nil, err
		}
		if num == field && wt == TypeBytes {
			return c.Bytes()
		}
		if err := c.Skip(wt); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// VarintFields scans payload and captures the last value of every requested
// varint field number. Unrequested fields are skipped by wire-type rules.
func VarintFields(payload []byte, fields ...uint64) (map[uint64]uint64, error) {
	wanted := make(map[uint64]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	out := make(map[uint64]uint64, len(fields))
	c := NewCursor(payload)
	for c.More() {
		num, wt, err := c.Tag()
		if err != nil {
			return nil, err
		}
		if wanted[num] && wt == TypeVarint {
			value, err := c.Varint()
			if err != nil {
				return nil, err
			}
			out[num] = value
			continue
		}
		if err := c.Skip(wt); err != nil {
			return nil, err
		}
	}
	return out, nil
}
