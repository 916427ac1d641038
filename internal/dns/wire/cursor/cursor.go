// Package cursor implements the byte-cursor primitives the wire codec reads
// a DNS message through: fixed-width integers, opaque byte runs, and
// compressed names (RFC 1035 §4.1.4).
package cursor

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/dogo/internal/dns/domain"
)

// InsufficientData is returned whenever a read would run past the end of
// the buffer, per §4.2 of the wire specification.
type InsufficientData struct {
	Want int
	Have int
}

func (e *InsufficientData) Error() string {
	return fmt.Sprintf("insufficient data: wanted %d bytes, %d remain", e.Want, e.Have)
}

// DisallowedPointer is returned when a label-length byte's top two bits are
// the reserved `01` or `10` patterns.
type DisallowedPointer struct {
	Offset int
	Bits   byte
}

func (e *DisallowedPointer) Error() string {
	return fmt.Sprintf("disallowed label-length bits %#02b at offset %d", e.Bits, e.Offset)
}

// CompressionLoop is returned when a pointer targets an offset at or after
// the offset it was read from.
type CompressionLoop struct {
	PointerOffset int
	TargetOffset  int
}

func (e *CompressionLoop) Error() string {
	return fmt.Sprintf("compression pointer at offset %d targets non-decreasing offset %d", e.PointerOffset, e.TargetOffset)
}

// NameTooLong is returned when a decompressed name's length, counting its
// terminating zero-length label, would exceed 255 bytes. DecodedBytes is
// that length including the terminator.
type NameTooLong struct {
	DecodedBytes int
}

func (e *NameTooLong) Error() string {
	return fmt.Sprintf("decompressed name is %d bytes, maximum is 255", e.DecodedBytes)
}

const maxDecompressedNameBytes = 255

// Cursor reads DNS wire-format primitives out of an immutable byte slice.
// The whole message is held so that ReadName can jump to any earlier
// offset to follow a compression pointer.
type Cursor struct {
	buf []byte
	pos int
}

// New wraps buf for sequential reads starting at offset 0.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

// Seek moves the cursor to an absolute offset without validating it; the
// next read reports InsufficientData if offset is out of range.
func (c *Cursor) Seek(offset int) {
	c.pos = offset
}

func (c *Cursor) need(n int) error {
	if c.pos < 0 || c.pos+n > len(c.buf) {
		return &InsufficientData{Want: n, Have: c.Len()}
	}
	return nil
}

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// ReadU16 reads a big-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos : c.pos+2])
	c.pos += 2
	return v, nil
}

// ReadU32 reads a big-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

// ReadBytes reads n opaque bytes and returns a copy, independent of the
// underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	if err := c.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.buf[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// ReadCharString reads the character-string primitive: one length byte
// followed by that many opaque bytes.
func (c *Cursor) ReadCharString() ([]byte, error) {
	n, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	return c.ReadBytes(int(n))
}

// ReadName decodes a (possibly compressed) domain name starting at the
// current position, advancing the cursor past the name as it appears at
// that position — i.e. past the first pointer, not past its target.
func (c *Cursor) ReadName() (domain.Name, error) {
	var labels []domain.Label
	decoded := 0
	returnPos := -1

	for {
		lengthOffset := c.pos
		length, err := c.ReadU8()
		if err != nil {
			return domain.Name{}, err
		}

		switch {
		case length == 0:
			if returnPos >= 0 {
				c.pos = returnPos
			}
			return domain.Name{Labels: labels}, nil

		case length&0xC0 == 0xC0:
			second, err := c.ReadU8()
			if err != nil {
				return domain.Name{}, err
			}
			target := int(length&0x3F)<<8 | int(second)
			if target >= lengthOffset {
				return domain.Name{}, &CompressionLoop{PointerOffset: lengthOffset, TargetOffset: target}
			}
			if returnPos < 0 {
				returnPos = c.pos
			}
			c.pos = target

		case length&0xC0 != 0:
			return domain.Name{}, &DisallowedPointer{Offset: lengthOffset, Bits: length & 0xC0 >> 6}

		default:
			label, err := c.ReadBytes(int(length))
			if err != nil {
				return domain.Name{}, err
			}
			decoded += int(length) + 1
			// +1 accounts for the terminating zero-length label, not yet
			// in decoded but still counted by the 255-byte cap
			// (domain.Name.WireLength is inclusive of it too).
			if decoded+1 > maxDecompressedNameBytes {
				return domain.Name{}, &NameTooLong{DecodedBytes: decoded + 1}
			}
			labels = append(labels, domain.Label(label))
		}
	}
}
