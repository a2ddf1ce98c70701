package binary

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/wasmcursor/wasmbin/internal/leb128"
	"github.com/wasmcursor/wasmbin/internal/wasm"
)

// cursor is a position-tracked view over a fully-resident input buffer. It
// never copies: readBytes and readString hand back slices into data, valid
// only until the caller (ultimately a Delegate callback) returns.
//
// Invariant: 0 <= offset <= readEnd <= size.
type cursor struct {
	data    []byte
	offset  int
	size    int
	readEnd int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data, size: len(data), readEnd: len(data)}
}

// pushReadEnd tightens the framing bound to end, returning the previous
// bound. Callers must restore it with popReadEnd on every exit path,
// including errors, mirroring binary-reader.cc's read_end_ save/restore
// around sections and subsections.
func (c *cursor) pushReadEnd(end int) int {
	prev := c.readEnd
	c.readEnd = end
	return prev
}

func (c *cursor) popReadEnd(prev int) {
	c.readEnd = prev
}

func (c *cursor) remaining() int {
	return c.readEnd - c.offset
}

func (c *cursor) readU8() (byte, error) {
	if c.remaining() < 1 {
		return 0, fmt.Errorf("read u8: %w", wasm.ErrUnexpectedEOF)
	}
	b := c.data[c.offset]
	c.offset++
	return b, nil
}

func (c *cursor) readU32LE() (uint32, error) {
	if c.remaining() < 4 {
		return 0, fmt.Errorf("read u32: %w", wasm.ErrUnexpectedEOF)
	}
	v := binary.LittleEndian.Uint32(c.data[c.offset : c.offset+4])
	c.offset += 4
	return v, nil
}

func (c *cursor) readF32Bits() (uint32, error) {
	if c.remaining() < 4 {
		return 0, fmt.Errorf("read f32: %w", wasm.ErrUnexpectedEOF)
	}
	v := binary.LittleEndian.Uint32(c.data[c.offset : c.offset+4])
	c.offset += 4
	return v, nil
}

func (c *cursor) readF64Bits() (uint64, error) {
	if c.remaining() < 8 {
		return 0, fmt.Errorf("read f64: %w", wasm.ErrUnexpectedEOF)
	}
	v := binary.LittleEndian.Uint64(c.data[c.offset : c.offset+8])
	c.offset += 8
	return v, nil
}

// readBytes returns a borrowed slice of length n and advances past it.
func (c *cursor) readBytes(n uint32) ([]byte, error) {
	if uint64(c.remaining()) < uint64(n) {
		return nil, fmt.Errorf("read %d bytes: %w", n, wasm.ErrUnexpectedEOF)
	}
	b := c.data[c.offset : c.offset+int(n)]
	c.offset += int(n)
	return b, nil
}

// readVaru32 reads a bounds-respecting unsigned 32-bit LEB128 value.
func (c *cursor) readVaru32() (uint32, error) {
	v, n, err := leb128.LoadUint32(c.data[c.offset:c.readEnd])
	if err != nil {
		return 0, err
	}
	c.offset += int(n)
	return v, nil
}

// readVaru64 reads a bounds-respecting unsigned 64-bit LEB128 value.
func (c *cursor) readVaru64() (uint64, error) {
	v, n, err := leb128.LoadUint64(c.data[c.offset:c.readEnd])
	if err != nil {
		return 0, err
	}
	c.offset += int(n)
	return v, nil
}

// readVars32 reads a bounds-respecting signed 32-bit LEB128 value.
func (c *cursor) readVars32() (int32, error) {
	v, n, err := leb128.LoadInt32(c.data[c.offset:c.readEnd])
	if err != nil {
		return 0, err
	}
	c.offset += int(n)
	return v, nil
}

// readVars64 reads a bounds-respecting signed 64-bit LEB128 value.
func (c *cursor) readVars64() (int64, error) {
	v, n, err := leb128.LoadInt64(c.data[c.offset:c.readEnd])
	if err != nil {
		return 0, err
	}
	c.offset += int(n)
	return v, nil
}

// readIndex reads a u32-LEB used as an index/count; wraps wasm.ErrBadLEB
// and wasm.ErrUnexpectedEOF errors with desc for diagnostics.
func (c *cursor) readIndex(desc string) (wasm.Index, error) {
	v, err := c.readVaru32()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", desc, err)
	}
	return v, nil
}

// readValueType reads a single value-type/form-marker byte, encoded as a
// signed LEB128 (always one byte for the markers this decoder recognizes,
// since they are all small negative numbers in that encoding). The result is
// that one-byte wire form (e.g. 0x7f for i32), the form the wasm.ValueType
// constants use.
func (c *cursor) readValueType(desc string) (wasm.ValueType, error) {
	v, err := c.readVars32()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", desc, err)
	}
	if v < -64 || v > 63 {
		return 0, fmt.Errorf("%s: %w", desc, wasm.ErrBadType)
	}
	return byte(v) & 0x7f, nil
}

// readString reads a u32-LEB length, then that many bytes, validates UTF-8,
// and returns the borrowed slice as a string view.
func (c *cursor) readString(desc string) (string, error) {
	n, err := c.readIndex(desc + " length")
	if err != nil {
		return "", err
	}
	b, err := c.readBytes(n)
	if err != nil {
		return "", fmt.Errorf("%s: %w", desc, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: %w", desc, wasm.ErrBadUTF8)
	}
	return string(b), nil
}

// readLimits reads a flags byte (bit 0 = has-max), an initial count, and,
// if has-max, a max count.
func (c *cursor) readLimits(desc string) (wasm.Limits, error) {
	flags, err := c.readIndex(desc + " flags")
	if err != nil {
		return wasm.Limits{}, err
	}
	initial, err := c.readIndex(desc + " initial")
	if err != nil {
		return wasm.Limits{}, err
	}
	l := wasm.Limits{HasMax: flags&0x1 != 0, Initial: initial}
	if l.HasMax {
		max, err := c.readIndex(desc + " max")
		if err != nil {
			return wasm.Limits{}, err
		}
		l.Max = max
		if l.Initial > l.Max {
			return wasm.Limits{}, fmt.Errorf("%s: initial > max: %w", desc, wasm.ErrBadLimits)
		}
	}
	return l, nil
}

// readMemoryLimits reads limits via readLimits, then clamps initial and (if
// present) max against wasm.MemoryMaxPages, the page-count ceiling every
// linear memory is held to regardless of how it entered the module (memory
// section or import).
func (c *cursor) readMemoryLimits(desc string) (wasm.Limits, error) {
	l, err := c.readLimits(desc)
	if err != nil {
		return wasm.Limits{}, err
	}
	if l.Initial > wasm.MemoryMaxPages {
		return wasm.Limits{}, fmt.Errorf("%s: initial %d exceeds max pages %d: %w", desc, l.Initial, wasm.MemoryMaxPages, wasm.ErrBadLimits)
	}
	if l.HasMax && l.Max > wasm.MemoryMaxPages {
		return wasm.Limits{}, fmt.Errorf("%s: max %d exceeds max pages %d: %w", desc, l.Max, wasm.MemoryMaxPages, wasm.ErrBadLimits)
	}
	return l, nil
}
