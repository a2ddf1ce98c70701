// Package leb128 implements LEB128 variable-length integer encoding and
// decoding with the exact overflow and sign-extension validation the
// WebAssembly binary format requires: a LEB128 value may not use more bytes
// than its declared bit width allows (5 for 32 bits, 10 for 64 bits;
// non-minimal encodings within that bound are accepted), and any bits beyond
// that width carried in the terminal byte must be the correct sign
// extension (zero for unsigned, replicated sign bit for signed).
package leb128

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

// EncodeUint32 returns v as unsigned LEB128.
func EncodeUint32(v uint32) []byte {
	return encodeUint64(uint64(v))
}

// EncodeUint64 returns v as unsigned LEB128.
func EncodeUint64(v uint64) []byte {
	return encodeUint64(v)
}

func encodeUint64(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
		} else {
			out = append(out, b)
			return out
		}
	}
}

// EncodeInt32 returns v as signed LEB128.
func EncodeInt32(v int32) []byte {
	return encodeInt64(int64(v))
}

// EncodeInt64 returns v as signed LEB128.
func EncodeInt64(v int64) []byte {
	return encodeInt64(v)
}

func encodeInt64(v int64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			out = append(out, b)
			return out
		}
		out = append(out, b|0x80)
	}
}

// LoadUint32 decodes an unsigned 32-bit LEB128 value from the front of data,
// returning the decoded value and the number of bytes consumed.
func LoadUint32(data []byte) (uint32, uint64, error) {
	const maxBytes = 5
	var result uint32
	var shift uint
	for i := 0; i < maxBytes && i < len(data); i++ {
		b := data[i]
		if i == maxBytes-1 {
			if b&0x80 != 0 || b&0x70 != 0 {
				return 0, 0, fmt.Errorf("leb128 u32: overflow: %w", wasm.ErrBadLEB)
			}
			result |= uint32(b) << shift
			return result, uint64(i + 1), nil
		}
		result |= uint32(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			return result, uint64(i + 1), nil
		}
	}
	return 0, 0, fmt.Errorf("leb128 u32: %w", wasm.ErrUnexpectedEOF)
}

// LoadUint64 decodes an unsigned 64-bit LEB128 value from the front of data.
func LoadUint64(data []byte) (uint64, uint64, error) {
	const maxBytes = 10
	var result uint64
	var shift uint
	for i := 0; i < maxBytes && i < len(data); i++ {
		b := data[i]
		if i == maxBytes-1 {
			if b&0x80 != 0 || b&0x7e != 0 {
				return 0, 0, fmt.Errorf("leb128 u64: overflow: %w", wasm.ErrBadLEB)
			}
			result |= uint64(b) << shift
			return result, uint64(i + 1), nil
		}
		result |= uint64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			return result, uint64(i + 1), nil
		}
	}
	return 0, 0, fmt.Errorf("leb128 u64: %w", wasm.ErrUnexpectedEOF)
}

// LoadInt32 decodes a signed 32-bit LEB128 value from the front of data.
func LoadInt32(data []byte) (int32, uint64, error) {
	const maxBytes = 5
	var result uint32
	var shift uint
	for i := 0; i < maxBytes && i < len(data); i++ {
		b := data[i]
		if i == maxBytes-1 {
			if b&0x80 != 0 {
				return 0, 0, fmt.Errorf("leb128 i32: too long: %w", wasm.ErrBadLEB)
			}
			if m := b & 0x78; m != 0x00 && m != 0x78 {
				return 0, 0, fmt.Errorf("leb128 i32: bad sign extension: %w", wasm.ErrBadLEB)
			}
			result |= uint32(b&0x7f) << shift
			return int32(result), uint64(i + 1), nil
		}
		result |= uint32(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			// sign-extend from the terminal byte's bit 6 through the rest of the 32-bit word
			if shift < 32 && b&0x40 != 0 {
				result |= ^uint32(0) << shift
			}
			return int32(result), uint64(i + 1), nil
		}
	}
	return 0, 0, fmt.Errorf("leb128 i32: %w", wasm.ErrUnexpectedEOF)
}

// LoadInt64 decodes a signed 64-bit LEB128 value from the front of data.
func LoadInt64(data []byte) (int64, uint64, error) {
	const maxBytes = 10
	var result uint64
	var shift uint
	for i := 0; i < maxBytes && i < len(data); i++ {
		b := data[i]
		if i == maxBytes-1 {
			if b&0x80 != 0 {
				return 0, 0, fmt.Errorf("leb128 i64: too long: %w", wasm.ErrBadLEB)
			}
			if m := b & 0x7f; m != 0x00 && m != 0x7f {
				return 0, 0, fmt.Errorf("leb128 i64: bad sign extension: %w", wasm.ErrBadLEB)
			}
			result |= uint64(b&0x7f) << shift
			return int64(result), uint64(i + 1), nil
		}
		result |= uint64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= ^uint64(0) << shift
			}
			return int64(result), uint64(i + 1), nil
		}
	}
	return 0, 0, fmt.Errorf("leb128 i64: %w", wasm.ErrUnexpectedEOF)
}
