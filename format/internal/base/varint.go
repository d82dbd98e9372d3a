// Package base holds the pieces shared by every schema era: the varint
// block-data codec and the encoding-failure sentinel.
package base

import (
	"errors"
	"fmt"
)

// ErrEncoding reports an internal invariant violated while building the
// compound tree: empty structures, dimensions or palettes beyond what the
// schema's fields can represent.
var ErrEncoding = errors.New("format: encoding failed")

// DecodeVarInt reads a single VarInt from the byte slice.
// Returns the value and the number of bytes read.
func DecodeVarInt(data []byte) (int, int, error) {
	var value, length int
	for {
		if length >= len(data) {
			return 0, 0, fmt.Errorf("varint extends beyond data")
		}
		b := int(data[length])
		value |= (b & 0x7F) << (length * 7)
		length++
		if length > 5 {
			return 0, 0, fmt.Errorf("varint too long")
		}
		if (b & 0x80) == 0 {
			break
		}
	}
	return value, length, nil
}

// DecodeVarIntArray decodes count VarInts from a byte slice.
func DecodeVarIntArray(data []byte, count int) ([]int, error) {
	values := make([]int, count)
	offset := 0
	for i := range count {
		val, length, err := DecodeVarInt(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("decode varint %d: %w", i, err)
		}
		values[i] = val
		offset += length
	}
	return values, nil
}

// EncodeVarInt encodes a single integer as a VarInt.
func EncodeVarInt(value int) []byte {
	var buf []byte
	for {
		b := byte(value & 0x7F)
		value >>= 7
		if value != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
		if value == 0 {
			break
		}
	}
	return buf
}

// EncodeVarIntArray encodes multiple integers as VarInts.
func EncodeVarIntArray(values []int) []byte {
	var buf []byte
	for _, v := range values {
		buf = append(buf, EncodeVarInt(v)...)
	}
	return buf
}
