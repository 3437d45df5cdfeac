// Package wire implements the primitive little-endian codec shared by every
// blueprint structure: fixed-width integers and floats, byte-literal tags,
// and a position-tracked reader that attributes every error to a byte
// offset in the input.
package wire

import (
	"math"

	"github.com/ficsit-tools/sbp/endian"
	"github.com/ficsit-tools/sbp/errs"
)

// Reader decodes little-endian primitives from a byte slice, tracking the
// current read position so callers can report errors with a precise offset.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Pos returns the current byte offset into the input.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the number of unread bytes remaining.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// require checks that at least n unread bytes remain, returning
// errs.ErrUnexpectedEOF at the current offset otherwise. It never moves the
// read position; callers advance it themselves after a successful check.
func (r *Reader) require(n int, field string) error {
	if r.Len() < n {
		return errs.At(r.pos, field, errs.ErrUnexpectedEOF)
	}

	return nil
}

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	if err := r.require(1, "u8"); err != nil {
		return 0, err
	}

	v := r.data[r.pos]
	r.pos++

	return v, nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if err := r.require(4, "u32"); err != nil {
		return 0, err
	}

	v := r.engine.Uint32(r.data[r.pos:])
	r.pos += 4

	return v, nil
}

// I32 reads a little-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	if err := r.require(8, "u64"); err != nil {
		return 0, err
	}

	v := r.engine.Uint64(r.data[r.pos:])
	r.pos += 8

	return v, nil
}

// I64 reads a little-endian int64.
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

// F32 reads a little-endian IEEE-754 single-precision float.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// Bytes reads n raw bytes and returns a slice referencing the underlying
// input (not a copy). Callers that retain the slice across further reads
// must copy it first.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if err := r.require(n, "bytes"); err != nil {
		return nil, err
	}

	v := r.data[r.pos : r.pos+n]
	r.pos += n

	return v, nil
}

// Tag reads len(expected) bytes and verifies they match expected exactly,
// returning errs.ErrTagMismatch (wrapped with the offset of the mismatch)
// if not.
func (r *Reader) Tag(expected []byte) error {
	start := r.pos

	got, err := r.Bytes(len(expected))
	if err != nil {
		return err
	}

	for i := range expected {
		if got[i] != expected[i] {
			return errs.TagMismatch(start, expected, got)
		}
	}

	return nil
}

// Skip advances the read position by n bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	if err := r.require(n, "skip"); err != nil {
		return err
	}

	r.pos += n

	return nil
}
