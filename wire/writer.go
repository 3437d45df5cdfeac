package wire

import (
	"math"

	"github.com/ficsit-tools/sbp/endian"
	"github.com/ficsit-tools/sbp/internal/pool"
)

// Writer appends little-endian primitives to a pooled, growable buffer.
// Callers own the Writer's lifetime and must call Release when done with
// the bytes it produced (after copying them out, if they must outlive the
// Writer).
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter acquires a buffer from the package pool and returns a Writer
// wrapping it.
func NewWriter() *Writer {
	return &Writer{
		buf:    pool.Get(),
		engine: endian.GetLittleEndianEngine(),
	}
}

// Release returns the underlying buffer to the pool. The Writer must not be
// used afterward.
func (w *Writer) Release() {
	pool.Put(w.buf)
	w.buf = nil
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the bytes written so far. The slice is only valid until the
// next write or until Release is called.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// U8 appends one byte.
func (w *Writer) U8(v uint8) {
	w.buf.MustWrite([]byte{v})
}

// U32 appends a little-endian uint32.
func (w *Writer) U32(v uint32) {
	start := w.buf.Len()
	w.buf.ExtendOrGrow(4)
	w.engine.PutUint32(w.buf.B[start:], v)
}

// I32 appends a little-endian int32.
func (w *Writer) I32(v int32) {
	w.U32(uint32(v))
}

// U64 appends a little-endian uint64.
func (w *Writer) U64(v uint64) {
	start := w.buf.Len()
	w.buf.ExtendOrGrow(8)
	w.engine.PutUint64(w.buf.B[start:], v)
}

// I64 appends a little-endian int64.
func (w *Writer) I64(v int64) {
	w.U64(uint64(v))
}

// F32 appends a little-endian IEEE-754 single-precision float.
func (w *Writer) F32(v float32) {
	w.U32(math.Float32bits(v))
}

// Write appends raw bytes verbatim.
func (w *Writer) Write(data []byte) {
	w.buf.MustWrite(data)
}
