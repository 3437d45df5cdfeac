// Package body implements the decompressed payload aggregate: a redundantly
// framed pair of parallel lists, object headers and objects, where the i-th
// object corresponds to the i-th header.
package body

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/object"
	"github.com/ficsit-tools/sbp/wire"
)

// Body is the decompressed blueprint payload.
type Body struct {
	Headers []*object.ActorHeader
	Objects []*object.Object
}

// headersBlockSize is the value written into the headers_block_size field:
// the headers_count field plus every header, per "each block size includes
// its own count field".
func (b *Body) headersBlockSize() int {
	size := 4 // headers_count
	for _, h := range b.Headers {
		size += h.WireSize()
	}

	return size
}

// objectsBlockSize is the value written into the objects_block_size field.
func (b *Body) objectsBlockSize() int {
	size := 4 // objects_count
	for _, o := range b.Objects {
		size += o.WireSize()
	}

	return size
}

// WireSize returns the total number of bytes b occupies on the wire,
// including the outer total_body_size field and both block-size fields.
func (b *Body) WireSize() int {
	return 4 + 4 + b.headersBlockSize() + 4 + b.objectsBlockSize()
}

// Write appends the on-wire form of b to w.
func (b *Body) Write(w *wire.Writer) {
	headersBlockSize := b.headersBlockSize()
	objectsBlockSize := b.objectsBlockSize()

	w.U32(uint32(headersBlockSize + objectsBlockSize + 8))
	w.U32(uint32(headersBlockSize))
	w.U32(uint32(len(b.Headers)))

	for _, h := range b.Headers {
		h.Write(w)
	}

	w.U32(uint32(objectsBlockSize))
	w.U32(uint32(len(b.Objects)))

	for _, o := range b.Objects {
		o.Write(w)
	}
}

// ParseBody reads a Body from r, enforcing that the declared total, block,
// and count fields agree with the content actually parsed.
func ParseBody(r *wire.Reader) (*Body, error) {
	totalOffset := r.Pos()

	total, err := r.U32()
	if err != nil {
		return nil, err
	}

	headersBlockOffset := r.Pos()

	headersBlockSize, err := r.U32()
	if err != nil {
		return nil, err
	}

	headersCount, err := r.U32()
	if err != nil {
		return nil, err
	}

	headersStart := r.Pos()

	headers := make([]*object.ActorHeader, 0, headersCount)
	for i := uint32(0); i < headersCount; i++ {
		h, err := object.ParseActorHeader(r)
		if err != nil {
			return nil, err
		}

		headers = append(headers, h)
	}

	if consumed := 4 + (r.Pos() - headersStart); consumed != int(headersBlockSize) {
		return nil, errs.At(headersBlockOffset, "body.headers_block_size", errs.ErrCorruptFraming)
	}

	objectsBlockOffset := r.Pos()

	objectsBlockSize, err := r.U32()
	if err != nil {
		return nil, err
	}

	objectsCount, err := r.U32()
	if err != nil {
		return nil, err
	}

	objectsStart := r.Pos()

	objects := make([]*object.Object, 0, objectsCount)
	for i := uint32(0); i < objectsCount; i++ {
		o, err := object.ParseObject(r)
		if err != nil {
			return nil, err
		}

		objects = append(objects, o)
	}

	if consumed := 4 + (r.Pos() - objectsStart); consumed != int(objectsBlockSize) {
		return nil, errs.At(objectsBlockOffset, "body.objects_block_size", errs.ErrCorruptFraming)
	}

	if int(total) != int(headersBlockSize)+int(objectsBlockSize)+8 {
		return nil, errs.At(totalOffset, "body.total_body_size", errs.ErrCorruptFraming)
	}

	if len(headers) != len(objects) {
		return nil, errs.At(headersStart, "body.headers_objects_count", errs.ErrCorruptFraming)
	}

	return &Body{Headers: headers, Objects: objects}, nil
}
