package object

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/property"
	"github.com/ficsit-tools/sbp/wire"
)

// Object is a single object body: a payload-size-prefixed property list. The
// ActorHeader it corresponds to is positioned independently, in the header
// block that precedes the object block (see the body codec).
type Object struct {
	Properties property.List
}

// WireSize returns the number of bytes o occupies on the wire.
func (o *Object) WireSize() int {
	return 4 + o.Properties.WireSize()
}

// Write appends the on-wire form of o to w. payload_size is computed from
// the property list's own WireSize rather than serializing twice.
func (o *Object) Write(w *wire.Writer) {
	w.U32(uint32(o.Properties.WireSize()))
	o.Properties.Write(w)
}

// ParseObject reads an Object from r, verifying the declared payload_size
// matches the number of bytes the property list actually occupies.
func ParseObject(r *wire.Reader) (*Object, error) {
	sizeOffset := r.Pos()

	payloadSize, err := r.U32()
	if err != nil {
		return nil, err
	}

	start := r.Pos()

	props, err := property.ParseList(r)
	if err != nil {
		return nil, err
	}

	consumed := r.Pos() - start
	if int(payloadSize) != consumed {
		return nil, errs.PropertySizeMismatch(sizeOffset, "object.payload_size", int(payloadSize), consumed)
	}

	return &Object{Properties: props}, nil
}
