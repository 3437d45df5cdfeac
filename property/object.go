package property

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/fstring"
	"github.com/ficsit-tools/sbp/wire"
)

var objectSeparator = []byte{0x00, 0x00, 0x00, 0x00, 0x00}

// Object is the "ObjectProperty" payload: a reference to another object or
// actor, named by its full instance path.
type Object struct {
	Index     uint32
	Reference string
}

// WireSize returns the total number of bytes this value occupies on the
// wire: the size field, the index, the 5-byte separator, and the
// reference string.
func (o *Object) WireSize() int {
	return 4 + 4 + len(objectSeparator) + fstring.WireSize(o.Reference)
}

// declaredSize is the value written into the on-wire "size" field: the
// reference's wire length plus 4. This is not the same quantity as the
// number of bytes actually following the size/index pair (which also
// includes the 5-byte separator) — the declared size field and the
// consumed byte count are independent in this format, confirmed against
// the reference fixture (see DESIGN.md).
func (o *Object) declaredSize() int {
	return fstring.WireSize(o.Reference) + 4
}

func (o *Object) write(w *wire.Writer) {
	w.U32(uint32(o.declaredSize()))
	w.U32(o.Index)
	w.Write(objectSeparator)
	fstring.Write(w, o.Reference)
}

func parseObject(r *wire.Reader, name string) (*Object, error) {
	sizeOffset := r.Pos()

	size, err := r.U32()
	if err != nil {
		return nil, err
	}

	index, err := r.U32()
	if err != nil {
		return nil, err
	}

	if err := r.Tag(objectSeparator); err != nil {
		return nil, err
	}

	reference, err := fstring.Read(r)
	if err != nil {
		return nil, err
	}

	expected := fstring.WireSize(reference) + 4
	if int(size) != expected {
		return nil, errs.PropertySizeMismatch(sizeOffset, name, int(size), expected)
	}

	return &Object{Index: index, Reference: reference}, nil
}
