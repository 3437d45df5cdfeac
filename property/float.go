package property

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/wire"
)

// Float is the "FloatProperty" payload: a single separator zero byte
// followed by an IEEE-754 single-precision value.
type Float struct {
	Index uint32
	Val   float32
}

// WireSize returns the total number of bytes this value occupies on the
// wire: the size field, the index, the separator byte, and the f32 value.
func (f *Float) WireSize() int {
	return 4 + 4 + 1 + 4
}

func (f *Float) write(w *wire.Writer) {
	w.U32(4)
	w.U32(f.Index)
	w.U8(0x00)
	w.F32(f.Val)
}

func parseFloat(r *wire.Reader, name string) (*Float, error) {
	sizeOffset := r.Pos()

	size, err := r.U32()
	if err != nil {
		return nil, err
	}

	index, err := r.U32()
	if err != nil {
		return nil, err
	}

	if err := r.Tag([]byte{0x00}); err != nil {
		return nil, err
	}

	val, err := r.F32()
	if err != nil {
		return nil, err
	}

	if size != 4 {
		return nil, errs.PropertySizeMismatch(sizeOffset, name, int(size), 4)
	}

	return &Float{Index: index, Val: val}, nil
}
