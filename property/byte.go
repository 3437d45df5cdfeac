package property

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/fstring"
	"github.com/ficsit-tools/sbp/wire"
)

// Byte is the "ByteProperty" payload. Only the observed wire form — the
// "None" discriminator string followed by a single raw byte — is
// implemented; the discriminated string-payload alternative the format
// anticipates is unobserved in any sample blueprint (see DESIGN.md).
type Byte struct {
	Index uint32
	Raw   uint8
}

// WireSize returns the total number of bytes this value occupies on the
// wire: the size field, the index, the "None" discriminator string, the
// separator byte, and the raw payload byte.
func (b *Byte) WireSize() int {
	return 4 + 4 + fstring.WireSize(noneName) + 1 + 1
}

func (b *Byte) write(w *wire.Writer) {
	w.U32(1)
	w.U32(b.Index)
	fstring.Write(w, noneName)
	w.U8(0x00)
	w.U8(b.Raw)
}

func parseByte(r *wire.Reader, name string) (*Byte, error) {
	sizeOffset := r.Pos()

	size, err := r.U32()
	if err != nil {
		return nil, err
	}

	index, err := r.U32()
	if err != nil {
		return nil, err
	}

	discOffset := r.Pos()

	disc, err := fstring.Read(r)
	if err != nil {
		return nil, err
	}

	if disc != noneName {
		return nil, errs.UnknownPropertyKind(discOffset, disc)
	}

	if err := r.Tag([]byte{0x00}); err != nil {
		return nil, err
	}

	raw, err := r.U8()
	if err != nil {
		return nil, err
	}

	if size != 1 {
		return nil, errs.PropertySizeMismatch(sizeOffset, name, int(size), 1)
	}

	return &Byte{Index: index, Raw: raw}, nil
}
