package property

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/fstring"
	"github.com/ficsit-tools/sbp/wire"
)

const structSeparatorLen = 17

var structSeparator = make([]byte, structSeparatorLen)

// Struct is the "StructProperty" payload. The embedded type tag selects
// between the one observed built-in shape (LinearColor, 4 packed floats)
// and the general case: a nested, independently-terminated PropertyList.
type Struct struct {
	Index uint32

	// TypeTag is the embedded struct type name, without its trailing NUL
	// (e.g. "LinearColor").
	TypeTag string

	// Color holds the four packed components when TypeTag is "LinearColor".
	Color [4]float32

	// Fields holds the nested property list for any other TypeTag.
	Fields List
}

func (s *Struct) isLinearColor() bool {
	return s.TypeTag == "LinearColor"
}

// WireSize returns the total number of bytes this value occupies on the
// wire: the size field, the index, the type tag string, the 17-byte
// separator, and the payload.
func (s *Struct) WireSize() int {
	return 4 + 4 + fstring.WireSize(fstring.WithNUL(s.TypeTag)) + structSeparatorLen + s.declaredSize()
}

// declaredSize is the value written into the on-wire "size" field: the
// byte length of the payload alone, excluding the type tag and the
// 17-byte separator that precede it. For LinearColor this is always 16;
// for a nested list it is the list's own wire size (sentinel included).
func (s *Struct) declaredSize() int {
	if s.isLinearColor() {
		return 16
	}

	return s.Fields.WireSize()
}

func (s *Struct) write(w *wire.Writer) {
	w.U32(uint32(s.declaredSize()))
	w.U32(s.Index)
	fstring.Write(w, fstring.WithNUL(s.TypeTag))
	w.Write(structSeparator)

	if s.isLinearColor() {
		for _, c := range s.Color {
			w.F32(c)
		}

		return
	}

	s.Fields.Write(w)
}

func parseStruct(r *wire.Reader, name string) (*Struct, error) {
	sizeOffset := r.Pos()

	size, err := r.U32()
	if err != nil {
		return nil, err
	}

	index, err := r.U32()
	if err != nil {
		return nil, err
	}

	typeTagWire, err := fstring.Read(r)
	if err != nil {
		return nil, err
	}

	if err := r.Tag(structSeparator); err != nil {
		return nil, err
	}

	typeTag := trimNUL(typeTagWire)

	s := &Struct{Index: index, TypeTag: typeTag}

	if typeTag == "LinearColor" {
		for i := range s.Color {
			v, err := r.F32()
			if err != nil {
				return nil, err
			}

			s.Color[i] = v
		}

		if size != 16 {
			return nil, errs.PropertySizeMismatch(sizeOffset, name, int(size), 16)
		}

		return s, nil
	}

	fields, err := ParseList(r)
	if err != nil {
		return nil, err
	}

	s.Fields = fields

	if actual := fields.WireSize(); int(size) != actual {
		return nil, errs.PropertySizeMismatch(sizeOffset, name, int(size), actual)
	}

	return s, nil
}

func trimNUL(s string) string {
	if len(s) > 0 && s[len(s)-1] == 0x00 {
		return s[:len(s)-1]
	}

	return s
}
