// Package property implements the tag-dispatched recursive property system
// that forms the body of every in-game object: a PropertyList of Property
// records terminated by the "None" sentinel, where each Property's concrete
// value type is selected by a second embedded string tag.
package property

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/fstring"
	"github.com/ficsit-tools/sbp/wire"
)

// Sentinel and dispatch tag values. Every factory string compared here
// includes its trailing NUL, matching the on-wire form.
const (
	noneName = "None\x00"

	tagByte   = "ByteProperty\x00"
	tagFloat  = "FloatProperty\x00"
	tagObject = "ObjectProperty\x00"
	tagStruct = "StructProperty\x00"

	tagLinearColor = "LinearColor\x00"
)

// Value is implemented by every concrete property payload type (Byte,
// Float, Object, Struct). It is the sum-type discriminator the format
// embeds as a wire string, modeled here as a Go interface rather than a
// class hierarchy, per the recursive tag-dispatch design.
type Value interface {
	// WireSize returns the number of bytes this value occupies on the wire,
	// from its size field through its payload. This is not the value of the
	// on-wire size field, which each variant declares separately.
	WireSize() int

	// write appends this value's on-wire form to w, starting with its size
	// and index fields, assuming the caller has already written the
	// property name and type tag.
	write(w *wire.Writer)
}

// Property is a single name/value record. A Property whose Name is the
// "None" sentinel terminates its enclosing PropertyList and carries a nil
// Value.
type Property struct {
	Name  string
	Value Value
}

// IsNone reports whether p is the list-terminating sentinel.
func (p Property) IsNone() bool {
	return p.Name == noneName
}

// WireSize returns the number of bytes p occupies on the wire.
func (p Property) WireSize() int {
	if p.IsNone() {
		return fstring.WireSize(p.Name)
	}

	tag := tagFor(p.Value)

	return fstring.WireSize(p.Name) + fstring.WireSize(tag) + p.Value.WireSize()
}

// Write appends the on-wire form of p to w.
func (p Property) Write(w *wire.Writer) {
	fstring.Write(w, p.Name)

	if p.IsNone() {
		return
	}

	fstring.Write(w, tagFor(p.Value))
	p.Value.write(w)
}

func tagFor(v Value) string {
	switch v.(type) {
	case *Byte:
		return tagByte
	case *Float:
		return tagFloat
	case *Object:
		return tagObject
	case *Struct:
		return tagStruct
	default:
		panic("property: unreachable value type")
	}
}

// None is the list-terminating sentinel property.
func None() Property {
	return Property{Name: noneName}
}

// List is a finite ordered sequence of Property records, terminated by the
// None sentinel (not itself stored as an element of List).
type List []Property

// ParseList reads Property records from r until the None sentinel,
// consuming but not including the sentinel in the returned List.
func ParseList(r *wire.Reader) (List, error) {
	var list List

	for {
		start := r.Pos()

		name, err := fstring.Read(r)
		if err != nil {
			return nil, err
		}

		if name == noneName {
			return list, nil
		}

		tag, err := fstring.Read(r)
		if err != nil {
			return nil, err
		}

		value, err := parseValue(r, tag, name, start)
		if err != nil {
			return nil, err
		}

		list = append(list, Property{Name: name, Value: value})
	}
}

func parseValue(r *wire.Reader, tag, name string, start int) (Value, error) {
	switch tag {
	case tagByte:
		return parseByte(r, name)
	case tagFloat:
		return parseFloat(r, name)
	case tagObject:
		return parseObject(r, name)
	case tagStruct:
		return parseStruct(r, name)
	default:
		return nil, errs.UnknownPropertyKind(start, tag)
	}
}

// WireSize returns the number of bytes l occupies on the wire, including
// the terminating None sentinel.
func (l List) WireSize() int {
	size := fstring.WireSize(noneName)
	for _, p := range l {
		size += p.WireSize()
	}

	return size
}

// Write appends the on-wire form of l, including its terminating None
// sentinel, to w.
func (l List) Write(w *wire.Writer) {
	for _, p := range l {
		p.Write(w)
	}

	None().Write(w)
}
