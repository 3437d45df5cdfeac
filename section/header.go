package section

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/fstring"
	"github.com/ficsit-tools/sbp/wire"
)

// PreambleSize is the length of the opaque fixed-width metadata block that
// precedes the resource list. Its field semantics (format/save-header
// version markers) are not interpreted by this codec; the bytes are
// carried through unchanged, per the "opaque preamble" design (see
// DESIGN.md).
const PreambleSize = 24

// Resource is a single required-game-resource entry: an asset path and the
// quantity required.
type Resource struct {
	Path  string
	Count int32
}

// ModRequirement is a single required-mod entry. Padding is written verbatim
// after the factory string on write. ParseHeader does not read padding: it
// leaves Padding empty, and zero bytes trailing a mod name in the input are
// not skipped (see the mod-requirement padding notes in DESIGN.md).
type ModRequirement struct {
	Name    string
	Padding []byte
}

// Header is the clear-text portion of a blueprint file: the opaque
// preamble, the required-resource list, the required-mod list, and the
// BodyFraming record describing the compressed payload that follows.
type Header struct {
	Preamble        []byte
	Resources       []Resource
	ModRequirements []ModRequirement
	Framing         *BodyFraming
}

// ParseHeader reads a Header from r.
func ParseHeader(r *wire.Reader) (*Header, error) {
	preamble, err := r.Bytes(PreambleSize)
	if err != nil {
		return nil, err
	}

	resources, err := parseResources(r)
	if err != nil {
		return nil, err
	}

	modRequirements, err := parseModRequirements(r)
	if err != nil {
		return nil, err
	}

	framing, err := ParseBodyFraming(r)
	if err != nil {
		return nil, err
	}

	return &Header{
		Preamble:        append([]byte(nil), preamble...),
		Resources:       resources,
		ModRequirements: modRequirements,
		Framing:         framing,
	}, nil
}

func parseResources(r *wire.Reader) ([]Resource, error) {
	count, err := r.U64()
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, nil
	}

	resources := make([]Resource, 0, count)

	for i := uint64(0); i < count-1; i++ {
		path, err := fstring.Read(r)
		if err != nil {
			return nil, err
		}

		amount, err := r.I32()
		if err != nil {
			return nil, err
		}

		sepOffset := r.Pos()

		sep, err := r.U32()
		if err != nil {
			return nil, err
		}

		if sep != 0 {
			return nil, errs.At(sepOffset, "resource.separator", errs.ErrCorruptFraming)
		}

		resources = append(resources, Resource{Path: path, Count: amount})
	}

	path, err := fstring.Read(r)
	if err != nil {
		return nil, err
	}

	amount, err := r.I32()
	if err != nil {
		return nil, err
	}

	resources = append(resources, Resource{Path: path, Count: amount})

	return resources, nil
}

func parseModRequirements(r *wire.Reader) ([]ModRequirement, error) {
	count, err := r.U64()
	if err != nil {
		return nil, err
	}

	requirements := make([]ModRequirement, 0, count)

	for i := uint64(0); i < count; i++ {
		name, err := fstring.Read(r)
		if err != nil {
			return nil, err
		}

		requirements = append(requirements, ModRequirement{Name: name})
	}

	return requirements, nil
}

// WireSize returns the number of bytes h occupies on the wire.
func (h *Header) WireSize() int {
	size := PreambleSize + 8 // preamble + resource_count

	for _, r := range h.Resources {
		size += fstring.WireSize(r.Path) + 4
	}
	if len(h.Resources) > 0 {
		size += 4 * (len(h.Resources) - 1) // separator per non-final tuple
	}

	size += 8 // mod_requirements_count
	for _, m := range h.ModRequirements {
		size += fstring.WireSize(m.Name) + len(m.Padding)
	}

	size += FramingSize

	return size
}

// Write appends the on-wire form of h to w.
func (h *Header) Write(w *wire.Writer) {
	w.Write(h.Preamble)

	w.U64(uint64(len(h.Resources)))

	for i, r := range h.Resources {
		fstring.Write(w, r.Path)
		w.I32(r.Count)

		if i < len(h.Resources)-1 {
			w.U32(0)
		}
	}

	w.U64(uint64(len(h.ModRequirements)))

	for _, m := range h.ModRequirements {
		fstring.Write(w, m.Name)
		w.Write(m.Padding)
	}

	h.Framing.Write(w)
}
