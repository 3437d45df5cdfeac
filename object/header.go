// Package object implements the per-object placement record (ActorHeader)
// and the property-bearing Object body that follows the header list in a
// blueprint's decompressed payload.
package object

import (
	"github.com/ficsit-tools/sbp/fstring"
	"github.com/ficsit-tools/sbp/wire"
)

// Quaternion is a unit rotation quaternion.
type Quaternion struct {
	X, Y, Z, W float32
}

// Vector3 is a 3-component float vector, used for both position and scale.
type Vector3 struct {
	X, Y, Z float32
}

// ActorHeader is the Actor-variant placement record for a single object. The
// format anticipates a non-Actor variant; it is unobserved in any sample
// blueprint and is not implemented here.
type ActorHeader struct {
	TypePath     string
	RootObject   string
	InstanceName string
	Unknown      uint32
	Rotation     Quaternion
	Position     Vector3
	Scale        Vector3
}

// headerFixedSize is the number of bytes an ActorHeader occupies on the wire,
// beyond its three variable-length factory strings.
const headerFixedSize = 4 + (4 * 4) + (4 * 3) + (4 * 3) + 4

// WireSize returns the number of bytes h occupies on the wire.
func (h *ActorHeader) WireSize() int {
	return fstring.WireSize(h.TypePath) + fstring.WireSize(h.RootObject) + fstring.WireSize(h.InstanceName) + headerFixedSize
}

// Write appends the on-wire form of h to w.
func (h *ActorHeader) Write(w *wire.Writer) {
	fstring.Write(w, h.TypePath)
	fstring.Write(w, h.RootObject)
	fstring.Write(w, h.InstanceName)
	w.U32(h.Unknown)

	w.F32(h.Rotation.X)
	w.F32(h.Rotation.Y)
	w.F32(h.Rotation.Z)
	w.F32(h.Rotation.W)

	w.F32(h.Position.X)
	w.F32(h.Position.Y)
	w.F32(h.Position.Z)

	w.F32(h.Scale.X)
	w.F32(h.Scale.Y)
	w.F32(h.Scale.Z)

	w.U32(0) // reserved
}

// ParseActorHeader reads an ActorHeader from r.
func ParseActorHeader(r *wire.Reader) (*ActorHeader, error) {
	typePath, err := fstring.Read(r)
	if err != nil {
		return nil, err
	}

	rootObject, err := fstring.Read(r)
	if err != nil {
		return nil, err
	}

	instanceName, err := fstring.Read(r)
	if err != nil {
		return nil, err
	}

	unknown, err := r.U32()
	if err != nil {
		return nil, err
	}

	var rot Quaternion
	if rot.X, err = r.F32(); err != nil {
		return nil, err
	}
	if rot.Y, err = r.F32(); err != nil {
		return nil, err
	}
	if rot.Z, err = r.F32(); err != nil {
		return nil, err
	}
	if rot.W, err = r.F32(); err != nil {
		return nil, err
	}

	var pos Vector3
	if pos.X, err = r.F32(); err != nil {
		return nil, err
	}
	if pos.Y, err = r.F32(); err != nil {
		return nil, err
	}
	if pos.Z, err = r.F32(); err != nil {
		return nil, err
	}

	var scale Vector3
	if scale.X, err = r.F32(); err != nil {
		return nil, err
	}
	if scale.Y, err = r.F32(); err != nil {
		return nil, err
	}
	if scale.Z, err = r.F32(); err != nil {
		return nil, err
	}

	if err := r.Skip(4); err != nil { // reserved
		return nil, err
	}

	return &ActorHeader{
		TypePath:     typePath,
		RootObject:   rootObject,
		InstanceName: instanceName,
		Unknown:      unknown,
		Rotation:     rot,
		Position:     pos,
		Scale:        scale,
	}, nil
}
