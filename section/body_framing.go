package section

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/format"
	"github.com/ficsit-tools/sbp/wire"
)

const (
	// Magic is the body-framing magic number, stored little-endian on disk
	// as C1 83 2A 9E.
	Magic uint32 = 0x9E2A83C1

	// MaxChunkSize is the literal chunk-size field every observed file carries.
	MaxChunkSize uint32 = 131072

	// FramingSize is the fixed on-wire size of a BodyFraming record.
	FramingSize = 4 + 4 + 4 + 1 + 4 + 8 + 8 + 8 + 8
)

// BodyFraming describes the compressed payload that follows a Header on the
// wire: a fixed 49-byte record carrying the compression algorithm and
// duplicated size fields.
type BodyFraming struct {
	Version          format.HeaderVersion
	MaxChunkSize     uint32
	Algorithm        format.CompressionAlgorithm
	CompressedSize   uint64
	UncompressedSize uint64
}

// ParseBodyFraming reads a BodyFraming record from r.
func ParseBodyFraming(r *wire.Reader) (*BodyFraming, error) {
	start := r.Pos()

	magic, err := r.U32()
	if err != nil {
		return nil, err
	}

	if magic != Magic {
		return nil, errs.At(start, "body_framing.magic", errs.ErrCorruptFraming)
	}

	versionOffset := r.Pos()

	versionRaw, err := r.U32()
	if err != nil {
		return nil, err
	}

	version := format.HeaderVersion(versionRaw)
	if version != format.HeaderVersionV1 && version != format.HeaderVersionV2 {
		return nil, errs.UnknownHeaderVersion(versionOffset, versionRaw)
	}

	maxChunkSize, err := r.U32()
	if err != nil {
		return nil, err
	}

	sepOffset := r.Pos()

	sep, err := r.U8()
	if err != nil {
		return nil, err
	}

	if sep != 0x00 {
		return nil, errs.At(sepOffset, "body_framing.separator", errs.ErrCorruptFraming)
	}

	algoRaw, err := r.U32()
	if err != nil {
		return nil, err
	}

	algorithm := format.CompressionAlgorithm(algoRaw >> 24)

	compressedSize1, err := r.U64()
	if err != nil {
		return nil, err
	}

	uncompressedSize1, err := r.U64()
	if err != nil {
		return nil, err
	}

	compressedSize2, err := r.U64()
	if err != nil {
		return nil, err
	}

	uncompressedSize2, err := r.U64()
	if err != nil {
		return nil, err
	}

	if compressedSize1 != compressedSize2 || uncompressedSize1 != uncompressedSize2 {
		return nil, errs.At(start, "body_framing.sizes", errs.ErrCorruptFraming)
	}

	return &BodyFraming{
		Version:          version,
		MaxChunkSize:     maxChunkSize,
		Algorithm:        algorithm,
		CompressedSize:   compressedSize1,
		UncompressedSize: uncompressedSize1,
	}, nil
}

// Write appends the 49-byte on-wire form of f to w, duplicating the size
// fields by construction.
func (f *BodyFraming) Write(w *wire.Writer) {
	w.U32(Magic)
	w.U32(uint32(f.Version))
	w.U32(MaxChunkSize)
	w.U8(0x00)
	w.U32(uint32(f.Algorithm) << 24)
	w.U64(f.CompressedSize)
	w.U64(f.UncompressedSize)
	w.U64(f.CompressedSize)
	w.U64(f.UncompressedSize)
}
