// Package blueprint ties the header and body codecs together into the
// top-level parse/serialize operations for a complete .sbp file.
package blueprint

import (
	"github.com/ficsit-tools/sbp/body"
	"github.com/ficsit-tools/sbp/compress"
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/section"
	"github.com/ficsit-tools/sbp/wire"
)

// Blueprint pairs a parsed Header with its decompressed Body.
type Blueprint struct {
	Header *section.Header
	Body   *body.Body
}

// ParseBlueprint parses a complete .sbp file: the clear-text header, then
// the compressed payload it frames, decompressed via the registered codec
// for the header's declared algorithm.
func ParseBlueprint(data []byte) (*Blueprint, error) {
	return parseBlueprint(data, compress.NewRegistry())
}

func parseBlueprint(data []byte, registry *compress.Registry) (*Blueprint, error) {
	r := wire.NewReader(data)

	header, err := section.ParseHeader(r)
	if err != nil {
		return nil, err
	}

	compressedOffset := r.Pos()

	compressed, err := r.Bytes(int(header.Framing.CompressedSize))
	if err != nil {
		return nil, err
	}

	codec, err := registry.Get(header.Framing.Algorithm)
	if err != nil {
		return nil, errs.At(compressedOffset, "body_framing.algorithm", err)
	}

	decompressed, err := codec.Decompress(compressed)
	if err != nil {
		return nil, errs.At(compressedOffset, "body.payload", err)
	}

	if uint64(len(decompressed)) != header.Framing.UncompressedSize {
		return nil, errs.At(compressedOffset, "body_framing.uncompressed_size", errs.ErrCorruptFraming)
	}

	br := wire.NewReader(decompressed)

	b, err := body.ParseBody(br)
	if err != nil {
		return nil, err
	}

	return &Blueprint{Header: header, Body: b}, nil
}

// SerializeBlueprint serializes bp back to a complete .sbp byte stream.
// Sizes are computed before any bytes are emitted (compute-then-emit): the
// body is serialized once into a buffer, compressed once into another, and
// their lengths populate the header's framing fields before the header
// itself is written. No component in this codec seeks backward to patch a
// size field.
func SerializeBlueprint(bp *Blueprint) ([]byte, error) {
	return serializeBlueprint(bp, compress.NewRegistry())
}

func serializeBlueprint(bp *Blueprint, registry *compress.Registry) ([]byte, error) {
	bodyWriter := wire.NewWriter()
	defer bodyWriter.Release()

	bp.Body.Write(bodyWriter)
	rawBody := append([]byte(nil), bodyWriter.Bytes()...)

	codec, err := registry.Get(bp.Header.Framing.Algorithm)
	if err != nil {
		return nil, err
	}

	compressedBody, err := codec.Compress(rawBody)
	if err != nil {
		return nil, err
	}

	bp.Header.Framing.UncompressedSize = uint64(len(rawBody))
	bp.Header.Framing.CompressedSize = uint64(len(compressedBody))

	out := wire.NewWriter()
	defer out.Release()

	bp.Header.Write(out)
	out.Write(compressedBody)

	return append([]byte(nil), out.Bytes()...), nil
}
