package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/ficsit-tools/sbp/errs"
)

// ZlibCodec compresses the body payload with RFC 1950 zlib, the only
// algorithm any observed blueprint's algo_tag selects. It is backed by
// klauspost/compress/zlib, a drop-in already part of the dependency graph
// this module draws from, rather than the standard library's zlib package.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

// NewZlibCodec creates a ZlibCodec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress compresses data at zlib's default level, matching the level
// observed in real blueprints (adequate for game compatibility, per the
// format's own documented tolerance).
func (c ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompression, err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompression, err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompression, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompression, err)
	}

	return out, nil
}
