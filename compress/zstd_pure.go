//go:build !cgo

package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/ficsit-tools/sbp/errs"
)

// Compress compresses data with the pure-Go zstd encoder, used when cgo is
// unavailable.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompression, err)
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

// Decompress reverses Compress.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompression, err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompression, err)
	}

	return out, nil
}
