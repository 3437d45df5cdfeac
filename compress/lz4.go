package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/ficsit-tools/sbp/errs"
)

// LZ4Codec is registered under format.AlgorithmLZ4. No observed file
// selects it; it exists so the registry is a real multi-algorithm dispatch
// table rather than a single-case wrapper.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates an LZ4Codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := lz4.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, errs.ErrCompression
	}

	if err := w.Close(); err != nil {
		return nil, errs.ErrCompression
	}

	return buf.Bytes(), nil
}

func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.ErrCompression
	}

	return out, nil
}
