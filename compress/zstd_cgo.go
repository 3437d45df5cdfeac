//go:build cgo

package compress

import "github.com/valyala/gozstd"

// Compress compresses data with Zstandard at the default level.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress reverses Compress.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	return gozstd.Decompress(nil, data)
}
