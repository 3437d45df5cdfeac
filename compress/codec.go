// Package compress provides the compression codecs available for a
// blueprint's body payload, keyed by the wire format's algorithm tag.
package compress

import (
	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/format"
)

// Compressor compresses a decompressed body buffer.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a compressed body buffer back to its original
// form.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a single compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Registry is a small lookup table from algorithm tag to Codec.
type Registry struct {
	codecs map[format.CompressionAlgorithm]Codec
}

// NewRegistry builds the default registry, with every algorithm this
// implementation knows how to handle registered, regardless of whether any
// observed file actually selects it.
func NewRegistry() *Registry {
	r := &Registry{codecs: make(map[format.CompressionAlgorithm]Codec)}

	r.Register(format.AlgorithmNone, NewNoopCodec())
	r.Register(format.AlgorithmZlib, NewZlibCodec())
	r.Register(format.AlgorithmLZ4, NewLZ4Codec())
	r.Register(format.AlgorithmS2, NewS2Codec())
	r.Register(format.AlgorithmZstd, NewZstdCodec())

	return r
}

// Register associates algorithm with codec, replacing any prior entry.
func (r *Registry) Register(algorithm format.CompressionAlgorithm, codec Codec) {
	r.codecs[algorithm] = codec
}

// Get returns the codec registered for algorithm, or ErrUnsupportedAlgorithm
// if none is registered.
func (r *Registry) Get(algorithm format.CompressionAlgorithm) (Codec, error) {
	codec, ok := r.codecs[algorithm]
	if !ok {
		return nil, errs.ErrUnsupportedAlgorithm
	}

	return codec, nil
}
