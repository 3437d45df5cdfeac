package compress

import "github.com/klauspost/compress/s2"

// S2Codec is registered under format.AlgorithmS2.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2Codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (c S2Codec) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	return s2.Decode(nil, data)
}
