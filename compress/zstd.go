package compress

// ZstdCodec is registered under format.AlgorithmZstd. Its Compress and
// Decompress methods are implemented per build tag in zstd_cgo.go (cgo,
// backed by valyala/gozstd) and zstd_pure.go (!cgo, backed by
// klauspost/compress/zstd), mirroring the cgo/non-cgo split this codec's
// compression stack already carries for zstd elsewhere.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a ZstdCodec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
