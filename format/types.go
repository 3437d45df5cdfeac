// Package format defines the small enumerated wire types shared across the
// sbp codec packages: the body-framing version marker and the compression
// algorithm tag.
package format

type (
	// HeaderVersion identifies the body-framing layout version.
	HeaderVersion uint32

	// CompressionAlgorithm identifies the codec used to compress the body payload.
	CompressionAlgorithm uint8
)

const (
	// HeaderVersionV1 is encoded on the wire as the literal 0x00000000.
	HeaderVersionV1 HeaderVersion = 0x00000000
	// HeaderVersionV2 is encoded on the wire as the literal 0x22222222.
	HeaderVersionV2 HeaderVersion = 0x22222222
)

const (
	// AlgorithmZlib is the compression algorithm observed in every sample
	// blueprint: the body-framing algorithm tag reads 0x03000000 and the
	// payload is a conforming zlib (RFC 1950) stream.
	AlgorithmZlib CompressionAlgorithm = 0x03

	// AlgorithmNone, AlgorithmLZ4, AlgorithmZstd, and AlgorithmS2 are not
	// known to appear in any shipped blueprint. The algorithm tag's meaning
	// beyond the observed 0x03 value is unverified (see the body-framing
	// design notes), so the codec registry reserves these values for
	// forward compatibility rather than rejecting them outright.
	AlgorithmNone CompressionAlgorithm = 0x00
	AlgorithmLZ4  CompressionAlgorithm = 0x01
	AlgorithmZstd CompressionAlgorithm = 0x02
	AlgorithmS2   CompressionAlgorithm = 0x04
)

// String implements fmt.Stringer.
func (v HeaderVersion) String() string {
	switch v {
	case HeaderVersionV1:
		return "V1"
	case HeaderVersionV2:
		return "V2"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer.
func (a CompressionAlgorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "None"
	case AlgorithmLZ4:
		return "LZ4"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmZlib:
		return "Zlib"
	case AlgorithmS2:
		return "S2"
	default:
		return "Unknown"
	}
}
