package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/fstring"
	"github.com/ficsit-tools/sbp/object"
	"github.com/ficsit-tools/sbp/property"
	"github.com/ficsit-tools/sbp/wire"
)

func sampleBody() *Body {
	h := &object.ActorHeader{
		TypePath:     fstring.WithNUL("/Script/FactoryGame.FGBuildable"),
		RootObject:   fstring.WithNUL("Persistent_Level:PersistentLevel"),
		InstanceName: fstring.WithNUL("Build_Foo_C_1"),
		Rotation:     object.Quaternion{W: 1},
	}

	o := &object.Object{
		Properties: property.List{
			{Name: fstring.WithNUL("Health"), Value: &property.Float{Val: 300}},
		},
	}

	return &Body{Headers: []*object.ActorHeader{h}, Objects: []*object.Object{o}}
}

func TestBody_RoundTrip(t *testing.T) {
	b := sampleBody()

	w := wire.NewWriter()
	defer w.Release()
	b.Write(w)

	data := append([]byte(nil), w.Bytes()...)
	assert.Equal(t, b.WireSize(), len(data))

	r := wire.NewReader(data)
	got, err := ParseBody(r)
	require.NoError(t, err)
	assert.Equal(t, b.Headers, got.Headers)
	assert.Equal(t, b.Objects, got.Objects)
	assert.Equal(t, len(data), r.Pos())
}

func TestBody_Empty(t *testing.T) {
	b := &Body{}

	w := wire.NewWriter()
	defer w.Release()
	b.Write(w)
	data := append([]byte(nil), w.Bytes()...)

	r := wire.NewReader(data)
	got, err := ParseBody(r)
	require.NoError(t, err)
	assert.Empty(t, got.Headers)
	assert.Empty(t, got.Objects)
}

func TestBody_TotalSizeMismatch(t *testing.T) {
	b := sampleBody()

	w := wire.NewWriter()
	defer w.Release()
	b.Write(w)
	data := append([]byte(nil), w.Bytes()...)

	data[0] ^= 0xFF // corrupt total_body_size

	r := wire.NewReader(data)
	_, err := ParseBody(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCorruptFraming)
}

func TestBody_CountMismatch(t *testing.T) {
	// A hand-assembled frame with one header and zero objects: internally
	// consistent block-size framing, but headers_count != objects_count.
	h := &object.ActorHeader{Rotation: object.Quaternion{W: 1}}

	w := wire.NewWriter()
	defer w.Release()

	headersBlock := 4 + h.WireSize()
	objectsBlock := 4

	w.U32(uint32(headersBlock + objectsBlock + 8))
	w.U32(uint32(headersBlock))
	w.U32(1)
	h.Write(w)
	w.U32(uint32(objectsBlock))
	w.U32(0)

	data := append([]byte(nil), w.Bytes()...)

	r := wire.NewReader(data)
	_, err := ParseBody(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCorruptFraming)
}
