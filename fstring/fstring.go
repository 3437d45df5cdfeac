// Package fstring implements the game's factory-string encoding: a
// u32-length-prefixed, NUL-terminated UTF-8 string where the length counts
// the trailing NUL.
package fstring

import (
	"unicode/utf8"

	"github.com/ficsit-tools/sbp/errs"
	"github.com/ficsit-tools/sbp/wire"
)

// Read consumes a factory string from r: a u32 length followed by that many
// bytes of UTF-8 content, the final byte being a literal NUL when the
// length is non-zero. The returned string includes the trailing NUL. An
// empty string has length 0 and no trailing NUL.
func Read(r *wire.Reader) (string, error) {
	start := r.Pos()

	length, err := r.U32()
	if err != nil {
		return "", err
	}

	if length == 0 {
		return "", nil
	}

	data, err := r.Bytes(int(length))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", errs.At(start, "factory_string", errs.ErrInvalidUTF8)
	}

	return string(data), nil
}

// Write appends s to w as a factory string: its byte length as a u32,
// followed by its bytes verbatim. s must already include its trailing NUL
// if non-empty; Write does not add one.
func Write(w *wire.Writer, s string) {
	w.U32(uint32(len(s)))
	w.Write([]byte(s))
}

// WireSize returns the number of bytes s occupies on the wire, including
// its 4-byte length prefix.
func WireSize(s string) int {
	return 4 + len(s)
}

// WithNUL appends a trailing NUL byte to s, the form every on-wire factory
// string other than the empty string carries.
func WithNUL(s string) string {
	return s + "\x00"
}
