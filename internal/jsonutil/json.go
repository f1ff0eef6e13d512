// Package jsonutil wraps sonic so every JSON boundary in the app shares one
// frozen configuration.
package jsonutil

import (
	"io"

	"github.com/bytedance/sonic"
)

// API is the shared sonic configuration.
var API = sonic.Config{
	EscapeHTML:  true,
	SortMapKeys: false,
}.Froze()

// Marshal encodes v.
func Marshal(v any) ([]byte, error) {
	return API.Marshal(v)
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return API.Unmarshal(data, v)
}

// Decode reads all of r and decodes it into v.
func Decode(r io.Reader, v any) error {
	return API.NewDecoder(r).Decode(v)
}

// MarshalIndent encodes v with indentation, for human-facing output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return API.MarshalIndent(v, prefix, indent)
}
