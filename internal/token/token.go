// Package token derives process-stable identifiers for static call sites.
//
// A token fingerprints the full static shape of a member access: method vs
// field, static vs instance, and the rendered lookup descriptor. The
// resolver cache uses it as a cheap pre-filter before the weak identity
// check. Equal shapes always produce equal tokens; distinct shapes collide
// with negligible probability (64-bit BLAKE2b digest).
package token

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// ID identifies one static call-site shape.
type ID uint64

// Kind discriminates member flavors in the digest input.
type Kind byte

const (
	Method Kind = 'M'
	Field  Kind = 'F'
)

// For derives the ID for a call-site shape from its rendered lookup
// descriptor.
func For(kind Kind, static bool, descriptor string) ID {
	// 8-byte digest => uint64 token
	h, _ := blake2b.New(8, nil)

	s := byte(0)
	if static {
		s = 1
	}
	h.Write([]byte{byte(kind), s, 0})
	h.Write([]byte(descriptor))

	sum := h.Sum(nil)
	return ID(binary.BigEndian.Uint64(sum))
}
