// Package hash fingerprints encoded images so repeated runs can be compared.
package hash

import (
	"fmt"
	"io"

	"github.com/spaolacci/murmur3"
)

// Hasher ...
type Hasher interface {
	io.Writer
	Bytes() []byte
	String() string
}

type hasher struct {
	mm3 murmur3.Hash128
	n   int
}

// New ...
func New() Hasher {
	return &hasher{mm3: murmur3.New128()}
}

func (h *hasher) Write(b []byte) (n int, err error) {
	n, err = h.mm3.Write(b)
	if err != nil {
		return
	}
	h.n += len(b)
	return
}

func (h *hasher) Bytes() []byte {
	h1, h2 := h.mm3.Sum128()
	return combine(h1, h2, h.n)
}

func (h *hasher) String() string {
	return fmt.Sprintf("%x", h.Bytes())
}

// SumFile hashes the whole content of a file
func SumFile(r io.Reader) (string, error) {
	h := New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return h.String(), nil
}

func combine(h1, h2 uint64, t int) []byte {
	return []byte{
		byte(h1 >> 56), byte(h1 >> 48), byte(h1 >> 40), byte(h1 >> 32),
		byte(h1 >> 24), byte(h1 >> 16), byte(h1 >> 8), byte(h1),

		byte(h2 >> 56), byte(h2 >> 48), byte(h2 >> 40), byte(h2 >> 32),
		byte(h2 >> 24), byte(h2 >> 16), byte(h2 >> 8), byte(h2),

		byte(t >> 8), byte(t),
	}
}
