package strings

import (
	"unsafe"

	"github.com/KirilStrezikozin/cstring/pkg/vector"
)

// Buffer is a growable byte buffer without a terminator.
type Buffer struct {
	vec *vector.Vector[byte]
}

func NewBuffer(opts ...vector.Option) *Buffer {
	return &Buffer{vec: vector.New[byte](opts...)}
}

func (b *Buffer) Len() int {
	return b.vec.Len()
}

func (b *Buffer) Cap() int {
	return b.vec.Cap()
}

func (b *Buffer) Push(c byte) error {
	return b.vec.Push(c)
}

// PushBytes appends p and returns how many bytes were appended.
// See [vector.Vector.PushAll] for the meaning of mode.
func (b *Buffer) PushBytes(p []byte, mode vector.Mode) (int, error) {
	return b.vec.PushAll(p, mode)
}

func (b *Buffer) PushStr(s string, mode vector.Mode) (int, error) {
	return b.vec.PushAll(bytesOf(s), mode)
}

// Bytes returns the accumulated bytes without copying.
func (b *Buffer) Bytes() []byte {
	return b.vec.Slice()
}

// String returns the accumulated string.
// Like [strings.Builder.String], it does not allocate a new string.
func (b *Buffer) String() string {
	return unsafe.String(unsafe.SliceData(b.Bytes()), b.Len())
}

// ToString copies the accumulated bytes into a new String.
func (b *Buffer) ToString() (*String, error) {
	return FromBytes(b.Bytes(), b.vec.Options())
}

// TransformToString terminates the accumulated bytes and moves the storage
// into a String without copying. The Buffer is released afterwards.
func (b *Buffer) TransformToString() (*String, error) {
	if err := b.vec.Push(0); err != nil {
		return nil, &Error{Op: "transform to string", Err: err}
	}

	moved := b.vec
	b.vec = vector.New[byte](moved.Options())
	b.vec.Release()

	return &String{buf: moved}, nil
}

func (b *Buffer) Release() {
	b.vec.Release()
}

// bytesOf returns the bytes of s without copying. The result must not be
// modified.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
