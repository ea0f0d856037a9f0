package rgbobj

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"unusedsym/pkg/utils"
)

// Reader is a forward-only cursor over one object file's contents. All
// multi-byte integers in the container are little-endian.
type Reader struct {
	name string
	data []byte
	pos  int
}

func NewReader(file *File) *Reader {
	return &Reader{
		name: file.Name,
		data: file.Contents,
	}
}

func (r *Reader) Pos() int {
	return r.pos
}

func (r *Reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) truncated(want int) error {
	return &TruncatedInputError{
		File:   r.name,
		Offset: r.pos,
		Want:   want - r.remaining(),
	}
}

func (r *Reader) decodeErrf(offset int, format string, a ...any) error {
	return &DecodeError{
		File:   r.name,
		Offset: offset,
		Msg:    fmt.Sprintf(format, a...),
	}
}

func (r *Reader) U8() (uint8, error) {
	if r.remaining() < 1 {
		return 0, r.truncated(1)
	}

	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *Reader) U32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, r.truncated(4)
	}

	v := utils.Read[uint32](r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// Bytes returns the next n bytes as a slice of the underlying contents.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, r.truncated(n)
	}

	buf := r.data[r.pos : r.pos+n]
	r.pos += n
	return buf, nil
}

// CString reads up to and including the next zero byte and returns the bytes
// before it as a string.
func (r *Reader) CString() (string, error) {
	end := bytes.IndexByte(r.data[r.pos:], 0)
	if end < 0 {
		return "", &TruncatedInputError{File: r.name, Offset: r.pos}
	}

	raw := r.data[r.pos : r.pos+end]
	if !utf8.Valid(raw) {
		return "", r.decodeErrf(r.pos, "string is not valid UTF-8")
	}

	r.pos += end + 1
	return string(raw), nil
}
