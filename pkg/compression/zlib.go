// Package compression holds the codec used for objects at rest. Git stores
// every loose object as a zlib stream (RFC 1950).
package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Codec compresses and decompresses whole buffers.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Zlib is the git-compatible codec. The zero value compresses at zlib's
// default level; use NewZlib to pick another.
type Zlib struct {
	level int
	set   bool
}

// NewZlib returns a codec for level, read the way git reads core.compression:
// -1 is the zlib default, 0 stores without compression, 1 (fastest) through
// 9 (smallest).
func NewZlib(level int) (Zlib, error) {
	if level < zlib.DefaultCompression || level > zlib.BestCompression {
		return Zlib{}, fmt.Errorf("compression level %d out of range [-1, 9]", level)
	}
	return Zlib{level: level, set: true}, nil
}

// Level returns the zlib level the codec writes with.
func (z Zlib) Level() int {
	if !z.set {
		return zlib.DefaultCompression
	}
	return z.level
}

// Default is the codec used by the object store.
var Default Codec = Zlib{}

// Compress returns data as a complete zlib stream. Empty input still yields a
// valid stream.
func (z Zlib) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, z.Level())
	if err != nil {
		return nil, fmt.Errorf("create zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish zlib stream: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream, verifying its checksum.
func (z Zlib) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open zlib stream: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return out, nil
}

// Compress uses the Default codec.
func Compress(data []byte) ([]byte, error) {
	return Default.Compress(data)
}

// Decompress uses the Default codec.
func Decompress(data []byte) ([]byte, error) {
	return Default.Decompress(data)
}
