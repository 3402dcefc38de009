package objects

import "fmt"

// Blob is the raw content of one file.
type Blob struct {
	data []byte
}

// NewBlob wraps data without copying it.
func NewBlob(data []byte) *Blob {
	if data == nil {
		data = []byte{}
	}
	return &Blob{data: data}
}

func (b *Blob) Type() ObjectType {
	return BlobType
}

// Data returns the file content.
func (b *Blob) Data() []byte {
	return b.data
}

// Size returns the content length in bytes.
func (b *Blob) Size() int {
	return len(b.data)
}

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{size: %d}", len(b.data))
}
