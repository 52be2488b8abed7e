package system

import (
	"bytes"
	"sync"
)

// bufferPool recycles serialization buffers between dry-run encodes.
var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// maxPooledBuffer keeps one oversized document from pinning memory.
const maxPooledBuffer = 16 << 20

// GetBuffer returns an empty buffer from the pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBuffer {
		return
	}
	bufferPool.Put(buf)
}
