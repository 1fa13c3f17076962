// Package dbfile provides read-only access to a cscope database file as an
// immutable byte buffer.
//
// The buffer is memory-mapped where the platform supports it and loaded into
// memory otherwise. Callers must Close the buffer once parsing and index
// construction are complete; the mapping is private and read-only for its
// whole lifetime.
package dbfile

import (
	"fmt"
	"os"
)

// Buffer is an acquired database buffer. Bytes must not be used after Close.
type Buffer struct {
	data    []byte
	release func() error
}

// Bytes returns the full database contents.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Close releases the underlying storage. Safe to call once on every exit
// path, including parse failure.
func (b *Buffer) Close() error {
	if b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	b.data = nil
	return release()
}

// Open acquires path as a read-only buffer, preferring a memory mapping.
func Open(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("database stat: %w", err)
	}
	if info.Size() == 0 {
		return &Buffer{}, nil
	}

	if buf, err := mmapFile(f, int(info.Size())); err == nil {
		return buf, nil
	}

	// Fall back to loading the whole file.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading database: %w", err)
	}
	return &Buffer{data: data}, nil
}

// FromBytes wraps an in-memory buffer, mainly for tests.
func FromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}
