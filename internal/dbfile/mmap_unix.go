//go:build unix

package dbfile

import (
	"os"

	"golang.org/x/sys/unix"
)

func mmapFile(f *os.File, size int) (*Buffer, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		data:    data,
		release: func() error { return unix.Munmap(data) },
	}, nil
}
