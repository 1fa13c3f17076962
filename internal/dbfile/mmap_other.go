//go:build !unix

package dbfile

import (
	"errors"
	"os"
)

func mmapFile(_ *os.File, _ int) (*Buffer, error) {
	return nil, errors.New("mmap unsupported on this platform")
}
