// Package filestore provides a file-backed ext.Provider. On unix platforms
// the file is memory-mapped read-write and resized with ftruncate; elsewhere
// the whole file is held in memory and written back on Flush.
//
// The exclusive-access contract of ext.Provider extends to the file itself:
// nothing else may map or write the file while a Provider is open on it.
package filestore

import (
	"fmt"
	"os"

	"github.com/joshuapare/tlvkit/ext"
)

func errNegativeResize(n int) error {
	return fmt.Errorf("filestore: invalid resize of %d bytes", n)
}

// Create writes a fresh buffer holding an initialized base record to path and
// opens a Provider over it. Fails if the file already exists.
func Create(path string, owner [32]byte, stateTag byte, aux []byte, bump byte) (*Provider, error) {
	initial := make([]byte, ext.BaseLen)
	if err := ext.InitBase(initial, owner, stateTag, aux, bump); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	if _, err := f.Write(initial); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return Open(path)
}

// Open opens a Provider over an existing buffer file.
func Open(path string) (*Provider, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := info.Size()
	if size < int64(ext.BaseLen) {
		f.Close()
		return nil, fmt.Errorf("filestore: %s is %d bytes, smaller than a base record (%d)",
			path, size, ext.BaseLen)
	}
	if size > int64(^uint(0)>>1) {
		f.Close()
		return nil, fmt.Errorf("filestore: %s too large (%d bytes)", path, size)
	}
	return open(f, int(size))
}
