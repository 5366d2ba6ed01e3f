//go:build !unix

package filestore

import (
	"io"
	"os"
)

// Provider holds the whole file in memory on platforms without a usable
// mmap path. Mutations are buffered; Flush writes the buffer back.
type Provider struct {
	f    *os.File
	data []byte
}

func open(f *os.File, size int) (*Provider, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		f.Close()
		return nil, err
	}
	return &Provider{f: f, data: data}, nil
}

// Bytes returns the in-memory buffer.
func (p *Provider) Bytes() []byte { return p.data }

// Grow appends n zero bytes.
func (p *Provider) Grow(n int) error {
	if n < 0 {
		return errNegativeResize(n)
	}
	p.data = append(p.data, make([]byte, n)...)
	return nil
}

// Shrink truncates n bytes off the end.
func (p *Provider) Shrink(n int) error {
	if n < 0 || n > len(p.data) {
		return errNegativeResize(n)
	}
	p.data = p.data[:len(p.data)-n]
	return nil
}

// Flush writes the buffer back to the file and syncs it.
func (p *Provider) Flush() error {
	if err := p.f.Truncate(int64(len(p.data))); err != nil {
		return err
	}
	if _, err := p.f.WriteAt(p.data, 0); err != nil {
		return err
	}
	return p.f.Sync()
}

// Close flushes and closes the file.
func (p *Provider) Close() error {
	if err := p.Flush(); err != nil {
		p.f.Close()
		return err
	}
	return p.f.Close()
}
