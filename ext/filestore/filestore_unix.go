//go:build unix

package filestore

import (
	"os"

	"golang.org/x/sys/unix"
)

// Provider is a memory-mapped file buffer. Writes land in the shared mapping
// and reach the file via the page cache; Flush forces them to disk.
type Provider struct {
	f    *os.File
	data []byte
}

func open(f *os.File, size int) (*Provider, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Provider{f: f, data: data}, nil
}

// Bytes returns the mapped buffer.
func (p *Provider) Bytes() []byte { return p.data }

// remap replaces the current mapping with one of newSize bytes, resizing the
// file first. ftruncate extension zero-fills, matching the Grow contract.
func (p *Provider) remap(newSize int) error {
	// The mapping is MAP_SHARED, so pending writes survive the unmap; sync
	// them anyway so a failed remap cannot lose the shifted bytes.
	if err := unix.Msync(p.data, unix.MS_SYNC); err != nil {
		return err
	}
	if err := unix.Munmap(p.data); err != nil {
		return err
	}
	p.data = nil
	if err := unix.Ftruncate(int(p.f.Fd()), int64(newSize)); err != nil {
		// Re-establish a mapping over whatever size the file still has.
		if info, serr := p.f.Stat(); serr == nil {
			if data, merr := unix.Mmap(int(p.f.Fd()), 0, int(info.Size()),
				unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); merr == nil {
				p.data = data
			}
		}
		return err
	}
	data, err := unix.Mmap(int(p.f.Fd()), 0, newSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return err
	}
	p.data = data
	return nil
}

// Grow extends the file and mapping by n zero bytes.
func (p *Provider) Grow(n int) error {
	if n < 0 {
		return errNegativeResize(n)
	}
	return p.remap(len(p.data) + n)
}

// Shrink truncates n bytes off the end of the file and mapping.
func (p *Provider) Shrink(n int) error {
	if n < 0 || n > len(p.data) {
		return errNegativeResize(n)
	}
	return p.remap(len(p.data) - n)
}

// Flush forces the mapped buffer to disk.
func (p *Provider) Flush() error {
	return unix.Msync(p.data, unix.MS_SYNC)
}

// Close flushes, unmaps, and closes the file.
func (p *Provider) Close() error {
	if p.data != nil {
		if err := unix.Msync(p.data, unix.MS_SYNC); err != nil {
			p.f.Close()
			return err
		}
		if err := unix.Munmap(p.data); err != nil {
			p.f.Close()
			return err
		}
		p.data = nil
	}
	return p.f.Close()
}
