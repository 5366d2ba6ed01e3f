package filestore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tlvkit/ext"
)

func TestCreateOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "account.bin")
	owner := [32]byte{0xAB, 0xCD}

	p, err := Create(path, owner, 1, []byte("seed"), 0xFE)
	require.NoError(t, err)

	e := ext.NewEngine(p)
	counter := bytes.Repeat([]byte{3}, ext.CounterLen)
	require.NoError(t, e.Add(ext.TagFlags, []byte{1}))
	require.NoError(t, e.Add(ext.TagCounter, counter))
	require.NoError(t, e.Remove(ext.TagFlags))
	require.NoError(t, p.Flush())
	require.NoError(t, p.Close())

	// reopen and verify the persisted layout
	p2, err := Open(path)
	require.NoError(t, err)
	defer p2.Close()

	br, err := ext.ParseBaseRecord(p2.Bytes())
	require.NoError(t, err)
	require.Equal(t, owner[:], br.Owner())

	e2 := ext.NewEngine(p2)
	list, err := e2.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, byte(ext.TagCounter), list[0].Tag)

	got, err := e2.Get(ext.TagCounter)
	require.NoError(t, err)
	require.Equal(t, counter, got)
}

func TestCreateRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "account.bin")
	p, err := Create(path, [32]byte{}, 0, nil, 0)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	_, err = Create(path, [32]byte{}, 0, nil, 0)
	require.Error(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
}

func TestOpenFileSmallerThanBaseRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, ext.BaseLen-1), 0o644))

	_, err := Open(path)
	require.Error(t, err)
}

func TestShrinkTruncatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "account.bin")
	p, err := Create(path, [32]byte{}, 0, nil, 0)
	require.NoError(t, err)

	e := ext.NewEngine(p)
	require.NoError(t, e.Add(ext.TagFlags, []byte{1}))
	require.NoError(t, e.Remove(ext.TagFlags))
	require.NoError(t, p.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(ext.BaseLen), info.Size())
}
