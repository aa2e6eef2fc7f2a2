package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineFileLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o644))

	l := NewLineFile(path)
	got, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("alpha"), []byte("beta"), []byte("gamma")}, got)
}

func TestInMemoryLoad(t *testing.T) {
	symbols := [][]byte{[]byte("x"), []byte("y")}
	l := NewInMemory(symbols)
	got, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, symbols, got)
}

func TestChecksumDistinguishesSplit(t *testing.T) {
	a := Checksum([][]byte{[]byte("ab"), []byte("c")})
	b := Checksum([][]byte{[]byte("a"), []byte("bc")})
	require.NotEqual(t, a, b)
}

func TestChecksumDeterministic(t *testing.T) {
	symbols := [][]byte{[]byte("alpha"), []byte("beta")}
	require.Equal(t, Checksum(symbols), Checksum(symbols))
}
