package seq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFasta(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "reads.fasta", ">read1 description\nACGTACGT\n>read2\nTTTT\nGGGG\n")

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, s.Count())

	id0, ok := s.ByName("read1")
	require.True(t, ok)
	assert.Equal(t, uint32(0), id0)
	assert.Equal(t, "ACGTACGT", s.Bases(id0))
	assert.Equal(t, uint32(8), s.Length(id0))
	assert.Equal(t, "ACGTACGT", s.RevComp(id0))

	id1, ok := s.ByName("read2")
	require.True(t, ok)
	assert.Equal(t, "TTTTGGGG", s.Bases(id1))
	assert.Equal(t, "read2", s.Name(id1))

	_, ok = s.ByName("nonexistent")
	assert.False(t, ok)
}

func TestLoadFastq(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "reads.fastq", "@read1\nACGT\n+\nIIII\n@read2\nTTAA\n+read2\nIIII\n")

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, s.Count())
	assert.Equal(t, "ACGT", s.Bases(0))
	assert.Equal(t, "TTAA", s.Bases(1))
	assert.Equal(t, "TTAA", s.RevComp(1))
}

func TestLoadRejectsUnknownSuffix(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "reads.txt", ">read1\nACGT\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "reads.fasta", ">read1\nACGT\n>read1\nTTTT\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestContentHashStableAndDistinct(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "reads.fasta", ">read1\nACGTACGT\n>read2\nTTTTTTTT\n")
	s, err := Load(path)
	require.NoError(t, err)

	h1a := s.ContentHash(0)
	h1b := s.ContentHash(0)
	assert.Equal(t, h1a, h1b)
	assert.NotEqual(t, h1a, s.ContentHash(1))
}
