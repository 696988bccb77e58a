package overlap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukadante/rala/seq"
)

func storeWithReads(t *testing.T, names ...string) *seq.Store {
	t.Helper()
	dir := t.TempDir()
	var content string
	for _, n := range names {
		content += ">" + n + "\nACGTACGTACGT\n"
	}
	path := filepath.Join(dir, "reads.fasta")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	s, err := seq.Load(path)
	require.NoError(t, err)
	return s
}

func TestOpenPaf(t *testing.T) {
	store := storeWithReads(t, "read1", "read2", "read3")
	dir := t.TempDir()
	path := filepath.Join(dir, "overlaps.paf")
	content := "read1\t1000\t700\t1000\t+\tread2\t1000\t0\t300\t250\t300\t60\n" +
		"read2\t1000\t700\t1000\t+\tread3\t1000\t0\t300\t250\t300\t60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stream, err := Open(path, store)
	require.NoError(t, err)

	var all []Record
	for {
		recs, hasMore, err := stream.NextChunk(1 << 20)
		require.NoError(t, err)
		all = append(all, recs...)
		if !hasMore {
			break
		}
	}
	require.Len(t, all, 2)
	assert.Equal(t, uint32(0), all[0].AID)
	assert.Equal(t, uint32(1), all[0].BID)
	assert.Equal(t, uint32(700), all[0].ABegin)
	assert.Equal(t, uint32(1000), all[0].AEnd)
	assert.Equal(t, Same, all[0].Strand)

	require.NoError(t, stream.Reset())
	recs, _, err := stream.NextChunk(1 << 20)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestOpenMhap(t *testing.T) {
	store := storeWithReads(t, "read1", "read2")
	dir := t.TempDir()
	path := filepath.Join(dir, "overlaps.mhap")
	content := "read1 read2 0.02 120 0 700 1000 1000 1 0 300 1000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stream, err := Open(path, store)
	require.NoError(t, err)
	recs, _, err := stream.NextChunk(1 << 20)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, Reverse, recs[0].Strand)
	assert.Equal(t, uint32(700), recs[0].ABegin)
}

func TestOpenUnresolvedNamesDropped(t *testing.T) {
	store := storeWithReads(t, "read1")
	dir := t.TempDir()
	path := filepath.Join(dir, "overlaps.paf")
	content := "read1\t1000\t0\t300\t+\tghost\t1000\t0\t300\t250\t300\t60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stream, err := Open(path, store)
	require.NoError(t, err)
	recs, hasMore, err := stream.NextChunk(1 << 20)
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.False(t, hasMore)
}

func TestOpenUnknownSuffix(t *testing.T) {
	store := storeWithReads(t, "read1")
	dir := t.TempDir()
	path := filepath.Join(dir, "overlaps.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	_, err := Open(path, store)
	assert.Error(t, err)
}
