package mclgroup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groups.txt")
	require.NoError(t, os.WriteFile(path, []byte("read1\tread2\nread3\tread4\tread5\n"), 0o644))

	names := map[string]uint32{"read1": 0, "read2": 1, "read3": 2, "read4": 3, "read5": 4}
	resolve := func(name string) (uint32, bool) {
		id, ok := names[name]
		return id, ok
	}

	group0, err := Read(path, 0, resolve)
	require.NoError(t, err)
	assert.Equal(t, map[uint32]struct{}{0: {}, 1: {}}, group0)

	group1, err := Read(path, 1, resolve)
	require.NoError(t, err)
	assert.Equal(t, map[uint32]struct{}{2: {}, 3: {}, 4: {}}, group1)

	_, err = Read(path, 2, resolve)
	assert.Error(t, err)
}

func TestReadUnresolvedNamesSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groups.txt")
	require.NoError(t, os.WriteFile(path, []byte("read1\tghost\tread2\n"), 0o644))

	names := map[string]uint32{"read1": 0, "read2": 1}
	resolve := func(name string) (uint32, bool) {
		id, ok := names[name]
		return id, ok
	}

	group, err := Read(path, 0, resolve)
	require.NoError(t, err)
	assert.Equal(t, map[uint32]struct{}{0: {}, 1: {}}, group)
}
