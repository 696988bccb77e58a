package mclgroup

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Read scans path, an MCL matrix-format cluster file (one cluster per line,
// whitespace-separated member names), and returns the set of sequence ids
// belonging to the group'th cluster (0-indexed). resolve maps a member name
// as it appears in the file to the dense sequence id assigned by seq.Store;
// names resolve returns false for are silently skipped, mirroring the
// original's tolerance for MCL output naming reads that didn't survive
// earlier filtering. Every line, blank or not, counts as one group; a
// layout with one id per line and blank lines between groups is not
// recognised.
func Read(path string, group int, resolve func(name string) (uint32, bool)) (map[uint32]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "mclgroup: open %s", path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1<<28)

	line := 0
	for sc.Scan() {
		if line == group {
			ids := map[uint32]struct{}{}
			for _, tok := range strings.Fields(sc.Text()) {
				if id, ok := resolve(tok); ok {
					ids[id] = struct{}{}
				}
			}
			return ids, nil
		}
		line++
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "mclgroup: scan %s", path)
	}
	return nil, errors.Errorf("mclgroup: group %d not found in %s (file has %d lines)", group, path, line)
}
