package seq

import (
	"io"
	"os"
	"strings"

	"github.com/dgryski/go-farm"
	"github.com/grailbio/base/unsafe"
	"github.com/klauspost/compress/gzip"

	"github.com/lukadante/rala/biosimd"
	"github.com/lukadante/rala/errs"
)

// Store is an in-memory sequence collection: every read is held in its
// file-order position (spec.md's "order reads appear"), accessed by dense
// id. The rest of the module uses this concrete type directly.
type Store struct {
	names   []string
	bases   []string
	byName  map[string]uint32
	revComp []string // lazily filled, one slot per id
	hashes  []uint64 // lazily filled, one slot per id
}

// Record is one parsed read: a name and its bases, in encounter order.
type Record struct {
	Name  string
	Bases string
}

// Load reads path (FASTA or FASTQ, optionally gzip-compressed) and returns
// a Store with one entry per record, ids assigned in file order. The
// format is chosen by suffix: ".fasta"/".fa" for FASTA, ".fastq"/".fq" for
// FASTQ, each optionally followed by ".gz".
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Resource(err, "seq: open %s", path)
	}
	defer f.Close()

	r, stem, err := decompress(f, path)
	if err != nil {
		return nil, err
	}

	var records []Record
	switch {
	case strings.HasSuffix(stem, ".fasta"), strings.HasSuffix(stem, ".fa"):
		records, err = parseFasta(r)
	case strings.HasSuffix(stem, ".fastq"), strings.HasSuffix(stem, ".fq"):
		records, err = parseFastq(r)
	default:
		return nil, errs.InputFormat(nil, "seq: unrecognized sequence file suffix: %s", path)
	}
	if err != nil {
		return nil, errs.InputFormat(err, "seq: parse %s", path)
	}

	s := &Store{
		names:   make([]string, len(records)),
		bases:   make([]string, len(records)),
		byName:  make(map[string]uint32, len(records)),
		revComp: make([]string, len(records)),
		hashes:  make([]uint64, len(records)),
	}
	for i, rec := range records {
		if _, dup := s.byName[rec.Name]; dup {
			return nil, errs.InputFormat(nil, "seq: duplicate sequence name %q in %s", rec.Name, path)
		}
		s.names[i] = rec.Name
		s.bases[i] = rec.Bases
		s.byName[rec.Name] = uint32(i)
	}
	return s, nil
}

// decompress peels off a ".gz" suffix if present, returning a reader over
// the decompressed stream and the path stem used for format detection.
func decompress(f *os.File, path string) (io.Reader, string, error) {
	if !strings.HasSuffix(path, ".gz") {
		return f, path, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, "", errs.InputFormat(err, "seq: gzip %s", path)
	}
	return gz, strings.TrimSuffix(path, ".gz"), nil
}

// ByName resolves a sequence name to its dense id.
func (s *Store) ByName(name string) (uint32, bool) {
	id, ok := s.byName[name]
	return id, ok
}

// Bases returns the forward-strand bases of read id.
func (s *Store) Bases(id uint32) string {
	return s.bases[id]
}

// RevComp returns the reverse complement of read id's bases, computed once
// and cached.
func (s *Store) RevComp(id uint32) string {
	if s.revComp[id] == "" && len(s.bases[id]) > 0 {
		s.revComp[id] = biosimd.ReverseComp8(s.bases[id])
	}
	return s.revComp[id]
}

// Length returns the base count of read id.
func (s *Store) Length(id uint32) uint32 {
	return uint32(len(s.bases[id]))
}

// Count returns the number of reads held by the store.
func (s *Store) Count() int {
	return len(s.bases)
}

// Name returns the original FASTA/FASTQ header name of read id.
func (s *Store) Name(id uint32) string {
	return s.names[id]
}

// ContentHash returns a cheap 64-bit fingerprint of read id's bases,
// computed once and cached. Used by tests that want an identity check
// without comparing whole strings.
func (s *Store) ContentHash(id uint32) uint64 {
	if s.hashes[id] == 0 {
		s.hashes[id] = farm.Hash64(unsafe.StringToBytes(s.bases[id]))
	}
	return s.hashes[id]
}
