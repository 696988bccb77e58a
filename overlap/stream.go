package overlap

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/klauspost/compress/gzip"
	"github.com/minio/highwayhash"

	"github.com/lukadante/rala/errs"
	"github.com/lukadante/rala/seq"
)

// Stream is a restartable, chunked, lazy sequence of overlap records. A
// single PileSet pass consumes one Reset()+NextChunk() loop to completion;
// later passes Reset() and stream again, matching spec.md §4.2's
// multi-pass pipeline.
type Stream interface {
	// Reset rewinds the stream to its first record.
	Reset() error
	// NextChunk parses records until roughly budgetBytes of raw input have
	// been consumed (at least one line is read per call when budgetBytes is
	// positive; blank lines and records naming unknown reads are dropped,
	// so a chunk may hold no records while hasMore is still true),
	// returning hasMore=false once the stream is exhausted.
	NextChunk(budgetBytes int) (recs []Record, hasMore bool, err error)
}

// lineParser turns one non-blank input line into a Record, resolving read
// names via resolve. ok is false (with err nil) when the line names a read
// the store doesn't know about — the caller logs and skips it rather than
// failing the whole stream, matching spec.md §7's "per-record failures
// degrade gracefully."
type lineParser func(line string, resolve func(string) (uint32, bool)) (rec Record, ok bool, err error)

// lineStream is the shared chunked-reader implementation behind both the
// MHAP and PAF formats; only the per-line parser differs.
type lineStream struct {
	path   string
	gz     bool
	store  *seq.Store
	parse  lineParser

	f       *os.File
	gzr     *gzip.Reader
	scanner *bufio.Scanner
}

// highwayhashKey is a fixed key used purely to compute a reproducible
// per-chunk fingerprint for --debug runs; this is not a MAC, so a constant
// key is fine.
var highwayhashKey = make([]byte, 32)

// Open detects MHAP vs PAF by suffix (".mhap"/".paf", each optionally
// ".gz") and returns a Stream over path, resolving read names against
// store.
func Open(path string, store *seq.Store) (Stream, error) {
	stem := path
	gz := strings.HasSuffix(path, ".gz")
	if gz {
		stem = strings.TrimSuffix(path, ".gz")
	}

	var parse lineParser
	switch {
	case strings.HasSuffix(stem, ".mhap"):
		parse = parseMhapLine
	case strings.HasSuffix(stem, ".paf"):
		parse = parsePafLine
	default:
		return nil, errs.InputFormat(nil, "overlap: unrecognized overlap file suffix: %s", path)
	}

	s := &lineStream{path: path, gz: gz, store: store, parse: parse}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *lineStream) Reset() error {
	s.close()

	f, err := os.Open(s.path)
	if err != nil {
		return errs.Resource(err, "overlap: open %s", s.path)
	}
	s.f = f

	var r = io.Reader(f)
	if s.gz {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			s.f = nil
			return errs.InputFormat(err, "overlap: gzip %s", s.path)
		}
		s.gzr = gzr
		r = gzr
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<28)
	s.scanner = scanner
	return nil
}

func (s *lineStream) close() {
	if s.gzr != nil {
		s.gzr.Close()
		s.gzr = nil
	}
	if s.f != nil {
		s.f.Close()
		s.f = nil
	}
	s.scanner = nil
}

func (s *lineStream) NextChunk(budgetBytes int) ([]Record, bool, error) {
	var recs []Record
	var chunkBytes []byte
	consumed := 0
	exhausted := false

	for consumed < budgetBytes {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return recs, false, errs.InputFormat(err, "overlap: scan %s", s.path)
			}
			exhausted = true
			break
		}
		line := s.scanner.Text()
		consumed += len(line) + 1
		if len(line) == 0 {
			continue
		}
		chunkBytes = append(chunkBytes, line...)

		rec, ok, err := s.parse(line, s.store.ByName)
		if err != nil {
			return recs, false, errs.InputFormat(err, "overlap: parse %s", s.path)
		}
		if !ok {
			log.Debug.Printf("overlap: dropping record with unresolved read name: %q", line)
			continue
		}
		recs = append(recs, rec)
	}

	if len(chunkBytes) > 0 {
		sum := highwayhash.Sum64(chunkBytes, highwayhashKey)
		log.Debug.Printf("overlap: chunk of %d records, %d bytes, highwayhash=%016x", len(recs), len(chunkBytes), sum)
	}

	return recs, !exhausted, nil
}
