package overlap

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseMhapLine parses one MHAP overlap record:
//
//	a_id b_id error shared_min-mers a_strand a_begin a_end a_len b_strand b_begin b_end b_len
//
// a_strand is always 0 (forward); b_strand is 0 for same-strand, 1 for
// reverse-complement.
func parseMhapLine(line string, resolve func(string) (uint32, bool)) (Record, bool, error) {
	f := strings.Fields(line)
	if len(f) < 12 {
		return Record{}, false, errors.Errorf("malformed MHAP line (want 12 fields, got %d): %q", len(f), line)
	}

	aID, aOK := resolve(f[0])
	bID, bOK := resolve(f[1])
	if !aOK || !bOK {
		return Record{}, false, nil
	}

	score, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return Record{}, false, errors.Wrapf(err, "malformed MHAP error value: %q", f[2])
	}

	var rec Record
	rec.AID, rec.BID = aID, bID
	rec.Score = score

	var err2 error
	rec.ABegin, err2 = parseUint(f[5])
	if err2 == nil {
		rec.AEnd, err2 = parseUint(f[6])
	}
	if err2 == nil {
		rec.ALen, err2 = parseUint(f[7])
	}
	bStrand, err3 := strconv.Atoi(f[8])
	if err2 == nil && err3 == nil {
		rec.BBegin, err2 = parseUint(f[9])
	}
	if err2 == nil {
		rec.BEnd, err2 = parseUint(f[10])
	}
	if err2 == nil {
		rec.BLen, err2 = parseUint(f[11])
	}
	if err2 != nil {
		return Record{}, false, errors.Wrapf(err2, "malformed MHAP coordinates: %q", line)
	}
	if err3 != nil {
		return Record{}, false, errors.Wrapf(err3, "malformed MHAP strand: %q", f[8])
	}
	if bStrand != 0 {
		rec.Strand = Reverse
	} else {
		rec.Strand = Same
	}

	return rec, true, nil
}

func parseUint(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}
