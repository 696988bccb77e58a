package overlap

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parsePafLine parses one PAF overlap record's required columns:
//
//	q_name q_len q_begin q_end strand t_name t_len t_begin t_end n_match aln_len mapq ...
//
// strand is "+" (Same) or "-" (Reverse). Optional tag columns are ignored.
func parsePafLine(line string, resolve func(string) (uint32, bool)) (Record, bool, error) {
	f := strings.Fields(line)
	if len(f) < 12 {
		return Record{}, false, errors.Errorf("malformed PAF line (want >=12 fields, got %d): %q", len(f), line)
	}

	aID, aOK := resolve(f[0])
	bID, bOK := resolve(f[5])
	if !aOK || !bOK {
		return Record{}, false, nil
	}

	var rec Record
	rec.AID, rec.BID = aID, bID

	var err error
	rec.ALen, err = parseUint(f[1])
	if err == nil {
		rec.ABegin, err = parseUint(f[2])
	}
	if err == nil {
		rec.AEnd, err = parseUint(f[3])
	}
	if err == nil {
		rec.BLen, err = parseUint(f[6])
	}
	if err == nil {
		rec.BBegin, err = parseUint(f[7])
	}
	if err == nil {
		rec.BEnd, err = parseUint(f[8])
	}
	if err != nil {
		return Record{}, false, errors.Wrapf(err, "malformed PAF coordinates: %q", line)
	}

	switch f[4] {
	case "+":
		rec.Strand = Same
	case "-":
		rec.Strand = Reverse
	default:
		return Record{}, false, errors.Errorf("malformed PAF strand %q: %q", f[4], line)
	}

	if nMatch, err := strconv.ParseFloat(f[9], 64); err == nil {
		rec.Score = nMatch
	}

	return rec, true, nil
}
