package seq

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const bufferInitSize = 300 * 1024 * 1024

// parseFasta reads FASTA-formatted data, consisting of a number of named
// sequences that may be interrupted by newlines. Sequence names are the
// stretch of characters excluding spaces immediately after '>'; any text
// after a space is ignored.
func parseFasta(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)

	var records []Record
	var name string
	var bases strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if bases.Len() != 0 || name != "" {
				records = append(records, Record{Name: name, Bases: bases.String()})
				bases.Reset()
			}
			name = strings.Split(line[1:], " ")[0]
			if name == "" {
				return nil, errors.Errorf("malformed FASTA record: empty name")
			}
		} else {
			bases.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	if name == "" {
		return nil, errors.Errorf("malformed FASTA file: no records")
	}
	records = append(records, Record{Name: name, Bases: bases.String()})
	return records, nil
}
