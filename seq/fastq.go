package seq

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// parseFastq reads FASTQ-formatted data: groups of four lines each,
// "@name", bases, "+[name]", quality. Quality is not retained — spec.md's
// coverage-profile machinery only consumes bases and name.
func parseFastq(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)

	var records []Record
	for {
		if !scanner.Scan() {
			break
		}
		header := scanner.Text()
		if len(header) == 0 {
			continue
		}
		if header[0] != '@' {
			return nil, errors.Errorf("malformed FASTQ record: expected '@', got %q", header)
		}
		name := splitOnFirstSpace(header[1:])
		if name == "" {
			return nil, errors.Errorf("malformed FASTQ record: empty name")
		}

		if !scanner.Scan() {
			return nil, errors.Errorf("malformed FASTQ record %q: missing sequence line", name)
		}
		bases := scanner.Text()

		if !scanner.Scan() {
			return nil, errors.Errorf("malformed FASTQ record %q: missing '+' line", name)
		}
		plus := scanner.Text()
		if len(plus) == 0 || plus[0] != '+' {
			return nil, errors.Errorf("malformed FASTQ record %q: expected '+', got %q", name, plus)
		}

		if !scanner.Scan() {
			return nil, errors.Errorf("malformed FASTQ record %q: missing quality line", name)
		}
		qual := scanner.Text()
		if len(qual) != len(bases) {
			return nil, errors.Errorf("malformed FASTQ record %q: quality length %d != sequence length %d",
				name, len(qual), len(bases))
		}

		records = append(records, Record{Name: name, Bases: bases})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTQ data")
	}
	if len(records) == 0 {
		return nil, errors.Errorf("malformed FASTQ file: no records")
	}
	return records, nil
}

func splitOnFirstSpace(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			return s[:i]
		}
	}
	return s
}
