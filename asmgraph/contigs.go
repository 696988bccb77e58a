package asmgraph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// contigMinMemberReads and contigMinLength are the drop-unassembled
// thresholds extract_contigs applies when dropUnassembled is true
// (graph.cpp's extract_contigs).
const (
	contigMinMemberReads = 6
	contigMinLength      = 10000
)

// Contig is one assembled sequence ready for FASTA output.
type Contig struct {
	Index       int
	MemberReads []uint32
	Bases       string
}

// Header renders the FASTA header line spec.md §6 specifies:
// ">Ctg{i} RC:i:{read_count} LN:i:{length} Seqs:{comma-list}".
func (c Contig) Header() string {
	seqs := make([]string, len(c.MemberReads))
	for i, id := range c.MemberReads {
		seqs[i] = strconv.FormatUint(uint64(id), 10)
	}
	return fmt.Sprintf(">Ctg%d RC:i:%d LN:i:%d Seqs:%s", c.Index, len(c.MemberReads), len(c.Bases), strings.Join(seqs, ","))
}

// ExtractContigs walks every forward node (even id), skipping dead nodes
// and — when dropUnassembled is set — nodes with fewer than
// contigMinMemberReads member reads or under contigMinLength bases.
// Grounded on graph.cpp's extract_contigs.
func (g *Graph) ExtractContigs(dropUnassembled bool) []Contig {
	var contigs []Contig
	for _, n := range g.Nodes {
		if n == nil || n.ID.IsReverse() {
			continue
		}
		if dropUnassembled && (len(n.MemberReads) < contigMinMemberReads || n.Length() < contigMinLength) {
			continue
		}
		contigs = append(contigs, Contig{
			Index:       len(contigs),
			MemberReads: append([]uint32(nil), n.MemberReads...),
			Bases:       n.Label,
		})
	}
	return contigs
}

// ContigLengthSummary returns the shortest, median, and longest contig
// lengths among contigs, for the same diagnostic graph.cpp's
// extract_contigs logs to stderr.
func ContigLengthSummary(contigs []Contig) (shortest, median, longest int) {
	if len(contigs) == 0 {
		return 0, 0, 0
	}
	lengths := make([]int, len(contigs))
	for i, c := range contigs {
		lengths[i] = len(c.Bases)
	}
	sort.Ints(lengths)
	return lengths[0], lengths[len(lengths)/2], lengths[len(lengths)-1]
}
