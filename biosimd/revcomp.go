// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

// revComp8Table maps an ASCII base byte to its complement. Bytes outside
// {A,C,G,T,N} (upper or lower case) map to 'N', matching the original rala
// read.cpp::create_rc, which leaves anything but A/T/C/G unchanged and thus
// effectively treats it as its own complement; we instead normalize to 'N'
// so downstream coverage/median logic never sees a mixed-case base.
var revComp8Table = [256]byte{}

func init() {
	for i := range revComp8Table {
		revComp8Table[i] = 'N'
	}
	pairs := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
	for from, to := range pairs {
		revComp8Table[from] = to
		revComp8Table[from+('a'-'A')] = to
	}
}

// ReverseComp8 returns the reverse complement of an ASCII base string. It
// never mutates src.
func ReverseComp8(src string) string {
	n := len(src)
	dst := make([]byte, n)
	for i := 0; i < n; i++ {
		dst[n-1-i] = revComp8Table[src[i]]
	}
	return string(dst)
}

// ReverseComp8Inplace reverse-complements ascii8 in place.
func ReverseComp8Inplace(ascii8 []byte) {
	n := len(ascii8)
	half := n / 2
	for i, j := 0, n-1; i != half; i, j = i+1, j-1 {
		ascii8[i], ascii8[j] = revComp8Table[ascii8[j]], revComp8Table[ascii8[i]]
	}
	if n&1 == 1 {
		ascii8[half] = revComp8Table[ascii8[half]]
	}
}

// CleanASCIISeqInplace upper-cases a-c-g-t-n in place and replaces any byte
// outside {A,C,G,T,N,a,c,g,t,n} with 'N'. This mirrors the defensive
// normalization grailbio/bio applies to freshly parsed FASTA/FASTQ records
// before they're used as coverage-profile input.
func CleanASCIISeqInplace(ascii8 []byte) {
	for i, b := range ascii8 {
		switch b {
		case 'A', 'C', 'G', 'T', 'N':
		case 'a':
			ascii8[i] = 'A'
		case 'c':
			ascii8[i] = 'C'
		case 'g':
			ascii8[i] = 'G'
		case 't':
			ascii8[i] = 'T'
		case 'n':
			ascii8[i] = 'N'
		default:
			ascii8[i] = 'N'
		}
	}
}
