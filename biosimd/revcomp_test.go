// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseComp8(t *testing.T) {
	assert.Equal(t, "", ReverseComp8(""))
	assert.Equal(t, "T", ReverseComp8("A"))
	assert.Equal(t, "TACG", ReverseComp8("CGTA"))
	assert.Equal(t, "NNNN", ReverseComp8("wxyz"))
}

func TestReverseComp8Inplace(t *testing.T) {
	b := []byte("ACGTACGT")
	ReverseComp8Inplace(b)
	assert.Equal(t, "ACGTACGT", string(b))

	b = []byte("AACCGGTT")
	ReverseComp8Inplace(b)
	assert.Equal(t, "AACCGGTT", string(b))

	b = []byte("AAAACCCC")
	ReverseComp8Inplace(b)
	assert.Equal(t, "GGGGTTTT", string(b))
}

func TestCleanASCIISeqInplace(t *testing.T) {
	b := []byte("acgtnACGTNxyz")
	CleanASCIISeqInplace(b)
	assert.Equal(t, "ACGTNACGTNNNN", string(b))
}
