package interval

import "math"

// PosType is the type used to represent interval coordinates.  int32 should be
// wide enough for some time to come, since that's what BAM is limited to.
//
// (This, and PosTypeMax, should move to a more central package once an
// appropriate one exists.  And then, when generics finally become part of the
// language *crosses fingers*, we can allow some applications to redefine this
// as uint32 or a 64-bit type as appropriate.)
type PosType int32

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt32
