package pile

// jsonRun is one run-length-encoded span of constant coverage, so debug
// dumps don't print one value per base.
type jsonRun struct {
	Begin PosType `json:"b"`
	End   PosType `json:"e"`
	Value uint16  `json:"v"`
}

type jsonHill struct {
	Lo PosType `json:"lo"`
	Hi PosType `json:"hi"`
}

// JSONView is the per-pile payload the original's Pile::to_json (consumed
// by print_json's "piles" key) serializes: id, a sparse run-length
// encoding of coverage (not one value per base), median, and hills.
type JSONView struct {
	ID       uint32     `json:"id"`
	Coverage []jsonRun  `json:"coverage"`
	Median   uint16     `json:"median"`
	Hills    []jsonHill `json:"hills"`
}

// ToJSONView builds the serializable view of this pile.
func (p *Pile) ToJSONView() JSONView {
	v := JSONView{ID: p.ReadID, Median: p.Median}
	if p.Begin < p.End {
		runBegin := p.Begin
		runVal := p.Coverage[p.Begin]
		for i := p.Begin + 1; i < p.End; i++ {
			if p.Coverage[i] != runVal {
				v.Coverage = append(v.Coverage, jsonRun{runBegin, i, runVal})
				runBegin, runVal = i, p.Coverage[i]
			}
		}
		v.Coverage = append(v.Coverage, jsonRun{runBegin, p.End, runVal})
	}
	for _, h := range p.Hills {
		v.Hills = append(v.Hills, jsonHill{h.Lo, h.Hi})
	}
	return v
}
