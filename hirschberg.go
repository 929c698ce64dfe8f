package alnseq

// scoreLastRow computes the final row of the O(refLen) rolling-row
// global-alignment recurrence over refBytes vs qryBytes — the same
// fill NeedlemanWith does, minus the direction matrix. Hirschberg uses
// one forward call and one call over both sequences reversed to score
// every possible split point in linear space (§4.4).
func scoreLastRow(cfg *AlignConfig, refBytes, qryBytes []byte) []int32 {
	cols := len(refBytes) + 1
	row := make([]int32, cols)
	wasDiag := make([]bool, cols)

	for c := 1; c < cols; c++ {
		cost := cfg.effectiveExtend()
		if c == 1 {
			cost = cfg.GapOpen
		}
		row[c] = row[c-1] + cost
	}

	for r := 1; r <= len(qryBytes); r++ {
		above := row[0]
		aboveWasDiag := wasDiag[0]

		cost := cfg.effectiveExtend()
		if r == 1 {
			cost = cfg.GapOpen
		}
		row[0] = above + cost
		wasDiag[0] = false

		diag := above
		deletionCarry := row[0]
		if aboveWasDiag {
			deletionCarry += cfg.GapOpen
		} else {
			deletionCarry += cfg.effectiveExtend()
		}

		qryIdx := foldIndex(qryBytes[r-1])
		for c := 1; c < cols; c++ {
			above = row[c]
			aboveWD := wasDiag[c]
			refIdx := foldIndex(refBytes[c-1])

			snpScore := diag + cfg.substitution(refIdx, qryIdx)
			gapCost := cfg.effectiveExtend()
			if cfg.Affine && aboveWD {
				gapCost = cfg.GapOpen
			}
			insScore := above + gapCost
			delScore := deletionCarry

			newScore, dir := cfg.TieBreak.maximise(snpScore, insScore, delScore)

			row[c] = newScore
			wasDiag[c] = dir == Diag

			if dir == Diag {
				deletionCarry = newScore + cfg.GapOpen
			} else {
				deletionCarry = newScore + cfg.effectiveExtend()
			}
			diag = above
		}
	}
	return row
}

// hirschbergBaseLimit is the query length at or below which hirschberg
// falls back to the direct O(refLen*qryLen) kernel (align_one_vs_many)
// instead of splitting further — below this size the full matrix is
// cheaper to build than to recurse past.
const hirschbergBaseLimit = 1

// Hirschberg runs divide-and-conquer global alignment in O(refLen)
// memory: scoreLastRow forward and reversed locate the query midpoint's
// best-scoring reference split, and each half recurses independently,
// down to a direct full-matrix alignment at the base case (§4.4).
func Hirschberg(cfg *AlignConfig, ref, qry *Sequence) *Alignment {
	refBytes := append([]byte(nil), ref.Range()...)
	qryBytes := append([]byte(nil), qry.Range()...)

	labels, refTrace, qryTrace, matches, mismatches, insertions, deletions := hirschbergSplit(cfg, refBytes, qryBytes)

	var score int32
	if len(refBytes) > 0 || len(qryBytes) > 0 {
		score = scoreLastRow(cfg, refBytes, qryBytes)[len(refBytes)]
	}

	return &Alignment{
		RefID:      ref.ID,
		QryID:      qry.ID,
		RefStart:   ref.Offset,
		RefEnd:     ref.Offset + len(refBytes) - 1,
		QryStart:   qry.Offset,
		QryEnd:     qry.Offset + len(qryBytes) - 1,
		Labels:     labels,
		RefTrace:   refTrace,
		QryTrace:   qryTrace,
		Matches:    matches,
		Mismatches: mismatches,
		Insertions: insertions,
		Deletions:  deletions,
		Score:      score,
	}
}

func hirschbergSplit(cfg *AlignConfig, refBytes, qryBytes []byte) (labels []Label, refTrace, qryTrace []byte, matches, mismatches, insertions, deletions int) {
	switch {
	case len(qryBytes) == 0 && len(refBytes) == 0:
		return nil, nil, nil, 0, 0, 0, 0

	case len(qryBytes) == 0:
		labels = make([]Label, len(refBytes))
		refTrace = append([]byte(nil), refBytes...)
		qryTrace = make([]byte, len(refBytes))
		for i := range labels {
			labels[i] = LabelGap
			qryTrace[i] = gapByte
		}
		return labels, refTrace, qryTrace, 0, 0, 0, len(refBytes)

	case len(refBytes) == 0:
		labels = make([]Label, len(qryBytes))
		qryTrace = append([]byte(nil), qryBytes...)
		refTrace = make([]byte, len(qryBytes))
		for i := range labels {
			labels[i] = LabelGap
			refTrace[i] = gapByte
		}
		return labels, refTrace, qryTrace, 0, 0, len(qryBytes), 0

	case len(qryBytes) <= hirschbergBaseLimit:
		return alignOneVsMany(cfg, refBytes, qryBytes)
	}

	mid := len(qryBytes) / 2
	forward := scoreLastRow(cfg, refBytes, qryBytes[:mid])
	backward := scoreLastRow(cfg, reverseOf(refBytes), reverseOf(qryBytes[mid:]))

	refLen := len(refBytes)
	var bestTotal int32
	split := 0
	for k := 0; k <= refLen; k++ {
		total := forward[k] + backward[refLen-k]
		if k == 0 || total > bestTotal {
			bestTotal = total
			split = k
		}
	}

	lLabels, lRef, lQry, lm, lmm, li, ld := hirschbergSplit(cfg, refBytes[:split], qryBytes[:mid])
	rLabels, rRef, rQry, rm, rmm, ri, rd := hirschbergSplit(cfg, refBytes[split:], qryBytes[mid:])

	labels = append(lLabels, rLabels...)
	refTrace = append(lRef, rRef...)
	qryTrace = append(lQry, rQry...)
	return labels, refTrace, qryTrace, lm + rm, lmm + rmm, li + ri, ld + rd
}

// alignOneVsMany is Hirschberg's base case: a direct full-matrix global
// alignment, cheap because one side is tiny by construction.
func alignOneVsMany(cfg *AlignConfig, refBytes, qryBytes []byte) (labels []Label, refTrace, qryTrace []byte, matches, mismatches, insertions, deletions int) {
	ref := NewSequence("", refBytes)
	qry := NewSequence("", qryBytes)
	res := NeedlemanWith(cfg, ref, qry, NewByteDirMatrix)
	aln := Traceback(res)
	return aln.Labels, aln.RefTrace, aln.QryTrace, aln.Matches, aln.Mismatches, aln.Insertions, aln.Deletions
}

func reverseOf(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
