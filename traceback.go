package alnseq

// Traceback walks res.Matrix from its end cell back to a Stop cell
// (Waterman) or to row 0/col 0 (Needleman, whose border cells are
// also marked Stop at (0,0) and otherwise Left/Up — the walk simply
// runs until it cannot move further), building an Alignment.
//
// Direction meaning (spec §3, resolved per §4.5's worked example):
// Diag consumes one reference and one query residue; Left consumes a
// reference residue and opens a gap on the query side (a deletion);
// Up consumes a query residue and opens a gap on the reference side
// (an insertion).
func Traceback(res *AlignResult) *Alignment {
	refBytes := res.Ref.Range()
	qryBytes := res.Qry.Range()

	row, col := res.EndRow, res.EndCol
	refEnd, qryEnd := col-1, row-1

	var labels []Label
	var refTrace, qryTrace []byte
	var matches, mismatches, insertions, deletions int

	refLo, qryLo := col, row

	for {
		dir := res.Matrix.At(row, col)
		if dir == Stop {
			break
		}
		switch dir {
		case Diag:
			r := refBytes[col-1]
			q := qryBytes[row-1]
			lbl := LabelSnp
			if res.Cfg.isMatch(foldIndex(r), foldIndex(q)) {
				lbl = LabelMatch
				matches++
			} else {
				mismatches++
			}
			labels = append(labels, lbl)
			refTrace = append(refTrace, r)
			qryTrace = append(qryTrace, q)
			row--
			col--
		case Left:
			r := refBytes[col-1]
			labels = append(labels, LabelGap)
			refTrace = append(refTrace, r)
			qryTrace = append(qryTrace, gapByte)
			deletions++
			col--
		case Up:
			q := qryBytes[row-1]
			labels = append(labels, LabelGap)
			refTrace = append(refTrace, gapByte)
			qryTrace = append(qryTrace, q)
			insertions++
			row--
		default:
			panic("alnseq: corrupt direction matrix")
		}
		refLo, qryLo = col, row
	}

	reverseLabels(labels)
	reverseBytes(refTrace)
	reverseBytes(qryTrace)

	return &Alignment{
		RefID:      res.Ref.ID,
		QryID:      res.Qry.ID,
		RefStart:   res.Ref.Offset + refLo,
		RefEnd:     res.Ref.Offset + refEnd,
		QryStart:   res.Qry.Offset + qryLo,
		QryEnd:     res.Qry.Offset + qryEnd,
		Labels:     labels,
		RefTrace:   refTrace,
		QryTrace:   qryTrace,
		Matches:    matches,
		Mismatches: mismatches,
		Insertions: insertions,
		Deletions:  deletions,
		Score:      res.Score,
	}
}

func reverseLabels(s []Label) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseBytes(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
