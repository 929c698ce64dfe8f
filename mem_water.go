package alnseq

// MemWaterResult is the outcome of the memory-efficient Smith-Waterman
// kernel: the best local score found and the cell range it spans, with
// no direction matrix kept around (§4.3) — a caller that also wants
// the trace re-runs Waterman (or WatermanWith) over just that range.
type MemWaterResult struct {
	Score              int32
	StartRow, StartCol int
	EndRow, EndCol     int
}

// MemWaterman runs local alignment in O(refLen) memory: one rolling
// score row and rolling start-row/start-column arrays replace the full
// direction matrix, at the cost of not being able to reconstruct the
// trace directly.
func MemWaterman(cfg *AlignConfig, ref, qry *Sequence) *MemWaterResult {
	hits, best := memWaterScanCore(cfg, ref, qry)
	_ = hits
	return best
}

// ScanPriority picks which sequence's axis memWaterScanCore reports
// one hit per position for. The two choices are not the same
// computation transposed for free: because ScoreCell's affine gap
// decision depends on the direction chosen one step up in the *same*
// column, swapping which sequence drives the outer loop changes which
// neighbour that is, and a tied cell can resolve to a different
// direction depending on which axis was scanned (§4.3, §9).
type ScanPriority int

const (
	// RefPriority reports the best local alignment ending at each
	// reference position, scanning with the reference as columns.
	RefPriority ScanPriority = iota
	// QryPriority reports the best local alignment ending at each
	// query position, scanning with the query as columns.
	QryPriority
)

// ScanHit is one entry of a MemWatermanScan result: the best local
// score ending at this scan position, and the cell range it spans.
type ScanHit struct {
	Score              int32
	StartRow, StartCol int
	EndRow, EndCol     int
}

// MemWatermanScan runs the same O(refLen) kernel as MemWaterman but,
// instead of collapsing to a single global best, keeps one ScanHit per
// position along the axis priority names — "scan mode" (§4.3): the
// best local alignment ending at each reference (or query) position in
// turn, as if sliding the other sequence across it.
func MemWatermanScan(cfg *AlignConfig, ref, qry *Sequence, priority ScanPriority) []ScanHit {
	if priority == QryPriority {
		hits, _ := memWaterScanCore(cfg, qry, ref)
		for i := range hits {
			hits[i].StartRow, hits[i].StartCol = hits[i].StartCol, hits[i].StartRow
			hits[i].EndRow, hits[i].EndCol = hits[i].EndCol, hits[i].EndRow
		}
		return hits
	}
	hits, _ := memWaterScanCore(cfg, ref, qry)
	return hits
}

// memWaterScanCore is the shared rolling-row kernel behind both
// MemWaterman and MemWatermanScan: it fills row-by-row exactly like
// WatermanWith's inner loop, but instead of a direction matrix it
// tracks, per column, the (row, col) where the current run started
// and whether the predecessor one row up was a Diag — the one bit of
// history ScoreCell's gap-open/extend decision actually needs.
func memWaterScanCore(cfg *AlignConfig, ref, qry *Sequence) ([]ScanHit, *MemWaterResult) {
	refBytes, qryBytes := ref.Range(), qry.Range()
	refLen, qryLen := len(refBytes), len(qryBytes)
	cols := refLen + 1

	score := make([]int32, cols)
	startRow := make([]int, cols)
	startCol := make([]int, cols)
	wasDiag := make([]bool, cols)
	// Row 0 cells are Stop cells, so each one starts at itself.
	for c := range startCol {
		startCol[c] = c
	}

	hits := make([]ScanHit, refLen)
	best := &MemWaterResult{}

	for r := 1; r <= qryLen; r++ {
		above := score[0]
		aboveStartRow, aboveStartCol := startRow[0], startCol[0]

		score[0] = 0
		startRow[0], startCol[0] = r, 0
		wasDiag[0] = false

		diag, diagStartRow, diagStartCol := above, aboveStartRow, aboveStartCol

		delCarry := score[0]
		if wasDiag[0] {
			delCarry += cfg.GapOpen
		} else {
			delCarry += cfg.effectiveExtend()
		}
		delStartRow, delStartCol := startRow[0], startCol[0]

		qryIdx := foldIndex(qryBytes[r-1])
		for c := 1; c <= refLen; c++ {
			above = score[c]
			aboveStartRow, aboveStartCol = startRow[c], startCol[c]
			aboveWasDiag := wasDiag[c]

			refIdx := foldIndex(refBytes[c-1])

			snpScore := diag + cfg.substitution(refIdx, qryIdx)
			gapCost := cfg.effectiveExtend()
			if cfg.Affine && aboveWasDiag {
				gapCost = cfg.GapOpen
			}
			insScore := above + gapCost
			delScore := delCarry

			newScore, dir := cfg.TieBreak.maximise(snpScore, insScore, delScore)
			if newScore < 0 {
				newScore = 0
				dir = Stop
			}

			var sr, sc int
			switch dir {
			case Stop:
				sr, sc = r, c
			case Diag:
				sr, sc = diagStartRow, diagStartCol
			case Up:
				sr, sc = aboveStartRow, aboveStartCol
			case Left:
				sr, sc = delStartRow, delStartCol
			}

			score[c] = newScore
			startRow[c], startCol[c] = sr, sc
			wasDiag[c] = dir == Diag

			if dir == Diag {
				delCarry = newScore + cfg.GapOpen
			} else {
				delCarry = newScore + cfg.effectiveExtend()
			}
			delStartRow, delStartCol = sr, sc

			diag, diagStartRow, diagStartCol = above, aboveStartRow, aboveStartCol

			if newScore > hits[c-1].Score {
				hits[c-1] = ScanHit{
					Score:    newScore,
					StartRow: sr, StartCol: sc,
					EndRow: r, EndCol: c,
				}
			}
			if newScore > best.Score {
				best.Score = newScore
				best.StartRow, best.StartCol = sr, sc
				best.EndRow, best.EndCol = r, c
			}
		}
	}

	return hits, best
}
