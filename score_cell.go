package alnseq

// stepCell runs one step of the §4.1 recurrence. scoreLeft is the
// rolling-row value at this column about to be overwritten, i.e. the
// cell one row up (the insertion predecessor); scoreDiag is the
// diagonal predecessor one row up and one column left; deletionCarry
// is the score of reaching this cell by a deletion from the cell to
// its left; prevDir is the direction stored at the cell one row up,
// needed to tell whether an insertion opens or extends a gap.
//
// It returns the new score, the chosen direction, and the deletion
// carry to use for the next column in this row. It never allocates.
func stepCell(
	cfg *AlignConfig,
	refIdx, qryIdx int,
	scoreLeft, scoreDiag, deletionCarry int32,
	prevDir Direction,
) (score int32, dir Direction, nextDeletionCarry int32) {
	snpScore := scoreDiag + cfg.substitution(refIdx, qryIdx)

	gapCost := cfg.effectiveExtend()
	if cfg.Affine && prevDir == Diag {
		gapCost = cfg.GapOpen
	}
	insScore := scoreLeft + gapCost

	delScore := deletionCarry

	score, dir = cfg.TieBreak.maximise(snpScore, insScore, delScore)

	if dir == Diag {
		nextDeletionCarry = score + cfg.GapOpen
	} else {
		nextDeletionCarry = score + cfg.effectiveExtend()
	}
	return score, dir, nextDeletionCarry
}

// stepCellLocal is the Waterman (local) variant of stepCell: scores
// are clamped to zero (and the direction forced to Stop) rather than
// going negative, per spec §4.1's "Local variant".
func stepCellLocal(
	cfg *AlignConfig,
	refIdx, qryIdx int,
	scoreLeft, scoreDiag, deletionCarry int32,
	prevDir Direction,
) (score int32, dir Direction, nextDeletionCarry int32) {
	score, dir, _ = stepCell(cfg, refIdx, qryIdx, scoreLeft, scoreDiag, deletionCarry, prevDir)
	if score < 0 {
		score = 0
		dir = Stop
	}
	if dir == Diag {
		nextDeletionCarry = score + cfg.GapOpen
	} else {
		nextDeletionCarry = score + cfg.effectiveExtend()
	}
	return score, dir, nextDeletionCarry
}

// stepCellEndOfRow is stepCell without computing the next deletion
// carry — the last column of a row has no right neighbour to use it.
func stepCellEndOfRow(
	cfg *AlignConfig,
	refIdx, qryIdx int,
	scoreLeft, scoreDiag, deletionCarry int32,
	prevDir Direction,
	local bool,
) (score int32, dir Direction) {
	snpScore := scoreDiag + cfg.substitution(refIdx, qryIdx)

	gapCost := cfg.effectiveExtend()
	if cfg.Affine && prevDir == Diag {
		gapCost = cfg.GapOpen
	}
	insScore := scoreLeft + gapCost

	delScore := deletionCarry

	score, dir = cfg.TieBreak.maximise(snpScore, insScore, delScore)
	if local && score < 0 {
		score = 0
		dir = Stop
	}
	return score, dir
}
