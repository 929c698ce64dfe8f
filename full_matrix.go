package alnseq

// AlignResult is what a full-matrix aligner (Needleman or Waterman)
// hands to Traceback: the direction matrix it filled, the best-scoring
// end cell, and that cell's score.
type AlignResult struct {
	Matrix DirectionMatrix
	EndRow int
	EndCol int
	Score  int32
	Ref    *Sequence
	Qry    *Sequence
	Cfg    *AlignConfig
	Local  bool
}

// MatrixFactory allocates a DirectionMatrix of the given dimensions.
// NewByteDirMatrix is the default; NewTwoBitDirMatrix trades CPU for a
// 4x smaller matrix and must produce identical alignments (§4.5, §9).
type MatrixFactory func(rows, cols int) DirectionMatrix

// Needleman runs global (Needleman-Wunsch) alignment with a
// one-byte-per-cell direction matrix.
func Needleman(cfg *AlignConfig, ref, qry *Sequence) *AlignResult {
	return NeedlemanWith(cfg, ref, qry, NewByteDirMatrix)
}

// NeedlemanWith is Needleman parameterised by direction-matrix
// storage, so callers (and tests) can pick TwoBitDirMatrix instead.
func NeedlemanWith(cfg *AlignConfig, ref, qry *Sequence, newMatrix MatrixFactory) *AlignResult {
	refBytes, qryBytes := ref.Range(), qry.Range()
	refLen, qryLen := len(refBytes), len(qryBytes)
	rows, cols := qryLen+1, refLen+1
	matrix := newMatrix(rows, cols)

	row := make([]int32, cols)
	row[0] = 0
	matrix.Set(0, 0, Stop)
	for c := 1; c < cols; c++ {
		cost := cfg.effectiveExtend()
		if c == 1 {
			cost = cfg.GapOpen
		}
		row[c] = row[c-1] + cost
		matrix.Set(0, c, Left)
	}

	for r := 1; r < rows; r++ {
		above := row[0]
		cost := cfg.effectiveExtend()
		if r == 1 {
			cost = cfg.GapOpen
		}
		row[0] = above + cost
		matrix.Set(r, 0, Up)

		diag := above
		deletionCarry := row[0]
		if matrix.At(r, 0) == Diag {
			deletionCarry += cfg.GapOpen
		} else {
			deletionCarry += cfg.effectiveExtend()
		}

		qryIdx := foldIndex(qryBytes[r-1])
		for c := 1; c < cols; c++ {
			above = row[c]
			refIdx := foldIndex(refBytes[c-1])
			prevDir := matrix.At(r-1, c)

			var score int32
			var dir Direction
			if c == cols-1 {
				score, dir = stepCellEndOfRow(cfg, refIdx, qryIdx, above, diag, deletionCarry, prevDir, false)
			} else {
				score, dir, deletionCarry = stepCell(cfg, refIdx, qryIdx, above, diag, deletionCarry, prevDir)
			}
			row[c] = score
			matrix.Set(r, c, dir)
			diag = above
		}
	}

	return &AlignResult{
		Matrix: matrix,
		EndRow: rows - 1,
		EndCol: cols - 1,
		Score:  row[cols-1],
		Ref:    ref,
		Qry:    qry,
		Cfg:    cfg,
		Local:  false,
	}
}

// Waterman runs local (Smith-Waterman) alignment with a
// one-byte-per-cell direction matrix.
func Waterman(cfg *AlignConfig, ref, qry *Sequence) *AlignResult {
	return WatermanWith(cfg, ref, qry, NewByteDirMatrix)
}

// WatermanWith is Waterman parameterised by direction-matrix storage.
func WatermanWith(cfg *AlignConfig, ref, qry *Sequence, newMatrix MatrixFactory) *AlignResult {
	refBytes, qryBytes := ref.Range(), qry.Range()
	refLen, qryLen := len(refBytes), len(qryBytes)
	rows, cols := qryLen+1, refLen+1
	matrix := newMatrix(rows, cols)

	row := make([]int32, cols)
	var bestScore int32
	bestRow, bestCol := 0, 0

	for c := 0; c < cols; c++ {
		matrix.Set(0, c, Stop)
	}

	for r := 1; r < rows; r++ {
		above := row[0]
		row[0] = 0
		matrix.Set(r, 0, Stop)

		diag := above
		deletionCarry := row[0]
		if matrix.At(r, 0) == Diag {
			deletionCarry += cfg.GapOpen
		} else {
			deletionCarry += cfg.effectiveExtend()
		}

		qryIdx := foldIndex(qryBytes[r-1])
		for c := 1; c < cols; c++ {
			above = row[c]
			refIdx := foldIndex(refBytes[c-1])
			prevDir := matrix.At(r-1, c)

			var score int32
			var dir Direction
			if c == cols-1 {
				score, dir = stepCellEndOfRow(cfg, refIdx, qryIdx, above, diag, deletionCarry, prevDir, true)
			} else {
				score, dir, deletionCarry = stepCellLocal(cfg, refIdx, qryIdx, above, diag, deletionCarry, prevDir)
			}
			row[c] = score
			matrix.Set(r, c, dir)
			diag = above

			if score > bestScore {
				bestScore = score
				bestRow, bestCol = r, c
			}
		}
	}

	return &AlignResult{
		Matrix: matrix,
		EndRow: bestRow,
		EndCol: bestCol,
		Score:  bestScore,
		Ref:    ref,
		Qry:    qry,
		Cfg:    cfg,
		Local:  true,
	}
}
