package alnseq

import "testing"

func newTestConfig() *AlignConfig {
	cfg := NewAlignConfig()
	cfg.GapOpen = -10
	cfg.GapExtend = -1
	cfg.Affine = true
	cfg.TieBreak = SnpInsDel
	return cfg
}

func TestStepCellMatchWins(t *testing.T) {
	cfg := newTestConfig()
	a, c := foldIndex('A'), foldIndex('A')
	score, dir, _ := stepCell(cfg, a, c, -100, 0, -100, Diag)
	if score != 5 || dir != Diag {
		t.Fatalf("stepCell match = (%d,%s), want (5,Diag)", score, dir)
	}
}

func TestStepCellGapOpenVsExtend(t *testing.T) {
	cfg := newTestConfig()
	refIdx, qryIdx := foldIndex('A'), foldIndex('T')

	// previous direction Diag => this insertion opens a new gap.
	scoreOpen, dir, _ := stepCell(cfg, refIdx, qryIdx, 0, -1000, -1000, Diag)
	if dir != Up || scoreOpen != cfg.GapOpen {
		t.Fatalf("open: got (%d,%s), want (%d,Up)", scoreOpen, dir, cfg.GapOpen)
	}

	// previous direction Up => this insertion extends an existing gap.
	scoreExtend, dir, _ := stepCell(cfg, refIdx, qryIdx, 0, -1000, -1000, Up)
	if dir != Up || scoreExtend != cfg.GapExtend {
		t.Fatalf("extend: got (%d,%s), want (%d,Up)", scoreExtend, dir, cfg.GapExtend)
	}
}

func TestStepCellLinearGapIgnoresExtend(t *testing.T) {
	cfg := newTestConfig()
	cfg.Affine = false
	refIdx, qryIdx := foldIndex('A'), foldIndex('T')

	score, dir, _ := stepCell(cfg, refIdx, qryIdx, 0, -1000, -1000, Up)
	if dir != Up || score != cfg.GapOpen {
		t.Fatalf("linear gap: got (%d,%s), want (%d,Up)", score, dir, cfg.GapOpen)
	}
}

func TestStepCellLocalClampsToZero(t *testing.T) {
	cfg := newTestConfig()
	refIdx, qryIdx := foldIndex('A'), foldIndex('T')
	score, dir, carry := stepCellLocal(cfg, refIdx, qryIdx, -1000, -1000, -1000, Diag)
	if score != 0 || dir != Stop {
		t.Fatalf("local clamp: got (%d,%s), want (0,Stop)", score, dir)
	}
	if carry != cfg.GapExtend {
		t.Fatalf("local clamp carry = %d, want %d", carry, cfg.GapExtend)
	}
}

func TestStepCellEndOfRowSkipsCarry(t *testing.T) {
	cfg := newTestConfig()
	refIdx, qryIdx := foldIndex('A'), foldIndex('A')
	score, dir := stepCellEndOfRow(cfg, refIdx, qryIdx, -100, 0, -100, Diag, false)
	if score != 5 || dir != Diag {
		t.Fatalf("end of row: got (%d,%s), want (5,Diag)", score, dir)
	}
}
