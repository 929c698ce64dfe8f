package alnseq

import "testing"

func TestByteDirMatrixSetAt(t *testing.T) {
	m := NewByteDirMatrix(3, 4)
	if m.Rows() != 3 || m.Cols() != 4 {
		t.Fatalf("dims = (%d,%d), want (3,4)", m.Rows(), m.Cols())
	}
	m.Set(1, 2, Left)
	m.Set(2, 3, Up)
	if got := m.At(1, 2); got != Left {
		t.Fatalf("At(1,2) = %s, want Left", got)
	}
	if got := m.At(2, 3); got != Up {
		t.Fatalf("At(2,3) = %s, want Up", got)
	}
	if got := m.At(0, 0); got != Stop {
		t.Fatalf("unset cell = %s, want Stop (zero value)", got)
	}
}

func TestTwoBitDirMatrixSetAt(t *testing.T) {
	m := NewTwoBitDirMatrix(5, 5)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			dir := Direction((row + col) % 4)
			m.Set(row, col, dir)
		}
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			want := Direction((row + col) % 4)
			if got := m.At(row, col); got != want {
				t.Fatalf("At(%d,%d) = %s, want %s", row, col, got, want)
			}
		}
	}
}

func TestCellIndexRoundTrip(t *testing.T) {
	refLen := 11
	row, col := 3, 7
	idx := cellIndex(row, col, refLen+1)
	gotRow, gotCol := CellToCoord(idx, refLen)
	if gotRow != row || gotCol != col {
		t.Fatalf("round trip = (%d,%d), want (%d,%d)", gotRow, gotCol, row, col)
	}
}
