package alnseq

// ByteDirMatrix stores one Direction per byte. It is the simplest
// DirectionMatrix implementation and the default for small alignments.
type ByteDirMatrix struct {
	rows, cols int
	cells      []Direction
}

// NewByteDirMatrix allocates a direction matrix of rows*cols cells, all
// initialized to Stop.
func NewByteDirMatrix(rows, cols int) DirectionMatrix {
	return &ByteDirMatrix{
		rows:  rows,
		cols:  cols,
		cells: make([]Direction, rows*cols),
	}
}

func (m *ByteDirMatrix) Cols() int { return m.cols }
func (m *ByteDirMatrix) Rows() int { return m.rows }

func (m *ByteDirMatrix) Set(row, col int, dir Direction) {
	m.cells[cellIndex(row, col, m.cols)] = dir
}

func (m *ByteDirMatrix) At(row, col int) Direction {
	return m.cells[cellIndex(row, col, m.cols)]
}
