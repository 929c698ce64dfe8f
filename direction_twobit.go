package alnseq

// TwoBitDirMatrix packs four Direction cells (two bits each) per byte,
// trading a branch-and-mask on every access for a 4x smaller matrix.
// It must agree cell-for-cell with ByteDirMatrix; direction_test.go
// checks its set/get round trip and full_matrix_test.go checks that
// both storages give the same alignment.
type TwoBitDirMatrix struct {
	rows, cols int
	packed     []byte
}

// NewTwoBitDirMatrix allocates a packed direction matrix of rows*cols
// cells, all initialized to Stop (zero value).
func NewTwoBitDirMatrix(rows, cols int) DirectionMatrix {
	n := rows * cols
	return &TwoBitDirMatrix{
		rows:   rows,
		cols:   cols,
		packed: make([]byte, (n+3)/4),
	}
}

func (m *TwoBitDirMatrix) Cols() int { return m.cols }
func (m *TwoBitDirMatrix) Rows() int { return m.rows }

func (m *TwoBitDirMatrix) Set(row, col int, dir Direction) {
	idx := cellIndex(row, col, m.cols)
	byteIdx, shift := idx/4, uint(idx%4)*2
	m.packed[byteIdx] = (m.packed[byteIdx] &^ (0x3 << shift)) | (byte(dir) << shift)
}

func (m *TwoBitDirMatrix) At(row, col int) Direction {
	idx := cellIndex(row, col, m.cols)
	byteIdx, shift := idx/4, uint(idx%4)*2
	return Direction((m.packed[byteIdx] >> shift) & 0x3)
}
