package alnseq

// gapByte is what RefTrace/QryTrace hold at a column where that side
// contributed no residue (an insertion or deletion column).
const gapByte = '-'

// Alignment is the result of walking a direction matrix from its end
// cell back to a Stop — the output of Traceback, per spec §4.5/§6.
//
// Labels, RefTrace, and QryTrace share one length, one entry per
// alignment column. Dropping the gap bytes ('-') from RefTrace
// (RefAligned) reproduces the reference residues RefStart..RefEnd, and
// likewise QryTrace (QryAligned) for the query — invariant #5.
type Alignment struct {
	RefID string
	QryID string

	// RefStart/RefEnd and QryStart/QryEnd are inclusive offsets into
	// the original (unsliced) sequence buffers spanned by this
	// alignment; End < Start for a side that contributed nothing.
	RefStart, RefEnd int
	QryStart, QryEnd int

	Labels   []Label
	RefTrace []byte
	QryTrace []byte

	Matches     int
	Mismatches  int
	Insertions  int
	Deletions   int
	Score       int32
}

// RefAligned returns the reference residues actually consumed, with
// gap columns stripped.
func (a *Alignment) RefAligned() []byte { return stripGaps(a.RefTrace) }

// QryAligned returns the query residues actually consumed, with gap
// columns stripped.
func (a *Alignment) QryAligned() []byte { return stripGaps(a.QryTrace) }

func stripGaps(trace []byte) []byte {
	out := make([]byte, 0, len(trace))
	for _, b := range trace {
		if b != gapByte {
			out = append(out, b)
		}
	}
	return out
}

// Len is the number of alignment columns, including gap columns.
func (a *Alignment) Len() int { return len(a.Labels) }
