package alnseq

// alphabetSize is the folded-alphabet index range: idx(b) = b & 0x1F
// maps ASCII 'A'..'Z' (0x41..0x5A) onto 1..26, so a 27-wide matrix
// covers every definite or degenerate nucleotide/protein letter with
// one spare slot at 0. This is the "folded 27x27" mode of spec §9;
// the 128-wide "word" mode and the unfolded 26x26 mode are left out
// per the Open Question in spec §9 — see DESIGN.md.
const alphabetSize = 27

func foldIndex(b byte) int { return int(b & 0x1F) }

// AlignConfig holds the substitution matrix, match-matrix, gap
// penalties, affine/linear toggle, and tie-break preference shared by
// every aligner. Build one with NewAlignConfig and treat it as
// read-only once alignment begins (§5 sharing policy).
type AlignConfig struct {
	Subs  [alphabetSize][alphabetSize]int32
	Match [alphabetSize][alphabetSize]bool

	GapOpen   int32
	GapExtend int32
	Affine    bool
	TieBreak  TieBreak

	subsExplicit  [alphabetSize][alphabetSize]bool
	matchExplicit [alphabetSize][alphabetSize]bool
}

// NewAlignConfig returns a config with the documented defaults:
// gap-open -10, gap-extend -1, affine gaps, SnpInsDel tie-break, and a
// substitution/match matrix seeded with the full IUPAC degenerate-base
// table for DNA/RNA. Unseeded cells score 0.
func NewAlignConfig() *AlignConfig {
	cfg := &AlignConfig{
		GapOpen:   -10,
		GapExtend: -1,
		Affine:    true,
		TieBreak:  SnpInsDel,
	}
	cfg.seedIUPACDefaults()
	return cfg
}

// SetScore sets the substitution score for the (a, b) pair. Absent an
// explicit asymmetric entry for (b, a), the mirrored cell is kept in
// sync — the substitution matrix is symmetric by convention, per
// spec §3, but need not be.
func (cfg *AlignConfig) SetScore(a, b byte, score int32) {
	ia, ib := foldIndex(a), foldIndex(b)
	cfg.Subs[ia][ib] = score
	cfg.subsExplicit[ia][ib] = true
	if !cfg.subsExplicit[ib][ia] {
		cfg.Subs[ib][ia] = score
	}
}

// SetMatch sets the match-matrix bit for the (a, b) pair, with the
// same symmetric-unless-overridden behavior as SetScore.
func (cfg *AlignConfig) SetMatch(a, b byte, match bool) {
	ia, ib := foldIndex(a), foldIndex(b)
	cfg.Match[ia][ib] = match
	cfg.matchExplicit[ia][ib] = true
	if !cfg.matchExplicit[ib][ia] {
		cfg.Match[ib][ia] = match
	}
}

func (cfg *AlignConfig) substitution(refIdx, qryIdx int) int32 {
	return cfg.Subs[refIdx][qryIdx]
}

func (cfg *AlignConfig) isMatch(refIdx, qryIdx int) bool {
	return cfg.Match[refIdx][qryIdx]
}

// effectiveExtend is the gap-extend penalty ScoreCell actually uses:
// under the linear-gap (non-affine) switch, gap-extend is ignored and
// every gap cell pays gap-open instead (spec §3, §4.1).
func (cfg *AlignConfig) effectiveExtend() int32 {
	if !cfg.Affine {
		return cfg.GapOpen
	}
	return cfg.GapExtend
}

// iupacBase is the four-bit ACGT membership mask for one IUPAC
// nucleotide code letter (bit0=A, bit1=C, bit2=G, bit3=T/U).
var iupacBase = map[byte]uint8{
	'A': 1 << 0,
	'C': 1 << 1,
	'G': 1 << 2,
	'T': 1 << 3,
	'U': 1 << 3,
	'R': 1<<0 | 1<<2,
	'Y': 1<<1 | 1<<3,
	'S': 1<<1 | 1<<2,
	'W': 1<<0 | 1<<3,
	'K': 1<<2 | 1<<3,
	'M': 1<<0 | 1<<1,
	'B': 1<<1 | 1<<2 | 1<<3,
	'D': 1<<0 | 1<<2 | 1<<3,
	'H': 1<<0 | 1<<1 | 1<<3,
	'V': 1<<0 | 1<<1 | 1<<2,
	'N': 1<<0 | 1<<1 | 1<<2 | 1<<3,
}

const (
	matchScore    int32 = 5
	mismatchScore int32 = -4
)

// seedIUPACDefaults fills in the default DNA/RNA substitution and
// match matrices: two IUPAC codes are a Match whenever the set of
// definite bases they stand for overlaps (this alone gives the
// diagonal, U<->T, and "definite base paired with a degenerate that
// includes it" per spec §4.6), Snp otherwise; every seeded pair gets
// matchScore or mismatchScore. Bytes outside the IUPAC table are left
// at the zero value, per spec §4.6 "unseeded cells are 0".
func (cfg *AlignConfig) seedIUPACDefaults() {
	for a, maskA := range iupacBase {
		for b, maskB := range iupacBase {
			match := maskA&maskB != 0
			score := mismatchScore
			if match {
				score = matchScore
			}
			ia, ib := foldIndex(a), foldIndex(b)
			cfg.Subs[ia][ib] = score
			cfg.Match[ia][ib] = match
		}
	}
}
