package alnseq

import "testing"

func TestTieBreakMaximise(t *testing.T) {
	cases := []struct {
		name          string
		tb            TieBreak
		snp, ins, del int32
		wantScore     int32
		wantDir       Direction
	}{
		{"SnpInsDel strict winner", SnpInsDel, 10, 3, 2, 10, Diag},
		{"SnpInsDel snp wins tie with ins", SnpInsDel, 7, 7, 2, 7, Diag},
		{"SnpInsDel ins wins tie with del", SnpInsDel, 1, 7, 7, 7, Up},
		{"SnpDelIns del wins tie with ins", SnpDelIns, 1, 7, 7, 7, Left},
		{"InsSnpDel ins wins tie with snp", InsSnpDel, 7, 7, 1, 7, Up},
		{"InsDelSnp del wins tie with snp", InsDelSnp, 7, 1, 7, 7, Left},
		{"DelSnpIns snp wins tie with ins", DelSnpIns, 7, 7, 1, 7, Diag},
		{"DelInsSnp ins wins tie with snp", DelInsSnp, 7, 7, 1, 7, Up},
		{"all tied SnpInsDel picks snp", SnpInsDel, 4, 4, 4, 4, Diag},
		{"all tied DelInsSnp picks del", DelInsSnp, 4, 4, 4, 4, Left},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			score, dir := c.tb.maximise(c.snp, c.ins, c.del)
			if score != c.wantScore || dir != c.wantDir {
				t.Fatalf("%s.maximise(%d,%d,%d) = (%d,%s), want (%d,%s)",
					c.tb, c.snp, c.ins, c.del, score, dir, c.wantScore, c.wantDir)
			}
		})
	}
}

func TestTieBreakString(t *testing.T) {
	if got := SnpInsDel.String(); got != "SnpInsDel" {
		t.Fatalf("SnpInsDel.String() = %q", got)
	}
	if got := TieBreak(99).String(); got != "TieBreak(?)" {
		t.Fatalf("invalid TieBreak.String() = %q", got)
	}
}

func TestTieBreakMaximiseInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid tie-break")
		}
	}()
	TieBreak(99).maximise(1, 2, 3)
}
