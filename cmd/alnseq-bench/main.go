// Command alnseq-bench is a small demonstration front end for the
// alnseq package: it takes two raw sequence strings (not FASTA — see
// spec.md §1 Non-goals) and prints whichever alignment mode was asked
// for. It exists to exercise the public operations end to end, not to
// replace a real sequence I/O tool.
package main

import (
	"fmt"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
	"github.com/spf13/cobra"

	"github.com/jeremybuttler/alnseq"
)

var (
	mode      string
	gapOpen   int32
	gapExtend int32
	linearGap bool
	tieBreak  string
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "alnseq-bench <reference> <query>",
		Short: "Run one alnseq aligner over two raw sequences and print the trace",
		Args:  cobra.ExactArgs(2),
		RunE:  run,
	}

	flags := root.Flags()
	flags.StringVarP(&mode, "mode", "m", "needleman",
		"alignment mode: needleman, waterman, memwater, or hirschberg")
	flags.Int32Var(&gapOpen, "gap-open", -10, "gap-open penalty")
	flags.Int32Var(&gapExtend, "gap-extend", -1, "gap-extend penalty (ignored with --linear-gap)")
	flags.BoolVar(&linearGap, "linear-gap", false, "use a single linear gap penalty instead of affine")
	flags.StringVar(&tieBreak, "tie-break", "SnpInsDel",
		"tie-break order: SnpInsDel, SnpDelIns, InsSnpDel, InsDelSnp, DelSnpIns, DelInsSnp")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log sizing and code-path decisions to stderr")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	alnseq.Verbose = verbose

	tb, err := parseTieBreak(tieBreak)
	if err != nil {
		return err
	}

	cfg := alnseq.NewAlignConfig()
	cfg.GapOpen = gapOpen
	cfg.GapExtend = gapExtend
	cfg.Affine = !linearGap
	cfg.TieBreak = tb

	ref := alnseq.NewSequence("reference", []byte(args[0]))
	qry := alnseq.NewSequence("query", []byte(args[1]))

	switch mode {
	case "needleman":
		alnseq.Vprintf("needleman: %dx%d matrix\n", qry.Len()+1, ref.Len()+1)
		res := alnseq.Needleman(cfg, ref, qry)
		printAlignment(alnseq.Traceback(res))
	case "waterman":
		alnseq.Vprintf("waterman: %dx%d matrix\n", qry.Len()+1, ref.Len()+1)
		res := alnseq.Waterman(cfg, ref, qry)
		printAlignment(alnseq.Traceback(res))
	case "memwater":
		alnseq.Vprintln("memwater: rolling-row kernel, no direction matrix kept")
		res := alnseq.MemWaterman(cfg, ref, qry)
		fmt.Printf("score=%d  ref[%d:%d]  qry[%d:%d]\n",
			res.Score, res.StartCol, res.EndCol, res.StartRow, res.EndRow)
	case "hirschberg":
		alnseq.Vprintln("hirschberg: O(refLen) divide-and-conquer")
		printAlignment(alnseq.Hirschberg(cfg, ref, qry))
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	return nil
}

func parseTieBreak(s string) (alnseq.TieBreak, error) {
	switch s {
	case "SnpInsDel":
		return alnseq.SnpInsDel, nil
	case "SnpDelIns":
		return alnseq.SnpDelIns, nil
	case "InsSnpDel":
		return alnseq.InsSnpDel, nil
	case "InsDelSnp":
		return alnseq.InsDelSnp, nil
	case "DelSnpIns":
		return alnseq.DelSnpIns, nil
	case "DelInsSnp":
		return alnseq.DelInsSnp, nil
	default:
		return 0, fmt.Errorf("unknown tie-break %q", s)
	}
}

// printAlignment renders an Alignment's two trace rows wrapped as
// biogo linear.Seq values — the one place this module touches biogo,
// kept out of the core engine entirely (see SPEC_FULL.md DOMAIN STACK).
func printAlignment(aln *alnseq.Alignment) {
	refSeq := linear.NewSeq(aln.RefID, nil, alphabet.DNAgapped)
	refSeq.Seq = alphabet.BytesToLetters(aln.RefTrace)
	qrySeq := linear.NewSeq(aln.QryID, nil, alphabet.DNAgapped)
	qrySeq.Seq = alphabet.BytesToLetters(aln.QryTrace)

	fmt.Printf("score=%d  matches=%d  mismatches=%d  insertions=%d  deletions=%d\n",
		aln.Score, aln.Matches, aln.Mismatches, aln.Insertions, aln.Deletions)
	fmt.Printf("ref  %s\n", refSeq)
	fmt.Printf("qry  %s\n", qrySeq)
}
