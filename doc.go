// Package alnseq implements the pairwise sequence alignment core of
// alnSeq: global (Needleman-Wunsch), local (Smith-Waterman), and
// divide-and-conquer (Hirschberg) aligners over two byte sequences
// drawn from a configurable alphabet.
//
// FASTA input, CLI argument parsing, pretty-printing, and on-disk file
// discovery are not part of this package; callers that need those
// build them on top of the operations exported here.
package alnseq
