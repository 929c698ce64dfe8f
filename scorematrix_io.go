package alnseq

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ScoreFileError reports the byte offset, in the input stream, of the
// first malformed line — the same contract the original C
// readInScoreFile has (spec §7, §9): everything parsed before the
// error stays applied, the loader does not roll back.
type ScoreFileError struct {
	Offset int
	Line   string
	Reason string
}

func (e *ScoreFileError) Error() string {
	return fmt.Sprintf("alnseq: malformed scoring line at byte offset %d (%q): %s",
		e.Offset, e.Line, e.Reason)
}

// LoadScores reads a substitution-matrix text stream into cfg. Lines
// starting with "//" are comments, blank lines are skipped, and every
// other line must be "<char> <char> <signed-int>". On a malformed
// line, LoadScores returns a *ScoreFileError carrying the byte offset
// where that line began; every entry read up to that point remains
// applied (best-effort, left-to-right — see spec §7.2 and §9).
func (cfg *AlignConfig) LoadScores(r io.Reader) error {
	return cfg.loadMatrixText(r, func(a, b byte, v int32) error {
		cfg.SetScore(a, b, v)
		return nil
	})
}

// LoadMatch reads a match-matrix text stream of the same shape as
// LoadScores, except the third token must be "0" or "1".
func (cfg *AlignConfig) LoadMatch(r io.Reader) error {
	return cfg.loadMatrixText(r, func(a, b byte, v int32) error {
		if v != 0 && v != 1 {
			return fmt.Errorf("match bit must be 0 or 1, got %d", v)
		}
		cfg.SetMatch(a, b, v != 0)
		return nil
	})
}

func (cfg *AlignConfig) loadMatrixText(r io.Reader, apply func(a, b byte, v int32) error) error {
	br := bufio.NewReader(r)
	offset := 0

	for {
		line, err := br.ReadString('\n')
		consumed := len(line)
		trimmed := strings.TrimRight(line, "\r\n")

		switch {
		case len(strings.TrimSpace(trimmed)) == 0:
			// blank line, skipped
		case strings.HasPrefix(trimmed, "//"):
			// comment, skipped
		default:
			fields := strings.Fields(trimmed)
			if len(fields) != 3 || len(fields[0]) != 1 || len(fields[1]) != 1 {
				return &ScoreFileError{Offset: offset, Line: trimmed,
					Reason: "expected '<char> <char> <signed-int>'"}
			}
			v, perr := strconv.ParseInt(fields[2], 10, 32)
			if perr != nil {
				return &ScoreFileError{Offset: offset, Line: trimmed,
					Reason: "third field must be a signed integer"}
			}
			if aerr := apply(fields[0][0], fields[1][0], int32(v)); aerr != nil {
				return &ScoreFileError{Offset: offset, Line: trimmed, Reason: aerr.Error()}
			}
		}

		offset += consumed
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
