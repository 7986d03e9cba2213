package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/a-lafrance/dollars"
	"go.uber.org/zap"
)

// totaler parses amounts and writes them out in a column followed by their sum.
type totaler struct {
	logger *zap.Logger
	strict bool
}

type entry struct {
	line  int
	input string
}

func (t totaler) run(args []string, stdin io.Reader, stdout io.Writer) error {
	entries, err := readEntries(args, stdin)
	if err != nil {
		return fmt.Errorf("reading amounts: %w", err)
	}

	var amounts []dollars.Dollars
	for _, e := range entries {
		d, err := dollars.Parse(e.input)
		if err != nil {
			if t.strict {
				return fmt.Errorf("line %d: %w", e.line, err)
			}
			t.logger.Warn("skipping invalid amount",
				zap.Int("line", e.line),
				zap.String("input", e.input),
				zap.Error(err),
			)
			continue
		}
		t.logger.Debug("parsed amount",
			zap.Int("line", e.line),
			zap.String("input", e.input),
			zap.Int64("cents", d.InCents()),
		)
		amounts = append(amounts, d)
	}

	total := dollars.Sum(amounts...)
	t.logger.Debug("totalled amounts",
		zap.Int("count", len(amounts)),
		zap.Stringer("total", total),
	)

	return writeColumn(stdout, amounts, total)
}

// readEntries returns the arguments, or the non-blank lines of r if there
// are no arguments. Surrounding whitespace is removed.
func readEntries(args []string, r io.Reader) ([]entry, error) {
	var entries []entry
	if len(args) > 0 {
		for i, a := range args {
			entries = append(entries, entry{line: i + 1, input: strings.TrimSpace(a)})
		}
		return entries, nil
	}
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		l := strings.TrimSpace(s.Text())
		if l == "" {
			continue
		}
		entries = append(entries, entry{line: n, input: l})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func writeColumn(w io.Writer, amounts []dollars.Dollars, total dollars.Dollars) error {
	width := len(total.String())
	for _, d := range amounts {
		width = max(width, len(d.String()))
	}
	for _, d := range amounts {
		if _, err := fmt.Fprintf(w, "%*v\n", width, d); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s\n%*v\n", strings.Repeat("-", width), width, total); err != nil {
		return err
	}
	return nil
}
