// Package source assembles the candidate line stream for a report run.
//
// An Assembler reads one or more log files (plain text or gzip,
// detected by magic bytes rather than extension), keeps only the lines
// that can possibly belong to the target user, optionally prefilters by
// currency, and optionally sorts the surviving lines by their currency
// field. The result is the exact line sequence the report pipeline
// validates and aggregates.
//
// Sorting by currency is what makes single-pass balance aggregation
// correct: equal currencies become contiguous, so the aggregator needs
// only one open group at a time.
//
// Example usage:
//
//	asm := source.New("alice", source.WithSortByCurrency())
//	lines, err := asm.Collect(ctx, []string{"jan.log", "feb.log.gz"})
package source

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/xtfkit/xtf/record"
	"github.com/xtfkit/xtf/telemetry"
)

// gzipMagic is the two-byte signature at the start of every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// Assembler produces the ordered sequence of candidate raw lines for a
// single user from one or more log files.
type Assembler struct {
	user       string
	currencies []string
	sorted     bool
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithCurrencies prefilters lines to those naming one of the given
// currency codes. The filter engine re-checks membership on the parsed
// record; this option only trims the candidate stream early.
func WithCurrencies(codes ...string) Option {
	return func(a *Assembler) {
		a.currencies = append(a.currencies, codes...)
	}
}

// WithSortByCurrency stable-sorts the assembled lines by their third
// semicolon-delimited field, bytewise ascending. Required for every
// report mode except the verbatim listing, which preserves the original
// file-concatenation order.
func WithSortByCurrency() Option {
	return func(a *Assembler) {
		a.sorted = true
	}
}

// New creates an Assembler for the given user. An empty user disables
// the user prefilter and keeps every line.
func New(user string, opts ...Option) *Assembler {
	a := &Assembler{user: user}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Collect reads every file in the order given and returns the filtered,
// optionally sorted line sequence. Any unreadable file fails the whole
// call before a single line is surfaced.
func (a *Assembler) Collect(ctx context.Context, paths []string) ([]record.Line, error) {
	var lines []record.Line

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		timer := telemetry.StartTimer(ctx, fmt.Sprintf("read %s", path))
		fileLines, err := a.collectFile(path)
		timer.End()
		if err != nil {
			return nil, err
		}
		lines = append(lines, fileLines...)
	}

	if a.sorted {
		timer := telemetry.StartTimer(ctx, fmt.Sprintf("sort %d lines", len(lines)))
		slices.SortStableFunc(lines, func(x, y record.Line) int {
			return strings.Compare(record.CurrencyField(x.Text), record.CurrencyField(y.Text))
		})
		timer.End()
	}

	return lines, nil
}

func (a *Assembler) collectFile(path string) ([]record.Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r, err := decompress(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read log %s: %w", path, err)
	}

	var lines []record.Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	num := 0
	for scanner.Scan() {
		num++
		text := scanner.Text()
		if !a.keep(text) {
			continue
		}
		lines = append(lines, record.Line{Text: text, File: path, Num: num})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log %s: %w", path, err)
	}

	return lines, nil
}

// keep applies the raw prefilters: the user prefix match and, when
// currencies were requested, a substring match on any of them.
func (a *Assembler) keep(text string) bool {
	if a.user != "" && !strings.HasPrefix(text, a.user+";") {
		return false
	}
	if len(a.currencies) == 0 {
		return true
	}
	for _, code := range a.currencies {
		if strings.Contains(text, ";"+code+";") {
			return true
		}
	}
	return false
}

// decompress wraps r in a gzip reader when the stream starts with the
// gzip signature, and returns it untouched otherwise.
func decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(gzipMagic))
	if err != nil {
		if err == io.EOF {
			// Shorter than the magic, necessarily plain text.
			return br, nil
		}
		return nil, err
	}

	if !bytes.Equal(head, gzipMagic) {
		return br, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return zr, nil
}
