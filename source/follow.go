package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Follow watches a plain-text log file for appended lines and invokes
// fn for every complete new line that passes the assembler's raw
// prefilters. It starts at the current end of the file and returns when
// the context is cancelled or fn returns an error.
//
// Only uncompressed logs can be followed; a gzip stream has no stable
// append point.
func (a *Assembler) Follow(ctx context.Context, path string, fn func(text string, num int) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open log %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if compressed, err := isCompressed(f); err != nil {
		return fmt.Errorf("failed to read log %s: %w", path, err)
	} else if compressed {
		return fmt.Errorf("cannot follow compressed log %s", path)
	}

	// Count existing lines so appended ones report true line numbers,
	// then stay at EOF.
	num, err := countLines(f)
	if err != nil {
		return fmt.Errorf("failed to read log %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	reader := bufio.NewReader(f)
	var partial strings.Builder

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error on %s: %w", path, err)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}

			for {
				chunk, err := reader.ReadString('\n')
				if err == io.EOF {
					// Keep the unterminated tail for the next write.
					partial.WriteString(chunk)
					break
				}
				if err != nil {
					return fmt.Errorf("failed to read log %s: %w", path, err)
				}

				partial.WriteString(strings.TrimSuffix(chunk, "\n"))
				text := partial.String()
				partial.Reset()
				num++

				if !a.keep(text) {
					continue
				}
				if err := fn(text, num); err != nil {
					return err
				}
			}
		}
	}
}

// isCompressed reports whether f starts with the gzip signature,
// leaving the read offset at the start of the file.
func isCompressed(f *os.File) (bool, error) {
	head := make([]byte, len(gzipMagic))
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	return n == len(gzipMagic) && head[0] == gzipMagic[0] && head[1] == gzipMagic[1], nil
}

// countLines consumes f to EOF, returning the number of lines read.
func countLines(f *os.File) (int, error) {
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	num := 0
	for scanner.Scan() {
		num++
	}
	return num, scanner.Err()
}
