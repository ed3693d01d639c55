package entry

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

type compositeCloser struct {
	io.Reader
	closers []io.Closer
}

func (c compositeCloser) Close() error {
	var first error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Tap wraps the raw file reader, before any decompression.
type Tap func(io.Reader) io.Reader

// Open opens a report file, decompressing it when the name ends in .gz.
// Taps see the bytes as stored on disk.
func Open(path string, taps ...Tap) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}

	var raw io.Reader = f
	for _, tap := range taps {
		raw = tap(raw)
	}

	if !strings.EqualFold(filepath.Ext(path), ".gz") {
		return compositeCloser{Reader: raw, closers: []io.Closer{f}}, nil
	}
	gz, err := gzip.NewReader(raw)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open gzip report: %w", err)
	}
	return compositeCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
}

// Collect scans r on a producer goroutine and gathers the entries on the
// caller's side. Cancelling ctx abandons the scan and returns the context
// error with whatever was collected so far.
func Collect(ctx context.Context, r io.Reader, marker string) ([]Entry, error) {
	g, ctx := errgroup.WithContext(ctx)
	ch := make(chan Entry, 256)

	g.Go(func() error {
		defer close(ch)
		s := NewScanner(r, marker)
		for s.Scan() {
			select {
			case ch <- s.Entry():
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := s.Err(); err != nil {
			return fmt.Errorf("failed to read report: %w", err)
		}
		return nil
	})

	var out []Entry
	g.Go(func() error {
		for e := range ch {
			out = append(out, e)
		}
		return nil
	})

	err := g.Wait()
	return out, err
}
