package main

import (
	"context"
	"fmt"
	"os"

	"size-explorer/internal/entry"
	"size-explorer/internal/hash"
	"size-explorer/internal/logging"
	"size-explorer/internal/progress"
	"size-explorer/internal/tree"
)

type workspace struct {
	forest  *tree.Forest
	entries []entry.Entry
	meta    tree.Metadata
}

// load reads the report at path and builds its size tree with the
// configured unchecks and expand depth applied.
func load(ctx context.Context, path string) (*workspace, error) {
	digest, err := hash.HashFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to hash report: %w", err)
	}

	var taps []entry.Tap
	var bar *progress.Bar
	if showProgress {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat report: %w", err)
		}
		bar = progress.New(info.Size(), os.Stderr)
		taps = append(taps, bar.Reader)
	}

	rc, err := entry.Open(path, taps...)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	entries, err := entry.Collect(ctx, rc, cfg.Marker)
	if bar != nil {
		bar.SetEntries(len(entries))
		bar.Finish()
	}
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		logging.Warn("no size breakdown found in report",
			logging.String("path", path),
			logging.String("marker", cfg.Marker))
	}

	fingerprint, err := entry.Fingerprint(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint entries: %w", err)
	}

	forest := tree.Build(entries)
	if n := forest.UncheckMatching(cfg.Uncheck); n > 0 {
		logging.Info("unchecked nodes from config", logging.Int("count", n))
	}
	forest.ExpandToDepth(cfg.ExpandDepth)

	logging.Info("report loaded",
		logging.String("path", path),
		logging.Int("entries", len(entries)),
		logging.Int("nodes", forest.Len()),
		logging.String("fingerprint", fingerprint))

	return &workspace{
		forest:  forest,
		entries: entries,
		meta: tree.Metadata{
			Source:      path,
			Digest:      digest,
			Fingerprint: fingerprint,
		},
	}, nil
}
