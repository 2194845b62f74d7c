package bucket

import (
	"fmt"
	"log/slog"
	"sort"
)

// Config controls how sequence pairs are split into buckets.
type Config struct {
	// Width is the length range covered by one bucket.
	Width int

	// MinSize is the smallest pair count a bucket may keep. Smaller buckets
	// are merged into a neighbor.
	MinSize int

	// XMaxLen and YMaxLen optionally carry precomputed maximum sequence
	// lengths. Zero means compute from the input.
	XMaxLen int
	YMaxLen int

	Logger *slog.Logger
}

// Split partitions paired sequences into buckets keyed by the bucket index
// of the larger of each pair's two lengths, then merges buckets smaller
// than MinSize into a neighbor.
//
// The merge pass is a single sweep in ascending key order, not re-checked
// after each merge, so a chain of undersized buckets may not fully collapse
// in one call. An undersized bucket merges upward (index+1) when its index
// is less than the number of bucket keys, otherwise downward (index-1); the
// downward branch overwrites the target's max-length trackers with the
// undersized bucket's values. The key-count comparison can pick a missing
// neighbor when bucket indices are non-contiguous; a missing merge target
// is an error.
func Split(xSeqs, ySeqs [][]string, cfg Config) (map[int]*Bucket, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Width <= 0 {
		return nil, fmt.Errorf("bucket width must be positive, got %d", cfg.Width)
	}
	if len(xSeqs) != len(ySeqs) {
		return nil, fmt.Errorf("sequence count mismatch: %d X sequences vs %d y sequences", len(xSeqs), len(ySeqs))
	}

	xMax := cfg.XMaxLen
	if xMax == 0 {
		for _, seq := range xSeqs {
			if len(seq) > xMax {
				xMax = len(seq)
			}
		}
	}
	yMax := cfg.YMaxLen
	if yMax == 0 {
		for _, seq := range ySeqs {
			if len(seq) > yMax {
				yMax = len(seq)
			}
		}
	}

	allMax := xMax
	if yMax > allMax {
		allMax = yMax
	}

	logger.Debug("splitting sequence pairs into buckets",
		"pairs", len(xSeqs),
		"width", cfg.Width,
		"x_max_len", xMax,
		"y_max_len", yMax,
		"num_buckets", Index(allMax, cfg.Width))

	buckets := make(map[int]*Bucket)
	for i := range xSeqs {
		xLen := len(xSeqs[i])
		yLen := len(ySeqs[i])

		pairMax := xLen
		if yLen > pairMax {
			pairMax = yLen
		}

		ix := Index(pairMax, cfg.Width)
		b := buckets[ix]
		if b == nil {
			b = &Bucket{}
			buckets[ix] = b
		}

		b.XSeqs = append(b.XSeqs, xSeqs[i])
		b.YSeqs = append(b.YSeqs, ySeqs[i])
		if xLen > b.XMaxLen {
			b.XMaxLen = xLen
		}
		if yLen > b.YMaxLen {
			b.YMaxLen = yLen
		}
	}

	if err := mergeUndersized(buckets, cfg.MinSize, logger); err != nil {
		return nil, err
	}
	return buckets, nil
}

// mergeUndersized folds buckets smaller than minSize into a neighbor. Keys
// are visited in ascending order; deletions are deferred until after the
// sweep, so a bucket that received pairs earlier in the sweep is judged on
// its grown size.
func mergeUndersized(buckets map[int]*Bucket, minSize int, logger *slog.Logger) error {
	logger.Debug("merging undersized buckets", "min_size", minSize)

	keys := make([]int, 0, len(buckets))
	for ix := range buckets {
		keys = append(keys, ix)
	}
	sort.Ints(keys)

	var deleteIxs []int
	for _, ix := range keys {
		b := buckets[ix]
		if b.Len() >= minSize {
			continue
		}

		// The upward/downward choice compares the index against the key
		// count, not the key range. With non-contiguous indices this can
		// select a neighbor that does not exist.
		var mergeIx int
		if ix < len(buckets) {
			mergeIx = ix + 1
		} else {
			mergeIx = ix - 1
		}

		target := buckets[mergeIx]
		if target == nil {
			return fmt.Errorf("bucket %d is below minimum size %d but merge target %d does not exist", ix, minSize, mergeIx)
		}

		if mergeIx == ix-1 {
			// Downward merges overwrite the trackers instead of taking the
			// max, which can shrink the recorded lengths.
			target.XMaxLen = b.XMaxLen
			target.YMaxLen = b.YMaxLen
		}

		logger.Info("bucket below minimum size, merging",
			"bucket", ix, "into", mergeIx, "pairs", b.Len())

		deleteIxs = append(deleteIxs, ix)
		target.XSeqs = append(target.XSeqs, b.XSeqs...)
		target.YSeqs = append(target.YSeqs, b.YSeqs...)
	}

	for _, ix := range deleteIxs {
		delete(buckets, ix)
	}
	return nil
}
