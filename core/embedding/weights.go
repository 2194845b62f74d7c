package embedding

import (
	"log/slog"
	"math/rand/v2"

	"github.com/adalundhe/seqprep/core/vocab"
)

type options struct {
	seed   uint64
	logger *slog.Logger
}

// Option configures weight building.
type Option func(*options)

// WithSeed makes out-of-vocabulary fallback vectors deterministic. Seed 0
// selects a randomly seeded generator.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithLogger sets the logger used for progress and out-of-vocabulary
// warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Weights builds a weight matrix with one row per vocabulary index, in index
// order. Row 0 is the zero vector for the padding token. Rows for tokens
// present in the vector file carry the file vector verbatim. Tokens missing
// from the file get a fallback vector drawn uniformly from [-1, 1) per
// component, with a warning logged per token.
func Weights(vf *VectorFile, v *vocab.Vocabulary, opts ...Option) *Matrix {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	var rng *rand.Rand
	if o.seed != 0 {
		rng = rand.New(rand.NewPCG(o.seed, o.seed^0xDEADBEEF))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	dim := vf.Dim()
	logger.Debug("building embedding weights", "tokens", v.Len(), "dim", dim)

	m := NewMatrix(v.Len(), dim)
	for i := 1; i < v.Len(); i++ {
		row := m.Row(i)
		token := v.Token(i)

		if vec, ok := vf.Lookup(token); ok {
			copy(row, vec)
			continue
		}

		logger.Warn("out of vocabulary token, using random vector", "token", token)
		for j := range row {
			row[j] = rng.Float32()*2 - 1
		}
	}

	logger.Info("embedding weights built", "rows", m.Rows(), "dim", m.Dim())
	return m
}

// LoadWeights opens a vector file and builds the weight matrix for the given
// vocabulary in one step. When limit is positive, at most limit vectors are
// read from the file.
func LoadWeights(path string, v *vocab.Vocabulary, limit int, opts ...Option) (*Matrix, error) {
	vf, err := Open(path, limit)
	if err != nil {
		return nil, err
	}
	return Weights(vf, v, opts...), nil
}
