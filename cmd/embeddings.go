package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adalundhe/seqprep/core/embedding"
	"github.com/adalundhe/seqprep/core/vocab"
)

var (
	embeddingsVectors string
	embeddingsVocab   string
	embeddingsLimit   int
	embeddingsSeed    uint64
	embeddingsNearest string
	embeddingsTopK    int
)

var embeddingsCmd = &cobra.Command{
	Use:   "embeddings",
	Short: "Build an embedding weight matrix for a vocabulary",
	Long: `Reads a word2vec text-format vector file and builds a weight matrix
aligned to a vocabulary. Index 0 is the padding token with a zero row;
tokens missing from the file get random vectors in [-1, 1).`,
	RunE: runEmbeddings,
}

func init() {
	embeddingsCmd.Flags().StringVar(&embeddingsVectors, "vectors", "", "path to a word2vec text-format vector file (defaults to config)")
	embeddingsCmd.Flags().StringVar(&embeddingsVocab, "vocab", "", "path to a vocabulary file, one token per line; defaults to all tokens in the vector file")
	embeddingsCmd.Flags().IntVar(&embeddingsLimit, "limit", 0, "read at most this many vectors from the file")
	embeddingsCmd.Flags().Uint64Var(&embeddingsSeed, "seed", 0, "seed for out-of-vocabulary fallback vectors")
	embeddingsCmd.Flags().StringVar(&embeddingsNearest, "nearest", "", "print the nearest tokens to this token by cosine similarity")
	embeddingsCmd.Flags().IntVar(&embeddingsTopK, "top-k", 5, "how many neighbors to print with --nearest")
	rootCmd.AddCommand(embeddingsCmd)
}

func runEmbeddings(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.Embedding.Path
	if embeddingsVectors != "" {
		path = embeddingsVectors
	}
	if path == "" {
		return fmt.Errorf("no vector file: set --vectors or embedding.path in the config")
	}

	limit := cfg.Embedding.Limit
	if embeddingsLimit > 0 {
		limit = embeddingsLimit
	}
	seed := cfg.Embedding.Seed
	if embeddingsSeed != 0 {
		seed = embeddingsSeed
	}

	store, err := embedding.NewStore(cfg.Embedding.CacheSize)
	if err != nil {
		return err
	}
	vf, err := store.Open(path, limit)
	if err != nil {
		return err
	}

	var v *vocab.Vocabulary
	if embeddingsVocab != "" {
		v, err = vocab.Load(embeddingsVocab, cfg.Embedding.PadToken)
		if err != nil {
			return err
		}
	} else {
		v = vocab.New(cfg.Embedding.PadToken)
		for _, token := range vf.Tokens() {
			v.Add(token)
		}
	}

	m := embedding.Weights(vf, v, embedding.WithSeed(seed))
	fmt.Printf("loaded %d of %d vectors (dim %d), built %d x %d weight matrix\n",
		vf.Len(), vf.Count(), vf.Dim(), m.Rows(), m.Dim())

	if embeddingsNearest != "" {
		id, ok := v.ID(embeddingsNearest)
		if !ok {
			return fmt.Errorf("token %q is not in the vocabulary", embeddingsNearest)
		}

		// Ask for one extra neighbor since the query token matches itself.
		neighbors := m.Nearest(m.Row(id), embeddingsTopK+1)
		fmt.Printf("nearest to %q:\n", embeddingsNearest)
		for _, n := range neighbors {
			if n.Index == id {
				continue
			}
			fmt.Printf("  %-20s %.4f\n", v.Token(n.Index), n.Score)
		}
	}
	return nil
}
