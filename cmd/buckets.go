package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/seqprep/core/bucket"
	"github.com/adalundhe/seqprep/core/corpus"
)

var (
	bucketsXPath   string
	bucketsYPath   string
	bucketsRange   int
	bucketsMinSize int
	bucketsMaxRows int
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Split sequence pairs into length buckets",
	Long: `Splits paired X/y token sequences into buckets of similar length and
merges undersized buckets into neighbors. Without --x and --y a built-in
sample of seven pairs is used.`,
	RunE: runBuckets,
}

func init() {
	bucketsCmd.Flags().StringVar(&bucketsXPath, "x", "", "path to the X sequence file, one whitespace-tokenized sequence per line")
	bucketsCmd.Flags().StringVar(&bucketsYPath, "y", "", "path to the y sequence file")
	bucketsCmd.Flags().IntVar(&bucketsRange, "range", 0, "bucket length range (defaults to config)")
	bucketsCmd.Flags().IntVar(&bucketsMinSize, "min-size", 0, "minimum pairs per bucket (defaults to config)")
	bucketsCmd.Flags().IntVar(&bucketsMaxRows, "max-lines", 0, "read at most this many lines from each file")
	rootCmd.AddCommand(bucketsCmd)
}

func runBuckets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width := cfg.Buckets.Range
	if bucketsRange > 0 {
		width = bucketsRange
	}
	minSize := cfg.Buckets.MinSize
	if bucketsMinSize > 0 {
		minSize = bucketsMinSize
	}

	var x, y [][]string
	switch {
	case bucketsXPath != "" && bucketsYPath != "":
		x, y, err = corpus.ReadPairs(bucketsXPath, bucketsYPath, bucketsMaxRows)
		if err != nil {
			return err
		}
	case bucketsXPath != "" || bucketsYPath != "":
		return fmt.Errorf("--x and --y must be given together")
	default:
		x, y = sampleSequences()
	}

	buckets, err := bucket.Split(x, y, bucket.Config{Width: width, MinSize: minSize})
	if err != nil {
		return err
	}

	keys := make([]int, 0, len(buckets))
	for ix := range buckets {
		keys = append(keys, ix)
	}
	sort.Ints(keys)

	for _, ix := range keys {
		b := buckets[ix]
		fmt.Printf("bucket %d: %d pairs (X max len %d, y max len %d)\n", ix, b.Len(), b.XMaxLen, b.YMaxLen)
		for i := range b.XSeqs {
			fmt.Printf("  X: %-30s y: %s\n", strings.Join(b.XSeqs[i], " "), strings.Join(b.YSeqs[i], " "))
		}
	}
	return nil
}

// sampleSequences returns seven demo pairs covering several length buckets.
func sampleSequences() (x, y [][]string) {
	x = [][]string{
		{"1"},
		{"1", "2"},
		{"1", "2", "3"},
		{"1", "2", "3", "4"},
		{"1", "2", "3", "4", "5"},
		{"1", "2", "3", "4", "5"},
		{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
	}
	y = [][]string{
		{"1"},
		{"1", "2"},
		{"1", "2"},
		{"1", "2", "3", "4"},
		{"1", "2", "3", "4", "5"},
		{"1", "2", "3", "4", "5", "6", "7"},
		{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
	}
	return x, y
}
