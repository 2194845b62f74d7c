package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadX(t *testing.T) {
	b := &Bucket{
		XSeqs:   [][]string{{"a", "b"}, {"c"}},
		XMaxLen: 3,
	}

	padded := b.PadX("PAD")

	require.Len(t, padded, 2)
	assert.Equal(t, []string{"a", "b", "PAD"}, padded[0])
	assert.Equal(t, []string{"c", "PAD", "PAD"}, padded[1])

	// Source sequences are untouched.
	assert.Equal(t, []string{"a", "b"}, b.XSeqs[0])
	assert.Equal(t, []string{"c"}, b.XSeqs[1])
}

func TestPadY(t *testing.T) {
	b := &Bucket{
		YSeqs:   [][]string{{"x"}},
		YMaxLen: 2,
	}

	padded := b.PadY("PAD")
	assert.Equal(t, [][]string{{"x", "PAD"}}, padded)
}

// After a downward merge overwrote the tracker, sequences can exceed the
// recorded max. Padding truncates them to keep batch shapes rectangular.
func TestPadTruncatesBeyondRecordedMax(t *testing.T) {
	b := &Bucket{
		XSeqs:   [][]string{{"a", "b", "c"}},
		XMaxLen: 2,
	}

	padded := b.PadX("PAD")
	assert.Equal(t, [][]string{{"a", "b"}}, padded)
}

func TestPadEmptyBucket(t *testing.T) {
	b := &Bucket{}
	assert.Empty(t, b.PadX("PAD"))
	assert.Empty(t, b.PadY("PAD"))
}
