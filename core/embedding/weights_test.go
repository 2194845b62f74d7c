package embedding

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/seqprep/core/vocab"
)

func testVectorFile(t *testing.T) *VectorFile {
	t.Helper()
	vf, err := Parse(strings.NewReader(sampleVectors), 0)
	require.NoError(t, err)
	return vf
}

func TestWeightsPaddingRowIsZero(t *testing.T) {
	vf := testVectorFile(t)
	v := vocab.FromMap(map[int]string{0: "PAD", 1: "cat", 2: "dog"})

	m := Weights(vf, v, WithSeed(1))

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Dim())
	assert.Equal(t, []float32{0, 0, 0}, m.Row(0))
}

func TestWeightsPaddingRowZeroEvenWhenTokenInFile(t *testing.T) {
	vf := testVectorFile(t)

	// "cat" exists in the file, but index 0 is the padding convention.
	v := vocab.FromMap(map[int]string{0: "cat", 1: "dog"})

	m := Weights(vf, v, WithSeed(1))
	assert.Equal(t, []float32{0, 0, 0}, m.Row(0))
}

func TestWeightsKnownTokensVerbatim(t *testing.T) {
	vf := testVectorFile(t)
	v := vocab.FromMap(map[int]string{0: "PAD", 1: "cat", 2: "dog", 3: "fish"})

	m := Weights(vf, v, WithSeed(1))

	assert.Equal(t, []float32{0.1, 0.2, 0.3}, m.Row(1))
	assert.Equal(t, []float32{-0.5, 0.25, 1.0}, m.Row(2))
	assert.Equal(t, []float32{2.0, -2.0, 0.5}, m.Row(3))
}

func TestWeightsOOVInRange(t *testing.T) {
	vf := testVectorFile(t)
	v := vocab.FromMap(map[int]string{0: "PAD", 1: "unicorn", 2: "dragon"})

	m := Weights(vf, v, WithSeed(42))

	for i := 1; i < m.Rows(); i++ {
		for j, val := range m.Row(i) {
			assert.GreaterOrEqual(t, val, float32(-1), "row %d component %d", i, j)
			assert.Less(t, val, float32(1), "row %d component %d", i, j)
		}
	}
}

func TestWeightsOOVDeterministicWithSeed(t *testing.T) {
	vf := testVectorFile(t)
	v := vocab.FromMap(map[int]string{0: "PAD", 1: "unicorn"})

	m1 := Weights(vf, v, WithSeed(7))
	m2 := Weights(vf, v, WithSeed(7))
	m3 := Weights(vf, v, WithSeed(8))

	assert.Equal(t, m1.Row(1), m2.Row(1))
	assert.NotEqual(t, m1.Row(1), m3.Row(1))
}

func TestWeightsLogsOOVWarning(t *testing.T) {
	vf := testVectorFile(t)
	v := vocab.FromMap(map[int]string{0: "PAD", 1: "unicorn", 2: "cat"})

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Weights(vf, v, WithSeed(1), WithLogger(logger))

	out := buf.String()
	assert.Contains(t, out, "unicorn")
	assert.NotContains(t, out, "token=cat")
}

func TestLoadWeightsMissingFile(t *testing.T) {
	v := vocab.FromMap(map[int]string{0: "PAD"})
	_, err := LoadWeights("/nonexistent/vectors.vec", v, 0)
	assert.Error(t, err)
}
