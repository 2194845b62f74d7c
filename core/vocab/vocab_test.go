package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservesPaddingIndex(t *testing.T) {
	v := New("PAD")

	assert.Equal(t, 1, v.Len())
	assert.Equal(t, "PAD", v.Token(0))
	assert.Equal(t, "PAD", v.Pad())

	id, ok := v.ID("PAD")
	require.True(t, ok)
	assert.Equal(t, 0, id)
}

func TestAddIsIdempotent(t *testing.T) {
	v := New("PAD")

	first := v.Add("cat")
	second := v.Add("cat")

	assert.Equal(t, 1, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, v.Len())
}

func TestTokenOutOfRange(t *testing.T) {
	v := New("PAD")

	assert.Equal(t, "", v.Token(-1))
	assert.Equal(t, "", v.Token(5))
}

func TestFromMap(t *testing.T) {
	v := FromMap(map[int]string{0: "PAD", 1: "kostka", 2: "pes", 3: "UNK"})

	require.Equal(t, 4, v.Len())
	assert.Equal(t, []string{"PAD", "kostka", "pes", "UNK"}, v.Tokens())

	id, ok := v.ID("pes")
	require.True(t, ok)
	assert.Equal(t, 2, id)
}

func TestFromMapWithGaps(t *testing.T) {
	v := FromMap(map[int]string{0: "PAD", 3: "dog"})

	require.Equal(t, 4, v.Len())
	assert.Equal(t, "", v.Token(1))
	assert.Equal(t, "", v.Token(2))
	assert.Equal(t, "dog", v.Token(3))
}

func TestBuildFirstSeenOrder(t *testing.T) {
	x := [][]string{{"a", "b"}, {"b", "c"}}
	y := [][]string{{"c", "d"}}

	v := Build("PAD", x, y)

	assert.Equal(t, []string{"PAD", "a", "b", "c", "d"}, v.Tokens())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\n\nbird\n"), 0644))

	v, err := Load(path, "PAD")
	require.NoError(t, err)

	assert.Equal(t, []string{"PAD", "cat", "dog", "bird"}, v.Tokens())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), "PAD")
	assert.Error(t, err)
}
