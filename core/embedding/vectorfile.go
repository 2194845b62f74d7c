// Package embedding loads pretrained word vectors in word2vec text format and
// builds dense weight matrices aligned to a vocabulary.
package embedding

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single vector row. High-dimensional vectors produce
// lines well past bufio's default 64KB token limit.
const maxLineBytes = 4 * 1024 * 1024

// VectorFile holds pretrained word vectors parsed from a word2vec text-format
// file: a header line with the declared vocabulary size and dimension,
// followed by one line per token with space-separated float components.
type VectorFile struct {
	count   int
	dim     int
	vectors map[string][]float32
}

// Open reads and parses a vector file from disk. When limit is positive, at
// most limit vectors are read from the file.
func Open(path string, limit int) (*VectorFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vector file: %w", err)
	}
	defer f.Close()

	vf, err := Parse(f, limit)
	if err != nil {
		return nil, fmt.Errorf("parse vector file %s: %w", path, err)
	}
	return vf, nil
}

// Parse reads word vectors from r. The declared count from the header is
// authoritative: fewer rows than min(count, limit) is an error.
func Parse(r io.Reader, limit int) (*VectorFile, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, fmt.Errorf("empty vector file")
	}

	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("malformed header %q: want \"<count> <dim>\"", scanner.Text())
	}
	count, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("malformed vector count %q: %w", header[0], err)
	}
	dim, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("malformed dimension %q: %w", header[1], err)
	}
	if count <= 0 || dim <= 0 {
		return nil, fmt.Errorf("non-positive header values: count=%d dim=%d", count, dim)
	}

	expected := count
	if limit > 0 && limit < count {
		expected = limit
	}

	vectors := make(map[string][]float32, expected)
	for i := 0; i < expected; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read vectors: %w", err)
			}
			return nil, fmt.Errorf("unexpected end of file: got %d of %d vectors", i, expected)
		}

		line := i + 2
		fields := strings.Fields(scanner.Text())
		if len(fields) != dim+1 {
			return nil, fmt.Errorf("line %d: got %d components, want %d", line, len(fields)-1, dim)
		}

		vec := make([]float32, dim)
		for j, field := range fields[1:] {
			val, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse component %q: %w", line, field, err)
			}
			vec[j] = float32(val)
		}
		vectors[fields[0]] = vec
	}

	return &VectorFile{count: count, dim: dim, vectors: vectors}, nil
}

// Dim returns the vector dimension declared in the header.
func (vf *VectorFile) Dim() int {
	return vf.dim
}

// Count returns the vocabulary size declared in the header.
func (vf *VectorFile) Count() int {
	return vf.count
}

// Len returns the number of vectors actually loaded.
func (vf *VectorFile) Len() int {
	return len(vf.vectors)
}

// Lookup returns the vector for a token.
func (vf *VectorFile) Lookup(token string) ([]float32, bool) {
	vec, ok := vf.vectors[token]
	return vec, ok
}

// Tokens returns the loaded tokens in lexicographic order.
func (vf *VectorFile) Tokens() []string {
	tokens := make([]string, 0, len(vf.vectors))
	for token := range vf.vectors {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
