// Package vocab provides the dense index-to-token vocabulary used to align
// embedding weight matrices. Index 0 is always the padding token.
package vocab

import (
	"bufio"
	"fmt"
	"os"
)

// Vocabulary maps dense integer indices to tokens. Index 0 is reserved for
// the padding token and its embedding row is zeroed by the loader.
type Vocabulary struct {
	tokens []string
	ids    map[string]int
}

// New creates a vocabulary containing only the padding token at index 0.
func New(pad string) *Vocabulary {
	v := &Vocabulary{ids: make(map[string]int)}
	v.tokens = append(v.tokens, pad)
	v.ids[pad] = 0
	return v
}

// Add registers a token and returns its index. Adding a known token returns
// the existing index.
func (v *Vocabulary) Add(token string) int {
	if id, ok := v.ids[token]; ok {
		return id
	}
	id := len(v.tokens)
	v.tokens = append(v.tokens, token)
	v.ids[token] = id
	return id
}

// Token returns the token at the given index, or "" when out of range.
func (v *Vocabulary) Token(i int) string {
	if i < 0 || i >= len(v.tokens) {
		return ""
	}
	return v.tokens[i]
}

// ID returns the index for a token.
func (v *Vocabulary) ID(token string) (int, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// Pad returns the padding token.
func (v *Vocabulary) Pad() string {
	return v.tokens[0]
}

// Len returns the number of tokens, including the padding token.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// Tokens returns the tokens in index order. Callers must not modify the
// returned slice.
func (v *Vocabulary) Tokens() []string {
	return v.tokens
}

// FromMap adopts a caller-constructed index-to-token mapping. Indices are
// expected to be dense and to start at 0; gaps yield empty tokens. Duplicate
// tokens keep the lowest index in the reverse lookup. The caller is
// responsible for placing the padding token at index 0.
func FromMap(m map[int]string) *Vocabulary {
	maxIx := -1
	for ix := range m {
		if ix > maxIx {
			maxIx = ix
		}
	}

	v := &Vocabulary{
		tokens: make([]string, maxIx+1),
		ids:    make(map[string]int, len(m)),
	}
	for ix, token := range m {
		v.tokens[ix] = token
	}
	for ix, token := range v.tokens {
		if _, ok := v.ids[token]; !ok {
			v.ids[token] = ix
		}
	}
	return v
}

// Build collects tokens from token sequences in first-seen order, starting
// from a vocabulary that holds only the padding token.
func Build(pad string, seqLists ...[][]string) *Vocabulary {
	v := New(pad)
	for _, seqs := range seqLists {
		for _, seq := range seqs {
			for _, token := range seq {
				v.Add(token)
			}
		}
	}
	return v
}

// Load reads a vocabulary file with one token per line. Tokens are assigned
// indices in file order starting at 1; index 0 holds the padding token.
func Load(path, pad string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	v := New(pad)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		token := scanner.Text()
		if token == "" {
			continue
		}
		v.Add(token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return v, nil
}
