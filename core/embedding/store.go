package embedding

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultStoreSize is the default number of parsed vector files kept in
// memory. Pretrained vector files are large and slow to parse; pipelines
// that rebuild weights for several vocabularies reuse the parsed form.
const DefaultStoreSize = 4

// Store caches parsed vector files keyed by path and read limit.
type Store struct {
	cache *lru.Cache[string, *VectorFile]
}

// NewStore creates a store holding at most capacity parsed files. A
// non-positive capacity falls back to DefaultStoreSize.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = DefaultStoreSize
	}
	cache, err := lru.New[string, *VectorFile](capacity)
	if err != nil {
		return nil, fmt.Errorf("create vector file cache: %w", err)
	}
	return &Store{cache: cache}, nil
}

// Open returns the parsed vector file for path, reading and parsing it on
// the first call and serving the cached form afterwards. Files opened with
// different limits are cached separately.
func (s *Store) Open(path string, limit int) (*VectorFile, error) {
	key := fmt.Sprintf("%s|%d", path, limit)
	if vf, ok := s.cache.Get(key); ok {
		return vf, nil
	}

	vf, err := Open(path, limit)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, vf)
	return vf, nil
}

// Len returns the number of cached files.
func (s *Store) Len() int {
	return s.cache.Len()
}
