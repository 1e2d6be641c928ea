package cache

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/gridstate/pkg/layout"
)

// Store is the durable per-context layout cache. Get is total: a
// context that has never been written reads back as the canonical
// default layout. Nothing is ever evicted by size or age; entries leave
// the store only through Clear.
type Store interface {
	Get(key layout.Key) layout.Entry
	Put(key layout.Key, entry layout.Entry) error
	Clear(key layout.Key) error
	Keys(ctx context.Context) []layout.Key
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Store backed by diskv using the provided config.
func Load(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &store{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type store struct {
	d        *diskv.Diskv
	basePath string
}

func (s *store) Get(key layout.Key) layout.Entry {
	val, err := s.d.Read(string(key))
	if err != nil {
		// Absent or unreadable reads as the default layout; the next
		// Put repairs the entry either way.
		return layout.Default()
	}
	e := layout.Default()
	if err := json.Unmarshal(val, &e); err != nil {
		fmt.Fprintf(os.Stderr, "cache: %s: %s\n", key, err)
		return layout.Default()
	}
	return e
}

func (s *store) Put(key layout.Key, entry layout.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}
	if err := s.d.Write(string(key), data); err != nil {
		return fmt.Errorf("cache: write %s: %w", key, err)
	}
	return nil
}

func (s *store) Clear(key layout.Key) error {
	if !s.d.Has(string(key)) {
		return nil
	}
	if err := s.d.Erase(string(key)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cache: clear %s: %w", key, err)
	}
	return nil
}

func (s *store) Keys(ctx context.Context) []layout.Key {
	keys := make([]layout.Key, 0)
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, layout.Key(key))
	}
	return keys
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: base64.URLEncoding.EncodeToString([]byte(s)),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	decoded, err := base64.URLEncoding.DecodeString(pathKey.FileName)
	if err != nil {
		return pathKey.FileName
	}
	return string(decoded)
}
