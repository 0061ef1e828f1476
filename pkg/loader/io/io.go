package io

import (
	"context"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DocumentLoader loads graph documents from the local filesystem with
// caching, so a document referenced by several runs in one process is read
// once.
type DocumentLoader struct {
	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewDocumentLoader creates a new filesystem-based document loader.
func NewDocumentLoader() *DocumentLoader {
	return &DocumentLoader{
		cache: make(map[string][]byte),
	}
}

// GetDocument reads the document at the given path. Results are cached.
func (l *DocumentLoader) GetDocument(ctx context.Context, ref string) ([]byte, error) {
	l.cacheMu.RLock()
	if cached, ok := l.cache[ref]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(ref, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[ref]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[ref] = data
		l.cacheMu.Unlock()

		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
