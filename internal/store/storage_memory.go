// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memoryKeyValueStorage struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryKeyValueStorage returns a [KeyValueStorage] that lives only as
// long as the process.
func NewMemoryKeyValueStorage() KeyValueStorage {
	return &memoryKeyValueStorage{entries: make(map[string][]byte)}
}

func (m *memoryKeyValueStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return nil, ErrEntryNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *memoryKeyValueStorage) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryKeyValueStorage) Close() error {
	return nil
}
