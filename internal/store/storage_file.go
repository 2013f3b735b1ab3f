// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/project-pilot/internal/logger"
)

type fileKeyValueStorage struct {
	path string

	mu      sync.RWMutex
	entries map[string]fileEntry

	now    func() time.Time
	logger *logger.Logger
}

type fileEntry struct {
	Value     []byte    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type filePersistedState struct {
	Entries map[string]fileEntry `json:"entries"`
}

// NewFileKeyValueStorage returns a [KeyValueStorage] kept in a single JSON
// document at path. The document is loaded once and rewritten on every Put.
// An unreadable or corrupt document is logged and treated as empty; the next
// Put replaces it.
func NewFileKeyValueStorage(path string, logger *logger.Logger) KeyValueStorage {
	s := &fileKeyValueStorage{
		path:    path,
		entries: make(map[string]fileEntry),
		now:     time.Now,
		logger:  logger,
	}
	if err := s.load(); err != nil {
		logger.Warn().Err(err).
			Str("func", "NewFileKeyValueStorage").
			Str("path", path).
			Msg("ignoring unusable cache file, starting empty")
	}
	return s
}

func (s *fileKeyValueStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, ErrEntryNotFound
	}
	return append([]byte(nil), entry.Value...), nil
}

func (s *fileKeyValueStorage) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.entries[key]
	s.entries[key] = fileEntry{Value: append([]byte(nil), value...), UpdatedAt: s.now().UTC()}

	if err := s.persist(); err != nil {
		// keep memory consistent with disk
		if existed {
			s.entries[key] = prev
		} else {
			delete(s.entries, key)
		}
		s.logger.Err(err).
			Str("func", "fileKeyValueStorage.Put").
			Str("path", s.path).
			Str("key", key).
			Msg("failed to persist cache file")
		return err
	}

	return nil
}

func (s *fileKeyValueStorage) Close() error {
	return nil
}

func (s *fileKeyValueStorage) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read cache file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	// entries stay empty unless the whole document decodes
	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode cache file: %w", err)
	}
	if st.Entries != nil {
		s.entries = st.Entries
	}

	return nil
}

// persist writes the document to a temp file next to path and renames it
// over path, so a crash never leaves a half-written cache.
func (s *fileKeyValueStorage) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Entries: s.entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp cache file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp cache file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp cache file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace cache file: %w", err)
	}

	return nil
}
