package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process RecordStore used in tests and local runs.
// Records go through a JSON round trip on write so stored values carry the
// same dynamic types a real database read would produce.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]map[string]any),
	}
}

func splitPath(path string) (collection, key string, err error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid record path %q", path)
	}
	return parts[0], parts[1], nil
}

func jsonClone(record map[string]any) (map[string]any, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to clone record: %w", err)
	}
	var clone map[string]any
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, fmt.Errorf("failed to clone record: %w", err)
	}
	return clone, nil
}

func (s *MemoryStore) Get(ctx context.Context, path string) (map[string]any, error) {
	collection, key, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.collections[collection][key]
	if !ok {
		return nil, nil
	}
	return jsonClone(record)
}

func (s *MemoryStore) Push(ctx context.Context, collection string, record map[string]any) (string, error) {
	clone, err := jsonClone(record)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}

	key := uuid.NewString()
	s.collections[collection][key] = clone
	return key, nil
}

func (s *MemoryStore) Update(ctx context.Context, path string, partial map[string]any) error {
	collection, key, err := splitPath(path)
	if err != nil {
		return err
	}

	clone, err := jsonClone(partial)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]any)
	}
	record, ok := s.collections[collection][key]
	if !ok {
		// Firebase semantics: updating an absent path creates it.
		record = make(map[string]any)
		s.collections[collection][key] = record
	}

	for field, value := range clone {
		if value == nil {
			delete(record, field)
			continue
		}
		record[field] = value
	}
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, path string) error {
	collection, key, err := splitPath(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], key)
	return nil
}

func (s *MemoryStore) GetCollection(ctx context.Context, collection string) (map[string]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]map[string]any, len(s.collections[collection]))
	for key, record := range s.collections[collection] {
		clone, err := jsonClone(record)
		if err != nil {
			return nil, err
		}
		result[key] = clone
	}
	return result, nil
}

func (s *MemoryStore) QueryChildEqual(ctx context.Context, collection, field string, value any) (map[string]map[string]any, error) {
	normalized, err := jsonClone(map[string]any{"v": value})
	if err != nil {
		return nil, err
	}
	want := normalized["v"]

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]map[string]any)
	for key, record := range s.collections[collection] {
		if !reflect.DeepEqual(record[field], want) {
			continue
		}
		clone, err := jsonClone(record)
		if err != nil {
			return nil, err
		}
		result[key] = clone
	}
	return result, nil
}
