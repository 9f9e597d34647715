package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists each entity collection as one pretty-printed JSON file under
// a data directory. Every mutation rewrites the whole file; a single mutex
// serializes writers in-process, so read-modify-write cycles done under
// Update are atomic per process.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Init creates the named file with defaultData if it does not exist yet.
func (s *Store) Init(name string, defaultData interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(name)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return s.write(path, defaultData)
}

// Read unmarshals the named file into v.
func (s *Store) Read(name string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(name, v)
}

// Write overwrites the named file with v.
func (s *Store) Write(name string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(s.path(name), v)
}

// Update runs fn between a read and a write of the named collection while
// holding the store lock. fn receives a pointer to the decoded value and
// reports whether the file should be rewritten.
func (s *Store) Update(name string, v interface{}, fn func() (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.read(name, v); err != nil {
		return err
	}
	dirty, err := fn()
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	return s.write(s.path(name), v)
}

func (s *Store) read(name string, v interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}
