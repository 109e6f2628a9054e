// Package vocab provides per-language filler-word vocabularies with
// optional YAML overrides and hot reload.
package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// File is the YAML shape of a vocabulary override file.
type File struct {
	Language string   `yaml:"language"`
	Fillers  []string `yaml:"fillers"`
}

// Store holds filler vocabularies keyed by language code. It is seeded
// with the built-in Russian and English tables; files in the configured
// directory replace the set for their language wholesale.
type Store struct {
	dir string

	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

// NewStore creates a store seeded with the built-in vocabularies.
// dir may be empty to run on defaults only.
func NewStore(dir string) *Store {
	s := &Store{
		dir:  dir,
		sets: make(map[string]map[string]struct{}),
	}
	s.sets["ru"] = toSet(fillersRU)
	s.sets["en"] = toSet(fillersEN)
	return s
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Set returns the vocabulary for the given language code, falling back
// to English. The returned map is shared and must not be mutated.
func (s *Store) Set(lang string) map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if set, ok := s.sets[lang]; ok {
		return set
	}
	return s.sets["en"]
}

// LoadAll reads every .yaml/.yml file from the store directory and
// installs the vocabularies they define. Languages without an override
// file keep their built-in set. A missing directory is not an error.
func (s *Store) LoadAll() error {
	if s.dir == "" {
		return nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read vocab dir %q: %w", s.dir, err)
	}

	loaded := make(map[string]map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		vf, err := loadFile(path)
		if err != nil {
			return fmt.Errorf("load %q: %w", path, err)
		}
		loaded[vf.Language] = toSet(vf.Fillers)
	}

	s.mu.Lock()
	for lang, set := range loaded {
		s.sets[lang] = set
	}
	s.mu.Unlock()

	return nil
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var vf File
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if vf.Language == "" {
		return nil, fmt.Errorf("missing language in %q", filepath.Base(path))
	}
	if len(vf.Fillers) == 0 {
		return nil, fmt.Errorf("empty filler list in %q", filepath.Base(path))
	}
	return &vf, nil
}

// WatchAndReload watches the vocabulary directory for changes and
// reloads on writes. This blocks until the done channel is closed.
func (s *Store) WatchAndReload(done <-chan struct{}) error {
	if s.dir == "" {
		<-done
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch dir %q: %w", s.dir, err)
	}

	for {
		select {
		case <-done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				ext := filepath.Ext(event.Name)
				if ext == ".yaml" || ext == ".yml" {
					s.LoadAll()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
