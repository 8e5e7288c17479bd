package framework

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store loads and caches framework definition documents from a data
// directory. Documents are loaded lazily and kept for the life of the
// process; there is no invalidation. A Store is safe for concurrent use.
type Store struct {
	dir      string
	registry map[string]RegistryEntry
	log      *logrus.Logger

	mu    sync.Mutex
	loads map[string]*loadEntry
}

// loadEntry memoizes one framework load. The sync.Once gives single-flight
// behavior: concurrent first lookups for the same framework block on the one
// in-flight read instead of re-triggering it.
type loadEntry struct {
	once sync.Once
	doc  *Document
	err  error
}

// NewStore creates a store over the given data directory with the built-in
// framework registry. Library logging is off by default.
func NewStore(dir string) *Store {
	return NewStoreWithLogger(dir, nil)
}

// NewStoreWithLogger creates a store that logs load events to the given
// logger. A nil logger disables logging.
func NewStoreWithLogger(dir string, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Store{
		dir:      dir,
		registry: DefaultRegistry(),
		log:      log,
		loads:    make(map[string]*loadEntry),
	}
}

// Register adds or replaces a framework registry entry. Not safe to call
// concurrently with Load; register everything before handing the store out.
func (s *Store) Register(name, file string, shape Shape) {
	s.registry[name] = RegistryEntry{File: file, Shape: shape}
}

// Frameworks returns the names of all registered frameworks.
func (s *Store) Frameworks() []string {
	names := make([]string, 0, len(s.registry))
	for name := range s.registry {
		names = append(names, name)
	}
	return names
}

// Shape reports the registered document shape for a framework.
func (s *Store) Shape(framework string) (Shape, bool) {
	entry, ok := s.registry[framework]
	return entry.Shape, ok
}

// Load returns the parsed document for a framework. The second return is
// false for frameworks not in the registry; the error reports read or parse
// failures of the underlying file.
func (s *Store) Load(framework string) (*Document, bool, error) {
	reg, ok := s.registry[framework]
	if !ok {
		return nil, false, nil
	}

	s.mu.Lock()
	entry, ok := s.loads[framework]
	if !ok {
		entry = &loadEntry{}
		s.loads[framework] = entry
	}
	s.mu.Unlock()

	entry.once.Do(func() {
		path := filepath.Join(s.dir, reg.File)
		raw, err := os.ReadFile(path)
		if err != nil {
			entry.err = fmt.Errorf("failed to read framework data: %w", err)
			return
		}
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			entry.err = fmt.Errorf("failed to parse framework data %s: %w", reg.File, err)
			return
		}
		entry.doc = &doc
		s.log.WithFields(logrus.Fields{
			"framework": framework,
			"file":      reg.File,
		}).Debug("loaded framework data")
	})

	if entry.err != nil {
		return nil, true, entry.err
	}
	return entry.doc, true, nil
}
