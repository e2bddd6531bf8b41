// Package config is a name to multi-valued property store with final
// entries, merge policies and TOML, YAML and JSON documents.
package config

import (
	"slices"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"primkit/internal/logging"
)

// Property is one named entry. Values keep insertion order.
type Property struct {
	Name   string
	Values []string
	Final  bool
	Source string
}

// Value returns the first value, or "" when there is none.
func (p Property) Value() string {
	if len(p.Values) == 0 {
		return ""
	}
	return p.Values[0]
}

func (p Property) clone() Property {
	p.Values = slices.Clone(p.Values)
	return p
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	props  map[string]Property
	logger *zap.Logger
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		props:  make(map[string]Property),
		logger: logging.L("config"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set replaces the values of name. It fails with ErrFinal on a final entry.
func (s *Store) Set(name string, values ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.props[name]
	if ok && p.Final {
		return errors.Wrapf(ErrFinal, "set %q", name)
	}
	p.Name = name
	p.Values = append([]string{}, values...)
	s.props[name] = p
	return nil
}

// Add appends value to name, creating the entry if needed.
func (s *Store) Add(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.props[name]
	if ok && p.Final {
		return errors.Wrapf(ErrFinal, "add to %q", name)
	}
	p.Name = name
	p.Values = append(slices.Clone(p.Values), value)
	s.props[name] = p
	return nil
}

// Put stores a whole property, final flag and source included.
func (s *Store) Put(p Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.props[p.Name]; ok && old.Final {
		return errors.Wrapf(ErrFinal, "put %q", p.Name)
	}
	s.props[p.Name] = p.clone()
	return nil
}

func (s *Store) Get(name string) (Property, error) {
	p, ok := s.Lookup(name)
	if !ok {
		return Property{}, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return p, nil
}

func (s *Store) Lookup(name string) (Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.props[name]
	if !ok {
		return Property{}, false
	}
	return p.clone(), true
}

// Values returns a copy of the values of name, nil when absent.
func (s *Store) Values(name string) []string {
	p, _ := s.Lookup(name)
	return p.Values
}

// Names returns all property names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.props))
	for name := range s.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.props[name]
	if !ok {
		return errors.Wrapf(ErrNotFound, "remove %q", name)
	}
	if p.Final {
		return errors.Wrapf(ErrFinal, "remove %q", name)
	}
	delete(s.props, name)
	return nil
}

// MarkFinal locks name against further changes. Marking a missing name
// creates an empty final entry.
func (s *Store) MarkFinal(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.props[name]
	p.Name = name
	p.Final = true
	s.props[name] = p
}

func (s *Store) IsFinal(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props[name].Final
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.props)
}

// snapshot returns the properties sorted by name.
func (s *Store) snapshot() []Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Property, 0, len(s.props))
	for _, p := range s.props {
		out = append(out, p.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) setSource(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, p := range s.props {
		p.Source = source
		s.props[name] = p
	}
}
