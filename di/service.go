package di

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrNilTarget is returned when an injector is applied to a nil Service
	// or to a Service whose Val is nil.
	ErrNilTarget = errors.New("di: nil target service")

	// ErrNilDep is the sentinel behind NilDependencyServiceError.
	ErrNilDep = errors.New("di: nil dependency service")

	// ErrNilBind is the sentinel behind NilBindError.
	ErrNilBind = errors.New("di: nil bind function")
)

// DependencyKey names a dependency in a Service's Deps bag.
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// DuplicateKeyError is returned when a key is injected twice into the same Service.
type DuplicateKeyError struct{ Key DependencyKey }

func (e DuplicateKeyError) Error() string {
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned by TryGetAs when the key is absent.
type MissingDependencyError struct{ Key DependencyKey }

func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned by TryGetAs when the key holds a value
// of another type.
type WrongTypeDependencyError struct {
	Key     DependencyKey
	GotType string
}

func (e WrongTypeDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyServiceError reports a nil dependency for a key.
type NilDependencyServiceError struct{ Key DependencyKey }

func (e NilDependencyServiceError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// Unwrap lets errors.Is(err, ErrNilDep) match.
func (e NilDependencyServiceError) Unwrap() error { return ErrNilDep }

// NilBindError reports a nil bind function for a key.
type NilBindError struct{ Key DependencyKey }

func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// Unwrap lets errors.Is(err, ErrNilBind) match.
func (e NilBindError) Unwrap() error { return ErrNilBind }

// Service holds a constructed value and the dependencies injected into it.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value.
func (s *Service[T]) Value() *T {
	if s == nil {
		return nil
	}
	return s.Val
}

// Injector wires one dependency into a Service.
type Injector[T any] func(*Service[T]) error

// With applies inj. A nil injector is a no-op.
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	return s, inj(s)
}

// WithAll applies injectors in order and stops at the first error.
func (s *Service[T]) WithAll(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting returns an Injector that records dep under key and passes it to bind.
func Injecting[T any, D any](key DependencyKey, dep *Service[D], bind func(target *T, dependency *D)) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Val == nil {
			return NilDependencyServiceError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}
		s.Deps[key] = dep.Val
		bind(s.Val, dep.Val)
		return nil
	}
}

// Has reports whether anything was injected under key.
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil || s.Deps == nil {
		return false
	}
	_, ok := s.Deps[key]
	return ok
}

// GetAs returns the dependency under key as *D.
func GetAs[T any, D any](s *Service[T], key DependencyKey) (*D, bool) {
	d, err := TryGetAs[T, D](s, key)
	return d, err == nil
}

// TryGetAs is GetAs with a MissingDependencyError or WrongTypeDependencyError
// explaining the failure.
func TryGetAs[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	if s == nil || s.Deps == nil {
		return nil, MissingDependencyError{Key: key}
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return d, nil
}

// MustGetAs is TryGetAs that panics on failure.
func MustGetAs[T any, D any](s *Service[T], key DependencyKey) *D {
	d, err := TryGetAs[T, D](s, key)
	if err != nil {
		panic(err)
	}
	return d
}
