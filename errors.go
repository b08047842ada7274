package treemap

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrNilKey is returned when a nil key is passed to a tree operation.
	ErrNilKey = errors.New("treemap: nil key")

	// ErrIteratorExhausted is reported by an iterator that has no more entries.
	ErrIteratorExhausted = errors.New("treemap: iterator exhausted")

	// ErrTreeMutated is reported by an iterator whose tree changed shape after
	// the iterator was created.
	ErrTreeMutated = errors.New("treemap: tree mutated during iteration")

	// ErrInvalidTree is returned by Validate when an invariant does not hold.
	ErrInvalidTree = errors.New("treemap: invalid tree")
)

// isNilKey reports whether key is a nil pointer, interface, map, slice, func
// or chan. Keys of ordered types are never nil.
func isNilKey(key any) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// nilable reports whether values of K can be nil.
func nilable[K any]() bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}
