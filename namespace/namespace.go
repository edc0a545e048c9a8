// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package namespace

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Policy selects what happens when an absent key is read with [Namespace.Get].
type Policy int

const (
	// Vivify creates, stores and returns an empty child namespace for an
	// absent key. Children inherit the policy of their parent.
	Vivify Policy = iota
	// Strict fails with [ErrKeyNotFound] for an absent key.
	Strict
)

// String returns the lowercase name of the policy.
func (p Policy) String() string {
	switch p {
	case Vivify:
		return "vivify"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Option configures a [Namespace] created by [New] or [FromMap].
type Option func(*Namespace)

// WithPolicy sets the miss policy of the namespace.
func WithPolicy(p Policy) Option {
	return func(n *Namespace) {
		n.policy = p
	}
}

// Namespace is an ordered mapping from identifier keys to arbitrary values.
//
// Values may be scalars, nested *Namespace values, plain map[string]any
// trees (treated as pass-through JSON objects) or []any arrays. Iteration
// follows insertion order; JSON encoding is always sorted by key.
//
// The zero value is an empty namespace with the [Vivify] policy.
type Namespace struct {
	entries *orderedmap.OrderedMap[string, any]
	policy  Policy
}

// New returns an empty namespace.
func New(opts ...Option) *Namespace {
	n := &Namespace{entries: orderedmap.New[string, any]()}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// FromMap builds a namespace from m. Nested map[string]any values become
// child namespaces with the same options, other values are deep-copied.
// Keys are inserted in sorted order.
//
// Every key at every level is validated; on failure no namespace is returned.
func FromMap(m map[string]any, opts ...Option) (*Namespace, error) {
	n := New(opts...)
	for _, key := range sortedMapKeys(m) {
		value := m[key]
		if nested, ok := value.(map[string]any); ok {
			child, err := FromMap(nested, opts...)
			if err != nil {
				return nil, err
			}
			value = child
		} else {
			value = CopyValue(value)
		}

		if err := n.Set(key, value); err != nil {
			return nil, err
		}
	}

	return n, nil
}

func (n *Namespace) store() *orderedmap.OrderedMap[string, any] {
	if n.entries == nil {
		n.entries = orderedmap.New[string, any]()
	}

	return n.entries
}

// Policy returns the miss policy of the namespace.
func (n *Namespace) Policy() Policy {
	return n.policy
}

// Set stores value under key, replacing any previous value.
// It returns an error wrapping [ErrKeyFormat] and leaves the namespace
// unchanged when key is not an identifier.
func (n *Namespace) Set(key string, value any) error {
	if err := checkKey(key); err != nil {
		return err
	}

	n.store().Set(key, value)
	return nil
}

// MustSet is like [Namespace.Set] but panics on an invalid key. It returns
// the receiver so schema literals can be chained.
func (n *Namespace) MustSet(key string, value any) *Namespace {
	if err := n.Set(key, value); err != nil {
		panic(err)
	}

	return n
}

// Get returns the value stored under key.
//
// For an absent key a [Vivify] namespace stores and returns a new empty
// child namespace, while a [Strict] namespace returns an error wrapping
// [ErrKeyNotFound].
func (n *Namespace) Get(key string) (any, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	if value, ok := n.Lookup(key); ok {
		return value, nil
	}

	if n.policy == Strict {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	child := New(WithPolicy(n.policy))
	n.store().Set(key, child)
	return child, nil
}

// Lookup returns the value stored under key without vivifying it.
func (n *Namespace) Lookup(key string) (any, bool) {
	if n == nil || n.entries == nil {
		return nil, false
	}

	return n.entries.Get(key)
}

// Has reports whether key is present.
func (n *Namespace) Has(key string) bool {
	_, ok := n.Lookup(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (n *Namespace) Delete(key string) bool {
	if n == nil || n.entries == nil {
		return false
	}

	_, ok := n.entries.Delete(key)
	return ok
}

// Len returns the number of keys.
func (n *Namespace) Len() int {
	if n == nil || n.entries == nil {
		return 0
	}

	return n.entries.Len()
}

// Keys returns the keys in insertion order.
func (n *Namespace) Keys() []string {
	keys := make([]string, 0, n.Len())
	n.Range(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})

	return keys
}

// SortedKeys returns the keys in lexicographic order.
func (n *Namespace) SortedKeys() []string {
	keys := n.Keys()
	slices.Sort(keys)
	return keys
}

// Range calls fn for every entry in insertion order until fn returns false.
func (n *Namespace) Range(fn func(key string, value any) bool) {
	if n == nil || n.entries == nil {
		return
	}

	for pair := n.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Section returns the child namespace stored under key, vivifying it when
// the policy allows. It fails with [ErrNotNamespace] when key holds a value
// of another kind.
func (n *Namespace) Section(key string) (*Namespace, error) {
	value, err := n.Get(key)
	if err != nil {
		return nil, err
	}

	child, ok := value.(*Namespace)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotNamespace, key, value)
	}

	return child, nil
}

// MustSection is like [Namespace.Section] but panics on error.
func (n *Namespace) MustSection(key string) *Namespace {
	child, err := n.Section(key)
	if err != nil {
		panic(err)
	}

	return child
}

// Declare returns the child namespace stored under key, creating it with
// the receiver's policy when key is absent. Unlike [Namespace.Section] it
// creates the child under both policies, which is what schema code needs.
func (n *Namespace) Declare(key string) (*Namespace, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	value, ok := n.Lookup(key)
	if !ok {
		child := New(WithPolicy(n.policy))
		n.store().Set(key, child)
		return child, nil
	}

	child, ok := value.(*Namespace)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotNamespace, key, value)
	}

	return child, nil
}

// MustDeclare is like [Namespace.Declare] but panics on error.
func (n *Namespace) MustDeclare(key string) *Namespace {
	child, err := n.Declare(key)
	if err != nil {
		panic(err)
	}

	return child
}

// Resolve reads a dotted path such as "server.http.port". It never
// vivifies and walks through both namespaces and plain map values.
func (n *Namespace) Resolve(path string) (any, error) {
	var current any = n
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		if err := checkKey(segment); err != nil {
			return nil, err
		}

		var (
			value any
			ok    bool
		)
		switch node := current.(type) {
		case *Namespace:
			value, ok = node.Lookup(segment)
		case map[string]any:
			value, ok = node[segment]
		default:
			return nil, fmt.Errorf("%w: %q", ErrNotNamespace, strings.Join(segments[:i], "."))
		}

		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, strings.Join(segments[:i+1], "."))
		}
		current = value
	}

	return current, nil
}

// ToMap returns a deep copy of the namespace as plain maps. Child namespaces
// become map[string]any values.
func (n *Namespace) ToMap() map[string]any {
	m := make(map[string]any, n.Len())
	n.Range(func(key string, value any) bool {
		m[key] = plainValue(value)
		return true
	})

	return m
}

// Clone returns a deep copy that keeps insertion order and policy.
func (n *Namespace) Clone() *Namespace {
	clone := New(WithPolicy(n.policy))
	n.Range(func(key string, value any) bool {
		clone.store().Set(key, CopyValue(value))
		return true
	})

	return clone
}

// Equal reports whether both namespaces hold the same keys and values at
// every nesting level, regardless of insertion order or policy.
func (n *Namespace) Equal(other *Namespace) bool {
	return reflect.DeepEqual(n.ToMap(), other.ToMap())
}

func plainValue(value any) any {
	switch v := value.(type) {
	case *Namespace:
		return v.ToMap()
	case map[string]any:
		m := make(map[string]any, len(v))
		for key, item := range v {
			m[key] = plainValue(item)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, item := range v {
			s[i] = plainValue(item)
		}
		return s
	default:
		return value
	}
}

// CopyValue returns a deep copy of value. Namespaces, maps and slices are
// copied recursively; any other value is returned as is.
func CopyValue(value any) any {
	switch v := value.(type) {
	case *Namespace:
		return v.Clone()
	case map[string]any:
		m := make(map[string]any, len(v))
		for key, item := range v {
			m[key] = CopyValue(item)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, item := range v {
			s[i] = CopyValue(item)
		}
		return s
	default:
		return value
	}
}

func sortedMapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}
