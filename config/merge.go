package config

import (
	"slices"

	"github.com/MKhiriev/staticconfig/namespace"
)

// section is the subset of namespace operations the merge needs. Plain
// map[string]any values found in the defaults are merged through
// plainSection.
type section interface {
	Lookup(key string) (any, bool)
	Set(key string, value any) error
}

type plainSection map[string]any

func (s plainSection) Lookup(key string) (any, bool) {
	value, ok := s[key]
	return value, ok
}

func (s plainSection) Set(key string, value any) error {
	s[key] = value
	return nil
}

// Merge overlays values onto base recursively.
//
// Every overlay key must already exist in base at the same level, otherwise
// an [*OptionError] wrapping [ErrUnexpectedOption] is returned. Overlay
// objects are merged into the matching section of base, which must be a
// namespace or a plain map ([ErrNotSection] otherwise); every other overlay
// value replaces the value in base.
//
// The overlay is checked in full before base is modified, so base is left
// untouched on error.
func Merge(base *namespace.Namespace, overlay map[string]any) error {
	if err := merge(base, overlay, "", false); err != nil {
		return err
	}

	return merge(base, overlay, "", true)
}

func merge(base section, overlay map[string]any, prefix string, apply bool) error {
	keys := make([]string, 0, len(overlay))
	for key := range overlay {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := overlay[key]
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		current, ok := base.Lookup(key)
		if !ok {
			return &OptionError{Path: path, Err: ErrUnexpectedOption}
		}

		nested, isObject := asObject(value)
		if !isObject {
			if apply {
				if err := base.Set(key, namespace.CopyValue(value)); err != nil {
					return err
				}
			}
			continue
		}

		target, ok := asSection(current)
		if !ok {
			return &OptionError{Path: path, Err: ErrNotSection}
		}
		if err := merge(target, nested, path, apply); err != nil {
			return err
		}
	}

	return nil
}

func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case *namespace.Namespace:
		return v.ToMap(), true
	default:
		return nil, false
	}
}

func asSection(value any) (section, bool) {
	switch v := value.(type) {
	case *namespace.Namespace:
		return v, true
	case map[string]any:
		return plainSection(v), true
	default:
		return nil, false
	}
}
