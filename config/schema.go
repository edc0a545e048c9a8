package config

import (
	"fmt"
	"os"

	"github.com/MKhiriev/staticconfig/namespace"
)

// Schema populates root with every option of a configuration and its
// default value. It must not perform I/O; it is called every time a fresh
// [Config] is needed.
type Schema func(root *namespace.Namespace) error

// SchemaFromMap returns a schema copying defaults into the root. Nested maps
// become sections. The map is copied on every call, so later changes to a
// built config never leak back into defaults.
func SchemaFromMap(defaults map[string]any) Schema {
	return func(root *namespace.Namespace) error {
		built, err := namespace.FromMap(defaults, namespace.WithPolicy(root.Policy()))
		if err != nil {
			return err
		}

		built.Range(func(key string, value any) bool {
			err = root.Set(key, value)
			return err == nil
		})

		return err
	}
}

// SchemaFromFile reads defaults from a JSON file once and returns a schema
// serving them.
func SchemaFromFile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading schema file: %w", err)
	}

	defaults, err := namespace.ParseObject(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding schema file %s: %w", path, err)
	}

	return SchemaFromMap(defaults), nil
}

// Extend returns a schema applying base and then every schema in more, in
// order. Later schemas may add options or replace defaults set by earlier
// ones.
func Extend(base Schema, more ...Schema) Schema {
	return func(root *namespace.Namespace) error {
		for _, schema := range append([]Schema{base}, more...) {
			if schema == nil {
				continue
			}
			if err := schema(root); err != nil {
				return err
			}
		}

		return nil
	}
}
