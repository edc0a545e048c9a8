package namespace

import "errors"

// Errors returned by [Namespace] operations. They are wrapped together with
// the offending key, so callers should match them with errors.Is.
var (
	// ErrKeyFormat indicates a key that is not an identifier string.
	ErrKeyFormat = errors.New("key must be an identifier string")
	// ErrKeyNotFound indicates a read of an absent key on a strict namespace.
	ErrKeyNotFound = errors.New("key not found")
	// ErrNotNamespace indicates that the value stored under a key is not a
	// nested namespace where one was required.
	ErrNotNamespace = errors.New("value is not a namespace")
	// ErrNotObject indicates JSON input whose top-level value is not an
	// object.
	ErrNotObject = errors.New("json value is not an object")
)
