package namespace

import (
	"fmt"
	"unicode"
)

// identStart and identContinue follow the Unicode identifier classes: a key
// starts with a letter, a letter number or '_', and continues with those,
// digits, combining marks and connector punctuation.
var (
	identStart    = []*unicode.RangeTable{unicode.L, unicode.Nl}
	identContinue = []*unicode.RangeTable{unicode.L, unicode.Nl, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Pc}
)

// IsIdentifier reports whether key can be used as a namespace key.
//
// Language keywords are accepted: "type" or "default" are ordinary
// configuration option names.
func IsIdentifier(key string) bool {
	if key == "" {
		return false
	}

	for i, r := range key {
		switch {
		case r == '_':
		case i == 0 && unicode.In(r, identStart...):
		case i > 0 && unicode.In(r, identContinue...):
		default:
			return false
		}
	}

	return true
}

func checkKey(key string) error {
	if !IsIdentifier(key) {
		return fmt.Errorf("%w: %q", ErrKeyFormat, key)
	}

	return nil
}
