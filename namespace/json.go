package namespace

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var errTrailingData = errors.New("invalid character after top-level value")

// MarshalJSON encodes the namespace as a JSON object whose members are
// sorted by key at every nesting level. Integral float64 values keep a
// fractional part ("1.0") so they decode back as float64.
func (n *Namespace) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}

	return json.Marshal(encodeNumbers(n.ToMap()))
}

// UnmarshalJSON replaces the content of the namespace with the decoded JSON
// object. The receiver keeps its policy and is left untouched on error.
func (n *Namespace) UnmarshalJSON(data []byte) error {
	obj, err := ParseObject(data)
	if err != nil {
		return err
	}

	decoded, err := FromMap(obj, WithPolicy(n.policy))
	if err != nil {
		return err
	}

	n.entries = decoded.entries
	return nil
}

// ParseObject decodes data, which must hold exactly one JSON value, into a
// plain map tree. The top-level value must be an object.
//
// Integer literals decode as int, falling back to float64 when they overflow
// it. Literals with a fraction or exponent decode as float64. Decoding errors
// are returned as produced by the JSON decoder.
func ParseObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errTrailingData
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, kindOf(value))
	}

	return decodeNumbers(obj).(map[string]any), nil
}

func decodeNumbers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = decodeNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = decodeNumbers(item)
		}
		return v
	case json.Number:
		return numberValue(v)
	default:
		return value
	}
}

func numberValue(num json.Number) any {
	text := num.String()
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, strconv.IntSize); err == nil {
			return int(i)
		}
	}

	// The decoder has validated the literal; out-of-range values become ±Inf.
	f, _ := strconv.ParseFloat(text, 64)
	return f
}

func encodeNumbers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = encodeNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = encodeNumbers(item)
		}
		return v
	case float64:
		return floatNumber(v)
	case float32:
		return floatNumber(float64(v))
	default:
		return value
	}
}

// floatNumber spells f so that it is read back as a float.
func floatNumber(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}

	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}

	return json.Number(text)
}

func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}
