package maintpage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ConfigLoader reads the page data file.
type ConfigLoader interface {
	Load(ctx context.Context, path string) (map[string]any, error)
}

// JSONLoader reads a JSON object from disk. Values are passed through
// verbatim: no defaults, no schema. Duplicate keys keep the last value.
type JSONLoader struct{}

// Compile-time interface check.
var _ ConfigLoader = (*JSONLoader)(nil)

// Load reads and decodes path. A missing or unreadable file wraps
// ErrDataNotFound; a malformed document, trailing data after the object or
// a top-level value other than an object wraps ErrDataParse.
func (l *JSONLoader) Load(ctx context.Context, path string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 -- path comes from the build settings
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataNotFound, err)
	}

	m, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDataParse, path, err)
	}
	return m, nil
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the top-level value")
	}

	m, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level value is %s, not an object", kindOf(root))
	}
	return m, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
