package doc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	// FormatJSON is JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

var (
	// ErrDecode wraps every decoding failure.
	ErrDecode = errors.New("doc: decode failed")
	// ErrEncode wraps every encoding failure.
	ErrEncode = errors.New("doc: encode failed")
)

// Decode parses YAML, or JSON, into a document.
func Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return normalize(v), nil
}

// DecodeJSON parses JSON into a document. Numbers decode as float64.
func DecodeJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

// Encode renders a document in the given format.
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return data, nil
	case FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrEncode, format)
	}
}

// normalize rewrites YAML mappings with non-string keys into map[string]any.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, child := range x {
			x[k] = normalize(child)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, child := range x {
			result[fmt.Sprint(k)] = normalize(child)
		}
		return result
	case []any:
		for i, child := range x {
			x[i] = normalize(child)
		}
		return x
	default:
		return v
	}
}
