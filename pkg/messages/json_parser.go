package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// JSONParser parses JSON bundle files with the same locale-keyed layout
// as YAML bundles.
type JSONParser struct{}

// NewJSONParser creates a JSONParser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements the Parser interface.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result := make(map[string]map[string]any, len(data))
	for locale, val := range data {
		bundle, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q maps to %T, expected object", ErrFailedToParseJSON, locale, val)
		}
		result[locale] = bundle
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no locales found", ErrFailedToParseJSON)
	}
	return result, nil
}

// SupportsExtension implements the Parser interface.
func (p *JSONParser) SupportsExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
