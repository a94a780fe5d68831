package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML bundle files. The top level keys are locale
// codes, nested maps below hold the message templates.
type YAMLParser struct{}

// NewYAMLParser creates a YAMLParser.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse implements the Parser interface.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for locale, val := range data {
		bundle, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q maps to %T, expected map", ErrFailedToParseYAML, locale, val)
		}
		result[locale] = bundle
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no locales found", ErrFailedToParseYAML)
	}
	return result, nil
}

// SupportsExtension implements the Parser interface.
func (p *YAMLParser) SupportsExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
