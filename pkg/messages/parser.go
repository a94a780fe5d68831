package messages

import "context"

// Parser turns raw bundle file content into locale-keyed message maps.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	SupportsExtension(ext string) bool
}
