package messages_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formguard/formguard/pkg/messages"
)

const yamlBundle = `
en:
  validation:
    required: "is required"
    min: "must be at least {min}"
de:
  validation:
    required: "ist erforderlich"
`

const jsonBundle = `{
  "en": {
    "validation": {
      "email": "must be a valid email address"
    }
  }
}`

func TestYAMLParser(t *testing.T) {
	p := messages.NewYAMLParser()

	t.Run("parses locale-keyed bundles", func(t *testing.T) {
		got, err := p.Parse(context.Background(), []byte(yamlBundle))
		require.NoError(t, err)
		require.Contains(t, got, "en")
		require.Contains(t, got, "de")
	})

	t.Run("rejects non-map locale values", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: just-a-string"))
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})

	t.Run("rejects invalid YAML", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: [unclosed"))
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte(yamlBundle))
		assert.ErrorIs(t, err, messages.ErrLoadCancelled)
	})

	t.Run("supports yaml and yml extensions", func(t *testing.T) {
		assert.True(t, p.SupportsExtension(".yaml"))
		assert.True(t, p.SupportsExtension("yml"))
		assert.False(t, p.SupportsExtension(".json"))
	})
}

func TestJSONParser(t *testing.T) {
	p := messages.NewJSONParser()

	t.Run("parses locale-keyed bundles", func(t *testing.T) {
		got, err := p.Parse(context.Background(), []byte(jsonBundle))
		require.NoError(t, err)
		require.Contains(t, got, "en")
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("{"))
		assert.ErrorIs(t, err, messages.ErrFailedToParseJSON)
	})

	t.Run("supports json extension only", func(t *testing.T) {
		assert.True(t, p.SupportsExtension(".json"))
		assert.False(t, p.SupportsExtension(".yaml"))
	})
}

func TestFileSource(t *testing.T) {
	t.Run("loads a bundle file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "messages.yaml")
		require.NoError(t, os.WriteFile(path, []byte(yamlBundle), 0o644))

		src := messages.NewFileSource(messages.NewYAMLParser(), path)
		require.NotNil(t, src)

		got, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Contains(t, got, "en")
	})

	t.Run("fails for missing file", func(t *testing.T) {
		src := messages.NewFileSource(messages.NewYAMLParser(), "/no/such/file.yaml")
		_, err := src.Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("returns nil for invalid construction", func(t *testing.T) {
		assert.Nil(t, messages.NewFileSource(nil, "x.yaml"))
		assert.Nil(t, messages.NewFileSource(messages.NewYAMLParser(), ""))
	})
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/base.yaml":  {Data: []byte(yamlBundle)},
		"locales/extra.json": {Data: []byte(jsonBundle)},
		"locales/notes.txt":  {Data: []byte("ignored")},
	}

	t.Run("merges bundles across files and formats", func(t *testing.T) {
		src := messages.NewFSSource(fsys, ".")
		require.NotNil(t, src)

		got, err := src.Load(context.Background())
		require.NoError(t, err)

		r, err := messages.NewResolver(context.Background(), &messages.MapSource{Data: got})
		require.NoError(t, err)

		// Keys from both the YAML and the JSON file land under "en".
		assert.Equal(t, "is required", r.Resolve("en", "validation.required", nil))
		assert.Equal(t, "must be a valid email address", r.Resolve("en", "validation.email", nil))
		assert.Equal(t, "ist erforderlich", r.Resolve("de", "validation.required", nil))
	})

	t.Run("unsupported files are skipped", func(t *testing.T) {
		src := messages.NewFSSource(fstest.MapFS{"readme.md": {Data: []byte("# hi")}}, ".")
		got, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("returns nil for nil filesystem", func(t *testing.T) {
		assert.Nil(t, messages.NewFSSource(nil, "."))
	})
}
