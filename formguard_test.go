package formguard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formguard/formguard"
	"github.com/formguard/formguard/pkg/constraint"
	"github.com/formguard/formguard/pkg/dispatch"
	"github.com/formguard/formguard/pkg/messages"
	"github.com/formguard/formguard/pkg/validator"
)

func TestGuardValidate(t *testing.T) {
	t.Parallel()

	t.Run("passes for a valid document", func(t *testing.T) {
		t.Parallel()
		guard := formguard.New()
		schema := validator.NewSchema().
			Field("email", constraint.Required(), constraint.Email()).
			Field("age", constraint.Min(18))

		set, err := guard.Validate(context.Background(), schema, validator.MapDocument{
			"email": "sam@example.com",
			"age":   30,
		})

		require.NoError(t, err)
		assert.True(t, set.IsEmpty())
	})

	t.Run("collects violations per unmet constraint", func(t *testing.T) {
		t.Parallel()
		guard := formguard.New()
		schema := validator.NewSchema().
			Field("email", constraint.Required()).
			Field("bio", constraint.Size(10, 200))

		set, err := guard.Validate(context.Background(), schema, validator.MapDocument{
			"bio": "short",
		})

		require.NoError(t, err)
		assert.Len(t, set, 2)
		assert.True(t, set.Has("email"))
		assert.True(t, set.Has("bio"))
	})

	t.Run("resolves messages through the configured resolver", func(t *testing.T) {
		t.Parallel()
		resolver, err := messages.NewResolver(context.Background(), &messages.MapSource{Data: map[string]map[string]any{
			"en": {"validation": map[string]any{"required": "{field} is required"}},
			"de": {"validation": map[string]any{"required": "{field} ist erforderlich"}},
		}})
		require.NoError(t, err)

		guard := formguard.New(formguard.WithResolver(resolver))
		schema := validator.NewSchema().Field("name", constraint.Required())

		ctx := messages.WithLocale(context.Background(), "de")
		set, err := guard.Validate(ctx, schema, validator.MapDocument{})

		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Equal(t, "name ist erforderlich", set[0].Message)
	})

	t.Run("custom kinds register through the façade", func(t *testing.T) {
		t.Parallel()
		guard := formguard.New()
		guard.Registry().MustRegister("even",
			func(ctx context.Context, value any, p constraint.Params) (bool, error) {
				n, ok := value.(int)
				return ok && n%2 == 0, nil
			}, "must be even")

		schema := validator.NewSchema().Field("count", constraint.New("even", nil))
		set, err := guard.Validate(context.Background(), schema, validator.MapDocument{"count": 3})

		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Equal(t, "must be even", set[0].Message)
	})
}

func TestMiddlewareAndCollect(t *testing.T) {
	t.Parallel()

	t.Run("violations recorded during the request are visible downstream", func(t *testing.T) {
		t.Parallel()
		guard := formguard.New()
		schema := validator.NewSchema().
			Field("email", constraint.Required()).
			Field("name", constraint.Required())

		var joined string
		handler := formguard.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := guard.Validate(r.Context(), schema, validator.MapDocument{})
			require.NoError(t, err)

			joined = formguard.Collect(r.Context()).Errors().From("email").Join(", ")
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/", nil))
		assert.Equal(t, "is required", joined)
	})

	t.Run("Collect is empty without the middleware", func(t *testing.T) {
		t.Parallel()
		assert.True(t, formguard.Collect(context.Background()).IsEmpty())
	})

	t.Run("sets are scoped per request", func(t *testing.T) {
		t.Parallel()
		guard := formguard.New()
		schema := validator.NewSchema().Field("name", constraint.Required())

		handler := formguard.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			before := formguard.Collect(r.Context())
			require.True(t, before.IsEmpty())

			_, err := guard.Validate(r.Context(), schema, validator.MapDocument{})
			require.NoError(t, err)
		}))

		for range 2 {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/", nil))
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FORMGUARD_DEFAULT_LOCALE", "de")
	t.Setenv("FORMGUARD_LOG_MISSING_MESSAGES", "true")

	cfg, err := formguard.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.DefaultLocale)
	assert.True(t, cfg.LogMissingMessages)
	assert.Empty(t, cfg.MessagesDir)
}

// Full path: schema declaration, localized pass, outcome dispatch.
func TestEndToEnd(t *testing.T) {
	t.Parallel()

	resolver, err := messages.NewResolver(context.Background(), &messages.MapSource{Data: map[string]map[string]any{
		"en": {"validation": map[string]any{
			"required": "{field} is required",
			"size":     "length must be between {min} and {max}",
		}},
	}})
	require.NoError(t, err)

	guard := formguard.New(formguard.WithResolver(resolver))
	schema := validator.NewSchema().
		Field("title", constraint.Required()).
		Field("summary", constraint.Size(10, 80))

	handler := formguard.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		set, err := guard.Validate(r.Context(), schema, validator.MapDocument{
			"title":   nil,
			"summary": "too short",
		})
		require.NoError(t, err)

		if set.HasErrors() {
			require.NoError(t, guard.Dispatch(w, r).Status(set))
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/articles", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body dispatch.StatusBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"title is required"}, body.Details["title"])
	assert.Equal(t, []string{"length must be between 10 and 80"}, body.Details["summary"])
}
