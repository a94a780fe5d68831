package messages_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/formguard/formguard/pkg/messages"
)

func TestInterpolate(t *testing.T) {
	t.Run("substitutes named parameters", func(t *testing.T) {
		got := messages.Interpolate("length must be between {min} and {max}", map[string]any{
			"min": 2,
			"max": 30,
		})
		assert.Equal(t, "length must be between 2 and 30", got)
	})

	t.Run("substitutes the validated value token", func(t *testing.T) {
		got := messages.Interpolate("value {validatedValue} is not allowed", map[string]any{
			messages.ValidatedValueParam: "admin",
		})
		assert.Equal(t, "value admin is not allowed", got)
	})

	t.Run("keeps unknown placeholders verbatim", func(t *testing.T) {
		got := messages.Interpolate("must be at least {min}", nil)
		assert.Equal(t, "must be at least {min}", got)
	})

	t.Run("formats floats without trailing zeros", func(t *testing.T) {
		got := messages.Interpolate("limit {max}", map[string]any{"max": 10.0})
		assert.Equal(t, "limit 10", got)

		got = messages.Interpolate("limit {max}", map[string]any{"max": 10.5})
		assert.Equal(t, "limit 10.5", got)
	})

	t.Run("formats dates as ISO days", func(t *testing.T) {
		got := messages.Interpolate("before {bound}", map[string]any{
			"bound": time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		})
		assert.Equal(t, "before 2026-03-01", got)
	})

	t.Run("template without placeholders passes through", func(t *testing.T) {
		assert.Equal(t, "is required", messages.Interpolate("is required", nil))
	})
}

func TestInterpolateTernary(t *testing.T) {
	t.Run("truthy parameter selects first branch", func(t *testing.T) {
		got := messages.Interpolate("{strict ? 'rejected' : 'flagged'}", map[string]any{"strict": true})
		assert.Equal(t, "rejected", got)
	})

	t.Run("falsy parameter selects second branch", func(t *testing.T) {
		got := messages.Interpolate("{strict ? 'rejected' : 'flagged'}", map[string]any{"strict": false})
		assert.Equal(t, "flagged", got)

		got = messages.Interpolate("{strict ? 'rejected' : 'flagged'}", nil)
		assert.Equal(t, "flagged", got)
	})

	t.Run("numeric comparison", func(t *testing.T) {
		params := map[string]any{"min": 2}
		got := messages.Interpolate("need {min} {min > 1 ? 'characters' : 'character'}", params)
		assert.Equal(t, "need 2 characters", got)

		params = map[string]any{"min": 1}
		got = messages.Interpolate("need {min} {min > 1 ? 'characters' : 'character'}", params)
		assert.Equal(t, "need 1 character", got)
	})

	t.Run("string equality comparison", func(t *testing.T) {
		params := map[string]any{"field": "email"}
		got := messages.Interpolate("{field == 'email' ? 'address' : 'value'}", params)
		assert.Equal(t, "address", got)
	})

	t.Run("branch may reference a parameter", func(t *testing.T) {
		params := map[string]any{"fallback": "n/a", "known": false}
		got := messages.Interpolate("{known ? 'yes' : fallback}", params)
		assert.Equal(t, "n/a", got)
	})

	t.Run("comparison against the validated value", func(t *testing.T) {
		params := map[string]any{messages.ValidatedValueParam: 150}
		got := messages.Interpolate("{validatedValue > 100 ? 'far too long' : 'too long'}", params)
		assert.Equal(t, "far too long", got)
	})
}

func TestInterpolatePrintf(t *testing.T) {
	t.Run("formats with a printf verb", func(t *testing.T) {
		params := map[string]any{messages.ValidatedValueParam: 3.14159}
		got := messages.Interpolate("got {printf '%.2f' validatedValue}", params)
		assert.Equal(t, "got 3.14", got)
	})

	t.Run("hex formatting", func(t *testing.T) {
		params := map[string]any{"code": 255}
		got := messages.Interpolate("code {printf '%x' code}", params)
		assert.Equal(t, "code ff", got)
	})

	t.Run("unknown parameter keeps the placeholder", func(t *testing.T) {
		got := messages.Interpolate("got {printf '%.2f' missing}", nil)
		assert.Equal(t, "got {printf '%.2f' missing}", got)
	})

	t.Run("malformed expression keeps the placeholder", func(t *testing.T) {
		got := messages.Interpolate("got {printf no-quotes}", map[string]any{"no-quotes": 1})
		assert.Equal(t, "got {printf no-quotes}", got)
	})
}
