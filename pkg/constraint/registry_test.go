package constraint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formguard/formguard/pkg/constraint"
	"github.com/formguard/formguard/pkg/violation"
)

func TestNewRegistry(t *testing.T) {
	reg := constraint.NewRegistry()

	t.Run("carries all builtin kinds", func(t *testing.T) {
		for _, kind := range []constraint.Kind{
			constraint.KindRequired,
			constraint.KindMinLength,
			constraint.KindMaxLength,
			constraint.KindExactLength,
			constraint.KindSize,
			constraint.KindMin,
			constraint.KindMax,
			constraint.KindRange,
			constraint.KindPositive,
			constraint.KindPast,
			constraint.KindFuture,
			constraint.KindBefore,
			constraint.KindAfter,
			constraint.KindPattern,
			constraint.KindEmail,
			constraint.KindOneOf,
			constraint.KindAccepted,
			constraint.KindMinItems,
			constraint.KindMaxItems,
			constraint.KindExists,
			constraint.KindUnique,
		} {
			assert.True(t, reg.Has(kind), "missing builtin kind %q", kind)
		}
	})

	t.Run("kinds are sorted and deterministic", func(t *testing.T) {
		first := reg.Kinds()
		second := reg.Kinds()
		require.Equal(t, first, second)
		for i := 1; i < len(first); i++ {
			assert.Less(t, first[i-1], first[i])
		}
	})
}

func TestRegistryRegister(t *testing.T) {
	noop := func(context.Context, any, constraint.Params) (bool, error) { return true, nil }

	t.Run("registers a custom kind", func(t *testing.T) {
		reg := constraint.NewRegistry()
		require.NoError(t, reg.Register("iban", noop, "must be a valid IBAN"))

		check, template, ok := reg.Lookup("iban")
		require.True(t, ok)
		require.NotNil(t, check)
		assert.Equal(t, "must be a valid IBAN", template)
	})

	t.Run("rejects empty kind", func(t *testing.T) {
		reg := constraint.NewRegistry()
		assert.ErrorIs(t, reg.Register("", noop, ""), constraint.ErrEmptyKind)
	})

	t.Run("rejects nil check", func(t *testing.T) {
		reg := constraint.NewRegistry()
		assert.ErrorIs(t, reg.Register("iban", nil, ""), constraint.ErrNilCheck)
	})

	t.Run("rejects duplicate registration", func(t *testing.T) {
		reg := constraint.NewRegistry()
		require.NoError(t, reg.Register("iban", noop, ""))
		assert.ErrorIs(t, reg.Register("iban", noop, ""), constraint.ErrKindRegistered)
	})

	t.Run("builtins cannot be replaced", func(t *testing.T) {
		reg := constraint.NewRegistry()
		assert.ErrorIs(t, reg.Register(constraint.KindRequired, noop, ""), constraint.ErrKindRegistered)
	})

	t.Run("must register panics on conflict", func(t *testing.T) {
		reg := constraint.NewRegistry()
		assert.Panics(t, func() {
			reg.MustRegister(constraint.KindRequired, noop, "")
		})
	})
}

func TestRegistryLookup(t *testing.T) {
	reg := constraint.NewRegistry()

	t.Run("unknown kind reports not found", func(t *testing.T) {
		check, template, ok := reg.Lookup("no_such_kind")
		assert.False(t, ok)
		assert.Nil(t, check)
		assert.Empty(t, template)
	})
}

func TestConstraintDefaults(t *testing.T) {
	t.Run("message key derives from kind", func(t *testing.T) {
		c := constraint.Size(2, 30)
		assert.Equal(t, "validation.size", c.MessageKey)
	})

	t.Run("severity defaults to error", func(t *testing.T) {
		c := constraint.Required()
		assert.Equal(t, violation.SeverityError, c.Severity)
	})

	t.Run("severity helpers return copies", func(t *testing.T) {
		base := constraint.Required()
		warn := base.AsWarning()
		info := base.AsInfo()

		assert.Equal(t, violation.SeverityError, base.Severity)
		assert.Equal(t, violation.SeverityWarning, warn.Severity)
		assert.Equal(t, violation.SeverityInfo, info.Severity)
	})

	t.Run("custom message key overrides default", func(t *testing.T) {
		c := constraint.Required().WithMessageKey("signup.email.required")
		assert.Equal(t, "signup.email.required", c.MessageKey)

		unchanged := constraint.Required().WithMessageKey("")
		assert.Equal(t, "validation.required", unchanged.MessageKey)
	})
}
