package messages

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is negotiated or configured.
const DefaultLocale = "en"

// Resolver turns message keys into locale-specific strings. Bundles are
// nested maps loaded once from a BundleSource; keys traverse the
// nesting with dots ("validation.size" reads bundle["validation"]["size"]).
//
// Resolution never fails: a missing bundle entry falls back to the
// literal default (ResolveDefault) or the key itself (Resolve), both
// interpolated against the parameter set.
type Resolver struct {
	bundles       map[string]map[string]any
	locales       []string
	matcher       language.Matcher
	defaultLocale string
	logMissing    bool
	logger        *slog.Logger
	mu            sync.RWMutex
	source        BundleSource
}

// NewResolver creates a Resolver, loading all bundles from the source.
func NewResolver(ctx context.Context, source BundleSource, options ...Option) (*Resolver, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	r := &Resolver{
		defaultLocale: DefaultLocale,
		logMissing:    false,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		source:        source,
	}

	for _, option := range options {
		option(r)
	}

	bundles, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateBundles(bundles); err != nil {
		return nil, err
	}

	r.bundles = bundles
	r.rebuildMatcher()
	r.logger.InfoContext(ctx, "message bundles loaded", "locales", r.locales)
	return r, nil
}

func validateBundles(bundles map[string]map[string]any) error {
	for locale, bundle := range bundles {
		if locale == "" {
			return ErrEmptyLocale
		}
		if bundle == nil {
			return fmt.Errorf("%w: %s", ErrNilBundle, locale)
		}
	}
	return nil
}

// rebuildMatcher derives the language matcher from loaded bundle
// locales. The default locale sorts first so it wins ambiguous matches.
func (r *Resolver) rebuildMatcher() {
	locales := make([]string, 0, len(r.bundles))
	for locale := range r.bundles {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	sort.SliceStable(locales, func(i, j int) bool {
		return locales[i] == r.defaultLocale && locales[j] != r.defaultLocale
	})
	r.locales = locales

	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tags = append(tags, language.Make(locale))
	}
	if len(tags) == 0 {
		tags = []language.Tag{language.Make(r.defaultLocale)}
		r.locales = []string{r.defaultLocale}
	}
	r.matcher = language.NewMatcher(tags)
}

// Locales returns the locale codes with loaded bundles, default first.
func (r *Resolver) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locales
}

// MatchLocale negotiates the best supported locale from a list of
// preferences. Entries may be plain codes ("de") or full
// Accept-Language headers ("de-CH, de;q=0.9, en;q=0.5"). Empty entries
// are skipped; with no usable preference the default locale wins.
func (r *Resolver) MatchLocale(preferred ...string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefs := make([]string, 0, len(preferred))
	for _, p := range preferred {
		if strings.TrimSpace(p) != "" {
			prefs = append(prefs, p)
		}
	}
	if len(prefs) == 0 {
		return r.defaultLocale
	}

	_, idx := language.MatchStrings(r.matcher, prefs...)
	if idx < 0 || idx >= len(r.locales) {
		return r.defaultLocale
	}
	return r.locales[idx]
}

// Has reports whether a bundle entry exists for the exact locale and
// key, without fallback.
func (r *Resolver) Has(locale, key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bundle, ok := r.bundles[strings.ToLower(strings.TrimSpace(locale))]
	if !ok {
		return false
	}

	val, ok := lookupNested(bundle, key)
	if !ok {
		return false
	}
	_, ok = val.(string)
	return ok
}

// Resolve resolves a key for the locale and interpolates the parameter
// set. When no bundle entry exists the interpolated key itself is
// returned, never an empty string.
func (r *Resolver) Resolve(locale, key string, params map[string]any) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, ok := r.entry(locale, key)
	if !ok {
		if r.logMissing {
			r.logger.Warn("message entry not found", "locale", locale, "key", key)
		}
		return Interpolate(key, params)
	}
	return Interpolate(template, params)
}

// ResolveDefault resolves a key for the locale, falling back to the
// given literal template when no bundle entry exists. This is the path
// the validator engine takes: every constraint kind carries a literal
// default, so message resolution is total even with no bundles loaded.
func (r *Resolver) ResolveDefault(locale, key, literal string, params map[string]any) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, ok := r.entry(locale, key)
	if !ok {
		if r.logMissing {
			r.logger.Warn("message entry not found, using literal", "locale", locale, "key", key)
		}
		return Interpolate(literal, params)
	}
	return Interpolate(template, params)
}

// entry finds the string template for locale and dotted key, trying the
// requested locale, its base language, then the default locale.
func (r *Resolver) entry(locale, key string) (string, bool) {
	for _, candidate := range r.localeChain(locale) {
		bundle, ok := r.bundles[candidate]
		if !ok {
			continue
		}
		if val, ok := lookupNested(bundle, key); ok {
			if s, ok := val.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

func (r *Resolver) localeChain(locale string) []string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		return []string{r.defaultLocale}
	}

	chain := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	if locale != r.defaultLocale {
		chain = append(chain, r.defaultLocale)
	}
	return chain
}

// lookupNested traverses a nested map using dot-separated keys.
func lookupNested(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}
			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}
		current = currentMap
	}
	return nil, false
}
