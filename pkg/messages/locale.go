package messages

import (
	"context"
	"net/http"
	"strings"
)

// RFC 5646 recommends at most 35 characters for a language tag.
const maxLocaleLength = 35

// localeContextKey is the key for storing the negotiated locale.
type localeContextKey struct{}

// WithLocale stores the locale in the context.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the locale stored in the context, or the
// default locale when none is set.
func LocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLocale
	}
	return locale
}

// Extractor pulls a locale preference out of an HTTP request. An empty
// result means the extractor has no opinion and the next one is tried.
type Extractor func(r *http.Request) string

// FromQuery extracts the locale from a query parameter.
func FromQuery(name string) Extractor {
	return func(r *http.Request) string {
		return sanitizeLocale(r.URL.Query().Get(name))
	}
}

// FromCookie extracts the locale from a cookie.
func FromCookie(name string) Extractor {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(name)
		if err != nil {
			return ""
		}
		return sanitizeLocale(cookie.Value)
	}
}

// FromHeader extracts the raw Accept-Language header; the resolver's
// matcher understands full header syntax including quality weights.
func FromHeader() Extractor {
	return func(r *http.Request) string {
		return r.Header.Get("Accept-Language")
	}
}

func sanitizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" || len(locale) > maxLocaleLength {
		return ""
	}
	return strings.ToLower(locale)
}

// Middleware negotiates the request locale and stores it in the
// request context. Extractors are tried in order; the first non-empty
// preference is matched against the resolver's loaded locales. With no
// extractors, query "lang", cookie "locale", and Accept-Language are
// tried in that order.
func Middleware(r *Resolver, extractors ...Extractor) func(http.Handler) http.Handler {
	if len(extractors) == 0 {
		extractors = []Extractor{
			FromQuery("lang"),
			FromCookie("locale"),
			FromHeader(),
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			var preferred string
			for _, extract := range extractors {
				if p := extract(req); p != "" {
					preferred = p
					break
				}
			}

			locale := r.MatchLocale(preferred)
			next.ServeHTTP(w, req.WithContext(WithLocale(req.Context(), locale)))
		})
	}
}
