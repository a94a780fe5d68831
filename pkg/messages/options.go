package messages

import "log/slog"

// Option configures a Resolver.
type Option func(*Resolver)

// WithDefaultLocale sets the locale used when negotiation fails or no
// locale is supplied.
func WithDefaultLocale(locale string) Option {
	return func(r *Resolver) {
		if locale != "" {
			r.defaultLocale = locale
		}
	}
}

// WithLogger provides a logger for load and resolution diagnostics.
// A discard logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMissingEntryLogging enables logging of misses during resolution.
// Off by default to avoid log noise from intentionally sparse bundles.
func WithMissingEntryLogging(log bool) Option {
	return func(r *Resolver) {
		r.logMissing = log
	}
}
