// Package messages resolves violation message templates against
// locale-scoped resource bundles.
//
// Bundles are nested maps keyed by locale, loaded once from a
// BundleSource (in-memory map, single file, or a filesystem tree of
// YAML/JSON files, including embed.FS). Dotted keys traverse the
// nesting:
//
//	en:
//	  validation:
//	    size: "length must be between {min} and {max}"
//
// # Resolution
//
// Resolution is total: a missing bundle entry falls back to a
// literal default template (ResolveDefault) or the key itself
// (Resolve), both still interpolated, so a violation always carries a
// renderable message.
//
// # Template syntax
//
// Templates support named parameter substitution, the validated-value
// token, conditionals over parameters, and printf-style formatting:
//
//	"must be between {min} and {max}"
//	"value {validatedValue} is not allowed"
//	"{min > 1 ? 'characters' : 'character'}"
//	"{printf '%.2f' validatedValue} exceeds the limit"
//
// # Locale negotiation
//
// MatchLocale negotiates the best loaded locale from plain codes or
// full Accept-Language headers via golang.org/x/text. The Middleware
// stores the negotiated locale in the request context where the
// validator engine picks it up.
package messages
