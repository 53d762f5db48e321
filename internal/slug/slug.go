package slug

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrExhausted is returned when no free slug candidate is found within
// the probe limit.
var ErrExhausted = errors.New("unable to generate unique slug")

const maxProbes = 1000

// ExistsFunc reports whether a slug candidate is already taken within
// the relevant sibling scope (global for categories, per-category for
// sections and menu items).
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Make turns a display name into a URL-safe slug: lowercase, quotes and
// apostrophes stripped, runs of non-alphanumerics collapsed to a single
// hyphen, edge hyphens trimmed. An all-symbol input yields "".
func Make(text string) string {
	var b strings.Builder
	hyphen := false

	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		case r == '\'' || r == '"' || r == '‘' || r == '’' || r == '“' || r == '”':
			// quotes vanish without acting as a separator
		default:
			hyphen = true
		}
	}

	return b.String()
}

// EnsureUnique computes the base slug for name and probes base, base-2,
// base-3, ... until exists reports a free candidate. The search is
// linear and always restarts at -2; it is an advisory pre-check only and
// the store's unique index remains the final arbiter under concurrency.
func EnsureUnique(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	base := Make(name)
	candidate := base

	for i := 0; i < maxProbes; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i+2)
	}

	return "", ErrExhausted
}

// TitleCase uppercases the first letter of every word; display names are
// stored title-cased.
func TitleCase(text string) string {
	prev := rune(' ')
	return strings.Map(func(r rune) rune {
		out := r
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			out = unicode.ToUpper(r)
		}
		prev = r
		return out
	}, strings.TrimSpace(text))
}
