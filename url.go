package pagemeta

import "net/url"

// ResolveURL resolves candidate against base using standard relative
// reference resolution. Absolute candidates pass through unchanged.
// When base is empty or does not parse as an absolute URL the
// candidate is returned as-is: resolution degrades, it never fails
// the caller.
func ResolveURL(base, candidate string) string {
	if candidate == "" {
		return candidate
	}

	ref, err := url.Parse(candidate)
	if err != nil {
		return candidate
	}
	if ref.IsAbs() {
		return candidate
	}

	if base == "" {
		return candidate
	}
	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() {
		return candidate
	}

	return b.ResolveReference(ref).String()
}
