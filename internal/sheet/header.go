package sheet

import "strings"

// normalizeHeader lowercases a header and removes all whitespace so that
// "Trade Date", "TRADE DATE" and "TradeDate " all compare equal.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '\n', '\r', '\u00a0':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchHeader resolves a column index from free-text headers using an
// ordered list of candidate patterns. All patterns are tried for an exact
// match on the normalized header before any pattern is tried for substring
// containment, so a later pattern's exact match always outranks an earlier
// pattern's partial match. Returns -1 when nothing matches.
func MatchHeader(headers []string, patterns ...string) int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	for _, p := range patterns {
		want := normalizeHeader(p)
		if want == "" {
			continue
		}
		for i, h := range normalized {
			if h == want {
				return i
			}
		}
	}
	for _, p := range patterns {
		want := normalizeHeader(p)
		if want == "" {
			continue
		}
		for i, h := range normalized {
			if strings.Contains(h, want) {
				return i
			}
		}
	}
	return -1
}

func anyHeaderContains(headers []string, fragment string) bool {
	want := normalizeHeader(fragment)
	for _, h := range headers {
		if strings.Contains(normalizeHeader(h), want) {
			return true
		}
	}
	return false
}
