package classify

import "strings"

// Matcher finds derogatory keywords in free-text status fields. Keywords are
// ordered most severe first; the order doubles as the severity ranking.
type Matcher struct {
	keywords []string
}

// NewMatcher creates a Matcher from an ordered keyword list.
func NewMatcher(keywords []string) *Matcher {
	return &Matcher{keywords: append([]string(nil), keywords...)}
}

// DefaultMatcher returns a Matcher loaded with the stock keyword list.
func DefaultMatcher() *Matcher {
	return NewMatcher(DefaultSevereKeywords())
}

// Match returns the most severe keyword contained in text (case-insensitive)
// and whether any matched.
func (m *Matcher) Match(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, kw := range m.keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return kw, true
		}
	}
	return "", false
}

// MostSevere returns the highest-ranked keyword found across texts, or ""
// when none match.
func (m *Matcher) MostSevere(texts ...string) string {
	best := len(m.keywords)
	for _, t := range texts {
		if t == "" {
			continue
		}
		lower := strings.ToLower(t)
		for i, kw := range m.keywords {
			if i >= best {
				break
			}
			if strings.Contains(lower, strings.ToLower(kw)) {
				best = i
				break
			}
		}
	}
	if best == len(m.keywords) {
		return ""
	}
	return m.keywords[best]
}
