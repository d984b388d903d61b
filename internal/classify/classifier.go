package classify

import (
	"strings"

	"github.com/anivratgoel/carepal-id-bre/internal/model"
)

// Classifier maps free-text account types to a collateral category. The
// type lists are injected at construction so policy overrides and tests
// don't share process-wide state.
type Classifier struct {
	secured   []string
	unsecured []string
}

// NewClassifier creates a Classifier from secured and unsecured type lists.
func NewClassifier(secured, unsecured []string) *Classifier {
	return &Classifier{
		secured:   append([]string(nil), secured...),
		unsecured: append([]string(nil), unsecured...),
	}
}

// DefaultClassifier returns a Classifier loaded with the stock type lists.
func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultSecuredTypes(), DefaultUnsecuredTypes())
}

// Classify maps an account-type string to a Category. Exact matches are
// tried first, then case-insensitive substring containment. Secured is
// checked before unsecured, so a type matching both lists lands secured.
// Never fails: anything unrecognized is CategoryUnknown.
func (c *Classifier) Classify(accountType string) model.Category {
	atype := strings.TrimSpace(accountType)
	if atype == "" {
		return model.CategoryUnknown
	}

	for _, s := range c.secured {
		if atype == s {
			return model.CategorySecured
		}
	}
	for _, u := range c.unsecured {
		if atype == u {
			return model.CategoryUnsecured
		}
	}

	lower := strings.ToLower(atype)
	for _, s := range c.secured {
		if strings.Contains(lower, strings.ToLower(s)) {
			return model.CategorySecured
		}
	}
	for _, u := range c.unsecured {
		if strings.Contains(lower, strings.ToLower(u)) {
			return model.CategoryUnsecured
		}
	}

	return model.CategoryUnknown
}
