// Package classify assigns transactions to hierarchical categories by
// matching an ordered rule table against the transaction's raw bank record.
//
// A rule maps a colon-delimited category path (e.g. "Expenses:Groceries")
// to a set of regular expression patterns. Rules are tried in table order
// and the first rule with any matching pattern wins.
package classify

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/finquery/internal/logging"
	"fjacquet/finquery/internal/models"
)

// Rule pairs a category path with the patterns that select it.
// Patterns are matched case-insensitively anywhere in the raw record.
type Rule struct {
	Category string   `yaml:"category"`
	Patterns []string `yaml:"patterns"`
}

// compiledRule holds a rule with its patterns compiled.
type compiledRule struct {
	category string
	patterns []*regexp.Regexp
}

// Classifier categorizes transactions against a compiled rule table.
// Construction compiles every pattern; a Classifier is immutable and safe
// for concurrent use afterwards.
type Classifier struct {
	rules  []compiledRule
	logger logging.Logger
}

// New compiles the rule table into a Classifier. A malformed pattern is a
// configuration error and fails construction immediately rather than being
// deferred to match time.
func New(rules []Rule, logger logging.Logger) (*Classifier, error) {
	c := &Classifier{logger: logger}

	for _, rule := range rules {
		cr := compiledRule{category: rule.Category}
		for _, pattern := range rule.Patterns {
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q for category %q: %w", pattern, rule.Category, err)
			}
			cr.patterns = append(cr.patterns, re)
		}
		c.rules = append(c.rules, cr)
	}

	if logger != nil {
		logger.WithField("rules", len(c.rules)).Debug("Compiled category rule table")
	}
	return c, nil
}

// Classify returns the category path of the first rule (in table order) with
// a pattern matching the transaction's raw record, or an empty string when no
// rule matches. It never fails: an empty rule table classifies nothing.
func (c *Classifier) Classify(tx models.Transaction) string {
	for _, rule := range c.rules {
		for _, re := range rule.patterns {
			if re.MatchString(tx.Raw) {
				return rule.category
			}
		}
	}
	return ""
}

// InCategory reports whether the transaction's classification equals the
// queried path or has it as a colon-delimited ancestor, case-insensitively.
// An unclassified transaction belongs to no category.
func (c *Classifier) InCategory(tx models.Transaction, path string) bool {
	category := c.Classify(tx)
	if category == "" {
		return false
	}
	return IsAncestorOrEqual(path, category)
}

// IsAncestorOrEqual reports whether path equals category or is one of its
// colon-delimited ancestors, case-insensitively. "Expenses" contains
// "Expenses:Groceries" but "Exp" contains neither.
func IsAncestorOrEqual(path, category string) bool {
	path = strings.ToLower(path)
	category = strings.ToLower(category)
	if path == category {
		return true
	}
	return strings.HasPrefix(category, path+":")
}
