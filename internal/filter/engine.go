// Package filter implements the optional title matching engine.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sandovabarbora/articles-checker/internal/model"
)

// Match checks whether an entry title passes the given set of filters.
// If no filters are provided, the title always passes.
// Include filters use OR logic (at least one must match).
// Exclude filters use AND logic (none must match).
// Matching is case-insensitive.
func Match(title string, filters []model.Filter) bool {
	if len(filters) == 0 {
		return true
	}

	hasIncludes := false
	anyIncludeMatched := false

	for _, f := range filters {
		switch f.Kind {
		case model.FilterInclude, model.FilterIncludeRe:
			hasIncludes = true
			if matchesFilter(title, f) {
				anyIncludeMatched = true
			}
		case model.FilterExclude, model.FilterExcludeRe:
			if matchesFilter(title, f) {
				return false
			}
		}
	}

	if hasIncludes && !anyIncludeMatched {
		return false
	}
	return true
}

func matchesFilter(title string, f model.Filter) bool {
	text := strings.ToLower(title)
	switch f.Kind {
	case model.FilterInclude, model.FilterExclude:
		return strings.Contains(text, strings.ToLower(f.Value))
	case model.FilterIncludeRe, model.FilterExcludeRe:
		re, err := regexp.Compile("(?i)" + f.Value)
		if err != nil {
			return false
		}
		return re.MatchString(text)
	}
	return false
}

// ValidateRegex checks whether a pattern is a valid regular expression.
func ValidateRegex(pattern string) error {
	_, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	return nil
}
