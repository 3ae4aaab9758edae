package filter

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
)

// ExcludeFilter drops names matching any of a set of regular expressions.
type ExcludeFilter struct {
	patterns []*regexp.Regexp
	logger   *slog.Logger
}

// NewExcludeFilter creates a new exclude filter with the given patterns.
func NewExcludeFilter(patterns []string, logger *slog.Logger) (*ExcludeFilter, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no patterns provided for exclude filter")
	}

	compiledPatterns := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		compiledPatterns = append(compiledPatterns, compiled)
	}

	return &ExcludeFilter{
		patterns: compiledPatterns,
		logger:   logger,
	}, nil
}

// ShouldExclude returns true if any of names matches any pattern. A work is
// passed with both its English and Tamil names.
func (f *ExcludeFilter) ShouldExclude(names ...string) bool {
	for _, name := range names {
		for _, pattern := range f.patterns {
			if pattern.MatchString(name) {
				f.logger.Debug("Excluded by pattern",
					"name", name,
					"pattern", pattern.String())
				return true
			}
		}
	}
	return false
}
