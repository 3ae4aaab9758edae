package filter

import "log/slog"

// Filter decides whether a listed item is hidden from output.
type Filter interface {
	ShouldExclude(names ...string) bool
}

// NoOpFilter is a filter that never excludes anything.
type NoOpFilter struct{}

// NewNoOpFilter creates a new no-op filter.
func NewNoOpFilter() *NoOpFilter {
	return &NoOpFilter{}
}

// ShouldExclude always returns false.
func (f *NoOpFilter) ShouldExclude(_ ...string) bool {
	return false
}

// New returns an ExcludeFilter for patterns, or a NoOpFilter when none are given.
func New(patterns []string, logger *slog.Logger) (Filter, error) {
	if len(patterns) == 0 {
		return NewNoOpFilter(), nil
	}
	return NewExcludeFilter(patterns, logger)
}
