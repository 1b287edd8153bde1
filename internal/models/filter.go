package models

import "fmt"

// FilterType represents a filter for selecting tasks
type FilterType string

const (
	// FilterAll selects all tasks
	FilterAll FilterType = "all"

	// FilterCritical selects tasks on the critical path
	FilterCritical FilterType = "critical"

	// FilterMilestone selects milestones
	FilterMilestone FilterType = "milestone"

	// FilterSummary selects summary (parent) tasks
	FilterSummary FilterType = "summary"

	// FilterCompleted selects tasks at 100% complete
	FilterCompleted FilterType = "completed"

	// FilterInProgress selects started but unfinished tasks
	FilterInProgress FilterType = "in-progress"

	// FilterNotStarted selects tasks at 0% complete
	FilterNotStarted FilterType = "not-started"

	// FilterActive selects tasks not marked inactive
	FilterActive FilterType = "active"
)

// IsValid checks if the filter type is valid
func (f FilterType) IsValid() bool {
	switch f {
	case FilterAll, FilterCritical, FilterMilestone, FilterSummary, FilterCompleted, FilterInProgress, FilterNotStarted, FilterActive:
		return true
	default:
		return false
	}
}

// String returns the string representation of FilterType
func (f FilterType) String() string {
	return string(f)
}

// ParseFilterType parses a string into a FilterType
func ParseFilterType(s string) (FilterType, error) {
	ft := FilterType(s)
	if !ft.IsValid() {
		return "", fmt.Errorf("invalid filter type: %s (must be all, critical, milestone, summary, completed, in-progress, not-started, or active)", s)
	}
	return ft, nil
}

// ParseFilters parses a list of filter names. No names selects all tasks.
func ParseFilters(names []string) ([]FilterType, error) {
	if len(names) == 0 {
		return []FilterType{FilterAll}, nil
	}

	out := make([]FilterType, 0, len(names))
	for _, name := range names {
		ft, err := ParseFilterType(name)
		if err != nil {
			return nil, err
		}
		out = append(out, ft)
	}
	return out, nil
}

// MatchesTask checks if a task matches this filter
func (f FilterType) MatchesTask(t *Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterCritical:
		return t.Critical()
	case FilterMilestone:
		return t.Milestone()
	case FilterSummary:
		return t.Summary()
	case FilterCompleted:
		return t.PercentComplete() >= 100
	case FilterInProgress:
		pc := t.PercentComplete()
		return pc > 0 && pc < 100
	case FilterNotStarted:
		return t.PercentComplete() == 0
	case FilterActive:
		return t.Active()
	default:
		return false
	}
}

// FilterTasks applies AND logic across filters.
func FilterTasks(tasks []*Task, filters []FilterType) []*Task {
	if len(filters) == 0 {
		return tasks
	}

	for _, f := range filters {
		if f == FilterAll {
			return tasks
		}
	}

	filtered := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		matches := true
		for _, filter := range filters {
			if !filter.MatchesTask(t) {
				matches = false
				break
			}
		}
		if matches {
			filtered = append(filtered, t)
		}
	}

	return filtered
}
