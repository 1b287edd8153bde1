package models

import (
	"fmt"
	"strings"
)

// RelationType is the kind of dependency between two tasks.
type RelationType string

const (
	FinishStart  RelationType = "FS"
	StartStart   RelationType = "SS"
	FinishFinish RelationType = "FF"
	StartFinish  RelationType = "SF"
)

// IsValid checks if the relation type is valid
func (r RelationType) IsValid() bool {
	switch r {
	case FinishStart, StartStart, FinishFinish, StartFinish:
		return true
	default:
		return false
	}
}

// String returns the string representation of RelationType
func (r RelationType) String() string {
	return string(r)
}

// ParseRelationType parses "FS", "fs" or "finish_start" style names. An
// empty string is a finish-to-start link.
func ParseRelationType(s string) (RelationType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	switch normalized {
	case "":
		return FinishStart, nil
	case "FINISH_START":
		return FinishStart, nil
	case "START_START":
		return StartStart, nil
	case "FINISH_FINISH":
		return FinishFinish, nil
	case "START_FINISH":
		return StartFinish, nil
	}

	rt := RelationType(normalized)
	if !rt.IsValid() {
		return "", fmt.Errorf("invalid relation type: %s (must be FS, SS, FF, or SF)", s)
	}
	return rt, nil
}

// Relation links a predecessor task to a successor task.
type Relation struct {
	PredecessorUniqueID int64
	SuccessorUniqueID   int64
	Type                RelationType
	Lag                 Duration

	predecessor *Task
	successor   *Task
}

// Predecessor returns the task that drives the link.
func (r *Relation) Predecessor() *Task { return r.predecessor }

// Successor returns the task that depends on the link.
func (r *Relation) Successor() *Task { return r.successor }

// String renders the link the way schedulers show it, e.g. "3FS+2d".
func (r *Relation) String() string {
	s := fmt.Sprintf("%d%s", r.PredecessorUniqueID, r.Type)
	if !r.Lag.IsZero() {
		if r.Lag.Value > 0 {
			s += "+"
		}
		s += r.Lag.String()
	}
	return s
}
