package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task wraps a task record and its links into the rest of the project.
type Task struct {
	// Attributes holds every raw field of the task
	Attributes *Record

	project      *Project
	parent       *Task
	children     []*Task
	predecessors []*Relation
	successors   []*Relation
	assignments  []*Assignment
}

func (t *Task) ID() int64                  { return t.Attributes.Int("id") }
func (t *Task) UniqueID() int64            { return t.Attributes.Int("unique_id") }
func (t *Task) Name() string               { return t.Attributes.String("name") }
func (t *Task) WBS() string                { return t.Attributes.String("wbs") }
func (t *Task) Notes() string              { return t.Attributes.String("notes") }
func (t *Task) OutlineLevel() int64        { return t.Attributes.Int("outline_level") }
func (t *Task) OutlineNumber() string      { return t.Attributes.String("outline_number") }
func (t *Task) Start() time.Time           { return t.Attributes.Date("start") }
func (t *Task) Finish() time.Time          { return t.Attributes.Date("finish") }
func (t *Task) ActualStart() time.Time     { return t.Attributes.Date("actual_start") }
func (t *Task) ActualFinish() time.Time    { return t.Attributes.Date("actual_finish") }
func (t *Task) Duration() Duration         { return t.Attributes.Duration("duration") }
func (t *Task) Work() Duration             { return t.Attributes.Duration("work") }
func (t *Task) TotalSlack() Duration       { return t.Attributes.Duration("total_slack") }
func (t *Task) PercentComplete() float64   { return t.Attributes.Float("percent_complete") }
func (t *Task) Cost() float64              { return t.Attributes.Float("cost") }
func (t *Task) ActualCost() float64        { return t.Attributes.Float("actual_cost") }
func (t *Task) Critical() bool             { return t.Attributes.Bool("critical") }
func (t *Task) Milestone() bool            { return t.Attributes.Bool("milestone") }
func (t *Task) Summary() bool              { return t.Attributes.Bool("summary") }
func (t *Task) GUID() uuid.UUID            { return t.Attributes.GUID("guid") }
func (t *Task) Project() *Project          { return t.project }
func (t *Task) ParentTask() *Task          { return t.parent }
func (t *Task) ChildTasks() []*Task        { return t.children }
func (t *Task) Predecessors() []*Relation  { return t.predecessors }
func (t *Task) Successors() []*Relation    { return t.successors }
func (t *Task) Assignments() []*Assignment { return t.assignments }

// Active reports whether the task takes part in scheduling. Tasks that do
// not carry the flag are active.
func (t *Task) Active() bool {
	if !t.Attributes.Has("active") {
		return true
	}
	return t.Attributes.Bool("active")
}

// Resources returns the resources assigned to the task.
func (t *Task) Resources() []*Resource {
	var out []*Resource
	for _, a := range t.assignments {
		if r := a.Resource(); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// CustomText returns the value of text1..text30.
func (t *Task) CustomText(n int) string {
	return t.Attributes.String(fmt.Sprintf("text%d", n))
}

// CustomCost returns the value of cost1..cost10.
func (t *Task) CustomCost(n int) float64 {
	return t.Attributes.Float(fmt.Sprintf("cost%d", n))
}

// CustomNumber returns the value of number1..number20.
func (t *Task) CustomNumber(n int) float64 {
	return t.Attributes.Float(fmt.Sprintf("number%d", n))
}

// CustomFlag returns the value of flag1..flag20.
func (t *Task) CustomFlag(n int) bool {
	return t.Attributes.Bool(fmt.Sprintf("flag%d", n))
}

// CustomDate returns the value of date1..date10.
func (t *Task) CustomDate(n int) time.Time {
	return t.Attributes.Date(fmt.Sprintf("date%d", n))
}

// CustomStart returns the value of start1..start10.
func (t *Task) CustomStart(n int) time.Time {
	return t.Attributes.Date(fmt.Sprintf("start%d", n))
}

// CustomFinish returns the value of finish1..finish10.
func (t *Task) CustomFinish(n int) time.Time {
	return t.Attributes.Date(fmt.Sprintf("finish%d", n))
}

// CustomDuration returns the value of duration1..duration10.
func (t *Task) CustomDuration(n int) Duration {
	return t.Attributes.Duration(fmt.Sprintf("duration%d", n))
}

// baselineKey maps baseline index 0 to the unnumbered baseline and 1..10
// to the numbered ones, e.g. baselineKey(3, "cost") == "baseline3_cost".
func baselineKey(n int, suffix string) string {
	if n == 0 {
		return "baseline_" + suffix
	}
	return fmt.Sprintf("baseline%d_%s", n, suffix)
}

func (t *Task) BaselineCost(n int) float64 {
	return t.Attributes.Float(baselineKey(n, "cost"))
}

func (t *Task) BaselineStart(n int) time.Time {
	return t.Attributes.Date(baselineKey(n, "start"))
}

func (t *Task) BaselineFinish(n int) time.Time {
	return t.Attributes.Date(baselineKey(n, "finish"))
}

func (t *Task) BaselineDuration(n int) Duration {
	return t.Attributes.Duration(baselineKey(n, "duration"))
}

func (t *Task) BaselineWork(n int) Duration {
	return t.Attributes.Duration(baselineKey(n, "work"))
}
