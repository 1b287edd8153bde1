package models

import "time"

// Assignment wraps a resource assignment record, linking a task and a
// resource.
type Assignment struct {
	// Attributes holds every raw field of the assignment
	Attributes *Record

	project  *Project
	task     *Task
	resource *Resource
}

func (a *Assignment) UniqueID() int64         { return a.Attributes.Int("unique_id") }
func (a *Assignment) TaskUniqueID() int64     { return a.Attributes.Int("task_unique_id") }
func (a *Assignment) ResourceUniqueID() int64 { return a.Attributes.Int("resource_unique_id") }
func (a *Assignment) Start() time.Time        { return a.Attributes.Date("start") }
func (a *Assignment) Finish() time.Time       { return a.Attributes.Date("finish") }
func (a *Assignment) Work() Duration          { return a.Attributes.Duration("work") }
func (a *Assignment) ActualWork() Duration    { return a.Attributes.Duration("actual_work") }
func (a *Assignment) Units() float64          { return a.Attributes.Float("units") }
func (a *Assignment) Cost() float64           { return a.Attributes.Float("cost") }
func (a *Assignment) Project() *Project       { return a.project }

// Task returns the assigned task, nil when the export does not contain it.
func (a *Assignment) Task() *Task { return a.task }

// Resource returns the assigned resource, nil for unassigned placeholders.
func (a *Assignment) Resource() *Resource { return a.resource }
