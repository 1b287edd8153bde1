package models

import "fmt"

// Resource wraps a resource record.
type Resource struct {
	// Attributes holds every raw field of the resource
	Attributes *Record

	project     *Project
	assignments []*Assignment
}

func (r *Resource) ID() int64                  { return r.Attributes.Int("id") }
func (r *Resource) UniqueID() int64            { return r.Attributes.Int("unique_id") }
func (r *Resource) Name() string               { return r.Attributes.String("name") }
func (r *Resource) Type() string               { return r.Attributes.String("type") }
func (r *Resource) EmailAddress() string       { return r.Attributes.String("email_address") }
func (r *Resource) MaxUnits() float64          { return r.Attributes.Float("max_units") }
func (r *Resource) StandardRate() float64      { return r.Attributes.Float("standard_rate") }
func (r *Resource) Cost() float64              { return r.Attributes.Float("cost") }
func (r *Resource) Work() Duration             { return r.Attributes.Duration("work") }
func (r *Resource) Overallocated() bool        { return r.Attributes.Bool("overallocated") }
func (r *Resource) Project() *Project          { return r.project }
func (r *Resource) Assignments() []*Assignment { return r.assignments }

// CustomText returns the value of text1..text30.
func (r *Resource) CustomText(n int) string {
	return r.Attributes.String(fmt.Sprintf("text%d", n))
}

// CustomCost returns the value of cost1..cost10.
func (r *Resource) CustomCost(n int) float64 {
	return r.Attributes.Float(fmt.Sprintf("cost%d", n))
}

// Tasks returns the tasks the resource is assigned to.
func (r *Resource) Tasks() []*Task {
	var out []*Task
	for _, a := range r.assignments {
		if t := a.Task(); t != nil {
			out = append(out, t)
		}
	}
	return out
}
