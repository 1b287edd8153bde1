package models

import (
	"errors"
	"testing"

	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/stretchr/testify/require"
)

func buildProject(t *testing.T) *Project {
	t.Helper()

	p := NewProject(map[string]any{
		"name":            "Office Move",
		"minutes_per_day": float64(420),
	}, nil, nil)

	p.AddTask(map[string]any{"unique_id": 1.0, "id": 1.0, "name": "Move", "summary": true})
	p.AddTask(map[string]any{"unique_id": 2.0, "id": 2.0, "name": "Pack", "parent_task_unique_id": 1.0, "percent_complete": 100.0})
	p.AddTask(map[string]any{"unique_id": 3.0, "id": 3.0, "name": "Drive", "parent_task_unique_id": 1.0, "critical": true})
	p.AddTask(map[string]any{"unique_id": 4.0, "id": 4.0, "name": "Orphan", "parent_task_unique_id": 99.0})

	p.AddResource(map[string]any{"unique_id": 10.0, "id": 1.0, "name": "Alice"})
	p.AddResource(map[string]any{"unique_id": 11.0, "id": 2.0, "name": "Van"})

	p.AddAssignment(map[string]any{"unique_id": 100.0, "task_unique_id": 2.0, "resource_unique_id": 10.0})
	p.AddAssignment(map[string]any{"unique_id": 101.0, "task_unique_id": 3.0, "resource_unique_id": 10.0})
	p.AddAssignment(map[string]any{"unique_id": 102.0, "task_unique_id": 3.0, "resource_unique_id": 11.0})
	p.AddAssignment(map[string]any{"unique_id": 103.0, "task_unique_id": 42.0, "resource_unique_id": 11.0})

	p.AddRelation(2, 3, FinishStart, NewDuration(1, Days))
	p.AddRelation(2, 3, FinishStart, NewDuration(1, Days))
	p.AddRelation(3, 77, StartStart, Duration{Units: Hours})

	return p
}

func TestProject_Link(t *testing.T) {
	p := buildProject(t)
	warnings := p.Link()

	require.Len(t, warnings, 3)
	for _, w := range warnings {
		require.True(t, errors.Is(w, ErrNotFound), w.Error())
	}

	t.Run("hierarchy", func(t *testing.T) {
		top := p.ChildTasks()
		require.Len(t, top, 2)
		require.Equal(t, "Move", top[0].Name())
		require.Equal(t, "Orphan", top[1].Name())

		children := top[0].ChildTasks()
		require.Len(t, children, 2)
		require.Equal(t, "Pack", children[0].Name())
		require.Same(t, top[0], children[1].ParentTask())
		require.Nil(t, top[1].ParentTask())
	})

	t.Run("assignments", func(t *testing.T) {
		drive, ok := p.TaskByUniqueID(3)
		require.True(t, ok)
		require.Len(t, drive.Assignments(), 2)
		require.Len(t, drive.Resources(), 2)

		alice, ok := p.ResourceByUniqueID(10)
		require.True(t, ok)
		require.Len(t, alice.Tasks(), 2)

		van, ok := p.ResourceByID(2)
		require.True(t, ok)
		require.Len(t, van.Assignments(), 2)
		require.Len(t, van.Tasks(), 1)
	})

	t.Run("relations", func(t *testing.T) {
		require.Len(t, p.AllRelations(), 1)

		pack, _ := p.TaskByID(2)
		drive, _ := p.TaskByID(3)
		require.Len(t, pack.Successors(), 1)
		require.Len(t, drive.Predecessors(), 1)

		r := drive.Predecessors()[0]
		require.Same(t, pack, r.Predecessor())
		require.Same(t, drive, r.Successor())
		require.Equal(t, "2FS+1d", r.String())
	})

	t.Run("relink is stable", func(t *testing.T) {
		// the dangling relation was dropped on the first pass
		require.Len(t, p.Link(), 2)
		move, _ := p.TaskByUniqueID(1)
		require.Len(t, move.ChildTasks(), 2)
	})
}

func TestProject_LinkParentCycle(t *testing.T) {
	p := NewProject(nil, nil, nil)
	p.AddTask(map[string]any{"unique_id": 1.0, "name": "A", "parent_task_unique_id": 2.0})
	p.AddTask(map[string]any{"unique_id": 2.0, "name": "B", "parent_task_unique_id": 1.0})
	p.AddTask(map[string]any{"unique_id": 3.0, "name": "C", "parent_task_unique_id": 2.0})
	p.AddTask(map[string]any{"unique_id": 4.0, "name": "Self", "parent_task_unique_id": 4.0})

	warnings := p.Link()
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		require.ErrorIs(t, w, ErrParentCycle)
	}
	require.Contains(t, warnings[0].Error(), "task 2")
	require.Contains(t, warnings[1].Error(), "task 4")

	// every task stays reachable from the top level
	top := p.ChildTasks()
	require.Len(t, top, 2)
	require.Equal(t, "B", top[0].Name())
	require.Equal(t, "Self", top[1].Name())

	b := top[0]
	require.Len(t, b.ChildTasks(), 2)
	require.Equal(t, "A", b.ChildTasks()[0].Name())
	require.Equal(t, "C", b.ChildTasks()[1].Name())
	require.Nil(t, b.ParentTask())
}

func TestProject_AddRelationDeduplicates(t *testing.T) {
	p := NewProject(nil, nil, nil)
	for uid := 1.0; uid <= 3; uid++ {
		p.AddTask(map[string]any{"unique_id": uid})
	}

	first := p.AddRelation(1, 2, FinishStart, NewDuration(1, Days))
	require.Same(t, first, p.AddRelation(1, 2, FinishStart, Duration{Units: Hours}))
	require.NotSame(t, first, p.AddRelation(1, 2, StartStart, Duration{Units: Hours}))
	require.NotSame(t, first, p.AddRelation(2, 1, FinishStart, Duration{Units: Hours}))
	p.AddRelation(3, 9, FinishStart, Duration{Units: Hours})
	require.Len(t, p.AllRelations(), 4)

	require.Len(t, p.Link(), 1)
	require.Len(t, p.AllRelations(), 3)

	// the dropped link can be recorded again and is kept
	again := p.AddRelation(3, 9, FinishStart, Duration{Units: Hours})
	require.Len(t, p.AllRelations(), 4)
	require.Same(t, again, p.AllRelations()[3])
	require.Same(t, first, p.AddRelation(1, 2, FinishStart, Duration{Units: Hours}))
}

func TestProject_Records(t *testing.T) {
	p := buildProject(t)
	p.Link()

	require.Len(t, p.Records(schema.EntityTask), 4)
	require.Len(t, p.Records(schema.EntityResource), 2)
	require.Len(t, p.Records(schema.EntityAssignment), 4)
	require.Len(t, p.Records(schema.EntityProject), 1)

	r, err := p.RecordByUniqueID(schema.EntityResource, 11)
	require.NoError(t, err)
	require.Equal(t, "Van", r.String("name"))

	r, err = p.RecordByUniqueID(schema.EntityProject, 0)
	require.NoError(t, err)
	require.Equal(t, "Office Move", r.Get("name"))

	_, err = p.RecordByUniqueID(schema.EntityTask, 12345)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotFound))
	require.Contains(t, err.Error(), "task with unique ID 12345")
}

func TestProject_TimeUnitDefaults(t *testing.T) {
	p := buildProject(t)

	d := p.TimeUnitDefaults()
	require.Equal(t, 420.0, d.MinutesPerDay)
	require.Equal(t, DefaultTimeUnitDefaults.MinutesPerWeek, d.MinutesPerWeek)
	require.Equal(t, DefaultTimeUnitDefaults.DaysPerMonth, d.DaysPerMonth)
	require.Equal(t, "Office Move", p.Name())
}

func TestProject_TaskAccessors(t *testing.T) {
	p := NewProject(nil, nil, nil)
	task := p.AddTask(map[string]any{
		"unique_id":          7.0,
		"text3":              "blue",
		"number2":            "4.5",
		"flag1":              "true",
		"baseline_cost":      100.0,
		"baseline3_cost":     300.0,
		"baseline2_duration": float64(3600),
		"duration1":          "2d",
		"active":             false,
		"percent_complete":   40.0,
	})

	require.Equal(t, "blue", task.CustomText(3))
	require.Equal(t, 4.5, task.CustomNumber(2))
	require.True(t, task.CustomFlag(1))
	require.Equal(t, 100.0, task.BaselineCost(0))
	require.Equal(t, 300.0, task.BaselineCost(3))
	require.Equal(t, NewDuration(1, Hours), task.BaselineDuration(2))
	require.Equal(t, NewDuration(2, Days), task.CustomDuration(1))
	require.False(t, task.Active())
	require.Same(t, p, task.Project())

	other := p.AddTask(map[string]any{"unique_id": 8.0})
	require.True(t, other.Active())
}

func TestParseRelationType(t *testing.T) {
	tests := map[string]RelationType{
		"":              FinishStart,
		"FS":            FinishStart,
		"ss":            StartStart,
		"finish_finish": FinishFinish,
		"START_FINISH":  StartFinish,
	}

	for input, want := range tests {
		got, err := ParseRelationType(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, got)
	}

	_, err := ParseRelationType("XX")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid relation type")
}

func TestRelation_String(t *testing.T) {
	require.Equal(t, "5SS", (&Relation{PredecessorUniqueID: 5, Type: StartStart}).String())
	require.Equal(t, "5FF-2h", (&Relation{PredecessorUniqueID: 5, Type: FinishFinish, Lag: NewDuration(-2, Hours)}).String())
}
