package browse

import (
	"testing"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/reader"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/jakoblorz/go-mpxj/internal/workspace"
	"github.com/stretchr/testify/require"
)

func officeMove(t *testing.T) *models.Project {
	t.Helper()
	p, err := reader.New(filesystem.NewMockFileSystem()).Parse(workspace.OfficeMove().Bytes())
	require.NoError(t, err)
	return p
}

func TestChoices(t *testing.T) {
	p := officeMove(t)

	tasks := Choices(p, schema.EntityTask)
	require.Len(t, tasks, 4)
	require.Equal(t, "1 Office Move", tasks[0].Label)
	require.Contains(t, tasks[1].Label, "  2 Pack boxes")
	require.Contains(t, tasks[3].Label, "◆")
	require.Same(t, p.AllTasks()[1].Attributes, tasks[1].Record)

	resources := Choices(p, schema.EntityResource)
	require.Len(t, resources, 3)
	require.Equal(t, "3 Van", resources[2].Label)

	assignments := Choices(p, schema.EntityAssignment)
	require.Len(t, assignments, 3)
	require.Equal(t, "2 Drive van → Bob", assignments[1].Label)

	project := Choices(p, schema.EntityProject)
	require.Len(t, project, 1)
	require.Equal(t, "Office Move", project[0].Label)
	require.Same(t, p.Properties, project[0].Record)
}

func TestRows(t *testing.T) {
	p := officeMove(t)
	task := p.AllTasks()[1]

	rows := Rows(task.Attributes, render.FormatOptions{})
	require.Greater(t, len(rows), 100)

	byKey := map[string]int{}
	for i, r := range rows {
		byKey[r.Key] = i
	}

	owner := rows[byKey["text1"]]
	require.Equal(t, "Owner", owner.Label)
	require.Equal(t, "Alice", owner.Value)
	require.Equal(t, "string", owner.Type)
	require.True(t, owner.Present)

	duration := rows[byKey["duration"]]
	require.Equal(t, "16h", duration.Value)
	require.Equal(t, "duration", duration.Type)

	notes := rows[byKey["notes"]]
	require.False(t, notes.Present)
}

func TestTitle(t *testing.T) {
	p := officeMove(t)

	require.Equal(t, "task 2: Pack boxes", Title(p.AllTasks()[1].Attributes))
	require.Equal(t, "assignment 1", Title(p.AllAssignments()[0].Attributes))
	require.Equal(t, "project", Title(p.Properties))
}
