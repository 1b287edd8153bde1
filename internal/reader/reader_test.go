package reader

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"testing"
	"time"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/stretchr/testify/require"
)

const officeMove = `{
  "property_values": {
    "name": "Office Move",
    "start_date": "2024-03-01T08:00:00",
    "minutes_per_day": 420
  },
  "custom_fields": [
    {"field_type_class": "task", "field_type": "TEXT1", "field_alias": "Owner"},
    {"field_type_class": "resource", "field_type": "text2", "field_alias": "Team"},
    {"field_type_class": "calendar", "field_type": "text1", "field_alias": "Ignored"}
  ],
  "task_types": {
    "text1": "text",
    "enterprise_score": "numeric",
    "mood": "sparkly"
  },
  "tasks": [
    {"unique_id": 1, "id": 1, "name": "Move", "summary": true, "outline_level": 1},
    {
      "unique_id": 2, "id": 2, "name": "Pack", "parent_task_unique_id": 1,
      "start": "2024-03-01T08:00:00", "duration": 28800, "percent_complete": 100,
      "text1": "Alice", "enterprise_score": "7.5", "guid": "{0f2a4b39-91c5-4dc8-8a62-6f1ad0c7a3b1}"
    },
    {
      "unique_id": 3, "id": 3, "name": "Drive", "parent_task_unique_id": 1, "critical": true,
      "predecessors": [{"task_unique_id": 2, "type": "FS", "lag": "1d"}],
      "successors": [{"task_unique_id": 4, "type": "SS"}, {"type": "FF"}]
    },
    {
      "unique_id": 4, "id": 4, "name": "Unpack", "parent_task_unique_id": 1,
      "predecessors": [{"task_unique_id": 3, "type": "SS"}, {"task_unique_id": 99, "type": "XX"}]
    }
  ],
  "resources": [
    {"unique_id": 10, "id": 1, "name": "Alice", "text2": "Logistics", "max_units": 1},
    {"unique_id": 11, "id": 2, "name": "Van"}
  ],
  "assignments": [
    {"unique_id": 100, "task_unique_id": 2, "resource_unique_id": 10, "work": 28800},
    {"unique_id": 101, "task_unique_id": 3, "resource_unique_id": 11},
    {"unique_id": 102, "task_unique_id": 77, "resource_unique_id": 11}
  ]
}`

func newTestReader(t *testing.T, opts ...Option) (*Reader, *filesystem.MockFileSystem) {
	t.Helper()
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/workspace/office.json", []byte(officeMove))
	return New(mfs, opts...), mfs
}

func TestRead(t *testing.T) {
	r, _ := newTestReader(t)

	p, err := r.Read("/workspace/office.json")
	require.NoError(t, err)

	require.Equal(t, "/workspace/office.json", p.Path)
	require.Equal(t, "Office Move", p.Name())
	require.Len(t, p.AllTasks(), 4)
	require.Len(t, p.AllResources(), 2)
	require.Len(t, p.AllAssignments(), 3)
	require.Equal(t, 420.0, p.TimeUnitDefaults().MinutesPerDay)

	t.Run("typed fields", func(t *testing.T) {
		pack, ok := p.TaskByUniqueID(2)
		require.True(t, ok)
		require.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), pack.Start())
		require.Equal(t, models.NewDuration(8, models.Hours), pack.Duration())
		require.Equal(t, 100.0, pack.PercentComplete())
		require.Equal(t, "0f2a4b39-91c5-4dc8-8a62-6f1ad0c7a3b1", pack.GUID().String())
		require.Equal(t, int64(2), pack.Attributes.Get("unique_id"))
	})

	t.Run("declared types", func(t *testing.T) {
		pack, _ := p.TaskByUniqueID(2)
		require.Equal(t, schema.TypeFloat, pack.Attributes.Type("enterprise_score"))
		require.Equal(t, 7.5, pack.Attributes.Get("enterprise_score"))
		require.Equal(t, schema.TypeString, pack.Attributes.Type("mood"))
	})

	t.Run("custom field aliases", func(t *testing.T) {
		require.Equal(t, []models.CustomField{
			{Entity: schema.EntityTask, Key: "text1", Alias: "Owner"},
			{Entity: schema.EntityResource, Key: "text2", Alias: "Team"},
		}, p.CustomFields())

		pack, _ := p.TaskByUniqueID(2)
		v, err := pack.Attributes.Lookup("Owner")
		require.NoError(t, err)
		require.Equal(t, "Alice", v.Converted)

		alice, _ := p.ResourceByUniqueID(10)
		v, err = alice.Attributes.Lookup("team")
		require.NoError(t, err)
		require.Equal(t, "Logistics", v.Converted)
	})

	t.Run("hierarchy and links", func(t *testing.T) {
		require.Len(t, p.ChildTasks(), 1)
		require.Len(t, p.ChildTasks()[0].ChildTasks(), 3)

		alice, _ := p.ResourceByUniqueID(10)
		require.Len(t, alice.Tasks(), 1)
		require.Equal(t, "Pack", alice.Tasks()[0].Name())
	})

	t.Run("relations", func(t *testing.T) {
		// 2->3 FS, 3->4 SS (listed from both ends)
		require.Len(t, p.AllRelations(), 2)

		drive, _ := p.TaskByUniqueID(3)
		require.Len(t, drive.Predecessors(), 1)
		require.Equal(t, "2FS+1d", drive.Predecessors()[0].String())
		require.Len(t, drive.Successors(), 1)
		require.Equal(t, models.StartStart, drive.Successors()[0].Type)
	})
}

func TestRead_Location(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	r, _ := newTestReader(t, WithLocation(tokyo))
	p, err := r.Read("/workspace/office.json")
	require.NoError(t, err)

	pack, _ := p.TaskByUniqueID(2)
	require.Equal(t, time.Date(2024, 3, 1, 8, 0, 0, 0, tokyo), pack.Start())
	require.Equal(t, tokyo, p.Location())
}

func TestRead_LogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r, _ := newTestReader(t, WithLogger(logger))
	_, err := r.Read("/workspace/office.json")
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "ignoring field type")
	require.Contains(t, out, "sparkly")
	require.Contains(t, out, "ignoring custom field")
	require.Contains(t, out, "ignoring relation without task_unique_id")
	require.Contains(t, out, "invalid relation type")
	require.Contains(t, out, "dangling reference")
}

func TestRead_Errors(t *testing.T) {
	r, mfs := newTestReader(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := r.Read("/workspace/missing.json")
		require.Error(t, err)
		require.True(t, errors.Is(err, fs.ErrNotExist))
		require.Contains(t, err.Error(), "failed to read export")
	})

	t.Run("malformed json", func(t *testing.T) {
		mfs.AddFile("/workspace/broken.json", []byte(`{"tasks": [`))
		_, err := r.Read("/workspace/broken.json")
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidExport))
		require.Contains(t, err.Error(), "malformed JSON")
	})

	t.Run("array root", func(t *testing.T) {
		mfs.AddFile("/workspace/array.json", []byte(`[]`))
		_, err := r.Read("/workspace/array.json")
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrInvalidExport))
	})
}

func TestParse_EmptyObject(t *testing.T) {
	p, err := New(filesystem.NewMockFileSystem()).Parse([]byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, p.AllTasks())
	require.Equal(t, "", p.Name())
	require.Equal(t, models.DefaultTimeUnitDefaults, p.TimeUnitDefaults())
}
