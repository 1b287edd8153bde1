package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/workspace"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const testWorkspaceRoot = "/test-workspace"

func buildWorkspace(t *testing.T, setup func(*workspace.WorkspaceBuilder)) *filesystem.MockFileSystem {
	t.Helper()

	wb := workspace.NewWorkspaceBuilder(testWorkspaceRoot).
		AddExport("office.json", workspace.OfficeMove())
	if setup != nil {
		setup(wb)
	}

	return wb.Build()
}

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, fs filesystem.FileSystem, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(fs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestFields(t *testing.T) {
	fs := buildWorkspace(t, nil)

	t.Run("by type", func(t *testing.T) {
		res := run(t, fs, "fields", "task", "--type", "duration")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "total_slack")
		require.Contains(t, res.stdout, "Total Slack")
		require.NotContains(t, res.stdout, "Task Name")
	})

	t.Run("plural entity", func(t *testing.T) {
		res := run(t, fs, "fields", "resources", "--type", "boolean")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "overallocated")
	})

	t.Run("export aliases", func(t *testing.T) {
		res := run(t, fs, "fields", "task", "--file", "office.json", "--type", "string")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "Owner")
	})

	t.Run("invalid entity", func(t *testing.T) {
		res := run(t, fs, "fields", "calendar")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "invalid entity type: calendar")
	})

	t.Run("invalid type", func(t *testing.T) {
		res := run(t, fs, "fields", "task", "--type", "money")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "invalid field type: money")
	})
}

func TestTasks(t *testing.T) {
	fs := buildWorkspace(t, nil)

	res := run(t, fs, "tasks", "office.json")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Task Name")
	require.Contains(t, res.stdout, "Pack boxes")
	require.Contains(t, res.stdout, "16h")
	require.Contains(t, res.stdout, "2024-03-04 08:00")
	snaps.MatchSnapshot(t, res.stdout)
}

func TestTasks_Filter(t *testing.T) {
	fs := buildWorkspace(t, nil)

	res := run(t, fs, "tasks", "office.json", "--filter", "milestone")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Keys handed over")
	require.NotContains(t, res.stdout, "Pack boxes")

	res = run(t, fs, "tasks", "office.json", "--filter", "critical,completed")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "Pack boxes")
	require.NotContains(t, res.stdout, "Drive van")

	res = run(t, fs, "tasks", "office.json", "--filter", "late")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "invalid filter type: late")
}

func TestTasks_Columns(t *testing.T) {
	t.Run("flag with alias", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "tasks", "office.json", "--columns", "name,Owner")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "Owner")
		require.Contains(t, res.stdout, "Alice")
		require.NotContains(t, res.stdout, "Duration")
	})

	t.Run("from config", func(t *testing.T) {
		fs := buildWorkspace(t, func(wb *workspace.WorkspaceBuilder) {
			wb.WithConfig("columns:\n  tasks: [name, wbs]\n")
		})

		res := run(t, fs, "tasks", "office.json")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "WBS")
		require.Contains(t, res.stdout, "1.2")
		require.NotContains(t, res.stdout, "Duration")
	})

	t.Run("unknown column", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "tasks", "office.json", "--columns", "name,nope")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "unknown task field: nope")
	})
}

func TestTasks_Timezone(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "tasks", "office.json", "--columns", "start", "--timezone", "Asia/Tokyo")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "2024-03-04 08:00")
	})

	t.Run("config date format", func(t *testing.T) {
		fs := buildWorkspace(t, func(wb *workspace.WorkspaceBuilder) {
			wb.WithConfig("date_format: \"02.01.2006\"\n")
		})

		res := run(t, fs, "tasks", "office.json", "--columns", "start")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "04.03.2024")
	})

	t.Run("invalid zone", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "tasks", "office.json", "--timezone", "Mars/Olympus")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "invalid timezone")
	})
}

func TestResourcesAndAssignments(t *testing.T) {
	fs := buildWorkspace(t, nil)

	res := run(t, fs, "resources", "office.json")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "MATERIAL")
	require.Contains(t, res.stdout, "45.5")
	require.Contains(t, res.stdout, "10,000")
	snaps.MatchSnapshot(t, res.stdout)

	res = run(t, fs, "assignments", "office.json")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "1,000.5")
	require.Contains(t, res.stdout, "16h")
}

func TestShow(t *testing.T) {
	fs := buildWorkspace(t, nil)

	t.Run("populated", func(t *testing.T) {
		res := run(t, fs, "show", "office.json", "task", "2")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "Owner")
		require.Contains(t, res.stdout, "Alice")
		require.Contains(t, res.stdout, "Pack boxes")
		require.NotContains(t, res.stdout, "Notes")
		snaps.MatchSnapshot(t, res.stdout)
	})

	t.Run("all", func(t *testing.T) {
		res := run(t, fs, "show", "office.json", "task", "2", "--all")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "Notes")
	})

	t.Run("project", func(t *testing.T) {
		res := run(t, fs, "show", "office.json", "project")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "Currency Symbol")
		require.Contains(t, res.stdout, "$")
	})

	t.Run("not found", func(t *testing.T) {
		res := run(t, fs, "show", "office.json", "task", "99")
		require.Error(t, res.err)
		require.ErrorIs(t, res.err, models.ErrNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		res := run(t, fs, "show", "office.json", "resource")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "resource unique ID required")
	})

	t.Run("bad id", func(t *testing.T) {
		res := run(t, fs, "show", "office.json", "task", "two")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "invalid unique ID: two")
	})
}

func TestGet(t *testing.T) {
	fs := buildWorkspace(t, func(wb *workspace.WorkspaceBuilder) {
		wb.AddExport("broken-dates.json", workspace.NewExport("Broken").
			Task(map[string]any{"unique_id": 1, "name": "Late", "start": "someday"}))
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"duration", []string{"task", "3", "duration"}, "8h"},
		{"alias", []string{"task", "3", "Owner"}, "Bob"},
		{"label", []string{"task", "2", "Percent Complete"}, "100"},
		{"shared label", []string{"task", "3", "Start"}, "2024-03-06 08:00"},
		{"shared duration label", []string{"task", "3", "Duration"}, "8h"},
		{"boolean", []string{"task", "4", "milestone"}, "yes"},
		{"absent", []string{"task", "4", "notes"}, ""},
		{"project", []string{"project", "Currency Symbol"}, "$"},
		{"resource", []string{"resource", "1", "email_address"}, "alice@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"get", "office.json"}, tt.args...)
			res := run(t, fs, args...)
			require.NoError(t, res.err)
			require.Equal(t, tt.want+"\n", res.stdout)
		})
	}

	t.Run("raw", func(t *testing.T) {
		res := run(t, fs, "get", "office.json", "task", "3", "predecessors", "--raw")
		require.NoError(t, res.err)
		require.Equal(t, int64(2), gjson.Get(res.stdout, "0.task_unique_id").Int())
		require.Equal(t, "4h", gjson.Get(res.stdout, "0.lag").String())
	})

	t.Run("raw absent", func(t *testing.T) {
		res := run(t, fs, "get", "office.json", "task", "1", "notes", "--raw")
		require.NoError(t, res.err)
		require.Equal(t, "null\n", res.stdout)
	})

	t.Run("unknown field", func(t *testing.T) {
		res := run(t, fs, "get", "office.json", "task", "3", "nope")
		require.Error(t, res.err)
		require.ErrorIs(t, res.err, models.ErrUnknownField)
	})

	t.Run("invalid value", func(t *testing.T) {
		res := run(t, fs, "get", "broken-dates.json", "task", "1", "start")
		require.NoError(t, res.err)
		require.Equal(t, "\n", res.stdout)
		require.Contains(t, res.stderr, "invalid value")
	})

	t.Run("invalid value strict", func(t *testing.T) {
		res := run(t, fs, "get", "broken-dates.json", "task", "1", "start", "--strict")
		require.Error(t, res.err)
		require.ErrorIs(t, res.err, models.ErrInvalidValue)
	})
}

func TestExport(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "export", "office.json", "--filter", "milestone", "--fields", "name,duration,start")
		require.NoError(t, res.err)
		require.JSONEq(t, `[{
			"name": "Keys handed over",
			"duration": {"value": 0, "units": "h"},
			"start": "2024-03-08T17:00:00Z"
		}]`, res.stdout)
	})

	t.Run("labels", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "export", "office.json", "--filter", "milestone", "--fields", "Start,Duration")
		require.NoError(t, res.err)
		require.JSONEq(t, `[{
			"duration": {"value": 0, "units": "h"},
			"start": "2024-03-08T17:00:00Z"
		}]`, res.stdout)
	})

	t.Run("timezone", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "export", "office.json", "--filter", "milestone", "--fields", "start", "--timezone", "Europe/Berlin")
		require.NoError(t, res.err)
		require.JSONEq(t, `[{"start": "2024-03-08T17:00:00+01:00"}]`, res.stdout)
	})

	t.Run("file", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "export", "office.json", "--entity", "resources", "--indent", "-o", "out/resources.json")
		require.NoError(t, res.err)
		require.Empty(t, res.stdout)

		data, err := fs.ReadFile(testWorkspaceRoot + "/out/resources.json")
		require.NoError(t, err)
		require.Equal(t, int64(3), gjson.GetBytes(data, "#").Int())
		require.Equal(t, "Van", gjson.GetBytes(data, "2.name").String())
		snaps.MatchSnapshot(t, string(data))
	})

	t.Run("project", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "export", "office.json", "--entity", "project", "--fields", "name,minutes_per_day")
		require.NoError(t, res.err)
		require.JSONEq(t, `[{"name": "Office Move", "minutes_per_day": 480}]`, res.stdout)
	})

	t.Run("filter on resources", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "export", "office.json", "--entity", "resource", "--filter", "critical")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "--filter only applies to tasks")
	})
}

func TestReport(t *testing.T) {
	t.Run("default summary", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "report", "office.json")
		require.NoError(t, res.err)
		require.Contains(t, res.stdout, "# Office Move")
		require.Contains(t, res.stdout, "  - Drive van (critical) 50%")
	})

	t.Run("templates directory", func(t *testing.T) {
		fs := buildWorkspace(t, func(wb *workspace.WorkspaceBuilder) {
			wb.WithConfig("templates: reports\n")
			wb.AddFile("reports/owners.md", "---\nfilter: [critical]\n---\n{{ range .Tasks }}{{ .Name }}: {{ field . \"Owner\" }}\n{{ end }}")
		})

		res := run(t, fs, "report", "office.json", "owners")
		require.NoError(t, res.err)
		require.Equal(t, "Pack boxes: Alice\nDrive van: Bob", strings.TrimSpace(res.stdout))
	})

	t.Run("template file", func(t *testing.T) {
		fs := buildWorkspace(t, func(wb *workspace.WorkspaceBuilder) {
			wb.AddFile("count.md", "{{ len .Resources }} resources")
		})

		res := run(t, fs, "report", "office.json", "--template", "count.md")
		require.NoError(t, res.err)
		require.Equal(t, "3 resources", res.stdout)
	})

	t.Run("unknown template", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "report", "office.json", "gantt")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "unknown template: gantt")
	})

	t.Run("name and file", func(t *testing.T) {
		fs := buildWorkspace(t, nil)

		res := run(t, fs, "report", "office.json", "summary", "--template", "count.md")
		require.Error(t, res.err)
	})
}

func TestLs(t *testing.T) {
	fs := buildWorkspace(t, func(wb *workspace.WorkspaceBuilder) {
		wb.WithGitIgnore("ignored/\n")
		wb.AddExport("archive/old.json", workspace.NewExport("Old Plan"))
		wb.AddExport("ignored/skip.json", workspace.NewExport("Skipped"))
		wb.AddFile("broken.json", "{")
		wb.AddFile("notes.txt", "not an export")
	})

	res := run(t, fs, "ls")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "office.json")
	require.Contains(t, res.stdout, "archive/old.json")
	require.Contains(t, res.stdout, "Old Plan")
	require.Contains(t, res.stdout, "(unreadable)")
	require.NotContains(t, res.stdout, "Skipped")
	require.NotContains(t, res.stdout, "notes.txt")
	require.Contains(t, res.stderr, "skipping export")

	lines := strings.Split(res.stdout, "\n")
	var officeLine string
	for _, l := range lines {
		if strings.Contains(l, "office.json") {
			officeLine = l
		}
	}
	require.Contains(t, officeLine, "Office Move")
	require.Contains(t, officeLine, "4")

	res = run(t, fs, "ls", "archive")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "archive/old.json")
	require.NotContains(t, res.stdout, "office.json")
}

func TestLs_Empty(t *testing.T) {
	fs := workspace.NewWorkspaceBuilder(testWorkspaceRoot).Build()

	res := run(t, fs, "ls")
	require.NoError(t, res.err)
	require.Equal(t, "No exports found\n", res.stdout)
}

func TestLogging(t *testing.T) {
	fs := buildWorkspace(t, func(wb *workspace.WorkspaceBuilder) {
		wb.AddExport("dangling.json", workspace.NewExport("Dangling").
			Task(map[string]any{"unique_id": 1, "name": "Alone"}).
			Assignment(map[string]any{"unique_id": 1, "task_unique_id": 7, "resource_unique_id": 1}))
	})

	t.Run("warnings by default", func(t *testing.T) {
		res := run(t, fs, "tasks", "dangling.json")
		require.NoError(t, res.err)
		require.Contains(t, res.stderr, "dangling reference")
		require.NotContains(t, res.stderr, "export parsed")
	})

	t.Run("debug", func(t *testing.T) {
		res := run(t, fs, "tasks", "dangling.json", "--log-level", "debug")
		require.NoError(t, res.err)
		require.Contains(t, res.stderr, "export parsed")
	})

	t.Run("error level", func(t *testing.T) {
		res := run(t, fs, "tasks", "dangling.json", "--log-level", "error")
		require.NoError(t, res.err)
		require.Empty(t, res.stderr)
	})

	t.Run("invalid level", func(t *testing.T) {
		res := run(t, fs, "tasks", "dangling.json", "--log-level", "loud")
		require.Error(t, res.err)
		require.Contains(t, res.err.Error(), "invalid log level: loud")
	})
}

func TestMissingExport(t *testing.T) {
	fs := buildWorkspace(t, nil)

	res := run(t, fs, "tasks", "missing.json")
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "failed to read export")
}
