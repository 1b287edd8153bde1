package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
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

func renderString(t *testing.T, tmpl *Template, p *models.Project) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, p, render.FormatOptions{}))
	return buf.String()
}

func TestParse(t *testing.T) {
	tmpl, err := Parse("open", []byte(`---
title: Open work
entity: task
filter: [in-progress, critical]
fields: [name, Owner]
---
{{ range .Tasks }}{{ .Name }}{{ end }}`))
	require.NoError(t, err)

	require.Equal(t, "Open work", tmpl.Header.Title)
	require.Equal(t, schema.EntityTask, tmpl.Entity())
	require.Equal(t, []models.FilterType{models.FilterInProgress, models.FilterCritical}, tmpl.Filters())
}

func TestParse_WithoutHeader(t *testing.T) {
	tmpl, err := Parse("plain", []byte(`{{ len .Tasks }} tasks`))
	require.NoError(t, err)
	require.Equal(t, schema.EntityTask, tmpl.Entity())
	require.Equal(t, []models.FilterType{models.FilterAll}, tmpl.Filters())

	require.Equal(t, "4 tasks", renderString(t, tmpl, officeMove(t)))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid entity", "---\nentity: calendar\n---\nbody", "invalid template entity"},
		{"invalid filter", "---\nfilter: [late]\n---\nbody", "invalid filter type: late"},
		{"template syntax", "{{ range .Tasks }}", "failed to parse template broken"},
		{"unknown function", "{{ frobnicate . }}", "failed to parse template broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("broken", []byte(tt.data))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuiltin_Summary(t *testing.T) {
	tmpl, err := Builtin("summary")
	require.NoError(t, err)

	out := renderString(t, tmpl, officeMove(t))

	require.Contains(t, out, "# Office Move")
	require.Contains(t, out, "Start:  2024-03-04 08:00")
	require.Contains(t, out, "\n- Office Move 40%")
	require.Contains(t, out, "\n  - Pack boxes (critical) 100%")
	require.Contains(t, out, "\n  - Keys handed over [milestone] 0%")
	require.Contains(t, out, "- Van: Drive van")
	snaps.MatchSnapshot(t, out)
}

func TestBuiltin_Critical(t *testing.T) {
	tmpl, err := Builtin("critical")
	require.NoError(t, err)

	out := renderString(t, tmpl, officeMove(t))

	require.Contains(t, out, "# Critical path")
	require.Contains(t, out, "## Pack boxes")
	require.Contains(t, out, "## Drive van")
	require.NotContains(t, out, "## Office Move")
	require.NotContains(t, out, "## Keys handed over")
	snaps.MatchSnapshot(t, out)
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin("gantt")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown template: gantt")
	require.Contains(t, err.Error(), "critical, summary")
}

func TestBuiltinNames(t *testing.T) {
	require.Equal(t, []string{"critical", "summary"}, BuiltinNames())
}

func TestFind(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/workspace/reports/owners.md", []byte(`---
entity: task
filter: [critical]
---
{{ range .Tasks }}{{ label . "text1" }}={{ field . "Owner" }};{{ end }}`))

	t.Run("file in directory", func(t *testing.T) {
		tmpl, err := Find(mfs, "/workspace/reports", "owners")
		require.NoError(t, err)
		require.Equal(t, "owners", tmpl.Name)
		require.Equal(t, "Owner=Alice;Owner=Bob;", renderString(t, tmpl, officeMove(t)))
	})

	t.Run("falls back to builtin", func(t *testing.T) {
		tmpl, err := Find(mfs, "/workspace/reports", "summary")
		require.NoError(t, err)
		require.Equal(t, "summary", tmpl.Name)
	})

	t.Run("no directory", func(t *testing.T) {
		_, err := Find(mfs, "", "owners")
		require.Error(t, err)
	})
}

func TestRender_Functions(t *testing.T) {
	p := officeMove(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"field on project", `{{ field .Project "currency_symbol" }}`, "$"},
		{"value keeps type", `{{ with index .Tasks 1 }}{{ if value . "critical" }}crit{{ end }}{{ end }}`, "crit"},
		{"format", `{{ format (index .Tasks 0).Cost }}`, "12,500.5"},
		{"absent field", `[{{ field (index .Tasks 0) "text1" }}]`, "[]"},
		{"hours", `{{ hours (index .Tasks 1).Duration }}`, "16"},
		{"days", `{{ days (index .Tasks 0).Duration }}`, "5"},
		{"label falls back to name", `{{ label (index .Tasks 0) "nope" }}`, "nope"},
		{"sprig", `{{ (index .Resources 0).Name | upper }}`, "ALICE"},
		{"relations", `{{ range .Relations }}{{ . }};{{ end }}`, "2FS+4h;3FS;"},
		{"assignments", `{{ len .Assignments }}`, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Parse("fn", []byte(tt.body))
			require.NoError(t, err)
			require.Equal(t, tt.want, renderString(t, tmpl, p))
		})
	}
}

func TestRender_DateOptions(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tmpl, err := Parse("dates", []byte(`{{ field (index .Tasks 1) "start" }}`))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Render(&buf, officeMove(t), render.FormatOptions{DateFormat: "02.01.2006 15:04", Location: tokyo})
	require.NoError(t, err)
	require.Equal(t, "04.03.2024 17:00", buf.String())
}

func TestRender_ResourceEntity(t *testing.T) {
	tmpl, err := Parse("people", []byte(`---
entity: resource
fields: [name, max_units]
---
{{ range .Records }}{{ range $.Fields }}{{ .Key }} {{ end }}{{ end }}`))
	require.NoError(t, err)
	require.Equal(t, schema.EntityResource, tmpl.Entity())

	data, err := tmpl.Data(officeMove(t))
	require.NoError(t, err)
	require.Len(t, data.Records, 3)
	require.Len(t, data.Fields, 2)
	require.Equal(t, "Office Move", data.Title)
}

func TestRender_Errors(t *testing.T) {
	p := officeMove(t)

	t.Run("unknown header field", func(t *testing.T) {
		tmpl, err := Parse("bad", []byte("---\nfields: [nope]\n---\nbody"))
		require.NoError(t, err)

		var buf bytes.Buffer
		err = tmpl.Render(&buf, p, render.FormatOptions{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid template field")
	})

	t.Run("unknown field in body", func(t *testing.T) {
		tmpl, err := Parse("bad", []byte(`{{ field (index .Tasks 0) "nope" }}`))
		require.NoError(t, err)

		var buf bytes.Buffer
		err = tmpl.Render(&buf, p, render.FormatOptions{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to render template bad")
		require.ErrorIs(t, err, models.ErrUnknownField)
	})

	t.Run("field of non record", func(t *testing.T) {
		tmpl, err := Parse("bad", []byte(`{{ field .Title "name" }}`))
		require.NoError(t, err)

		var buf bytes.Buffer
		err = tmpl.Render(&buf, p, render.FormatOptions{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot read fields of string")
	})
}
