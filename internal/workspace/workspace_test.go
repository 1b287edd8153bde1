package workspace

import (
	"reflect"
	"testing"

	"github.com/jakoblorz/go-mpxj/internal/reader"
)

func TestWorkspaceDetect_WithoutConfig(t *testing.T) {
	fs := NewWorkspaceBuilder("/projects").Build()

	ws := New(fs)
	if err := ws.Detect(); err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if ws.RootPath != "/projects" {
		t.Fatalf("unexpected root: %s", ws.RootPath)
	}
	if ws.Config.Path != "" {
		t.Fatalf("expected default config, got %s", ws.Config.Path)
	}
}

func TestWorkspaceDetect_ConfigAbove(t *testing.T) {
	wb := NewWorkspaceBuilder("/projects").
		WithConfig("timezone: Europe/Berlin\n").
		AddFile("plans/2024/notes.txt", "")
	fs := wb.Build()
	fs.SetCurrentDir("/projects/plans/2024")

	ws := New(fs)
	if err := ws.Detect(); err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if ws.RootPath != "/projects" {
		t.Fatalf("expected root at config dir, got %s", ws.RootPath)
	}
	if ws.Config.Timezone != "Europe/Berlin" {
		t.Fatalf("unexpected timezone: %s", ws.Config.Timezone)
	}
}

func TestWorkspaceDetect_InvalidConfig(t *testing.T) {
	fs := NewWorkspaceBuilder("/projects").WithConfig("timezone: Nowhere/Else\n").Build()

	ws := New(fs)
	if err := ws.Detect(); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestWorkspaceScan(t *testing.T) {
	fs := NewWorkspaceBuilder("/projects").
		WithGitIgnore("build/\n*.tmp.json\n").
		AddExport("office.json", OfficeMove()).
		AddExport("archive/2023.json", NewExport("Old")).
		AddExport("build/generated.json", NewExport("Generated")).
		AddExport("scratch.tmp.json", NewExport("Scratch")).
		AddExport(".cache/hidden.json", NewExport("Hidden")).
		AddFile("README.md", "# plans\n").
		Build()

	ws := New(fs)
	if err := ws.Detect(); err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	exports, err := ws.Scan("")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []string{"/projects/archive/2023.json", "/projects/office.json"}
	if !reflect.DeepEqual(exports, want) {
		t.Fatalf("Scan() = %v, want %v", exports, want)
	}
}

func TestWorkspaceScan_IncludePatterns(t *testing.T) {
	fs := NewWorkspaceBuilder("/projects").
		WithConfig("include:\n  - \"exports/*.json\"\n  - \"*.mpxj\"\n").
		AddExport("exports/a.json", NewExport("A")).
		AddExport("other/b.json", NewExport("B")).
		AddExport("other/deep/c.mpxj", NewExport("C")).
		Build()

	ws := New(fs)
	if err := ws.Detect(); err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	exports, err := ws.Scan("")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []string{"/projects/exports/a.json", "/projects/other/deep/c.mpxj"}
	if !reflect.DeepEqual(exports, want) {
		t.Fatalf("Scan() = %v, want %v", exports, want)
	}
}

func TestWorkspaceScan_Subdirectory(t *testing.T) {
	fs := NewWorkspaceBuilder("/projects").
		AddExport("a/one.json", NewExport("One")).
		AddExport("b/two.json", NewExport("Two")).
		Build()

	ws := New(fs)
	if err := ws.Detect(); err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	exports, err := ws.Scan("b")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !reflect.DeepEqual(exports, []string{"/projects/b/two.json"}) {
		t.Fatalf("unexpected exports: %v", exports)
	}

	if _, err := ws.Scan("missing"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestOfficeMoveExportIsReadable(t *testing.T) {
	fs := NewWorkspaceBuilder("/projects").AddExport("office.json", OfficeMove()).Build()

	p, err := reader.New(fs).Read("/projects/office.json")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got := len(p.AllTasks()); got != 4 {
		t.Fatalf("expected 4 tasks, got %d", got)
	}
	if got := len(p.AllRelations()); got != 2 {
		t.Fatalf("expected 2 relations, got %d", got)
	}
	if got := p.Name(); got != "Office Move" {
		t.Fatalf("unexpected project name: %s", got)
	}
}
