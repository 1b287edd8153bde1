package browse

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/jakoblorz/go-mpxj/internal/tui"
	"github.com/jakoblorz/go-mpxj/internal/tui/components"
)

// Flow lets the user pick records of a project and inspect their fields.
type Flow struct {
	project *models.Project
	opts    render.FormatOptions
	theme   *huh.Theme
}

// NewFlow constructs a Flow with the orange/blue huh theme.
func NewFlow(p *models.Project, opts render.FormatOptions) *Flow {
	return &Flow{
		project: p,
		opts:    opts,
		theme:   tui.NewHuhTheme(),
	}
}

// Run loops entity selection, record selection and the field list until
// the user aborts the entity selection.
func (f *Flow) Run() error {
	for {
		entity, err := f.selectEntity()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		for {
			record, err := f.selectRecord(entity)
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					break
				}
				return err
			}

			if err := f.showRecord(record); err != nil {
				return err
			}
		}
	}
}

func (f *Flow) selectEntity() (schema.EntityType, error) {
	selected := string(schema.EntityTask)

	opts := make([]huh.Option[string], 0, len(schema.Entities))
	for _, e := range schema.Entities {
		label := fmt.Sprintf("%s (%d)", e.Plural(), len(f.project.Records(e)))
		opts = append(opts, huh.NewOption(label, string(e)))
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit.SetKeys("ctrl+c", "esc", "q")
	keyMap.Select.Filter.SetEnabled(false)
	keyMap.Select.Submit.SetKeys("enter", " ")
	keyMap.Select.Submit.SetHelp("space/enter", "continue")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Value(&selected),
		).
			Title(f.title()).
			Description("Select what to browse."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return "", err
	}

	return schema.ParseEntityType(selected)
}

func (f *Flow) selectRecord(entity schema.EntityType) (*models.Record, error) {
	choices := Choices(f.project, entity)
	if len(choices) == 0 {
		return nil, huh.ErrUserAborted
	}

	selected := 0
	opts := make([]huh.Option[int], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Label, i)
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Quit.SetKeys("ctrl+c", "esc")
	keyMap.Select.Submit.SetKeys("enter")
	keyMap.Select.Submit.SetHelp("enter", "show fields")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Options(opts...).
				Height(20).
				Value(&selected),
		).
			Title(f.title()).
			Description(fmt.Sprintf("Select a %s. Press / to filter, esc to go back.", entity)),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen()).
		WithKeyMap(keyMap)

	if err := form.Run(); err != nil {
		return nil, err
	}

	return choices[selected].Record, nil
}

func (f *Flow) showRecord(r *models.Record) error {
	list := components.NewFieldList(Title(r), Rows(r, f.opts))

	if _, err := tea.NewProgram(list, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to show %s: %w", r.Entity(), err)
	}
	return nil
}

func (f *Flow) title() string {
	if name := f.project.Name(); name != "" {
		return name
	}
	return f.project.Path
}
