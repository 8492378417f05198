package record

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Makepad-fr/focusdash/internal/logging"
	"github.com/Makepad-fr/focusdash/internal/model"
)

func (s *Store) LoadProjects(ctx context.Context) []model.Project {
	return LoadCollection(ctx, s, Projects)
}

// AddProject appends an active project with the default description.
func (s *Store) AddProject(ctx context.Context, title string) (model.Project, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Project{}, ErrEmptyTitle
	}
	var p model.Project
	err := Mutate(ctx, s, Projects, func(projects []model.Project) ([]model.Project, error) {
		p = model.NewProject(nextID(s, projects), title)
		return append(projects, p), nil
	})
	if err != nil {
		return model.Project{}, err
	}
	s.log.Debug("Project added", logging.RecordID(p.ID))
	return p, nil
}

// EditProjectTitle commits an inline title edit; blank input keeps the
// current title.
func (s *Store) EditProjectTitle(ctx context.Context, id int64, text string) (model.Project, error) {
	return updateByID(ctx, s, Projects, id, func(p *model.Project) {
		p.Title = model.CommitEdit(p.Title, text)
	})
}

// EditProjectDescription is EditProjectTitle for the description.
func (s *Store) EditProjectDescription(ctx context.Context, id int64, text string) (model.Project, error) {
	return updateByID(ctx, s, Projects, id, func(p *model.Project) {
		p.Description = model.CommitEdit(p.Description, text)
	})
}

func (s *Store) ToggleProjectStatus(ctx context.Context, id int64) (model.Project, error) {
	return updateByID(ctx, s, Projects, id, func(p *model.Project) {
		p.Status = p.Status.Toggle()
	})
}

// AttachFiles appends the base names of files to the project's list.
// Blank names are skipped. It reports how many names were added.
func (s *Store) AttachFiles(ctx context.Context, id int64, files ...string) (model.Project, int, error) {
	var names []string
	for _, f := range files {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		names = append(names, filepath.Base(f))
	}
	if len(names) == 0 {
		// Nothing to attach: no write, samples stay unpersisted.
		projects := s.LoadProjects(ctx)
		if i := indexOf(projects, id); i >= 0 {
			return projects[i], 0, nil
		}
		return model.Project{}, 0, fmt.Errorf("%s %d: %w", Projects.Name, id, ErrNotFound)
	}
	p, err := updateByID(ctx, s, Projects, id, func(p *model.Project) {
		p.Files = append(p.Files, names...)
	})
	if err != nil {
		return model.Project{}, 0, err
	}
	return p, len(names), nil
}
