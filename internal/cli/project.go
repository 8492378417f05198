package cli

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/focusdash/internal/ui"
)

type ProjectCmd struct {
	Add    ProjectAddCmd    `cmd:"" help:"Add a new project"`
	Ls     ProjectLsCmd     `cmd:"" aliases:"list" help:"List projects"`
	Title  ProjectTitleCmd  `cmd:"" help:"Rename a project"`
	Desc   ProjectDescCmd   `cmd:"" help:"Change a project's description"`
	Status ProjectStatusCmd `cmd:"" help:"Toggle a project between active and completed"`
	Attach ProjectAttachCmd `cmd:"" help:"Attach file names to a project"`
}

type ProjectAddCmd struct {
	Title []string `arg:"" help:"Project title"`
}

func (c *ProjectAddCmd) Run(g *Global) error {
	p, err := g.Store.AddProject(g.Ctx, strings.Join(c.Title, " "))
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	ui.OK(g.Stdout, fmt.Sprintf("added project #%d", p.ID))
	return nil
}

type ProjectLsCmd struct{}

func (c *ProjectLsCmd) Run(g *Global) error {
	projects := g.Store.LoadProjects(g.Ctx)
	t := ui.Current()

	lines := []string{t.Title.Render("Projects") + t.Muted.Render(fmt.Sprintf("  %d total", len(projects))), ""}
	if len(projects) == 0 {
		lines = append(lines, t.Muted.Render("no projects"))
	}
	for i, p := range projects {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, projectLines(p)...)
	}
	fmt.Fprintln(g.Stdout, ui.Panel(lines))
	return nil
}

type ProjectTitleCmd struct {
	ID   int64    `arg:"" help:"Project id (see dash project ls)"`
	Text []string `arg:"" help:"New title; blank keeps the current one"`
}

func (c *ProjectTitleCmd) Run(g *Global) error {
	p, err := g.Store.EditProjectTitle(g.Ctx, c.ID, strings.Join(c.Text, " "))
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	ui.OK(g.Stdout, "title: "+p.Title)
	return nil
}

type ProjectDescCmd struct {
	ID   int64    `arg:"" help:"Project id (see dash project ls)"`
	Text []string `arg:"" help:"New description; blank keeps the current one"`
}

func (c *ProjectDescCmd) Run(g *Global) error {
	p, err := g.Store.EditProjectDescription(g.Ctx, c.ID, strings.Join(c.Text, " "))
	if err != nil {
		return fmt.Errorf("desc: %w", err)
	}
	ui.OK(g.Stdout, "description: "+p.Description)
	return nil
}

type ProjectStatusCmd struct {
	ID int64 `arg:"" help:"Project id (see dash project ls)"`
}

func (c *ProjectStatusCmd) Run(g *Global) error {
	p, err := g.Store.ToggleProjectStatus(g.Ctx, c.ID)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}
	ui.OK(g.Stdout, fmt.Sprintf("%s is now %s", p.Title, p.Status))
	return nil
}

type ProjectAttachCmd struct {
	ID    int64    `arg:"" help:"Project id (see dash project ls)"`
	Files []string `arg:"" help:"File names or paths; only the base name is kept"`
}

func (c *ProjectAttachCmd) Run(g *Global) error {
	p, n, err := g.Store.AttachFiles(g.Ctx, c.ID, c.Files...)
	if err != nil {
		return fmt.Errorf("attach: %w", err)
	}
	if n == 0 {
		ui.Hint(g.Stdout, "no file names given, nothing attached")
		return nil
	}
	ui.OK(g.Stdout, fmt.Sprintf("%d file(s) added to project %q", n, p.Title))
	return nil
}
