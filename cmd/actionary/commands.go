package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/actionary/internal/app"
	"github.com/dori/actionary/internal/config"
	"github.com/dori/actionary/internal/format"
	"github.com/dori/actionary/internal/logging"
	"github.com/dori/actionary/internal/model"
	"github.com/dori/actionary/internal/store"
	"github.com/dori/actionary/internal/ui"
	"github.com/dori/actionary/internal/ui/theme"
)

func (c *CLI) loadConfig(g *Globals) (*config.Config, error) {
	path := c.Config
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path, g.Getenv, config.Overrides{
		File:    c.File,
		Backend: c.Backend,
		Theme:   c.Theme,
		Debug:   c.Debug,
	})
}

// openApp opens the store for a one-shot command, logging to stderr
func (c *CLI) openApp(g *Globals) (*app.App, error) {
	cfg, err := c.loadConfig(g)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return nil, err
	}
	return app.New(cfg, logger)
}

// UICmd starts the TUI
type UICmd struct{}

func (u *UICmd) Run(g *Globals, cli *CLI) error {
	cfg, err := cli.loadConfig(g)
	if err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.LogFile, logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer logFile.Close()

	if t, ok := theme.ByName(cfg.Theme); ok {
		theme.SetTheme(t)
	}

	application, err := app.New(cfg, logFile.Logger)
	if err != nil {
		return err
	}
	defer application.Close()

	p := tea.NewProgram(
		ui.NewRootModel(application),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		logFile.Error("tui exited", "err", err)
		return err
	}
	return nil
}

// AddCmd appends a To-Do task
type AddCmd struct {
	Text []string `arg:"" help:"Task text; **bold**, _italic_ and __underline__ are rendered"`
}

func (a *AddCmd) Run(g *Globals, cli *CLI) error {
	application, err := cli.openApp(g)
	if err != nil {
		return err
	}
	defer application.Close()

	text := strings.Join(a.Text, " ")
	if !application.Store.Add(text) {
		return errors.New("task text is empty")
	}
	if err := application.Store.LastError(); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	fmt.Fprintf(g.Out, "Added: %s\n", text)
	return nil
}

// ListCmd prints tasks in display order
type ListCmd struct {
	Plain bool `help:"Print raw text without styling"`
}

func (l *ListCmd) Run(g *Globals, cli *CLI) error {
	application, err := cli.openApp(g)
	if err != nil {
		return err
	}
	defer application.Close()

	rows := application.Store.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(g.Out, "No tasks.")
		return nil
	}

	for i, row := range rows {
		check := "[ ]"
		if row.Task.Completed {
			check = "[x]"
		}
		text := row.Task.Text
		tag := fmt.Sprintf("%-11s", row.Task.Tag)
		if !l.Plain {
			text = format.Text(text, lipgloss.NewStyle())
			tag = lipgloss.NewStyle().
				Foreground(lipgloss.Color(row.Task.Tag.Color())).
				Render(tag)
		}
		// Continuation lines line up under the text column
		text = strings.ReplaceAll(text, "\n", "\n"+strings.Repeat(" ", 21))
		fmt.Fprintf(g.Out, "%3d. %s %s %s\n", i+1, check, tag, text)
	}
	return nil
}

// resolve maps a 1-based number from `list` to its display row
func resolve(s *store.Store, n int) (store.Row, error) {
	rows := s.Rows()
	if n < 1 || n > len(rows) {
		return store.Row{}, fmt.Errorf("no task %d (have %d)", n, len(rows))
	}
	return rows[n-1], nil
}

// DoneCmd toggles completion
type DoneCmd struct {
	N int `arg:"" help:"Task number as shown by list"`
}

func (d *DoneCmd) Run(g *Globals, cli *CLI) error {
	application, err := cli.openApp(g)
	if err != nil {
		return err
	}
	defer application.Close()

	row, err := resolve(application.Store, d.N)
	if err != nil {
		return err
	}
	application.Store.ToggleComplete(row.Index)
	if err := application.Store.LastError(); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	state := "done"
	if row.Task.Completed {
		state = "to-do"
	}
	fmt.Fprintf(g.Out, "Marked %s: %s\n", state, format.Plain(format.Parse(row.Task.Text)))
	return nil
}

// TagCmd sets a task's tag
type TagCmd struct {
	N   int    `arg:"" help:"Task number as shown by list"`
	Tag string `arg:"" help:"To-Do, In Progress, Blocked or Completed"`
}

func (t *TagCmd) Run(g *Globals, cli *CLI) error {
	tag, ok := model.ParseTag(t.Tag)
	if !ok {
		return fmt.Errorf("unknown tag %q", t.Tag)
	}

	application, err := cli.openApp(g)
	if err != nil {
		return err
	}
	defer application.Close()

	row, err := resolve(application.Store, t.N)
	if err != nil {
		return err
	}
	application.Store.SetTag(row.Index, tag)
	if err := application.Store.LastError(); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	fmt.Fprintf(g.Out, "Tagged %s: %s\n", tag, format.Plain(format.Parse(row.Task.Text)))
	return nil
}

// RmCmd deletes a task
type RmCmd struct {
	N int `arg:"" help:"Task number as shown by list"`
}

func (r *RmCmd) Run(g *Globals, cli *CLI) error {
	application, err := cli.openApp(g)
	if err != nil {
		return err
	}
	defer application.Close()

	row, err := resolve(application.Store, r.N)
	if err != nil {
		return err
	}
	application.Store.Delete(row.Index)
	if err := application.Store.LastError(); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	fmt.Fprintf(g.Out, "Deleted: %s\n", format.Plain(format.Parse(row.Task.Text)))
	return nil
}

// VersionCmd prints the version
type VersionCmd struct{}

func (v *VersionCmd) Run(g *Globals) error {
	fmt.Fprintf(g.Out, "actionary v%s\n", version)
	return nil
}
