package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/codecraft/codecraft-terminal/pkg/files"
	"github.com/codecraft/codecraft-terminal/pkg/models"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

// CommandContext carries what every command needs: settings, a logger
// and a workspace loaded from a manifest or the sample project.
type CommandContext struct {
	Settings *models.Settings
	Logger   *log.Logger
}

// NewCommandContext loads settings (defaults when no settings file
// exists) and builds a logger writing to w.
func NewCommandContext(w io.Writer) (*CommandContext, error) {
	settings, err := files.ReadSettings()
	if err != nil {
		return nil, err
	}
	return &CommandContext{
		Settings: settings,
		Logger:   NewLogger(w, settings.Log.Level),
	}, nil
}

// NewLogger builds the structured logger used across commands.
func NewLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "codecraft",
		ReportTimestamp: true,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// OpenLogFile returns a logger writing to path, or a discarding logger when
// path is empty. The returned close func is never nil.
func OpenLogFile(path, level string) (*log.Logger, func() error, error) {
	if path == "" {
		return NewLogger(io.Discard, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return NewLogger(f, level), f.Close, nil
}

// LoadWorkspace builds a store from the manifest at manifestPath, or the
// sample project when manifestPath is empty. When project is set the
// project with that name is selected.
func (c *CommandContext) LoadWorkspace(manifestPath, project string) (*workspace.Store, error) {
	var store *workspace.Store
	if manifestPath == "" {
		store = workspace.NewSample(workspace.WithLogger(c.Logger))
	} else {
		m, err := files.ReadManifest(manifestPath)
		if err != nil {
			return nil, err
		}
		store = workspace.New(workspace.WithLogger(c.Logger))
		if err := m.Apply(store); err != nil {
			return nil, fmt.Errorf("failed to load manifest %s: %w", manifestPath, err)
		}
		c.Logger.Debug("manifest loaded", "path", manifestPath, "projects", len(m.Projects))
	}

	if project != "" {
		if err := SelectProjectByName(store, project); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// SelectProjectByName selects the first project named name, ignoring case.
func SelectProjectByName(store *workspace.Store, name string) error {
	var names []string
	for _, p := range store.Projects() {
		if strings.EqualFold(p.Name, name) {
			return store.SelectProject(p.ID)
		}
		names = append(names, p.Name)
	}
	return fmt.Errorf("project '%s' not found (available: %s)", name, strings.Join(names, ", "))
}
