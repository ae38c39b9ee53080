package models

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings represents the application configuration
type Settings struct {
	Output  OutputSettings  `yaml:"output"`
	Preview PreviewSettings `yaml:"preview"`
	Editor  EditorSettings  `yaml:"editor"`
	UI      UISettings      `yaml:"ui"`
	Log     LogSettings     `yaml:"log"`
}

// OutputSettings controls where exported previews go
type OutputSettings struct {
	DefaultFilename string `yaml:"default_filename"`
	ExportPath      string `yaml:"export_path"`
}

// PreviewSettings controls how a project is composed for preview
type PreviewSettings struct {
	Minify  bool `yaml:"minify"`
	AutoRun bool `yaml:"auto_run"` // re-compose after every auto-save
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	AutoSaveDelay time.Duration `yaml:"auto_save_delay"` // "1s", "500ms"
}

// UnmarshalYAML refuses a bare number for auto_save_delay: it would read
// as nanoseconds, not the milliseconds or seconds people tend to mean.
func (e *EditorSettings) UnmarshalYAML(node *yaml.Node) error {
	type plain EditorSettings
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Value != "auto_save_delay" {
			continue
		}
		if tag := v.ShortTag(); tag == "!!int" || tag == "!!float" {
			return fmt.Errorf("line %d: auto_save_delay %s has no unit, write a duration such as \"1s\" or \"500ms\"", v.Line, v.Value)
		}
	}
	return node.Decode((*plain)(e))
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview bool `yaml:"show_preview"`
	ShowTree    bool `yaml:"show_tree"`
}

// LogSettings controls the structured logger
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // TUI only; empty discards
}

// DefaultAutoSaveDelay is how long the editor waits after the last
// keystroke before saving.
const DefaultAutoSaveDelay = 1000 * time.Millisecond

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			DefaultFilename: "preview.html",
			ExportPath:      "./",
		},
		Preview: PreviewSettings{
			Minify:  false,
			AutoRun: true,
		},
		Editor: EditorSettings{
			AutoSaveDelay: DefaultAutoSaveDelay,
		},
		UI: UISettings{
			ShowPreview: true,
			ShowTree:    true,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}
