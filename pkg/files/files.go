package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

const (
	CodecraftDir      = ".codecraft"
	SettingsFile      = "settings.yaml"
	DefaultOutputFile = "preview.html"
)

const settingsHeader = `# CodeCraft settings
# Durations need a unit, e.g. auto_save_delay: 1s or auto_save_delay: 500ms
`

// SettingsPath is where settings are read from, relative to the working
// directory.
func SettingsPath() string {
	return filepath.Join(CodecraftDir, SettingsFile)
}

// InitConfig creates the .codecraft directory and writes default settings
// unless a settings file already exists.
func InitConfig() (created bool, err error) {
	if err := os.MkdirAll(CodecraftDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", CodecraftDir, err)
	}
	if _, err := os.Stat(SettingsPath()); err == nil {
		return false, nil
	}
	if err := WriteSettings(models.DefaultSettings()); err != nil {
		return false, err
	}
	return true, nil
}

// ReadSettings loads settings, falling back to defaults when no settings
// file exists. Fields missing from the file keep their default values.
func ReadSettings() (*models.Settings, error) {
	return ReadSettingsFrom(SettingsPath())
}

func ReadSettingsFrom(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	return WriteSettingsTo(SettingsPath(), settings)
}

func WriteSettingsTo(path string, settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content = append([]byte(settingsHeader), content...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

// ExportPath resolves where an exported preview goes: an explicit path
// wins, otherwise the configured export directory and filename are used.
func ExportPath(settings *models.Settings, explicit string) string {
	if explicit != "" {
		return explicit
	}
	name := settings.Output.DefaultFilename
	if name == "" {
		name = DefaultOutputFile
	}
	return filepath.Join(settings.Output.ExportPath, name)
}
