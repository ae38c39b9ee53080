package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFileType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FileType
		wantErr bool
	}{
		{"html", "html", FileTypeHTML, false},
		{"upper case", "CSS", FileTypeCSS, false},
		{"extension form", ".js", FileTypeJS, false},
		{"padded", "  js ", FileTypeJS, false},
		{"unknown", "ts", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFileType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileTypeExtension(t *testing.T) {
	assert.Equal(t, ".html", FileTypeHTML.Extension())
	assert.Equal(t, ".css", FileTypeCSS.Extension())
	assert.Equal(t, ".js", FileTypeJS.Extension())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultAutoSaveDelay, s.Editor.AutoSaveDelay)
	assert.Equal(t, "preview.html", s.Output.DefaultFilename)
	assert.True(t, s.Preview.AutoRun)
	assert.False(t, s.Preview.Minify)
}

func TestEditorSettingsAutoSaveDelay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"seconds", "auto_save_delay: 2s", 2 * time.Second, false},
		{"milliseconds", "auto_save_delay: 500ms", 500 * time.Millisecond, false},
		{"missing keeps default", "{}", DefaultAutoSaveDelay, false},
		{"bare integer", "auto_save_delay: 1000", 0, true},
		{"bare float", "auto_save_delay: 1.5", 0, true},
		{"quoted number", `auto_save_delay: "1000"`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor := DefaultSettings().Editor
			err := yaml.Unmarshal([]byte(tt.input), &editor)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, editor.AutoSaveDelay)
		})
	}
}
