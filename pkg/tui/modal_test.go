package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

func TestCycleFileType(t *testing.T) {
	assert.Equal(t, models.FileTypeCSS, cycleFileType(models.FileTypeHTML, true))
	assert.Equal(t, models.FileTypeHTML, cycleFileType(models.FileTypeJS, true))
	assert.Equal(t, models.FileTypeJS, cycleFileType(models.FileTypeHTML, false))
	assert.Equal(t, models.FileTypeHTML, cycleFileType("", true))
}

func TestCreateModalSubmit(t *testing.T) {
	m := newCreateModal()
	m.Open(levelFiles)
	m.Update(key("main"))
	m.Update(key("shift+tab"))

	cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, createSubmitMsg{level: levelFiles, name: "main", fileType: models.FileTypeJS}, cmd())
	assert.True(t, m.Active(), "stays open until the store accepts the name")
}

func TestCreateModalTypeOnlyForFiles(t *testing.T) {
	m := newCreateModal()
	m.Open(levelFolders)
	m.Update(key("tab"))

	assert.Equal(t, models.FileTypeHTML, m.fileType)
	assert.NotContains(t, m.View(), "type:")
}

func TestCreateModalReopenResets(t *testing.T) {
	m := newCreateModal()
	m.Open(levelFiles)
	m.Update(key("old"))
	m.Update(key("tab"))
	m.Fail(assert.AnError)
	assert.Contains(t, m.View(), assert.AnError.Error())

	m.Update(key("esc"))
	assert.False(t, m.Active())

	m.Open(levelProjects)
	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.err)
	assert.Equal(t, models.FileTypeHTML, m.fileType)
	assert.Contains(t, m.View(), "New project")
}
