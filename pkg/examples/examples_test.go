package examples

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecraft/codecraft-terminal/pkg/composer"
	"github.com/codecraft/codecraft-terminal/pkg/files"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

func TestGetExamples(t *testing.T) {
	assert.Len(t, GetExamples("all"), len(GetExamples("basics"))+len(GetExamples("layout")))
	assert.Empty(t, GetExamples("unknown"))

	for _, set := range GetExamples("layout") {
		assert.Equal(t, "layout", set.Category)
	}
}

func TestExamplesLoadAndCompose(t *testing.T) {
	for _, set := range GetExamples("all") {
		t.Run(set.Name, func(t *testing.T) {
			store := workspace.New()
			require.NoError(t, set.Manifest.Apply(store))

			project, ok := store.CurrentProject()
			require.True(t, ok)
			doc, err := composer.ComposeProject(store, project.ID)
			require.NoError(t, err)

			assert.Contains(t, doc, "<style>")
			assert.Contains(t, doc, "<script>")
		})
	}
}

func TestCardGridUsesLastStylesheet(t *testing.T) {
	set := GetExamples("layout")[0]
	store := workspace.New()
	require.NoError(t, set.Manifest.Apply(store))

	project, _ := store.CurrentProject()
	doc, err := composer.ComposeProject(store, project.ID)
	require.NoError(t, err)

	assert.Contains(t, doc, "grid-template-columns")
	assert.NotContains(t, doc, "dashed red")
}

func TestInstall(t *testing.T) {
	dir := t.TempDir()
	set := GetExamples("basics")[0]

	path, err := Install(set, dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, set.Filename), path)

	m, err := files.ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, set.Manifest, *m)

	_, err = Install(set, dir, false)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
	_, err = Install(set, dir, true)
	assert.NoError(t, err)
}
