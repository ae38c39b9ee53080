package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecraft/codecraft-terminal/pkg/composer"
	"github.com/codecraft/codecraft-terminal/pkg/models"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

const landingManifest = `
projects:
  - name: Landing
    folders:
      - name: Main
        files:
          - name: index.html
            content: "<head></head><body><h1>Hi</h1></body>"
          - name: site
            type: css
            content: "h1{color:red}"
      - name: scripts
        files:
          - name: app.js
            content: "alert(1)"
  - name: Scratch
    folders:
      - name: notes
        files:
          - name: page.html
            content: "<p>scratch</p>"
`

func fileNames(files []models.File) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}

func TestManifestApply(t *testing.T) {
	m, err := ParseManifest([]byte(landingManifest))
	require.NoError(t, err)

	store := workspace.New()
	require.NoError(t, m.Apply(store))

	projects := store.Projects()
	require.Len(t, projects, 2)
	assert.Equal(t, "Landing", projects[0].Name)
	assert.Equal(t, projects[0].ID, store.Selection().Project)

	landing, err := store.ProjectFiles(projects[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "site.css", "app.js"}, fileNames(landing))
	assert.Equal(t, "<head></head><body><h1>Hi</h1></body>", landing[0].Content)
	assert.Equal(t, models.FileTypeCSS, landing[1].Type)
	assert.Equal(t, "alert(1)", landing[2].Content)

	// Scratch names no "Main" folder and no index.html: both seeds go away.
	folders := store.Folders(projects[1].ID)
	require.Len(t, folders, 1)
	assert.Equal(t, "notes", folders[0].Name)
	assert.Equal(t, []string{"page.html"}, fileNames(store.Files(folders[0].ID)))
}

func folderNames(folders []models.Folder) []string {
	names := make([]string, 0, len(folders))
	for _, f := range folders {
		names = append(names, f.Name)
	}
	return names
}

func TestManifestApplyKeepsOrder(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		folders  []string
		files    []string
		body     string
	}{
		{
			name: "main folder listed last",
			manifest: `
projects:
  - name: Order
    folders:
      - name: pages
        files:
          - name: page.html
            content: "<head></head><body>PAGES</body>"
      - name: Main
        files:
          - name: index.html
            content: "<head></head><body>MAIN</body>"
`,
			folders: []string{"pages", "Main"},
			files:   []string{"page.html", "index.html"},
			body:    "<body>MAIN",
		},
		{
			name: "index file listed last",
			manifest: `
projects:
  - name: Order
    folders:
      - name: Main
        files:
          - name: page.html
            content: "<head></head><body>PAGE</body>"
          - name: index.html
            content: "<head></head><body>INDEX</body>"
`,
			folders: []string{"Main"},
			files:   []string{"page.html", "index.html"},
			body:    "<body>INDEX",
		},
		{
			name: "seeds claimed when listed first",
			manifest: `
projects:
  - name: Order
    folders:
      - name: Main
        files:
          - name: index.html
            content: "<head></head><body>INDEX</body>"
          - name: page.html
            content: "<head></head><body>PAGE</body>"
      - name: extra
        files:
          - name: extra.css
            content: "p{}"
`,
			folders: []string{"Main", "extra"},
			files:   []string{"index.html", "page.html", "extra.css"},
			body:    "<body>PAGE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseManifest([]byte(tt.manifest))
			require.NoError(t, err)

			store := workspace.New()
			require.NoError(t, m.Apply(store))

			id := store.Projects()[0].ID
			assert.Equal(t, tt.folders, folderNames(store.Folders(id)))

			files, err := store.ProjectFiles(id)
			require.NoError(t, err)
			assert.Equal(t, tt.files, fileNames(files))

			assert.Contains(t, composer.Compose(files), tt.body)
		})
	}
}

func TestManifestApplyKeepsSeedsWhenEmpty(t *testing.T) {
	m, err := ParseManifest([]byte("projects:\n  - name: Bare\n"))
	require.NoError(t, err)

	store := workspace.New()
	require.NoError(t, m.Apply(store))

	file, ok := store.CurrentFile()
	require.True(t, ok)
	assert.Equal(t, "index.html", file.Name)
	assert.Contains(t, file.Content, "<h1>Bare</h1>")
}

func TestManifestErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"no projects", "projects: []\n"},
		{"not yaml", "projects: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.manifest))
			assert.Error(t, err)
		})
	}

	m, err := ParseManifest([]byte("projects:\n  - name: X\n    folders:\n      - name: Main\n        files:\n          - name: notes.txt\n"))
	require.NoError(t, err)
	assert.Error(t, m.Apply(workspace.New()))

	m, err = ParseManifest([]byte("projects:\n  - name: '  '\n"))
	require.NoError(t, err)
	err = m.Apply(workspace.New())
	assert.True(t, workspace.IsValidation(err))
}

func TestReadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte(landingManifest), 0644))

	m, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Len(t, m.Projects, 2)

	_, err = ReadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
