package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `projects:
  - name: Landing
    folders:
      - name: Main
        files:
          - name: index.html
            content: "<html><head><title>Landing</title></head><body><h1>Hello</h1></body></html>"
          - name: site.css
            content: "h1 { color: red; }"
          - name: app.js
            content: "console.log('hi')"
  - name: Other
`

func setupCommandTest(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { os.Chdir(oldDir) })

	path := filepath.Join(tempDir, "playground.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0644))
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestComposeCommand(t *testing.T) {
	manifest := setupCommandTest(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "sample project",
			args:     nil,
			contains: []string{"<title>My Project</title>", "<style>body {", "</script></body>"},
		},
		{
			name: "manifest project",
			args: []string{manifest},
			contains: []string{
				"<head><title>Landing</title><style>h1 { color: red; }</style></head>",
				"<h1>Hello</h1><script>console.log('hi')</script></body>",
			},
		},
		{
			name:     "selected project",
			args:     []string{manifest, "--project", "other"},
			contains: []string{"<h1>Other</h1>"},
			excludes: []string{"Landing"},
		},
		{
			name:     "minified",
			args:     []string{manifest, "--minify"},
			contains: []string{"color:red"},
		},
		{
			name:     "outline",
			args:     []string{manifest, "--outline"},
			contains: []string{"Project:  Landing", "Title:    Landing", "Headings: Hello", "Styles:   1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, NewComposeCommand(), tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestComposeCommandErrors(t *testing.T) {
	manifest := setupCommandTest(t)

	_, err := run(t, NewComposeCommand(), "missing.yaml")
	assert.Error(t, err)

	_, err = run(t, NewComposeCommand(), manifest, "--project", "nope")
	assert.ErrorContains(t, err, "project 'nope' not found")
}

func TestExportCommand(t *testing.T) {
	manifest := setupCommandTest(t)
	target := filepath.Join(t.TempDir(), "out", "landing.html")

	_, err := run(t, NewExportCommand(), manifest, "--file", target)
	require.NoError(t, err)

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<style>h1 { color: red; }</style>")
}

func TestExportCommandDefaultPath(t *testing.T) {
	setupCommandTest(t)

	_, err := run(t, NewExportCommand())
	require.NoError(t, err)
	assert.FileExists(t, "preview.html")
}

func TestListCommand(t *testing.T) {
	manifest := setupCommandTest(t)

	out, err := run(t, NewListCommand(), manifest)
	require.NoError(t, err)
	assert.Contains(t, out, "* Landing/Main/index.html")
	assert.Contains(t, out, "  Landing/Main/site.css")
	assert.Contains(t, out, "  Other/Main/index.html")
	assert.Contains(t, out, "2 project(s)")

	out, err = run(t, NewListCommand(), manifest, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Landing")
	assert.Contains(t, out, "type: css")

	_, err = run(t, NewListCommand(), manifest, "-o", "xml")
	assert.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	manifest := setupCommandTest(t)

	out, err := run(t, NewShowCommand(), "Landing/Main/site.css", "--manifest", manifest)
	require.NoError(t, err)
	assert.Equal(t, "h1 { color: red; }\n", out)

	_, err = run(t, NewShowCommand(), "Landing/Main/none.css", "--manifest", manifest)
	assert.ErrorContains(t, err, "file not found")

	_, err = run(t, NewShowCommand(), "Landing")
	assert.ErrorContains(t, err, "invalid file reference")
}

func TestExamplesCommand(t *testing.T) {
	setupCommandTest(t)

	out, err := run(t, NewExamplesCommand(), "all", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "[basics] Click Counter")
	assert.Contains(t, out, "[layout] Card Grid")

	_, err = run(t, NewExamplesCommand())
	require.NoError(t, err)
	assert.FileExists(t, "example-counter.yaml")

	_, err = run(t, NewExamplesCommand())
	assert.Error(t, err, "existing examples are not overwritten")

	_, err = run(t, NewExamplesCommand(), "bogus")
	assert.ErrorContains(t, err, "invalid category")

	out, err = run(t, NewComposeCommand(), "example-counter.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `id="inc"`)
}

func TestSearchCommand(t *testing.T) {
	manifest := setupCommandTest(t)

	out, err := run(t, NewSearchCommand(), "type:css", "--manifest", manifest)
	require.NoError(t, err)
	assert.Contains(t, out, "Landing/Main/site.css")
	assert.NotContains(t, out, "index.html")

	out, err = run(t, NewSearchCommand(), `content:"hello"`, "-m", manifest, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "path: Landing/Main/index.html")
	assert.Contains(t, out, "line: 1")
	assert.Contains(t, out, "count: 1")

	_, err = run(t, NewSearchCommand(), "size:3")
	assert.ErrorContains(t, err, "unknown field")
}
