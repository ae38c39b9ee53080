package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.ErrorContains(t, ValidateOutputFormat("xml"), "invalid output format")
}

func TestOutputResults(t *testing.T) {
	data := struct {
		Name  string `json:"name" yaml:"name"`
		Count int    `json:"count" yaml:"count"`
	}{"demo", 2}

	var buf bytes.Buffer
	require.NoError(t, OutputResults(&buf, "json", data))
	assert.JSONEq(t, `{"name":"demo","count":2}`, buf.String())

	buf.Reset()
	require.NoError(t, OutputResults(&buf, "yaml", data))
	assert.YAMLEq(t, "name: demo\ncount: 2\n", buf.String())

	assert.Error(t, OutputResults(&buf, "text", data))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("PATH", "TYPE")
	table.Row("My Project/Main/index.html", "html")
	table.Flush()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "PATH                        TYPE", string(lines[0]))
	assert.Equal(t, "----                        ----", string(lines[1]))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", FormatBytes(-1))
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.5 kB", FormatBytes(1500))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "a b", TruncateString("a\n  b", 10))
	assert.Equal(t, "abcdefg...", TruncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestPrinters(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetGlobalFlags(false, false)
	})

	SetGlobalFlags(false, true)
	PrintSuccess("wrote %s", "a.html")
	PrintInfo("size %d", 3)
	PrintError("boom")
	assert.Equal(t, "OK: wrote a.html\nINFO: size 3\n", out.String())
	assert.Equal(t, "ERROR: boom\n", errOut.String())

	out.Reset()
	errOut.Reset()
	SetGlobalFlags(true, true)
	PrintSuccess("hidden")
	PrintWarning("shown")
	assert.Empty(t, out.String())
	assert.Equal(t, "WARNING: shown\n", errOut.String())
}

func TestLoadWorkspace(t *testing.T) {
	ctx := &CommandContext{Logger: NewLogger(&bytes.Buffer{}, "debug")}

	store, err := ctx.LoadWorkspace("", "")
	require.NoError(t, err)
	project, ok := store.CurrentProject()
	require.True(t, ok)
	assert.Equal(t, "My Project", project.Name)

	path := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - name: One\n  - name: Two\n"), 0644))

	store, err = ctx.LoadWorkspace(path, "two")
	require.NoError(t, err)
	project, _ = store.CurrentProject()
	assert.Equal(t, "Two", project.Name)

	_, err = ctx.LoadWorkspace(path, "three")
	assert.ErrorContains(t, err, "available: One, Two")
}

func TestSelectProjectByNameEmptyStore(t *testing.T) {
	err := SelectProjectByName(workspace.New(), "x")
	assert.ErrorContains(t, err, "project 'x' not found")
}

func TestOpenLogFile(t *testing.T) {
	logger, closeLog, err := OpenLogFile("", "info")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closeLog())

	path := filepath.Join(t.TempDir(), "codecraft.log")
	logger, closeLog, err = OpenLogFile(path, "debug")
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	require.NoError(t, closeLog())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello")

	_, _, err = OpenLogFile(filepath.Join(t.TempDir(), "missing", "x.log"), "info")
	assert.Error(t, err)
}
