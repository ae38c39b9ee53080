package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecraft/codecraft-terminal/pkg/models"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Condition
		logic   []Operator
		wantErr string
	}{
		{name: "empty", input: "  "},
		{
			name:  "bare word is content",
			input: "button",
			want:  []Condition{{Field: FieldContent, Value: "button"}},
		},
		{
			name:  "fields with implicit AND",
			input: "type:CSS name:style",
			want:  []Condition{{Field: FieldFileType, Value: "css"}, {Field: FieldName, Value: "style"}},
			logic: []Operator{OperatorAND},
		},
		{
			name:  "quoted value and NOT",
			input: `NOT content:"Click Me" or folder:main`,
			want:  []Condition{{Field: FieldContent, Value: "Click Me", Negate: true}, {Field: FieldFolder, Value: "main"}},
			logic: []Operator{OperatorOR},
		},
		{name: "unknown field", input: "size:10", wantErr: "unknown field"},
		{name: "bad type", input: "type:md", wantErr: "invalid file type"},
		{name: "leading operator", input: "AND name:a", wantErr: "unexpected operator"},
		{name: "double operator", input: "name:a OR AND name:b", wantErr: "unexpected operator"},
		{name: "trailing operator", input: "name:a OR", wantErr: "ends with an operator"},
		{name: "dangling NOT", input: "name:a NOT", wantErr: "requires a condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Conditions)
			assert.Equal(t, tt.logic, q.Logic)
		})
	}
}

func names(matches []Match) []string {
	var out []string
	for _, m := range matches {
		out = append(out, m.Path())
	}
	return out
}

func TestSearchSample(t *testing.T) {
	store := workspace.NewSample()
	_, err := store.CreateFolder("Drafts")
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"My Project/Main/index.html", "My Project/Main/styles.css", "My Project/Main/script.js", "My Project/Drafts/index.html"}},
		{"type:css", []string{"My Project/Main/styles.css"}},
		{"folder:drafts", []string{"My Project/Drafts/index.html"}},
		{"type:html NOT folder:drafts", []string{"My Project/Main/index.html"}},
		{"type:css OR type:js", []string{"My Project/Main/styles.css", "My Project/Main/script.js"}},
		{"demo-btn", []string{"My Project/Main/index.html", "My Project/Main/styles.css", "My Project/Main/script.js"}},
		{"alert NOT type:css", []string{"My Project/Main/script.js"}},
		{"project:nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			q, err := Parse(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(Search(store, q)))
		})
	}
}

func TestSearchLocatesContent(t *testing.T) {
	store := workspace.NewSample()
	q, err := Parse(`type:html content:"click me"`)
	require.NoError(t, err)

	matches := Search(store, q)

	require.Len(t, matches, 1)
	assert.Equal(t, models.FileTypeHTML, matches[0].File.Type)
	assert.Equal(t, 10, matches[0].Line)
	assert.Equal(t, `<button id="demo-btn">Click Me</button>`, matches[0].Snippet)
}
