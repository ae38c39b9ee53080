// Package search finds files in a workspace with queries such as
// `type:css name:main NOT content:"TODO"`. Bare words match content.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

// Field is the part of a file a condition looks at.
type Field string

const (
	FieldFileType Field = "type"
	FieldName     Field = "name"
	FieldFolder   Field = "folder"
	FieldProject  Field = "project"
	FieldContent  Field = "content"
)

// Operator joins conditions.
type Operator string

const (
	OperatorAND Operator = "AND"
	OperatorOR  Operator = "OR"
)

// Condition represents a single search condition
type Condition struct {
	Field  Field
	Value  string
	Negate bool
}

// Query represents a parsed search query
type Query struct {
	Conditions []Condition
	Logic      []Operator // between consecutive conditions
	Raw        string
}

var (
	fieldPattern  = regexp.MustCompile(`^(\w+):(.+)$`)
	quotedPattern = regexp.MustCompile(`^"([^"]*)"$`)
)

// Parse parses a query string. An empty query has no conditions and
// matches every file.
func Parse(input string) (*Query, error) {
	query := &Query{Raw: input}

	tokens := tokenize(input)
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		switch strings.ToUpper(token) {
		case "AND", "OR":
			if len(query.Conditions) == 0 || len(query.Logic) == len(query.Conditions) {
				return nil, fmt.Errorf("unexpected operator %s", token)
			}
			query.Logic = append(query.Logic, Operator(strings.ToUpper(token)))
			continue
		}

		negate := false
		if strings.ToUpper(token) == "NOT" {
			i++
			if i >= len(tokens) {
				return nil, fmt.Errorf("NOT operator requires a condition")
			}
			negate = true
			token = tokens[i]
		}

		cond, err := parseCondition(token)
		if err != nil {
			return nil, err
		}
		cond.Negate = negate
		// implicit AND between adjacent conditions
		if len(query.Conditions) > len(query.Logic) {
			query.Logic = append(query.Logic, OperatorAND)
		}
		query.Conditions = append(query.Conditions, cond)
	}

	if len(query.Conditions) > 0 && len(query.Logic) != len(query.Conditions)-1 {
		return nil, fmt.Errorf("query ends with an operator")
	}
	return query, nil
}

// tokenize splits on spaces outside double quotes.
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func parseCondition(token string) (Condition, error) {
	matches := fieldPattern.FindStringSubmatch(token)
	if matches == nil {
		return Condition{Field: FieldContent, Value: unquote(token)}, nil
	}

	value := unquote(matches[2])
	switch field := Field(strings.ToLower(matches[1])); field {
	case FieldFileType:
		t, err := models.ParseFileType(value)
		if err != nil {
			return Condition{}, err
		}
		return Condition{Field: field, Value: string(t)}, nil
	case FieldName, FieldFolder, FieldProject, FieldContent:
		return Condition{Field: field, Value: value}, nil
	default:
		return Condition{}, fmt.Errorf("unknown field: %s", matches[1])
	}
}

func unquote(s string) string {
	if matches := quotedPattern.FindStringSubmatch(s); len(matches) == 2 {
		return matches[1]
	}
	return s
}
