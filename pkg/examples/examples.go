package examples

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/codecraft/codecraft-terminal/pkg/files"
)

// ExampleSet is a ready-made playground written out as a manifest.
type ExampleSet struct {
	Category    string
	Name        string
	Filename    string
	Description string
	Manifest    files.Manifest
}

// Categories lists the installable categories in display order.
var Categories = []string{"basics", "layout"}

// GetExamples returns example sets for the given category, or every set
// for "all".
func GetExamples(category string) []ExampleSet {
	switch category {
	case "basics":
		return tag("basics", getBasicExamples())
	case "layout":
		return tag("layout", getLayoutExamples())
	case "all":
		var all []ExampleSet
		for _, c := range Categories {
			all = append(all, GetExamples(c)...)
		}
		return all
	default:
		return []ExampleSet{}
	}
}

func tag(category string, sets []ExampleSet) []ExampleSet {
	for i := range sets {
		sets[i].Category = category
	}
	return sets
}

// Install writes the example manifest into dir. Existing files are only
// replaced when force is set.
func Install(set ExampleSet, dir string, force bool) (string, error) {
	path := filepath.Join(dir, set.Filename)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("example already exists at %s", path)
		}
	}

	content, err := yaml.Marshal(set.Manifest)
	if err != nil {
		return "", fmt.Errorf("failed to marshal example %s: %w", set.Name, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write example %s: %w", path, err)
	}
	return path, nil
}
