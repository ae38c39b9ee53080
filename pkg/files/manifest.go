package files

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/codecraft/codecraft-terminal/pkg/models"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

// Manifest describes projects to load into a fresh workspace. It is only
// ever read: the workspace itself is never written back.
type Manifest struct {
	Projects []ManifestProject `yaml:"projects"`
}

type ManifestProject struct {
	Name    string           `yaml:"name"`
	Folders []ManifestFolder `yaml:"folders"`
}

type ManifestFolder struct {
	Name  string         `yaml:"name"`
	Files []ManifestFile `yaml:"files"`
}

type ManifestFile struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type,omitempty"` // inferred from the extension when empty
	Content string `yaml:"content"`
}

func ReadManifest(p string) (*Manifest, error) {
	content, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", p, err)
	}
	return ParseManifest(content)
}

func ParseManifest(content []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}
	if len(m.Projects) == 0 {
		return nil, fmt.Errorf("manifest defines no projects")
	}
	return &m, nil
}

// FileType resolves the declared type, or the type implied by the extension.
func (f ManifestFile) FileType() (models.FileType, error) {
	if f.Type != "" {
		return models.ParseFileType(f.Type)
	}
	return models.ParseFileType(path.Ext(f.Name))
}

// Apply replays the manifest through the store's create and save
// operations. A seeded folder or file is only reused when the manifest
// lists an entry of the same name first, so store order always follows
// manifest order. Unused seeds are deleted once something else takes their
// place. The first project of the manifest is selected afterwards.
func (m *Manifest) Apply(store *workspace.Store) error {
	var first models.ProjectID
	for _, mp := range m.Projects {
		id, err := applyProject(store, mp)
		if err != nil {
			return fmt.Errorf("project %q: %w", mp.Name, err)
		}
		if first == "" {
			first = id
		}
	}
	return store.SelectProject(first)
}

func applyProject(store *workspace.Store, mp ManifestProject) (models.ProjectID, error) {
	id, err := store.CreateProject(mp.Name)
	if err != nil {
		return "", err
	}
	seedFolder := store.Selection().Folder
	seedClaimed := false

	for i, mf := range mp.Folders {
		if i == 0 && mf.Name == "Main" {
			seedClaimed = true
			if err := store.SelectFolder(seedFolder); err != nil {
				return "", err
			}
		} else if _, err := store.CreateFolder(mf.Name); err != nil {
			return "", fmt.Errorf("folder %q: %w", mf.Name, err)
		}
		if err := applyFiles(store, mf.Files); err != nil {
			return "", fmt.Errorf("folder %q: %w", mf.Name, err)
		}
	}

	if !seedClaimed && len(mp.Folders) > 0 {
		if err := store.DeleteFolder(seedFolder); err != nil {
			return "", err
		}
	}
	return id, nil
}

// applyFiles fills the current folder, which holds just its seeded index.html.
func applyFiles(store *workspace.Store, files []ManifestFile) error {
	folder, _ := store.CurrentFolder()
	seedFile := folder.Files[0]
	seedClaimed := false

	for i, mf := range files {
		t, err := mf.FileType()
		if err != nil {
			return fmt.Errorf("file %q: %w", mf.Name, err)
		}
		if i == 0 && workspace.NormalizeFileName(mf.Name, t) == "index.html" {
			seedClaimed = true
			if err := store.SelectFile(seedFile); err != nil {
				return err
			}
		} else if _, err := store.CreateFile(mf.Name, t); err != nil {
			return fmt.Errorf("file %q: %w", mf.Name, err)
		}
		store.SaveFileContent(mf.Content)
	}

	if !seedClaimed && len(files) > 0 {
		return store.DeleteFile(seedFile)
	}
	return nil
}
