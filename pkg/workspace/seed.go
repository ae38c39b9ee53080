package workspace

import (
	"fmt"

	"github.com/codecraft/codecraft-terminal/pkg/models"
)

const defaultFolderName = "Main"

const seedFileName = "index.html"

func projectSeed(name string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>%[1]s</title>
</head>
<body>
    <h1>%[1]s</h1>
    <p>Start coding here!</p>
</body>
</html>`, name)
}

func folderSeed(name string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <title>%[1]s</title>
</head>
<body>
    <h1>%[1]s</h1>
</body>
</html>`, name)
}

// fileSeed returns the starting content for a new file of type t named name.
func fileSeed(name string, t models.FileType) string {
	switch t {
	case models.FileTypeCSS:
		return fmt.Sprintf("/* %s */", name)
	case models.FileTypeJS:
		return fmt.Sprintf("// %s", name)
	default:
		return `<!DOCTYPE html>
<html>
<head>
    <title>New HTML File</title>
</head>
<body>
    
</body>
</html>`
	}
}

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
    <title>My Project</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <h1>Welcome to CodeCraft Pro!</h1>
    <p>This is a powerful real-time code editor.</p>
    <button id="demo-btn">Click Me</button>
    <script src="script.js"></script>
</body>
</html>`

const sampleCSS = `body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    margin: 0;
    padding: 20px;
    background-color: #f8f9fa;
    color: #2d3436;
}

h1 {
    color: #6c5ce7;
    margin-bottom: 20px;
}

p {
    color: #636e72;
    line-height: 1.6;
}

#demo-btn {
    background-color: #6c5ce7;
    color: white;
    border: none;
    padding: 10px 20px;
    border-radius: 4px;
    cursor: pointer;
    font-size: 16px;
    margin-top: 20px;
    transition: all 0.3s;
}

#demo-btn:hover {
    background-color: #5649c0;
    transform: translateY(-2px);
    box-shadow: 0 4px 8px rgba(0, 0, 0, 0.1);
}`

const sampleJS = `document.getElementById('demo-btn').addEventListener('click', function() {
    alert('Welcome to CodeCraft Pro!');
    this.textContent = 'Clicked!';
    this.classList.add('pulse');
    
    setTimeout(() => {
        this.textContent = 'Click Me Again';
        this.classList.remove('pulse');
    }, 1500);
});`

// NewSample returns a store holding the demo project the playground opens
// with: one "Main" folder with a page, a stylesheet and a script.
func NewSample(opts ...Option) *Store {
	s := New(opts...)
	s.seedSample()
	return s
}

func (s *Store) seedSample() {
	project := &models.Project{ID: models.ProjectID(s.newID()), Name: "My Project"}
	folder := &models.Folder{ID: models.FolderID(s.newID()), ProjectID: project.ID, Name: defaultFolderName}
	project.Folders = []models.FolderID{folder.ID}
	s.projects[project.ID] = project
	s.folders[folder.ID] = folder
	s.order = append(s.order, project.ID)

	for _, f := range []struct {
		name    string
		t       models.FileType
		content string
	}{
		{"index.html", models.FileTypeHTML, sampleHTML},
		{"styles.css", models.FileTypeCSS, sampleCSS},
		{"script.js", models.FileTypeJS, sampleJS},
	} {
		s.addFile(folder, f.name, f.t, f.content)
	}

	s.sel = models.Selection{Project: project.ID, Folder: folder.ID, File: folder.Files[0]}
}
