package examples

import "github.com/codecraft/codecraft-terminal/pkg/files"

func getBasicExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Click Counter",
			Filename:    "example-counter.yaml",
			Description: "One page, one stylesheet and one script wired to a button",
			Manifest: files.Manifest{Projects: []files.ManifestProject{{
				Name: "Counter",
				Folders: []files.ManifestFolder{{
					Name: "Main",
					Files: []files.ManifestFile{
						{Name: "index.html", Content: `<!DOCTYPE html>
<html>
<head>
    <title>Counter</title>
</head>
<body>
    <h1>Clicks: <span id="count">0</span></h1>
    <button id="inc">Add one</button>
</body>
</html>`},
						{Name: "counter.css", Content: `body {
    font-family: sans-serif;
    text-align: center;
    margin-top: 40px;
}

#inc {
    padding: 8px 16px;
}`},
						{Name: "counter.js", Content: `let count = 0;
document.getElementById('inc').addEventListener('click', () => {
    count++;
    document.getElementById('count').textContent = count;
});`},
					},
				}},
			}}},
		},
	}
}

func getLayoutExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Card Grid",
			Filename:    "example-cards.yaml",
			Description: "Page and assets split across folders; the last file of each type is used",
			Manifest: files.Manifest{Projects: []files.ManifestProject{{
				Name: "Cards",
				Folders: []files.ManifestFolder{
					{
						Name: "Main",
						Files: []files.ManifestFile{
							{Name: "index.html", Content: `<!DOCTYPE html>
<html>
<head>
    <title>Cards</title>
</head>
<body>
    <main class="grid">
        <article class="card">One</article>
        <article class="card">Two</article>
        <article class="card">Three</article>
    </main>
</body>
</html>`},
						},
					},
					{
						Name: "styles",
						Files: []files.ManifestFile{
							{Name: "draft.css", Content: `/* replaced by grid.css, which comes later */
.card { border: 1px dashed red; }`},
							{Name: "grid.css", Content: `.grid {
    display: grid;
    grid-template-columns: repeat(3, 1fr);
    gap: 16px;
}

.card {
    padding: 24px;
    border-radius: 8px;
    box-shadow: 0 2px 6px rgba(0, 0, 0, 0.15);
}`},
						},
					},
					{
						Name: "scripts",
						Files: []files.ManifestFile{
							{Name: "cards.js", Content: `document.querySelectorAll('.card').forEach((card, i) => {
    card.addEventListener('click', () => card.textContent = 'Card ' + (i + 1) + ' clicked');
});`},
						},
					},
				},
			}}},
		},
	}
}
