// Package preview assembles the document shown by the live preview: the
// main HTML file with every stylesheet and script of the project inlined.
package preview

import (
	"strings"

	"vincode/internal/workspace"
)

const (
	headClose = "</head>"
	bodyClose = "</body>"
)

// Placeholder is rendered when no main HTML file is selected.
const Placeholder = `<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            margin: 0;
            padding: 0;
            display: flex;
            align-items: center;
            justify-content: center;
            min-height: 100vh;
            font-family: system-ui, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
        }
        .container {
            text-align: center;
            padding: 2rem;
        }
        h1 {
            font-size: 2rem;
            margin-bottom: 1rem;
        }
        p {
            opacity: 0.9;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>No HTML File Selected</h1>
        <p>Create or select an HTML file to see the preview</p>
    </div>
</body>
</html>
`

// Bundles returns the concatenated stylesheets and scripts of tree in node
// order, each file separated by a blank line.
func Bundles(tree workspace.Tree) (css, js string) {
	var styles, scripts []string
	for _, f := range workspace.Files(tree) {
		switch f.Language {
		case "css":
			styles = append(styles, f.Content)
		case "javascript", "typescript":
			scripts = append(scripts, f.Content)
		}
	}
	return strings.Join(styles, "\n\n"), strings.Join(scripts, "\n\n")
}

// Assemble builds the preview document around the file mainID. The CSS
// bundle goes in a <style> block before the first </head> (or at the very
// top), the JS bundle in a <script> block before the first </body> (or at
// the very end). A missing or non-file main id yields Placeholder.
func Assemble(tree workspace.Tree, mainID string) string {
	var main *workspace.Node
	if mainID != "" {
		main = workspace.Find(tree, mainID)
	}
	if !main.IsFile() {
		return Placeholder
	}

	css, js := Bundles(tree)
	doc := main.Content
	if css != "" {
		style := "<style>\n" + css + "\n</style>\n"
		if strings.Contains(doc, headClose) {
			doc = strings.Replace(doc, headClose, style+headClose, 1)
		} else {
			doc = style + doc
		}
	}
	if js != "" {
		script := "<script>\n" + js + "\n</script>"
		if strings.Contains(doc, bodyClose) {
			doc = strings.Replace(doc, bodyClose, script+"\n"+bodyClose, 1)
		} else {
			doc = doc + "\n" + script
		}
	}
	return doc
}

// FromState assembles the preview of a store snapshot.
func FromState(st workspace.State) string {
	return Assemble(st.Tree, st.MainHTMLFileID)
}
