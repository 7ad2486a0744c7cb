package workspace

import (
	"strings"
)

// FileType is an entry of the "new file" dialog: the template key, a label
// and the extension appended to the typed base name.
type FileType struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Ext   string `json:"ext"`
}

// FileTypes lists the creatable file types in dialog order.
var FileTypes = []FileType{
	{Value: "html", Label: "HTML", Ext: ".html"},
	{Value: "css", Label: "CSS", Ext: ".css"},
	{Value: "javascript", Label: "JavaScript", Ext: ".js"},
	{Value: "typescript", Label: "TypeScript", Ext: ".ts"},
	{Value: "jsx", Label: "React JSX", Ext: ".jsx"},
	{Value: "tsx", Label: "React TSX", Ext: ".tsx"},
	{Value: "json", Label: "JSON", Ext: ".json"},
	{Value: "markdown", Label: "Markdown", Ext: ".md"},
	{Value: "txt", Label: "Text", Ext: ".txt"},
}

// LookupFileType returns the dialog entry for value (case-insensitive).
func LookupFileType(value string) (FileType, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, ft := range FileTypes {
		if ft.Value == v {
			return ft, true
		}
	}
	return FileType{}, false
}

const PlainText = "plaintext"

var languageByExt = map[string]string{
	"html":     "html",
	"htm":      "html",
	"css":      "css",
	"scss":     "scss",
	"sass":     "sass",
	"less":     "less",
	"js":       "javascript",
	"jsx":      "javascript",
	"ts":       "typescript",
	"tsx":      "typescript",
	"json":     "json",
	"md":       "markdown",
	"markdown": "markdown",
	"txt":      PlainText,
	"xml":      "xml",
	"svg":      "xml",
	"py":       "python",
	"java":     "java",
	"c":        "c",
	"cpp":      "cpp",
	"cs":       "csharp",
	"php":      "php",
	"rb":       "ruby",
	"go":       "go",
	"rs":       "rust",
	"swift":    "swift",
	"kt":       "kotlin",
}

// LanguageFromName derives a file's language from its extension.
// Unknown or missing extensions yield "plaintext".
func LanguageFromName(name string) string {
	_, ext := splitExt(name)
	if lang, ok := languageByExt[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return lang
	}
	return PlainText
}

// EditorLanguage maps a node language onto the editor widget's language
// id space. Anything the widget would not recognise becomes plaintext.
func EditorLanguage(language string) string {
	for _, known := range languageByExt {
		if known == language {
			return language
		}
	}
	return PlainText
}

// Template returns the starter content for a file type; unknown types get
// the (empty) plaintext template.
func Template(fileType string) string {
	if t, ok := templates[strings.ToLower(strings.TrimSpace(fileType))]; ok {
		return t
	}
	return templates[PlainText]
}

var templates = map[string]string{
	"html": `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Document</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <div class="container">
    <h1>Hello World! 🚀</h1>
    <p>Start coding here...</p>
  </div>
  <script src="script.js"></script>
</body>
</html>`,

	"css": `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: system-ui, -apple-system, sans-serif;
  line-height: 1.6;
  color: #333;
}

.container {
  max-width: 1200px;
  margin: 0 auto;
  padding: 2rem;
}`,

	"javascript": `// JavaScript code
console.log('Hello from JavaScript! 🎨');

// Your code here
document.addEventListener('DOMContentLoaded', () => {
  console.log('DOM loaded successfully!');
});`,

	"typescript": `// TypeScript code
interface Config {
  name: string;
  version: string;
}

const config: Config = {
  name: 'My App',
  version: '1.0.0'
};

console.log('Hello from TypeScript! 🚀', config);`,

	"json": `{
  "name": "my-project",
  "version": "1.0.0",
  "description": "A new project",
  "main": "index.js",
  "scripts": {
    "start": "node index.js"
  },
  "keywords": [],
  "author": "",
  "license": "MIT"
}`,

	"markdown": strings.Join([]string{
		"# Project Title",
		"",
		"## Description",
		"A brief description of your project.",
		"",
		"## Features",
		"- Feature 1",
		"- Feature 2",
		"- Feature 3",
		"",
		"## Installation",
		"```bash",
		"npm install",
		"```",
		"",
		"## Usage",
		"```bash",
		"npm start",
		"```",
		"",
		"## License",
		"MIT",
	}, "\n"),

	"jsx": `import React from 'react';

const Component = () => {
  return (
    <div className="container">
      <h1>Hello React! ⚛️</h1>
      <p>Start building your component here...</p>
    </div>
  );
};

export default Component;`,

	"tsx": `import React from 'react';

interface Props {
  title?: string;
}

const Component: React.FC<Props> = ({ title = 'Hello' }) => {
  return (
    <div className="container">
      <h1>{title} React + TypeScript! ⚛️</h1>
      <p>Start building your component here...</p>
    </div>
  );
};

export default Component;`,

	"txt":     "",
	PlainText: "",
}
