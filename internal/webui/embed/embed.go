package embed

import "embed"

// DistFS contains the browser client. The bundled dist is a single page
// that drives the workspace API: file tree, textarea editor, live preview
// iframe and the simulated terminal.
//
//go:embed all:dist
var DistFS embed.FS
