package preview

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var policy = bluemonday.UGCPolicy()

// RenderMarkdown converts markdown to sanitized HTML.
func RenderMarkdown(src string) string {
	out := blackfriday.Run([]byte(src),
		blackfriday.WithExtensions(
			blackfriday.CommonExtensions|blackfriday.Autolink))
	return string(policy.SanitizeBytes(out))
}

// MarkdownDocument wraps rendered markdown into a standalone page so a
// README can be opened in the preview pane like any HTML file.
func MarkdownDocument(title, src string) string {
	return "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>" +
		html.EscapeString(title) + "</title>\n" +
		"<style>body{font-family:system-ui,sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem;line-height:1.6}" +
		"pre{background:#f5f5f5;padding:1rem;overflow:auto}</style>\n</head>\n<body>\n" +
		RenderMarkdown(src) + "</body>\n</html>\n"
}
