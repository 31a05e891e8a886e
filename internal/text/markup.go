package text

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup extracts the visible text from a string that may contain HTML
// fragments. Speech transcripts scraped from the web arrive with residual
// tags; plain text passes through unchanged apart from whitespace collapsing.
func StripMarkup(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.Join(strings.Fields(s), " ")
	}

	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// html.Parse is extremely tolerant; on the rare failure keep the raw text.
		return strings.Join(strings.Fields(s), " ")
	}

	var parts []string
	dfsNodes(root, func(node *html.Node) {
		if isVisibleText(node) {
			parts = append(parts, strings.Fields(node.Data)...)
		}
	})

	return strings.Join(parts, " ")
}

// isVisibleText determines if a text node contains visible content.
// It filters out script/style content and whitespace-only nodes.
func isVisibleText(n *html.Node) bool {
	if n.Type != html.TextNode {
		return false
	}

	if n.Parent != nil && n.Parent.Type == html.ElementNode {
		tag := strings.ToLower(n.Parent.Data)
		if tag == "script" || tag == "style" || tag == "head" || tag == "noscript" {
			return false
		}
	}

	return strings.TrimSpace(n.Data) != ""
}

// dfsNodes performs a depth-first traversal of HTML nodes, calling the
// callback for each node.
func dfsNodes(n *html.Node, cb func(node *html.Node)) {
	if n == nil {
		return
	}

	cb(n)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		dfsNodes(c, cb)
	}
}
