package sink

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/induwarauthsara/folio/pkg/page"
)

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// RenderMarkdown renders doc as Markdown. The page is rendered to HTML
// first; the navigation bar is dropped and the body is converted.
func RenderMarkdown(doc *page.Document) ([]byte, error) {
	htmlPage, err := RenderHTML(doc)
	if err != nil {
		return nil, err
	}

	body, err := extractBody(htmlPage)
	if err != nil {
		return nil, err
	}

	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())

	out, err := conv.ConvertString(body)
	if err != nil {
		return nil, fmt.Errorf("convert to markdown: %w", err)
	}
	out = excessiveLinesRe.ReplaceAllString(strings.TrimSpace(out), "\n\n")
	return []byte(out + "\n"), nil
}

// extractBody returns the inner HTML of <body> with every <nav> removed.
func extractBody(page []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parse rendered page: %w", err)
	}

	body := findElement(root, atom.Body)
	if body == nil {
		return "", fmt.Errorf("rendered page has no body")
	}
	removeElements(body, atom.Nav)

	var buf bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func removeElements(n *html.Node, a atom.Atom) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && c.DataAtom == a {
			n.RemoveChild(c)
		} else {
			removeElements(c, a)
		}
		c = next
	}
}
