package crawler

import (
	"strings"

	"golang.org/x/net/html"
)

// PageMeta holds the basic metadata extracted from a raw HTML document.
type PageMeta struct {
	Title       string
	Description string
}

// ExtractMeta parses the given HTML document and pulls out the page title and
// meta description. It is used as a fallback when the crawl provider does not
// return metadata for a page. Parse errors yield an empty PageMeta; the
// tokenizer recovers from most malformed markup on its own.
func ExtractMeta(doc string) PageMeta {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return PageMeta{}
	}

	var meta PageMeta
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if meta.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					meta.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				var name, property, content string
				for _, a := range n.Attr {
					switch a.Key {
					case "name":
						name = strings.ToLower(a.Val)
					case "property":
						property = strings.ToLower(a.Val)
					case "content":
						content = a.Val
					}
				}
				if meta.Description == "" && (name == "description" || property == "og:description") {
					meta.Description = strings.TrimSpace(content)
				}
				if meta.Title == "" && property == "og:title" {
					meta.Title = strings.TrimSpace(content)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return meta
}
