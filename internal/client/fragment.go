package client

import (
	"golang.org/x/net/html"
	"strings"
)

const listClass = "list"

// ExtractList возвращает внутренний HTML первого элемента с классом "list".
// Если такого элемента нет, возвращается пустая строка.
func ExtractList(page string) (string, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", err
	}

	n := findByClass(doc, listClass)
	if n == nil {
		return "", nil
	}

	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}

	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}

		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}

	return false
}
