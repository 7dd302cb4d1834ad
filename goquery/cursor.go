// Package goquery implements the heuristic extraction engine on top of the
// goquery document model. Nothing on these pages has a guaranteed location or
// shape, so every extractor pairs a search strategy with a failure policy:
// the match title is the one fatal anchor, everything else degrades to empty
// fields plus a diagnostic.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// cursor is a thin traversal layer over the parsed tree. It stamps every
// node with its document-order index once per extraction, so ordering
// questions (is this player card before the reserves marker?) reduce to
// integer comparisons instead of repeated tree walks.
type cursor struct {
	order     map[*html.Node]int
	textNodes []*html.Node // non-blank text nodes in document order
}

func newCursor(doc *goquery.Document) *cursor {
	c := &cursor{order: make(map[*html.Node]int)}
	i := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		c.order[n] = i
		i++
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
			c.textNodes = append(c.textNodes, n)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return c
}

// before reports whether a precedes b in document order.
func (c *cursor) before(a, b *html.Node) bool {
	return c.order[a] < c.order[b]
}

// findText returns the first text node whose trimmed content satisfies pred.
func (c *cursor) findText(pred func(string) bool) *html.Node {
	for _, n := range c.textNodes {
		if pred(strings.TrimSpace(n.Data)) {
			return n
		}
	}
	return nil
}

// findTexts returns every text node whose trimmed content satisfies pred.
func (c *cursor) findTexts(pred func(string) bool) []*html.Node {
	var out []*html.Node
	for _, n := range c.textNodes {
		if pred(strings.TrimSpace(n.Data)) {
			out = append(out, n)
		}
	}
	return out
}

// findTextUnder returns the first text node under root whose trimmed content
// satisfies pred.
func (c *cursor) findTextUnder(root *html.Node, pred func(string) bool) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n != root && n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" && pred(s) {
				found = n
				return
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(root)
	return found
}

// prevTexts returns the trimmed content of up to limit non-blank text nodes
// preceding n, nearest first.
func (c *cursor) prevTexts(n *html.Node, limit int) []string {
	bound := c.order[n]
	var out []string
	for i := len(c.textNodes) - 1; i >= 0 && len(out) < limit; i-- {
		t := c.textNodes[i]
		if c.order[t] >= bound {
			continue
		}
		out = append(out, strings.TrimSpace(t.Data))
	}
	return out
}

// followingTexts collects trimmed text fragments from a bounded forward walk
// starting at n. Each step visits a node's whole subtree, then moves to its
// next sibling, climbing to the parent's next sibling when a chain runs out.
// The cap exists because some regions (like the goal list) have no reliable
// closing marker.
func (c *cursor) followingTexts(n *html.Node, window int) []string {
	var out []string
	cur := n
	for steps := 0; cur != nil && steps < window; steps++ {
		out = append(out, textsUnder(cur)...)
		if cur.NextSibling != nil {
			cur = cur.NextSibling
		} else if cur.Parent != nil {
			cur = cur.Parent.NextSibling
		} else {
			cur = nil
		}
	}
	return out
}

// textsUnder returns every non-blank text fragment under root, trimmed, in
// document order.
func textsUnder(root *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				out = append(out, s)
			}
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(root)
	return out
}

// textOf returns the whitespace-collapsed text content of root's subtree.
func textOf(root *html.Node) string {
	return strings.Join(textsUnder(root), " ")
}

// elementsUnder returns every element with the given tag under root, in
// document order. The root itself is excluded.
func elementsUnder(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n != root && n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(root)
	return out
}

// attr returns the value of the named attribute on n, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// isHeadingTag reports whether tag is one of h1 through h6.
func isHeadingTag(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}
