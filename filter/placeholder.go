package filter

import (
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderPlaceholder renders the empty block element the client script turns
// into an editor, e.g. <pre id="ace-editor-inline1"></pre>.
func renderPlaceholder(id string) (string, error) {
	node := &xhtml.Node{
		Type:     xhtml.ElementNode,
		DataAtom: atom.Pre,
		Data:     atom.Pre.String(),
		Attr:     []xhtml.Attribute{{Key: "id", Val: id}},
	}

	var sb strings.Builder
	if err := xhtml.Render(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}
