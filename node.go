package markup

import "fmt"

// Node is an element of a parsed document tree: *Text, *Strong, *Emphasis
// or *Strikethrough.
type Node interface {
	Kind() NodeKind
}

// NodeKind identifies the concrete type of a Node.
type NodeKind uint8

const (
	NodeText NodeKind = iota
	NodeStrong
	NodeEmphasis
	NodeStrikethrough
)

func (k NodeKind) String() string {
	switch k {
	case NodeText:
		return "text"
	case NodeStrong:
		return "strong"
	case NodeEmphasis:
		return "emphasis"
	case NodeStrikethrough:
		return "strikethrough"
	default:
		return "unknown"
	}
}

// Text is literal content.
type Text struct {
	Value string
}

// Strong is a span delimited by '*'.
type Strong struct {
	Children []Node
}

// Emphasis is a span delimited by '_'.
type Emphasis struct {
	Children []Node
}

// Strikethrough is a span delimited by '~'.
type Strikethrough struct {
	Children []Node
}

func (*Text) Kind() NodeKind          { return NodeText }
func (*Strong) Kind() NodeKind        { return NodeStrong }
func (*Emphasis) Kind() NodeKind      { return NodeEmphasis }
func (*Strikethrough) Kind() NodeKind { return NodeStrikethrough }

// Children returns the child nodes of a span, or nil for Text.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Strong:
		return n.Children
	case *Emphasis:
		return n.Children
	case *Strikethrough:
		return n.Children
	default:
		return nil
	}
}

// newSpan builds the span node for a delimiter symbol. Only delimiter
// symbols are ever pushed as open spans, so any other symbol means the
// tree builder state is corrupt.
func newSpan(symbol rune, children []Node) Node {
	switch symbol {
	case symbolStrong:
		return &Strong{Children: children}
	case symbolEmphasis:
		return &Emphasis{Children: children}
	case symbolStrikethrough:
		return &Strikethrough{Children: children}
	default:
		panic(fmt.Sprintf("markup: no span node for delimiter %q", symbol))
	}
}

// literals converts symbols to Text nodes, one per symbol.
func literals(symbols []rune) []Node {
	if len(symbols) == 0 {
		return nil
	}
	out := make([]Node, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, &Text{Value: string(s)})
	}
	return out
}
