package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Renderer turns parsed markup into output text. Implementations are
// stateless and safe for concurrent use.
type Renderer interface {
	// Render parses text and renders the resulting nodes.
	Render(text string) string
	// RenderNode renders a single node.
	RenderNode(n Node) string
	// RenderNodes renders a sequence of nodes as the concatenation of each
	// node's rendering.
	RenderNodes(nodes []Node) string
}

// RenderString renders text to HTML with the default tags.
func RenderString(text string) string {
	return NewHTMLRenderer().Render(text)
}

// Format selects an output format.
type Format uint8

const (
	FormatHTML Format = iota
	FormatANSI
	FormatText
	FormatTree
)

var formatNames = [...]string{
	FormatHTML: "html",
	FormatANSI: "ansi",
	FormatText: "text",
	FormatTree: "tree",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "format(" + strconv.Itoa(int(f)) + ")"
}

// Formats returns the names accepted by ParseFormat.
func Formats() []string {
	return append([]string(nil), formatNames[:]...)
}

// ParseFormat returns the Format for a name such as "html" or "ansi".
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range formatNames {
		if n == normalized {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q (expected %s)", name, strings.Join(formatNames[:], "|"))
}

// NewRenderer returns the renderer for format.
func NewRenderer(format Format, opts ...Option) Renderer {
	switch format {
	case FormatANSI:
		return NewANSIRenderer(opts...)
	case FormatText:
		return NewTextRenderer(opts...)
	case FormatTree:
		return NewTreeRenderer(opts...)
	default:
		return NewHTMLRenderer(opts...)
	}
}

// Tag is the text written before and after a span's content.
type Tag struct {
	Open  string
	Close string
}

// HTMLTag returns the open and close tags for an HTML element name.
func HTMLTag(name string) Tag {
	return Tag{Open: "<" + name + ">", Close: "</" + name + ">"}
}

// TagSet maps each span kind to its tags.
type TagSet struct {
	Strong        Tag
	Emphasis      Tag
	Strikethrough Tag
}

// DefaultTags returns <strong>, <i> and <del>.
func DefaultTags() TagSet {
	return TagSet{
		Strong:        HTMLTag("strong"),
		Emphasis:      HTMLTag("i"),
		Strikethrough: HTMLTag("del"),
	}
}

func (t TagSet) forKind(k NodeKind) Tag {
	switch k {
	case NodeStrong:
		return t.Strong
	case NodeEmphasis:
		return t.Emphasis
	case NodeStrikethrough:
		return t.Strikethrough
	default:
		return Tag{}
	}
}

// HTMLRenderer wraps spans in tags. Text is written verbatim.
type HTMLRenderer struct {
	tags  TagSet
	trace zerolog.Logger
}

// NewHTMLRenderer creates an HTML renderer. WithTags overrides the tags.
func NewHTMLRenderer(opts ...Option) *HTMLRenderer {
	cfg := newConfig(opts)
	return &HTMLRenderer{tags: cfg.tags, trace: cfg.trace}
}

func (r *HTMLRenderer) Render(text string) string {
	return r.RenderNodes(Parse(text, WithTrace(r.trace)))
}

func (r *HTMLRenderer) RenderNode(n Node) string {
	var b strings.Builder
	r.renderTo(&b, n)
	return b.String()
}

func (r *HTMLRenderer) RenderNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		r.renderTo(&b, n)
	}
	return b.String()
}

func (r *HTMLRenderer) renderTo(b *strings.Builder, n Node) {
	if t, ok := n.(*Text); ok {
		b.WriteString(t.Value)
		return
	}
	tag := r.tags.forKind(n.Kind())
	b.WriteString(tag.Open)
	for _, c := range Children(n) {
		r.renderTo(b, c)
	}
	b.WriteString(tag.Close)
}

// TextRenderer drops all markup and keeps the text.
type TextRenderer struct {
	width int
	trace zerolog.Logger
}

// NewTextRenderer creates a plain text renderer. WithWidth enables wrapping.
func NewTextRenderer(opts ...Option) *TextRenderer {
	cfg := newConfig(opts)
	return &TextRenderer{width: cfg.width, trace: cfg.trace}
}

func (r *TextRenderer) Render(text string) string {
	return r.RenderNodes(Parse(text, WithTrace(r.trace)))
}

func (r *TextRenderer) RenderNode(n Node) string {
	return r.RenderNodes([]Node{n})
}

func (r *TextRenderer) RenderNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		textTo(&b, n)
	}
	return wrapText(b.String(), r.width)
}

func textTo(b *strings.Builder, n Node) {
	if t, ok := n.(*Text); ok {
		b.WriteString(t.Value)
		return
	}
	for _, c := range Children(n) {
		textTo(b, c)
	}
}

// TreeRenderer prints the document tree as s-expressions, one top-level
// node per line.
type TreeRenderer struct {
	trace zerolog.Logger
}

// NewTreeRenderer creates a tree renderer.
func NewTreeRenderer(opts ...Option) *TreeRenderer {
	cfg := newConfig(opts)
	return &TreeRenderer{trace: cfg.trace}
}

func (r *TreeRenderer) Render(text string) string {
	return r.RenderNodes(Parse(text, WithTrace(r.trace)))
}

func (r *TreeRenderer) RenderNode(n Node) string {
	var b strings.Builder
	treeTo(&b, n)
	return b.String()
}

func (r *TreeRenderer) RenderNodes(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		treeTo(&b, n)
		b.WriteByte('\n')
	}
	return b.String()
}

func treeTo(b *strings.Builder, n Node) {
	if t, ok := n.(*Text); ok {
		b.WriteString(strconv.Quote(t.Value))
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Kind().String())
	for _, c := range Children(n) {
		b.WriteByte(' ')
		treeTo(b, c)
	}
	b.WriteByte(')')
}
